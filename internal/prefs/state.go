package prefs

import (
	"encoding/json"
	"os"
	"time"

	"StockGlance/internal/model"
)

// LoadState reads the preferences from a JSON file. Returns zero
// preferences if the file doesn't exist.
func LoadState(filePath string) (*model.Preferences, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return &model.Preferences{}, nil
		}
		return nil, err
	}
	var state model.Preferences
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, err
	}
	return &state, nil
}

// SaveState writes the preferences to a JSON file.
func SaveState(filePath string, state *model.Preferences) error {
	state.UpdatedAt = time.Now()
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filePath, data, 0644)
}
