package render

import "fmt"

// Theme supplies the color tokens the presentation layer uses instead
// of hardcoded colors; tokens are design-system variables resolved by
// the embedding front end.
type Theme struct {
	Name     string
	Positive string
	Negative string
	Neutral  string
}

// Built-in themes.
var (
	Dark = Theme{
		Name:     "dark",
		Positive: "--green-400",
		Negative: "--red-400",
		Neutral:  "--gray-400",
	}
	Light = Theme{
		Name:     "light",
		Positive: "--green-600",
		Negative: "--red-600",
		Neutral:  "--gray-600",
	}
)

// ThemeByName resolves a configured theme name. An empty name falls
// back to the dark theme.
func ThemeByName(name string) (Theme, error) {
	switch name {
	case "dark", "":
		return Dark, nil
	case "light":
		return Light, nil
	}
	return Theme{}, fmt.Errorf("unknown theme %q", name)
}
