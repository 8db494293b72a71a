package render

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"StockGlance/internal/model"
)

// Label is a rendered text fragment with its theme color token.
type Label struct {
	Text  string
	Color string
}

// ChangeLabel renders a price change as "<sign><absolute> (<percent>%)".
// The percent shown is the absolute value of the already-rounded
// string, so a change that rounds to -0.00 displays as 0.00%.
func ChangeLabel(pc model.PriceChange, decimals int, theme Theme) Label {
	if decimals < 0 {
		decimals = 2
	}
	absolute := fmt.Sprintf("%+.*f", decimals, pc.Absolute)
	percent := strings.TrimPrefix(fmt.Sprintf("%.2f", pc.Percent), "-")

	var color string
	switch pc.Sign {
	case model.SignPositive:
		color = theme.Positive
	case model.SignNegative:
		color = theme.Negative
	default:
		color = theme.Neutral
	}

	return Label{
		Text:  fmt.Sprintf("%s (%s%%)", absolute, percent),
		Color: color,
	}
}

// Volume renders a trade volume in compact human form, e.g. "1.2M".
func Volume(v float64) string {
	return humanize.SIWithDigits(v, 1, "")
}

// FavouriteMessage mirrors the toggle responses of the favourites API.
func FavouriteMessage(name string, added bool) string {
	if added {
		return fmt.Sprintf("%q - added to favourites.", name)
	}
	return fmt.Sprintf("%q - removed from favourites.", name)
}
