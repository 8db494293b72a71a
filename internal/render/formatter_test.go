package render

import (
	"testing"
	"time"

	"StockGlance/internal/model"
)

func TestChangeLabel_BySign(t *testing.T) {
	tests := []struct {
		name      string
		pc        model.PriceChange
		decimals  int
		wantText  string
		wantColor string
	}{
		{
			name:      "positive dark",
			pc:        model.PriceChange{Absolute: 12.345, Percent: 4.8, Sign: model.SignPositive},
			decimals:  2,
			wantText:  "+12.35 (4.80%)",
			wantColor: "--green-400",
		},
		{
			name:      "negative dark",
			pc:        model.PriceChange{Absolute: -10, Percent: -10, Sign: model.SignNegative},
			decimals:  2,
			wantText:  "-10.00 (10.00%)",
			wantColor: "--red-400",
		},
		{
			name:      "zero dark",
			pc:        model.PriceChange{Absolute: 0, Percent: 0, Sign: model.SignZero},
			decimals:  2,
			wantText:  "+0.00 (0.00%)",
			wantColor: "--gray-400",
		},
		{
			name:      "one decimal",
			pc:        model.PriceChange{Absolute: 3.14, Percent: 1.5, Sign: model.SignPositive},
			decimals:  1,
			wantText:  "+3.1 (1.50%)",
			wantColor: "--green-400",
		},
	}
	for _, tt := range tests {
		got := ChangeLabel(tt.pc, tt.decimals, Dark)
		if got.Text != tt.wantText {
			t.Errorf("%s: text got %q, want %q", tt.name, got.Text, tt.wantText)
		}
		if got.Color != tt.wantColor {
			t.Errorf("%s: color got %q, want %q", tt.name, got.Color, tt.wantColor)
		}
	}
}

func TestChangeLabel_TinyNegativeShowsUnsignedPercent(t *testing.T) {
	// -0.001% rounds to "-0.00"; the rendered percent must drop the sign.
	pc := model.PriceChange{Absolute: -0.001, Percent: -0.001, Sign: model.SignNegative}
	got := ChangeLabel(pc, 2, Dark)
	if got.Text != "-0.00 (0.00%)" {
		t.Errorf("got %q, want %q", got.Text, "-0.00 (0.00%)")
	}
	if got.Color != Dark.Negative {
		t.Errorf("color: got %q, want negative token", got.Color)
	}
}

func TestChangeLabel_LightTheme(t *testing.T) {
	pc := model.PriceChange{Absolute: 5, Percent: 2, Sign: model.SignPositive}
	got := ChangeLabel(pc, 2, Light)
	if got.Color != "--green-600" {
		t.Errorf("color: got %q, want --green-600", got.Color)
	}
}

func TestThemeByName(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"dark", "dark", true},
		{"light", "light", true},
		{"", "dark", true},
		{"sepia", "", false},
	}
	for _, tt := range tests {
		th, err := ThemeByName(tt.in)
		if tt.ok && (err != nil || th.Name != tt.want) {
			t.Errorf("ThemeByName(%q): got (%q, %v)", tt.in, th.Name, err)
		}
		if !tt.ok && err == nil {
			t.Errorf("ThemeByName(%q): expected error", tt.in)
		}
	}
}

func TestFavouriteMessage(t *testing.T) {
	if got := FavouriteMessage("Sberbank", true); got != `"Sberbank" - added to favourites.` {
		t.Errorf("added: got %q", got)
	}
	if got := FavouriteMessage("Sberbank", false); got != `"Sberbank" - removed from favourites.` {
		t.Errorf("removed: got %q", got)
	}
}

func TestVolume(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{1500000, "1.5 M"},
		{900, "900 "},
	}
	for _, tt := range tests {
		if got := Volume(tt.in); got != tt.want {
			t.Errorf("Volume(%v): got %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRows_Projections(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	candles := []model.Candle{{
		StartTime: start, EndTime: start.Add(24 * time.Hour),
		Open: 10, High: 12, Low: 9, Close: 11, Value: 11, Volume: 100,
	}}
	x := float64(start.UnixMilli())

	tests := []struct {
		kind model.ChartKind
		want []float64
	}{
		{model.KindCandlestick, []float64{x, 10, 12, 9, 11}},
		{model.KindOHLC, []float64{x, 10, 12, 9, 11}},
		{model.KindLine, []float64{x, 11}},
		{model.KindRangeArea, []float64{x, 12, 9}},
	}
	for _, tt := range tests {
		spec, err := NewSeriesSpec(tt.kind)
		if err != nil {
			t.Fatalf("%s: %v", tt.kind, err)
		}
		rows := Rows(candles, spec)
		if len(rows) != 1 {
			t.Fatalf("%s: got %d rows", tt.kind, len(rows))
		}
		if len(rows[0]) != len(tt.want) {
			t.Fatalf("%s: row %v, want %v", tt.kind, rows[0], tt.want)
		}
		for i := range tt.want {
			if rows[0][i] != tt.want[i] {
				t.Errorf("%s: row %v, want %v", tt.kind, rows[0], tt.want)
				break
			}
		}
	}
}

func TestNewSeriesSpec_UnknownKind(t *testing.T) {
	if _, err := NewSeriesSpec("pie"); err == nil {
		t.Fatal("expected error for unknown chart kind")
	}
}
