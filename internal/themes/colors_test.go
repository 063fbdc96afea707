package themes

import (
	"strings"
	"testing"

	"github.com/thatcatcamp/djchat/internal/colormode"
)

func TestPaletteExists(t *testing.T) {
	palette := GetPalette(DefaultPalette)
	if palette == nil {
		t.Fatal("default palette not found")
	}
}

func TestGenerateLightModeColors(t *testing.T) {
	palette := GetPalette("slate")
	colors := GenerateColors(palette, colormode.Light)

	if colors.Primary != "#64748b" {
		t.Errorf("light mode should keep the palette primary, got %s", colors.Primary)
	}
	if colors.Background != "#ffffff" {
		t.Errorf("expected white background, got %s", colors.Background)
	}
	if colors.Text == "" {
		t.Fatal("Text color not generated")
	}
}

func TestGenerateDarkModeColors(t *testing.T) {
	palette := GetPalette("slate")
	colors := GenerateColors(palette, colormode.Dark)

	if colors.Background != "#121212" {
		t.Errorf("expected #121212 background, got %s", colors.Background)
	}
	if colors.Text != "#ffffff" {
		t.Errorf("expected white text in dark mode, got %s", colors.Text)
	}
	if colors.Primary == palette.Primary {
		t.Error("dark mode primary should be lightened")
	}
}

func TestNilPaletteUsesDefault(t *testing.T) {
	got := GenerateColors(nil, colormode.Light)
	want := GenerateColors(GetPalette(DefaultPalette), colormode.Light)
	if got != want {
		t.Errorf("nil palette should fall back to %s", DefaultPalette)
	}
}

func TestListPalettes(t *testing.T) {
	palettes := ListPalettes()
	if len(palettes) < 10 {
		t.Errorf("expected at least 10 palettes, got %d", len(palettes))
	}
}

func TestPaletteNamesUnique(t *testing.T) {
	palettes := ListPalettes()
	names := make(map[string]bool)
	for _, p := range palettes {
		if names[p.Name] {
			t.Errorf("duplicate palette name: %s", p.Name)
		}
		names[p.Name] = true
	}
}

func TestGeneratedColorsAreHex(t *testing.T) {
	for _, mode := range []colormode.Mode{colormode.Light, colormode.Dark} {
		for _, palette := range ListPalettes() {
			colors := GenerateColors(palette, mode)

			colorMap := map[string]string{
				"Primary":         colors.Primary,
				"PrimaryLight":    colors.PrimaryLight,
				"PrimaryDark":     colors.PrimaryDark,
				"PrimaryContrast": colors.PrimaryContrast,
				"Secondary":       colors.Secondary,
				"Background":      colors.Background,
				"Surface":         colors.Surface,
				"Text":            colors.Text,
				"Border":          colors.Border,
			}

			for name, color := range colorMap {
				if !strings.HasPrefix(color, "#") || len(color) != 7 {
					t.Errorf("%s/%s: %s should be #RRGGBB, got: %s", palette.Name, mode, name, color)
				}
			}
		}
	}
}

func TestContrastText(t *testing.T) {
	// Dark blue needs white text, pale yellow needs dark text
	if got := contrastText(mustHex("#1976d2")); got != "#ffffff" {
		t.Errorf("expected white on #1976d2, got %s", got)
	}
	if got := contrastText(mustHex("#fff59d")); got == "#ffffff" {
		t.Error("expected dark text on #fff59d")
	}
}

func TestPrimaryVariants(t *testing.T) {
	colors := GenerateColors(GetPalette("blue"), colormode.Light)

	if luminance(mustHex(colors.PrimaryLight)) <= luminance(mustHex(colors.Primary)) {
		t.Error("PrimaryLight should be lighter than Primary")
	}
	if luminance(mustHex(colors.PrimaryDark)) >= luminance(mustHex(colors.Primary)) {
		t.Error("PrimaryDark should be darker than Primary")
	}
}
