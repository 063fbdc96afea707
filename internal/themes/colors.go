package themes

import (
	"github.com/lucasb-eyer/go-colorful"
	"github.com/thatcatcamp/djchat/internal/colormode"
)

// Colors represents all generated colors for a theme
type Colors struct {
	Primary         string `json:"primary"`         // Main brand color
	PrimaryLight    string `json:"primaryLight"`    // Hover/highlight variant
	PrimaryDark     string `json:"primaryDark"`     // Pressed variant
	PrimaryContrast string `json:"primaryContrast"` // Text on top of Primary
	Secondary       string `json:"secondary"`       // Accent/highlight color
	Background      string `json:"background"`      // Page background
	Surface         string `json:"surface"`         // App bar, drawer, menu background
	Text            string `json:"text"`            // Main text color
	TextMuted       string `json:"textMuted"`       // Secondary/muted text
	Border          string `json:"border"`          // Border/divider color
	ActionHover     string `json:"actionHover"`     // Hovered list item/button background
	Success         string `json:"success"`
	Error           string `json:"error"`
	Warning         string `json:"warning"`
}

// MUI-style tonal offsets for the light/dark variants of the primary color
const (
	lightenOffset = 0.2
	darkenOffset  = 0.3
	// contrastThreshold is the minimum ratio white text needs to be chosen
	contrastThreshold = 3.0
)

var (
	white = colorful.Color{R: 1, G: 1, B: 1}
	black = colorful.Color{R: 0, G: 0, B: 0}
)

// GenerateColors generates full color set from palette for light or dark mode
func GenerateColors(palette *Palette, mode colormode.Mode) Colors {
	if palette == nil {
		palette = GetPalette(DefaultPalette)
	}
	if mode.IsDark() {
		return generateDarkColors(palette)
	}
	return generateLightColors(palette)
}

// generateLightColors creates colors for light mode
func generateLightColors(palette *Palette) Colors {
	bg := mustHex("#ffffff")
	primary := mustHex(palette.Primary)

	colors := Colors{
		Secondary:   palette.Secondary,
		Background:  bg.Hex(),
		Surface:     bg.Hex(),
		Text:        overlay(bg, black, 0.87),
		TextMuted:   overlay(bg, black, 0.6),
		Border:      overlay(bg, black, 0.12),
		ActionHover: overlay(bg, black, 0.04),
		Success:     "#2e7d32",
		Error:       "#d32f2f",
		Warning:     "#ed6c02",
	}
	fillPrimary(&colors, primary)
	return colors
}

// generateDarkColors creates colors for dark mode
func generateDarkColors(palette *Palette) Colors {
	bg := mustHex("#121212")
	// Saturated accents are too loud on dark surfaces; shift them toward white
	primary := mustHex(palette.Primary).BlendLab(white, 0.45).Clamped()
	secondary := mustHex(palette.Secondary).BlendLab(white, 0.45).Clamped()

	colors := Colors{
		Secondary:   secondary.Hex(),
		Background:  bg.Hex(),
		Surface:     bg.Hex(),
		Text:        overlay(bg, white, 1),
		TextMuted:   overlay(bg, white, 0.7),
		Border:      overlay(bg, white, 0.12),
		ActionHover: overlay(bg, white, 0.08),
		Success:     "#66bb6a",
		Error:       "#f44336",
		Warning:     "#ffa726",
	}
	fillPrimary(&colors, primary)
	return colors
}

func fillPrimary(colors *Colors, main colorful.Color) {
	colors.Primary = main.Hex()
	colors.PrimaryLight = main.BlendRgb(white, lightenOffset).Hex()
	colors.PrimaryDark = main.BlendRgb(black, darkenOffset).Hex()
	colors.PrimaryContrast = contrastText(main)
}

// overlay flattens fg at the given opacity onto bg
func overlay(bg, fg colorful.Color, alpha float64) string {
	return bg.BlendRgb(fg, alpha).Hex()
}

// contrastText picks white text when it reaches the contrast threshold
// against c, dark text otherwise
func contrastText(c colorful.Color) string {
	if contrastRatio(white, c) >= contrastThreshold {
		return white.Hex()
	}
	return overlay(white, black, 0.87)
}

func contrastRatio(a, b colorful.Color) float64 {
	la, lb := luminance(a), luminance(b)
	if la < lb {
		la, lb = lb, la
	}
	return (la + 0.05) / (lb + 0.05)
}

func luminance(c colorful.Color) float64 {
	r, g, b := c.LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// mustHex parses a palette color; palette values are compile-time constants,
// so an unparseable one falls back to mid gray instead of failing the render
func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		return colorful.Color{R: 0.5, G: 0.5, B: 0.5}
	}
	return c
}
