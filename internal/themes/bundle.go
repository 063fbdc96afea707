// SPDX-License-Identifier: MIT

// Package themes turns a display mode into the full set of visual tokens
// (sizes, palette, typography) the shell is rendered with.
package themes

import "github.com/thatcatcamp/djchat/internal/colormode"

// Layout tokens shared by every bundle
const (
	AppBarHeight        = 50
	PrimaryDrawWidth    = 240
	PrimaryDrawClosed   = 70
	SecondaryDrawWidth  = 240
	drawerZIndex        = 1200
	appBarZIndexAboveBy = 2
)

type AppBarTokens struct {
	Height int `json:"height"`
}

type PrimaryDrawTokens struct {
	Width  int `json:"width"`
	Closed int `json:"closed"`
}

type SecondaryDrawTokens struct {
	Width int `json:"width"`
}

// Breakpoints are viewport widths in px
type Breakpoints struct {
	XS int `json:"xs"`
	SM int `json:"sm"`
	MD int `json:"md"`
	LG int `json:"lg"`
	XL int `json:"xl"`
}

// ZIndex is the stacking order of shell surfaces
type ZIndex struct {
	Drawer int `json:"drawer"`
	AppBar int `json:"appBar"`
}

// AppBarDefaults are the default props applied to every app bar
type AppBarDefaults struct {
	Color     string `json:"color"`
	Elevation int    `json:"elevation"`
}

type Components struct {
	AppBar AppBarDefaults `json:"appBar"`
}

// StyleBundle is the resolved theme for one mode. It contains only values
// and fixed-size arrays, so a copy never aliases the original.
type StyleBundle struct {
	Mode          colormode.Mode      `json:"mode"`
	PaletteName   string              `json:"paletteName"`
	PrimaryAppBar AppBarTokens        `json:"primaryAppBar"`
	PrimaryDraw   PrimaryDrawTokens   `json:"primaryDraw"`
	SecondaryDraw SecondaryDrawTokens `json:"secondaryDraw"`
	Breakpoints   Breakpoints         `json:"breakpoints"`
	ZIndex        ZIndex              `json:"zIndex"`
	Typography    Typography          `json:"typography"`
	Palette       Colors              `json:"palette"`
	Components    Components          `json:"components"`
}

// Factory builds bundles with a fixed accent palette
type Factory struct {
	Palette Palette
}

// NewFactory returns a factory for the named palette, falling back to the
// default palette for unknown names
func NewFactory(paletteName string) Factory {
	p := GetPalette(paletteName)
	if p == nil {
		p = GetPalette(DefaultPalette)
	}
	return Factory{Palette: *p}
}

// BuildStyleBundle builds the bundle for mode with the default palette
func BuildStyleBundle(mode colormode.Mode) StyleBundle {
	return NewFactory(DefaultPalette).Build(mode)
}

// Build derives the bundle for mode. It is pure: the same factory and mode
// always produce the same bundle.
func (f Factory) Build(mode colormode.Mode) StyleBundle {
	bp := DefaultBreakpoints()
	palette := f.Palette

	return StyleBundle{
		Mode:          mode,
		PaletteName:   palette.Name,
		PrimaryAppBar: AppBarTokens{Height: AppBarHeight},
		PrimaryDraw:   PrimaryDrawTokens{Width: PrimaryDrawWidth, Closed: PrimaryDrawClosed},
		SecondaryDraw: SecondaryDrawTokens{Width: SecondaryDrawWidth},
		Breakpoints:   bp,
		ZIndex: ZIndex{
			Drawer: drawerZIndex,
			AppBar: drawerZIndex + appBarZIndexAboveBy,
		},
		Typography: newTypography(bp),
		Palette:    GenerateColors(&palette, mode),
		Components: Components{
			AppBar: AppBarDefaults{Color: "default", Elevation: 0},
		},
	}
}

// DefaultBreakpoints returns the standard viewport breakpoints
func DefaultBreakpoints() Breakpoints {
	return Breakpoints{XS: 0, SM: 600, MD: 900, LG: 1200, XL: 1536}
}
