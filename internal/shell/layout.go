package shell

import "github.com/thatcatcamp/djchat/internal/themes"

// Region is the box a shell component occupies, in CSS pixels
type Region struct {
	Left   int
	Top    int
	Width  int
	ZIndex int
}

// Layout places the four shell regions for one viewport
type Layout struct {
	Viewport      int
	Primary       DrawerState
	Compact       bool
	AppBar        Region
	PrimaryDraw   Region
	SecondaryDraw Region
	Main          Region
}

// ComputeLayout positions the app bar above everything and lays the drawers
// and main region out left to right underneath it
func ComputeLayout(b themes.StyleBundle, primary DrawerState, viewportWidth int) Layout {
	if viewportWidth < 0 {
		viewportWidth = 0
	}
	top := b.PrimaryAppBar.Height

	primaryWidth := b.PrimaryDraw.Closed
	if primary {
		primaryWidth = b.PrimaryDraw.Width
	}
	secondaryWidth := b.SecondaryDraw.Width

	return Layout{
		Viewport: viewportWidth,
		Primary:  primary,
		Compact:  viewportWidth < b.Breakpoints.SM,
		AppBar: Region{
			Width:  viewportWidth,
			ZIndex: b.ZIndex.AppBar,
		},
		PrimaryDraw: Region{
			Top:    top,
			Width:  primaryWidth,
			ZIndex: b.ZIndex.Drawer,
		},
		SecondaryDraw: Region{
			Left:   primaryWidth,
			Top:    top,
			Width:  secondaryWidth,
			ZIndex: b.ZIndex.Drawer,
		},
		Main: Region{
			Left:  primaryWidth + secondaryWidth,
			Top:   top,
			Width: max(0, viewportWidth-primaryWidth-secondaryWidth),
		},
	}
}
