// SPDX-License-Identifier: MIT

// Package shell renders the page frame: the app bar across the top, the
// collapsible primary drawer, the secondary drawer and the main region.
package shell

import "github.com/thatcatcamp/djchat/internal/themes"

// DrawerState is the open/closed state of the primary drawer
type DrawerState bool

const (
	Closed DrawerState = false
	Open   DrawerState = true
)

// QueryParam carries the drawer state between page views
const QueryParam = "primary"

func (s DrawerState) String() string {
	if s {
		return "open"
	}
	return "closed"
}

// Open returns the opened state. Opening an open drawer is a no-op.
func (s DrawerState) Open() DrawerState { return Open }

// Close returns the closed state. Closing a closed drawer is a no-op.
func (s DrawerState) Close() DrawerState { return Closed }

// Toggled returns the opposite state
func (s DrawerState) Toggled() DrawerState { return !s }

// InitialPrimary opens the drawer on viewports at or above the sm breakpoint
func InitialPrimary(viewportWidth int, bp themes.Breakpoints) DrawerState {
	return DrawerState(viewportWidth >= bp.SM)
}

// DrawerFromQuery returns the explicit state in value, or initial when value
// is empty or unrecognised
func DrawerFromQuery(value string, initial DrawerState) DrawerState {
	switch value {
	case "open":
		return Open
	case "closed":
		return Closed
	default:
		return initial
	}
}
