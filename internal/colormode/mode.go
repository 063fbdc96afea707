// SPDX-License-Identifier: MIT
package colormode

// Mode is the light/dark display mode of the shell
type Mode int

const (
	Light Mode = iota
	Dark
)

// String returns the persisted form of the mode ("light" or "dark")
func (m Mode) String() string {
	if m == Dark {
		return "dark"
	}
	return "light"
}

// Toggle returns the opposite mode
func (m Mode) Toggle() Mode {
	if m == Dark {
		return Light
	}
	return Dark
}

// IsDark reports whether m is the dark mode
func (m Mode) IsDark() bool {
	return m == Dark
}

// ParseMode accepts only the literal strings "light" and "dark"
func ParseMode(s string) (Mode, bool) {
	switch s {
	case "light":
		return Light, true
	case "dark":
		return Dark, true
	default:
		return Light, false
	}
}

// MarshalText lets modes appear as strings in JSON output
func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}
