package themes

// DefaultPalette is used when no (or an unknown) accent palette is configured
const DefaultPalette = "blue"

// Palette defines the accent colors a theme is generated from
type Palette struct {
	Name      string // "blue", "slate", etc.
	Primary   string // hex color #RRGGBB
	Secondary string // hex color #RRGGBB
}

// GetPalette returns a palette by name
func GetPalette(name string) *Palette {
	palettes := map[string]*Palette{
		"blue": {
			Name:      "blue",
			Primary:   "#1976d2",
			Secondary: "#9c27b0",
		},
		"slate": {
			Name:      "slate",
			Primary:   "#64748b",
			Secondary: "#0f172a",
		},
		"indigo": {
			Name:      "indigo",
			Primary:   "#4f46e5",
			Secondary: "#f97316",
		},
		"rose": {
			Name:      "rose",
			Primary:   "#e11d48",
			Secondary: "#64748b",
		},
		"emerald": {
			Name:      "emerald",
			Primary:   "#059669",
			Secondary: "#f59e0b",
		},
		"navy": {
			Name:      "navy",
			Primary:   "#000080",
			Secondary: "#fbbf24",
		},
		"purple": {
			Name:      "purple",
			Primary:   "#a855f7",
			Secondary: "#ec4899",
		},
		"teal": {
			Name:      "teal",
			Primary:   "#14b8a6",
			Secondary: "#f87171",
		},
		"amber": {
			Name:      "amber",
			Primary:   "#f59e0b",
			Secondary: "#6366f1",
		},
		"neutral": {
			Name:      "neutral",
			Primary:   "#6b7280",
			Secondary: "#4b5563",
		},
	}

	return palettes[name]
}

// ListPalettes returns all available palettes in order
func ListPalettes() []*Palette {
	names := []string{
		"blue", "slate", "indigo", "rose", "emerald",
		"navy", "purple", "teal", "amber", "neutral",
	}
	var palettes []*Palette
	for _, name := range names {
		if p := GetPalette(name); p != nil {
			palettes = append(palettes, p)
		}
	}
	return palettes
}
