package themes

import "math"

// FontFamily is the base font stack: IBM Plex Sans with a serif fallback
const FontFamily = `"IBM Plex Sans",serif`

// responsiveFactor controls how strongly large variants shrink on small
// viewports
const responsiveFactor = 2.0

// ResponsiveStops are the breakpoints font sizes are re-evaluated at
var ResponsiveStops = [3]string{"sm", "md", "lg"}

const variantCount = 13

// Variant is one typography style. Sizes are in rem: Sizes[0] applies from
// xs up, Sizes[i] from ResponsiveStops[i-1] up.
type Variant struct {
	Name          string     `json:"name"`
	FontWeight    int        `json:"fontWeight"`
	LineHeight    float64    `json:"lineHeight"`
	LetterSpacing string     `json:"letterSpacing"`
	BaseSize      float64    `json:"baseSize"`
	Responsive    bool       `json:"responsive"`
	Sizes         [4]float64 `json:"sizes"`
}

// Typography is the resolved font configuration
type Typography struct {
	FontFamily   string                `json:"fontFamily"`
	HTMLFontSize int                   `json:"htmlFontSize"`
	Variants     [variantCount]Variant `json:"variants"`
}

// Variant looks up a variant by name
func (t Typography) Variant(name string) (Variant, bool) {
	for _, v := range t.Variants {
		if v.Name == name {
			return v, true
		}
	}
	return Variant{}, false
}

var baseVariants = [variantCount]Variant{
	{Name: "h1", FontWeight: 300, LineHeight: 1.167, LetterSpacing: "-0.01562em", BaseSize: 6},
	{Name: "h2", FontWeight: 300, LineHeight: 1.2, LetterSpacing: "-0.00833em", BaseSize: 3.75},
	{Name: "h3", FontWeight: 400, LineHeight: 1.167, LetterSpacing: "0em", BaseSize: 3},
	{Name: "h4", FontWeight: 400, LineHeight: 1.235, LetterSpacing: "0.00735em", BaseSize: 2.125},
	{Name: "h5", FontWeight: 400, LineHeight: 1.334, LetterSpacing: "0em", BaseSize: 1.5},
	{Name: "h6", FontWeight: 500, LineHeight: 1.6, LetterSpacing: "0.0075em", BaseSize: 1.25},
	{Name: "subtitle1", FontWeight: 400, LineHeight: 1.75, LetterSpacing: "0.00938em", BaseSize: 1},
	{Name: "subtitle2", FontWeight: 500, LineHeight: 1.57, LetterSpacing: "0.00714em", BaseSize: 0.875},
	{Name: "body1", FontWeight: 400, LineHeight: 1.5, LetterSpacing: "0.00938em", BaseSize: 1},
	{Name: "body2", FontWeight: 400, LineHeight: 1.43, LetterSpacing: "0.01071em", BaseSize: 0.875},
	{Name: "button", FontWeight: 500, LineHeight: 1.75, LetterSpacing: "0.02857em", BaseSize: 0.875},
	{Name: "caption", FontWeight: 400, LineHeight: 1.66, LetterSpacing: "0.03333em", BaseSize: 0.75},
	{Name: "overline", FontWeight: 400, LineHeight: 2.66, LetterSpacing: "0.08333em", BaseSize: 0.75},
}

func newTypography(bp Breakpoints) Typography {
	t := Typography{
		FontFamily:   FontFamily,
		HTMLFontSize: 16,
		Variants:     baseVariants,
	}
	return responsiveFontSizes(t, bp)
}

// responsiveFontSizes scales every variant larger than 1rem linearly from
// min = 1 + (max-1)/factor at xs up to its base size at the last stop
func responsiveFontSizes(t Typography, bp Breakpoints) Typography {
	stops := [3]int{bp.SM, bp.MD, bp.LG}
	last := float64(stops[len(stops)-1])

	for i := range t.Variants {
		v := &t.Variants[i]
		hi := v.BaseSize
		if hi <= 1 {
			for j := range v.Sizes {
				v.Sizes[j] = hi
			}
			v.Responsive = false
			continue
		}

		lo := 1 + (hi-1)/responsiveFactor
		v.Sizes[0] = roundRem(lo)
		for j, stop := range stops {
			v.Sizes[j+1] = roundRem(lo + (hi-lo)*float64(stop)/last)
		}
		v.Responsive = true
	}

	return t
}

func roundRem(v float64) float64 {
	return math.Round(v*1e4) / 1e4
}
