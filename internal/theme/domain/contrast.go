package domain

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// MinContrast is the WCAG AA ratio for body text.
const MinContrast = 4.5

// ContrastPair is a surface role and the text role drawn on it.
type ContrastPair struct {
	Surface string
	Text    string
}

var contrastPairs = []ContrastPair{
	{"background", "foreground"},
	{"card", "cardForeground"},
	{"popover", "popoverForeground"},
	{"primary", "primaryForeground"},
	{"secondary", "secondaryForeground"},
	{"muted", "mutedForeground"},
	{"accent", "accentForeground"},
	{"destructive", "destructiveForeground"},
}

// ContrastCheck is the measured ratio for one pair in one mode.
type ContrastCheck struct {
	Mode  Mode         `json:"mode"`
	Pair  ContrastPair `json:"pair"`
	Ratio float64      `json:"ratio"`
}

// Passes reports whether the ratio reaches MinContrast.
func (c ContrastCheck) Passes() bool { return c.Ratio >= MinContrast }

// ContrastReport measures every surface/text pair in both modes. Roles that
// fail to parse are skipped; call Normalize first.
func ContrastReport(p *Palette) []ContrastCheck {
	var out []ContrastCheck
	for _, mode := range []Mode{ModeLight, ModeDark} {
		set := p.ForMode(mode)
		for _, pair := range contrastPairs {
			bg, err1 := ParseTriplet(roleValue(set, pair.Surface))
			fg, err2 := ParseTriplet(roleValue(set, pair.Text))
			if err1 != nil || err2 != nil {
				continue
			}
			out = append(out, ContrastCheck{Mode: mode, Pair: pair, Ratio: ContrastRatio(bg, fg)})
		}
	}
	return out
}

// ContrastRatio is the WCAG 2.x contrast ratio between two colors, in [1, 21].
func ContrastRatio(a, b Triplet) float64 {
	la, lb := a.luminance(), b.luminance()
	if la < lb {
		la, lb = lb, la
	}
	ratio := (la + 0.05) / (lb + 0.05)
	return math.Round(ratio*100) / 100
}

func (t Triplet) luminance() float64 {
	c := colorful.Hsl(t.Hue, t.Saturation/100, t.Lightness/100).Clamped()
	r, g, b := c.LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}

func roleValue(set *ColorSet, name string) string {
	for _, r := range Roles {
		if r.Name == name {
			return r.Value(set)
		}
	}
	return ""
}
