package domain

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// tripletRegex accepts "H S% L%" with optional decimals and single spaces;
// the hsl() wrapper, commas and a hue unit are rejected.
var tripletRegex = regexp.MustCompile(`^(\d+(?:\.\d+)?) (\d+(?:\.\d+)?)% (\d+(?:\.\d+)?)%$`)

// CanonicalTriplet is the shape of every normalized role value.
var CanonicalTriplet = regexp.MustCompile(`^\d+(\.\d+)? \d+% \d+%$`)

// Triplet is one HSL color.
type Triplet struct {
	Hue        float64 // degrees, [0, 360]
	Saturation float64 // percent, [0, 100]
	Lightness  float64 // percent, [0, 100]
}

// ParseTriplet parses a space separated HSL triplet such as "210 40% 96.1%".
func ParseTriplet(s string) (Triplet, error) {
	m := tripletRegex.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return Triplet{}, fmt.Errorf("malformed HSL triplet %q", s)
	}
	h, _ := strconv.ParseFloat(m[1], 64)
	sat, _ := strconv.ParseFloat(m[2], 64)
	l, _ := strconv.ParseFloat(m[3], 64)

	if h > 360 {
		return Triplet{}, fmt.Errorf("hue %v out of range in %q", h, s)
	}
	if sat > 100 || l > 100 {
		return Triplet{}, fmt.Errorf("percentage out of range in %q", s)
	}
	return Triplet{Hue: h, Saturation: sat, Lightness: l}, nil
}

// String renders the canonical form: hue with at most one decimal, integral percentages.
func (t Triplet) String() string {
	hue := strconv.FormatFloat(math.Round(t.Hue*10)/10, 'f', -1, 64)
	return fmt.Sprintf("%s %d%% %d%%", hue, int(math.Round(t.Saturation)), int(math.Round(t.Lightness)))
}
