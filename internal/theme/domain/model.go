package domain

import (
	"fmt"
	"strings"

	"github.com/folio-lab/portfolio-backend/internal/apperr"
)

// Mode is the active presentation mode.
type Mode string

const (
	ModeLight Mode = "light"
	ModeDark  Mode = "dark"
)

// ParseMode accepts "light" or "dark" in any case.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeLight:
		return ModeLight, nil
	case ModeDark:
		return ModeDark, nil
	default:
		return "", apperr.Validationf("unknown theme mode %q", s)
	}
}

// ColorSet assigns an HSL triplet ("H S% L%") to each of the 19 color roles.
type ColorSet struct {
	Background            string `json:"background"`
	Foreground            string `json:"foreground"`
	Card                  string `json:"card"`
	CardForeground        string `json:"cardForeground"`
	Popover               string `json:"popover"`
	PopoverForeground     string `json:"popoverForeground"`
	Primary               string `json:"primary"`
	PrimaryForeground     string `json:"primaryForeground"`
	Secondary             string `json:"secondary"`
	SecondaryForeground   string `json:"secondaryForeground"`
	Muted                 string `json:"muted"`
	MutedForeground       string `json:"mutedForeground"`
	Accent                string `json:"accent"`
	AccentForeground      string `json:"accentForeground"`
	Destructive           string `json:"destructive"`
	DestructiveForeground string `json:"destructiveForeground"`
	Border                string `json:"border"`
	Input                 string `json:"input"`
	Ring                  string `json:"ring"`
}

// Palette pairs the light and dark color sets.
type Palette struct {
	Light ColorSet `json:"light"`
	Dark  ColorSet `json:"dark"`
}

// ForMode returns the color set used in mode.
func (p *Palette) ForMode(mode Mode) *ColorSet {
	if mode == ModeDark {
		return &p.Dark
	}
	return &p.Light
}

// Normalize validates every role of both modes and rewrites each value into
// canonical triplet form. It reports every problem found, not just the first.
func (p *Palette) Normalize() error {
	var problems []string
	for _, mode := range []Mode{ModeLight, ModeDark} {
		set := p.ForMode(mode)
		for _, role := range Roles {
			ptr := role.field(set)
			if strings.TrimSpace(*ptr) == "" {
				problems = append(problems, fmt.Sprintf("%s.%s is missing", mode, role.Name))
				continue
			}
			t, err := ParseTriplet(*ptr)
			if err != nil {
				problems = append(problems, fmt.Sprintf("%s.%s: %v", mode, role.Name, err))
				continue
			}
			*ptr = t.String()
		}
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", apperr.ErrSchemaValidation, strings.Join(problems, "; "))
	}
	return nil
}

// Clone returns a copy of p.
func (p *Palette) Clone() *Palette {
	if p == nil {
		return nil
	}
	cp := *p
	return &cp
}
