package domain

import "strings"

// StyleVar is one applied CSS custom property.
type StyleVar struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// StyleSheet always holds exactly one entry per role.
type StyleSheet [RoleCount]StyleVar

// ApplyTheme maps every role of palette[mode] onto its CSS variable.
// A nil palette falls back to DefaultPalette.
func ApplyTheme(mode Mode, palette *Palette) StyleSheet {
	if palette == nil {
		palette = DefaultPalette()
	}
	set := palette.ForMode(mode)

	var sheet StyleSheet
	for i, role := range Roles {
		sheet[i] = StyleVar{Name: role.Var, Value: role.Value(set)}
	}
	return sheet
}

// Map returns the sheet keyed by variable name.
func (s StyleSheet) Map() map[string]string {
	out := make(map[string]string, len(s))
	for _, v := range s {
		out[v.Name] = v.Value
	}
	return out
}

// CSS renders the sheet as a :root rule.
func (s StyleSheet) CSS() string {
	var b strings.Builder
	b.WriteString(":root {\n")
	for _, v := range s {
		b.WriteString("  ")
		b.WriteString(v.Name)
		b.WriteString(": ")
		b.WriteString(v.Value)
		b.WriteString(";\n")
	}
	b.WriteString("}\n")
	return b.String()
}
