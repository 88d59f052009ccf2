package domain

// RoleCount is the fixed number of color roles in a ColorSet.
const RoleCount = 19

// Role binds a color role to the CSS variable it drives.
type Role struct {
	Name        string // JSON field name
	Var         string // CSS custom property
	Description string
	field       func(*ColorSet) *string
}

// Roles is the static role table, in stylesheet order.
var Roles = [RoleCount]Role{
	{"background", "--background", "page background", func(c *ColorSet) *string { return &c.Background }},
	{"foreground", "--foreground", "body text", func(c *ColorSet) *string { return &c.Foreground }},
	{"card", "--card", "card background", func(c *ColorSet) *string { return &c.Card }},
	{"cardForeground", "--card-foreground", "text on cards", func(c *ColorSet) *string { return &c.CardForeground }},
	{"popover", "--popover", "popover background", func(c *ColorSet) *string { return &c.Popover }},
	{"popoverForeground", "--popover-foreground", "text on popovers", func(c *ColorSet) *string { return &c.PopoverForeground }},
	{"primary", "--primary", "primary brand color", func(c *ColorSet) *string { return &c.Primary }},
	{"primaryForeground", "--primary-foreground", "text on primary backgrounds", func(c *ColorSet) *string { return &c.PrimaryForeground }},
	{"secondary", "--secondary", "secondary brand color", func(c *ColorSet) *string { return &c.Secondary }},
	{"secondaryForeground", "--secondary-foreground", "text on secondary backgrounds", func(c *ColorSet) *string { return &c.SecondaryForeground }},
	{"muted", "--muted", "muted background", func(c *ColorSet) *string { return &c.Muted }},
	{"mutedForeground", "--muted-foreground", "muted text", func(c *ColorSet) *string { return &c.MutedForeground }},
	{"accent", "--accent", "accent color", func(c *ColorSet) *string { return &c.Accent }},
	{"accentForeground", "--accent-foreground", "text on accent backgrounds", func(c *ColorSet) *string { return &c.AccentForeground }},
	{"destructive", "--destructive", "destructive/error color", func(c *ColorSet) *string { return &c.Destructive }},
	{"destructiveForeground", "--destructive-foreground", "text on destructive backgrounds", func(c *ColorSet) *string { return &c.DestructiveForeground }},
	{"border", "--border", "border color", func(c *ColorSet) *string { return &c.Border }},
	{"input", "--input", "input field background", func(c *ColorSet) *string { return &c.Input }},
	{"ring", "--ring", "focus ring", func(c *ColorSet) *string { return &c.Ring }},
}

// Value returns the triplet assigned to role in c.
func (r Role) Value(c *ColorSet) string {
	return *r.field(c)
}
