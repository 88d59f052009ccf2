package domain

import (
	"fmt"
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// Validate checks the structural invariants of the tree: every translatable
// caption present, project ids present and unique, and a parseable phone.
func (c *WebsiteContent) Validate() error {
	var problems []string

	c.Walk(func(path string, class FieldClass, value *string) {
		if class == Translatable && strings.TrimSpace(*value) == "" {
			problems = append(problems, path+" is required")
		}
	})

	seen := make(map[string]int, len(c.Projects))
	for i, p := range c.Projects {
		id := strings.TrimSpace(p.ID)
		if id == "" {
			problems = append(problems, fmt.Sprintf("projects[%d].id is required", i))
			continue
		}
		if prev, dup := seen[id]; dup {
			problems = append(problems, fmt.Sprintf("projects[%d].id %q duplicates projects[%d]", i, id, prev))
			continue
		}
		seen[id] = i
	}

	if phone := strings.TrimSpace(c.Author.Contact.Phone); phone != "" {
		if _, err := phonenumbers.Parse(phone, "US"); err != nil {
			problems = append(problems, fmt.Sprintf("author.contact.phone: %v", err))
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidContent, strings.Join(problems, "; "))
	}
	return nil
}
