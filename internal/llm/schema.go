package llm

import (
	"reflect"
	"strings"

	"google.golang.org/genai"

	themedomain "github.com/folio-lab/portfolio-backend/internal/theme/domain"
)

// schemaFor derives a response schema from the json tags of t. Fields tagged
// omitempty are optional.
func schemaFor(t reflect.Type) *genai.Schema {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.String:
		return &genai.Schema{Type: genai.TypeString}
	case reflect.Slice, reflect.Array:
		return &genai.Schema{Type: genai.TypeArray, Items: schemaFor(t.Elem())}
	case reflect.Struct:
		s := &genai.Schema{Type: genai.TypeObject, Properties: map[string]*genai.Schema{}}
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			tag := f.Tag.Get("json")
			if !f.IsExported() || tag == "-" {
				continue
			}
			name, opts, _ := strings.Cut(tag, ",")
			if name == "" {
				name = f.Name
			}
			s.Properties[name] = schemaFor(f.Type)
			s.PropertyOrdering = append(s.PropertyOrdering, name)
			if !strings.Contains(opts, "omitempty") {
				s.Required = append(s.Required, name)
			}
		}
		return s
	default:
		return &genai.Schema{Type: genai.TypeUnspecified}
	}
}

func colorSetSchema(mode string) *genai.Schema {
	s := &genai.Schema{
		Type:        genai.TypeObject,
		Description: "The full color palette for the " + mode + " theme.",
		Properties:  map[string]*genai.Schema{},
	}
	for _, r := range themedomain.Roles {
		s.Properties[r.Name] = &genai.Schema{
			Type:        genai.TypeString,
			Description: "The " + r.Description + " in HSL format without the hsl() wrapper, e.g. \"231 60% 94%\".",
		}
		s.PropertyOrdering = append(s.PropertyOrdering, r.Name)
		s.Required = append(s.Required, r.Name)
	}
	return s
}

func paletteSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"light": colorSetSchema("light"),
			"dark":  colorSetSchema("dark"),
		},
		PropertyOrdering: []string{"light", "dark"},
		Required:         []string{"light", "dark"},
	}
}

func singleFieldSchema(field, description string) *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			field: {Type: genai.TypeString, Description: description},
		},
		Required: []string{field},
	}
}
