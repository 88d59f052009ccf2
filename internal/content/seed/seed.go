// Package seed loads the canonical website content from YAML.
package seed

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/folio-lab/portfolio-backend/internal/content/domain"
)

//go:embed content.yaml
var defaultContent []byte

const yearPlaceholder = "{year}"

// Default returns the embedded content seed.
func Default(now time.Time) (*domain.WebsiteContent, error) {
	return Parse(bytes.NewReader(defaultContent), now)
}

// LoadFile reads content from path, falling back to the embedded seed when path is empty.
func LoadFile(path string, now time.Time) (*domain.WebsiteContent, error) {
	if path == "" {
		return Default(now)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open content file: %w", err)
	}
	defer f.Close()
	return Parse(f, now)
}

// Parse decodes and validates a YAML content document. Unknown keys are rejected.
func Parse(r io.Reader, now time.Time) (*domain.WebsiteContent, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var c domain.WebsiteContent
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("decode content yaml: %w", err)
	}

	year := strconv.Itoa(now.Year())
	c.Walk(func(_ string, _ domain.FieldClass, value *string) {
		*value = strings.TrimSpace(strings.ReplaceAll(*value, yearPlaceholder, year))
	})

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}
