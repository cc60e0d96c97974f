// Package catalog holds the static registry of supported input formats.
// The registry is declarative: it is loaded once from an embedded YAML
// file and never changes at runtime.
package catalog

import (
	"embed"
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed config/*.yaml
var configFiles embed.FS

// Category groups related formats for display, e.g. "📝 Documents".
type Category struct {
	Label      string   `yaml:"label" json:"label"`
	Formats    []string `yaml:"formats" json:"formats"`       // Human-readable names
	Extensions []string `yaml:"extensions" json:"extensions"` // Accepted extensions, no dot
}

// Catalog answers which uploads the converter accepts. Read-only after New.
type Catalog struct {
	categories []Category
	extensions []string // Ordered as declared, deduplicated
	accepted   map[string]struct{}
	attribute  string // Precomputed ".docx,.doc,..." accept string
}

// New loads the embedded format registry.
func New() (*Catalog, error) {
	data, err := configFiles.ReadFile("config/formats.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read formats.yaml: %w", err)
	}

	var doc struct {
		Categories []Category `yaml:"categories"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal formats.yaml: %w", err)
	}
	if len(doc.Categories) == 0 {
		return nil, fmt.Errorf("formats.yaml declares no categories")
	}

	c := &Catalog{
		categories: doc.Categories,
		accepted:   make(map[string]struct{}),
	}

	dotted := make([]string, 0, 16)
	for _, cat := range doc.Categories {
		if len(cat.Extensions) == 0 {
			return nil, fmt.Errorf("category %q declares no extensions", cat.Label)
		}
		for _, ext := range cat.Extensions {
			ext = strings.ToLower(strings.TrimPrefix(ext, "."))
			if _, ok := c.accepted[ext]; ok {
				continue
			}
			c.accepted[ext] = struct{}{}
			c.extensions = append(c.extensions, ext)
			dotted = append(dotted, "."+ext)
		}
	}
	c.attribute = strings.Join(dotted, ",")

	return c, nil
}

// Categories returns the display categories in declaration order.
func (c *Catalog) Categories() []Category {
	return c.categories
}

// Extensions returns every accepted extension, ordered and deduplicated.
func (c *Catalog) Extensions() []string {
	return c.extensions
}

// Accepts reports whether the filename carries an accepted extension.
// Matching is case-insensitive; a name without an extension never matches.
func (c *Catalog) Accepts(filename string) bool {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	if ext == "" {
		return false
	}
	_, ok := c.accepted[ext]
	return ok
}

// AcceptAttribute returns the comma-joined dotted extension list for the
// file input's accept attribute, e.g. ".docx,.doc,.pdf".
func (c *Catalog) AcceptAttribute() string {
	return c.attribute
}
