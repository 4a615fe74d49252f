// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package taxonomy defines the ordered keyword taxonomy that drives
// classification. Implements: prd002-classification (R1, R4);
//
//	docs/ARCHITECTURE § Taxonomy.
package taxonomy

import (
	"fmt"
	"os"
	"strings"

	"go.yaml.in/yaml/v3"
)

// BucketOther is the reserved bucket name that collects unclassified
// records. It is not a valid category name (R1.2).
const BucketOther = "other"

// Category is a named technology bucket with its ordered match phrases.
// Static configuration; never mutated at runtime.
type Category struct {
	Name     string   `json:"name" yaml:"name"`
	Keywords []string `json:"keywords" yaml:"keywords"`
}

// Taxonomy is a fixed, ordered category list. Declaration order is part of
// the classification contract: ties in scoring resolve to the earliest
// declared category (R1.1).
type Taxonomy struct {
	categories []Category
}

// New validates categories and returns a Taxonomy with every keyword
// case-folded once at construction (R1.3).
func New(categories []Category) (*Taxonomy, error) {
	if len(categories) == 0 {
		return nil, fmt.Errorf("taxonomy has no categories")
	}

	seen := make(map[string]bool, len(categories))
	folded := make([]Category, 0, len(categories))

	for i, c := range categories {
		name := strings.TrimSpace(c.Name)
		if name == "" {
			return nil, fmt.Errorf("category %d has an empty name", i)
		}
		if name == BucketOther {
			return nil, fmt.Errorf("category name %q is reserved for the unclassified bucket", BucketOther)
		}
		if seen[name] {
			return nil, fmt.Errorf("duplicate category name %q", name)
		}
		seen[name] = true

		if len(c.Keywords) == 0 {
			return nil, fmt.Errorf("category %q has no keywords", name)
		}
		keywords := make([]string, len(c.Keywords))
		for j, kw := range c.Keywords {
			kw = strings.TrimSpace(kw)
			if kw == "" {
				return nil, fmt.Errorf("category %q has an empty keyword", name)
			}
			keywords[j] = strings.ToLower(kw)
		}

		folded = append(folded, Category{Name: name, Keywords: keywords})
	}

	return &Taxonomy{categories: folded}, nil
}

// Categories returns the categories in declaration order. Callers must not
// mutate the returned slice.
func (t *Taxonomy) Categories() []Category {
	return t.categories
}

// Names returns the category names in declaration order.
func (t *Taxonomy) Names() []string {
	names := make([]string, len(t.categories))
	for i, c := range t.categories {
		names[i] = c.Name
	}
	return names
}

// Len returns the number of categories.
func (t *Taxonomy) Len() int {
	return len(t.categories)
}

// Load reads a category list from a YAML file and validates it (R4.2).
// The file holds a sequence of {name, keywords} entries; sequence order
// becomes declaration order.
func Load(path string) (*Taxonomy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading taxonomy %s: %w", path, err)
	}
	var categories []Category
	if err := yaml.Unmarshal(data, &categories); err != nil {
		return nil, fmt.Errorf("parsing taxonomy %s: %w", path, err)
	}
	t, err := New(categories)
	if err != nil {
		return nil, fmt.Errorf("taxonomy %s: %w", path, err)
	}
	return t, nil
}
