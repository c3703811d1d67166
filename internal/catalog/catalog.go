// Package catalog holds the AI Act requirements used to seed gap assessments.
package catalog

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed requirements.yaml
var requirementsYAML []byte

// Entry is a single obligation.
type Entry struct {
	Article  string `yaml:"article" json:"article"`
	Title    string `yaml:"title" json:"title"`
	Category string `yaml:"category" json:"category"`
}

type file struct {
	Requirements []Entry `yaml:"requirements"`
}

// Load returns the embedded catalog.
func Load() ([]Entry, error) {
	return Parse(requirementsYAML)
}

// Parse decodes and validates a catalog document.
func Parse(data []byte) ([]Entry, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if len(f.Requirements) == 0 {
		return nil, fmt.Errorf("catalog has no requirements")
	}

	seen := make(map[string]bool, len(f.Requirements))
	for i, e := range f.Requirements {
		e.Article = strings.TrimSpace(e.Article)
		e.Title = strings.TrimSpace(e.Title)
		e.Category = strings.TrimSpace(e.Category)
		if e.Article == "" || e.Title == "" || e.Category == "" {
			return nil, fmt.Errorf("catalog entry %d: article, title and category are required", i+1)
		}
		key := e.Article + "|" + e.Title
		if seen[key] {
			return nil, fmt.Errorf("catalog entry %d: duplicate %s %q", i+1, e.Article, e.Title)
		}
		seen[key] = true
		f.Requirements[i] = e
	}
	return f.Requirements, nil
}

// Categories returns the distinct categories in first-seen order.
func Categories(entries []Entry) []string {
	var out []string
	seen := make(map[string]bool)
	for _, e := range entries {
		if !seen[e.Category] {
			seen[e.Category] = true
			out = append(out, e.Category)
		}
	}
	return out
}
