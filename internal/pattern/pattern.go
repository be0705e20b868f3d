// Package pattern provides named seed patterns for the life grid and a
// global registry for them. Built-in patterns register themselves in
// init(), allowing the CLI to discover them without hardcoded lists.
package pattern

import (
	"fmt"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"
)

// Cell is a live-cell offset relative to the pattern anchor. When a
// pattern is stamped onto the grid the anchor lands on the grid center.
type Cell struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// Pattern is a named cluster of live cells.
type Pattern struct {
	ID    string `yaml:"id"`
	Name  string `yaml:"name"`
	Cells []Cell `yaml:"cells"`
}

// Info contains registry metadata about a pattern.
type Info struct {
	ID   string
	Name string
	Size int // number of live cells
}

var (
	mu       sync.RWMutex
	patterns = make(map[string]Pattern)
)

// Register adds a pattern to the registry. Typically called from init().
// Panics if a pattern with the same ID is already registered.
func Register(p Pattern) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := patterns[p.ID]; exists {
		panic(fmt.Sprintf("pattern: %q already registered", p.ID))
	}
	patterns[p.ID] = p
}

// Get returns the pattern with the given ID.
func Get(id string) (Pattern, error) {
	mu.RLock()
	defer mu.RUnlock()

	p, ok := patterns[id]
	if !ok {
		return Pattern{}, fmt.Errorf("pattern: unknown pattern %q", id)
	}
	return p, nil
}

// Exists checks whether a pattern with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := patterns[id]
	return ok
}

// List returns metadata for all registered patterns, sorted by ID.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(patterns))
	for _, p := range patterns {
		result = append(result, Info{ID: p.ID, Name: p.Name, Size: len(p.Cells)})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Offsets returns the pattern's cells as (x, y) pairs, the form the grid's
// Seed method consumes.
func (p Pattern) Offsets() [][2]int {
	out := make([][2]int, len(p.Cells))
	for i, c := range p.Cells {
		out[i] = [2]int{c.X, c.Y}
	}
	return out
}

// FromYAML parses a pattern definition from YAML bytes.
func FromYAML(data []byte) (Pattern, error) {
	var p Pattern
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Pattern{}, fmt.Errorf("pattern: cannot parse pattern file: %w", err)
	}
	if p.ID == "" {
		return Pattern{}, fmt.Errorf("pattern: pattern file is missing an id")
	}
	if len(p.Cells) == 0 {
		return Pattern{}, fmt.Errorf("pattern: pattern %q has no cells", p.ID)
	}
	return p, nil
}
