// Package words holds the word lists the game draws secret words from.
// A Catalog is built once from configuration and never changes afterwards,
// so it can be shared freely.
package words

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"
)

// CategoryInfo describes a category for listings.
type CategoryInfo struct {
	Name  string
	Count int
}

// Catalog maps category names to their words.
type Catalog struct {
	words map[string][]string
	names []string // sorted
}

// NewCatalog validates and normalises the given lists. Words are trimmed,
// lower-cased and deduplicated; anything that is not plain a-z is an error,
// as is an empty category or an empty catalog.
func NewCatalog(lists map[string][]string) (*Catalog, error) {
	if len(lists) == 0 {
		return nil, fmt.Errorf("words: no categories defined")
	}

	c := &Catalog{words: make(map[string][]string, len(lists))}
	for rawName, list := range lists {
		name := strings.ToLower(strings.TrimSpace(rawName))
		if name == "" {
			return nil, fmt.Errorf("words: category with empty name")
		}
		if _, exists := c.words[name]; exists {
			return nil, fmt.Errorf("words: category %q defined twice", name)
		}

		seen := make(map[string]bool, len(list))
		normalized := make([]string, 0, len(list))
		for _, raw := range list {
			w := strings.ToLower(strings.TrimSpace(raw))
			if !isWord(w) {
				return nil, fmt.Errorf("words: category %q: invalid word %q (only letters a-z allowed)", name, raw)
			}
			if seen[w] {
				continue
			}
			seen[w] = true
			normalized = append(normalized, w)
		}
		if len(normalized) == 0 {
			return nil, fmt.Errorf("words: category %q has no words", name)
		}

		c.words[name] = normalized
		c.names = append(c.names, name)
	}

	sort.Strings(c.names)
	return c, nil
}

// Categories returns all category names sorted alphabetically.
func (c *Catalog) Categories() []string {
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}

// List returns category names with their word counts, sorted by name.
func (c *Catalog) List() []CategoryInfo {
	result := make([]CategoryInfo, 0, len(c.names))
	for _, name := range c.names {
		result = append(result, CategoryInfo{Name: name, Count: len(c.words[name])})
	}
	return result
}

// Has reports whether a category exists.
func (c *Catalog) Has(category string) bool {
	_, ok := c.words[normalize(category)]
	return ok
}

// Words returns a copy of the words of a category, or nil if unknown.
func (c *Catalog) Words(category string) []string {
	list, ok := c.words[normalize(category)]
	if !ok {
		return nil
	}
	out := make([]string, len(list))
	copy(out, list)
	return out
}

// Pick chooses a secret word. A known category is used as is; an empty or
// unknown one is replaced by a category chosen uniformly at random. The word
// is then chosen uniformly within the category.
func (c *Catalog) Pick(rng *rand.Rand, category string) (string, string) {
	name := normalize(category)
	list, ok := c.words[name]
	if !ok {
		name = c.names[rng.Intn(len(c.names))]
		list = c.words[name]
	}
	return name, list[rng.Intn(len(list))]
}

func normalize(category string) string {
	return strings.ToLower(strings.TrimSpace(category))
}

func isWord(w string) bool {
	if w == "" {
		return false
	}
	for _, r := range w {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
