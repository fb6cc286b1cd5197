package catalog

import (
	"sort"
	"strings"

	"github.com/sahilm/fuzzy"
)

// searchSource exposes "id title" strings to the fuzzy matcher.
type searchSource []Diagram

func (s searchSource) String(i int) string {
	return s[i].ID + " " + s[i].Title
}

func (s searchSource) Len() int {
	return len(s)
}

// Search returns diagrams matching query, best match first. An exact id match
// always ranks first. An empty query matches nothing.
func (c *Catalog) Search(query string) []Diagram {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}

	matches := fuzzy.FindFrom(query, searchSource(c.diagrams))
	out := make([]Diagram, 0, len(matches)+1)

	exact, hasExact := c.Lookup(query)
	if hasExact {
		out = append(out, exact)
	}
	for _, m := range matches {
		d := c.diagrams[m.Index]
		if hasExact && d.ID == exact.ID {
			continue
		}
		out = append(out, d)
	}
	return out
}

// Filter returns diagrams matching query in catalog order, suitable for
// regrouping. An empty query returns the whole catalog.
func (c *Catalog) Filter(query string) []Diagram {
	if strings.TrimSpace(query) == "" {
		return c.All()
	}

	matches := fuzzy.FindFrom(strings.TrimSpace(query), searchSource(c.diagrams))
	indexes := make([]int, len(matches))
	for i, m := range matches {
		indexes[i] = m.Index
	}
	sort.Ints(indexes)

	out := make([]Diagram, len(indexes))
	for i, idx := range indexes {
		out[i] = c.diagrams[idx]
	}
	return out
}
