package catalog

// Group is a run of diagrams sharing a display label.
type Group struct {
	Label    string
	Diagrams []Diagram
}

// Groups partitions diagrams by Group label. Groups appear in order of first
// occurrence and members keep catalog order. It has no side effects, so callers
// may cache the result for as long as they hold the same catalog.
func Groups(diagrams []Diagram) []Group {
	var groups []Group
	position := make(map[string]int)

	for _, d := range diagrams {
		i, ok := position[d.Group]
		if !ok {
			i = len(groups)
			position[d.Group] = i
			groups = append(groups, Group{Label: d.Group})
		}
		groups[i].Diagrams = append(groups[i].Diagrams, d)
	}

	return groups
}

// Groups returns the grouping of the whole catalog.
func (c *Catalog) Groups() []Group {
	return Groups(c.diagrams)
}
