package browser

import (
	"strings"

	"github.com/alexisbeaulieu97/deck/internal/catalog"
)

// navRow is either a group header or a selectable diagram.
type navRow struct {
	header  bool
	label   string
	diagram catalog.Diagram
}

// navPanel lists the catalog grouped by label. Rows are derived from the
// catalog and the filter query, and rebuilt only when one of them changes.
type navPanel struct {
	catalog *catalog.Catalog
	query   string
	rows    []navRow
	cursor  int
}

func newNavPanel(c *catalog.Catalog) navPanel {
	p := navPanel{cursor: -1}
	p.setCatalog(c)
	return p
}

// setCatalog regroups only when c is a different catalog.
func (p *navPanel) setCatalog(c *catalog.Catalog) {
	if c == p.catalog {
		return
	}
	p.catalog = c
	p.rebuild()
}

// setQuery narrows the rows to fuzzy matches of query.
func (p *navPanel) setQuery(query string) {
	if query == p.query {
		return
	}
	p.query = query
	p.rebuild()
}

func (p *navPanel) rebuild() {
	previous, hadSelection := p.selected()

	p.rows = nil
	p.cursor = -1
	if p.catalog == nil {
		return
	}

	for _, group := range catalog.Groups(p.catalog.Filter(p.query)) {
		p.rows = append(p.rows, navRow{header: true, label: group.Label})
		for _, d := range group.Diagrams {
			p.rows = append(p.rows, navRow{label: d.Title, diagram: d})
		}
	}

	if hadSelection && p.focus(previous.ID) {
		return
	}
	p.cursor = p.next(-1, 1)
}

// focus moves the cursor to id and reports whether it is listed.
func (p *navPanel) focus(id string) bool {
	for i, row := range p.rows {
		if !row.header && row.diagram.ID == id {
			p.cursor = i
			return true
		}
	}
	return false
}

// next returns the first diagram row after from in direction dir, wrapping,
// or -1 when there is none.
func (p *navPanel) next(from, dir int) int {
	n := len(p.rows)
	if n == 0 {
		return -1
	}
	i := from
	for step := 0; step < n; step++ {
		i = (i + dir + n) % n
		if !p.rows[i].header {
			return i
		}
	}
	return -1
}

func (p *navPanel) moveUp() {
	if p.cursor < 0 {
		return
	}
	p.cursor = p.next(p.cursor, -1)
}

func (p *navPanel) moveDown() {
	if p.cursor < 0 {
		return
	}
	p.cursor = p.next(p.cursor, 1)
}

// selected returns the diagram under the cursor.
func (p *navPanel) selected() (catalog.Diagram, bool) {
	if p.cursor < 0 || p.cursor >= len(p.rows) || p.rows[p.cursor].header {
		return catalog.Diagram{}, false
	}
	return p.rows[p.cursor].diagram, true
}

func (p *navPanel) view(activeID string, height int) string {
	if len(p.rows) == 0 {
		return mutedStyle.Render("No matching diagrams")
	}

	// Styled rows may span several lines, so the cursor is tracked as a line.
	lines := make([]string, 0, len(p.rows))
	cursorLine := 0
	for i, row := range p.rows {
		var rendered string
		switch {
		case row.header:
			rendered = groupStyle.Render(row.label)
		default:
			label := truncate(row.label, navWidth-4)
			if row.diagram.ID == activeID {
				label = activeMarkerStyle.Render("● ") + label
			}
			if i == p.cursor {
				rendered = selectedItemStyle.Render(label)
			} else {
				rendered = itemStyle.Render(label)
			}
		}

		lines = append(lines, strings.Split(rendered, "\n")...)
		if i == p.cursor {
			cursorLine = len(lines) - 1
		}
	}

	if height > 0 {
		lines = scrollWindow(lines, cursorLine, height)
	}
	return strings.Join(lines, "\n")
}

func truncate(s string, width int) string {
	r := []rune(s)
	if width <= 3 || len(r) <= width {
		return s
	}
	return string(r[:width-3]) + "..."
}

// scrollWindow returns at most height lines, scrolled so cursor is shown.
func scrollWindow(lines []string, cursor, height int) []string {
	if len(lines) <= height {
		return lines
	}
	start := 0
	if cursor >= height {
		start = cursor - height + 1
	}
	return lines[start : start+height]
}
