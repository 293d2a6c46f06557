package bench

// Cell is one (variant, N) entry of a sweep table. A failed cell keeps its
// failure count and status instead of pretending to a timing of zero.
type Cell struct {
	Variant string
	N       int
	Measurement
	Failed bool
	Err    string // setup error, when the cell never ran
}

// Table is the sweep result, ordered by size then variant.
type Table struct {
	Cells []Cell
}

// Lookup returns the cell for (variant, n), or nil.
func (t *Table) Lookup(variant string, n int) *Cell {
	for i := range t.Cells {
		if t.Cells[i].Variant == variant && t.Cells[i].N == n {
			return &t.Cells[i]
		}
	}
	return nil
}

// Variants lists the distinct variant names in first-seen order.
func (t *Table) Variants() []string {
	seen := make(map[string]bool)
	var names []string
	for _, c := range t.Cells {
		if !seen[c.Variant] {
			seen[c.Variant] = true
			names = append(names, c.Variant)
		}
	}
	return names
}

// Sizes lists the distinct problem sizes in first-seen order.
func (t *Table) Sizes() []int {
	seen := make(map[int]bool)
	var sizes []int
	for _, c := range t.Cells {
		if !seen[c.N] {
			seen[c.N] = true
			sizes = append(sizes, c.N)
		}
	}
	return sizes
}
