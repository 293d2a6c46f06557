package report

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/JonasHarsch/dasslcy/internal/bench"
)

// Plot renders mean run time against problem size for one variant as a
// terminal graph. Failed cells are skipped; an empty series yields an
// explanatory line instead of a graph.
func Plot(table *bench.Table, variant string) string {
	var data []float64
	var sizes []int
	for _, c := range table.Cells {
		if c.Variant != variant || c.Failed || c.Err != "" {
			continue
		}
		data = append(data, c.Mean.Seconds()*1e3)
		sizes = append(sizes, c.N)
	}
	if len(data) == 0 {
		return fmt.Sprintf("no successful cells for variant %q\n", variant)
	}

	caption := fmt.Sprintf("%s: mean time (ms) over N=%v", variant, sizes)
	return asciigraph.Plot(data,
		asciigraph.Height(10),
		asciigraph.Width(60),
		asciigraph.Caption(caption),
	)
}

// PlotAll stacks one graph per variant present in the table.
func PlotAll(table *bench.Table) string {
	var b strings.Builder
	for _, v := range table.Variants() {
		b.WriteString(Plot(table, v))
		b.WriteString("\n\n")
	}
	return b.String()
}
