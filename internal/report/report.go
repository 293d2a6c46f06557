// Package report renders sweep tables for terminals and exports them for
// external tooling. It stays decoupled from how results were produced: it
// only consumes bench.Table values.
package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/JonasHarsch/dasslcy/internal/bench"
	"github.com/JonasHarsch/dasslcy/internal/dassl"
)

// WriteTable renders the sweep as an aligned text table. Failed cells show
// their status instead of a timing, never a zero duration.
func WriteTable(out io.Writer, table *bench.Table) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "VARIANT\tN\tMEAN\tSTDDEV\tSAMPLES\tSTATUS")

	for _, c := range table.Cells {
		status := "ok"
		switch {
		case c.Err != "":
			status = "error: " + c.Err
		case c.Failed:
			status = "failed: " + dassl.StatusString(c.Status)
		case c.Noisy:
			status = "ok (noisy)"
		}

		if c.Failed || c.Err != "" {
			fmt.Fprintf(w, "%s\t%d\t-\t-\t%d\t%s\n", c.Variant, c.N, len(c.Samples), status)
			continue
		}
		fmt.Fprintf(w, "%s\t%d\t%v\t%v\t%d\t%s\n", c.Variant, c.N, c.Mean, c.Stddev, len(c.Samples), status)
	}
	return w.Flush()
}
