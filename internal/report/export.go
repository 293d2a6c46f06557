package report

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/JonasHarsch/dasslcy/internal/bench"
	"github.com/JonasHarsch/dasslcy/internal/dassl"
)

// ExportCell is the stable export shape of one sweep cell. Times are in
// seconds; failed cells carry a status string and no timing.
type ExportCell struct {
	Variant    string    `json:"variant"`
	N          int       `json:"n"`
	MeanSec    float64   `json:"mean_sec"`
	StddevSec  float64   `json:"stddev_sec"`
	SampleSecs []float64 `json:"samples_sec"`
	Failures   int       `json:"failures"`
	Status     string    `json:"status"`
	Noisy      bool      `json:"noisy,omitempty"`
}

func exportCells(table *bench.Table) []ExportCell {
	cells := make([]ExportCell, 0, len(table.Cells))
	for _, c := range table.Cells {
		ec := ExportCell{
			Variant:  c.Variant,
			N:        c.N,
			Failures: c.Failures,
			Status:   "success",
			Noisy:    c.Noisy,
		}
		switch {
		case c.Err != "":
			ec.Status = c.Err
		case c.Failed:
			ec.Status = dassl.StatusString(c.Status)
		default:
			ec.MeanSec = c.Mean.Seconds()
			ec.StddevSec = c.Stddev.Seconds()
			for _, s := range c.Samples {
				ec.SampleSecs = append(ec.SampleSecs, s.Seconds())
			}
		}
		cells = append(cells, ec)
	}
	return cells
}

func ExportJSON(w io.Writer, table *bench.Table) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(exportCells(table))
}

func ExportCSV(w io.Writer, table *bench.Table) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"variant", "n", "mean_sec", "stddev_sec", "samples", "failures", "status"}); err != nil {
		return err
	}
	for _, ec := range exportCells(table) {
		row := []string{
			ec.Variant,
			strconv.Itoa(ec.N),
			strconv.FormatFloat(ec.MeanSec, 'g', -1, 64),
			strconv.FormatFloat(ec.StddevSec, 'g', -1, 64),
			strconv.Itoa(len(ec.SampleSecs)),
			strconv.Itoa(ec.Failures),
			ec.Status,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
