package report

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/JonasHarsch/dasslcy/internal/bench"
	"github.com/JonasHarsch/dasslcy/internal/dassl"
)

func sampleTable() *bench.Table {
	return &bench.Table{Cells: []bench.Cell{
		{
			Variant: "loop", N: 10,
			Measurement: bench.Measurement{
				Samples: []time.Duration{time.Millisecond, 2 * time.Millisecond},
				Mean:    1500 * time.Microsecond,
				Stddev:  500 * time.Microsecond,
			},
		},
		{
			Variant: "vector", N: 10,
			Measurement: bench.Measurement{Failures: 3, Status: dassl.FailNewton},
			Failed:      true,
		},
	}}
}

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteTable(&buf, sampleTable()); err != nil {
		t.Fatal(err)
	}
	out := buf.String()

	if !strings.Contains(out, "VARIANT") {
		t.Error("missing header")
	}
	if !strings.Contains(out, "loop") || !strings.Contains(out, "vector") {
		t.Error("missing variant rows")
	}
	if !strings.Contains(out, "failed: newton-diverged") {
		t.Errorf("failed cell should show its status, got:\n%s", out)
	}
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "vector") && strings.Contains(line, "0s") {
			t.Errorf("failed cell must not render a zero timing: %q", line)
		}
	}
}

func TestExportJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := ExportJSON(&buf, sampleTable()); err != nil {
		t.Fatal(err)
	}

	var cells []ExportCell
	if err := json.Unmarshal(buf.Bytes(), &cells); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(cells) != 2 {
		t.Fatalf("expected 2 cells, got %d", len(cells))
	}
	if cells[0].Status != "success" || cells[0].MeanSec <= 0 {
		t.Errorf("unexpected success cell: %+v", cells[0])
	}
	if cells[1].Status != "newton-diverged" || cells[1].MeanSec != 0 {
		t.Errorf("unexpected failed cell: %+v", cells[1])
	}
}

func TestExportCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := ExportCSV(&buf, sampleTable()); err != nil {
		t.Fatal(err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("invalid CSV: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d", len(rows))
	}
	if rows[0][0] != "variant" {
		t.Errorf("unexpected header: %v", rows[0])
	}
	if rows[2][6] != "newton-diverged" {
		t.Errorf("expected failure status in CSV, got %v", rows[2])
	}
}

func TestPlot(t *testing.T) {
	out := Plot(sampleTable(), "loop")
	if !strings.Contains(out, "loop") {
		t.Errorf("plot should carry its caption, got:\n%s", out)
	}

	empty := Plot(sampleTable(), "vector")
	if !strings.Contains(empty, "no successful cells") {
		t.Errorf("all-failed variant should explain itself, got %q", empty)
	}
}

func TestPlotAll(t *testing.T) {
	out := PlotAll(sampleTable())
	if !strings.Contains(out, "loop") || !strings.Contains(out, "vector") {
		t.Error("expected a section per variant")
	}
}
