// Package models defines the record types shared across the pipeline.
//
// Go Pattern: these are plain structs with no behavior beyond small
// helpers. The pipeline stages pass them by value in slices — no ORM,
// no shared mutable state. The JSON tags exist so the same records can
// be dumped for debugging or piped into other tools without a second
// set of DTOs.
package models

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// Report identifies one source document in the batch manifest. Source
// is either a URL (downloaded) or a path on disk (read in place).
// Manifest order is chart order, so the slice holding these is ordered.
type Report struct {
	ID     string `json:"id" yaml:"id"`
	Source string `json:"source" yaml:"source"`
}

// WordCount is one row of the frequency table: how many times a word
// occurred in one report, and the share of that report's tokens it
// represents.
type WordCount struct {
	ReportID   string  `json:"report"`
	Word       string  `json:"word"`
	Count      int     `json:"n"`
	Proportion float64 `json:"p"` // Count / total tokens in the report
}

// Table is the combined frequency table for a batch of reports.
// Rows are grouped by report in manifest order; within a report they
// keep the aggregator's canonical order (count descending, then word
// ascending), which downstream stable sorts rely on for tie-breaking.
type Table struct {
	Rows []WordCount
}

// Append adds rows to the table, preserving their order.
func (t *Table) Append(rows ...WordCount) {
	t.Rows = append(t.Rows, rows...)
}

// Reports returns the distinct report IDs in first-appearance order.
// The batch runner emits reports in manifest order, so this is also
// the chart order.
func (t *Table) Reports() []string {
	seen := make(map[string]struct{})
	var ids []string
	for _, row := range t.Rows {
		if _, ok := seen[row.ReportID]; ok {
			continue
		}
		seen[row.ReportID] = struct{}{}
		ids = append(ids, row.ReportID)
	}
	return ids
}

// ByReport returns the rows belonging to a single report, in table order.
func (t *Table) ByReport(reportID string) []WordCount {
	var rows []WordCount
	for _, row := range t.Rows {
		if row.ReportID == reportID {
			rows = append(rows, row)
		}
	}
	return rows
}

// WriteCSV writes the full table as CSV with a header row. Proportions
// are formatted with strconv.FormatFloat('g') so round-tripping through
// a spreadsheet loses nothing.
func (t *Table) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"report", "word", "n", "p"}); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}
	for _, row := range t.Rows {
		record := []string{
			row.ReportID,
			row.Word,
			strconv.Itoa(row.Count),
			strconv.FormatFloat(row.Proportion, 'g', -1, 64),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing csv row for %q: %w", row.Word, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ChartRow is one bar of an analysis chart. Value is whatever the view
// computed (a proportion or a share); Highlight marks the bar the view
// wants drawn in the accent colour.
type ChartRow struct {
	ReportID  string  `json:"report"`
	Label     string  `json:"label"`
	Value     float64 `json:"value"`
	Highlight bool    `json:"highlight,omitempty"`
}
