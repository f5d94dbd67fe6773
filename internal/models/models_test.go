package models

import (
	"strings"
	"testing"
)

func sampleTable() *Table {
	return &Table{Rows: []WordCount{
		{ReportID: "sep-2020", Word: "the", Count: 2, Proportion: 2.0 / 6.0},
		{ReportID: "sep-2020", Word: "cat", Count: 1, Proportion: 1.0 / 6.0},
		{ReportID: "mar-2021", Word: "market", Count: 3, Proportion: 3.0 / 4.0},
		{ReportID: "mar-2021", Word: "the", Count: 1, Proportion: 1.0 / 4.0},
	}}
}

func TestReportsFirstAppearanceOrder(t *testing.T) {
	table := sampleTable()
	got := table.Reports()
	want := []string{"sep-2020", "mar-2021"}
	if len(got) != len(want) {
		t.Fatalf("Reports() returned %d ids, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Reports()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestByReport(t *testing.T) {
	table := sampleTable()
	rows := table.ByReport("mar-2021")
	if len(rows) != 2 {
		t.Fatalf("ByReport(mar-2021) returned %d rows, want 2", len(rows))
	}
	if rows[0].Word != "market" || rows[1].Word != "the" {
		t.Errorf("ByReport(mar-2021) order = [%q, %q], want [market, the]", rows[0].Word, rows[1].Word)
	}
	if got := table.ByReport("missing"); got != nil {
		t.Errorf("ByReport(missing) = %v, want nil", got)
	}
}

func TestWriteCSV(t *testing.T) {
	table := &Table{Rows: []WordCount{
		{ReportID: "sep-2020", Word: "the", Count: 2, Proportion: 0.25},
	}}

	var buf strings.Builder
	if err := table.WriteCSV(&buf); err != nil {
		t.Fatalf("WriteCSV() error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("WriteCSV() produced %d lines, want 2", len(lines))
	}
	if lines[0] != "report,word,n,p" {
		t.Errorf("header = %q, want %q", lines[0], "report,word,n,p")
	}
	if lines[1] != "sep-2020,the,2,0.25" {
		t.Errorf("row = %q, want %q", lines[1], "sep-2020,the,2,0.25")
	}
}

func TestWriteCSVEmptyTable(t *testing.T) {
	var table Table
	var buf strings.Builder
	if err := table.WriteCSV(&buf); err != nil {
		t.Fatalf("WriteCSV() error = %v", err)
	}
	if got := strings.TrimSpace(buf.String()); got != "report,word,n,p" {
		t.Errorf("empty table CSV = %q, want header only", got)
	}
}
