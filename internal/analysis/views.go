// Package analysis derives the chart views from the combined frequency
// table: the top substantive words per report, and the share a keyword
// set (or a single term) takes of each report's tokens.
//
// The two share views deliberately read the aggregator's unfiltered
// proportions. "could" is an English stopword, so computing qualifier
// shares over a stopword-filtered table would silently drop a third of
// the keyword set.
package analysis

import (
	"sort"
	"strings"
	"unicode"

	"github.com/ntworthk/COTM-2023-04/internal/models"
	"github.com/ntworthk/COTM-2023-04/internal/wordlists"
)

// TopWords ranks each report's substantive vocabulary. Stopwords,
// tokens containing digits, skip-list terms and month names are
// removed; proportions are recomputed over the surviving vocabulary;
// the n highest-count words per report are returned, reports in table
// order. The sort is stable, so words tied on count keep the
// aggregator's alphabetical order. A report with no surviving words is
// omitted.
func TopWords(table *models.Table, lists wordlists.Lists, n int) []models.ChartRow {
	var out []models.ChartRow
	for _, reportID := range table.Reports() {
		var kept []models.WordCount
		totalValid := 0
		for _, row := range table.ByReport(reportID) {
			if !valid(row.Word, lists) {
				continue
			}
			kept = append(kept, row)
			totalValid += row.Count
		}
		if totalValid == 0 {
			continue
		}

		sort.SliceStable(kept, func(i, j int) bool { return kept[i].Count > kept[j].Count })
		if len(kept) > n {
			kept = kept[:n]
		}
		for _, row := range kept {
			out = append(out, models.ChartRow{
				ReportID: reportID,
				Label:    row.Word,
				Value:    float64(row.Count) / float64(totalValid),
			})
		}
	}
	return out
}

// KeywordShare sums each report's unfiltered proportions over the given
// keyword set. Reports with no matching rows are omitted. Rows come
// back sorted ascending by share (ties keep table order) with the
// maximum highlighted; drawn bottom-up on a horizontal chart, that puts
// the biggest bar on top.
func KeywordShare(table *models.Table, keywords wordlists.Set) []models.ChartRow {
	var out []models.ChartRow
	for _, reportID := range table.Reports() {
		share := 0.0
		matched := false
		for _, row := range table.ByReport(reportID) {
			if keywords.Contains(row.Word) {
				share += row.Proportion
				matched = true
			}
		}
		if !matched {
			continue
		}
		out = append(out, models.ChartRow{ReportID: reportID, Label: reportID, Value: share})
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Value < out[j].Value })
	highlightMax(out)
	return out
}

// TermShare is KeywordShare for a single word.
func TermShare(table *models.Table, term string) []models.ChartRow {
	return KeywordShare(table, wordlists.NewSet(term))
}

// valid applies the top-words filters to one word.
func valid(word string, lists wordlists.Lists) bool {
	if strings.ContainsFunc(word, unicode.IsDigit) {
		return false
	}
	if lists.Stopwords.Contains(word) || lists.SkipWords.Contains(word) || lists.Months.Contains(word) {
		return false
	}
	return true
}

// highlightMax flags every row carrying the maximum value. After an
// ascending sort the maximum sits at the end.
func highlightMax(rows []models.ChartRow) {
	if len(rows) == 0 {
		return
	}
	max := rows[len(rows)-1].Value
	for i := range rows {
		rows[i].Highlight = rows[i].Value == max
	}
}
