// Package freq aggregates token streams into per-report word counts.
package freq

import (
	"sort"

	"github.com/ntworthk/COTM-2023-04/internal/models"
)

// Count groups tokens by word and returns one row per distinct word
// carrying its count and its proportion of the report's total tokens.
// Rows come back ordered by count descending, then word ascending, so
// the result never depends on map iteration order. Zero tokens means
// zero rows; there is no division by zero to have.
func Count(reportID string, tokens []string) []models.WordCount {
	if len(tokens) == 0 {
		return nil
	}

	counts := make(map[string]int)
	for _, tok := range tokens {
		counts[tok]++
	}

	total := float64(len(tokens))
	rows := make([]models.WordCount, 0, len(counts))
	for word, n := range counts {
		rows = append(rows, models.WordCount{
			ReportID:   reportID,
			Word:       word,
			Count:      n,
			Proportion: float64(n) / total,
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Count != rows[j].Count {
			return rows[i].Count > rows[j].Count
		}
		return rows[i].Word < rows[j].Word
	})
	return rows
}
