package text

import (
	"regexp"
	"strings"

	"github.com/ntworthk/COTM-2023-04/internal/wordlists"
)

// wordRuns matches maximal runs of Unicode letters and digits. Anything
// else (punctuation, symbols, whitespace) separates tokens, so "don't"
// tokenizes as "don" and "t", and "COVID-19" as "covid" and "19".
var wordRuns = regexp.MustCompile(`[\p{L}\p{N}]+`)

// Options control tokenization. The zero value keeps every token;
// stopword removal is opt-in because the frequency table is built over
// the full vocabulary and only individual views filter it.
type Options struct {
	RemoveStopwords bool
	Stopwords       wordlists.Set
}

// Tokenize splits reflowed lines into lowercase tokens in scan order:
// line by line, left to right. Digit-only tokens are kept; they are a
// view-level concern, not a tokenizer one.
func Tokenize(lines []Line, opts Options) []string {
	var tokens []string
	for _, line := range lines {
		for _, tok := range wordRuns.FindAllString(strings.ToLower(line.Text), -1) {
			if opts.RemoveStopwords && opts.Stopwords.Contains(tok) {
				continue
			}
			tokens = append(tokens, tok)
		}
	}
	return tokens
}
