package text

import (
	"reflect"
	"testing"

	"github.com/ntworthk/COTM-2023-04/internal/wordlists"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		opts  Options
		want  []string
	}{
		{
			name:  "lowercases and splits on punctuation",
			input: "The Cat, sat.",
			want:  []string{"the", "cat", "sat"},
		},
		{
			name:  "hyphens and apostrophes split tokens",
			input: "don't over-report",
			want:  []string{"don", "t", "over", "report"},
		},
		{
			name:  "digit-only tokens are kept",
			input: "in 2023 the ACCC published 6 reports",
			want:  []string{"in", "2023", "the", "accc", "published", "6", "reports"},
		},
		{
			name:  "mixed alphanumerics stay whole",
			input: "section 4G applies",
			want:  []string{"section", "4g", "applies"},
		},
		{
			name:  "empty input",
			input: "",
			want:  nil,
		},
		{
			name:  "punctuation only",
			input: "--- ... !!!",
			want:  nil,
		},
		{
			name:  "stopword removal is opt-in",
			input: "the market for the services",
			opts: Options{
				RemoveStopwords: true,
				Stopwords:       wordlists.NewSet("the", "for"),
			},
			want: []string{"market", "services"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize([]Line{{Page: 1, Text: tt.input}}, tt.opts)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tokenize(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestTokenizeScanOrder(t *testing.T) {
	lines := []Line{
		{Page: 1, Text: "alpha beta"},
		{Page: 2, Text: "gamma"},
	}
	got := Tokenize(lines, Options{})
	want := []string{"alpha", "beta", "gamma"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokenize() order = %v, want %v", got, want)
	}
}

// TestTokenizeIsIdempotent pins the property that tokenizing the output
// of the tokenizer reproduces it exactly: tokens contain nothing that
// would split or change case on a second pass.
func TestTokenizeIsIdempotent(t *testing.T) {
	lines := []Line{{Page: 1, Text: "The ACCC's fifth Interim Report (September 2022) covers app-store issues"}}
	once := Tokenize(lines, Options{})

	var relined []Line
	for _, tok := range once {
		relined = append(relined, Line{Page: 1, Text: tok})
	}
	twice := Tokenize(relined, Options{})

	if !reflect.DeepEqual(once, twice) {
		t.Errorf("tokenization not idempotent:\n once = %v\ntwice = %v", once, twice)
	}
}
