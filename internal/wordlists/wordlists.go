// Package wordlists provides the static term sets the analysis views
// filter against: English stopwords, domain skip words, and calendar
// month names. The defaults are compiled into the binary; any list can
// be replaced at runtime from a YAML file of the shape `terms: [...]`.
package wordlists

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Snowball English stopword list, one term per line.
//
//go:embed stopwords_en.txt
var stopwordsEN string

// Set is a case-insensitive membership set of terms. Terms are stored
// lowercase; lookups lowercase their input.
type Set map[string]struct{}

// NewSet builds a Set from terms, trimming and lowercasing each.
// Empty terms are dropped.
func NewSet(terms ...string) Set {
	s := make(Set, len(terms))
	for _, term := range terms {
		term = strings.ToLower(strings.TrimSpace(term))
		if term == "" {
			continue
		}
		s[term] = struct{}{}
	}
	return s
}

// Contains reports whether term is in the set, ignoring case.
func (s Set) Contains(term string) bool {
	_, ok := s[strings.ToLower(term)]
	return ok
}

// Len returns the number of terms in the set.
func (s Set) Len() int { return len(s) }

// Stopwords returns the embedded Snowball English stopword list.
func Stopwords() Set {
	return NewSet(strings.Fields(stopwordsEN)...)
}

// SkipWords returns the domain terms that appear in every report
// (titles, running headers, boilerplate) and carry no signal in a
// top-words ranking.
func SkipWords() Set {
	return NewSet(
		"accc",
		"digital",
		"platform",
		"platforms",
		"inquiry",
		"report",
		"reports",
		"interim",
		"services",
		"australia",
		"australian",
	)
}

// Months returns the twelve English month names. Publication dates in
// running headers and footers put month names on every page, so the
// top-words view excludes them.
func Months() Set {
	return NewSet(
		"january", "february", "march", "april", "may", "june",
		"july", "august", "september", "october", "november", "december",
	)
}

// Lists bundles the filter sets the top-words view needs.
type Lists struct {
	Stopwords Set
	SkipWords Set
	Months    Set
}

// Defaults returns the built-in lists.
func Defaults() Lists {
	return Lists{
		Stopwords: Stopwords(),
		SkipWords: SkipWords(),
		Months:    Months(),
	}
}

// termFile is the YAML shape shared by all word-list override files.
type termFile struct {
	Terms []string `yaml:"terms"`
}

// FromYAMLFile loads a term set from a YAML file of the form
// `terms: [a, b, c]`. A file with no terms is an error, since silently
// filtering against an empty set is almost certainly a mistake.
func FromYAMLFile(path string) (Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading word list: %w", err)
	}
	var tf termFile
	if err := yaml.Unmarshal(data, &tf); err != nil {
		return nil, fmt.Errorf("parsing word list %s: %w", path, err)
	}
	if len(tf.Terms) == 0 {
		return nil, fmt.Errorf("word list %s contains no terms", path)
	}
	return NewSet(tf.Terms...), nil
}
