package main

import "testing"

func TestQuoteList(t *testing.T) {
	tests := []struct {
		name  string
		words []string
		want  string
	}{
		{"empty", nil, ""},
		{"single", []string{"accc"}, `"accc"`},
		{"pair", []string{"may", "can"}, `"may" or "can"`},
		{"triple", []string{"may", "can", "could"}, `"may", "can" or "could"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := quoteList(tt.words); got != tt.want {
				t.Errorf("quoteList(%v) = %q, want %q", tt.words, got, tt.want)
			}
		})
	}
}
