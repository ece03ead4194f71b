package engine

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected []string
	}{
		{
			name:     "preserves case and punctuation",
			content:  "Hello,  world! The\nDeep sea.",
			expected: []string{"Hello,", "world!", "The", "Deep", "sea."},
		},
		{
			name:     "empty content",
			content:  "",
			expected: nil,
		},
		{
			name:     "only whitespace",
			content:  " \t\n ",
			expected: nil,
		},
		{
			name:     "no trailing whitespace",
			content:  "one two",
			expected: []string{"one", "two"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []string
			for token := range Tokenize(tt.content) {
				got = append(got, token)
			}
			if diff := cmp.Diff(tt.expected, got); diff != "" {
				t.Errorf("Tokenize() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTokenizeEarlyStop(t *testing.T) {
	var got []string
	for token := range Tokenize("one two three") {
		got = append(got, token)
		break
	}
	if len(got) != 1 || got[0] != "one" {
		t.Errorf("expected single token \"one\", got %v", got)
	}
}

func TestNormalize(t *testing.T) {
	noise := NewNoiseWords([]string{"the", "a"})

	tests := []struct {
		raw      string
		expected string
		ok       bool
	}{
		{raw: "deep", expected: "deep", ok: true},
		{raw: "DEEP", expected: "deep", ok: true},
		{raw: "Deep!", expected: "deep", ok: true},
		{raw: "equation.", expected: "equation", ok: true},
		{raw: "etc...", expected: "etc", ok: true},
		{raw: "distance,", expected: "distance", ok: true},
		{raw: "the", ok: false},
		{raw: "The", ok: false},
		{raw: "THE!", ok: false},
		{raw: "a", ok: false},
		{raw: "won't", ok: false},
		{raw: "test1", ok: false},
		{raw: "i7", ok: false},
		{raw: "", ok: false},
		{raw: "!", ok: false},
		{raw: "!!", ok: false},
		{raw: "...", ok: false},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := noise.Normalize(tt.raw)
			if ok != tt.ok {
				t.Fatalf("Normalize(%q) ok = %v, want %v", tt.raw, ok, tt.ok)
			}
			if ok && got != tt.expected {
				t.Errorf("Normalize(%q) = %q, want %q", tt.raw, got, tt.expected)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	noise := NewNoiseWords([]string{"the", "a"})

	for _, raw := range []string{"Deep!", "Equation.", "sea", "WORLD,"} {
		first, ok := noise.Normalize(raw)
		if !ok {
			t.Fatalf("Normalize(%q) unexpectedly rejected", raw)
		}
		second, ok := noise.Normalize(first)
		if !ok || second != first {
			t.Errorf("Normalize(%q) = %q, not idempotent (second pass %q, %v)", raw, first, second, ok)
		}
	}
}

func TestNormalizeCaseInsensitive(t *testing.T) {
	noise := NewNoiseWords([]string{"the", "a"})

	upper, _ := noise.Normalize("Deep!")
	lower, _ := noise.Normalize("deep")
	if upper != lower {
		t.Errorf("Normalize(\"Deep!\") = %q, Normalize(\"deep\") = %q, want equal", upper, lower)
	}
}

func TestNoiseWordsAnyCase(t *testing.T) {
	// The noise file itself may carry any case.
	noise := NewNoiseWords([]string{"The", "A", "AND"})

	for _, raw := range []string{"the", "THE", "The", "a", "and", "And!"} {
		if _, ok := noise.Normalize(raw); ok {
			t.Errorf("Normalize(%q) accepted a noise word", raw)
		}
	}
}
