package engine

import (
	"iter"
	"strings"
	"unicode"
	"unicode/utf8"
)

// NoiseWords is the set of words excluded from indexing. Entries are stored
// lowercased, matching is case-insensitive. The set is immutable after load.
type NoiseWords map[string]struct{}

func NewNoiseWords(words []string) NoiseWords {
	nw := make(NoiseWords, len(words))
	for _, w := range words {
		nw[strings.ToLower(w)] = struct{}{}
	}
	return nw
}

// trailing punctuation stripped from keyword candidates
const trailingPunctuation = ".,?:;!"

// Tokenize splits content into raw whitespace-delimited tokens. Case and
// punctuation are preserved, Normalize decides what qualifies as a keyword.
func Tokenize(content string) iter.Seq[string] {
	return func(yield func(string) bool) {
		lastSplit := 0

		for i, char := range content {
			if !unicode.IsSpace(char) {
				continue
			}

			if i-lastSplit != 0 && !yield(content[lastSplit:i]) {
				return
			}
			// Update lastSplit considering the byte length of the character
			lastSplit = i + utf8.RuneLen(char)
		}

		if len(content)-lastSplit != 0 {
			yield(content[lastSplit:])
		}
	}
}

// Normalize returns the keyword form of a raw token: lowercased, trailing
// punctuation stripped. A token that is empty, a noise word or contains a
// non-letter rune is not a keyword and reports false.
func (nw NoiseWords) Normalize(raw string) (string, bool) {
	if len(raw) == 0 {
		return "", false
	}

	word := []rune(strings.ToLower(raw))
	for len(word) > 1 && strings.ContainsRune(trailingPunctuation, word[len(word)-1]) {
		word = word[:len(word)-1]
	}
	if len(word) == 0 {
		return "", false
	}

	keyword := string(word)
	if _, ok := nw[keyword]; ok {
		return "", false
	}

	for _, r := range word {
		if !unicode.IsLetter(r) {
			return "", false
		}
	}

	return keyword, true
}
