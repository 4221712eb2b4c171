package chunker

import (
	"context"
	"strings"
	"unicode"
)

// Sentence splits prose into sentences with a lightweight rule set
// instead of a full tokenizer: a boundary is '.', '!' or '?' (plus any
// closing quotes) followed by whitespace and an uppercase letter,
// digit, or opening quote, or by the end of the text. Abbreviations,
// single-letter initials, and decimal numbers do not end a sentence.
// Trailing text without terminal punctuation becomes the last
// sentence, so nothing is dropped.
type Sentence struct{}

// NewSentence creates a sentence splitter.
func NewSentence() *Sentence {
	return &Sentence{}
}

func (s *Sentence) SplitText(_ context.Context, text string) ([]string, error) {
	return SplitSentences(text), nil
}

// abbreviations that commonly precede a period mid-sentence, matched
// case-insensitively against the word before a candidate boundary.
var abbreviations = map[string]bool{
	"mr": true, "mrs": true, "ms": true, "dr": true, "prof": true,
	"sr": true, "jr": true, "st": true, "vs": true,
	"e.g": true, "i.e": true, "fig": true, "dept": true,
	"approx": true, "inc": true, "ltd": true,
}

// SplitSentences splits text into trimmed, non-empty sentences. Text
// with no sentence-ending punctuation is returned whole as a single
// sentence; whitespace-only text yields an empty sequence.
func SplitSentences(text string) []string {
	runes := []rune(normalizeNewlines(text))

	var sentences []string
	start := 0
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r != '.' && r != '!' && r != '?' {
			continue
		}

		// Closing quotes belong to the current sentence.
		end := i + 1
		for end < len(runes) && isClosingQuote(runes[end]) {
			end++
		}

		if end < len(runes) {
			if !unicode.IsSpace(runes[end]) {
				// Mid-token punctuation, e.g. "3.14" or "example.com".
				continue
			}
			next := end
			for next < len(runes) && unicode.IsSpace(runes[next]) {
				next++
			}
			if next < len(runes) && !startsSentence(runes[next]) {
				continue
			}
		}

		if r == '.' && isAbbreviation(runes, start, i) {
			continue
		}

		if sentence := strings.TrimSpace(string(runes[start:end])); sentence != "" {
			sentences = append(sentences, sentence)
		}
		start = end
		i = end - 1
	}

	if tail := strings.TrimSpace(string(runes[start:])); tail != "" {
		sentences = append(sentences, tail)
	}
	return sentences
}

func startsSentence(r rune) bool {
	return unicode.IsUpper(r) || unicode.IsDigit(r) || isOpeningQuote(r)
}

func isOpeningQuote(r rune) bool {
	switch r {
	case '"', '\'', '“', '‘', '«':
		return true
	}
	return false
}

func isClosingQuote(r rune) bool {
	switch r {
	case '"', '\'', '”', '’', '»':
		return true
	}
	return false
}

// isAbbreviation reports whether the period at runes[dot] terminates a
// known abbreviation or a single-letter initial such as "J. Smith".
func isAbbreviation(runes []rune, start, dot int) bool {
	w := dot - 1
	for w >= start && (unicode.IsLetter(runes[w]) || runes[w] == '.') {
		w--
	}
	word := string(runes[w+1 : dot])
	if word == "" {
		return false
	}
	wordRunes := []rune(word)
	if len(wordRunes) == 1 && unicode.IsUpper(wordRunes[0]) {
		return true
	}
	return abbreviations[strings.ToLower(word)]
}
