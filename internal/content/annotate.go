package content

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	// Marker is appended to every annotated word.
	Marker = "™"

	// DefaultWordLength is the word length annotated when none is configured.
	DefaultWordLength = 6
)

// SuffixAnnotator appends [Marker] to every maximal run of letters whose
// length is exactly the configured word length.
type SuffixAnnotator struct {
	wordLength int
}

// NewSuffixAnnotator returns a [SuffixAnnotator] marking words of wordLength
// letters.
func NewSuffixAnnotator(wordLength int) (SuffixAnnotator, error) {
	if wordLength <= 0 {
		return SuffixAnnotator{}, fmt.Errorf("%w: got %d", ErrInvalidWordLength, wordLength)
	}
	return SuffixAnnotator{wordLength: wordLength}, nil
}

// WordLength returns the number of letters a word needs to be marked.
func (a SuffixAnnotator) WordLength() int { return a.wordLength }

// TransformText satisfies [TextTransformer]. Input bytes are copied through
// unchanged, including invalid UTF-8, which counts as a non-letter.
func (a SuffixAnnotator) TransformText(text string) string {
	var out strings.Builder
	out.Grow(len(text))

	letters := 0
	for idx := 0; idx < len(text); {
		r, size := utf8.DecodeRuneInString(text[idx:])
		if unicode.IsLetter(r) {
			letters++
		} else {
			if letters == a.wordLength {
				out.WriteString(Marker)
			}
			letters = 0
		}
		out.WriteString(text[idx : idx+size])
		idx += size
	}
	if letters == a.wordLength {
		out.WriteString(Marker)
	}
	return out.String()
}
