// Package format prepares text for the machine and presents its output:
// Normalize turns free text into the letters the machine accepts and Group
// splits ciphertext into fixed width groups the way messages were
// transmitted.
package format

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ErrGroupSize indicates a group size below one.
var ErrGroupSize = errors.New("format: group size must be positive")

// Group inserts sep after every size letters of text and pads the last
// group to size letters with pad. Surrounding whitespace is trimmed first.
// An empty text yields an empty string.
func Group(text string, size int, sep, pad byte) (string, error) {
	if size < 1 {
		return "", fmt.Errorf("group size %d: %w", size, ErrGroupSize)
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return "", nil
	}

	var sb strings.Builder
	sb.Grow(len(text) + len(text)/size + size)
	for i := 0; i < len(text); i++ {
		if i > 0 && i%size == 0 {
			sb.WriteByte(sep)
		}
		sb.WriteByte(text[i])
	}
	if rem := len(text) % size; rem != 0 {
		sb.WriteString(strings.Repeat(string(pad), size-rem))
	}
	return sb.String(), nil
}

// Group5 groups text in blocks of five separated by spaces and padded with
// '-'.
func Group5(text string) string {
	s, _ := Group(text, 5, ' ', '-')
	return s
}

// IsSupported reports whether r is a letter the machine enciphers.
func IsSupported(r rune) bool {
	return 'A' <= r && r <= 'Z'
}

// umlauts follows the telegraph convention for German letters.
var umlauts = strings.NewReplacer("Ä", "AE", "Ö", "OE", "Ü", "UE")

// Normalize upper-cases s, spells out German umlauts (Ä → AE, ß → SS),
// strips other diacritics (É → E) and drops every rune the machine does not
// encipher.
func Normalize(s string) string {
	upper := umlauts.Replace(cases.Upper(language.German).String(s))

	fold := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(fold, upper)
	if err != nil {
		folded = upper
	}

	return strings.Map(func(r rune) rune {
		if IsSupported(r) {
			return r
		}
		return -1
	}, folded)
}
