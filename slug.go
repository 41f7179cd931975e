package erroz

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Slugify derives a machine code from a human readable name.
// It is SlugifyLanguage with the undetermined language.
//
// Example:
//
//	erroz.Slugify("NotFoundError") // "not-found-error"
//	erroz.Slugify("ÖtherError")    // "öther-error"
func Slugify(name string) string {
	return SlugifyLanguage(name, language.Und)
}

// SlugifyLanguage derives a lowercase, hyphen separated code from name.
//
// The name is split into words on any character that is not a letter,
// digit or combining mark, on lower-to-upper case transitions ("fooBar")
// and at the end of an upper case run followed by a lower case letter
// ("HTTPError"). Each word is lower cased using the case mapping rules of
// tag, so non-ASCII letters are kept rather than stripped.
//
// Applying SlugifyLanguage to its own output returns the output unchanged
// for any letter that has a lower case mapping.
func SlugifyLanguage(name string, tag language.Tag) string {
	words := splitWords(name)
	if len(words) == 0 {
		return ""
	}

	// A Caser keeps state between calls and cannot be shared.
	lower := cases.Lower(tag)
	for i, w := range words {
		words[i] = lower.String(w)
	}

	return strings.Join(words, "-")
}

func splitWords(name string) []string {
	runes := []rune(name)
	var words []string
	start := -1

	flush := func(end int) {
		if start >= 0 && end > start {
			words = append(words, string(runes[start:end]))
		}
		start = -1
	}

	for i, r := range runes {
		if !isWordRune(r) {
			flush(i)
			continue
		}

		if start < 0 {
			start = i
			continue
		}

		prev := runes[i-1]
		switch {
		case unicode.IsLower(prev) && unicode.IsUpper(r):
			flush(i)
			start = i
		case unicode.IsUpper(prev) && unicode.IsUpper(r) &&
			i+1 < len(runes) && unicode.IsLower(runes[i+1]):
			flush(i)
			start = i
		}
	}
	flush(len(runes))

	return words
}

// isWordRune treats combining marks as part of a word so that
// decomposed letters survive lower casing.
func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r)
}
