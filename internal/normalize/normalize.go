// Package normalize canonicalizes raw Arabic input into the letter stream
// consumed by the abjad calculator.
//
// Normalization strips diacritics and tatweel, harmonizes letter variants
// (hamza-bearing alif forms, alif maqṣūra), and optionally removes
// punctuation, digits, and whitespace. A stricter variant used for
// Divine-Name lookup additionally folds tāʾ marbūṭa and seated hamza forms
// and strips the vocative "yā" and definite-article prefixes, because the
// tabulated name values exclude them.
//
// All functions are pure and idempotent under a fixed option set: feeding a
// normalized string back through yields the identical string.
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// tatweel is the Arabic kashida, a purely typographic elongation mark.
const tatweel = 'ـ'

// Options controls the configurable normalization steps. The calculation
// defaults enable all three.
type Options struct {
	// RemoveVowels strips the Arabic diacritic marks (ḥarakāt, shadda,
	// sukūn, superscript alif and the other combining marks).
	RemoveVowels bool

	// IgnorePunctuation removes punctuation, symbols, and digits.
	IgnorePunctuation bool

	// IgnoreSpaces removes all whitespace. When false, runs of whitespace
	// collapse to a single space and the result is trimmed.
	IgnoreSpaces bool
}

// DefaultOptions returns the calculation defaults: all stripping enabled.
func DefaultOptions() Options {
	return Options{RemoveVowels: true, IgnorePunctuation: true, IgnoreSpaces: true}
}

// markStripper removes Unicode combining marks after NFC composition.
// Arabic ḥarakāt, shadda, sukūn, and the superscript alif are all Mn.
//
//nolint:gochecknoglobals // Stateless transformer chain, safe for reuse.
var markStripper = transform.Chain(norm.NFC, runes.Remove(runes.In(unicode.Mn)))

// letterFolds harmonizes alif and yāʾ variants common to every variant.
//
//nolint:gochecknoglobals // Compile-time constant lookup table.
var letterFolds = map[rune]rune{
	'أ': 'ا', // alif with hamza above
	'إ': 'ا', // alif with hamza below
	'آ': 'ا', // alif madda
	'ٱ': 'ا', // alif wasla
	'ى': 'ي', // alif maqsura
}

// strictFolds extends letterFolds for the dhikr variant.
//
//nolint:gochecknoglobals // Compile-time constant lookup table.
var strictFolds = map[rune]rune{
	'ة': 'ه', // ta marbuta
	'ؤ': 'و', // hamza on waw
	'ئ': 'ي', // hamza on ya
}

// Normalize canonicalizes raw text under the given options. It never fails:
// empty or fully-stripped input yields the empty string.
func Normalize(text string, opts Options) string {
	if text == "" {
		return ""
	}

	if opts.RemoveVowels {
		stripped, _, err := transform.String(markStripper, text)
		if err == nil {
			text = stripped
		}
	}

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if r == tatweel {
			continue
		}
		if folded, ok := letterFolds[r]; ok {
			r = folded
		}
		if unicode.IsSpace(r) {
			if !opts.IgnoreSpaces {
				b.WriteRune(' ')
			}
			continue
		}
		if opts.IgnorePunctuation && !isArabicLetter(r) && !unicode.Is(unicode.Mn, r) {
			continue
		}
		b.WriteRune(r)
	}

	if opts.IgnoreSpaces {
		return b.String()
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// DhikrStrict is the Divine-Name lookup variant. On top of full stripping it
// folds tāʾ marbūṭa and seated hamza forms, removes digits and every
// non-Arabic-letter character, and drops a leading vocative "yā" or definite
// article "al-". The article survives when fewer than two letters would
// remain, and the lafẓ al-jalāla keeps it outright: its tabulated value (66)
// includes the article.
func DhikrStrict(text string) string {
	stripped, _, err := transform.String(markStripper, text)
	if err == nil {
		text = stripped
	}

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if folded, ok := letterFolds[r]; ok {
			r = folded
		}
		if folded, ok := strictFolds[r]; ok {
			r = folded
		}
		if !isArabicLetter(r) {
			continue
		}
		b.WriteRune(r)
	}

	name := []rune(b.String())

	// Vocative particle: "yā Laṭīf" tabulates as "Laṭīf".
	if len(name) > 2 && name[0] == 'ي' && name[1] == 'ا' {
		name = name[2:]
	}

	if len(name) >= 4 && name[0] == 'ا' && name[1] == 'ل' && string(name) != "الله" {
		name = name[2:]
	}

	return string(name)
}

// isArabicLetter reports whether r is an Arabic letter. Digits (Arabic or
// Latin), punctuation, and presentation marks are excluded; the hamza and
// seat-carrying forms count as letters so the base variant can keep them.
func isArabicLetter(r rune) bool {
	if !unicode.In(r, unicode.Arabic) {
		return false
	}
	return unicode.IsLetter(r)
}
