package normalize

import "unicode"

// Language is the heuristic script classification of raw input text. It is
// computed on the pre-normalization text and feeds display and narrative
// context only; it never alters calculation results.
type Language string

// Recognized script classifications.
const (
	LanguageArabic  Language = "arabic"
	LanguageLatin   Language = "latin"
	LanguageMixed   Language = "mixed"
	LanguageUnknown Language = "unknown"
)

// DetectLanguage classifies raw text by the presence of Arabic-range and
// Latin-range letters. Text containing both is mixed; text containing
// neither (digits, punctuation, empty) is unknown.
func DetectLanguage(raw string) Language {
	var hasArabic, hasLatin bool
	for _, r := range raw {
		switch {
		case unicode.In(r, unicode.Arabic):
			hasArabic = true
		case unicode.In(r, unicode.Latin):
			hasLatin = true
		}
		if hasArabic && hasLatin {
			return LanguageMixed
		}
	}

	switch {
	case hasArabic:
		return LanguageArabic
	case hasLatin:
		return LanguageLatin
	default:
		return LanguageUnknown
	}
}
