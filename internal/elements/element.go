// Package elements classifies Arabic letters and Abjad totals into the four
// classical elements and computes elemental composition analytics over
// normalized text.
package elements

// Element is one of the four classical elements.
type Element string

// The four classical elements.
const (
	Fire  Element = "fire"
	Water Element = "water"
	Air   Element = "air"
	Earth Element = "earth"
)

// Priority is the fixed ordering used for deterministic tie-breaking when
// two elements share the top percentage.
//
//nolint:gochecknoglobals // Compile-time constant lookup table.
var Priority = []Element{Fire, Water, Air, Earth}

// String returns the element's lowercase English name.
func (e Element) String() string { return string(e) }

// Arabic returns the traditional Arabic name of the element.
func (e Element) Arabic() string {
	switch e {
	case Fire:
		return "نار"
	case Water:
		return "ماء"
	case Air:
		return "هواء"
	case Earth:
		return "تراب"
	default:
		return ""
	}
}

// FromRemainder maps a kabir-mod-4 remainder to its element:
// 1 → fire, 2 → earth, 3 → air, 0 → water.
// Remainders outside 0..3 are first reduced into that range so negative
// inputs from pathological value maps still classify.
func FromRemainder(remainder int) Element {
	r := ((remainder % 4) + 4) % 4
	switch r {
	case 1:
		return Fire
	case 2:
		return Earth
	case 3:
		return Air
	default:
		return Water
	}
}

// letterElements assigns each of the 28 base letters an element by cycling
// fire → earth → air → water through the Mashriqī abjad sequence. This keeps
// the per-letter table consistent with FromRemainder: the n-th letter carries
// the element of remainder n mod 4.
//
//nolint:gochecknoglobals // Compile-time constant lookup table.
var letterElements = map[rune]Element{
	'ا': Fire, 'ب': Earth, 'ج': Air, 'د': Water,
	'ه': Fire, 'و': Earth, 'ز': Air, 'ح': Water,
	'ط': Fire, 'ي': Earth, 'ك': Air, 'ل': Water,
	'م': Fire, 'ن': Earth, 'س': Air, 'ع': Water,
	'ف': Fire, 'ص': Earth, 'ق': Air, 'ر': Water,
	'ش': Fire, 'ت': Earth, 'ث': Air, 'خ': Water,
	'ذ': Fire, 'ض': Earth, 'ظ': Air, 'غ': Water,
}

// OfLetter returns the element of a canonical Arabic base letter.
// The boolean is false for characters outside the 28-letter table; such
// characters are excluded from frequency analytics, not treated as errors.
func OfLetter(letter rune) (Element, bool) {
	e, ok := letterElements[letter]
	return e, ok
}

// Parse converts a stored element string back to an Element.
// Unknown input returns false; persisted records from older schema versions
// must not panic the reader.
func Parse(s string) (Element, bool) {
	switch Element(s) {
	case Fire, Water, Air, Earth:
		return Element(s), true
	default:
		return "", false
	}
}
