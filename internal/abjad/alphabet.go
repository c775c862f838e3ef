// Package abjad implements the Abjad (ʿIlm al-Ḥurūf) letter-value systems
// and the core numeric calculator deriving kabir, saghir, and the secondary
// scalars from normalized Arabic text.
package abjad

// System selects one of the two regional letter-to-value conventions.
type System string

// The two supported value conventions. They differ only in the assignments
// of six letters (sīn, ṣād, shīn, ḍād, ẓāʾ, ghayn).
const (
	SystemMaghribi System = "maghribi"
	SystemMashriqi System = "mashriqi"
)

// Valid reports whether s names a known system.
func (s System) Valid() bool {
	return s == SystemMaghribi || s == SystemMashriqi
}

// AlphabetSize is the number of base letters carrying a value.
const AlphabetSize = 28

// letters is the canonical 28-letter alphabet in Mashriqī abjad order
// (abjad hawwaz ḥuṭṭī kalaman saʿfaṣ qarashat thakhadh ḍaẓagh).
//
//nolint:gochecknoglobals // Compile-time constant lookup table.
var letters = []rune{
	'ا', 'ب', 'ج', 'د', 'ه', 'و', 'ز', 'ح', 'ط', 'ي',
	'ك', 'ل', 'م', 'ن', 'س', 'ع', 'ف', 'ص', 'ق', 'ر',
	'ش', 'ت', 'ث', 'خ', 'ذ', 'ض', 'ظ', 'غ',
}

// mashriqiValues is the eastern (Mashriqī) assignment: units through ten,
// tens through hundred, hundreds through one thousand in abjad order.
//
//nolint:gochecknoglobals // Compile-time constant lookup table.
var mashriqiValues = map[rune]int{
	'ا': 1, 'ب': 2, 'ج': 3, 'د': 4, 'ه': 5, 'و': 6, 'ز': 7, 'ح': 8, 'ط': 9, 'ي': 10,
	'ك': 20, 'ل': 30, 'م': 40, 'ن': 50, 'س': 60, 'ع': 70, 'ف': 80, 'ص': 90, 'ق': 100,
	'ر': 200, 'ش': 300, 'ت': 400, 'ث': 500, 'خ': 600, 'ذ': 700, 'ض': 800, 'ظ': 900, 'غ': 1000,
}

// maghribiValues is the western (Maghribī) assignment, following the
// Maghribī sequence (… saʿfaḍ qarasat thakhadh ẓaghash): ṣād takes 60,
// ḍād 90, sīn 300, ẓāʾ 800, ghayn 900, shīn 1000.
//
//nolint:gochecknoglobals // Compile-time constant lookup table.
var maghribiValues = map[rune]int{
	'ا': 1, 'ب': 2, 'ج': 3, 'د': 4, 'ه': 5, 'و': 6, 'ز': 7, 'ح': 8, 'ط': 9, 'ي': 10,
	'ك': 20, 'ل': 30, 'م': 40, 'ن': 50, 'ص': 60, 'ع': 70, 'ف': 80, 'ض': 90, 'ق': 100,
	'ر': 200, 'س': 300, 'ت': 400, 'ث': 500, 'خ': 600, 'ذ': 700, 'ظ': 800, 'غ': 900, 'ش': 1000,
}

// Letters returns the canonical alphabet in abjad order as a fresh slice.
func Letters() []rune {
	out := make([]rune, len(letters))
	copy(out, letters)
	return out
}

// LetterValue returns the value of letter under system. The boolean is
// false for characters outside the alphabet; such characters contribute
// zero to totals and are excluded from per-letter analytics.
func LetterValue(system System, letter rune) (int, bool) {
	v, ok := valuesFor(system)[letter]
	return v, ok
}

// ValueFunc returns a lookup closure over the chosen system, yielding 0 for
// unmapped characters. It is the adapter handed to the analytics engine.
func ValueFunc(system System) func(rune) int {
	values := valuesFor(system)
	return func(r rune) int { return values[r] }
}

func valuesFor(system System) map[rune]int {
	if system == SystemMaghribi {
		return maghribiValues
	}
	return mashriqiValues
}
