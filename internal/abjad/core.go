package abjad

import "github.com/hurufapp/huruf/internal/elements"

// zodiacSigns is the cycle length of the burj mapping.
const zodiacSigns = 12

// CoreResults is the immutable primary outcome of one calculation. Every
// field derives deterministically from the normalized text and the chosen
// system; identical input always yields an identical record.
type CoreResults struct {
	// Kabir is the grand total: the sum of letter values over the text.
	// Zero only for empty or entirely unmapped input.
	Kabir int `json:"kabir"`

	// Saghir is the digital root of Kabir, in 1..9 for positive Kabir
	// (positive multiples of 9 report 9). Zero Kabir reports zero.
	Saghir int `json:"saghir"`

	// HadadMod4 is Kabir mod 4, always in 0..3.
	HadadMod4 int `json:"hadad_mod4"`

	// Element is the aggregate classification derived from HadadMod4.
	Element elements.Element `json:"element"`

	// Burj is ((Kabir-1) mod 12)+1, always in 1..12.
	Burj int `json:"burj"`

	// Sirr is |Kabir - Saghir|.
	Sirr int `json:"sirr"`

	// Wusta is floor((Kabir + Saghir) / 2).
	Wusta int `json:"wusta"`

	// Kamal is Kabir + Saghir.
	Kamal int `json:"kamal"`

	// Bast is Kabir * Saghir.
	Bast int `json:"bast"`
}

// Compute derives the full CoreResults for a normalized text under the
// chosen system. The sum is order-independent: anagrams yield identical
// results. Unmapped characters contribute zero. Compute never fails; empty
// input produces the degenerate zero-kabir record.
func Compute(normalized string, system System) CoreResults {
	values := valuesFor(system)

	kabir := 0
	for _, r := range normalized {
		kabir += values[r]
	}

	return Derive(kabir)
}

// Derive builds CoreResults from an already-known grand total. Split out so
// callers holding a combined total (lineage sums) reuse the same
// derivations.
func Derive(kabir int) CoreResults {
	saghir := DigitalRoot(kabir)
	hadad := euclidMod(kabir, 4)

	sirr := kabir - saghir
	if sirr < 0 {
		sirr = -sirr
	}

	return CoreResults{
		Kabir:     kabir,
		Saghir:    saghir,
		HadadMod4: hadad,
		Element:   elements.FromRemainder(hadad),
		Burj:      BurjIndex(kabir),
		Sirr:      sirr,
		Wusta:     (kabir + saghir) / 2,
		Kamal:     kabir + saghir,
		Bast:      kabir * saghir,
	}
}

// DigitalRoot repeatedly sums the decimal digits of n until a single digit
// remains. Positive multiples of 9 report 9 by convention; zero reports
// zero (the degenerate fully-unmapped case); negative input roots its
// absolute value.
func DigitalRoot(n int) int {
	if n < 0 {
		n = -n
	}
	if n == 0 {
		return 0
	}
	root := n % 9
	if root == 0 {
		return 9
	}
	return root
}

// BurjIndex maps a grand total onto the 1..12 zodiac cycle. The remainder
// is normalized into [0,12) before the +1 so zero and negative totals from
// degenerate input still land in range.
func BurjIndex(kabir int) int {
	return euclidMod(kabir-1, zodiacSigns) + 1
}

// euclidMod returns n mod m with a non-negative result for any n.
func euclidMod(n, m int) int {
	return ((n % m) + m) % m
}
