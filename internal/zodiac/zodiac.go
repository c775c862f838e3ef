// Package zodiac maps Abjad grand totals onto the twelve burūj and carries
// their static descriptive metadata.
package zodiac

import (
	"github.com/hurufapp/huruf/internal/abjad"
	"github.com/hurufapp/huruf/internal/elements"
)

// Sign is the static metadata of one burj, keyed by its 1..12 index.
type Sign struct {
	Burj        int              `json:"burj"`
	Name        string           `json:"name"`
	ArabicName  string           `json:"arabic_name"`
	Translit    string           `json:"transliteration"`
	Symbol      string           `json:"symbol"`
	Planet      string           `json:"ruling_planet"`
	Modality    string           `json:"modality"`
	Element     elements.Element `json:"temperament"`
	Quality     string           `json:"spiritual_quality"`
}

// signs is the fixed 12-entry table in burj order. The temperament column
// follows the classical triplicities.
//
//nolint:gochecknoglobals // Compile-time constant lookup table.
var signs = [12]Sign{
	{1, "Aries", "الحمل", "al-Ḥamal", "♈", "Mars", "cardinal", elements.Fire, "initiative and spiritual courage"},
	{2, "Taurus", "الثور", "al-Thawr", "♉", "Venus", "fixed", elements.Earth, "steadfastness and patient devotion"},
	{3, "Gemini", "الجوزاء", "al-Jawzāʾ", "♊", "Mercury", "mutable", elements.Air, "discernment and eloquent speech"},
	{4, "Cancer", "السرطان", "al-Saraṭān", "♋", "Moon", "cardinal", elements.Water, "compassion and inner reflection"},
	{5, "Leo", "الأسد", "al-Asad", "♌", "Sun", "fixed", elements.Fire, "generosity and radiant presence"},
	{6, "Virgo", "السنبلة", "al-Sunbula", "♍", "Mercury", "mutable", elements.Earth, "purity and devoted service"},
	{7, "Libra", "الميزان", "al-Mīzān", "♎", "Venus", "cardinal", elements.Air, "justice and harmonious balance"},
	{8, "Scorpio", "العقرب", "al-ʿAqrab", "♏", "Mars", "fixed", elements.Water, "transformation and hidden depth"},
	{9, "Sagittarius", "القوس", "al-Qaws", "♐", "Jupiter", "mutable", elements.Fire, "seeking and expansive wisdom"},
	{10, "Capricorn", "الجدي", "al-Jady", "♑", "Saturn", "cardinal", elements.Earth, "discipline and enduring resolve"},
	{11, "Aquarius", "الدلو", "al-Dalw", "♒", "Saturn", "fixed", elements.Air, "detachment and flowing knowledge"},
	{12, "Pisces", "الحوت", "al-Ḥūt", "♓", "Jupiter", "mutable", elements.Water, "surrender and boundless mercy"},
}

// Calculate maps a grand total onto its burj. Valid for every integer kabir,
// including zero and negatives from degenerate input.
func Calculate(kabir int) Sign {
	return signs[abjad.BurjIndex(kabir)-1]
}

// ByIndex returns the metadata for a 1..12 burj index.
// The boolean is false for an out-of-range index.
func ByIndex(burj int) (Sign, bool) {
	if burj < 1 || burj > len(signs) {
		return Sign{}, false
	}
	return signs[burj-1], true
}

// All returns the full table in burj order as a fresh slice.
func All() []Sign {
	out := make([]Sign, len(signs))
	copy(out, signs[:])
	return out
}
