// Package resonance finds the sacred numbers and Divine Names numerically
// closest to an Abjad grand total.
package resonance

// SacredNumber is one entry of the fixed sacred-integer table.
type SacredNumber struct {
	Value       int    `json:"value"`
	Description string `json:"description"`
}

// sacredNumbers is the fixed search space, in ascending order. Ascending
// iteration makes the nearest-match tie-break deterministic: the smaller
// candidate wins.
//
//nolint:gochecknoglobals // Compile-time constant lookup table.
var sacredNumbers = []SacredNumber{
	{7, "the seven heavens and the seven verses of al-Fātiḥa"},
	{12, "the twelve months and the twelve springs of the rock"},
	{19, "the count of the letters of the basmala"},
	{28, "the twenty-eight letters of the Arabic alphabet"},
	{40, "the forty days of Mūsā and the age of prophethood"},
	{66, "the value of the name Allāh"},
	{70, "the seventy thousand veils of light"},
	{99, "the ninety-nine Beautiful Names"},
	{114, "the count of the sūras of the Qurʾān"},
	{313, "the companions of Badr"},
	{786, "the value of the basmala"},
}

// SacredMatch reports the sacred number nearest to a grand total.
type SacredMatch struct {
	Nearest  SacredNumber `json:"nearest"`
	Distance int          `json:"distance"`
	Exact    bool         `json:"exact"`
}

// NearestSacred linearly scans the sacred table for the entry minimizing
// |candidate - kabir|. It is total over all integers, including negative and
// zero totals; ties resolve to the first candidate in table order.
func NearestSacred(kabir int) SacredMatch {
	best := sacredNumbers[0]
	bestDistance := absDistance(best.Value, kabir)

	for _, candidate := range sacredNumbers[1:] {
		if d := absDistance(candidate.Value, kabir); d < bestDistance {
			best = candidate
			bestDistance = d
		}
	}

	return SacredMatch{
		Nearest:  best,
		Distance: bestDistance,
		Exact:    bestDistance == 0,
	}
}

// SacredNumbers returns the table in ascending order as a fresh slice.
func SacredNumbers() []SacredNumber {
	out := make([]SacredNumber, len(sacredNumbers))
	copy(out, sacredNumbers)
	return out
}

func absDistance(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}
