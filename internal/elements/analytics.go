package elements

import (
	"math"
	"sort"
)

// balanceScale converts the population standard deviation of the four
// element percentages (around the ideal 25% each) into a 0-100 score.
// Maximum imbalance (one element at 100%) has a deviation of ~43.3, which
// this factor maps to ~0; zero deviation maps to exactly 100.
const balanceScale = 2.3

// idealPercent is the per-element percentage of a perfectly balanced text.
const idealPercent = 25.0

// LetterFrequency describes one distinct letter of a normalized text.
type LetterFrequency struct {
	Letter  string  `json:"letter"`
	Count   int     `json:"count"`
	Value   int     `json:"value"`
	Element Element `json:"element"`
}

// Percentages holds the rounded per-element share of mapped letters.
// The four values sum to ~100 (rounding tolerance) for non-empty input and
// are all zero when no letter of the text is mapped.
type Percentages struct {
	Fire  int `json:"fire"`
	Water int `json:"water"`
	Air   int `json:"air"`
	Earth int `json:"earth"`
}

// Of returns the percentage stored for e.
func (p Percentages) Of(e Element) int {
	switch e {
	case Fire:
		return p.Fire
	case Water:
		return p.Water
	case Air:
		return p.Air
	case Earth:
		return p.Earth
	default:
		return 0
	}
}

// Analytics is the elemental composition breakdown of one normalized text.
// It is computed fresh per calculation and never mutated.
type Analytics struct {
	// LetterFreq lists distinct mapped letters, sorted by descending count
	// (letters tied on count sort by descending value for stable output).
	LetterFreq []LetterFrequency `json:"letter_freq"`

	// TotalLetters is the number of mapped letters in the text. Unmapped
	// characters are excluded.
	TotalLetters int `json:"total_letters"`

	Percents Percentages `json:"element_percents"`

	// Dominant is the element with the highest percentage. Ties resolve by
	// the fixed fire > water > air > earth priority.
	Dominant Element `json:"dominant_element"`

	// Weak is the element at exactly 0%, or empty when all four are present.
	// When several elements are absent, the first by priority is reported.
	Weak Element `json:"weak_element,omitempty"`

	// BalanceScore grades how evenly the four elements are represented:
	// 100 for a perfect 25% split, approaching 0 for a single-element text.
	BalanceScore int `json:"balance_score"`
}

// ValueFunc resolves a letter's numeric value under the caller's chosen
// alphabet system. A zero return marks the letter as unmapped for value
// display purposes; element membership alone decides analytics inclusion.
type ValueFunc func(letter rune) int

// Compute builds the elemental analytics for a normalized text.
// Characters outside the 28-letter element table are skipped. The zero
// Analytics value (all percentages 0, no dominant element, score 0) is
// returned for text with no mapped letters.
func Compute(normalized string, valueOf ValueFunc) Analytics {
	counts := make(map[rune]int)
	var order []rune
	elementCounts := make(map[Element]int)
	total := 0

	for _, r := range normalized {
		element, ok := OfLetter(r)
		if !ok {
			continue
		}
		if counts[r] == 0 {
			order = append(order, r)
		}
		counts[r]++
		elementCounts[element]++
		total++
	}

	if total == 0 {
		return Analytics{}
	}

	freq := make([]LetterFrequency, 0, len(order))
	for _, r := range order {
		element, _ := OfLetter(r)
		value := 0
		if valueOf != nil {
			value = valueOf(r)
		}
		freq = append(freq, LetterFrequency{
			Letter:  string(r),
			Count:   counts[r],
			Value:   value,
			Element: element,
		})
	}
	sort.SliceStable(freq, func(i, j int) bool {
		if freq[i].Count != freq[j].Count {
			return freq[i].Count > freq[j].Count
		}
		return freq[i].Value > freq[j].Value
	})

	percents := Percentages{
		Fire:  roundPercent(elementCounts[Fire], total),
		Water: roundPercent(elementCounts[Water], total),
		Air:   roundPercent(elementCounts[Air], total),
		Earth: roundPercent(elementCounts[Earth], total),
	}

	return Analytics{
		LetterFreq:   freq,
		TotalLetters: total,
		Percents:     percents,
		Dominant:     dominantOf(percents),
		Weak:         weakOf(percents),
		BalanceScore: BalanceScore(percents),
	}
}

// BalanceScore rescales the population standard deviation of the four
// percentages around the 25% ideal into [0, 100].
func BalanceScore(p Percentages) int {
	var sumSquares float64
	for _, e := range Priority {
		d := float64(p.Of(e)) - idealPercent
		sumSquares += d * d
	}
	stdDev := math.Sqrt(sumSquares / 4)

	score := int(math.Round(100 - stdDev*balanceScale))
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

func roundPercent(count, total int) int {
	return int(math.Round(float64(count) / float64(total) * 100))
}

func dominantOf(p Percentages) Element {
	dominant := Priority[0]
	best := p.Of(dominant)
	for _, e := range Priority[1:] {
		if p.Of(e) > best {
			dominant = e
			best = p.Of(e)
		}
	}
	return dominant
}

func weakOf(p Percentages) Element {
	for _, e := range Priority {
		if p.Of(e) == 0 {
			return e
		}
	}
	return ""
}
