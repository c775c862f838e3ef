package elements

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unitValue gives every mapped letter value 1 so tests can focus on counting.
func unitValue(rune) int { return 1 }

func TestCompute(t *testing.T) {
	t.Run("empty text yields zero analytics", func(t *testing.T) {
		a := Compute("", unitValue)
		assert.Zero(t, a.TotalLetters)
		assert.Equal(t, Percentages{}, a.Percents)
		assert.Empty(t, a.Dominant)
		assert.Zero(t, a.BalanceScore)
		assert.Empty(t, a.LetterFreq)
	})

	t.Run("fully unmapped text yields zero analytics", func(t *testing.T) {
		a := Compute("abc 123", unitValue)
		assert.Zero(t, a.TotalLetters)
		assert.Equal(t, Percentages{}, a.Percents)
	})

	t.Run("single letter is fully dominant", func(t *testing.T) {
		a := Compute("ااا", unitValue)
		assert.Equal(t, 3, a.TotalLetters)
		assert.Equal(t, Percentages{Fire: 100}, a.Percents)
		assert.Equal(t, Fire, a.Dominant)
		assert.Equal(t, Water, a.Weak, "first absent element by priority")
		assert.Equal(t, 0, a.BalanceScore, "maximum imbalance scores ~0")
	})

	t.Run("perfectly balanced text scores 100", func(t *testing.T) {
		// One letter from each element group.
		a := Compute("ابجد", unitValue)
		assert.Equal(t, 4, a.TotalLetters)
		assert.Equal(t, Percentages{Fire: 25, Water: 25, Air: 25, Earth: 25}, a.Percents)
		assert.Equal(t, 100, a.BalanceScore)
		assert.Empty(t, a.Weak)
		assert.Equal(t, Fire, a.Dominant, "tie resolves to highest priority")
	})

	t.Run("counts aggregate per distinct letter", func(t *testing.T) {
		a := Compute("محمد", unitValue)
		require.Len(t, a.LetterFreq, 3)
		assert.Equal(t, 4, a.TotalLetters)

		top := a.LetterFreq[0]
		assert.Equal(t, "م", top.Letter)
		assert.Equal(t, 2, top.Count)
		assert.Equal(t, Fire, top.Element)

		sum := 0
		for _, f := range a.LetterFreq {
			sum += f.Count
		}
		assert.Equal(t, a.TotalLetters, sum, "counts must sum to mapped letters")
	})

	t.Run("unmapped characters excluded from counts", func(t *testing.T) {
		withNoise := Compute("م-ح.م x د", unitValue)
		clean := Compute("محمد", unitValue)
		assert.Equal(t, clean.TotalLetters, withNoise.TotalLetters)
		assert.Equal(t, clean.Percents, withNoise.Percents)
	})

	t.Run("percentages close to 100", func(t *testing.T) {
		texts := []string{"محمد", "بسماللهالرحمنالرحيم", "ابج", "قلم", "نور"}
		for _, text := range texts {
			a := Compute(text, unitValue)
			if a.TotalLetters == 0 {
				continue
			}
			sum := a.Percents.Fire + a.Percents.Water + a.Percents.Air + a.Percents.Earth
			assert.InDelta(t, 100, sum, 2, "text %q", text)
		}
	})

	t.Run("values come from the supplied func", func(t *testing.T) {
		a := Compute("با", func(r rune) int {
			if r == 'ب' {
				return 2
			}
			return 1
		})
		require.Len(t, a.LetterFreq, 2)
		for _, f := range a.LetterFreq {
			if f.Letter == "ب" {
				assert.Equal(t, 2, f.Value)
			}
		}
	})

	t.Run("nil value func leaves values zero", func(t *testing.T) {
		a := Compute("اب", nil)
		require.Len(t, a.LetterFreq, 2)
		assert.Zero(t, a.LetterFreq[0].Value)
	})
}

func TestBalanceScore(t *testing.T) {
	tests := []struct {
		name string
		p    Percentages
		want int
	}{
		{name: "perfect balance", p: Percentages{Fire: 25, Water: 25, Air: 25, Earth: 25}, want: 100},
		{name: "maximum imbalance", p: Percentages{Fire: 100}, want: 0},
		{name: "all zero still bounded", p: Percentages{}, want: 43},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BalanceScore(tt.p))
		})
	}
}

func TestBalanceScoreBounds(t *testing.T) {
	// Score stays in [0,100] for every distribution over a 0..100 grid.
	for fire := 0; fire <= 100; fire += 10 {
		for water := 0; water+fire <= 100; water += 10 {
			for air := 0; air+water+fire <= 100; air += 10 {
				earth := 100 - fire - water - air
				score := BalanceScore(Percentages{Fire: fire, Water: water, Air: air, Earth: earth})
				assert.GreaterOrEqual(t, score, 0)
				assert.LessOrEqual(t, score, 100)
			}
		}
	}
}
