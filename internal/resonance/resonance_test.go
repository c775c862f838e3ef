package resonance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNearestSacred(t *testing.T) {
	tests := []struct {
		name         string
		kabir        int
		wantNearest  int
		wantDistance int
		wantExact    bool
	}{
		{name: "exact match on 19", kabir: 19, wantNearest: 19, wantDistance: 0, wantExact: true},
		{name: "exact match on 786", kabir: 786, wantNearest: 786, wantDistance: 0, wantExact: true},
		{name: "between candidates picks closer", kabir: 100, wantNearest: 99, wantDistance: 1},
		{name: "zero picks smallest", kabir: 0, wantNearest: 7, wantDistance: 7},
		{name: "negative stays total", kabir: -10, wantNearest: 7, wantDistance: 17},
		{name: "far above picks largest", kabir: 5000, wantNearest: 786, wantDistance: 4214},
		{name: "tie resolves to first in table order", kabir: 53, wantNearest: 40, wantDistance: 13},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			match := NearestSacred(tt.kabir)
			assert.Equal(t, tt.wantNearest, match.Nearest.Value)
			assert.Equal(t, tt.wantDistance, match.Distance)
			assert.Equal(t, tt.wantExact, match.Exact)
			assert.NotEmpty(t, match.Nearest.Description)
		})
	}
}

func TestNamesTable(t *testing.T) {
	names := Names()
	require.Len(t, names, 99)

	seen := make(map[string]bool)
	for _, name := range names {
		assert.Positive(t, name.Value, "name %d %s", name.Number, name.Arabic)
		assert.NotEmpty(t, name.Canonical, "name %d", name.Number)
		assert.NotEmpty(t, name.Translit, "name %d", name.Number)
		assert.NotEmpty(t, name.Meaning, "name %d", name.Number)
		assert.False(t, seen[name.Arabic], "duplicate %s", name.Arabic)
		seen[name.Arabic] = true
	}

	// Table order is the traditional ordinal order.
	assert.Equal(t, 1, names[0].Number)
	assert.Equal(t, "الرحمن", names[0].Arabic)
	assert.Equal(t, 99, names[98].Number)
}

func TestKnownNameValues(t *testing.T) {
	tests := []struct {
		arabic        string
		wantCanonical string
		wantValue     int
	}{
		// Regression fixtures tied to the Mashriqī alphabet table.
		{"اللطيف", "لطيف", 129},
		{"الرحمن", "رحمن", 298},
		{"الحق", "حق", 108},
		{"الودود", "ودود", 20},
	}

	for _, tt := range tests {
		t.Run(tt.arabic, func(t *testing.T) {
			name, ok := FindNameByText(tt.arabic)
			require.True(t, ok)
			assert.Equal(t, tt.wantCanonical, name.Canonical)
			assert.Equal(t, tt.wantValue, name.Value)
		})
	}
}

func TestNameByNumber(t *testing.T) {
	name, ok := NameByNumber(30)
	require.True(t, ok)
	assert.Equal(t, "اللطيف", name.Arabic)

	_, ok = NameByNumber(0)
	assert.False(t, ok)
	_, ok = NameByNumber(100)
	assert.False(t, ok)
}

func TestFindNameByText(t *testing.T) {
	t.Run("resolves vocative and diacritics", func(t *testing.T) {
		name, ok := FindNameByText("يا لَطِيف")
		require.True(t, ok)
		assert.Equal(t, 30, name.Number)
	})

	t.Run("unknown name", func(t *testing.T) {
		_, ok := FindNameByText("محمد")
		assert.False(t, ok)
	})

	t.Run("empty input", func(t *testing.T) {
		_, ok := FindNameByText("  123 ")
		assert.False(t, ok)
	})
}

func TestFindNamesByValue(t *testing.T) {
	t.Run("exact", func(t *testing.T) {
		matches := FindNamesByValue(129, 0)
		require.NotEmpty(t, matches)
		for _, m := range matches {
			assert.Equal(t, 129, m.Value)
		}
	})

	t.Run("tolerance widens the net", func(t *testing.T) {
		exact := FindNamesByValue(129, 0)
		wide := FindNamesByValue(129, 25)
		assert.GreaterOrEqual(t, len(wide), len(exact))
	})

	t.Run("negative tolerance behaves as zero", func(t *testing.T) {
		assert.Equal(t, FindNamesByValue(129, 0), FindNamesByValue(129, -5))
	})

	t.Run("no match returns empty", func(t *testing.T) {
		assert.Empty(t, FindNamesByValue(1_000_000, 0))
	})
}

func TestNearestNames(t *testing.T) {
	t.Run("returns three sorted by distance", func(t *testing.T) {
		matches := NearestNames(129)
		require.Len(t, matches, NearestNameCount)
		assert.True(t, matches[0].Exact)
		assert.Equal(t, 129, matches[0].Name.Value)
		for i := 1; i < len(matches); i++ {
			assert.GreaterOrEqual(t, matches[i].Distance, matches[i-1].Distance)
		}
	})

	t.Run("total for degenerate input", func(t *testing.T) {
		for _, kabir := range []int{0, -50, 1 << 20} {
			matches := NearestNames(kabir)
			require.Len(t, matches, NearestNameCount, "kabir %d", kabir)
			assert.False(t, matches[0].Exact)
		}
	})
}
