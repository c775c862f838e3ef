package engine

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hurufapp/huruf/internal/abjad"
	"github.com/hurufapp/huruf/internal/normalize"
	"github.com/hurufapp/huruf/internal/resonance"
)

// stubProvider returns canned verse text or an error.
type stubProvider struct {
	text  string
	err   error
	calls int
}

func (s *stubProvider) FetchAyahText(_ context.Context, _, _ int) (string, error) {
	s.calls++
	return s.text, s.err
}

func newTestEngine() *Engine {
	return New(nil, WithClock(func() time.Time {
		return time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	}))
}

func TestCalculateName(t *testing.T) {
	e := newTestEngine()

	result, err := e.Calculate(context.Background(), CalculationRequest{
		Type:   TypeName,
		Name:   "مُحَمَّد",
		System: abjad.SystemMaghribi,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, result.ID)
	assert.Equal(t, TypeName, result.Type)
	assert.Equal(t, abjad.SystemMaghribi, result.System)
	assert.Equal(t, "محمد", result.Input.Normalized)
	assert.Equal(t, normalize.LanguageArabic, result.Input.Language)
	assert.Equal(t, 92, result.Core.Kabir)
	assert.Equal(t, 8, result.Zodiac.Burj)
	assert.Equal(t, 99, result.Sacred.Nearest.Value)

	require.NotNil(t, result.NameInsights)
	assert.Len(t, result.NameInsights.NearestNames, resonance.NearestNameCount)
	assertExactlyOneInsight(t, result)
}

func TestCalculateLineage(t *testing.T) {
	e := newTestEngine()

	result, err := e.Calculate(context.Background(), CalculationRequest{
		Type:       TypeLineage,
		YourName:   "محمد",
		MotherName: "امنه",
		System:     abjad.SystemMashriqi,
	})
	require.NoError(t, err)

	require.NotNil(t, result.LineageInsights)
	insights := result.LineageInsights

	// The combined total is the sum of the independent totals: the joining
	// space maps to nothing.
	assert.Equal(t, insights.YourCore.Kabir+insights.MotherCore.Kabir, result.Core.Kabir)
	assert.Equal(t, 92, insights.YourCore.Kabir)
	assert.Equal(t, "محمد", result.Input.Source.YourName)
	assert.Equal(t, "امنه", result.Input.Source.MotherName)
	assertExactlyOneInsight(t, result)
}

func TestCalculatePhrase(t *testing.T) {
	e := newTestEngine()

	result, err := e.Calculate(context.Background(), CalculationRequest{
		Type:   TypePhrase,
		Phrase: "بسم الله الرحمن الرحيم",
	})
	require.NoError(t, err)

	require.NotNil(t, result.PhraseInsights)
	assert.Equal(t, 4, result.PhraseInsights.WordCount)
	assert.NotEmpty(t, result.PhraseInsights.TopLetters)
	assert.LessOrEqual(t, len(result.PhraseInsights.TopLetters), 3)
	assert.Equal(t, len(result.Analytics.LetterFreq), result.PhraseInsights.UniqueLetters)
	assertExactlyOneInsight(t, result)
}

func TestCalculateQuran(t *testing.T) {
	t.Run("pasted text skips the provider", func(t *testing.T) {
		provider := &stubProvider{text: "ignored"}
		e := New(provider)

		result, err := e.Calculate(context.Background(), CalculationRequest{
			Type:        TypeQuran,
			SurahNumber: 112,
			AyahNumber:  1,
			VerseText:   "قل هو الله أحد",
		})
		require.NoError(t, err)

		assert.Zero(t, provider.calls)
		require.NotNil(t, result.QuranInsights)
		assert.Equal(t, "pasted", result.QuranInsights.TextSource)
		assert.Equal(t, "الإخلاص", result.QuranInsights.Surah.Name)
		assert.Positive(t, result.Core.Kabir)
		assertExactlyOneInsight(t, result)
	})

	t.Run("fetches when no pasted text", func(t *testing.T) {
		provider := &stubProvider{text: "قل هو الله أحد"}
		e := New(provider)

		result, err := e.Calculate(context.Background(), CalculationRequest{
			Type:        TypeQuran,
			SurahNumber: 112,
			AyahNumber:  1,
		})
		require.NoError(t, err)

		assert.Equal(t, 1, provider.calls)
		assert.Equal(t, "fetched", result.QuranInsights.TextSource)
		assert.Equal(t, "قل هو الله أحد", result.Input.Raw)
	})

	t.Run("invalid reference", func(t *testing.T) {
		e := New(&stubProvider{})
		_, err := e.Calculate(context.Background(), CalculationRequest{
			Type:        TypeQuran,
			SurahNumber: 1,
			AyahNumber:  99,
		})
		assert.ErrorIs(t, err, ErrInvalidReference)
	})

	t.Run("no provider and no pasted text", func(t *testing.T) {
		e := New(nil)
		_, err := e.Calculate(context.Background(), CalculationRequest{
			Type:        TypeQuran,
			SurahNumber: 1,
			AyahNumber:  1,
		})
		assert.ErrorIs(t, err, ErrNoVerseProvider)
	})

	t.Run("provider error propagates", func(t *testing.T) {
		e := New(&stubProvider{err: fmt.Errorf("network down")})
		_, err := e.Calculate(context.Background(), CalculationRequest{
			Type:        TypeQuran,
			SurahNumber: 1,
			AyahNumber:  1,
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "network down")
	})
}

func TestCalculateDhikr(t *testing.T) {
	t.Run("by number", func(t *testing.T) {
		e := newTestEngine()

		result, err := e.Calculate(context.Background(), CalculationRequest{
			Type:             TypeDhikr,
			DivineNameNumber: 30, // al-Laṭīf
		})
		require.NoError(t, err)

		assert.Equal(t, "لطيف", result.Input.Normalized)
		assert.Equal(t, 129, result.Core.Kabir)
		require.NotNil(t, result.DhikrInsights)
		require.NotNil(t, result.DhikrInsights.Name)
		assert.Equal(t, 30, result.DhikrInsights.Name.Number)
		assert.NotEmpty(t, result.DhikrInsights.SuggestedCounts)
		assertExactlyOneInsight(t, result)
	})

	t.Run("by text with vocative", func(t *testing.T) {
		e := newTestEngine()

		result, err := e.Calculate(context.Background(), CalculationRequest{
			Type:           TypeDhikr,
			DivineNameText: "يا لطيف",
		})
		require.NoError(t, err)

		require.NotNil(t, result.DhikrInsights.Name)
		assert.Equal(t, 30, result.DhikrInsights.Name.Number)
		assert.Equal(t, 30, result.Input.Source.DivineNameNumber)
	})

	t.Run("free text outside the table", func(t *testing.T) {
		e := newTestEngine()

		result, err := e.Calculate(context.Background(), CalculationRequest{
			Type:           TypeDhikr,
			DivineNameText: "سبحان الله",
		})
		require.NoError(t, err)

		assert.Nil(t, result.DhikrInsights.Name)
		assert.Positive(t, result.Core.Kabir)
	})

	t.Run("out of range number", func(t *testing.T) {
		e := newTestEngine()
		_, err := e.Calculate(context.Background(), CalculationRequest{
			Type:             TypeDhikr,
			DivineNameNumber: 150,
		})
		assert.ErrorIs(t, err, ErrEmptySourceText)
	})
}

func TestCalculateGeneral(t *testing.T) {
	e := newTestEngine()

	result, err := e.Calculate(context.Background(), CalculationRequest{
		Type: TypeGeneral,
		Text: "نور على نور",
	})
	require.NoError(t, err)

	require.NotNil(t, result.GeneralInsights)
	assert.Len(t, result.GeneralInsights.NearestNames, resonance.NearestNameCount)
	assert.Equal(t, result.Analytics.TotalLetters, result.GeneralInsights.LetterCount)
	assertExactlyOneInsight(t, result)
}

func TestCalculateEmptySourceText(t *testing.T) {
	e := newTestEngine()

	requests := []CalculationRequest{
		{Type: TypeName, Name: "   "},
		{Type: TypeLineage, YourName: "", MotherName: " "},
		{Type: TypePhrase, Phrase: ""},
		{Type: TypeDhikr, DivineNameText: "  "},
		{Type: TypeGeneral, Text: "\t\n"},
	}

	for _, req := range requests {
		_, err := e.Calculate(context.Background(), req)
		assert.ErrorIs(t, err, ErrEmptySourceText, "type %s", req.Type)
	}
}

func TestCalculateUnknownType(t *testing.T) {
	e := newTestEngine()

	_, err := e.Calculate(context.Background(), CalculationRequest{Type: "tarot"})
	assert.ErrorIs(t, err, ErrUnknownType)

	_, err = e.Calculate(context.Background(), CalculationRequest{})
	assert.True(t, errors.Is(err, ErrUnknownType))
}

func TestCalculateDeterministicNumbers(t *testing.T) {
	e := newTestEngine()
	req := CalculationRequest{Type: TypeName, Name: "محمد", System: abjad.SystemMashriqi}

	first, err := e.Calculate(context.Background(), req)
	require.NoError(t, err)
	second, err := e.Calculate(context.Background(), req)
	require.NoError(t, err)

	// IDs differ per record; the numeric context handed to the narrative
	// service must be reproducible.
	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, first.Core, second.Core)
	assert.Equal(t, first.Analytics, second.Analytics)
	assert.Equal(t, first.Zodiac, second.Zodiac)
	assert.Equal(t, first.Sacred, second.Sacred)
}

func TestCalculateDefaultSystem(t *testing.T) {
	e := newTestEngine()

	result, err := e.Calculate(context.Background(), CalculationRequest{
		Type: TypeName,
		Name: "محمد",
	})
	require.NoError(t, err)
	assert.Equal(t, abjad.SystemMaghribi, result.System)
}

// assertExactlyOneInsight enforces the routing contract: exactly one of the
// six insight fields is populated per result.
func assertExactlyOneInsight(t *testing.T, result *Result) {
	t.Helper()

	populated := 0
	if result.NameInsights != nil {
		populated++
	}
	if result.LineageInsights != nil {
		populated++
	}
	if result.PhraseInsights != nil {
		populated++
	}
	if result.QuranInsights != nil {
		populated++
	}
	if result.DhikrInsights != nil {
		populated++
	}
	if result.GeneralInsights != nil {
		populated++
	}
	assert.Equal(t, 1, populated)
}
