package narrative

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hurufapp/huruf/internal/engine"
)

func calc(t *testing.T, req engine.CalculationRequest) *engine.Result {
	t.Helper()
	result, err := engine.New(nil).Calculate(context.Background(), req)
	require.NoError(t, err)
	return result
}

func TestComposeNilResult(t *testing.T) {
	_, err := NewTemplateProvider().Compose(context.Background(), nil)
	assert.ErrorIs(t, err, ErrNilResult)
}

func TestComposeDeterministic(t *testing.T) {
	provider := NewTemplateProvider()
	result := calc(t, engine.CalculationRequest{Type: engine.TypeName, Name: "محمد"})

	first, err := provider.Compose(context.Background(), result)
	require.NoError(t, err)
	second, err := provider.Compose(context.Background(), result)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Contains(t, first, "grand total of 92")
	assert.Contains(t, first, "Scorpio")
}

func TestComposeCoversEachVariant(t *testing.T) {
	provider := NewTemplateProvider()

	tests := []struct {
		name string
		req  engine.CalculationRequest
		want string
	}{
		{
			name: "name",
			req:  engine.CalculationRequest{Type: engine.TypeName, Name: "محمد"},
			want: "Divine Name",
		},
		{
			name: "lineage",
			req:  engine.CalculationRequest{Type: engine.TypeLineage, YourName: "محمد", MotherName: "امنه"},
			want: "mother's name",
		},
		{
			name: "phrase",
			req:  engine.CalculationRequest{Type: engine.TypePhrase, Phrase: "بسم الله الرحمن الرحيم"},
			want: "4 words",
		},
		{
			name: "quran pasted",
			req: engine.CalculationRequest{
				Type: engine.TypeQuran, SurahNumber: 112, AyahNumber: 1, VerseText: "قل هو الله أحد",
			},
			want: "112:1",
		},
		{
			name: "dhikr",
			req:  engine.CalculationRequest{Type: engine.TypeDhikr, DivineNameNumber: 30},
			want: "Suggested recitation counts",
		},
		{
			name: "general",
			req:  engine.CalculationRequest{Type: engine.TypeGeneral, Text: "نور"},
			want: "closest Divine Name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := calc(t, tt.req)
			prose, err := provider.Compose(context.Background(), result)
			require.NoError(t, err)
			assert.Contains(t, prose, tt.want)
			assert.Contains(t, prose, fmt.Sprintf("grand total of %d", result.Core.Kabir))
		})
	}
}

func TestComposeDhikrOrdinal(t *testing.T) {
	provider := NewTemplateProvider()
	result := calc(t, engine.CalculationRequest{Type: engine.TypeDhikr, DivineNameNumber: 30})

	prose, err := provider.Compose(context.Background(), result)
	require.NoError(t, err)
	assert.Contains(t, prose, "the 30th of the ninety-nine")
}

func TestOrdinal(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{1, "1st"},
		{2, "2nd"},
		{3, "3rd"},
		{4, "4th"},
		{11, "11th"},
		{12, "12th"},
		{13, "13th"},
		{21, "21st"},
		{99, "99th"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ordinal(tt.n))
	}
}
