// Package narrative composes human-readable interpretations from finished
// calculation records. Providers consume only the stable numeric context of
// a result, so swapping the composition backend never changes the numbers.
package narrative

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hurufapp/huruf/internal/engine"
)

// ErrNilResult indicates a nil record was passed to a provider.
var ErrNilResult = errors.New("narrative: result cannot be nil")

// Provider turns a calculation record into prose.
type Provider interface {
	Compose(ctx context.Context, result *engine.Result) (string, error)
}

// TemplateProvider is the built-in deterministic provider: fixed sentence
// templates filled from the record. Same record, same prose.
type TemplateProvider struct{}

// NewTemplateProvider creates the built-in provider.
func NewTemplateProvider() *TemplateProvider {
	return &TemplateProvider{}
}

// Compose builds the interpretation paragraph for a record.
func (p *TemplateProvider) Compose(_ context.Context, result *engine.Result) (string, error) {
	if result == nil {
		return "", ErrNilResult
	}

	var b strings.Builder

	fmt.Fprintf(&b, "The text %q carries a grand total of %d, reducing to the root %d.",
		result.Input.Normalized, result.Core.Kabir, result.Core.Saghir)

	fmt.Fprintf(&b, " Its dominant temperament is %s (%s), at %d%% of its letters",
		result.Analytics.Dominant, result.Analytics.Dominant.Arabic(),
		result.Analytics.Percents.Of(result.Analytics.Dominant))
	fmt.Fprintf(&b, ", with an elemental balance of %d out of 100.", result.Analytics.BalanceScore)

	fmt.Fprintf(&b, " The total falls under %s (%s), burj %d, whose quality is %s.",
		result.Zodiac.Name, result.Zodiac.ArabicName, result.Zodiac.Burj, result.Zodiac.Quality)

	if result.Sacred.Exact {
		fmt.Fprintf(&b, " It lands exactly on the sacred number %d: %s.",
			result.Sacred.Nearest.Value, result.Sacred.Nearest.Description)
	} else {
		fmt.Fprintf(&b, " It resonates nearest to the sacred number %d (%s), at a distance of %d.",
			result.Sacred.Nearest.Value, result.Sacred.Nearest.Description, result.Sacred.Distance)
	}

	p.composeInsight(&b, result)

	return b.String(), nil
}

// composeInsight appends the sentence for the record's populated insight.
func (p *TemplateProvider) composeInsight(b *strings.Builder, result *engine.Result) {
	switch {
	case result.NameInsights != nil:
		if len(result.NameInsights.SharedValueNames) > 0 {
			name := result.NameInsights.SharedValueNames[0]
			fmt.Fprintf(b, " The name shares its value with the Divine Name %s (%s).",
				name.Arabic, name.Translit)
		} else if len(result.NameInsights.NearestNames) > 0 {
			nearest := result.NameInsights.NearestNames[0]
			fmt.Fprintf(b, " The closest Divine Name is %s (%s), value %d.",
				nearest.Name.Arabic, nearest.Name.Translit, nearest.Name.Value)
		}

	case result.LineageInsights != nil:
		fmt.Fprintf(b, " Your name contributes %d and your mother's name %d to the combined total.",
			result.LineageInsights.YourCore.Kabir, result.LineageInsights.MotherCore.Kabir)

	case result.PhraseInsights != nil:
		fmt.Fprintf(b, " The phrase spans %d words over %d distinct letters.",
			result.PhraseInsights.WordCount, result.PhraseInsights.UniqueLetters)

	case result.QuranInsights != nil:
		fmt.Fprintf(b, " The verse is %s (%s) %d:%d.",
			result.QuranInsights.Surah.Translit, result.QuranInsights.Surah.Name,
			result.QuranInsights.Surah.Number, result.QuranInsights.AyahNumber)

	case result.DhikrInsights != nil:
		if name := result.DhikrInsights.Name; name != nil {
			fmt.Fprintf(b, " This is the Divine Name %s (%s), %s, the %s of the ninety-nine.",
				name.Arabic, name.Translit, name.Meaning, ordinal(name.Number))
		}
		if counts := result.DhikrInsights.SuggestedCounts; len(counts) > 0 {
			fmt.Fprintf(b, " Suggested recitation counts: %s.", joinInts(counts))
		}

	case result.GeneralInsights != nil:
		if len(result.GeneralInsights.NearestNames) > 0 {
			nearest := result.GeneralInsights.NearestNames[0]
			fmt.Fprintf(b, " The closest Divine Name is %s (%s), value %d.",
				nearest.Name.Arabic, nearest.Name.Translit, nearest.Name.Value)
		}
	}
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprintf("%d", v)
	}
	return strings.Join(parts, ", ")
}

// ordinal renders n with its English ordinal suffix.
func ordinal(n int) string {
	suffix := "th"
	switch {
	case n%100 >= 11 && n%100 <= 13:
	case n%10 == 1:
		suffix = "st"
	case n%10 == 2:
		suffix = "nd"
	case n%10 == 3:
		suffix = "rd"
	}
	return fmt.Sprintf("%d%s", n, suffix)
}
