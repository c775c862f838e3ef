package engine

import (
	"sort"
	"strings"

	"github.com/hurufapp/huruf/internal/abjad"
	"github.com/hurufapp/huruf/internal/normalize"
	"github.com/hurufapp/huruf/internal/quran"
	"github.com/hurufapp/huruf/internal/resonance"
)

// mustSurah looks up already-validated surah metadata.
func mustSurah(number int) quran.Surah {
	surah, _ := quran.SurahByNumber(number)
	return surah
}

// topLetterCount is how many letters the phrase readout surfaces.
const topLetterCount = 3

// attachInsights populates exactly one insight field matching the request
// type. The adapters are thin readouts over the already-computed numbers;
// they add no numeric algorithms of their own.
func (e *Engine) attachInsights(result *Result, req CalculationRequest, resolved resolvedInput) {
	switch req.Type {
	case TypeName:
		result.NameInsights = buildNameInsights(result.Core.Kabir)
	case TypeLineage:
		result.LineageInsights = e.buildLineageInsights(req)
	case TypePhrase:
		result.PhraseInsights = buildPhraseInsights(result, resolved.raw, req.options())
	case TypeQuran:
		result.QuranInsights = &QuranInsights{
			Surah:      mustSurah(resolved.meta.SurahNumber),
			AyahNumber: resolved.meta.AyahNumber,
			TextSource: resolved.textSource,
		}
	case TypeDhikr:
		result.DhikrInsights = buildDhikrInsights(result.Core, resolved.dhikrName)
	case TypeGeneral:
		result.GeneralInsights = &GeneralInsights{
			NearestNames: resonance.NearestNames(result.Core.Kabir),
			LetterCount:  result.Analytics.TotalLetters,
		}
	}
}

func buildNameInsights(kabir int) *NameInsights {
	return &NameInsights{
		NearestNames:     resonance.NearestNames(kabir),
		SharedValueNames: resonance.FindNamesByValue(kabir, 0),
	}
}

// buildLineageInsights re-runs the core calculator over each unmerged name
// so the readout can show the individual contributions. The combined record
// is computed over the joined text by the main pipeline.
func (e *Engine) buildLineageInsights(req CalculationRequest) *LineageInsights {
	system := req.system()
	opts := req.options()
	return &LineageInsights{
		YourCore:   abjad.Compute(normalize.Normalize(req.YourName, opts), system),
		MotherCore: abjad.Compute(normalize.Normalize(req.MotherName, opts), system),
	}
}

func buildPhraseInsights(result *Result, raw string, opts normalize.Options) *PhraseInsights {
	// Word count comes from a whitespace-preserving pass over the raw
	// text; the calculation itself may have stripped spaces.
	wordOpts := opts
	wordOpts.IgnoreSpaces = false
	words := strings.Fields(normalize.Normalize(raw, wordOpts))

	top := result.Analytics.LetterFreq
	if len(top) > topLetterCount {
		top = top[:topLetterCount]
	}

	return &PhraseInsights{
		WordCount:     len(words),
		UniqueLetters: len(result.Analytics.LetterFreq),
		TopLetters:    top,
	}
}

func buildDhikrInsights(core abjad.CoreResults, name *resonance.DivineName) *DhikrInsights {
	counts := []int{core.Saghir, core.Wusta, core.Kabir}
	counts = dedupeAscending(counts)

	return &DhikrInsights{
		Name:            name,
		SuggestedCounts: counts,
	}
}

func dedupeAscending(values []int) []int {
	sort.Ints(values)
	var out []int
	for _, v := range values {
		if v <= 0 {
			continue
		}
		if len(out) > 0 && out[len(out)-1] == v {
			continue
		}
		out = append(out, v)
	}
	return out
}
