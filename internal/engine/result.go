package engine

import (
	"time"

	"github.com/hurufapp/huruf/internal/abjad"
	"github.com/hurufapp/huruf/internal/elements"
	"github.com/hurufapp/huruf/internal/normalize"
	"github.com/hurufapp/huruf/internal/quran"
	"github.com/hurufapp/huruf/internal/resonance"
	"github.com/hurufapp/huruf/internal/zodiac"
)

// SourceMeta carries the variant-specific provenance of the resolved text.
// Only the fields of the request's variant are populated.
type SourceMeta struct {
	Name       string `json:"name,omitempty"`
	YourName   string `json:"your_name,omitempty"`
	MotherName string `json:"mother_name,omitempty"`

	SurahNumber int    `json:"surah_number,omitempty"`
	SurahName   string `json:"surah_name,omitempty"`
	AyahNumber  int    `json:"ayah_number,omitempty"`

	DivineNameNumber int    `json:"divine_name_number,omitempty"`
	DivineName       string `json:"divine_name,omitempty"`
}

// InputMetadata records what was calculated: the raw resolved text, its
// normalized form, the script classification of the raw text, and the
// variant provenance.
type InputMetadata struct {
	Raw        string             `json:"raw"`
	Normalized string             `json:"normalized"`
	Language   normalize.Language `json:"language"`
	Source     SourceMeta         `json:"source"`
}

// Result is the orchestrator's output record: one immutable value per
// calculation, suitable for history persistence and for the narrative
// service as stable numeric context. Exactly one of the six *Insights
// fields is non-nil, matching Type.
type Result struct {
	ID        string          `json:"id"`
	Timestamp time.Time       `json:"timestamp"`
	Type      CalculationType `json:"type"`
	System    abjad.System    `json:"system"`

	Input     InputMetadata         `json:"input"`
	Core      abjad.CoreResults     `json:"core"`
	Analytics elements.Analytics    `json:"analytics"`
	Zodiac    zodiac.Sign           `json:"zodiac"`
	Sacred    resonance.SacredMatch `json:"sacred"`

	NameInsights    *NameInsights    `json:"name_insights,omitempty"`
	LineageInsights *LineageInsights `json:"lineage_insights,omitempty"`
	PhraseInsights  *PhraseInsights  `json:"phrase_insights,omitempty"`
	QuranInsights   *QuranInsights   `json:"quran_insights,omitempty"`
	DhikrInsights   *DhikrInsights   `json:"dhikr_insights,omitempty"`
	GeneralInsights *GeneralInsights `json:"general_insights,omitempty"`
}

// NameInsights is the readout for single-name calculations.
type NameInsights struct {
	// NearestNames are the three Divine Names closest to the name's total.
	NearestNames []resonance.NameMatch `json:"nearest_names"`

	// SharedValueNames are the Divine Names whose value equals the total
	// exactly; empty when none match.
	SharedValueNames []resonance.DivineName `json:"shared_value_names,omitempty"`
}

// LineageInsights is the readout for name+mother calculations. The combined
// total equals the sum of the two independent totals: concatenation with a
// space introduces no mapped characters.
type LineageInsights struct {
	YourCore   abjad.CoreResults `json:"your_core"`
	MotherCore abjad.CoreResults `json:"mother_core"`
}

// PhraseInsights is the readout for phrase calculations.
type PhraseInsights struct {
	WordCount     int                        `json:"word_count"`
	UniqueLetters int                        `json:"unique_letters"`
	TopLetters    []elements.LetterFrequency `json:"top_letters"`
}

// QuranInsights is the readout for verse calculations.
type QuranInsights struct {
	Surah      quran.Surah `json:"surah"`
	AyahNumber int         `json:"ayah_number"`

	// TextSource records where the verse text came from: "pasted" or
	// "fetched" (the latter covers provider placeholder fallback too).
	TextSource string `json:"text_source"`
}

// DhikrInsights is the readout for Divine-Name recitation calculations.
type DhikrInsights struct {
	// Name is the resolved table entry, nil when free text matched no
	// tabulated name.
	Name *resonance.DivineName `json:"divine_name,omitempty"`

	// SuggestedCounts are recitation counts derived from the totals, in
	// ascending order: the digital root, the middle value, the grand total.
	SuggestedCounts []int `json:"suggested_counts"`
}

// GeneralInsights is the readout for free-text calculations.
type GeneralInsights struct {
	NearestNames []resonance.NameMatch `json:"nearest_names"`
	LetterCount  int                   `json:"letter_count"`
}
