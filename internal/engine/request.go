package engine

import (
	"github.com/hurufapp/huruf/internal/abjad"
	"github.com/hurufapp/huruf/internal/normalize"
)

// CalculationType discriminates the six input kinds the orchestrator
// accepts. Exactly one insight field of the result is populated per type.
type CalculationType string

// The six calculation kinds.
const (
	TypeName    CalculationType = "name"
	TypeLineage CalculationType = "lineage"
	TypePhrase  CalculationType = "phrase"
	TypeQuran   CalculationType = "quran"
	TypeDhikr   CalculationType = "dhikr"
	TypeGeneral CalculationType = "general"
)

// Valid reports whether t names a known calculation kind.
func (t CalculationType) Valid() bool {
	switch t {
	case TypeName, TypeLineage, TypePhrase, TypeQuran, TypeDhikr, TypeGeneral:
		return true
	default:
		return false
	}
}

// CalculationRequest is the tagged union over the six input kinds. Type
// selects the variant; only that variant's fields are consulted during
// resolution. Every variant shares System and the normalization Options.
type CalculationRequest struct {
	Type CalculationType `json:"type"`

	// Name carries the single name for TypeName.
	Name string `json:"name,omitempty"`

	// YourName and MotherName carry the lineage pair for TypeLineage.
	YourName   string `json:"your_name,omitempty"`
	MotherName string `json:"mother_name,omitempty"`

	// Phrase carries the free phrase for TypePhrase.
	Phrase string `json:"phrase,omitempty"`

	// SurahNumber/AyahNumber reference a verse for TypeQuran; VerseText,
	// when non-empty, is pasted verse text that skips the provider fetch.
	SurahNumber int    `json:"surah_number,omitempty"`
	AyahNumber  int    `json:"ayah_number,omitempty"`
	VerseText   string `json:"verse_text,omitempty"`

	// DivineNameNumber (1..99) or DivineNameText select the name for
	// TypeDhikr; the number wins when both are set.
	DivineNameNumber int    `json:"divine_name_number,omitempty"`
	DivineNameText   string `json:"divine_name_text,omitempty"`

	// Text carries the free text for TypeGeneral.
	Text string `json:"text,omitempty"`

	// System selects the value convention; defaults to Maghribī.
	System abjad.System `json:"system,omitempty"`

	// Options are the normalization flags; zero value means defaults
	// (all stripping enabled), matching the calculation defaults.
	Options *normalize.Options `json:"options,omitempty"`
}

// system returns the request's value convention, defaulting to Maghribī.
func (r CalculationRequest) system() abjad.System {
	if r.System.Valid() {
		return r.System
	}
	return abjad.SystemMaghribi
}

// options returns the request's normalization flags, defaulting to full
// stripping when unset.
func (r CalculationRequest) options() normalize.Options {
	if r.Options == nil {
		return normalize.DefaultOptions()
	}
	return *r.Options
}
