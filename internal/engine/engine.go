// Package engine orchestrates huruf calculations: it resolves the
// heterogeneous request variants into a single raw text, runs the
// normalizer and the numeric components over it, and assembles the unified
// result record with exactly one type-specific insight populated.
package engine

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/hurufapp/huruf/internal/abjad"
	"github.com/hurufapp/huruf/internal/elements"
	"github.com/hurufapp/huruf/internal/logging"
	"github.com/hurufapp/huruf/internal/normalize"
	"github.com/hurufapp/huruf/internal/quran"
	"github.com/hurufapp/huruf/internal/resonance"
	"github.com/hurufapp/huruf/internal/zodiac"
)

// Engine is the calculation orchestrator. It holds no per-request state;
// Calculate may be invoked concurrently.
type Engine struct {
	provider quran.AyahProvider

	now func() time.Time

	entropyMu sync.Mutex
	entropy   *rand.Rand
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock overrides the timestamp source, for tests.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// New creates an Engine. provider may be nil, in which case quran requests
// must carry pasted verse text.
func New(provider quran.AyahProvider, opts ...Option) *Engine {
	e := &Engine{
		provider: provider,
		now:      time.Now,
		entropy:  rand.New(rand.NewSource(time.Now().UnixNano())), //nolint:gosec // Record IDs are not security sensitive.
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Calculate resolves the request, runs the numeric pipeline once over the
// resolved text, and returns the assembled result record. The only
// suspension point is the optional verse-text fetch; everything else is
// pure and synchronous. The caller owns persistence of the result.
func (e *Engine) Calculate(ctx context.Context, req CalculationRequest) (*Result, error) {
	log := logging.FromContext(ctx)
	start := e.now()

	if !req.Type.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, req.Type)
	}

	log.Debug().
		Str("component", "engine").
		Str("operation", "calculate").
		Str("type", string(req.Type)).
		Str("system", string(req.system())).
		Msg("starting calculation")

	resolved, err := e.resolve(ctx, req)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(resolved.raw) == "" {
		return nil, ErrEmptySourceText
	}

	system := req.system()
	normalized := e.normalizeFor(req, resolved.raw)

	core := abjad.Compute(normalized, system)
	analytics := elements.Compute(normalized, abjad.ValueFunc(system))

	result := &Result{
		ID:        e.newID(),
		Timestamp: e.now(),
		Type:      req.Type,
		System:    system,
		Input: InputMetadata{
			Raw:        resolved.raw,
			Normalized: normalized,
			Language:   normalize.DetectLanguage(resolved.raw),
			Source:     resolved.meta,
		},
		Core:      core,
		Analytics: analytics,
		Zodiac:    zodiac.Calculate(core.Kabir),
		Sacred:    resonance.NearestSacred(core.Kabir),
	}

	e.attachInsights(result, req, resolved)

	log.Info().
		Str("component", "engine").
		Str("operation", "calculate").
		Str("type", string(req.Type)).
		Str("result_id", result.ID).
		Int("kabir", core.Kabir).
		Int("saghir", core.Saghir).
		Int64("duration_ms", time.Since(start).Milliseconds()).
		Msg("calculation complete")

	return result, nil
}

// resolvedInput is the outcome of type-specific input resolution.
type resolvedInput struct {
	raw  string
	meta SourceMeta

	// dhikrName is the matched table entry for TypeDhikr, nil for free text.
	dhikrName *resonance.DivineName

	// textSource records verse text provenance for TypeQuran.
	textSource string
}

// resolve extracts the single raw text and provenance for the request's
// variant. For TypeQuran without pasted text it performs the provider fetch,
// the orchestrator's only side effect.
func (e *Engine) resolve(ctx context.Context, req CalculationRequest) (resolvedInput, error) {
	switch req.Type {
	case TypeName:
		return resolvedInput{raw: req.Name, meta: SourceMeta{Name: req.Name}}, nil

	case TypeLineage:
		return resolvedInput{
			raw: strings.TrimSpace(req.YourName) + " " + strings.TrimSpace(req.MotherName),
			meta: SourceMeta{
				YourName:   req.YourName,
				MotherName: req.MotherName,
			},
		}, nil

	case TypePhrase:
		return resolvedInput{raw: req.Phrase}, nil

	case TypeQuran:
		return e.resolveQuran(ctx, req)

	case TypeDhikr:
		return e.resolveDhikr(req)

	case TypeGeneral:
		return resolvedInput{raw: req.Text}, nil

	default:
		return resolvedInput{}, fmt.Errorf("%w: %q", ErrUnknownType, req.Type)
	}
}

func (e *Engine) resolveQuran(ctx context.Context, req CalculationRequest) (resolvedInput, error) {
	if !quran.ValidReference(req.SurahNumber, req.AyahNumber) {
		return resolvedInput{}, fmt.Errorf("%w: %d:%d", ErrInvalidReference, req.SurahNumber, req.AyahNumber)
	}

	surah, _ := quran.SurahByNumber(req.SurahNumber)
	meta := SourceMeta{
		SurahNumber: req.SurahNumber,
		SurahName:   surah.Name,
		AyahNumber:  req.AyahNumber,
	}

	if strings.TrimSpace(req.VerseText) != "" {
		return resolvedInput{raw: req.VerseText, meta: meta, textSource: "pasted"}, nil
	}

	if e.provider == nil {
		return resolvedInput{}, ErrNoVerseProvider
	}

	text, err := e.provider.FetchAyahText(ctx, req.SurahNumber, req.AyahNumber)
	if err != nil {
		return resolvedInput{}, fmt.Errorf("resolving verse text: %w", err)
	}

	return resolvedInput{raw: text, meta: meta, textSource: "fetched"}, nil
}

func (e *Engine) resolveDhikr(req CalculationRequest) (resolvedInput, error) {
	if req.DivineNameNumber != 0 {
		name, ok := resonance.NameByNumber(req.DivineNameNumber)
		if !ok {
			return resolvedInput{}, fmt.Errorf("divine name number %d out of range: %w",
				req.DivineNameNumber, ErrEmptySourceText)
		}
		return resolvedInput{
			raw:       name.Arabic,
			meta:      SourceMeta{DivineNameNumber: name.Number, DivineName: name.Arabic},
			dhikrName: &name,
		}, nil
	}

	text := strings.TrimSpace(req.DivineNameText)
	if text == "" {
		return resolvedInput{}, ErrEmptySourceText
	}

	resolved := resolvedInput{raw: text, meta: SourceMeta{DivineName: text}}
	if name, ok := resonance.FindNameByText(text); ok {
		resolved.dhikrName = &name
		resolved.meta.DivineNameNumber = name.Number
	}
	return resolved, nil
}

// normalizeFor applies the variant's normalizer: the strict dhikr variant
// for Divine-Name lookup, the configurable one for everything else.
func (e *Engine) normalizeFor(req CalculationRequest, raw string) string {
	if req.Type == TypeDhikr {
		return normalize.DhikrStrict(raw)
	}
	return normalize.Normalize(raw, req.options())
}

func (e *Engine) newID() string {
	e.entropyMu.Lock()
	defer e.entropyMu.Unlock()
	return ulid.MustNew(ulid.Timestamp(e.now()), e.entropy).String()
}
