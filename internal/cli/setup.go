package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/hurufapp/huruf/internal/abjad"
	"github.com/hurufapp/huruf/internal/config"
	"github.com/hurufapp/huruf/internal/engine"
	"github.com/hurufapp/huruf/internal/history"
	"github.com/hurufapp/huruf/internal/narrative"
	"github.com/hurufapp/huruf/internal/normalize"
	"github.com/hurufapp/huruf/internal/quran"
)

// runtime bundles the wired components for one command invocation.
type runtime struct {
	cfg       *config.Config
	eng       *engine.Engine
	store     *history.Store
	narrator  narrative.Provider
	format    string
	noHistory bool
}

// loadConfig loads and validates the effective configuration.
func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if validateErr := cfg.Validate(); validateErr != nil {
		return nil, validateErr
	}
	return cfg, nil
}

// newRuntime resolves config and flags into wired components. Flags override
// environment and file values.
func newRuntime(cmd *cobra.Command) (*runtime, error) {
	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := loadConfig(configPath)
	if err != nil {
		return nil, err
	}

	if system, _ := cmd.Flags().GetString("system"); system != "" {
		cfg.Calculation.System = system
	}
	if format, _ := cmd.Flags().GetString("output"); format != "" {
		cfg.Output.Format = format
	}
	if validateErr := cfg.Validate(); validateErr != nil {
		return nil, validateErr
	}

	var provider quran.AyahProvider
	if !cfg.Provider.Offline {
		timeout := time.Duration(cfg.Provider.TimeoutSeconds) * time.Second
		provider = quran.NewHTTPProvider(cfg.ProviderBaseURL(), timeout)
	}

	store, err := history.NewStore(cfg.History.File, cfg.History.MaxEntries)
	if err != nil {
		return nil, fmt.Errorf("opening history store: %w", err)
	}

	noHistory, _ := cmd.Flags().GetBool("no-history")

	return &runtime{
		cfg:       cfg,
		eng:       engine.New(provider),
		store:     store,
		narrator:  narrative.NewTemplateProvider(),
		format:    cfg.Output.Format,
		noHistory: noHistory || cfg.History.Disabled,
	}, nil
}

// system returns the effective letter-value system.
func (r *runtime) system() abjad.System {
	return r.cfg.System()
}

// normalizeOptions returns the effective normalization options.
func (r *runtime) normalizeOptions() *normalize.Options {
	opts := normalize.DefaultOptions()
	if r.cfg.Calculation.KeepSpaces {
		opts.IgnoreSpaces = false
	}
	if r.cfg.Calculation.KeepDiacritics {
		opts.RemoveVowels = false
	}
	return &opts
}

// runCalculation executes one request, records it in history, and renders
// the result.
func (r *runtime) runCalculation(cmd *cobra.Command, req engine.CalculationRequest) error {
	req.System = r.system()
	req.Options = r.normalizeOptions()

	result, err := r.eng.Calculate(cmd.Context(), req)
	if err != nil {
		return err
	}

	r.record(result)
	return renderResult(cmd, result, r.narrator, r.format)
}

// record appends the result to history, best-effort.
func (r *runtime) record(result *engine.Result) {
	if r.noHistory {
		return
	}
	if err := r.store.Load(); err != nil {
		logger.Warn().Err(err).Msg("could not load history, skipping recording")
		return
	}
	if err := r.store.Append(result); err != nil {
		logger.Warn().Err(err).Msg("could not append to history")
		return
	}
	if err := r.store.Save(); err != nil {
		logger.Warn().Err(err).Msg("could not save history")
	}
}
