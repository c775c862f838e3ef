package cli

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/hurufapp/huruf/internal/logging"
)

// setupLogging configures logging from config file, environment, and CLI
// flags, and installs the logger plus a trace ID into the command context.
func setupLogging(cmd *cobra.Command) {
	loggingCfg := logging.Config{Level: "info", Format: "console"}

	configPath, _ := cmd.Flags().GetString("config")
	if cfg, err := loadConfig(configPath); err == nil {
		loggingCfg.Level = cfg.Logging.Level
		loggingCfg.File = cfg.Logging.File
	}

	debug, _ := cmd.Flags().GetBool("debug")
	if debug {
		loggingCfg.Level = "debug"
		loggingCfg.File = ""
	}

	if loggingCfg.File != "" {
		if err := os.MkdirAll(filepath.Dir(loggingCfg.File), 0o700); err != nil {
			cmd.PrintErrf("Warning: could not create log directory: %v\n", err)
			loggingCfg.File = ""
		}
	}

	result := logging.NewLoggerWithPath(loggingCfg)
	logger = logging.ComponentLogger(result.Logger, "cli")

	if result.UsingFile {
		logging.PrintLogPathMessage(cmd.ErrOrStderr(), result.FilePath)
	} else if result.FallbackUsed {
		logging.PrintFallbackWarning(cmd.ErrOrStderr(), result.FallbackReason)
	}

	ctx := cmd.Context()
	traceID := logging.GetOrGenerateTraceID(ctx)
	ctx = logging.ContextWithTraceID(ctx, traceID)
	ctx = logger.WithContext(ctx)
	cmd.SetContext(ctx)

	logger.Debug().Str("command", cmd.Name()).Str("trace_id", traceID).Msg("command started")
}
