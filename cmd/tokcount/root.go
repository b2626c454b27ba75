package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cognicore/tokenkit/internal/logger"
	"github.com/cognicore/tokenkit/pkg/tokenkit/analyzers"
	"github.com/cognicore/tokenkit/pkg/tokenkit/config"
)

// app holds state shared by every subcommand.
type app struct {
	configPath string
	logLevel   string
	logJSON    bool

	log      *zap.Logger
	registry *analyzers.Registry
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:          "tokcount",
		Short:        "Tokenize, filter and count text with tokenkit pipelines",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "pipeline configuration YAML (optional)")
	flags.StringVar(&a.logLevel, "log-level", "warn", "log level: debug, info, warn, error")
	flags.BoolVar(&a.logJSON, "log-json", false, "emit logs as JSON")

	root.AddCommand(
		newAnalyzeCmd(a),
		newCountCmd(a),
		newTopCmd(a),
		newStopwordsCmd(),
	)
	return root
}

func (a *app) init(cmd *cobra.Command) error {
	log, err := logger.New(logger.Config{
		Level:  a.logLevel,
		JSON:   a.logJSON,
		Output: cmd.ErrOrStderr(),
	})
	if err != nil {
		return err
	}
	a.log = log
	cmd.SetContext(logger.WithLogger(cmd.Context(), log))

	loader := config.Loader{ConfigPath: a.configPath, Logger: log}
	reg, err := loader.Load()
	if err != nil {
		return err
	}
	a.registry = reg
	return nil
}

func addAnalyzerFlag(cmd *cobra.Command, target *string, def string) {
	cmd.Flags().StringVarP(target, "analyzer", "a", def, "analyzer name (see 'tokcount analyze --list')")
}
