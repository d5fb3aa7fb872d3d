// Command prxz formats values and dates from the command line and renders
// templates with the formatting helpers.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	prxz "github.com/mizuki666/go-prxz"
)

type app struct {
	// environ replaces the process environment when set (tests).
	environ map[string]string

	env       envConfig
	logger    *zap.Logger
	formatter *prxz.Formatter
	config    *prxz.Config

	locale    string
	rulesFile string
	offset    time.Duration
	verbose   bool
	jsonArgs  bool
}

func main() {
	if err := newRootCmd(&app{}).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "prxz",
		Short:         "Format numbers, money and dates the Russian dashboard way",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.locale, "locale", "", "locale of the formatting rules (env PRXZ_LOCALE)")
	flags.StringVar(&a.rulesFile, "rules", "", "JSON or YAML rules file merged over the defaults (env PRXZ_RULES_FILE)")
	flags.DurationVar(&a.offset, "offset", 0, "offset dates are projected onto, e.g. 3h (env PRXZ_TIME_OFFSET)")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	flags.BoolVar(&a.jsonArgs, "json", false, "decode every argument as JSON (arrays, objects, numbers, null)")

	root.AddCommand(
		newValCmd(a),
		newPercCmd(a),
		newMoneyCmd(a),
		newShortCmd(a),
		newDateCmd(a),
		newRenderCmd(a),
	)

	return root
}

// setup resolves env defaults, builds the logger and the formatter. Flags set
// on the command line win over the environment.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := loadEnvConfig(a.environ)
	if err != nil {
		return err
	}
	a.env = cfg

	logConfig := zap.NewProductionConfig()
	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zapcore.WarnLevel
	}
	if a.verbose {
		level = zapcore.DebugLevel
	}
	logConfig.Level = zap.NewAtomicLevelAt(level)
	a.logger, err = logConfig.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	flags := cmd.Flags()
	if !flags.Changed("locale") {
		a.locale = cfg.Locale
	}
	if !flags.Changed("rules") {
		a.rulesFile = cfg.RulesFile
	}

	opts := []prxz.Option{
		prxz.WithLocale(a.locale),
		prxz.WithLogger(a.logger),
	}
	if a.rulesFile != "" {
		opts = append(opts, prxz.WithRulesFile(a.rulesFile))
	}

	if flags.Changed("offset") {
		opts = append(opts, prxz.WithTimeOffset(a.offset))
	} else if offset, err := cfg.timeOffset(); err != nil {
		return err
	} else if offset != nil {
		opts = append(opts, prxz.WithTimeOffset(*offset))
	}

	a.config, err = prxz.NewConfig(opts...)
	if err != nil {
		return fmt.Errorf("configure formatter: %w", err)
	}

	a.formatter, err = a.config.BuildFormatter()
	if err != nil {
		return fmt.Errorf("build formatter: %w", err)
	}

	a.logger.Debug("formatter ready",
		zap.String("locale", a.formatter.Locale()),
		zap.Duration("offset", a.formatter.TimeOffset()),
	)
	return nil
}
