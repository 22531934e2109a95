package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/bjaus/tablefy/internal/gen"
)

const logLevelEnv = "TABLEFY_LOG_LEVEL"

var (
	errGenerateFailed = errors.New("generation failed")
	errLogFormat      = errors.New("unknown log format")
)

type options struct {
	types     []string
	output    string
	tags      []string
	logLevel  string
	logFormat string
}

func bindFlags(fs *pflag.FlagSet, opts *options) {
	defaultLevel := os.Getenv(logLevelEnv)
	if defaultLevel == "" {
		defaultLevel = "info"
	}
	fs.StringSliceVarP(&opts.types, "type", "t", nil, "struct type names to generate for (required)")
	fs.StringVarP(&opts.output, "output", "o", "", "output file (default <type>_tablefy.go in the package directory)")
	fs.StringSliceVar(&opts.tags, "tags", nil, "build tags applied while loading the package")
	fs.StringVar(&opts.logLevel, "log-level", defaultLevel, "log level: debug, info, warn, error")
	fs.StringVar(&opts.logFormat, "log-format", "text", "log format: text, json")
}

func newRootCommand(stderr io.Writer) *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:           "tablefy --type T[,T...] [dir]",
		Short:         "Generate tablefy.Tabular implementations for struct types",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(stderr, opts.logLevel, opts.logFormat)
			if err != nil {
				return err
			}
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			cfg := gen.Config{
				Dir:    dir,
				Types:  opts.types,
				Output: opts.output,
				Tags:   opts.tags,
			}
			return run(cmd, logger, cfg)
		},
	}
	bindFlags(cmd.Flags(), &opts)
	_ = cmd.MarkFlagRequired("type")
	return cmd
}

func newLogger(w io.Writer, level, format string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	logger := log.NewWithOptions(w, log.Options{
		Level:  lvl,
		Prefix: "tablefy",
	})
	switch format {
	case "text":
		logger.SetFormatter(log.TextFormatter)
		logger.SetStyles(levelStyles())
	case "json":
		logger.SetFormatter(log.JSONFormatter)
	default:
		return nil, fmt.Errorf("%w: %q", errLogFormat, format)
	}
	return logger, nil
}

func levelStyles() *log.Styles {
	styles := log.DefaultStyles()
	styles.Levels[log.WarnLevel] = lipgloss.NewStyle().SetString("WARN").Bold(true).Foreground(lipgloss.Color("214"))
	styles.Levels[log.ErrorLevel] = lipgloss.NewStyle().SetString("ERROR").Bold(true).Foreground(lipgloss.Color("204"))
	return styles
}

func run(cmd *cobra.Command, logger *log.Logger, cfg gen.Config) error {
	logger.Debug("loading package", "dir", cfg.Dir, "types", cfg.Types, "tags", cfg.Tags)
	res, err := gen.Generate(cmd.Context(), cfg)
	if err != nil {
		logger.Error("generate", "dir", cfg.Dir, "err", err)
		return errors.Join(errGenerateFailed, err)
	}
	for _, w := range res.Warnings {
		logger.Warn("type error in package", "err", w)
	}
	for _, s := range res.Structs {
		logger.Debug("generated", "type", s.Name, "columns", len(s.Fields))
	}
	logger.Info("wrote", "file", res.Output, "types", len(res.Structs))
	return nil
}
