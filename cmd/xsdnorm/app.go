package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"xsdnorm/internal/config"
	"xsdnorm/internal/ordermap"
)

// app carries the state shared by all commands.
type app struct {
	configPath string
	overrides  config.Config

	cfg    *config.Config
	logger *slog.Logger

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdin: stdin, stdout: stdout, stderr: stderr}

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Normalize records for a fixed XML schema",
		Long: `xsdnorm prepares loosely structured records for XML emission against a
fixed schema: it converts field names to the schema's naming convention and
reorders fields into the child sequence each schema type declares.

The child sequences are read from the order-map artifact (order_map.json by
default). A missing artifact disables ordering; a corrupt one is an error.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
	}

	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	flags := cmd.PersistentFlags()
	flags.StringVarP(&a.configPath, "config", "c", "", "Config file path (YAML, default ./"+config.DefaultFile+" when present)")
	flags.StringVar(&a.overrides.OrderMap, "order-map", "", "Order map artifact path (default "+ordermap.DefaultFile+")")
	flags.StringVar(&a.overrides.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")

	cmd.AddCommand(
		a.normalizeCmd(),
		a.nameCmd(),
		a.orderMapCmd(),
		&cobra.Command{
			Use:   "version",
			Short: "Print version information",
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s version %s (build: %s)\n", appName, Version, BuildTime)
			},
		},
	)

	return cmd
}

// init loads the configuration, applies command-line overrides and sets up logging.
func (a *app) init() error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	cfg.Merge(&a.overrides)

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	a.cfg = cfg
	a.logger = slog.New(slog.NewTextHandler(a.stderr, &slog.HandlerOptions{Level: parseLevel(cfg.LogLevel)}))
	slog.SetDefault(a.logger)

	return nil
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// loadOrderMap loads the configured artifact.
func (a *app) loadOrderMap() (ordermap.Map, error) {
	m, err := ordermap.NewLoader(a.logger).LoadFile(a.cfg.OrderMap)
	if err != nil {
		return ordermap.Map{}, fmt.Errorf("load order map: %w", err)
	}

	return m, nil
}
