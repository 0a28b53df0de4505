//go:build !tinygo

package feed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// configFlag is read after flag parsing, so viper is built per command run.
var configFlag string

// NewRootCmd builds the picoled-feed command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "picoled-feed",
		Short: "Feed host telemetry to a picoled display",
		Long: `Sample host CPU load, memory use and temperatures, and stream them to a
picoled display over its USB serial port.

Examples:
  picoled-feed run --port /dev/ttyACM0
  picoled-feed ident --port /dev/ttyACM0
  picoled-feed config --config feed.yaml`,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&configFlag, "config", "", "YAML config file")
	root.PersistentFlags().String("port", "", "serial device of the display")

	root.AddCommand(newRunCmd(), newIdentCmd(), newConfigCmd())
	return root
}

func loadConfig(cmd *cobra.Command) (Config, error) {
	vp, err := NewViper(configFlag)
	if err != nil {
		return Config{}, err
	}
	if err := vp.BindPFlag("port", cmd.Flags().Lookup("port")); err != nil {
		return Config{}, fmt.Errorf("bind --port: %w", err)
	}
	if f := cmd.Flags().Lookup("interval"); f != nil {
		if err := vp.BindPFlag("interval", f); err != nil {
			return Config{}, fmt.Errorf("bind --interval: %w", err)
		}
	}
	return Load(vp)
}

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Stream telemetry until interrupted",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			port, err := OpenPort(cfg.Port)
			if err != nil {
				return err
			}
			defer port.Close()

			logger := log.New(cmd.ErrOrStderr(), "[feed] ", log.LstdFlags)
			logger.Printf("streaming to %s every %s", cfg.Port, cfg.Interval)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			err = Stream(ctx, port, NewSampler(cfg).Sample, cfg.Interval, logger)
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		},
	}
	cmd.Flags().Duration("interval", 0, "time between samples (default 500ms)")
	return cmd
}

func newIdentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ident",
		Short: "Ask the display for its board identity",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			port, err := OpenPort(cfg.Port)
			if err != nil {
				return err
			}
			defer port.Close()

			id, err := Identify(port, cfg.IdentTimeout)
			if err != nil {
				return fmt.Errorf("%s: %w", cfg.Port, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), id)
			return nil
		},
	}
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return writeYAML(cmd.OutOrStdout(), cfg)
		},
	}
}

func writeYAML(w io.Writer, cfg Config) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return enc.Close()
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := NewRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
