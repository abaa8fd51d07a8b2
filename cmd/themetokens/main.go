package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/leonardotrapani/themetokens/internal/config"
	"github.com/leonardotrapani/themetokens/internal/theme"
	"github.com/leonardotrapani/themetokens/internal/tui"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	configPath string
	logLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, tui.StyleError.Render("error: ")+err.Error())
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "themetokens",
	Short:         "Derive color tokens from a theme palette",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := zerolog.ParseLevel(logLevel)
		if err != nil {
			return fmt.Errorf("invalid --log-level: %w", err)
		}
		log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
			Level(level).
			With().Timestamp().Logger()
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default is $XDG_CONFIG_HOME/themetokens/config.toml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error")

	rootCmd.AddCommand(
		deriveCmd(),
		watchCmd(),
		previewCmd(),
		logoCmd(),
		configCmd(),
	)
}

type outputFlags struct {
	format   string
	output   string
	selector string
}

func (f *outputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.format, "format", "f", "", "output format: css, scss, json (overrides config)")
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "output file (overrides config, default stdout)")
	cmd.Flags().StringVar(&f.selector, "selector", "", "css selector wrapping the custom properties (overrides config)")
}

func (f *outputFlags) apply(cfg *config.Config) {
	if f.format != "" {
		cfg.Output.Format = f.format
	}
	if f.output != "" {
		cfg.Output.Path = f.output
	}
	if f.selector != "" {
		cfg.Output.Selector = f.selector
	}
}

func deriveCmd() *cobra.Command {
	var flags outputFlags

	cmd := &cobra.Command{
		Use:   "derive <theme-file>",
		Short: "Derive tokens from a theme file and write them out",
		Long: `Reads a theme file (.toml, .yaml, .yml or .json), expands its color groups
into named tokens and writes them as CSS custom properties, SCSS variables
or JSON pairs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			manager, err := config.NewManager(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			cfg := manager.GetConfig()
			flags.apply(cfg)
			if err := cfg.Validate(); err != nil {
				return err
			}

			_, err = generate(args[0], cfg, cmd.OutOrStdout())
			return err
		},
	}

	flags.register(cmd)
	return cmd
}

func watchCmd() *cobra.Command {
	var flags outputFlags

	cmd := &cobra.Command{
		Use:   "watch <theme-file>",
		Short: "Regenerate tokens whenever the theme or the config changes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			manager, err := config.NewManager(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			r := &regenerator{
				themePath: args[0],
				manager:   manager,
				flags:     flags,
				out:       cmd.OutOrStdout(),
				logger:    log.Logger,
			}
			return r.Run(ctx)
		},
	}

	flags.register(cmd)
	return cmd
}

func previewCmd() *cobra.Command {
	var colorMode string

	cmd := &cobra.Command{
		Use:   "preview <theme-file>",
		Short: "Show derived tokens as color swatches in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			manager, err := config.NewManager(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			profile, err := tui.ColorProfile(colorMode, cmd.OutOrStdout())
			if err != nil {
				return err
			}

			tokens, ok, err := deriveFile(args[0], manager.GetConfig())
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), tui.StyleWarning.Render("No theme colors configured."))
				return nil
			}
			return tui.Preview(cmd.OutOrStdout(), tokens, profile)
		},
	}

	cmd.Flags().StringVar(&colorMode, "color", "auto", "color output: auto, always, never")
	return cmd
}

func logoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logo <theme-file>",
		Short: "Print the theme context (logo) as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			th, err := theme.Load(args[0])
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(theme.NewContext(th))
		},
	}
}

func configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the themetokens configuration",
	}

	cmd.AddCommand(configInitCmd())
	cmd.AddCommand(configPathCmd())
	cmd.AddCommand(configShowCmd())
	cmd.AddCommand(configConfigureCmd())

	return cmd
}

func resolveConfigPath() (string, error) {
	if configPath != "" {
		return configPath, nil
	}
	return config.GetConfigPath()
}

func configInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := resolveConfigPath()
			if err != nil {
				return err
			}

			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("config already exists at %s (use --force to overwrite)", path)
			} else if err != nil && !errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("failed to stat config file %s: %w", path, err)
			}

			if err := config.SaveFile(path, config.DefaultConfig()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), tui.StyleSuccess.Render("Configuration written to "+path))
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config file")
	return cmd
}

func configPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the config file location",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := resolveConfigPath()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
}

func configShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			manager, err := config.NewManager(configPath)
			if err != nil {
				return err
			}
			return toml.NewEncoder(cmd.OutOrStdout()).Encode(manager.GetConfig())
		},
	}
}

func configConfigureCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "configure",
		Short: "Interactive configuration setup",
		RunE: func(cmd *cobra.Command, args []string) error {
			manager, err := config.NewManager(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			result, err := tui.Configure(manager.GetConfig())
			if err != nil {
				return fmt.Errorf("configuration wizard error: %w", err)
			}
			if result.Cancelled {
				fmt.Fprintln(cmd.OutOrStdout(), tui.StyleMuted.Render("Configuration cancelled."))
				return nil
			}

			if err := result.Config.Validate(); err != nil {
				return fmt.Errorf("configuration validation failed: %w", err)
			}
			if err := config.SaveFile(manager.Path(), result.Config); err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), tui.StyleSuccess.Render("Configuration saved to "+manager.Path()))
			return nil
		},
	}
}
