// Package main is the entry point for the expedition content generator
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ereliastudio/oneblock-tools/internal/config"
	"github.com/ereliastudio/oneblock-tools/internal/generator"
	"github.com/ereliastudio/oneblock-tools/internal/source"
	"github.com/ereliastudio/oneblock-tools/internal/storage"
)

var (
	cfg          = config.DefaultConfig(".")
	settingsPath string
	logLevel     string
)

var rootCmd = &cobra.Command{
	Use:   "expeditiongen <config>",
	Short: "Generate OneBlock expedition content",
	Long: `expeditiongen reads an expedition config and regenerates the unlock, recipe
and key item definitions, the upgrader bench categories, the language file
and the static expedition defaults table.

The config may be a local file or any go-getter source (https://, git::, s3::).`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.Flags()
	flags.StringVar(&cfg.Root, "root", cfg.Root, "mod repository root that output paths are relative to")
	flags.StringVar(&settingsPath, "settings", "", "settings file (default <root>/"+config.SettingsFile+")")
	flags.StringSliceVar(&cfg.DefaultsTargets, "defaults-target", cfg.DefaultsTargets, "defaults table targets: java, go (repeatable)")
	flags.StringVar(&cfg.GoPackage, "go-package", cfg.GoPackage, "package name of the generated Go defaults")
	flags.BoolVar(&cfg.DryRun, "dry-run", false, "plan every file and log it without writing")
	flags.StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error")
}

func run(cmd *cobra.Command, args []string) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(logLevel)); err != nil {
		return fmt.Errorf("invalid --log-level %q", logLevel)
	}
	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))

	fromFile, loadedFrom, err := config.LoadSettings(settingsPath, cfg)
	if err != nil {
		return err
	}
	if loadedFrom != "" {
		explicit := make(map[string]bool)
		cmd.Flags().Visit(func(f *pflag.Flag) { explicit[f.Name] = true })
		config.Merge(cfg, fromFile, explicit)
		log.Debug("loaded settings", "path", loadedFrom)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	workDir, err := os.MkdirTemp("", "expeditiongen-")
	if err != nil {
		return fmt.Errorf("create work dir: %w", err)
	}
	defer os.RemoveAll(workDir)

	configPath, err := source.Fetch(ctx, args[0], workDir, log)
	if err != nil {
		return err
	}

	var w storage.Writer = storage.NewDisk(log)
	if cfg.DryRun {
		w = storage.NewDryRun(log)
	}

	_, err = generator.Run(cfg, configPath, w, log.With("config", args[0]))
	return err
}
