package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/pfassina/tocnav/internal/config"
	"github.com/pfassina/tocnav/internal/markdown"
	"github.com/pfassina/tocnav/internal/vault"
)

var (
	cfgFile  string
	rootDir  string
	logLevel string
	logFile  string

	cfg     config.Config
	logger  *log.Logger
	logSink io.Closer
)

var rootCmd = &cobra.Command{
	Use:   "tocnav",
	Short: "Navigable heading outline for markdown documents",
	Long: `tocnav builds a collapsible, numbered outline from a markdown document's
headings and keeps it in step with where you are reading or editing.

It can follow a file on disk, a running Neovim instance, or serve the same
outline over SSH and HTTP.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile, "config", "", "config file (default: $XDG_CONFIG_HOME/tocnav/config.toml)",
	)
	rootCmd.PersistentFlags().StringVar(
		&rootDir, "root", "", "document root used for relative paths and blacklists",
	)
	rootCmd.PersistentFlags().StringVar(
		&logLevel, "log-level", "", "log level: debug, info, warn, error",
	)
	rootCmd.PersistentFlags().StringVar(
		&logFile, "log-file", "", "write logs to this file instead of stderr",
	)
}

// setup loads the config file, applies global flags and builds the logger.
func setup(cmd *cobra.Command, args []string) error {
	cfg = config.Default()
	if _, err := config.LoadFile(&cfg, config.ExpandHome(cfgFile)); err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if rootDir != "" {
		cfg.Root = config.ExpandHome(rootDir)
	}
	if abs, err := filepath.Abs(cfg.Root); err == nil {
		cfg.Root = abs
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}

	var w io.Writer = os.Stderr
	if logFile != "" {
		f, err := os.OpenFile(config.ExpandHome(logFile), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		w = f
		logSink = f
	}
	logger = log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
		Prefix:          "tocnav",
	})
	return nil
}

func closeLog() {
	if logSink != nil {
		logSink.Close()
	}
}

// quietLogger routes logs away from the terminal while a TUI owns it,
// unless --log-file was given.
func quietLogger() *log.Logger {
	if logFile != "" {
		return logger
	}
	return log.NewWithOptions(io.Discard, log.Options{})
}

// openDocument opens path as a document. Files outside the configured root
// are opened relative to their own directory.
func openDocument(path string) (*vault.Document, error) {
	abs, err := filepath.Abs(config.ExpandHome(path))
	if err != nil {
		return nil, err
	}
	v := vault.New(cfg.Root)
	if filepath.IsAbs(v.Rel(abs)) {
		v = vault.New(filepath.Dir(abs))
	}
	return v.Open(abs, markdown.NewParser(cfg.Render.CleanText))
}
