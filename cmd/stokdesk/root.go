package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/stokdesk/tui-go/internal/config"
	"github.com/stokdesk/tui-go/internal/logging"
	"github.com/stokdesk/tui-go/internal/menu"
	"github.com/stokdesk/tui-go/internal/tui"
	"go.uber.org/zap"
)

// RootOptions holds global flags and the state PersistentPreRunE builds
// from them.
type RootOptions struct {
	ConfigPath string
	MenuPath   string
	Theme      string
	Debug      bool

	cfg      *config.Config
	logger   *zap.Logger
	closeLog func() error
}

// skipSetup marks commands that need neither the config nor a log file.
const skipSetup = "skip-setup"

// NewRootCommand creates the stokdesk command tree. Call opts.Close once
// it has executed.
func NewRootCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stokdesk",
		Short: "stokdesk - terminal inventory desk",
		Long: `stokdesk is a terminal front end for stock, customer and cash operations.

Pick a form from the menu to open it in a tab. Run without arguments to
start the interactive interface.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Annotations[skipSetup] != "" {
				return nil
			}
			return opts.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, opts)
		},
	}

	// Global flags
	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "config file (default: .stokdesk/config.yaml, then ~/.stokdesk/config.yaml)")
	cmd.PersistentFlags().StringVar(&opts.MenuPath, "menu", "", "menu YAML file (default: built-in menu)")
	cmd.PersistentFlags().StringVar(&opts.Theme, "theme", "", "color theme (dark|light)")
	cmd.PersistentFlags().BoolVar(&opts.Debug, "debug", false, "debug logging and the session debug panel")

	// Add subcommands
	cmd.AddCommand(NewMenuCommand(opts))
	cmd.AddCommand(NewInitCommand(opts))
	cmd.AddCommand(NewVersionCommand())

	return cmd
}

// setup loads the config, applies flag overrides and opens the log file.
func (o *RootOptions) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(o.ConfigPath)
	if err != nil {
		return err
	}
	if o.MenuPath != "" {
		cfg.MenuFile = o.MenuPath
	}
	if o.Theme != "" {
		cfg.Theme = config.Theme(o.Theme)
	}
	if o.Debug {
		cfg.Debug = true
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, closeLog, err := logging.New(logging.Options{
		File:       cfg.Log.File,
		Level:      cfg.Log.Level,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		Debug:      cfg.Debug,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	o.cfg = cfg
	o.logger = logger
	o.closeLog = closeLog
	logger.Debug("config loaded",
		zap.String("command", cmd.Name()),
		zap.String("theme", string(cfg.Theme)),
		zap.String("menu", cfg.MenuFile))
	return nil
}

// Close syncs and closes the log file. Safe to call more than once.
func (o *RootOptions) Close() error {
	if o.closeLog == nil {
		return nil
	}
	err := o.closeLog()
	o.closeLog = nil
	return err
}

// execute runs the command tree and closes the log whether or not the
// command failed.
func execute(ctx context.Context, opts *RootOptions, cmd *cobra.Command) error {
	err := cmd.ExecuteContext(ctx)
	if err != nil && opts.logger != nil {
		opts.logger.Error("command failed", zap.Error(err))
	}
	if cerr := opts.Close(); err == nil {
		err = cerr
	}
	return err
}

// runTUI starts the Bubble Tea program, plus the menu watcher when a menu
// file is configured.
func runTUI(cmd *cobra.Command, opts *RootOptions) error {
	cfg, logger := opts.cfg, opts.logger

	tree, err := menu.Load(cfg.MenuFile)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		tui.NewRootModel(cfg, tree, logger),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(cmd.Context()),
	)

	if cfg.MenuFile != "" && cfg.WatchMenu {
		w, err := menu.NewWatcher(cfg.MenuFile, func(t menu.Tree, err error) {
			p.Send(tui.MenuReloadedMsg{Tree: t, Err: err})
		}, logger)
		if err != nil {
			return err
		}
		if err := w.Start(cmd.Context()); err != nil {
			return err
		}
		defer w.Close()
	}

	logger.Info("starting tui", zap.Int("groups", len(tree.Items)))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}
	logger.Info("tui exited")
	return nil
}
