package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/stokdesk/tui-go/internal/config"
	"github.com/stokdesk/tui-go/internal/menu"
	"go.uber.org/zap"
)

// Set at build time with -ldflags "-X main.version=..."
var version = "dev"

// NewMenuCommand creates the menu command.
func NewMenuCommand(opts *RootOptions) *cobra.Command {
	var leaves, asYAML bool

	cmd := &cobra.Command{
		Use:   "menu",
		Short: "Print the menu tree",
		Long: `Print the menu the sidebar would show, after validation.

With --leaves, print one openable tab id per line instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, err := menu.Load(opts.cfg.MenuFile)
			if err != nil {
				return err
			}
			switch {
			case asYAML:
				data, err := tree.Marshal()
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			case leaves:
				for _, id := range tree.Leaves() {
					fmt.Fprintln(cmd.OutOrStdout(), id)
				}
				return nil
			default:
				return printTree(cmd.OutOrStdout(), tree)
			}
		},
	}

	cmd.Flags().BoolVar(&leaves, "leaves", false, "print openable ids only")
	cmd.Flags().BoolVar(&asYAML, "yaml", false, "print the menu as YAML")
	cmd.MarkFlagsMutuallyExclusive("leaves", "yaml")
	return cmd
}

func printTree(w io.Writer, tree menu.Tree) error {
	for _, item := range tree.Items {
		icon := item.Icon
		if icon == "" {
			icon = "·"
		}
		if _, err := fmt.Fprintf(w, "%s %s\n", icon, item.Name); err != nil {
			return err
		}
		for _, child := range item.Children {
			if _, err := fmt.Fprintf(w, "    %s\n", child); err != nil {
				return err
			}
		}
	}
	return nil
}

// NewInitCommand creates the init command.
func NewInitCommand(opts *RootOptions) *cobra.Command {
	var force, withMenu bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a project config to .stokdesk/",
		Long: `Write the effective configuration to .stokdesk/config.yaml.

With --with-menu, also write the menu to .stokdesk/menu.yaml and point the
config at it, so the menu can be edited while stokdesk is running.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := *opts.cfg
			targets := []string{config.ProjectConfigPath()}
			if withMenu {
				targets = append(targets, projectMenuPath())
			}
			if !force {
				if err := ensureAbsent(targets...); err != nil {
					return err
				}
			}

			var menuData []byte
			if withMenu {
				tree, err := menu.Load(cfg.MenuFile)
				if err != nil {
					return err
				}
				if menuData, err = tree.Marshal(); err != nil {
					return err
				}
				cfg.MenuFile = projectMenuPath()
			}

			path, err := config.SaveToProject(&cfg, force)
			if errors.Is(err, os.ErrExist) {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}
			if err != nil {
				return err
			}
			opts.logger.Info("project config written", zap.String("path", path))
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)

			if withMenu {
				if err := os.WriteFile(cfg.MenuFile, menuData, 0o644); err != nil {
					return fmt.Errorf("write menu: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", cfg.MenuFile)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing files")
	cmd.Flags().BoolVar(&withMenu, "with-menu", false, "also write an editable menu file")
	return cmd
}

// projectMenuPath is where init exports an editable menu, next to the
// project config.
func projectMenuPath() string {
	return filepath.Join(filepath.Dir(config.ProjectConfigPath()), "menu.yaml")
}

// ensureAbsent fails on the first path that already exists.
func ensureAbsent(paths ...string) error {
	for _, p := range paths {
		_, err := os.Stat(p)
		if err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", p)
		}
		if !errors.Is(err, os.ErrNotExist) {
			return err
		}
	}
	return nil
}

// NewVersionCommand creates the version command.
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Annotations: map[string]string{
			skipSetup: "true",
		},
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "stokdesk %s\n", version)
		},
	}
}
