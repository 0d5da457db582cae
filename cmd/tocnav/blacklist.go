package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pfassina/tocnav/internal/blacklist"
	"github.com/pfassina/tocnav/internal/config"
	"github.com/pfassina/tocnav/internal/vault"
)

var blacklistList string

var blacklistCmd = &cobra.Command{
	Use:   "blacklist",
	Short: "Inspect and edit the outline and numbering blacklists",
	Long: `Blacklist patterns are paths relative to the root where '*' matches any
run of characters, including '/'. Paths matching blacklist.outline get no
outline; paths matching blacklist.heading_number are not numbered.`,
}

var blacklistCheckCmd = &cobra.Command{
	Use:   "check [PATH...]",
	Short: "Show which documents the blacklists cover",
	Long: `Print every markdown document under the root (or the given paths) with
the patterns covering it. Documents no pattern covers are left out unless
paths are given.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		v := vault.New(cfg.Root)
		paths := make([]string, 0, len(args))
		for _, a := range args {
			paths = append(paths, v.Rel(v.Abs(config.ExpandHome(a))))
		}
		explicit := len(paths) > 0
		if !explicit {
			entries, err := v.ListNotes()
			if err != nil {
				return fmt.Errorf("list %s: %w", cfg.Root, err)
			}
			for _, e := range entries {
				paths = append(paths, e.Path)
			}
		}

		writeCoverage(cmd.OutOrStdout(), paths, cfg.Blacklist, explicit)
		return nil
	},
}

func writeCoverage(w io.Writer, paths []string, lists config.BlacklistConfig, all bool) {
	for _, p := range paths {
		var notes []string
		if m := blacklist.Matching(p, lists.Outline); m != "" {
			notes = append(notes, "no outline ("+m+")")
		}
		if m := blacklist.Matching(p, lists.HeadingNumber); m != "" {
			notes = append(notes, "no numbers ("+m+")")
		}
		if len(notes) == 0 {
			if all {
				fmt.Fprintf(w, "%s\tok\n", p)
			}
			continue
		}
		fmt.Fprintf(w, "%s\t%s\n", p, strings.Join(notes, ", "))
	}
}

var blacklistToggleCmd = &cobra.Command{
	Use:   "toggle PATH",
	Short: "Add or remove a path in a blacklist",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return toggleBlacklist(cmd, args[0], blacklist.Toggle)
	},
}

var blacklistToggleFolderCmd = &cobra.Command{
	Use:   "toggle-folder PATH",
	Short: "Add or remove the folder holding a path in a blacklist",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return toggleBlacklist(cmd, args[0], blacklist.ToggleFolder)
	},
}

// selectList returns the config list named by --list.
func selectList(lists *config.BlacklistConfig, name string) (*[]string, error) {
	switch name {
	case "outline":
		return &lists.Outline, nil
	case "number", "heading_number":
		return &lists.HeadingNumber, nil
	default:
		return nil, fmt.Errorf("--list: unknown blacklist %q (outline or number)", name)
	}
}

func toggleBlacklist(cmd *cobra.Command, path string, toggle func(string, []string) ([]string, blacklist.Outcome)) error {
	list, err := selectList(&cfg.Blacklist, blacklistList)
	if err != nil {
		return err
	}

	v := vault.New(cfg.Root)
	rel := v.Rel(v.Abs(config.ExpandHome(path)))
	updated, outcome := toggle(rel, *list)
	fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", rel, outcome)
	if !outcome.Changed() {
		return nil
	}

	*list = updated
	if err := config.SaveFile(cfg, config.ExpandHome(cfgFile)); err != nil {
		return fmt.Errorf("save config: %w", err)
	}
	logger.Debug("blacklist saved", "list", blacklistList, "entries", len(updated))
	return nil
}

func init() {
	blacklistCmd.PersistentFlags().StringVar(&blacklistList, "list", "outline", "blacklist to edit: outline or number")
	blacklistCmd.AddCommand(blacklistCheckCmd, blacklistToggleCmd, blacklistToggleFolderCmd)
	rootCmd.AddCommand(blacklistCmd)
}
