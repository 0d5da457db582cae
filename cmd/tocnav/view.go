package main

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/pfassina/tocnav/internal/app"
)

var viewWatch bool

var viewCmd = &cobra.Command{
	Use:   "view FILE",
	Short: "Browse a markdown file beside its outline",
	Long: `Open an interactive outline next to the document text.

Keys in the outline: j/k move, enter jumps, space folds, n/p step between
headings, t/b go to the top or bottom of the document, r returns to where
you were before the last jump, C/E collapse or expand everything, ? shows
help. ctrl+w switches to the document, where j/k and ctrl+d/ctrl+u scroll
and g/G go to either end.

With --watch the outline follows edits saved by another program.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := openDocument(args[0])
		if err != nil {
			return err
		}

		a := app.New(cfg, doc, quietLogger())
		defer a.Close()
		if viewWatch {
			if err := a.EnableWatch(); err != nil {
				return err
			}
		}

		p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
		if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
			return err
		}
		return nil
	},
}

func init() {
	viewCmd.Flags().BoolVar(&viewWatch, "watch", false, "reload when the file changes on disk")
	rootCmd.AddCommand(viewCmd)
}
