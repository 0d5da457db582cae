package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pfassina/tocnav/internal/api"
	"github.com/pfassina/tocnav/internal/markdown"
	"github.com/pfassina/tocnav/internal/navigator"
	"github.com/pfassina/tocnav/internal/vault"
)

var (
	outlineCursor   int
	outlineScroll   float64
	outlineCollapse []int
	outlineJSON     bool
	outlineAll      bool
	outlineMinLevel int
	outlineMaxLevel int
)

var outlineCmd = &cobra.Command{
	Use:   "outline FILE",
	Short: "Print the heading outline of a markdown file",
	Long: `Print the heading outline of a markdown file.

The active heading is marked with '>'. With --cursor it is the last heading
at or before that 0-based line; with --scroll it is the first heading at or
after that top line, as a rendered preview would show it.

Examples:
  tocnav outline README.md
  tocnav outline README.md --cursor 40
  tocnav outline README.md --scroll 12.5 --collapse 0,3
  tocnav outline README.md --min-level 2 --max-level 3
  tocnav outline README.md --json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Flags().Changed("min-level") {
			cfg.TOC.MinLevel = outlineMinLevel
		}
		if cmd.Flags().Changed("max-level") {
			cfg.TOC.MaxLevel = outlineMaxLevel
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		doc, err := openDocument(args[0])
		if err != nil {
			return err
		}

		mode, pos := navigator.ModeSource, float64(outlineCursor)
		if cmd.Flags().Changed("scroll") {
			if cmd.Flags().Changed("cursor") {
				return fmt.Errorf("--cursor and --scroll are mutually exclusive")
			}
			mode, pos = navigator.ModePreview, outlineScroll
		}

		o, err := snapshot(doc, mode, pos, outlineCollapse)
		if err != nil {
			return err
		}
		wc := doc.Stats(navigator.CountOptions(cfg))
		reading := api.NewReading(wc, cfg.Reading.CJKPerMinute, cfg.Reading.LatinPerMinute)

		out := cmd.OutOrStdout()
		if outlineJSON {
			rep := api.NewReport(o, mode)
			rep.Reading = reading
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(rep)
		}
		writeOutline(out, o, reading.Label, outlineAll)
		return nil
	},
}

func init() {
	outlineCmd.Flags().IntVar(&outlineCursor, "cursor", 0, "0-based cursor line (source mode)")
	outlineCmd.Flags().Float64Var(&outlineScroll, "scroll", 0, "top visible line (preview mode)")
	outlineCmd.Flags().IntSliceVar(&outlineCollapse, "collapse", nil, "heading indices to collapse")
	outlineCmd.Flags().BoolVar(&outlineJSON, "json", false, "print JSON")
	outlineCmd.Flags().BoolVar(&outlineAll, "all", false, "print the outline even when it would be hidden")
	outlineCmd.Flags().IntVar(&outlineMinLevel, "min-level", 1, "shallowest heading level to show")
	outlineCmd.Flags().IntVar(&outlineMaxLevel, "max-level", 6, "deepest heading level to show")
	rootCmd.AddCommand(outlineCmd)
}

// snapshot computes the outline of doc at a position with the given
// headings collapsed.
func snapshot(doc *vault.Document, mode navigator.Mode, pos float64, collapse []int) (navigator.Outline, error) {
	headings, err := doc.Headings()
	if err != nil {
		return navigator.Outline{}, err
	}

	opts := navigator.OptionsFromConfig(cfg)
	sess := navigator.New(opts, logger)
	sess.SetDocument(doc.Path(), headings)
	sess.SetLineCount(len(doc.Lines()))
	sess.SetExpanded(markdown.Expanded(doc.Frontmatter(), opts.AlwaysExpand))
	n := len(sess.Headings())
	for _, i := range collapse {
		if i < 0 || i >= n {
			return navigator.Outline{}, fmt.Errorf("--collapse %d: outline has %d headings", i, n)
		}
		if !sess.IsCollapsed(i) {
			sess.Toggle(i)
		}
	}
	return sess.Compute(mode, pos), nil
}

func writeOutline(w io.Writer, o navigator.Outline, reading string, all bool) {
	fmt.Fprintf(w, "%s  (%d headings, %s", o.Path, o.Len(), reading)
	if o.Lines > 0 {
		fmt.Fprintf(w, ", %d%%", o.Progress)
	}
	fmt.Fprintln(w, ")")
	if !o.Show && !all {
		fmt.Fprintln(w, "outline hidden")
		return
	}

	for _, i := range o.VisibleIndices() {
		h := o.Headings[i]
		active := " "
		if i == o.Active {
			active = ">"
		}
		marker := " "
		switch {
		case o.Collapsed[i]:
			marker = "+"
		case o.HasChildren[i]:
			marker = "-"
		}
		text := h.Text
		if o.Number[i] != "" {
			text = o.Number[i] + " " + text
		}
		fmt.Fprintf(w, "%s %s%s %s  :%d\n", active, strings.Repeat("  ", o.Depth[i]), marker, text, h.StartLine+1)
	}
}
