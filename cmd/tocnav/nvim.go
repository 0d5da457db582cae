package main

import (
	"errors"
	"fmt"
	"os"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/pfassina/tocnav/internal/app"
	"github.com/pfassina/tocnav/internal/editor"
	"github.com/pfassina/tocnav/internal/markdown"
	"github.com/pfassina/tocnav/internal/vault"
)

var (
	nvimSocket   string
	nvimCoalesce time.Duration
)

var nvimCmd = &cobra.Command{
	Use:   "nvim",
	Short: "Follow the current buffer of a running Neovim",
	Long: `Attach to a running Neovim over its RPC socket and show the outline of
its current buffer. The outline follows the cursor; enter and n/p move the
Neovim cursor.

Start Neovim with a socket, then run tocnav in another pane:
  nvim --listen /tmp/nvim.sock notes.md
  tocnav nvim --socket /tmp/nvim.sock

Inside a Neovim terminal the socket defaults to $NVIM.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		socket := nvimSocket
		if socket == "" {
			socket = os.Getenv("NVIM")
		}
		if socket == "" {
			return errors.New("no socket: pass --socket or run inside Neovim")
		}

		lg := quietLogger()

		// Editor events can arrive before the app exists.
		var current atomic.Pointer[app.App]
		rpc, err := editor.ConnectRPC(socket, nvimCoalesce, lg, func() {
			if a := current.Load(); a != nil {
				a.Notify()
			}
		})
		if err != nil {
			return err
		}

		host := editor.NewHost(rpc, vault.New(cfg.Root), markdown.NewParser(cfg.Render.CleanText))
		a := app.New(cfg, host, lg)
		a.SetRPC(rpc)
		defer a.Close()
		current.Store(a)

		p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
		if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
			return fmt.Errorf("run: %w", err)
		}
		return nil
	},
}

func init() {
	nvimCmd.Flags().StringVar(&nvimSocket, "socket", "", "Neovim RPC socket (default: $NVIM)")
	nvimCmd.Flags().DurationVar(&nvimCoalesce, "coalesce", 30*time.Millisecond, "merge editor events arriving within this window")
	rootCmd.AddCommand(nvimCmd)
}
