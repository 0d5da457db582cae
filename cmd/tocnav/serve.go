package main

import (
	"github.com/spf13/cobra"

	"github.com/pfassina/tocnav/internal/ssh"
)

var serveListen string

var serveCmd = &cobra.Command{
	Use:   "serve [FILE]",
	Short: "Serve the interactive outline over SSH",
	Long: `Start an SSH server where every session gets its own outline view.

The document is taken from the ssh command, relative to the root, and
falls back to FILE:
  tocnav serve --root ~/notes index.md
  ssh -p 2222 localhost projects/plan.md`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if serveListen != "" {
			cfg.Server.SSHListen = serveListen
		}
		var file string
		if len(args) > 0 {
			file = args[0]
		}

		s, err := ssh.New(cfg, file, logger)
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		go func() {
			<-ctx.Done()
			if err := s.Close(); err != nil {
				logger.Error("close ssh server", "err", err)
			}
		}()

		return s.ListenAndServe()
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveListen, "listen", "", "listen address (default from config, :2222)")
	rootCmd.AddCommand(serveCmd)
}
