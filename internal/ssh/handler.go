package ssh

import (
	"errors"
	"fmt"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	bts "github.com/charmbracelet/wish/bubbletea"

	"github.com/pfassina/tocnav/internal/app"
	"github.com/pfassina/tocnav/internal/config"
	"github.com/pfassina/tocnav/internal/markdown"
	"github.com/pfassina/tocnav/internal/vault"
)

var errNoFile = errors.New("no document given: ssh HOST path/to/note.md")

type handler struct {
	cfg         config.Config
	defaultFile string
	log         *log.Logger
}

// resolve picks the document for a session. Paths are taken relative to
// the configured root and may not leave it.
func (h *handler) resolve(args []string) (string, error) {
	file := h.defaultFile
	if len(args) > 0 {
		file = args[0]
	}
	if file == "" {
		return "", errNoFile
	}
	if h.cfg.Root == "" {
		return file, nil
	}

	v := vault.New(h.cfg.Root)
	abs := v.Abs(file)
	if filepath.IsAbs(v.Rel(abs)) {
		return "", fmt.Errorf("%s is outside %s", file, h.cfg.Root)
	}
	return abs, nil
}

// handle returns a Bubble Tea program for an SSH session.
func (h *handler) handle(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	path, err := h.resolve(sess.Command())
	if err != nil {
		wish.Fatalln(sess, err)
		return nil, nil
	}

	root := h.cfg.Root
	if root == "" {
		root = filepath.Dir(path)
	}
	doc, err := vault.New(root).Open(path, markdown.NewParser(h.cfg.Render.CleanText))
	if err != nil {
		wish.Fatalln(sess, err)
		return nil, nil
	}

	logger := h.log.With("user", sess.User(), "path", doc.Path())
	a := app.New(h.cfg, doc, logger)
	if err := a.EnableWatch(); err != nil {
		logger.Warn("watch document", "err", err)
	}
	go func() {
		<-sess.Context().Done()
		a.Close()
	}()

	opts := []tea.ProgramOption{
		tea.WithAltScreen(),
	}
	opts = append(opts, bts.MakeOptions(sess)...)

	return a, opts
}
