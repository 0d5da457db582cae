package ssh

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/pfassina/tocnav/internal/config"
)

func TestHandlerResolve(t *testing.T) {
	root := t.TempDir()
	cfg := config.Default()
	cfg.Root = root
	h := &handler{cfg: cfg, defaultFile: "index.md"}

	tests := []struct {
		name    string
		args    []string
		want    string
		wantErr bool
	}{
		{"default file", nil, filepath.Join(root, "index.md"), false},
		{"command arg", []string{"notes/a.md"}, filepath.Join(root, "notes", "a.md"), false},
		{"escapes root", []string{"../secret.md"}, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := h.resolve(tt.args)
			if (err != nil) != tt.wantErr {
				t.Fatalf("resolve(%v) err = %v, wantErr %v", tt.args, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("resolve(%v) = %q, want %q", tt.args, got, tt.want)
			}
		})
	}
}

func TestHandlerResolve_NoFile(t *testing.T) {
	h := &handler{cfg: config.Default()}
	if _, err := h.resolve(nil); !errors.Is(err, errNoFile) {
		t.Errorf("err = %v, want errNoFile", err)
	}
}
