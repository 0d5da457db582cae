package config

import (
	"os"
	"path/filepath"
)

// Collapse keying policies.
const (
	KeyByIndex    = "index"
	KeyByIdentity = "identity"
)

type Config struct {
	Root     string
	LogLevel string

	TOC       TOCConfig
	Render    RenderConfig
	Reading   ReadingConfig
	Blacklist BlacklistConfig
	Watch     WatchConfig
	Server    ServerConfig
}

type TOCConfig struct {
	AlwaysExpand          bool
	ShowWhenSingleHeading bool
	CollapseKeying        string
	Width                 int
	// MinLevel and MaxLevel bound the heading levels shown.
	MinLevel int
	MaxLevel int
}

type RenderConfig struct {
	UseHeadingNumber bool
	SkipHeading1     bool
	CleanText        bool
}

type ReadingConfig struct {
	CJKPerMinute     int
	LatinPerMinute   int
	RemoveCodeBlocks bool
	RemoveImageLinks bool
}

type BlacklistConfig struct {
	Outline       []string
	HeadingNumber []string
}

type WatchConfig struct {
	DebounceMS int
}

type ServerConfig struct {
	SSHListen   string
	HostKeyPath string
	HTTPListen  string
}

func Default() Config {
	home, _ := os.UserHomeDir()
	return Config{
		Root:     filepath.Join(home, "notes"),
		LogLevel: "info",
		TOC: TOCConfig{
			AlwaysExpand:          true,
			ShowWhenSingleHeading: false,
			CollapseKeying:        KeyByIndex,
			Width:                 40,
			MinLevel:              1,
			MaxLevel:              6,
		},
		Render: RenderConfig{
			UseHeadingNumber: false,
			SkipHeading1:     false,
			CleanText:        true,
		},
		Reading: ReadingConfig{
			CJKPerMinute:   300,
			LatinPerMinute: 200,
		},
		Watch: WatchConfig{DebounceMS: 200},
		Server: ServerConfig{
			SSHListen:   ":2222",
			HostKeyPath: filepath.Join(ConfigDir(), "host_ed25519"),
			HTTPListen:  ":8090",
		},
	}
}
