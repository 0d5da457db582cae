package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// fileConfig mirrors Config with pointer fields so we can distinguish
// "not set" from zero values when merging TOML.
type fileConfig struct {
	Root      *string        `toml:"root"`
	LogLevel  *string        `toml:"log_level"`
	TOC       *fileTOC       `toml:"toc"`
	Render    *fileRender    `toml:"render"`
	Reading   *fileReading   `toml:"reading"`
	Blacklist *fileBlacklist `toml:"blacklist"`
	Watch     *fileWatch     `toml:"watch"`
	Server    *fileServer    `toml:"server"`
}

type fileTOC struct {
	AlwaysExpand          *bool   `toml:"always_expand"`
	ShowWhenSingleHeading *bool   `toml:"show_when_single_heading"`
	CollapseKeying        *string `toml:"collapse_keying"`
	Width                 *int    `toml:"width"`
	MinLevel              *int    `toml:"min_level"`
	MaxLevel              *int    `toml:"max_level"`
}

type fileRender struct {
	UseHeadingNumber *bool `toml:"use_heading_number"`
	SkipHeading1     *bool `toml:"skip_heading1"`
	CleanText        *bool `toml:"clean_text"`
}

type fileReading struct {
	CJKPerMinute     *int  `toml:"cjk_per_minute"`
	LatinPerMinute   *int  `toml:"latin_per_minute"`
	RemoveCodeBlocks *bool `toml:"remove_code_blocks"`
	RemoveImageLinks *bool `toml:"remove_image_links"`
}

type fileBlacklist struct {
	Outline       []string `toml:"outline"`
	HeadingNumber []string `toml:"heading_number"`
}

type fileWatch struct {
	DebounceMS *int `toml:"debounce_ms"`
}

type fileServer struct {
	SSHListen   *string `toml:"ssh_listen"`
	HostKeyPath *string `toml:"host_key_path"`
	HTTPListen  *string `toml:"http_listen"`
}

// ConfigDir returns the tocnav config directory, respecting XDG_CONFIG_HOME.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "tocnav")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "tocnav")
}

// ConfigPath returns the full path to config.toml.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// LoadFile reads the config file at path (ConfigPath when empty) and merges
// the fields it sets into cfg. Returns true if the file existed.
func LoadFile(cfg *Config, path string) (bool, error) {
	if path == "" {
		path = ConfigPath()
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	var fc fileConfig
	if err := toml.Unmarshal(data, &fc); err != nil {
		return true, fmt.Errorf("parse %s: %w", path, err)
	}
	fc.merge(cfg)

	return true, cfg.Validate()
}

func set[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

func (fc *fileConfig) merge(cfg *Config) {
	if fc.Root != nil {
		cfg.Root = ExpandHome(*fc.Root)
	}
	set(&cfg.LogLevel, fc.LogLevel)

	if t := fc.TOC; t != nil {
		set(&cfg.TOC.AlwaysExpand, t.AlwaysExpand)
		set(&cfg.TOC.ShowWhenSingleHeading, t.ShowWhenSingleHeading)
		set(&cfg.TOC.CollapseKeying, t.CollapseKeying)
		set(&cfg.TOC.Width, t.Width)
		set(&cfg.TOC.MinLevel, t.MinLevel)
		set(&cfg.TOC.MaxLevel, t.MaxLevel)
	}
	if r := fc.Render; r != nil {
		set(&cfg.Render.UseHeadingNumber, r.UseHeadingNumber)
		set(&cfg.Render.SkipHeading1, r.SkipHeading1)
		set(&cfg.Render.CleanText, r.CleanText)
	}
	if r := fc.Reading; r != nil {
		set(&cfg.Reading.CJKPerMinute, r.CJKPerMinute)
		set(&cfg.Reading.LatinPerMinute, r.LatinPerMinute)
		set(&cfg.Reading.RemoveCodeBlocks, r.RemoveCodeBlocks)
		set(&cfg.Reading.RemoveImageLinks, r.RemoveImageLinks)
	}
	if b := fc.Blacklist; b != nil {
		if b.Outline != nil {
			cfg.Blacklist.Outline = b.Outline
		}
		if b.HeadingNumber != nil {
			cfg.Blacklist.HeadingNumber = b.HeadingNumber
		}
	}
	if w := fc.Watch; w != nil {
		set(&cfg.Watch.DebounceMS, w.DebounceMS)
	}
	if s := fc.Server; s != nil {
		set(&cfg.Server.SSHListen, s.SSHListen)
		set(&cfg.Server.HTTPListen, s.HTTPListen)
		if s.HostKeyPath != nil {
			cfg.Server.HostKeyPath = ExpandHome(*s.HostKeyPath)
		}
	}
}

// Validate rejects values no component can work with.
func (c *Config) Validate() error {
	switch c.TOC.CollapseKeying {
	case KeyByIndex, KeyByIdentity:
	default:
		return fmt.Errorf("toc.collapse_keying: unknown policy %q", c.TOC.CollapseKeying)
	}
	if c.TOC.Width < 10 {
		return fmt.Errorf("toc.width: %d is too narrow", c.TOC.Width)
	}
	if c.TOC.MinLevel < 1 || c.TOC.MaxLevel > 6 || c.TOC.MinLevel > c.TOC.MaxLevel {
		return fmt.Errorf("toc.min_level/max_level: %d..%d is not a range within 1..6", c.TOC.MinLevel, c.TOC.MaxLevel)
	}
	if c.Watch.DebounceMS < 0 {
		return fmt.Errorf("watch.debounce_ms: must not be negative")
	}
	return nil
}

// SaveFile writes cfg to path (ConfigPath when empty), creating the
// directory as needed.
func SaveFile(cfg Config, path string) error {
	if path == "" {
		path = ConfigPath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	root := collapseHome(cfg.Root)
	hostKey := collapseHome(cfg.Server.HostKeyPath)
	fc := fileConfig{
		Root:     &root,
		LogLevel: &cfg.LogLevel,
		TOC: &fileTOC{
			AlwaysExpand:          &cfg.TOC.AlwaysExpand,
			ShowWhenSingleHeading: &cfg.TOC.ShowWhenSingleHeading,
			CollapseKeying:        &cfg.TOC.CollapseKeying,
			Width:                 &cfg.TOC.Width,
			MinLevel:              &cfg.TOC.MinLevel,
			MaxLevel:              &cfg.TOC.MaxLevel,
		},
		Render: &fileRender{
			UseHeadingNumber: &cfg.Render.UseHeadingNumber,
			SkipHeading1:     &cfg.Render.SkipHeading1,
			CleanText:        &cfg.Render.CleanText,
		},
		Reading: &fileReading{
			CJKPerMinute:     &cfg.Reading.CJKPerMinute,
			LatinPerMinute:   &cfg.Reading.LatinPerMinute,
			RemoveCodeBlocks: &cfg.Reading.RemoveCodeBlocks,
			RemoveImageLinks: &cfg.Reading.RemoveImageLinks,
		},
		Blacklist: &fileBlacklist{
			Outline:       nonNil(cfg.Blacklist.Outline),
			HeadingNumber: nonNil(cfg.Blacklist.HeadingNumber),
		},
		Watch: &fileWatch{DebounceMS: &cfg.Watch.DebounceMS},
		Server: &fileServer{
			SSHListen:   &cfg.Server.SSHListen,
			HostKeyPath: &hostKey,
			HTTPListen:  &cfg.Server.HTTPListen,
		},
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(fc)
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// collapseHome stores paths under the home dir with ~ for readability.
func collapseHome(path string) string {
	home, _ := os.UserHomeDir()
	if home != "" && strings.HasPrefix(path, home+string(os.PathSeparator)) {
		return "~" + path[len(home):]
	}
	return path
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, _ := os.UserHomeDir()
	if path == "~" {
		return home
	}
	return filepath.Join(home, path[2:])
}
