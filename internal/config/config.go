// Package config loads the persisted key=value configuration file. The
// file is created with documented defaults on first run and loaded
// verbatim on every run; the resulting Config is immutable and passed
// by reference to whichever component needs it.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/ini.v1"
)

// Option keys as they appear in the config file.
const (
	KeyFileInputDefault = "FILE_INPUT_DEFAULT"
	KeyTableSeparator   = "TABLE_SEPARATOR"
	KeyOmitTableHeaders = "OMIT_TABLE_HEADERS"
	KeyAutoclose        = "AUTOCLOSE"
	KeyWholeElements    = "WHOLE_ELEMENTS"
	KeyRenderJS         = "RENDER_JS"
	KeyMaxAttempts      = "MAX_ATTEMPTS"
)

// Config holds every option read from the config file.
type Config struct {
	// FileInputDefault is the directory pre-filled in the output-file
	// prompt.
	FileInputDefault string
	// TableSeparator joins table cells in the output file.
	TableSeparator string
	// OmitTableHeaders suppresses the header row in table output.
	OmitTableHeaders bool
	// Autoclose exits after one scenario run instead of returning to
	// the menu.
	Autoclose bool
	// WholeElements makes extraction return full matched markup
	// instead of just text content.
	WholeElements bool
	// RenderJS fetches pages through a headless browser so JS-driven
	// content is rendered before extraction.
	RenderJS bool
	// MaxAttempts caps validation retries per step; 0 means unlimited.
	MaxAttempts int
}

// Defaults returns the configuration written on first run.
func Defaults() *Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return &Config{
		FileInputDefault: home,
		TableSeparator:   ";",
		OmitTableHeaders: false,
		Autoclose:        true,
		WholeElements:    false,
		RenderJS:         false,
		MaxAttempts:      0,
	}
}

// DefaultPath returns the per-user config file location.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve config directory: %w", err)
	}
	return filepath.Join(dir, "scrapewiz", "scrapewiz.conf"), nil
}

// Load reads the config file at path, creating it with defaults first
// when it does not exist. An unwritable or unparseable config file is
// a fatal startup condition for the caller.
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := writeDefaults(path); err != nil {
			return nil, err
		}
	}

	file, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config %s: %w", path, err)
	}

	cfg := Defaults()
	section := file.Section("")
	cfg.FileInputDefault = section.Key(KeyFileInputDefault).MustString(cfg.FileInputDefault)
	cfg.TableSeparator = section.Key(KeyTableSeparator).MustString(cfg.TableSeparator)
	cfg.OmitTableHeaders = section.Key(KeyOmitTableHeaders).MustBool(cfg.OmitTableHeaders)
	cfg.Autoclose = section.Key(KeyAutoclose).MustBool(cfg.Autoclose)
	cfg.WholeElements = section.Key(KeyWholeElements).MustBool(cfg.WholeElements)
	cfg.RenderJS = section.Key(KeyRenderJS).MustBool(cfg.RenderJS)
	cfg.MaxAttempts = section.Key(KeyMaxAttempts).MustInt(cfg.MaxAttempts)

	if cfg.TableSeparator == "" {
		cfg.TableSeparator = ";"
	}
	return cfg, nil
}

func writeDefaults(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	defaults := Defaults()
	file := ini.Empty()
	section := file.Section("")

	set := func(key, value, comment string) {
		k, _ := section.NewKey(key, value)
		k.Comment = comment
	}
	set(KeyFileInputDefault, defaults.FileInputDefault,
		"directory pre-filled in the output file prompt")
	set(KeyTableSeparator, defaults.TableSeparator,
		"string joining table cells in the output file")
	set(KeyOmitTableHeaders, "false",
		"suppress the header row in table output")
	set(KeyAutoclose, "true",
		"exit after one scrape instead of returning to the menu")
	set(KeyWholeElements, "false",
		"extract full matched markup instead of text content")
	set(KeyRenderJS, "false",
		"fetch pages through a headless browser (renders JavaScript)")
	set(KeyMaxAttempts, "0",
		"cap on validation retries per step, 0 for unlimited")

	if err := file.SaveTo(path); err != nil {
		return fmt.Errorf("failed to write default config %s: %w", path, err)
	}
	return nil
}
