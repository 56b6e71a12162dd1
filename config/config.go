// Package config loads the formatter's page-layout settings from disk,
// falling back to an embedded default, and can watch the config file for
// edits while the demo CLI is running.
package config

import (
	"embed"
	"encoding/json"
	"io/fs"
	"log"
	"os"

	"github.com/fsnotify/fsnotify"

	"splitfmt/batch"
	"splitfmt/splitter"
)

//go:embed config.json
var defaultConfig embed.FS

var confDir string
var confName string = "config.json"
var confFile string

// FormatConfig is the on-disk shape of the formatter's settings.
type FormatConfig struct {
	SpacesPerIndent        int    `json:"spacesPerIndent"`
	OverflowCharCost       int    `json:"overflowCharCost"`
	PageWidth              int    `json:"pageWidth"`
	PreemptionDisabled     bool   `json:"preemptionDisabled"`
	PreemptionValueProduct int    `json:"preemptionValueProduct"`
	LineEnding             string `json:"lineEnding"`
}

// SplitterOptions returns the settings splitter.LineSplitter needs.
func (c *FormatConfig) SplitterOptions() splitter.Options {
	return splitter.Options{SpacesPerIndent: c.SpacesPerIndent, OverflowCharCost: c.OverflowCharCost}
}

// BatchOptions returns the settings batch.LineWriter needs.
func (c *FormatConfig) BatchOptions() batch.Options {
	return batch.Options{
		SpacesPerIndent:        c.SpacesPerIndent,
		OverflowCharCost:       c.OverflowCharCost,
		PageWidth:              c.PageWidth,
		LineEnding:             c.LineEnding,
		DisablePreemption:      c.PreemptionDisabled,
		PreemptionValueProduct: c.PreemptionValueProduct,
	}
}

// Config owns the formatter's settings and, once Watch is called, keeps
// them current as the backing file changes.
type Config struct {
	log     *log.Logger
	watcher *fsnotify.Watcher

	Format *FormatConfig
}

// New returns a Config that logs through log.
func New(logger *log.Logger) *Config {
	return &Config{log: logger, Format: &FormatConfig{}}
}

// Load resolves the config file's location, writing the embedded default if
// none exists yet, then reads it into memory.
func (cfg *Config) Load() {
	if os.Getenv("XDG_CONFIG_HOME") == "" {
		confDir = os.Getenv("HOME") + "/.splitfmt"
	} else {
		confDir = os.Getenv("XDG_CONFIG_HOME") + "/splitfmt"
	}
	confFile = confDir + "/" + confName

	cfg.writeConfigIfMissing()
	cfg.readConfigIntoMemory()
}

func (cfg *Config) writeConfigIfMissing() {
	_, err := os.DirFS(confDir).Open(confName)
	if err == nil {
		return
	}

	content, err := fs.ReadFile(defaultConfig, confName)
	if err != nil {
		cfg.log.Fatalf("config: could not read embedded default: %v", err)
	}

	if derr := os.MkdirAll(confDir, 0755); derr != nil {
		cfg.log.Fatalf("config: could not create config directory: %v", derr)
	}
	if ferr := os.WriteFile(confFile, content, 0664); ferr != nil {
		cfg.log.Fatalf("config: could not write default config: %v", ferr)
	}
}

func (cfg *Config) readConfigIntoMemory() {
	content, err := os.ReadFile(confFile)
	if err != nil {
		cfg.log.Fatalf("config: could not read config file: %v", err)
	}
	if err := json.Unmarshal(content, cfg.Format); err != nil {
		cfg.log.Fatalf("config: could not parse config file: %v", err)
	}
}

// Watch starts reloading the config whenever a file in confDir is written,
// blocking until Close is called; watcher errors are logged and watching
// continues. Run it in its own goroutine.
func (cfg *Config) Watch() {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		cfg.log.Fatalf("config: could not create file watcher: %v", err)
	}
	cfg.watcher = watcher

	if err := watcher.Add(confDir); err != nil {
		cfg.log.Fatalf("config: could not watch config directory: %v", err)
	}

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if event.Has(fsnotify.Write) {
				cfg.readConfigIntoMemory()
				cfg.log.Printf("config: reloaded %s", confFile)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			cfg.log.Printf("config: watcher error: %v", err)
		}
	}
}

// Close stops the file watcher, if one was started.
func (cfg *Config) Close() {
	if cfg.watcher != nil {
		cfg.watcher.Close()
	}
}
