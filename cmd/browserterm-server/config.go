package main

import (
	"fmt"
	"os"

	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	vtcore "github.com/B-Ingwersen/browserterm"
)

// serverConfig holds every knob the server accepts, whether set by flag,
// YAML file, or terminal-size detection. Flags take precedence over a
// loaded config file; see runServer.
type serverConfig struct {
	Addr       string   `yaml:"addr"`
	StaticPath string   `yaml:"static_path"`
	Shell      []string `yaml:"shell"`
	Rows       int      `yaml:"rows"`
	Cols       int      `yaml:"cols"`
}

func defaultConfig() serverConfig {
	rows, cols := vtcore.DefaultRows, vtcore.DefaultCols
	if w, h, err := term.GetSize(int(os.Stdin.Fd())); err == nil {
		cols, rows = w, h
	}
	return serverConfig{
		Addr:       ":7681",
		StaticPath: "",
		Shell:      []string{defaultShell()},
		Rows:       rows,
		Cols:       cols,
	}
}

func defaultShell() string {
	if sh := os.Getenv("SHELL"); sh != "" {
		return sh
	}
	return "/bin/sh"
}

// loadConfigFile overlays YAML file contents onto cfg. Fields absent from
// the file are left untouched, so flags set before this call survive.
func loadConfigFile(cfg *serverConfig, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}
	return nil
}
