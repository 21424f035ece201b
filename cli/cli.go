// Package cli parses the command line flags into an editor config.
package cli

import (
	"flag"
	"fmt"
	"os"

	"pixeled/editor"
)

func parseConfig(name string, args []string) (editor.Config, error) {
	cfg := editor.DefaultConfig()

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.IntVar(&cfg.Width, "width", cfg.Width, "window width in pixels")
	fs.IntVar(&cfg.Height, "height", cfg.Height, "window height in pixels")
	fs.IntVar(&cfg.CellSize, "cell", cfg.CellSize, "size of one grid cell in pixels")
	if err := fs.Parse(args); err != nil {
		return editor.Config{}, fmt.Errorf("parse flags: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return editor.Config{}, fmt.Errorf("invalid geometry: %w", err)
	}
	return cfg, nil
}

func ParseConfig() (editor.Config, error) {
	return parseConfig(os.Args[0], os.Args[1:])
}
