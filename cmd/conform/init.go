package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init [directory]",
	Short: "Write a default conform.toml",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runInit,
}

const defaultConfigTOML = `# conform configuration
# Every section is optional; omitted sections use the house defaults.

[commit]
types = ["feat", "fix", "docs", "style", "refactor", "chore"]
require_space_after_type = false

[identifier]
# node_suffixes = { BTN = "button", LBL = "label" }

[[path.rules]]
prefix = "entities/*"
kinds = ["script", "scene"]

[[path.rules]]
prefix = "levels"
kinds = ["scene", "resource"]

[[path.rules]]
prefix = "menus/ui"
kinds = ["scene", "script"]

[[path.rules]]
prefix = "menus/ui/theme_default/assets"
kinds = ["texture", "font"]

[[path.rules]]
prefix = "assets/textures"
kinds = ["texture"]

[[path.rules]]
prefix = "assets/fonts"
kinds = ["font"]

[[path.rules]]
prefix = "autoload"
kinds = ["script"]

[[path.rules]]
prefix = "resources"
kinds = ["resource"]

[rules]
disable = []
# severity = { "NodeName.UnknownSuffix" = "warning" }

[scan]
ignore = ["addons/**", "build/**"]
`

func runInit(_ *cobra.Command, args []string) error {
	dir := "."
	if len(args) == 1 {
		dir = args[0]
	}
	path := filepath.Join(dir, "conform.toml")
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}
	if err := os.WriteFile(path, []byte(defaultConfigTOML), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}
