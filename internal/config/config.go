// Package config loads conform.toml / conform.yaml and builds the immutable
// rule set the engine runs with. The engine itself never sees raw
// configuration text.
package config

import (
	"fmt"

	"conform/internal/diag"
	"conform/internal/match"
	"conform/internal/rules"
)

// Config mirrors the on-disk configuration. Zero values mean "house default".
type Config struct {
	Commit     CommitConfig     `toml:"commit" yaml:"commit"`
	Identifier IdentifierConfig `toml:"identifier" yaml:"identifier"`
	Path       PathConfig       `toml:"path" yaml:"path"`
	Rules      RulesConfig      `toml:"rules" yaml:"rules"`
	Scan       ScanConfig       `toml:"scan" yaml:"scan"`
}

type CommitConfig struct {
	// Types replaces the allowed commit type set.
	Types []string `toml:"types" yaml:"types"`
	// RequireSpaceAfterType makes "feat:description" (no space) invalid.
	RequireSpaceAfterType bool `toml:"require_space_after_type" yaml:"require_space_after_type"`
}

type IdentifierConfig struct {
	// NodeSuffixes replaces the node type suffix table (suffix -> meaning).
	NodeSuffixes map[string]string `toml:"node_suffixes" yaml:"node_suffixes"`
}

type PathConfig struct {
	// Rules replaces the directory placement schema.
	Rules []PathRule `toml:"rules" yaml:"rules"`
}

// PathRule allows artifact kinds under a directory prefix. A "*" segment
// matches any single directory name.
type PathRule struct {
	Prefix string   `toml:"prefix" yaml:"prefix"`
	Kinds  []string `toml:"kinds" yaml:"kinds"`
}

type RulesConfig struct {
	// Disable drops rules by ID.
	Disable []string `toml:"disable" yaml:"disable"`
	// Severity overrides per rule ID: "error", "warning" or "info".
	Severity map[string]string `toml:"severity" yaml:"severity"`
}

type ScanConfig struct {
	// Ignore is a list of doublestar globs relative to the scan root.
	Ignore []string `toml:"ignore" yaml:"ignore"`
}

// Default returns the configuration equivalent to an absent config file.
func Default() *Config {
	return &Config{}
}

// Build assembles the rule set from the configuration. Любая ошибка здесь
// фатальна и происходит до первой валидации.
func (c *Config) Build() (*rules.Set, error) {
	d := rules.Defaults{
		Commit: match.CommitOptions{
			Types:        c.Commit.Types,
			RequireSpace: c.Commit.RequireSpaceAfterType,
		},
	}

	if len(c.Identifier.NodeSuffixes) > 0 {
		table := match.SuffixTable(c.Identifier.NodeSuffixes)
		if err := table.Validate(); err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
		d.Suffixes = table
	}

	if len(c.Path.Rules) > 0 {
		schema := match.NewSchema()
		for _, pr := range c.Path.Rules {
			kinds, err := parseKinds(pr.Kinds)
			if err != nil {
				return nil, fmt.Errorf("config: path rule %q: %w", pr.Prefix, err)
			}
			if err := schema.Allow(pr.Prefix, kinds); err != nil {
				return nil, fmt.Errorf("config: %w", err)
			}
		}
		d.Schema = schema
	}

	opts := []rules.Option{rules.WithDisabled(c.Rules.Disable...)}
	for id, name := range c.Rules.Severity {
		sev, ok := diag.ParseSeverity(name)
		if !ok {
			return nil, fmt.Errorf("config: rule %s: unknown severity %q", id, name)
		}
		opts = append(opts, rules.WithSeverity(id, sev))
	}

	return rules.NewSet(rules.DefaultRules(d), opts...)
}

func parseKinds(names []string) (match.KindSet, error) {
	if len(names) == 0 {
		return 0, fmt.Errorf("no kinds listed")
	}
	var set match.KindSet
	for _, name := range names {
		k, ok := match.ParseArtifactKind(name)
		if !ok {
			return 0, fmt.Errorf("unknown artifact kind %q", name)
		}
		set |= match.NewKindSet(k)
	}
	return set, nil
}
