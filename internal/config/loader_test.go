package config

import (
	"os"
	"path/filepath"
	"testing"

	"conform/internal/diag"
	"conform/internal/match"
)

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_TOML(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "conform.toml", `
[commit]
types = ["feat", "wip"]
require_space_after_type = true

[identifier]
node_suffixes = { HUD = "heads-up display" }

[[path.rules]]
prefix = "game/*"
kinds = ["script"]

[rules]
disable = ["BranchName.MissingIssueNumber"]
severity = { "NodeName.UnknownSuffix" = "warning" }

[scan]
ignore = ["addons/**"]
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	set, err := cfg.Build()
	if err != nil {
		t.Fatal(err)
	}

	if _, ok := set.Lookup(match.CodeBranchMissingIssueNumber); ok {
		t.Error("disabled rule survived the build")
	}
	r, ok := set.Lookup(match.CodeNodeNameUnknownSuffix)
	if !ok || r.Severity != diag.SevWarning {
		t.Errorf("severity override lost: %+v", r)
	}
	if len(cfg.Scan.Ignore) != 1 {
		t.Errorf("ignore globs = %v", cfg.Scan.Ignore)
	}
}

func TestLoad_TOMLUnknownKeyRejected(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "conform.toml", `
[commit]
typo_key = true
`)
	if _, err := Load(path); err == nil {
		t.Fatal("unknown key accepted")
	}
}

func TestLoad_YAML(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "conform.yaml", `
commit:
  types: [feat, fix]
rules:
  disable: [Commit.EmptyScope]
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	set, err := cfg.Build()
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := set.Lookup(match.CodeCommitEmptyScope); ok {
		t.Error("disabled rule survived the build")
	}
}

func TestBuild_Errors(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"bad severity", Config{Rules: RulesConfig{Severity: map[string]string{match.CodeCommitEmptyScope: "fatal"}}}},
		{"unknown rule disable", Config{Rules: RulesConfig{Disable: []string{"No.Such"}}}},
		{"bad suffix", Config{Identifier: IdentifierConfig{NodeSuffixes: map[string]string{"btn": "x"}}}},
		{"bad kind", Config{Path: PathConfig{Rules: []PathRule{{Prefix: "a", Kinds: []string{"blob"}}}}}},
		{"kindless path rule", Config{Path: PathConfig{Rules: []PathRule{{Prefix: "a"}}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.cfg.Build(); err == nil {
				t.Error("Build() accepted broken config")
			}
		})
	}
}

func TestFind_SearchesUpwards(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "conform.toml", "")
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	path, ok, err := Find(nested)
	if err != nil || !ok {
		t.Fatalf("Find() = %v, %v", ok, err)
	}
	if filepath.Base(path) != "conform.toml" {
		t.Errorf("found %s", path)
	}
}

func TestLoadOrDefault_NoFile(t *testing.T) {
	cfg, used, err := LoadOrDefault(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if used != "" {
		t.Errorf("used = %q, want empty", used)
	}
	if _, err := cfg.Build(); err != nil {
		t.Errorf("default config does not build: %v", err)
	}
}
