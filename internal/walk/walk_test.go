package walk

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"conform/internal/cache"
	"conform/internal/diag"
	"conform/internal/engine"
	"conform/internal/match"
	"conform/internal/rules"
)

func writeTree(t *testing.T, root string, files []string) {
	t.Helper()
	for _, f := range files {
		path := filepath.Join(root, filepath.FromSlash(f))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
}

func newWalker(t *testing.T, opts Options) *Walker {
	t.Helper()
	opts.Log = zerolog.Nop()
	eng := engine.New(rules.DefaultSet(), engine.Options{})
	w, err := New(eng, opts)
	if err != nil {
		t.Fatal(err)
	}
	return w
}

func TestClassifyPath(t *testing.T) {
	tests := []struct {
		path string
		kind match.ArtifactKind
		ok   bool
	}{
		{"entities/player/player.gd", match.ArtifactScript, true},
		{"levels/intro.tscn", match.ArtifactScene, true},
		{"resources/theme.tres", match.ArtifactResource, true},
		{"assets/textures/grass.PNG", match.ArtifactTexture, true},
		{"assets/fonts/title.ttf", match.ArtifactFont, true},
		{"README.md", 0, false},
	}
	for _, tt := range tests {
		kind, ok := ClassifyPath(tt.path)
		if ok != tt.ok || (ok && kind != tt.kind) {
			t.Errorf("ClassifyPath(%q) = %v, %v", tt.path, kind, ok)
		}
	}
}

func TestScan_FlagsMisplacedArtifacts(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, []string{
		"entities/player/player.gd",
		"entities/player/player.tscn",
		"entities/player/skin.png", // texture in a script/scene subtree
		"levels/level_1.tscn",
		"junk/loose.gd", // unknown root
		"notes.txt",     // unclassified, skipped
	})

	w := newWalker(t, Options{})
	rep, err := w.Scan(context.Background(), root)
	if err != nil {
		t.Fatal(err)
	}

	if rep.Checked != 5 {
		t.Errorf("Checked = %d, want 5", rep.Checked)
	}
	if rep.Skipped != 1 {
		t.Errorf("Skipped = %d, want 1", rep.Skipped)
	}
	if rep.OK() {
		t.Error("scan passed with misplaced artifacts")
	}
	if len(rep.Files) != 2 {
		t.Fatalf("flagged files = %+v, want 2", rep.Files)
	}
	// Отчёт отсортирован по пути.
	if rep.Files[0].RelPath != "entities/player/skin.png" || rep.Files[1].RelPath != "junk/loose.gd" {
		t.Errorf("order = [%s %s]", rep.Files[0].RelPath, rep.Files[1].RelPath)
	}
	if rep.Files[0].Result.Diagnostics[0].RuleID != match.CodePathKindNotAllowed {
		t.Errorf("skin.png rule = %s", rep.Files[0].Result.Diagnostics[0].RuleID)
	}
	if rep.Files[1].Result.Diagnostics[0].RuleID != match.CodePathUnknownRoot {
		t.Errorf("loose.gd rule = %s", rep.Files[1].Result.Diagnostics[0].RuleID)
	}
}

func TestScan_IgnoreGlobs(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, []string{
		"addons/vendor/plugin.gd",
		"entities/player/player.gd",
	})

	w := newWalker(t, Options{Ignore: []string{"addons/**"}})
	rep, err := w.Scan(context.Background(), root)
	if err != nil {
		t.Fatal(err)
	}
	if rep.Checked != 1 {
		t.Errorf("Checked = %d, want 1 (addons ignored)", rep.Checked)
	}
	if !rep.OK() {
		t.Errorf("unexpected findings: %+v", rep.Files)
	}
}

func TestScan_HiddenDirsSkipped(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, []string{
		".godot/imported/whatever.png",
		"assets/textures/grass.png",
	})

	w := newWalker(t, Options{})
	rep, err := w.Scan(context.Background(), root)
	if err != nil {
		t.Fatal(err)
	}
	if rep.Checked != 1 {
		t.Errorf("Checked = %d, want 1 (hidden dir skipped)", rep.Checked)
	}
}

func TestScan_WarmCacheReplaysWarnings(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, []string{
		"entities/player/player.gd",
		"entities/player/skin.png", // placement violation, downgraded below
	})
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	c, err := cache.Open("conform-test")
	if err != nil {
		t.Fatal(err)
	}

	set, err := rules.NewSet(rules.DefaultRules(rules.Defaults{}),
		rules.WithSeverity(match.CodePathKindNotAllowed, diag.SevWarning))
	if err != nil {
		t.Fatal(err)
	}
	w, err := New(engine.New(set, engine.Options{}), Options{Cache: c, Log: zerolog.Nop()})
	if err != nil {
		t.Fatal(err)
	}

	cold, err := w.Scan(context.Background(), root)
	if err != nil {
		t.Fatal(err)
	}
	warm, err := w.Scan(context.Background(), root)
	if err != nil {
		t.Fatal(err)
	}

	if warm.Cached != 2 {
		t.Errorf("warm Cached = %d, want 2", warm.Cached)
	}
	// Тёплый скан обязан выдавать то же самое, что и холодный.
	if len(cold.Files) != 1 || len(warm.Files) != 1 {
		t.Fatalf("flagged: cold=%d warm=%d, want 1 and 1", len(cold.Files), len(warm.Files))
	}
	got, want := warm.Files[0], cold.Files[0]
	if got.RelPath != want.RelPath || len(got.Result.Diagnostics) != 1 ||
		got.Result.Diagnostics[0] != want.Result.Diagnostics[0] {
		t.Errorf("warm report diverged from cold:\ncold %+v\nwarm %+v", want, got)
	}
	if d := got.Result.Diagnostics[0]; d.Severity != diag.SevWarning {
		t.Errorf("severity = %v, want warning", d.Severity)
	}
	if !cold.OK() || !warm.OK() {
		t.Error("warnings must not fail the scan")
	}
}

func TestNew_BadIgnorePattern(t *testing.T) {
	eng := engine.New(rules.DefaultSet(), engine.Options{})
	if _, err := New(eng, Options{Ignore: []string{"[broken"}, Log: zerolog.Nop()}); err == nil {
		t.Error("bad glob accepted")
	}
}
