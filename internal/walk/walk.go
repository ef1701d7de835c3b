// Package walk scans a project tree and validates the placement of every
// recognized artifact against the directory schema rules. It owns all the IO
// around the engine: classification, ignore globs, the scan cache and the
// parallel fan-out.
package walk

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"sync/atomic"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"conform/internal/cache"
	"conform/internal/diag"
	"conform/internal/engine"
	"conform/internal/match"
	"conform/internal/rules"
)

// extKinds classifies artifacts by file extension.
var extKinds = map[string]match.ArtifactKind{
	".gd":   match.ArtifactScript,
	".tscn": match.ArtifactScene,
	".tres": match.ArtifactResource,
	".png":  match.ArtifactTexture,
	".webp": match.ArtifactTexture,
	".svg":  match.ArtifactTexture,
	".ttf":  match.ArtifactFont,
	".otf":  match.ArtifactFont,
}

// ClassifyPath returns the artifact kind for a file path, false for files the
// scanner does not recognize.
func ClassifyPath(path string) (match.ArtifactKind, bool) {
	k, ok := extKinds[strings.ToLower(filepath.Ext(path))]
	return k, ok
}

// FileResult pairs a scanned file with its validation outcome.
type FileResult struct {
	RelPath string
	Kind    match.ArtifactKind
	Result  engine.Result
}

// Report is the aggregate outcome of one tree scan.
type Report struct {
	Checked int
	Skipped int // unrecognized extensions and ignored paths
	Cached  int
	Files   []FileResult // only files with diagnostics, ordered by path
}

// OK reports whether no scanned file produced an error diagnostic.
func (r Report) OK() bool {
	for _, f := range r.Files {
		if !f.Result.OK {
			return false
		}
	}
	return true
}

// Walker scans project trees. Safe for reuse across scans.
type Walker struct {
	eng    *engine.Engine
	ignore []string
	cache  *cache.Cache // optional
	jobs   int
	log    zerolog.Logger
}

// Options configure a Walker.
type Options struct {
	Ignore []string     // doublestar globs relative to the scan root
	Cache  *cache.Cache // nil disables caching
	Jobs   int          // 0 = errgroup default
	Log    zerolog.Logger
}

func New(eng *engine.Engine, opts Options) (*Walker, error) {
	for _, pattern := range opts.Ignore {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("walk: bad ignore pattern %q", pattern)
		}
	}
	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = 4
	}
	return &Walker{
		eng:    eng,
		ignore: opts.Ignore,
		cache:  opts.Cache,
		jobs:   jobs,
		log:    opts.Log,
	}, nil
}

func (w *Walker) ignored(rel string) bool {
	for _, pattern := range w.ignore {
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return true
		}
	}
	return false
}

// cleanOf mirrors the engine's verdict: only Error severity fails a file.
func cleanOf(ds []diag.Diagnostic) bool {
	for _, d := range ds {
		if d.Severity >= diag.SevError {
			return false
		}
	}
	return true
}

type candidate struct {
	rel   string
	kind  match.ArtifactKind
	size  int64
	mtime int64
}

// Scan walks root, validates every recognized artifact's placement and
// returns a deterministic report: files are validated concurrently but the
// report lists them in path order.
func (w *Walker) Scan(ctx context.Context, root string) (Report, error) {
	var report Report

	if w.cache != nil {
		if err := w.cache.Load(root); err != nil {
			w.log.Debug().Err(err).Msg("scan cache unavailable")
		}
	}

	var files []candidate
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return relErr
		}
		rel = filepath.ToSlash(rel)
		if rel == "." {
			return nil
		}
		if d.IsDir() {
			if strings.HasPrefix(d.Name(), ".") || w.ignored(rel) {
				return filepath.SkipDir
			}
			return nil
		}
		if w.ignored(rel) {
			report.Skipped++
			return nil
		}
		kind, ok := ClassifyPath(rel)
		if !ok {
			report.Skipped++
			return nil
		}
		info, infoErr := d.Info()
		if infoErr != nil {
			return infoErr
		}
		files = append(files, candidate{
			rel:   rel,
			kind:  kind,
			size:  info.Size(),
			mtime: info.ModTime().UnixNano(),
		})
		return nil
	})
	if err != nil {
		return Report{}, fmt.Errorf("walk %s: %w", root, err)
	}

	results := make([]*FileResult, len(files))
	var cacheHits atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(w.jobs)
	for i, f := range files {
		i, f := i, f
		g.Go(func() error {
			if gctx.Err() != nil {
				return gctx.Err()
			}
			if ds, hit := w.cache.Lookup(f.rel, f.size, f.mtime); hit {
				// Попадание в кеш: переигрываем сохранённые диагностики
				// как есть, включая предупреждения.
				cacheHits.Add(1)
				if len(ds) > 0 {
					results[i] = &FileResult{
						RelPath: f.rel,
						Kind:    f.kind,
						Result:  engine.Result{OK: cleanOf(ds), Diagnostics: ds},
					}
				}
				return nil
			}
			res := w.eng.Validate(gctx, rules.PathRequest{
				Segments: strings.Split(f.rel, "/"),
				Kind:     f.kind,
			})
			w.cache.Store(f.rel, f.size, f.mtime, res.Diagnostics)
			if len(res.Diagnostics) > 0 {
				results[i] = &FileResult{RelPath: f.rel, Kind: f.kind, Result: res}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Report{}, err
	}

	report.Checked = len(files)
	report.Cached = int(cacheHits.Load())
	for _, r := range results {
		if r != nil {
			report.Files = append(report.Files, *r)
		}
	}
	sort.Slice(report.Files, func(i, j int) bool {
		return report.Files[i].RelPath < report.Files[j].RelPath
	})

	if w.cache != nil {
		if err := w.cache.Flush(root); err != nil {
			w.log.Debug().Err(err).Msg("scan cache flush failed")
		}
	}
	w.log.Debug().
		Int("checked", report.Checked).
		Int("skipped", report.Skipped).
		Int("flagged", len(report.Files)).
		Msg("scan complete")
	return report, nil
}
