package main

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"conform/internal/report"
	"conform/internal/rules"
	"conform/internal/walk"
)

var watchCmd = &cobra.Command{
	Use:   "watch [directory]",
	Short: "Re-check artifact placement on filesystem changes",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	root := "."
	if len(args) == 1 {
		root = args[0]
	}
	root, err := filepath.Abs(root)
	if err != nil {
		return err
	}

	eng, _, err := buildEngine(cmd)
	if err != nil {
		return err
	}
	log := newLogger(cmd)
	opts := reportOptions(cmd)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	// fsnotify не рекурсивен: подписываемся на каждый каталог.
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if strings.HasPrefix(d.Name(), ".") && path != root {
			return filepath.SkipDir
		}
		return watcher.Add(path)
	})
	if err != nil {
		return err
	}
	log.Info().Str("root", root).Msg("watching")

	for {
		select {
		case <-cmd.Context().Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if info, statErr := os.Stat(event.Name); statErr == nil && info.IsDir() {
				// Новые каталоги тоже начинаем наблюдать.
				if addErr := watcher.Add(event.Name); addErr != nil {
					log.Debug().Err(addErr).Msg("watch add failed")
				}
				continue
			}
			rel, relErr := filepath.Rel(root, event.Name)
			if relErr != nil {
				continue
			}
			rel = filepath.ToSlash(rel)
			kind, known := walk.ClassifyPath(rel)
			if !known {
				continue
			}
			res := eng.Validate(cmd.Context(), rules.PathRequest{
				Segments: strings.Split(rel, "/"),
				Kind:     kind,
			})
			if len(res.Diagnostics) > 0 {
				report.Pretty(os.Stdout, rel, rel, res, opts)
			} else {
				log.Debug().Str("path", rel).Msg("ok")
			}
		case watchErr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn().Err(watchErr).Msg("watch error")
		}
	}
}
