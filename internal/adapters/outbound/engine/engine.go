// Package engine bridges the resolved configuration to fixer transforms.
// Transforms are registered by fixer name; the engine enumerates the
// configuration's bound file set, applies the transforms of the active
// fixers, and reports changed files in processing order.
package engine

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/csfix/csfix/internal/domain"
)

// Transform rewrites file content. It must be pure: same input, same output.
type Transform func(content []byte) []byte

// Engine implements domain.Engine over a transform registry.
type Engine struct {
	transforms map[string]Transform
}

func New() *Engine {
	return &Engine{transforms: make(map[string]Transform)}
}

// Register installs the transform for a fixer name. Later registrations
// replace earlier ones.
func (e *Engine) Register(name string, t Transform) {
	e.transforms[name] = t
}

// Fix applies the configuration's active fixers to its file set. Under
// dryRun no file is written. Reported paths are relative to the directory
// root for directory targets; single-file targets report the bound path.
func (e *Engine) Fix(cfg *domain.Config, dryRun bool) ([]domain.ChangedFile, error) {
	files, root, err := e.enumerate(cfg)
	if err != nil {
		return nil, err
	}

	changed := []domain.ChangedFile{}
	for _, path := range files {
		didChange, err := e.fixFile(path, cfg.Fixers(), dryRun)
		if err != nil {
			return nil, err
		}
		if !didChange {
			continue
		}

		display := path
		if root != "" {
			if rel, err := filepath.Rel(root, path); err == nil {
				display = rel
			}
		}
		changed = append(changed, domain.ChangedFile{Index: len(changed), Path: display})
	}
	return changed, nil
}

// enumerate resolves the file set: the bound single file, or a lexical walk
// of the directory root filtered by the configuration's finder.
func (e *Engine) enumerate(cfg *domain.Config) (files []string, root string, err error) {
	if file, ok := cfg.File(); ok {
		return []string{file}, "", nil
	}

	dir, ok := cfg.Dir()
	if !ok {
		return nil, "", fmt.Errorf("configuration is not bound to a target")
	}

	finder := cfg.Finder()
	err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != dir && finder.ExcludesDir(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if finder.MatchName(d.Name()) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, "", fmt.Errorf("walking %s: %w", dir, err)
	}
	return files, dir, nil
}

func (e *Engine) fixFile(path string, fixers []string, dryRun bool) (bool, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("reading %s: %w", path, err)
	}

	fixed := content
	for _, name := range fixers {
		if t, ok := e.transforms[name]; ok {
			fixed = t(fixed)
		}
	}
	if bytes.Equal(fixed, content) {
		return false, nil
	}

	if !dryRun {
		info, err := os.Stat(path)
		if err != nil {
			return false, err
		}
		if err := os.WriteFile(path, fixed, info.Mode().Perm()); err != nil {
			return false, fmt.Errorf("writing %s: %w", path, err)
		}
	}
	return true, nil
}
