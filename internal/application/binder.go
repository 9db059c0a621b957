package application

import (
	"os"
	"path/filepath"

	"github.com/csfix/csfix/internal/domain"
)

// BindTarget normalizes rawPath against the current working directory and
// binds the configuration to it: a regular file becomes a singleton file
// set bypassing the finder, anything else becomes the directory root.
// Nonexistent paths are not rejected here; the engine surfaces that.
func BindTarget(cfg *domain.Config, rawPath string) error {
	path := rawPath
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return err
		}
		path = filepath.Join(cwd, path)
	}

	if info, err := os.Stat(path); err == nil && !info.IsDir() {
		cfg.SetFile(path)
		return nil
	}
	cfg.SetDir(path)
	return nil
}
