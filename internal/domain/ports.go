package domain

// Engine applies the active fixers of a fully-resolved configuration to its
// bound file set. Under dryRun no file may be written; the engine only
// reports what would change. The returned slice is in processing order and
// indices are zero-based.
type Engine interface {
	Fix(cfg *Config, dryRun bool) ([]ChangedFile, error)
}

// ProjectLoader locates and evaluates the project-local configuration
// artifact for a target path. found is false when no artifact exists; the
// loaded configuration is trusted as-is, no validation happens here.
type ProjectLoader interface {
	Load(targetPath string) (cfg *Config, found bool, err error)
}

// GitInfo exposes the repository state of a target path for the run summary.
type GitInfo interface {
	IsRepo(path string) bool
	Head(path string) (string, error)
	IsDirty(path string) (bool, error)
}
