package application

import (
	"fmt"
	"path/filepath"

	"github.com/csfix/csfix/internal/domain"
)

// FixService drives one fix invocation: resolve the configuration, bind the
// target, select the active fixers, run the engine. Each invocation is a
// single linear pass; engine failures propagate unmodified.
type FixService struct {
	resolver *Resolver
	catalog  *domain.Catalog
	engine   domain.Engine
	git      domain.GitInfo
}

func NewFixService(catalog *domain.Catalog, loader domain.ProjectLoader, engine domain.Engine, git domain.GitInfo) *FixService {
	return &FixService{
		resolver: NewResolver(catalog, loader),
		catalog:  catalog,
		engine:   engine,
		git:      git,
	}
}

func (s *FixService) Fix(rawPath string, opts domain.FixOptions) (*domain.FixReport, error) {
	cfg, err := s.resolver.Resolve(rawPath, opts.Profile)
	if err != nil {
		return nil, err
	}

	if err := BindTarget(cfg, rawPath); err != nil {
		return nil, fmt.Errorf("binding target: %w", err)
	}

	if err := SelectFixers(cfg, s.catalog, opts.Fixers, opts.Level); err != nil {
		return nil, err
	}

	changed, err := s.engine.Fix(cfg, opts.DryRun)
	if err != nil {
		return nil, err
	}

	report := &domain.FixReport{
		Target:  cfg.Target(),
		DryRun:  opts.DryRun,
		Changed: changed,
	}
	s.addGitInfo(report, cfg)
	return report, nil
}

// addGitInfo annotates the report with repository state so applied runs can
// be traced to a commit. Best-effort: a target outside a repo, or any git
// error, leaves the report bare.
func (s *FixService) addGitInfo(report *domain.FixReport, cfg *domain.Config) {
	if s.git == nil {
		return
	}
	dir := report.Target
	if file, ok := cfg.File(); ok {
		dir = filepath.Dir(file)
	}
	if !s.git.IsRepo(dir) {
		return
	}
	if head, err := s.git.Head(dir); err == nil {
		report.Head = head
	}
	if dirty, err := s.git.IsDirty(dir); err == nil {
		report.DirtyWorktree = dirty
	}
}
