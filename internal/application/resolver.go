package application

import (
	"fmt"

	"github.com/csfix/csfix/internal/domain"
)

// Resolver chooses the effective configuration for an invocation from three
// mutually exclusive sources: a named catalog profile, the project-local
// artifact under the target path, or a fresh default.
type Resolver struct {
	catalog *domain.Catalog
	loader  domain.ProjectLoader
}

func NewResolver(catalog *domain.Catalog, loader domain.ProjectLoader) *Resolver {
	return &Resolver{catalog: catalog, loader: loader}
}

// Resolve applies the precedence chain. A non-empty profile name must match
// a registered profile exactly; a miss is fatal and the project artifact is
// never consulted in that case.
func (r *Resolver) Resolve(targetPath, profile string) (*domain.Config, error) {
	if profile != "" {
		cfg, ok := r.catalog.ProfileConfig(profile)
		if !ok {
			return nil, &domain.ProfileNotFoundError{Name: profile}
		}
		// The catalog keeps the registered object; the invocation gets a
		// copy it may bind and override freely.
		return cfg.Clone(), nil
	}

	cfg, found, err := r.loader.Load(targetPath)
	if err != nil {
		return nil, fmt.Errorf("loading project config: %w", err)
	}
	if found {
		return cfg, nil
	}

	return domain.NewConfig(), nil
}
