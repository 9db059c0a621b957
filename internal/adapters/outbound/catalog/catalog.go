// Package catalog loads the builtin fixer and profile descriptors embedded
// in the binary into a domain.Catalog.
package catalog

import (
	"embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/csfix/csfix/internal/domain"
)

//go:embed data/fixers.yaml data/profiles.yaml
var dataFS embed.FS

type fixerSpec struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Level       string `yaml:"level"`
}

type profileSpec struct {
	Name        string      `yaml:"name"`
	Description string      `yaml:"description"`
	Level       string      `yaml:"level"`
	Fixers      []string    `yaml:"fixers"`
	Finder      *finderSpec `yaml:"finder"`
}

type finderSpec struct {
	Names   []string `yaml:"names"`
	Exclude []string `yaml:"exclude"`
}

// Load builds the catalog from the embedded descriptor data. Called once
// during startup wiring; the resulting catalog is read-only thereafter.
func Load() (*domain.Catalog, error) {
	fixers, err := loadFixers()
	if err != nil {
		return nil, err
	}
	cat := domain.NewCatalog(fixers)

	if err := loadProfiles(cat); err != nil {
		return nil, err
	}
	return cat, nil
}

func loadFixers() ([]domain.FixerDescriptor, error) {
	data, err := dataFS.ReadFile("data/fixers.yaml")
	if err != nil {
		return nil, err
	}
	var specs []fixerSpec
	if err := yaml.Unmarshal(data, &specs); err != nil {
		return nil, fmt.Errorf("parsing fixers.yaml: %w", err)
	}

	fixers := make([]domain.FixerDescriptor, 0, len(specs))
	for _, s := range specs {
		level, err := domain.ParseLevel(s.Level)
		if err != nil {
			return nil, fmt.Errorf("fixer %s: %w", s.Name, err)
		}
		fixers = append(fixers, domain.FixerDescriptor{
			Name:        s.Name,
			Description: s.Description,
			Level:       level,
		})
	}
	return fixers, nil
}

func loadProfiles(cat *domain.Catalog) error {
	data, err := dataFS.ReadFile("data/profiles.yaml")
	if err != nil {
		return err
	}
	var specs []profileSpec
	if err := yaml.Unmarshal(data, &specs); err != nil {
		return fmt.Errorf("parsing profiles.yaml: %w", err)
	}

	for _, s := range specs {
		cfg := domain.NewConfig()
		switch {
		case len(s.Fixers) > 0:
			cfg.SetFixers(s.Fixers)
		case s.Level != "":
			level, err := domain.ParseLevel(s.Level)
			if err != nil {
				return fmt.Errorf("profile %s: %w", s.Name, err)
			}
			cfg.SetFixers(cat.LevelGroup(level))
		}
		if s.Finder != nil {
			cfg.SetFinder(&domain.Finder{
				Names:   s.Finder.Names,
				Exclude: s.Finder.Exclude,
			})
		}
		cat.RegisterProfile(domain.ProfileDescriptor{
			Name:        s.Name,
			Description: s.Description,
		}, cfg)
	}
	return nil
}
