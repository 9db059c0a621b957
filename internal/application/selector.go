package application

import (
	"strings"

	"github.com/csfix/csfix/internal/domain"
)

// SelectFixers establishes the active fixer set on the configuration. An
// explicit comma-separated fixer list is the most specific signal and wins
// outright; a level preset applies only when no list is given; with neither,
// the configuration's own fixer set is left untouched. An empty level is
// identical to an omitted one.
func SelectFixers(cfg *domain.Config, catalog *domain.Catalog, fixers, level string) error {
	if fixers != "" {
		parts := strings.Split(fixers, ",")
		names := make([]string, 0, len(parts))
		for _, p := range parts {
			names = append(names, strings.TrimSpace(p))
		}
		cfg.SetFixers(names)
		return nil
	}

	switch level {
	case "":
		return nil
	case "psr1":
		cfg.SetFixers(catalog.LevelGroup(domain.LevelPSR1))
	case "psr2":
		cfg.SetFixers(catalog.LevelGroup(domain.LevelPSR2))
	case "all":
		cfg.SetFixers(catalog.LevelGroup(domain.LevelAll))
	default:
		return &domain.UnknownLevelError{Value: level}
	}
	return nil
}
