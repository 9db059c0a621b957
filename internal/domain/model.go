package domain

import "fmt"

// Level classifies a fixer by the coding standard that requires it.
type Level string

const (
	LevelPSR1 Level = "PSR1"
	LevelPSR2 Level = "PSR2"
	LevelAll  Level = "ALL"
	LevelNone Level = "NONE"
)

// levelRank orders the cumulative levels for preset membership. LevelNone
// fixers belong to no preset and must be requested by name.
var levelRank = map[Level]int{
	LevelPSR1: 1,
	LevelPSR2: 2,
	LevelAll:  3,
}

// ParseLevel converts catalog data or a preset name to a Level.
func ParseLevel(s string) (Level, error) {
	switch s {
	case "psr1", "PSR1":
		return LevelPSR1, nil
	case "psr2", "PSR2":
		return LevelPSR2, nil
	case "all", "ALL":
		return LevelAll, nil
	case "none", "NONE":
		return LevelNone, nil
	}
	return "", fmt.Errorf("unknown fixer level %q", s)
}

// FixerDescriptor describes one named fixer known to the engine.
type FixerDescriptor struct {
	Name        string
	Description string
	Level       Level
}

// ProfileDescriptor describes one named configuration profile.
type ProfileDescriptor struct {
	Name        string
	Description string
}

// ChangedFile identifies one file the engine changed (or would change under
// dry-run). Index is the zero-based position in the engine's processing
// order; consumers must preserve that order.
type ChangedFile struct {
	Index int    `json:"index"`
	Path  string `json:"path"`
}

// FixOptions carries the user-facing options of a single fix invocation.
type FixOptions struct {
	Profile string `json:"profile,omitempty"`
	Fixers  string `json:"fixers,omitempty"`
	Level   string `json:"level,omitempty"`
	DryRun  bool   `json:"dry_run"`
}

// FixReport is the result of one fix invocation.
type FixReport struct {
	Target        string        `json:"target"`
	DryRun        bool          `json:"dry_run"`
	Changed       []ChangedFile `json:"changed"`
	Head          string        `json:"head,omitempty"`
	DirtyWorktree bool          `json:"dirty_worktree,omitempty"`
}
