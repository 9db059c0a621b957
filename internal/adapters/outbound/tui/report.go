package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/csfix/csfix/internal/domain"
)

var (
	dimStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#22C55E"))
	warnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F59E0B"))
)

// RenderFixReport renders the ordered changed-file lines followed by a short
// summary. The numbered lines are plain text in the engine's emission order;
// scripts rely on both the order and the fixed-width format.
func RenderFixReport(report *domain.FixReport) string {
	var b strings.Builder

	for _, f := range report.Changed {
		fmt.Fprintf(&b, "%4d) %s\n", f.Index, f.Path)
	}
	if len(report.Changed) > 0 {
		b.WriteString("\n")
	}

	verb := "Fixed"
	if report.DryRun {
		verb = "Would fix"
	}
	noun := "files"
	if len(report.Changed) == 1 {
		noun = "file"
	}
	summary := fmt.Sprintf("%s %d %s in %s", verb, len(report.Changed), noun, report.Target)
	if len(report.Changed) > 0 {
		b.WriteString(okStyle.Render(summary))
	} else {
		b.WriteString(dimStyle.Render(summary))
	}
	b.WriteString("\n")

	if report.Head != "" {
		b.WriteString(dimStyle.Render("HEAD "+report.Head) + "\n")
	}
	if report.DirtyWorktree && !report.DryRun {
		b.WriteString(warnStyle.Render("Worktree has uncommitted changes; review before committing.") + "\n")
	}

	return b.String()
}
