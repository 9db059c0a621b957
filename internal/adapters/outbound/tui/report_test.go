package tui_test

import (
	"strings"
	"testing"

	"github.com/csfix/csfix/internal/adapters/outbound/tui"
	"github.com/csfix/csfix/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderFixReport_OrderedFixedWidthLines(t *testing.T) {
	report := &domain.FixReport{
		Target: "/src",
		Changed: []domain.ChangedFile{
			{Index: 0, Path: "x.php"},
			{Index: 1, Path: "y.php"},
			{Index: 2, Path: "z.php"},
		},
	}

	got := tui.RenderFixReport(report)
	lines := strings.Split(got, "\n")
	require.GreaterOrEqual(t, len(lines), 3)

	assert.Equal(t, "   0) x.php", lines[0])
	assert.Equal(t, "   1) y.php", lines[1])
	assert.Equal(t, "   2) z.php", lines[2])
	assert.Contains(t, got, "Fixed 3 files in /src")
}

func TestRenderFixReport_DryRun(t *testing.T) {
	report := &domain.FixReport{
		Target:  "/src",
		DryRun:  true,
		Changed: []domain.ChangedFile{{Index: 0, Path: "a.php"}},
	}

	got := tui.RenderFixReport(report)
	assert.Contains(t, got, "   0) a.php")
	assert.Contains(t, got, "Would fix 1 file in /src")
}

func TestRenderFixReport_Empty(t *testing.T) {
	report := &domain.FixReport{Target: "/src"}

	got := tui.RenderFixReport(report)
	assert.Contains(t, got, "Fixed 0 files in /src")
	assert.NotContains(t, got, ")")
}

func TestRenderFixReport_GitAnnotations(t *testing.T) {
	report := &domain.FixReport{
		Target:        "/src",
		Head:          "abc123",
		DirtyWorktree: true,
	}

	got := tui.RenderFixReport(report)
	assert.Contains(t, got, "HEAD abc123")
	assert.Contains(t, got, "uncommitted changes")

	report.DryRun = true
	assert.NotContains(t, tui.RenderFixReport(report), "uncommitted changes")
}
