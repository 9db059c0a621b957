package tui_test

import (
	"strings"
	"testing"

	"github.com/csfix/csfix/internal/adapters/outbound/tui"
	"github.com/csfix/csfix/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func smallCatalog() *domain.Catalog {
	cat := domain.NewCatalog([]domain.FixerDescriptor{
		{Name: "alpha", Description: "Short one.", Level: domain.LevelPSR1},
		{Name: "beta_fixer", Description: "Also short.", Level: domain.LevelPSR2},
	})
	cat.RegisterProfile(domain.ProfileDescriptor{Name: "default", Description: "A plain profile."}, domain.NewConfig())
	cat.RegisterProfile(domain.ProfileDescriptor{Name: "symfony", Description: "For Symfony."}, domain.NewConfig())
	return cat
}

func TestFormatFixerCatalog_Layout(t *testing.T) {
	got := tui.FormatFixerCatalog(smallCatalog())

	want := "alpha         [PSR1] Short one.\n" +
		"\n" +
		"beta_fixer    [PSR2] Also short.\n"
	assert.Equal(t, want, got)
}

func TestFormatFixerCatalog_WrapsAndIndents(t *testing.T) {
	desc := "The body of each structure must be enclosed by braces and the braces must be properly placed and indented everywhere."
	cat := domain.NewCatalog([]domain.FixerDescriptor{
		{Name: "braces", Description: desc, Level: domain.LevelPSR2},
		{Name: "elseif", Description: "Use elseif.", Level: domain.LevelPSR2},
	})

	got := tui.FormatFixerCatalog(cat)
	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	require.Greater(t, len(lines), 3, "long description must wrap")

	// maxNameLen is 6, so wrapped lines fit 72-6 columns and continuation
	// lines are indented maxNameLen+4 spaces.
	indent := strings.Repeat(" ", 10)
	for _, line := range lines[1:] {
		if line == "" || strings.HasPrefix(line, "elseif") {
			continue
		}
		assert.True(t, strings.HasPrefix(line, indent), "line %q", line)
		assert.LessOrEqual(t, len(line)-len(indent), 66)
	}
}

func TestFormatFixerCatalog_Deterministic(t *testing.T) {
	cat := smallCatalog()
	assert.Equal(t, tui.FormatFixerCatalog(cat), tui.FormatFixerCatalog(cat))
	assert.Equal(t, tui.FormatProfileCatalog(cat), tui.FormatProfileCatalog(cat))
}

func TestFormatFixerCatalog_BlankLineSeparation(t *testing.T) {
	got := tui.FormatFixerCatalog(smallCatalog())

	assert.False(t, strings.HasSuffix(got, "\n\n"), "no blank line after the last entry")
	assert.Equal(t, 1, strings.Count(got, "\n\n"), "exactly one blank line between entries")
}

func TestFormatProfileCatalog_NoLevelTag(t *testing.T) {
	got := tui.FormatProfileCatalog(smallCatalog())

	assert.Contains(t, got, "default    A plain profile.")
	assert.Contains(t, got, "symfony    For Symfony.")
	assert.NotContains(t, got, "[")
}
