package hclconfig_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/csfix/csfix/internal/adapters/outbound/hclconfig"
	"github.com/csfix/csfix/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeArtifact(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, hclconfig.FileName), []byte(content), 0644))
}

func testCatalog() *domain.Catalog {
	return domain.NewCatalog([]domain.FixerDescriptor{
		{Name: "encoding", Level: domain.LevelPSR1},
		{Name: "trailing_spaces", Level: domain.LevelPSR2},
		{Name: "unused_use", Level: domain.LevelAll},
	})
}

func TestLoader_MissingFile(t *testing.T) {
	loader := hclconfig.New(testCatalog())

	cfg, found, err := loader.Load(t.TempDir())
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, cfg)
}

func TestLoader_FixersList(t *testing.T) {
	dir := t.TempDir()
	writeArtifact(t, dir, `fixers = ["trailing_spaces", "unused_use"]`)

	cfg, found, err := hclconfig.New(testCatalog()).Load(dir)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, []string{"trailing_spaces", "unused_use"}, cfg.Fixers())
}

func TestLoader_LevelResolvedAgainstCatalog(t *testing.T) {
	dir := t.TempDir()
	writeArtifact(t, dir, `level = "psr2"`)

	cfg, found, err := hclconfig.New(testCatalog()).Load(dir)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, []string{"encoding", "trailing_spaces"}, cfg.Fixers())
}

func TestLoader_FinderBlock(t *testing.T) {
	dir := t.TempDir()
	writeArtifact(t, dir, `
level = "all"

finder {
  names   = ["*.php", "*.phtml"]
  exclude = ["vendor", "cache"]
}
`)

	cfg, found, err := hclconfig.New(testCatalog()).Load(dir)
	require.NoError(t, err)
	require.True(t, found)
	assert.True(t, cfg.Finder().MatchName("page.phtml"))
	assert.True(t, cfg.Finder().ExcludesDir("vendor"))
	assert.False(t, cfg.Finder().ExcludesDir("src"))
}

func TestLoader_EnvFunctionIsEvaluated(t *testing.T) {
	t.Setenv("CSFIX_TEST_EXCLUDE", "build")
	dir := t.TempDir()
	writeArtifact(t, dir, `
finder {
  exclude = [env("CSFIX_TEST_EXCLUDE")]
}
`)

	cfg, found, err := hclconfig.New(testCatalog()).Load(dir)
	require.NoError(t, err)
	require.True(t, found)
	assert.True(t, cfg.Finder().ExcludesDir("build"))
}

func TestLoader_FileTargetUsesParentDir(t *testing.T) {
	dir := t.TempDir()
	writeArtifact(t, dir, `fixers = ["encoding"]`)
	target := filepath.Join(dir, "a.php")
	require.NoError(t, os.WriteFile(target, []byte("<?php\n"), 0644))

	cfg, found, err := hclconfig.New(testCatalog()).Load(target)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, []string{"encoding"}, cfg.Fixers())
}

func TestLoader_BadLevel(t *testing.T) {
	dir := t.TempDir()
	writeArtifact(t, dir, `level = "psr9"`)

	_, _, err := hclconfig.New(testCatalog()).Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "psr9")
}

func TestLoader_ParseError(t *testing.T) {
	dir := t.TempDir()
	writeArtifact(t, dir, `fixers = [`)

	_, _, err := hclconfig.New(testCatalog()).Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), hclconfig.FileName)
}
