package domain

import "path/filepath"

// Finder holds the traversal rules a configuration applies when the target
// is a directory. Patterns use filepath.Match syntax against path segments.
type Finder struct {
	// Names are file-name patterns to include. Empty means "*.php".
	Names []string
	// Exclude are directory names pruned from the walk.
	Exclude []string
}

// DefaultFinder returns the finder used when a configuration sets none.
func DefaultFinder() *Finder {
	return &Finder{Names: []string{"*.php"}}
}

// MatchName reports whether a file with the given base name is included.
func (f *Finder) MatchName(base string) bool {
	names := f.Names
	if len(names) == 0 {
		names = []string{"*.php"}
	}
	for _, pat := range names {
		if ok, err := filepath.Match(pat, base); err == nil && ok {
			return true
		}
	}
	return false
}

// ExcludesDir reports whether a directory with the given base name is pruned.
func (f *Finder) ExcludesDir(base string) bool {
	for _, name := range f.Exclude {
		if name == base {
			return true
		}
	}
	return false
}

// Config is the effective configuration of a single fix invocation. Profile
// configurations live in the catalog and are handed out as-is; everything
// else about a Config is invocation-scoped.
type Config struct {
	target string
	file   string
	dir    string
	fixers []string
	finder *Finder
}

func NewConfig() *Config {
	return &Config{}
}

// Clone returns an independent copy. Profile configurations registered in
// the catalog are handed out as clones, so binding and selection during one
// invocation never leak into the registered object or later invocations.
func (c *Config) Clone() *Config {
	clone := *c
	if c.fixers != nil {
		clone.fixers = append([]string(nil), c.fixers...)
	}
	if c.finder != nil {
		f := Finder{
			Names:   append([]string(nil), c.finder.Names...),
			Exclude: append([]string(nil), c.finder.Exclude...),
		}
		clone.finder = &f
	}
	return &clone
}

// Target returns the absolute path the configuration was bound to.
func (c *Config) Target() string { return c.target }

// SetFile binds the configuration to a single file, bypassing the finder.
func (c *Config) SetFile(path string) {
	c.target = path
	c.file = path
	c.dir = ""
}

// SetDir binds the configuration to a directory root; enumeration is
// deferred to the engine, driven by the finder rules.
func (c *Config) SetDir(root string) {
	c.target = root
	c.dir = root
	c.file = ""
}

// File returns the bound single file, if any.
func (c *Config) File() (string, bool) { return c.file, c.file != "" }

// Dir returns the bound directory root, if any.
func (c *Config) Dir() (string, bool) { return c.dir, c.dir != "" }

// SetFixers replaces the active fixer-name set.
func (c *Config) SetFixers(names []string) { c.fixers = names }

// HasFixers reports whether an active fixer set has been established,
// distinguishing "none configured" from "explicitly empty".
func (c *Config) HasFixers() bool { return c.fixers != nil }

// Fixers returns the active fixer names in configuration order.
func (c *Config) Fixers() []string { return c.fixers }

// SetFinder installs traversal rules for directory targets.
func (c *Config) SetFinder(f *Finder) { c.finder = f }

// Finder returns the configured traversal rules, falling back to the
// default finder.
func (c *Config) Finder() *Finder {
	if c.finder == nil {
		return DefaultFinder()
	}
	return c.finder
}
