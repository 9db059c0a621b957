package domain

// Catalog is the read-only registry of fixer descriptors and configuration
// profiles. It is built once at startup, supplied by the engine wiring, and
// never mutated afterwards; resolution and selection receive it explicitly.
type Catalog struct {
	fixers       []FixerDescriptor
	fixersByName map[string]FixerDescriptor

	profiles       []ProfileDescriptor
	profileConfigs map[string]*Config
}

// NewCatalog builds a catalog from descriptor lists. Enumeration order of
// Fixers and Profiles follows the order given here.
func NewCatalog(fixers []FixerDescriptor) *Catalog {
	c := &Catalog{
		fixers:         fixers,
		fixersByName:   make(map[string]FixerDescriptor, len(fixers)),
		profileConfigs: make(map[string]*Config),
	}
	for _, f := range fixers {
		c.fixersByName[f.Name] = f
	}
	return c
}

// RegisterProfile adds a named profile and its live configuration object.
// Registration happens during startup wiring only.
func (c *Catalog) RegisterProfile(desc ProfileDescriptor, cfg *Config) {
	c.profiles = append(c.profiles, desc)
	c.profileConfigs[desc.Name] = cfg
}

// Fixers returns the fixer descriptors in catalog order.
func (c *Catalog) Fixers() []FixerDescriptor { return c.fixers }

// Fixer looks up a fixer descriptor by exact name.
func (c *Catalog) Fixer(name string) (FixerDescriptor, bool) {
	f, ok := c.fixersByName[name]
	return f, ok
}

// Profiles returns the profile descriptors in catalog order.
func (c *Catalog) Profiles() []ProfileDescriptor { return c.profiles }

// ProfileConfig returns the live configuration object registered under the
// given profile name.
func (c *Catalog) ProfileConfig(name string) (*Config, bool) {
	cfg, ok := c.profileConfigs[name]
	return cfg, ok
}

// LevelGroup returns the names of all fixers belonging to the given preset
// level, in catalog order. Groups are cumulative: PSR2 includes PSR1, ALL
// includes both. LevelNone fixers never appear in a group.
func (c *Catalog) LevelGroup(level Level) []string {
	max, ok := levelRank[level]
	if !ok {
		return nil
	}
	var names []string
	for _, f := range c.fixers {
		if rank, ok := levelRank[f.Level]; ok && rank <= max {
			names = append(names, f.Name)
		}
	}
	return names
}
