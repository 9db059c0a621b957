// Package hclconfig loads the project-local configuration artifact. The
// artifact is an evaluated HCL file, so projects can compute values (for
// example from the environment) instead of writing static data.
package hclconfig

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"

	"github.com/csfix/csfix/internal/domain"
)

// FileName is the conventional artifact name directly under the target path.
const FileName = ".csfix.hcl"

type projectFile struct {
	Level  *string     `hcl:"level,optional"`
	Fixers []string    `hcl:"fixers,optional"`
	Finder *finderSpec `hcl:"finder,block"`
}

type finderSpec struct {
	Names   []string `hcl:"names,optional"`
	Exclude []string `hcl:"exclude,optional"`
}

// Loader implements domain.ProjectLoader for .csfix.hcl files. Level presets
// in the file are resolved against the catalog at load time.
type Loader struct {
	catalog *domain.Catalog
}

func New(catalog *domain.Catalog) *Loader {
	return &Loader{catalog: catalog}
}

// Load evaluates the artifact under targetPath. When targetPath is a file,
// its parent directory is searched instead. The loaded configuration is
// trusted as-is.
func (l *Loader) Load(targetPath string) (*domain.Config, bool, error) {
	dir := targetPath
	if info, err := os.Stat(targetPath); err == nil && !info.IsDir() {
		dir = filepath.Dir(targetPath)
	}

	path := filepath.Join(dir, FileName)
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil, false, nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, false, fmt.Errorf("parsing %s: %w", FileName, diags)
	}

	var spec projectFile
	if diags := gohcl.DecodeBody(file.Body, evalContext(), &spec); diags.HasErrors() {
		return nil, false, fmt.Errorf("decoding %s: %w", FileName, diags)
	}

	cfg, err := l.build(&spec)
	if err != nil {
		return nil, false, fmt.Errorf("invalid %s: %w", FileName, err)
	}
	return cfg, true, nil
}

func (l *Loader) build(spec *projectFile) (*domain.Config, error) {
	cfg := domain.NewConfig()

	switch {
	case len(spec.Fixers) > 0:
		cfg.SetFixers(spec.Fixers)
	case spec.Level != nil:
		level, err := domain.ParseLevel(*spec.Level)
		if err != nil {
			return nil, err
		}
		cfg.SetFixers(l.catalog.LevelGroup(level))
	}

	if spec.Finder != nil {
		cfg.SetFinder(&domain.Finder{
			Names:   spec.Finder.Names,
			Exclude: spec.Finder.Exclude,
		})
	}
	return cfg, nil
}

// evalContext exposes the functions available to the artifact.
func evalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Functions: map[string]function.Function{
			"env": envFunc,
		},
	}
}

var envFunc = function.New(&function.Spec{
	Params: []function.Parameter{
		{Name: "name", Type: cty.String},
	},
	Type: function.StaticReturnType(cty.String),
	Impl: func(args []cty.Value, _ cty.Type) (cty.Value, error) {
		return cty.StringVal(os.Getenv(args[0].AsString())), nil
	},
})
