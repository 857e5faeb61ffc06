package main

import (
	"fmt"
	"os"

	"sigs.k8s.io/yaml"

	"github.com/pthm/qualra"
	"github.com/pthm/qualra/internal/shipped"
	"github.com/pthm/qualra/pkg/loader"
	"github.com/pthm/qualra/pkg/schema"
)

// resolveAlgebra loads an algebra by shipped name (e.g. "rcc8",
// "linear_interval") or, failing that, by file path. This lets every
// command that takes an algebra argument work against either the built-in
// library or a description the caller authored.
func resolveAlgebra(ref string) (*qualra.Algebra, error) {
	for _, name := range shipped.Names() {
		if ref == name {
			return shipped.Algebra(name)
		}
	}
	if _, err := os.Stat(ref); err != nil {
		return nil, fmt.Errorf("%q is neither a shipped algebra name (%v) nor a readable file", ref, shipped.Names())
	}
	return loader.LoadAlgebra(ref)
}

// peekNetworkAlgebra reads a network description file's "algebra" field
// without resolving it, so callers can decide which algebra to load before
// fully parsing the network against it.
func peekNetworkAlgebra(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	var desc schema.NetworkDescription
	if err := yaml.Unmarshal(data, &desc); err != nil {
		return "", fmt.Errorf("parsing %s: %w", path, err)
	}
	if desc.Algebra == "" {
		return "", fmt.Errorf("%s has no \"algebra\" field", path)
	}
	return desc.Algebra, nil
}
