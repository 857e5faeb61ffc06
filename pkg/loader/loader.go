// Package loader parses and renders the on-disk algebra and network
// descriptions, isolating the sigs.k8s.io/yaml dependency behind a small
// API so that pkg/schema itself stays dependency-free.
package loader

import (
	"fmt"
	"os"

	"github.com/pthm/qualra"
	"github.com/pthm/qualra/pkg/schema"
	"sigs.k8s.io/yaml"
)

// LoadAlgebra reads and parses an algebra description file and builds the
// Algebra it describes.
func LoadAlgebra(path string) (*qualra.Algebra, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loader: reading algebra file %s: %w", path, err)
	}
	return LoadAlgebraBytes(data)
}

// LoadAlgebraBytes is LoadAlgebra taking already-read YAML bytes.
func LoadAlgebraBytes(data []byte) (*qualra.Algebra, error) {
	var desc schema.AlgebraDescription
	if err := yaml.Unmarshal(data, &desc); err != nil {
		return nil, fmt.Errorf("loader: parsing algebra description: %w", err)
	}
	return qualra.New(desc)
}

// SaveAlgebra writes alg's description to path as YAML.
func SaveAlgebra(path string, alg *qualra.Algebra) error {
	data, err := SaveAlgebraBytes(alg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// SaveAlgebraBytes renders alg's description as YAML, always using the
// compact "|"-string composition-table form.
func SaveAlgebraBytes(alg *qualra.Algebra) ([]byte, error) {
	data, err := yaml.Marshal(alg.Describe())
	if err != nil {
		return nil, fmt.Errorf("loader: rendering algebra description: %w", err)
	}
	return data, nil
}

// LoadNetwork reads and parses a network description file over alg.
func LoadNetwork(path string, alg *qualra.Algebra) (*qualra.Network, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loader: reading network file %s: %w", path, err)
	}
	return LoadNetworkBytes(data, alg)
}

// LoadNetworkBytes is LoadNetwork taking already-read YAML bytes.
func LoadNetworkBytes(data []byte, alg *qualra.Algebra) (*qualra.Network, error) {
	var desc schema.NetworkDescription
	if err := yaml.Unmarshal(data, &desc); err != nil {
		return nil, fmt.Errorf("loader: parsing network description: %w", err)
	}
	return NetworkFromDescription(alg, desc)
}

// SaveNetwork writes n's description to path as YAML.
func SaveNetwork(path string, n *qualra.Network, name, description string) error {
	data, err := SaveNetworkBytes(n, name, description)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// SaveNetworkBytes renders n's description as YAML.
func SaveNetworkBytes(n *qualra.Network, name, description string) ([]byte, error) {
	data, err := yaml.Marshal(DescribeNetwork(n, name, description))
	if err != nil {
		return nil, fmt.Errorf("loader: rendering network description: %w", err)
	}
	return data, nil
}
