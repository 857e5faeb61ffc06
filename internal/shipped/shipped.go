// Package shipped embeds and derives the eight algebras qualra ships out of
// the box: Linear Point, Left/Right-Branching Point and RCC-8 are
// hand-authored YAML descriptions (embedded via go:embed); Linear Interval,
// Extended Linear Interval, and Left/Right-Branching Interval are derived
// at first use from their underlying point algebras via the interval-
// derivation machinery, so the derivation round-trip is exercised by
// construction rather than hand-transcribed.
package shipped

import (
	"embed"
	"fmt"
	"sync"

	"github.com/pthm/qualra"
	"github.com/pthm/qualra/pkg/loader"
)

//go:embed data/*.yaml
var dataFS embed.FS

const (
	LinearPoint            = "linear_point"
	LeftBranchingPoint     = "left_branching_point"
	RightBranchingPoint    = "right_branching_point"
	RCC8                   = "rcc8"
	LinearInterval         = "linear_interval"
	ExtendedLinearInterval = "extended_linear_interval"
	LeftBranchingInterval  = "left_branching_interval"
	RightBranchingInterval = "right_branching_interval"
)

// Names returns every shipped algebra name, interval algebras first,
// then point algebras, then RCC-8.
func Names() []string {
	return []string{
		LinearInterval,
		ExtendedLinearInterval,
		LeftBranchingInterval,
		RightBranchingInterval,
		LinearPoint,
		LeftBranchingPoint,
		RightBranchingPoint,
		RCC8,
	}
}

var (
	mu    sync.Mutex
	cache = map[string]*qualra.Algebra{}
)

// Algebra returns the shipped algebra with the given name, deriving and
// caching the interval-level ones on first use.
func Algebra(name string) (*qualra.Algebra, error) {
	mu.Lock()
	defer mu.Unlock()
	if alg, ok := cache[name]; ok {
		return alg, nil
	}
	alg, err := build(name)
	if err != nil {
		return nil, err
	}
	cache[name] = alg
	return alg, nil
}

// MustAlgebra is Algebra, panicking on error. Intended for package-level
// initialization and tests, not for production load paths.
func MustAlgebra(name string) *qualra.Algebra {
	alg, err := Algebra(name)
	if err != nil {
		panic(err)
	}
	return alg
}

func build(name string) (*qualra.Algebra, error) {
	switch name {
	case LinearPoint, LeftBranchingPoint, RightBranchingPoint, RCC8:
		return loadEmbedded(name)
	case LinearInterval:
		return deriveInterval(LinearPoint, "<")
	case ExtendedLinearInterval:
		return deriveInterval(LinearPoint, "<|=")
	case LeftBranchingInterval:
		return deriveInterval(LeftBranchingPoint, "<|=|l~")
	case RightBranchingInterval:
		return deriveInterval(RightBranchingPoint, "<|=|r~")
	default:
		return nil, fmt.Errorf("shipped: unknown algebra %q", name)
	}
}

func loadEmbedded(name string) (*qualra.Algebra, error) {
	data, err := dataFS.ReadFile("data/" + name + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("shipped: reading embedded algebra %q: %w", name, err)
	}
	return loader.LoadAlgebraBytes(data)
}

func deriveInterval(pointName, lt string) (*qualra.Algebra, error) {
	pointAlg, err := loadEmbedded(pointName)
	if err != nil {
		return nil, err
	}
	ltSet, err := pointAlg.Parse(lt)
	if err != nil {
		return nil, fmt.Errorf("shipped: parsing properness relation %q: %w", lt, err)
	}
	desc, err := qualra.DeriveAlgebra(pointAlg, ltSet, pointName+"-derived-interval", "derived at first use from "+pointName)
	if err != nil {
		return nil, fmt.Errorf("shipped: deriving interval algebra from %q: %w", pointName, err)
	}
	return qualra.New(*desc)
}
