package multiplier

import "sort"

// Factory provides access to the registered multiplication strategies.
// It decouples the orchestration and CLI layers from the concrete
// implementations, and lets tests substitute their own.
type Factory interface {
	// Get returns the multiplier registered under the given key.
	Get(name string) (Multiplier, bool)
	// List returns the registered keys in sorted order.
	List() []string
	// GetAll returns all registered multipliers, ordered by key.
	GetAll() []Multiplier
}

// defaultFactory is the standard registry of strategies.
type defaultFactory struct {
	byName map[string]Multiplier
}

// NewDefaultFactory returns a factory with the three built-in
// strategies: the radix-3 FFT core, the quadratic schoolbook reference
// and the GMP Kronecker cross-check.
func NewDefaultFactory() Factory {
	return &defaultFactory{
		byName: map[string]Multiplier{
			"fft":        FFT{},
			"schoolbook": Schoolbook{},
			"gmp":        Kronecker{},
		},
	}
}

func (f *defaultFactory) Get(name string) (Multiplier, bool) {
	m, ok := f.byName[name]
	return m, ok
}

func (f *defaultFactory) List() []string {
	names := make([]string, 0, len(f.byName))
	for name := range f.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (f *defaultFactory) GetAll() []Multiplier {
	all := make([]Multiplier, 0, len(f.byName))
	for _, name := range f.List() {
		all = append(all, f.byName[name])
	}
	return all
}
