package provider

import (
	"fmt"
	"sort"

	errs "github.com/amirhossein-jamali/credit-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/credit-ledger/internal/domain/port/payment"
)

// Registry resolves adapters by name
type Registry struct {
	providers   map[string]payment.Provider
	defaultName string
}

var _ payment.Registry = (*Registry)(nil)

// NewRegistry registers providers and checks that defaultName is one of them
func NewRegistry(defaultName string, providers ...payment.Provider) (*Registry, error) {
	r := &Registry{
		providers:   make(map[string]payment.Provider, len(providers)),
		defaultName: defaultName,
	}
	for _, p := range providers {
		if _, dup := r.providers[p.Name()]; dup {
			return nil, fmt.Errorf("provider %q registered twice", p.Name())
		}
		r.providers[p.Name()] = p
	}
	if _, ok := r.providers[defaultName]; !ok {
		return nil, fmt.Errorf("%w: default provider %q is not enabled", errs.ErrUnknownProvider, defaultName)
	}
	return r, nil
}

// Get returns the adapter registered under name
func (r *Registry) Get(name string) (payment.Provider, error) {
	p, ok := r.providers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", errs.ErrUnknownProvider, name)
	}
	return p, nil
}

// Default returns the adapter new top-ups are created with
func (r *Registry) Default() payment.Provider {
	return r.providers[r.defaultName]
}

// Names lists the registered adapters
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.providers))
	for name := range r.providers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
