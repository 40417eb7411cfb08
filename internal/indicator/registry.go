package indicator

import (
	"sync"

	"github.com/astrolab/astro-trading/internal/types"
	"github.com/astrolab/astro-trading/pkg/errors"
)

// Constructor builds a configured indicator instance. Called without
// parameters it returns the indicator in its default configuration;
// parameters are passed through to Config.
type Constructor func(params ...any) (Indicator, error)

// Registry maps indicator types to their constructors.
type Registry interface {
	RegisterIndicator(name types.IndicatorType, constructor Constructor) error
	CreateIndicator(name types.IndicatorType, params ...any) (Indicator, error)
	ListIndicators() []types.IndicatorType
	RemoveIndicator(name types.IndicatorType) error
}

// RegistryV1 manages all available indicator constructors.
type RegistryV1 struct {
	constructors map[types.IndicatorType]Constructor
	mu           sync.RWMutex
}

// NewRegistry creates a new indicator registry preloaded with the built-in
// indicators.
func NewRegistry() Registry {
	registry := &RegistryV1{
		constructors: make(map[types.IndicatorType]Constructor),
		mu:           sync.RWMutex{},
	}

	// Registering built-ins cannot fail on an empty registry.
	_ = registry.RegisterIndicator(types.IndicatorTypeSMA, func(params ...any) (Indicator, error) {
		return configured(NewSMA(), params...)
	})
	_ = registry.RegisterIndicator(types.IndicatorTypeRSI, func(params ...any) (Indicator, error) {
		return configured(NewRSI(), params...)
	})

	return registry
}

func configured(ind Indicator, params ...any) (Indicator, error) {
	if len(params) > 0 {
		if err := ind.Config(params...); err != nil {
			return nil, err
		}
	}

	return ind, nil
}

// RegisterIndicator adds an indicator constructor to the registry.
func (r *RegistryV1) RegisterIndicator(name types.IndicatorType, constructor Constructor) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.constructors[name]; exists {
		return errors.Newf(errors.ErrCodeIndicatorAlreadyExists, "RegisterIndicator: indicator with name %s already registered", name)
	}

	r.constructors[name] = constructor

	return nil
}

// CreateIndicator builds a fresh indicator of the named type, configured with
// the given parameters.
func (r *RegistryV1) CreateIndicator(name types.IndicatorType, params ...any) (Indicator, error) {
	r.mu.RLock()
	constructor, exists := r.constructors[name]
	r.mu.RUnlock()

	if !exists {
		return nil, errors.Newf(errors.ErrCodeIndicatorNotFound, "CreateIndicator: indicator with name %s not found", name)
	}

	return constructor(params...)
}

// ListIndicators returns a list of all registered indicator names.
func (r *RegistryV1) ListIndicators() []types.IndicatorType {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]types.IndicatorType, 0, len(r.constructors))
	for name := range r.constructors {
		names = append(names, name)
	}

	return names
}

// RemoveIndicator removes an indicator constructor from the registry.
func (r *RegistryV1) RemoveIndicator(name types.IndicatorType) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.constructors[name]; !exists {
		return errors.Newf(errors.ErrCodeIndicatorNotFound, "RemoveIndicator: indicator with name %s not found", name)
	}

	delete(r.constructors, name)

	return nil
}

// defaultRegistry backs the package-level CreateIndicator, which is how
// strategies resolve their required indicators.
var defaultRegistry = NewRegistry()

// CreateIndicator builds an indicator of the named type from the default
// registry.
func CreateIndicator(name types.IndicatorType, params ...any) (Indicator, error) {
	return defaultRegistry.CreateIndicator(name, params...)
}
