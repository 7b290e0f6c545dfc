package pricing

import (
	"fmt"
	"slices"
	"sync"

	"github.com/de-tools/playbill/pkg/models/domain"
)

// Registry resolves the calculator for a play type.
type Registry interface {
	// Register adds a calculator factory for a play type
	Register(playType domain.PlayType, factory CalculatorFactory) error
	// Calculator returns the calculator registered for playType
	Calculator(playType domain.PlayType) (Calculator, error)
	// PlayTypes returns the registered play types, sorted
	PlayTypes() []domain.PlayType
}

type registry struct {
	mu          sync.RWMutex
	rates       Rates
	factories   map[domain.PlayType]CalculatorFactory
	calculators map[domain.PlayType]Calculator
}

// NewRegistry creates an empty registry whose calculators share rates.
func NewRegistry(rates Rates) Registry {
	return &registry{
		rates:       rates,
		factories:   make(map[domain.PlayType]CalculatorFactory),
		calculators: make(map[domain.PlayType]Calculator),
	}
}

// NewDefaultRegistry creates a registry with the tragedy and comedy calculators.
func NewDefaultRegistry(rates Rates) Registry {
	r := NewRegistry(rates)
	_ = r.Register(domain.PlayTypeTragedy, NewTragedyCalculator)
	_ = r.Register(domain.PlayTypeComedy, NewComedyCalculator)
	return r
}

func (r *registry) Register(playType domain.PlayType, factory CalculatorFactory) error {
	if playType == "" {
		return fmt.Errorf("play type cannot be empty")
	}
	if factory == nil {
		return fmt.Errorf("factory cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[playType]; exists {
		return fmt.Errorf("play type %q is already registered", playType)
	}

	r.factories[playType] = factory
	r.calculators[playType] = factory(r.rates)
	return nil
}

func (r *registry) Calculator(playType domain.PlayType) (Calculator, error) {
	r.mu.RLock()
	calc, exists := r.calculators[playType]
	r.mu.RUnlock()

	if !exists {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedPlayType, playType)
	}
	return calc, nil
}

func (r *registry) PlayTypes() []domain.PlayType {
	r.mu.RLock()
	defer r.mu.RUnlock()

	types := make([]domain.PlayType, 0, len(r.factories))
	for playType := range r.factories {
		types = append(types, playType)
	}
	slices.Sort(types)
	return types
}
