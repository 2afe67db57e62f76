package validation

import (
	"fmt"

	"github.com/josh-kwaku/scheme-payments/internal/domain"
)

// Registry maps each payment scheme to its validator. It is not modified
// after construction and is safe to share.
type Registry struct {
	validators map[domain.PaymentScheme]Validator
}

func NewRegistry(validators ...Validator) (*Registry, error) {
	m := make(map[domain.PaymentScheme]Validator, len(validators))
	for _, v := range validators {
		s := v.Scheme()
		if !s.IsValid() {
			return nil, fmt.Errorf("NewRegistry: %q: %w", s, domain.ErrUnknownScheme)
		}
		if _, dup := m[s]; dup {
			return nil, fmt.Errorf("NewRegistry: duplicate validator for %s", s)
		}
		m[s] = v
	}
	return &Registry{validators: m}, nil
}

// DefaultRegistry registers the Bacs, FasterPayments and Chaps validators.
func DefaultRegistry() *Registry {
	r, err := NewRegistry(
		NewBacsValidator(),
		NewFasterPaymentsValidator(),
		NewChapsValidator(),
	)
	if err != nil {
		panic(err)
	}
	return r
}

func (r *Registry) For(scheme domain.PaymentScheme) (Validator, error) {
	v, ok := r.validators[scheme]
	if !ok {
		return nil, fmt.Errorf("Registry.For: %q: %w", scheme, domain.ErrUnknownScheme)
	}
	return v, nil
}
