package domain

import "fmt"

type PaymentScheme string

const (
	PaymentSchemeBacs           PaymentScheme = "bacs"
	PaymentSchemeFasterPayments PaymentScheme = "faster_payments"
	PaymentSchemeChaps          PaymentScheme = "chaps"
)

var paymentSchemes = []PaymentScheme{
	PaymentSchemeBacs,
	PaymentSchemeFasterPayments,
	PaymentSchemeChaps,
}

// PaymentSchemes returns every supported scheme.
func PaymentSchemes() []PaymentScheme {
	out := make([]PaymentScheme, len(paymentSchemes))
	copy(out, paymentSchemes)
	return out
}

func (s PaymentScheme) IsValid() bool {
	return s.Flag() != 0
}

// Flag returns the allowed-schemes bit for s, or zero for an unknown scheme.
func (s PaymentScheme) Flag() AllowedPaymentSchemes {
	switch s {
	case PaymentSchemeBacs:
		return AllowedBacs
	case PaymentSchemeFasterPayments:
		return AllowedFasterPayments
	case PaymentSchemeChaps:
		return AllowedChaps
	default:
		return 0
	}
}

func ParsePaymentScheme(s string) (PaymentScheme, error) {
	scheme := PaymentScheme(s)
	if !scheme.IsValid() {
		return "", fmt.Errorf("ParsePaymentScheme: %q: %w", s, ErrUnknownScheme)
	}
	return scheme, nil
}
