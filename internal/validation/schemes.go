package validation

import "github.com/josh-kwaku/scheme-payments/internal/domain"

// NewBacsValidator requires an existing account that allows Bacs. Balance and
// status are not checked.
func NewBacsValidator() Validator {
	return newSchemeValidator(domain.PaymentSchemeBacs)
}

func NewFasterPaymentsValidator() Validator {
	return newSchemeValidator(domain.PaymentSchemeFasterPayments, sufficientBalance())
}

func NewChapsValidator() Validator {
	return newSchemeValidator(domain.PaymentSchemeChaps, accountLive())
}
