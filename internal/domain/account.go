package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

type AccountStatus string

const (
	AccountStatusLive                AccountStatus = "live"
	AccountStatusDisabled            AccountStatus = "disabled"
	AccountStatusInboundPaymentsOnly AccountStatus = "inbound_payments_only"
)

func (s AccountStatus) IsValid() bool {
	switch s {
	case AccountStatusLive, AccountStatusDisabled, AccountStatusInboundPaymentsOnly:
		return true
	}
	return false
}

// AllowedPaymentSchemes is a bit-set of the schemes permitted to debit an account.
type AllowedPaymentSchemes uint8

const (
	AllowedBacs AllowedPaymentSchemes = 1 << iota
	AllowedFasterPayments
	AllowedChaps
)

const allowedAll = AllowedBacs | AllowedFasterPayments | AllowedChaps

func (a AllowedPaymentSchemes) Has(flag AllowedPaymentSchemes) bool {
	return flag != 0 && a&flag == flag
}

// Allows reports whether the bit for scheme is set.
func (a AllowedPaymentSchemes) Allows(scheme PaymentScheme) bool {
	return a.Has(scheme.Flag())
}

// Schemes lists the set bits in Bacs, FasterPayments, Chaps order.
func (a AllowedPaymentSchemes) Schemes() []PaymentScheme {
	out := make([]PaymentScheme, 0, len(paymentSchemes))
	for _, s := range paymentSchemes {
		if a.Allows(s) {
			out = append(out, s)
		}
	}
	return out
}

func (a AllowedPaymentSchemes) Strings() []string {
	schemes := a.Schemes()
	out := make([]string, len(schemes))
	for i, s := range schemes {
		out[i] = string(s)
	}
	return out
}

func (a AllowedPaymentSchemes) String() string {
	return strings.Join(a.Strings(), ",")
}

func ParseAllowedPaymentSchemes(names []string) (AllowedPaymentSchemes, error) {
	var set AllowedPaymentSchemes
	for _, n := range names {
		s, err := ParsePaymentScheme(n)
		if err != nil {
			return 0, fmt.Errorf("ParseAllowedPaymentSchemes: %w", err)
		}
		set |= s.Flag()
	}
	return set, nil
}

type Account struct {
	AccountNumber         string
	Balance               decimal.Decimal
	Status                AccountStatus
	AllowedPaymentSchemes AllowedPaymentSchemes
}

// Debit decrements the balance in place. It performs no checks of its own.
func (a *Account) Debit(amount decimal.Decimal) {
	a.Balance = a.Balance.Sub(amount)
}
