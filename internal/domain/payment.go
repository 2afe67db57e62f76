package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type MakePaymentRequest struct {
	CreditorAccountNumber string
	DebtorAccountNumber   string
	Amount                decimal.Decimal
	PaymentDate           time.Time
	PaymentScheme         PaymentScheme
}

// AmountScale is the number of decimal places balances are stored with.
// Amounts with more places would be rounded by the store.
const AmountScale int32 = 4

// FitsAmountScale reports whether d has no significant digits beyond
// AmountScale decimal places. Trailing zeros are ignored.
func FitsAmountScale(d decimal.Decimal) bool {
	return d.Equal(d.Truncate(AmountScale))
}

type PaymentFailureReason string

const (
	FailureReasonNone                PaymentFailureReason = ""
	FailureReasonAccountNotFound     PaymentFailureReason = "account_not_found"
	FailureReasonSchemeNotAllowed    PaymentFailureReason = "scheme_not_allowed"
	FailureReasonInsufficientBalance PaymentFailureReason = "insufficient_balance"
	FailureReasonAccountNotLive      PaymentFailureReason = "account_not_live"
)

// MakePaymentResult is either {Success: true, FailureReason: nil} or
// {Success: false, FailureReason: non-nil}. Build it with Succeeded or Failed.
type MakePaymentResult struct {
	Success       bool
	FailureReason *PaymentFailureReason
}

func Succeeded() MakePaymentResult {
	return MakePaymentResult{Success: true}
}

func Failed(reason PaymentFailureReason) MakePaymentResult {
	return MakePaymentResult{Success: false, FailureReason: &reason}
}
