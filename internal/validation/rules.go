package validation

import "github.com/josh-kwaku/scheme-payments/internal/domain"

func accountPresent() rule {
	return rule{
		name:   "account_present",
		reason: domain.FailureReasonAccountNotFound,
		ok: func(vc *Context) bool {
			return vc.Account != nil
		},
	}
}

func schemeAllowed(scheme domain.PaymentScheme) rule {
	return rule{
		name:   "scheme_allowed",
		reason: domain.FailureReasonSchemeNotAllowed,
		ok: func(vc *Context) bool {
			return vc.Account.AllowedPaymentSchemes.Allows(scheme)
		},
	}
}

// Equal balance and amount is sufficient.
func sufficientBalance() rule {
	return rule{
		name:   "sufficient_balance",
		reason: domain.FailureReasonInsufficientBalance,
		ok: func(vc *Context) bool {
			return !vc.Account.Balance.LessThan(vc.Request.Amount)
		},
	}
}

func accountLive() rule {
	return rule{
		name:   "account_live",
		reason: domain.FailureReasonAccountNotLive,
		ok: func(vc *Context) bool {
			return vc.Account.Status == domain.AccountStatusLive
		},
	}
}
