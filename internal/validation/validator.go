// Package validation holds the per-scheme payment rules and the registry
// that routes a request to the rules for its scheme.
package validation

import "github.com/josh-kwaku/scheme-payments/internal/domain"

// Context pairs the debtor account with the request being validated.
// Account is nil when the debtor account does not exist.
type Context struct {
	Account *domain.Account
	Request domain.MakePaymentRequest
}

type Result struct {
	Valid  bool
	Reason domain.PaymentFailureReason
	// Rule names the check that failed; empty when Valid.
	Rule string
}

func pass() Result { return Result{Valid: true} }

func fail(r rule) Result {
	return Result{Valid: false, Reason: r.reason, Rule: r.name}
}

type Validator interface {
	Scheme() domain.PaymentScheme
	Validate(vc *Context) Result
}

// rule is a single check. Rules run in order and the first failing one
// decides the reason; later rules are not evaluated.
type rule struct {
	name   string
	reason domain.PaymentFailureReason
	ok     func(vc *Context) bool
}

type schemeValidator struct {
	scheme domain.PaymentScheme
	rules  []rule
}

func (v *schemeValidator) Scheme() domain.PaymentScheme { return v.scheme }

func (v *schemeValidator) Validate(vc *Context) Result {
	for _, r := range v.rules {
		if !r.ok(vc) {
			return fail(r)
		}
	}
	return pass()
}

func newSchemeValidator(scheme domain.PaymentScheme, extra ...rule) *schemeValidator {
	rules := make([]rule, 0, 2+len(extra))
	rules = append(rules, accountPresent(), schemeAllowed(scheme))
	rules = append(rules, extra...)
	return &schemeValidator{scheme: scheme, rules: rules}
}
