package payment

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/josh-kwaku/scheme-payments/internal/domain"
	"github.com/josh-kwaku/scheme-payments/internal/validation"
)

type fakeStore struct {
	accounts  map[string]*domain.Account
	updated   []domain.Account
	getErr    error
	updateErr error
}

func newFakeStore(accounts ...*domain.Account) *fakeStore {
	s := &fakeStore{accounts: make(map[string]*domain.Account)}
	for _, a := range accounts {
		s.accounts[a.AccountNumber] = a
	}
	return s
}

func (s *fakeStore) GetAccount(_ context.Context, accountNumber string) (*domain.Account, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	a, ok := s.accounts[accountNumber]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return a, nil
}

func (s *fakeStore) UpdateAccount(_ context.Context, account *domain.Account) error {
	s.updated = append(s.updated, *account)
	return s.updateErr
}

const debtor = "11111111"

func newTestService(store *fakeStore) *Service {
	return NewService(store, validation.DefaultRegistry())
}

func account(allowed domain.AllowedPaymentSchemes, balance string, status domain.AccountStatus) *domain.Account {
	return &domain.Account{
		AccountNumber:         debtor,
		Balance:               decimal.RequireFromString(balance),
		Status:                status,
		AllowedPaymentSchemes: allowed,
	}
}

func paymentRequest(scheme domain.PaymentScheme, amount string) domain.MakePaymentRequest {
	return domain.MakePaymentRequest{
		DebtorAccountNumber:   debtor,
		CreditorAccountNumber: "22222222",
		Amount:                decimal.RequireFromString(amount),
		PaymentScheme:         scheme,
	}
}

func requireFailure(t *testing.T, res domain.MakePaymentResult, want domain.PaymentFailureReason) {
	t.Helper()
	assert.False(t, res.Success)
	require.NotNil(t, res.FailureReason)
	assert.Equal(t, want, *res.FailureReason)
}

func requireSuccess(t *testing.T, res domain.MakePaymentResult) {
	t.Helper()
	assert.True(t, res.Success)
	assert.Nil(t, res.FailureReason)
}

func TestMakePayment_AccountNotFound(t *testing.T) {
	for _, scheme := range domain.PaymentSchemes() {
		t.Run(string(scheme), func(t *testing.T) {
			store := newFakeStore()
			svc := newTestService(store)

			res, err := svc.MakePayment(context.Background(), paymentRequest(scheme, "10"))

			require.NoError(t, err)
			requireFailure(t, res, domain.FailureReasonAccountNotFound)
			assert.Empty(t, store.updated)
		})
	}
}

func TestMakePayment_SchemeNotAllowed(t *testing.T) {
	tests := []struct {
		scheme  domain.PaymentScheme
		allowed domain.AllowedPaymentSchemes
	}{
		{domain.PaymentSchemeBacs, domain.AllowedFasterPayments},
		{domain.PaymentSchemeFasterPayments, domain.AllowedBacs},
		{domain.PaymentSchemeChaps, domain.AllowedBacs},
	}

	for _, tc := range tests {
		t.Run(string(tc.scheme), func(t *testing.T) {
			store := newFakeStore(account(tc.allowed, "1000", domain.AccountStatusLive))
			svc := newTestService(store)

			res, err := svc.MakePayment(context.Background(), paymentRequest(tc.scheme, "10"))

			require.NoError(t, err)
			requireFailure(t, res, domain.FailureReasonSchemeNotAllowed)
			assert.Empty(t, store.updated)
		})
	}
}

func TestMakePayment_SchemeAllowed(t *testing.T) {
	tests := []struct {
		scheme  domain.PaymentScheme
		allowed domain.AllowedPaymentSchemes
	}{
		{domain.PaymentSchemeBacs, domain.AllowedBacs},
		{domain.PaymentSchemeFasterPayments, domain.AllowedFasterPayments},
		{domain.PaymentSchemeChaps, domain.AllowedChaps},
	}

	for _, tc := range tests {
		t.Run(string(tc.scheme), func(t *testing.T) {
			store := newFakeStore(account(tc.allowed, "1000", domain.AccountStatusLive))
			svc := newTestService(store)

			res, err := svc.MakePayment(context.Background(), paymentRequest(tc.scheme, "10"))

			require.NoError(t, err)
			requireSuccess(t, res)
			require.Len(t, store.updated, 1)
			assert.True(t, store.updated[0].Balance.Equal(decimal.NewFromInt(990)))
		})
	}
}

func TestMakePayment_FasterPaymentsBalance(t *testing.T) {
	tests := []struct {
		name        string
		balance     string
		amount      string
		wantSuccess bool
		wantBalance string
	}{
		{name: "amount above balance", balance: "50", amount: "100"},
		{name: "amount equal to balance", balance: "100", amount: "100", wantSuccess: true, wantBalance: "0"},
		{name: "amount below balance", balance: "200", amount: "100", wantSuccess: true, wantBalance: "100"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			acct := account(domain.AllowedFasterPayments, tc.balance, domain.AccountStatusLive)
			store := newFakeStore(acct)
			svc := newTestService(store)

			res, err := svc.MakePayment(context.Background(), paymentRequest(domain.PaymentSchemeFasterPayments, tc.amount))
			require.NoError(t, err)

			if !tc.wantSuccess {
				requireFailure(t, res, domain.FailureReasonInsufficientBalance)
				assert.Empty(t, store.updated)
				assert.True(t, acct.Balance.Equal(decimal.RequireFromString(tc.balance)), "balance must be untouched")
				return
			}

			requireSuccess(t, res)
			require.Len(t, store.updated, 1)
			assert.True(t, store.updated[0].Balance.Equal(decimal.RequireFromString(tc.wantBalance)),
				"balance: got %s, want %s", store.updated[0].Balance, tc.wantBalance)
		})
	}
}

func TestMakePayment_ChapsAccountNotLive(t *testing.T) {
	for _, status := range []domain.AccountStatus{domain.AccountStatusDisabled, domain.AccountStatusInboundPaymentsOnly} {
		t.Run(string(status), func(t *testing.T) {
			store := newFakeStore(account(domain.AllowedChaps, "1000", status))
			svc := newTestService(store)

			res, err := svc.MakePayment(context.Background(), paymentRequest(domain.PaymentSchemeChaps, "10"))

			require.NoError(t, err)
			requireFailure(t, res, domain.FailureReasonAccountNotLive)
			assert.Empty(t, store.updated)
		})
	}
}

func TestMakePayment_BacsIgnoresBalanceAndStatus(t *testing.T) {
	acct := account(domain.AllowedBacs, "5", domain.AccountStatusDisabled)
	store := newFakeStore(acct)
	svc := newTestService(store)

	res, err := svc.MakePayment(context.Background(), paymentRequest(domain.PaymentSchemeBacs, "20"))

	require.NoError(t, err)
	requireSuccess(t, res)
	assert.True(t, acct.Balance.Equal(decimal.NewFromInt(-15)), "got %s", acct.Balance)
}

func TestMakePayment_SuccessDebitsAndSavesOnce(t *testing.T) {
	acct := account(domain.AllowedBacs, "200", domain.AccountStatusLive)
	store := newFakeStore(acct)
	svc := newTestService(store)

	res, err := svc.MakePayment(context.Background(), paymentRequest(domain.PaymentSchemeBacs, "50"))

	require.NoError(t, err)
	requireSuccess(t, res)
	assert.True(t, acct.Balance.Equal(decimal.NewFromInt(150)), "got %s", acct.Balance)
	require.Len(t, store.updated, 1)
	assert.Equal(t, debtor, store.updated[0].AccountNumber)
	assert.True(t, store.updated[0].Balance.Equal(decimal.NewFromInt(150)))
}

func TestMakePayment_DecimalAmounts(t *testing.T) {
	acct := account(domain.AllowedFasterPayments, "100.10", domain.AccountStatusLive)
	store := newFakeStore(acct)
	svc := newTestService(store)

	res, err := svc.MakePayment(context.Background(), paymentRequest(domain.PaymentSchemeFasterPayments, "0.30"))

	require.NoError(t, err)
	requireSuccess(t, res)
	assert.True(t, acct.Balance.Equal(decimal.RequireFromString("99.80")), "got %s", acct.Balance)
}

func TestMakePayment_InvalidAmount(t *testing.T) {
	for _, amount := range []string{"0", "-1", "0.00001", "10.123456"} {
		t.Run(amount, func(t *testing.T) {
			store := newFakeStore(account(domain.AllowedBacs, "100", domain.AccountStatusLive))
			svc := newTestService(store)

			_, err := svc.MakePayment(context.Background(), paymentRequest(domain.PaymentSchemeBacs, amount))

			require.ErrorIs(t, err, domain.ErrInvalidAmount)
			assert.Empty(t, store.updated)
		})
	}
}

func TestMakePayment_AmountAtStoredScale(t *testing.T) {
	acct := account(domain.AllowedFasterPayments, "100", domain.AccountStatusLive)
	store := newFakeStore(acct)
	svc := newTestService(store)

	res, err := svc.MakePayment(context.Background(), paymentRequest(domain.PaymentSchemeFasterPayments, "0.0001"))

	require.NoError(t, err)
	requireSuccess(t, res)
	require.Len(t, store.updated, 1)
	assert.Equal(t, "99.9999", store.updated[0].Balance.String())
}

func TestMakePayment_UnknownScheme(t *testing.T) {
	store := newFakeStore(account(domain.AllowedBacs, "100", domain.AccountStatusLive))
	svc := newTestService(store)

	_, err := svc.MakePayment(context.Background(), paymentRequest(domain.PaymentScheme("swift"), "10"))

	require.ErrorIs(t, err, domain.ErrUnknownScheme)
	assert.Empty(t, store.updated)
}

func TestMakePayment_StoreErrors(t *testing.T) {
	errDown := errors.New("connection refused")

	t.Run("get fails", func(t *testing.T) {
		store := newFakeStore()
		store.getErr = errDown
		svc := newTestService(store)

		_, err := svc.MakePayment(context.Background(), paymentRequest(domain.PaymentSchemeBacs, "10"))

		require.ErrorIs(t, err, errDown)
		assert.Empty(t, store.updated)
	})

	t.Run("update fails", func(t *testing.T) {
		store := newFakeStore(account(domain.AllowedBacs, "100", domain.AccountStatusLive))
		store.updateErr = errDown
		svc := newTestService(store)

		res, err := svc.MakePayment(context.Background(), paymentRequest(domain.PaymentSchemeBacs, "10"))

		require.ErrorIs(t, err, errDown)
		assert.False(t, res.Success)
		assert.Len(t, store.updated, 1)
	})
}
