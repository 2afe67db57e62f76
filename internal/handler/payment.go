package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/josh-kwaku/scheme-payments/internal/domain"
	"github.com/josh-kwaku/scheme-payments/internal/logging"
)

type paymentService interface {
	MakePayment(ctx context.Context, req domain.MakePaymentRequest) (domain.MakePaymentResult, error)
}

type PaymentHandler struct {
	payments paymentService
}

func NewPaymentHandler(payments paymentService) *PaymentHandler {
	return &PaymentHandler{payments: payments}
}

type makePaymentRequest struct {
	DebtorAccountNumber   string          `json:"debtor_account_number" validate:"required,max=34"`
	CreditorAccountNumber string          `json:"creditor_account_number" validate:"required,max=34"`
	Amount                decimal.Decimal `json:"amount" validate:"required,gt=0"`
	PaymentScheme         string          `json:"payment_scheme" validate:"required,oneof=bacs faster_payments chaps"`
	PaymentDate           *time.Time      `json:"payment_date"`
}

// validatePaymentAmountScale rejects amounts the account store cannot hold
// without rounding. Field tags see decimals as float64, so the check runs at
// struct level on the original value.
func validatePaymentAmountScale(sl validator.StructLevel) {
	req := sl.Current().Interface().(makePaymentRequest)
	if !domain.FitsAmountScale(req.Amount) {
		sl.ReportError(req.Amount, "amount", "Amount", "decimal_scale", strconv.Itoa(int(domain.AmountScale)))
	}
}

func (r makePaymentRequest) toDomain(now time.Time) domain.MakePaymentRequest {
	date := now
	if r.PaymentDate != nil {
		date = *r.PaymentDate
	}
	return domain.MakePaymentRequest{
		DebtorAccountNumber:   r.DebtorAccountNumber,
		CreditorAccountNumber: r.CreditorAccountNumber,
		Amount:                r.Amount,
		PaymentDate:           date,
		PaymentScheme:         domain.PaymentScheme(r.PaymentScheme),
	}
}

type paymentResultDTO struct {
	Success       bool    `json:"success"`
	FailureReason *string `json:"failure_reason"`
}

func toPaymentResultDTO(res domain.MakePaymentResult) paymentResultDTO {
	dto := paymentResultDTO{Success: res.Success}
	if res.FailureReason != nil {
		r := string(*res.FailureReason)
		dto.FailureReason = &r
	}
	return dto
}

// Create runs a payment. Both approved and rejected payments are 200s; the
// outcome is in the body.
func (h *PaymentHandler) Create(w http.ResponseWriter, r *http.Request) {
	log := logging.FromContext(r.Context())

	var req makePaymentRequest
	if err := decodeAndValidate(r, &req); err != nil {
		RespondValidationError(w, err)
		return
	}

	res, err := h.payments.MakePayment(r.Context(), req.toDomain(time.Now().UTC()))
	if err != nil {
		log.Error("payment failed", "error", err)
		RespondDomainError(w, err)
		return
	}

	RespondSuccess(w, http.StatusOK, toPaymentResultDTO(res))
}
