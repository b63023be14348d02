package request

import (
	"strings"

	"parking-engine/internal/domain/billing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type RecordViolationRequest struct {
	SessionID   uuid.UUID `json:"session_id" binding:"required"`
	Type        string    `json:"type" binding:"required"`
	Fine        string    `json:"fine" binding:"required"`
	Description string    `json:"description" binding:"max=500"`
}

func (r RecordViolationRequest) ToDomain() (billing.ViolationType, decimal.Decimal, error) {
	vt, err := billing.NewViolationType(r.Type)
	if err != nil {
		return "", decimal.Zero, err
	}
	fine, err := decimal.NewFromString(r.Fine)
	if err != nil {
		return "", decimal.Zero, err
	}
	return vt, fine, nil
}

// PayFineRequest: a missing amount pays the outstanding fine.
type PayFineRequest struct {
	Method        string  `json:"method" binding:"required"`
	Amount        *string `json:"amount,omitempty"`
	TransactionNo string  `json:"transaction_no" binding:"max=64"`
}

func (r PayFineRequest) ToDomain() (billing.Method, *decimal.Decimal, error) {
	m, err := billing.NewMethod(r.Method)
	if err != nil {
		return "", nil, err
	}
	if r.Amount == nil || strings.TrimSpace(*r.Amount) == "" {
		return m, nil, nil
	}
	amount, err := decimal.NewFromString(strings.TrimSpace(*r.Amount))
	if err != nil {
		return "", nil, err
	}
	return m, &amount, nil
}

type SettlePaymentRequest struct {
	TargetID      uuid.UUID `json:"target_id" binding:"required"`
	TargetType    string    `json:"target_type" binding:"required"`
	Amount        string    `json:"amount" binding:"required"`
	Method        string    `json:"method" binding:"required"`
	TransactionNo string    `json:"transaction_no" binding:"max=64"`
}

func (r SettlePaymentRequest) ToDomain() (billing.TargetType, decimal.Decimal, billing.Method, error) {
	tt, err := billing.NewTargetType(r.TargetType)
	if err != nil {
		return "", decimal.Zero, "", err
	}
	amount, err := decimal.NewFromString(strings.TrimSpace(r.Amount))
	if err != nil {
		return "", decimal.Zero, "", err
	}
	m, err := billing.NewMethod(r.Method)
	if err != nil {
		return "", decimal.Zero, "", err
	}
	return tt, amount, m, nil
}
