package billing

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrAmountMismatch          = errors.New("amount does not match outstanding balance")
	ErrNonPositiveAmount       = errors.New("amount must be positive")
	ErrNothingOutstanding      = errors.New("nothing outstanding")
	ErrTransactionNoTooLong    = errors.New("transaction reference must be at most 64 characters")
	ErrTransactionNoGeneration = errors.New("failed to generate transaction reference")
)

const MaxTransactionNoLength = 64

type PaymentRecordStatus string

const PaymentSucceeded PaymentRecordStatus = "SUCCEEDED"

type Payment struct {
	id            uuid.UUID
	targetID      uuid.UUID
	targetType    TargetType
	lotID         uuid.UUID
	amount        decimal.Decimal
	method        Method
	status        PaymentRecordStatus
	transactionNo string
	paidAt        time.Time
}

// CheckSettlement enforces exact-amount settlement.
func CheckSettlement(outstanding, amount decimal.Decimal) error {
	if !outstanding.IsPositive() {
		return ErrNothingOutstanding
	}
	if !amount.IsPositive() {
		return ErrNonPositiveAmount
	}
	if !amount.Round(2).Equal(amount) || !amount.Equal(outstanding) {
		return ErrAmountMismatch
	}
	return nil
}

// NewPayment records a successful settlement. A blank transactionNo is generated.
// lotID is the lot the settled target belongs to.
func NewPayment(targetID uuid.UUID, targetType TargetType, lotID uuid.UUID, amount decimal.Decimal, method Method, transactionNo string, now time.Time) (*Payment, error) {
	transactionNo = strings.TrimSpace(transactionNo)
	if transactionNo == "" {
		generated, err := GenerateTransactionNo()
		if err != nil {
			return nil, err
		}
		transactionNo = generated
	}
	if len(transactionNo) > MaxTransactionNoLength {
		return nil, ErrTransactionNoTooLong
	}
	return &Payment{
		id:            uuid.New(),
		targetID:      targetID,
		targetType:    targetType,
		lotID:         lotID,
		amount:        amount,
		method:        method,
		status:        PaymentSucceeded,
		transactionNo: transactionNo,
		paidAt:        now,
	}, nil
}

func ReconstructPayment(
	id, targetID uuid.UUID,
	targetType TargetType,
	lotID uuid.UUID,
	amount decimal.Decimal,
	method Method,
	status PaymentRecordStatus,
	transactionNo string,
	paidAt time.Time,
) *Payment {
	return &Payment{
		id:            id,
		targetID:      targetID,
		targetType:    targetType,
		lotID:         lotID,
		amount:        amount,
		method:        method,
		status:        status,
		transactionNo: transactionNo,
		paidAt:        paidAt,
	}
}

func GenerateTransactionNo() (string, error) {
	buf := make([]byte, 10)
	if _, err := rand.Read(buf); err != nil {
		return "", ErrTransactionNoGeneration
	}
	return "TXN-" + strings.ToUpper(hex.EncodeToString(buf)), nil
}

func (p *Payment) ID() uuid.UUID               { return p.id }
func (p *Payment) TargetID() uuid.UUID         { return p.targetID }
func (p *Payment) TargetType() TargetType      { return p.targetType }
func (p *Payment) LotID() uuid.UUID            { return p.lotID }
func (p *Payment) Amount() decimal.Decimal     { return p.amount }
func (p *Payment) Method() Method              { return p.method }
func (p *Payment) Status() PaymentRecordStatus { return p.status }
func (p *Payment) TransactionNo() string       { return p.transactionNo }
func (p *Payment) PaidAt() time.Time           { return p.paidAt }
