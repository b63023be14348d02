package billing

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrNegativeFine       = errors.New("fine must not be negative")
	ErrViolationPaid      = errors.New("violation is already paid")
	ErrMissingReference   = errors.New("violation must reference a session or a reservation")
	ErrDescriptionTooLong = errors.New("description must be at most 500 characters")
)

const MaxDescriptionLength = 500

type ViolationStatus = PaymentStatus

// ViolationRef says what a violation is attached to. ParentID is set for escalations.
type ViolationRef struct {
	SessionID     *uuid.UUID
	ReservationID *uuid.UUID
	ParentID      *uuid.UUID
	VehicleID     uuid.UUID
	LotID         uuid.UUID
}

type Violation struct {
	id            uuid.UUID
	ref           ViolationRef
	violationType ViolationType
	description   string
	fine          decimal.Decimal
	status        ViolationStatus
	detectedAt    time.Time
	paidAt        *time.Time
}

func NewViolation(ref ViolationRef, vt ViolationType, description string, fine decimal.Decimal, now time.Time) (*Violation, error) {
	if ref.SessionID == nil && ref.ReservationID == nil {
		return nil, ErrMissingReference
	}
	if fine.IsNegative() {
		return nil, ErrNegativeFine
	}
	description = strings.TrimSpace(description)
	if len(description) > MaxDescriptionLength {
		return nil, ErrDescriptionTooLong
	}
	v := &Violation{
		id:            uuid.New(),
		ref:           ref,
		violationType: vt,
		description:   description,
		fine:          fine.Round(2),
		status:        PaymentUnpaid,
		detectedAt:    now,
	}
	// Nothing to collect, so a zero fine is settled on record.
	if v.fine.IsZero() {
		v.status = PaymentPaid
		v.paidAt = &now
	}
	return v, nil
}

func ReconstructViolation(
	id uuid.UUID,
	ref ViolationRef,
	vt ViolationType,
	description string,
	fine decimal.Decimal,
	status ViolationStatus,
	detectedAt time.Time,
	paidAt *time.Time,
) *Violation {
	return &Violation{
		id:            id,
		ref:           ref,
		violationType: vt,
		description:   description,
		fine:          fine,
		status:        status,
		detectedAt:    detectedAt,
		paidAt:        paidAt,
	}
}

func (v *Violation) MarkPaid(now time.Time) error {
	if v.status == PaymentPaid {
		return ErrViolationPaid
	}
	v.status = PaymentPaid
	v.paidAt = &now
	return nil
}

// Outstanding is zero once paid.
func (v *Violation) Outstanding() decimal.Decimal {
	if v.status == PaymentPaid {
		return decimal.Zero
	}
	return v.fine
}

func (v *Violation) IsPaid() bool { return v.status == PaymentPaid }

func (v *Violation) ID() uuid.UUID             { return v.id }
func (v *Violation) Ref() ViolationRef         { return v.ref }
func (v *Violation) SessionID() *uuid.UUID     { return v.ref.SessionID }
func (v *Violation) ReservationID() *uuid.UUID { return v.ref.ReservationID }
func (v *Violation) ParentID() *uuid.UUID      { return v.ref.ParentID }
func (v *Violation) VehicleID() uuid.UUID      { return v.ref.VehicleID }
func (v *Violation) LotID() uuid.UUID          { return v.ref.LotID }
func (v *Violation) Type() ViolationType       { return v.violationType }
func (v *Violation) Description() string       { return v.description }
func (v *Violation) Fine() decimal.Decimal     { return v.fine }
func (v *Violation) Status() ViolationStatus   { return v.status }
func (v *Violation) DetectedAt() time.Time     { return v.detectedAt }
func (v *Violation) PaidAt() *time.Time        { return v.paidAt }
