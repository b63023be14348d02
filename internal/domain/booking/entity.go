package booking

import (
	"errors"
	"time"

	"parking-engine/internal/domain/billing"
	"parking-engine/internal/domain/lot"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidTransition = errors.New("invalid reservation status transition")
	ErrNotYetEnded       = errors.New("reservation has not ended and has no closed session")
	ErrAlreadyPaid       = errors.New("reservation fee is already paid")
	ErrAlreadyClaimed    = errors.New("reservation is already linked to a session")
)

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusConfirmed Status = "CONFIRMED"
	StatusCancelled Status = "CANCELLED"
	StatusCompleted Status = "COMPLETED"
)

// HoldsCapacity: pending and confirmed orders count against lot capacity.
func (s Status) HoldsCapacity() bool {
	return s == StatusPending || s == StatusConfirmed
}

type Order struct {
	id            uuid.UUID
	userID        uuid.UUID
	vehicleID     uuid.UUID
	lotID         uuid.UUID
	spaceType     lot.SpaceType
	slot          TimeSlot
	code          string
	status        Status
	fee           decimal.Decimal
	paymentStatus billing.PaymentStatus
	sessionID     *uuid.UUID
	createdAt     time.Time
	updatedAt     time.Time
}

func NewOrder(userID, vehicleID, lotID uuid.UUID, spaceType lot.SpaceType, slot TimeSlot, code string, hourlyRate decimal.Decimal, now time.Time) *Order {
	return &Order{
		id:            uuid.New(),
		userID:        userID,
		vehicleID:     vehicleID,
		lotID:         lotID,
		spaceType:     spaceType,
		slot:          slot,
		code:          code,
		status:        StatusPending,
		fee:           slot.Fee(hourlyRate),
		paymentStatus: billing.PaymentUnpaid,
		createdAt:     now,
		updatedAt:     now,
	}
}

type Snapshot struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	VehicleID     uuid.UUID
	LotID         uuid.UUID
	SpaceType     lot.SpaceType
	Start         time.Time
	End           time.Time
	Code          string
	Status        Status
	Fee           decimal.Decimal
	PaymentStatus billing.PaymentStatus
	SessionID     *uuid.UUID
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func Reconstruct(s Snapshot) *Order {
	return &Order{
		id:            s.ID,
		userID:        s.UserID,
		vehicleID:     s.VehicleID,
		lotID:         s.LotID,
		spaceType:     s.SpaceType,
		slot:          TimeSlot{start: s.Start, end: s.End},
		code:          s.Code,
		status:        s.Status,
		fee:           s.Fee,
		paymentStatus: s.PaymentStatus,
		sessionID:     s.SessionID,
		createdAt:     s.CreatedAt,
		updatedAt:     s.UpdatedAt,
	}
}

func (o *Order) Snapshot() Snapshot {
	return Snapshot{
		ID:            o.id,
		UserID:        o.userID,
		VehicleID:     o.vehicleID,
		LotID:         o.lotID,
		SpaceType:     o.spaceType,
		Start:         o.slot.start,
		End:           o.slot.end,
		Code:          o.code,
		Status:        o.status,
		Fee:           o.fee,
		PaymentStatus: o.paymentStatus,
		SessionID:     o.sessionID,
		CreatedAt:     o.createdAt,
		UpdatedAt:     o.updatedAt,
	}
}

func (o *Order) Confirm(now time.Time) error {
	if o.status != StatusPending {
		return ErrInvalidTransition
	}
	o.status = StatusConfirmed
	o.updatedAt = now
	return nil
}

func (o *Order) Cancel(now time.Time) error {
	if !o.status.HoldsCapacity() {
		return ErrInvalidTransition
	}
	o.status = StatusCancelled
	o.updatedAt = now
	return nil
}

// Complete requires the slot to have ended or the linked session to have closed.
func (o *Order) Complete(now time.Time, sessionClosed bool) error {
	if o.status != StatusConfirmed {
		return ErrInvalidTransition
	}
	if now.Before(o.slot.end) && !sessionClosed {
		return ErrNotYetEnded
	}
	o.status = StatusCompleted
	o.updatedAt = now
	return nil
}

// Claim links the order to the session that used it.
func (o *Order) Claim(sessionID uuid.UUID, now time.Time) error {
	if o.status != StatusConfirmed {
		return ErrInvalidTransition
	}
	if o.sessionID != nil {
		return ErrAlreadyClaimed
	}
	o.sessionID = &sessionID
	o.updatedAt = now
	return nil
}

// ClaimableAt: confirmed, unclaimed and inside the slot widened by the early-arrival buffer.
func (o *Order) ClaimableAt(t time.Time, earlyBuffer time.Duration) bool {
	if o.status != StatusConfirmed || o.sessionID != nil {
		return false
	}
	return !t.Before(o.slot.start.Add(-earlyBuffer)) && t.Before(o.slot.end)
}

func (o *Order) MarkPaid(now time.Time) error {
	if o.paymentStatus == billing.PaymentPaid {
		return ErrAlreadyPaid
	}
	if o.status == StatusCancelled {
		return ErrInvalidTransition
	}
	o.paymentStatus = billing.PaymentPaid
	o.updatedAt = now
	return nil
}

func (o *Order) Outstanding() decimal.Decimal {
	if o.paymentStatus == billing.PaymentPaid || o.status == StatusCancelled {
		return decimal.Zero
	}
	return o.fee
}

func (o *Order) IsClaimed() bool { return o.sessionID != nil }

func (o *Order) ID() uuid.UUID                        { return o.id }
func (o *Order) UserID() uuid.UUID                    { return o.userID }
func (o *Order) VehicleID() uuid.UUID                 { return o.vehicleID }
func (o *Order) LotID() uuid.UUID                     { return o.lotID }
func (o *Order) SpaceType() lot.SpaceType             { return o.spaceType }
func (o *Order) Slot() TimeSlot                       { return o.slot }
func (o *Order) Code() string                         { return o.code }
func (o *Order) Status() Status                       { return o.status }
func (o *Order) Fee() decimal.Decimal                 { return o.fee }
func (o *Order) PaymentStatus() billing.PaymentStatus { return o.paymentStatus }
func (o *Order) SessionID() *uuid.UUID                { return o.sessionID }
func (o *Order) CreatedAt() time.Time                 { return o.createdAt }
func (o *Order) UpdatedAt() time.Time                 { return o.updatedAt }

// Slots extracts the intervals of orders, for capacity checks.
func Slots(orders []*Order) []TimeSlot {
	out := make([]TimeSlot, 0, len(orders))
	for _, o := range orders {
		out = append(out, o.slot)
	}
	return out
}
