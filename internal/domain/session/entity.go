package session

import (
	"errors"
	"time"

	"parking-engine/internal/domain/billing"
	"parking-engine/internal/domain/lot"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrAlreadyClosed = errors.New("session is already closed")
	ErrNotClosed     = errors.New("session is still active")
	ErrAlreadyPaid   = errors.New("session fee is already paid")
)

type Status string

const (
	StatusActive Status = "ACTIVE"
	StatusClosed Status = "CLOSED"
)

// Session is one stay of a vehicle in a space. CLOSED is terminal; re-entry opens a new session.
type Session struct {
	id            uuid.UUID
	vehicleID     uuid.UUID
	lotID         uuid.UUID
	spaceID       int64
	spaceType     lot.SpaceType
	reservationID *uuid.UUID
	entryAt       time.Time
	exitAt        *time.Time
	duration      time.Duration
	fee           decimal.Decimal
	violation     bool
	violationFee  decimal.Decimal
	status        Status
	paymentStatus billing.PaymentStatus
	paidAt        *time.Time
}

func Open(vehicleID, lotID uuid.UUID, spaceID int64, spaceType lot.SpaceType, reservationID *uuid.UUID, now time.Time) *Session {
	return &Session{
		id:            uuid.New(),
		vehicleID:     vehicleID,
		lotID:         lotID,
		spaceID:       spaceID,
		spaceType:     spaceType,
		reservationID: reservationID,
		entryAt:       now,
		fee:           decimal.Zero,
		violationFee:  decimal.Zero,
		status:        StatusActive,
		paymentStatus: billing.PaymentUnpaid,
	}
}

// Snapshot carries every persisted field of a session.
type Snapshot struct {
	ID            uuid.UUID
	VehicleID     uuid.UUID
	LotID         uuid.UUID
	SpaceID       int64
	SpaceType     lot.SpaceType
	ReservationID *uuid.UUID
	EntryAt       time.Time
	ExitAt        *time.Time
	Duration      time.Duration
	Fee           decimal.Decimal
	Violation     bool
	ViolationFee  decimal.Decimal
	Status        Status
	PaymentStatus billing.PaymentStatus
	PaidAt        *time.Time
}

func Reconstruct(s Snapshot) *Session {
	return &Session{
		id:            s.ID,
		vehicleID:     s.VehicleID,
		lotID:         s.LotID,
		spaceID:       s.SpaceID,
		spaceType:     s.SpaceType,
		reservationID: s.ReservationID,
		entryAt:       s.EntryAt,
		exitAt:        s.ExitAt,
		duration:      s.Duration,
		fee:           s.Fee,
		violation:     s.Violation,
		violationFee:  s.ViolationFee,
		status:        s.Status,
		paymentStatus: s.PaymentStatus,
		paidAt:        s.PaidAt,
	}
}

func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		ID:            s.id,
		VehicleID:     s.vehicleID,
		LotID:         s.lotID,
		SpaceID:       s.spaceID,
		SpaceType:     s.spaceType,
		ReservationID: s.reservationID,
		EntryAt:       s.entryAt,
		ExitAt:        s.exitAt,
		Duration:      s.duration,
		Fee:           s.fee,
		Violation:     s.violation,
		ViolationFee:  s.violationFee,
		Status:        s.status,
		PaymentStatus: s.paymentStatus,
		PaidAt:        s.paidAt,
	}
}

// Close freezes duration and fee. A clock that went backwards yields a zero duration.
func (s *Session) Close(now time.Time, policy FeePolicy, hourlyRate decimal.Decimal) error {
	if s.status != StatusActive {
		return ErrAlreadyClosed
	}
	d := now.Sub(s.entryAt)
	if d < 0 {
		d = 0
	}
	s.exitAt = &now
	s.duration = d
	s.fee = policy.Fee(d, hourlyRate)
	s.status = StatusClosed
	if s.fee.IsZero() {
		s.paymentStatus = billing.PaymentPaid
		s.paidAt = &now
	}
	return nil
}

// FlagViolation accumulates fines attached to this session.
func (s *Session) FlagViolation(fine decimal.Decimal) {
	s.violation = true
	s.violationFee = s.violationFee.Add(fine)
}

func (s *Session) MarkPaid(now time.Time) error {
	if s.status != StatusClosed {
		return ErrNotClosed
	}
	if s.paymentStatus == billing.PaymentPaid {
		return ErrAlreadyPaid
	}
	s.paymentStatus = billing.PaymentPaid
	s.paidAt = &now
	return nil
}

// Outstanding is the parking fee still owed. Fines are settled on their own records.
func (s *Session) Outstanding() decimal.Decimal {
	if s.status != StatusClosed || s.paymentStatus == billing.PaymentPaid {
		return decimal.Zero
	}
	return s.fee
}

func (s *Session) IsActive() bool { return s.status == StatusActive }

func (s *Session) ID() uuid.UUID                        { return s.id }
func (s *Session) VehicleID() uuid.UUID                 { return s.vehicleID }
func (s *Session) LotID() uuid.UUID                     { return s.lotID }
func (s *Session) SpaceID() int64                       { return s.spaceID }
func (s *Session) SpaceType() lot.SpaceType             { return s.spaceType }
func (s *Session) ReservationID() *uuid.UUID            { return s.reservationID }
func (s *Session) EntryAt() time.Time                   { return s.entryAt }
func (s *Session) ExitAt() *time.Time                   { return s.exitAt }
func (s *Session) Duration() time.Duration              { return s.duration }
func (s *Session) Fee() decimal.Decimal                 { return s.fee }
func (s *Session) IsViolation() bool                    { return s.violation }
func (s *Session) ViolationFee() decimal.Decimal        { return s.violationFee }
func (s *Session) Status() Status                       { return s.status }
func (s *Session) PaymentStatus() billing.PaymentStatus { return s.paymentStatus }
func (s *Session) PaidAt() *time.Time                   { return s.paidAt }
