package queries

import (
	"time"

	"parking-engine/internal/domain/billing"
	"parking-engine/internal/domain/booking"
	"parking-engine/internal/domain/lot"
	"parking-engine/internal/domain/session"
	"parking-engine/internal/domain/user"
	"parking-engine/internal/domain/vehicle"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Views are the read-side shapes returned to the API. Money is a fixed two-decimal string.

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

type OccupancyView struct {
	Occupied int `json:"occupied"`
	Total    int `json:"total"`
	Free     int `json:"free"`
}

func NewOccupancyView(occ lot.Occupancy) map[string]OccupancyView {
	out := make(map[string]OccupancyView, len(occ))
	for t, o := range occ {
		out[t.String()] = OccupancyView{Occupied: o.Occupied, Total: o.Total, Free: o.Free()}
	}
	return out
}

type LotView struct {
	ID            uuid.UUID                `json:"id"`
	Name          string                   `json:"name"`
	Location      string                   `json:"location"`
	HourlyRate    string                   `json:"hourly_rate"`
	Capacities    map[string]int           `json:"capacities"`
	TotalCapacity int                      `json:"total_capacity"`
	Occupancy     map[string]OccupancyView `json:"occupancy"`
	CreatedAt     time.Time                `json:"created_at"`
	UpdatedAt     time.Time                `json:"updated_at"`
}

func NewLotView(l *lot.Lot, occ lot.Occupancy) *LotView {
	caps := make(map[string]int)
	for t, n := range l.Capacities() {
		caps[t.String()] = n
	}
	return &LotView{
		ID:            l.ID(),
		Name:          l.Name(),
		Location:      l.Location(),
		HourlyRate:    money(l.HourlyRate()),
		Capacities:    caps,
		TotalCapacity: l.TotalCapacity(),
		Occupancy:     NewOccupancyView(occ),
		CreatedAt:     l.CreatedAt(),
		UpdatedAt:     l.UpdatedAt(),
	}
}

type SpaceView struct {
	ID        int64     `json:"id"`
	LotID     uuid.UUID `json:"lot_id"`
	SpaceType string    `json:"space_type"`
	Label     string    `json:"label"`
	Occupied  bool      `json:"occupied"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewSpaceView(s *lot.Space) *SpaceView {
	return &SpaceView{
		ID:        s.ID(),
		LotID:     s.LotID(),
		SpaceType: s.SpaceType().String(),
		Label:     s.Label(),
		Occupied:  s.IsOccupied(),
		UpdatedAt: s.UpdatedAt(),
	}
}

type SessionView struct {
	ID            uuid.UUID  `json:"id"`
	VehicleID     uuid.UUID  `json:"vehicle_id"`
	LotID         uuid.UUID  `json:"lot_id"`
	SpaceID       int64      `json:"space_id"`
	SpaceType     string     `json:"space_type"`
	ReservationID *uuid.UUID `json:"reservation_id,omitempty"`
	EntryAt       time.Time  `json:"entry_at"`
	ExitAt        *time.Time `json:"exit_at,omitempty"`
	DurationSec   int64      `json:"duration_seconds"`
	Fee           string     `json:"fee"`
	IsViolation   bool       `json:"is_violation"`
	ViolationFee  string     `json:"violation_fee"`
	Status        string     `json:"status"`
	PaymentStatus string     `json:"payment_status"`
	PaidAt        *time.Time `json:"paid_at,omitempty"`
}

func NewSessionView(s *session.Session) *SessionView {
	return &SessionView{
		ID:            s.ID(),
		VehicleID:     s.VehicleID(),
		LotID:         s.LotID(),
		SpaceID:       s.SpaceID(),
		SpaceType:     s.SpaceType().String(),
		ReservationID: s.ReservationID(),
		EntryAt:       s.EntryAt(),
		ExitAt:        s.ExitAt(),
		DurationSec:   int64(s.Duration().Seconds()),
		Fee:           money(s.Fee()),
		IsViolation:   s.IsViolation(),
		ViolationFee:  money(s.ViolationFee()),
		Status:        string(s.Status()),
		PaymentStatus: string(s.PaymentStatus()),
		PaidAt:        s.PaidAt(),
	}
}

type BookingView struct {
	ID            uuid.UUID  `json:"id"`
	Code          string     `json:"code"`
	UserID        uuid.UUID  `json:"user_id"`
	VehicleID     uuid.UUID  `json:"vehicle_id"`
	LotID         uuid.UUID  `json:"lot_id"`
	SpaceType     string     `json:"space_type"`
	StartTime     time.Time  `json:"start_time"`
	EndTime       time.Time  `json:"end_time"`
	Status        string     `json:"status"`
	Fee           string     `json:"fee"`
	PaymentStatus string     `json:"payment_status"`
	SessionID     *uuid.UUID `json:"session_id,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func NewBookingView(o *booking.Order) *BookingView {
	return &BookingView{
		ID:            o.ID(),
		Code:          o.Code(),
		UserID:        o.UserID(),
		VehicleID:     o.VehicleID(),
		LotID:         o.LotID(),
		SpaceType:     o.SpaceType().String(),
		StartTime:     o.Slot().Start(),
		EndTime:       o.Slot().End(),
		Status:        string(o.Status()),
		Fee:           money(o.Fee()),
		PaymentStatus: string(o.PaymentStatus()),
		SessionID:     o.SessionID(),
		CreatedAt:     o.CreatedAt(),
		UpdatedAt:     o.UpdatedAt(),
	}
}

type ViolationView struct {
	ID            uuid.UUID  `json:"id"`
	SessionID     *uuid.UUID `json:"session_id,omitempty"`
	ReservationID *uuid.UUID `json:"reservation_id,omitempty"`
	ParentID      *uuid.UUID `json:"parent_id,omitempty"`
	VehicleID     uuid.UUID  `json:"vehicle_id"`
	LotID         uuid.UUID  `json:"lot_id"`
	Type          string     `json:"type"`
	Description   string     `json:"description"`
	Fine          string     `json:"fine"`
	Status        string     `json:"status"`
	DetectedAt    time.Time  `json:"detected_at"`
	PaidAt        *time.Time `json:"paid_at,omitempty"`
}

func NewViolationView(v *billing.Violation) *ViolationView {
	return &ViolationView{
		ID:            v.ID(),
		SessionID:     v.SessionID(),
		ReservationID: v.ReservationID(),
		ParentID:      v.ParentID(),
		VehicleID:     v.VehicleID(),
		LotID:         v.LotID(),
		Type:          string(v.Type()),
		Description:   v.Description(),
		Fine:          money(v.Fine()),
		Status:        string(v.Status()),
		DetectedAt:    v.DetectedAt(),
		PaidAt:        v.PaidAt(),
	}
}

type PaymentView struct {
	ID            uuid.UUID `json:"id"`
	TargetID      uuid.UUID `json:"target_id"`
	TargetType    string    `json:"target_type"`
	LotID         uuid.UUID `json:"lot_id"`
	Amount        string    `json:"amount"`
	Method        string    `json:"method"`
	Status        string    `json:"status"`
	TransactionNo string    `json:"transaction_no"`
	PaidAt        time.Time `json:"paid_at"`
}

func NewPaymentView(p *billing.Payment) *PaymentView {
	return &PaymentView{
		ID:            p.ID(),
		TargetID:      p.TargetID(),
		TargetType:    string(p.TargetType()),
		LotID:         p.LotID(),
		Amount:        money(p.Amount()),
		Method:        string(p.Method()),
		Status:        string(p.Status()),
		TransactionNo: p.TransactionNo(),
		PaidAt:        p.PaidAt(),
	}
}

type VehicleView struct {
	ID        uuid.UUID `json:"id"`
	OwnerID   uuid.UUID `json:"owner_id"`
	Plate     string    `json:"plate"`
	Brand     string    `json:"brand,omitempty"`
	Model     string    `json:"model,omitempty"`
	Color     string    `json:"color,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewVehicleView(v *vehicle.Vehicle) *VehicleView {
	attrs := v.Attributes()
	return &VehicleView{
		ID:        v.ID(),
		OwnerID:   v.OwnerID(),
		Plate:     v.Plate(),
		Brand:     attrs.Brand,
		Model:     attrs.Model,
		Color:     attrs.Color,
		CreatedAt: v.CreatedAt(),
		UpdatedAt: v.UpdatedAt(),
	}
}

// UserView never carries the password hash.
type UserView struct {
	ID        uuid.UUID  `json:"id"`
	Username  string     `json:"username"`
	Phone     string     `json:"phone,omitempty"`
	Role      string     `json:"role"`
	LotID     *uuid.UUID `json:"lot_id,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

func NewUserView(u *user.User) *UserView {
	return &UserView{
		ID:        u.ID(),
		Username:  u.Username(),
		Phone:     u.Phone(),
		Role:      u.Role().String(),
		LotID:     u.LotID(),
		CreatedAt: u.CreatedAt(),
	}
}

func mapViews[E any, V any](rows []*E, conv func(*E) *V) []*V {
	out := make([]*V, 0, len(rows))
	for _, r := range rows {
		out = append(out, conv(r))
	}
	return out
}
