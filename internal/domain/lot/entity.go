package lot

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyLocation    = errors.New("location must not be empty")
	ErrNegativeRate     = errors.New("hourly rate must not be negative")
	ErrInvalidCapacity  = errors.New("capacity must not be negative")
	ErrNoSpaces         = errors.New("lot must have at least one space")
	ErrNameTooLong      = errors.New("name must be at most 100 characters")
	ErrInvalidIncrement = errors.New("space count must be positive")
)

const MaxNameLength = 100

type Lot struct {
	id         uuid.UUID
	name       string
	location   string
	hourlyRate decimal.Decimal
	capacities Capacities
	createdAt  time.Time
	updatedAt  time.Time
}

func NewLot(name, location string, hourlyRate decimal.Decimal, capacities Capacities, now time.Time) (*Lot, error) {
	name = strings.TrimSpace(name)
	location = strings.TrimSpace(location)
	if location == "" {
		return nil, ErrEmptyLocation
	}
	if name == "" {
		name = location
	}
	if len(name) > MaxNameLength {
		return nil, ErrNameTooLong
	}
	if hourlyRate.IsNegative() {
		return nil, ErrNegativeRate
	}
	for _, n := range capacities {
		if n < 0 {
			return nil, ErrInvalidCapacity
		}
	}
	if capacities.Total() < 1 {
		return nil, ErrNoSpaces
	}

	caps := make(Capacities, len(capacities))
	for t, n := range capacities {
		if n > 0 {
			caps[t] = n
		}
	}

	return &Lot{
		id:         uuid.New(),
		name:       name,
		location:   location,
		hourlyRate: hourlyRate.Round(2),
		capacities: caps,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func ReconstructLot(id uuid.UUID, name, location string, hourlyRate decimal.Decimal, capacities Capacities, createdAt, updatedAt time.Time) *Lot {
	return &Lot{
		id:         id,
		name:       name,
		location:   location,
		hourlyRate: hourlyRate,
		capacities: capacities,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

// AddCapacity never mutates the existing map; stored copies may share it.
func (l *Lot) AddCapacity(t SpaceType, n int, now time.Time) error {
	if n <= 0 {
		return ErrInvalidIncrement
	}
	caps := l.capacities.Clone()
	caps[t] += n
	l.capacities = caps
	l.updatedAt = now
	return nil
}

func (l *Lot) ChangeRate(rate decimal.Decimal, now time.Time) error {
	if rate.IsNegative() {
		return ErrNegativeRate
	}
	l.hourlyRate = rate.Round(2)
	l.updatedAt = now
	return nil
}

func (l *Lot) Capacity(t SpaceType) int {
	return l.capacities[t]
}

func (l *Lot) TotalCapacity() int {
	return l.capacities.Total()
}

func (l *Lot) ID() uuid.UUID               { return l.id }
func (l *Lot) Name() string                { return l.name }
func (l *Lot) Location() string            { return l.location }
func (l *Lot) HourlyRate() decimal.Decimal { return l.hourlyRate }
func (l *Lot) Capacities() Capacities      { return l.capacities.Clone() }
func (l *Lot) CreatedAt() time.Time        { return l.createdAt }
func (l *Lot) UpdatedAt() time.Time        { return l.updatedAt }
