package vehicle

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidPlate     = errors.New("license plate must be 2-16 letters, digits or '-'")
	ErrAttributeTooLong = errors.New("vehicle attributes must be at most 50 characters")
)

const maxAttributeLength = 50

var plateRegex = regexp.MustCompile(`^[A-Z0-9\-]{2,16}$`)

// NormalizePlate upper-cases the plate and removes blanks.
func NormalizePlate(s string) (string, error) {
	plate := strings.ToUpper(strings.Join(strings.Fields(s), ""))
	if !plateRegex.MatchString(plate) {
		return "", ErrInvalidPlate
	}
	return plate, nil
}

type Attributes struct {
	Brand string
	Model string
	Color string
}

func (a Attributes) normalize() (Attributes, error) {
	a.Brand = strings.TrimSpace(a.Brand)
	a.Model = strings.TrimSpace(a.Model)
	a.Color = strings.TrimSpace(a.Color)
	if len(a.Brand) > maxAttributeLength || len(a.Model) > maxAttributeLength || len(a.Color) > maxAttributeLength {
		return Attributes{}, ErrAttributeTooLong
	}
	return a, nil
}

type Vehicle struct {
	id        uuid.UUID
	ownerID   uuid.UUID
	plate     string
	attrs     Attributes
	createdAt time.Time
	updatedAt time.Time
}

func NewVehicle(ownerID uuid.UUID, plate string, attrs Attributes, now time.Time) (*Vehicle, error) {
	p, err := NormalizePlate(plate)
	if err != nil {
		return nil, err
	}
	a, err := attrs.normalize()
	if err != nil {
		return nil, err
	}
	return &Vehicle{
		id:        uuid.New(),
		ownerID:   ownerID,
		plate:     p,
		attrs:     a,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructVehicle(id, ownerID uuid.UUID, plate string, attrs Attributes, createdAt, updatedAt time.Time) *Vehicle {
	return &Vehicle{
		id:        id,
		ownerID:   ownerID,
		plate:     plate,
		attrs:     attrs,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (v *Vehicle) Update(plate string, attrs Attributes, now time.Time) error {
	p, err := NormalizePlate(plate)
	if err != nil {
		return err
	}
	a, err := attrs.normalize()
	if err != nil {
		return err
	}
	v.plate = p
	v.attrs = a
	v.updatedAt = now
	return nil
}

func (v *Vehicle) ID() uuid.UUID          { return v.id }
func (v *Vehicle) OwnerID() uuid.UUID     { return v.ownerID }
func (v *Vehicle) Plate() string          { return v.plate }
func (v *Vehicle) Attributes() Attributes { return v.attrs }
func (v *Vehicle) CreatedAt() time.Time   { return v.createdAt }
func (v *Vehicle) UpdatedAt() time.Time   { return v.updatedAt }
