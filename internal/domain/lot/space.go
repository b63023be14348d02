package lot

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrSpaceOccupied    = errors.New("space is already occupied")
	ErrSpaceNotOccupied = errors.New("space is not occupied")
)

type Space struct {
	id        int64
	lotID     uuid.UUID
	spaceType SpaceType
	label     string
	occupied  bool
	updatedAt time.Time
}

// NewSpace builds an unsaved space; the store assigns its id.
func NewSpace(lotID uuid.UUID, t SpaceType, seq int, now time.Time) *Space {
	return &Space{
		lotID:     lotID,
		spaceType: t,
		label:     Label(t, seq),
		updatedAt: now,
	}
}

func ReconstructSpace(id int64, lotID uuid.UUID, t SpaceType, label string, occupied bool, updatedAt time.Time) *Space {
	return &Space{
		id:        id,
		lotID:     lotID,
		spaceType: t,
		label:     label,
		occupied:  occupied,
		updatedAt: updatedAt,
	}
}

func Label(t SpaceType, seq int) string {
	return fmt.Sprintf("%s-%03d", strings.ToUpper(string(t)), seq)
}

func (s *Space) Occupy(now time.Time) error {
	if s.occupied {
		return ErrSpaceOccupied
	}
	s.occupied = true
	s.updatedAt = now
	return nil
}

func (s *Space) Release(now time.Time) error {
	if !s.occupied {
		return ErrSpaceNotOccupied
	}
	s.occupied = false
	s.updatedAt = now
	return nil
}

func (s *Space) ID() int64            { return s.id }
func (s *Space) LotID() uuid.UUID     { return s.lotID }
func (s *Space) SpaceType() SpaceType { return s.spaceType }
func (s *Space) Label() string        { return s.label }
func (s *Space) IsOccupied() bool     { return s.occupied }
func (s *Space) UpdatedAt() time.Time { return s.updatedAt }

// PickFree returns the free space of type t with the lowest id.
func PickFree(spaces []*Space, t SpaceType) (*Space, bool) {
	var best *Space
	for _, s := range spaces {
		if s.spaceType != t || s.occupied {
			continue
		}
		if best == nil || s.id < best.id {
			best = s
		}
	}
	return best, best != nil
}

// CountOfType counts every space of type t, occupied or not.
func CountOfType(spaces []*Space, t SpaceType) int {
	n := 0
	for _, s := range spaces {
		if s.spaceType == t {
			n++
		}
	}
	return n
}
