package lot

import (
	"errors"
	"regexp"
	"sort"
	"strings"
)

var ErrInvalidSpaceType = errors.New("space type must match [a-z0-9_-]{1,32}")

// SpaceType is a normalised tag such as "standard", "ev" or "disabled".
type SpaceType string

const DefaultSpaceType SpaceType = "standard"

var spaceTypeRegex = regexp.MustCompile(`^[a-z0-9_-]{1,32}$`)

// NewSpaceType normalises s; blank input means DefaultSpaceType.
func NewSpaceType(s string) (SpaceType, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return DefaultSpaceType, nil
	}
	if !spaceTypeRegex.MatchString(s) {
		return "", ErrInvalidSpaceType
	}
	return SpaceType(s), nil
}

func (t SpaceType) String() string {
	return string(t)
}

// Capacities maps each space type to its number of spaces.
type Capacities map[SpaceType]int

func (c Capacities) Total() int {
	total := 0
	for _, n := range c {
		total += n
	}
	return total
}

func (c Capacities) Types() []SpaceType {
	types := make([]SpaceType, 0, len(c))
	for t := range c {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}

func (c Capacities) Clone() Capacities {
	out := make(Capacities, len(c))
	for t, n := range c {
		out[t] = n
	}
	return out
}

type TypeOccupancy struct {
	Occupied int
	Total    int
}

func (o TypeOccupancy) Free() int {
	return o.Total - o.Occupied
}

// Occupancy is a read-only snapshot of a lot, keyed by space type.
type Occupancy map[SpaceType]TypeOccupancy

// Tally builds an Occupancy from the lot's spaces.
func Tally(spaces []*Space) Occupancy {
	occ := make(Occupancy)
	for _, s := range spaces {
		o := occ[s.SpaceType()]
		o.Total++
		if s.IsOccupied() {
			o.Occupied++
		}
		occ[s.SpaceType()] = o
	}
	return occ
}

// Types lists the space types in name order.
func (o Occupancy) Types() []SpaceType {
	types := make([]SpaceType, 0, len(o))
	for t := range o {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}
