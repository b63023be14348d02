package booking

import (
	"errors"
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

var ErrInvalidInterval = errors.New("end time must be after start time")

// TimeSlot is the half-open interval [start, end).
type TimeSlot struct {
	start time.Time
	end   time.Time
}

func NewTimeSlot(start, end time.Time) (TimeSlot, error) {
	if !end.After(start) {
		return TimeSlot{}, ErrInvalidInterval
	}
	return TimeSlot{start: start, end: end}, nil
}

func (ts TimeSlot) Start() time.Time { return ts.start }
func (ts TimeSlot) End() time.Time   { return ts.end }

func (ts TimeSlot) Duration() time.Duration {
	return ts.end.Sub(ts.start)
}

// Overlaps uses half-open semantics: [10,11) and [11,12) do not overlap.
func (ts TimeSlot) Overlaps(o TimeSlot) bool {
	return ts.start.Before(o.end) && o.start.Before(ts.end)
}

func (ts TimeSlot) Contains(t time.Time) bool {
	return !t.Before(ts.start) && t.Before(ts.end)
}

// Fee prices the slot at hourlyRate without unit rounding, to the cent.
func (ts TimeSlot) Fee(hourlyRate decimal.Decimal) decimal.Decimal {
	seconds := decimal.NewFromInt(int64(ts.Duration() / time.Second))
	return seconds.Div(decimal.NewFromInt(3600)).Mul(hourlyRate).Round(2)
}

// PeakConcurrency returns the largest number of slots that are simultaneously
// active at any instant inside window.
func PeakConcurrency(slots []TimeSlot, window TimeSlot) int {
	type edge struct {
		at    time.Time
		delta int
	}
	edges := make([]edge, 0, len(slots)*2)
	for _, s := range slots {
		if !s.Overlaps(window) {
			continue
		}
		start, end := s.start, s.end
		if start.Before(window.start) {
			start = window.start
		}
		if end.After(window.end) {
			end = window.end
		}
		edges = append(edges, edge{at: start, delta: 1}, edge{at: end, delta: -1})
	}
	// Ends sort before starts at the same instant so back-to-back slots never stack.
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].at.Equal(edges[j].at) {
			return edges[i].delta < edges[j].delta
		}
		return edges[i].at.Before(edges[j].at)
	})

	peak, current := 0, 0
	for _, e := range edges {
		current += e.delta
		if current > peak {
			peak = current
		}
	}
	return peak
}
