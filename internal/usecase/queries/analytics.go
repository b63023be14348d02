package queries

import (
	"context"
	"maps"
	"slices"
	"time"

	"parking-engine/internal/domain/billing"
	"parking-engine/internal/pkg/errs"
	"parking-engine/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AnalyticsQueries reports per-lot statistics over a half-open window [from, to).
type AnalyticsQueries interface {
	OccupancyStats(ctx context.Context, lotID uuid.UUID, from, to time.Time) (*OccupancyStatsView, error)
	ViolationStats(ctx context.Context, lotID uuid.UUID, from, to time.Time) (*ViolationStatsView, error)
	RevenueStats(ctx context.Context, lotID uuid.UUID, from, to time.Time) (*RevenueStatsView, error)
}

type analyticsQueriesImpl struct {
	uow shared.UnitOfWork
}

func NewAnalyticsQueries(uow shared.UnitOfWork) AnalyticsQueries {
	return &analyticsQueriesImpl{uow: uow}
}

type StatsWindow struct {
	LotID uuid.UUID `json:"lot_id"`
	From  time.Time `json:"from"`
	To    time.Time `json:"to"`
}

type TypeUsageView struct {
	Total     int    `json:"total"`
	Used      int    `json:"used"`
	UsageRate string `json:"usage_rate"`
}

type HourCountView struct {
	Hour    int `json:"hour"`
	Entries int `json:"entries"`
}

type OccupancyStatsView struct {
	StatsWindow
	TotalSpaces          int                      `json:"total_spaces"`
	UsedSpaces           int                      `json:"used_spaces"`
	UsageRate            string                   `json:"usage_rate"`
	Sessions             int                      `json:"sessions"`
	AvgParkingHours      string                   `json:"avg_parking_hours"`
	ReservationsByStatus map[string]int           `json:"reservations_by_status"`
	ByType               map[string]TypeUsageView `json:"by_type"`
	// PeakHours counts entries per UTC hour of day, all 24 hours present.
	PeakHours []HourCountView `json:"peak_hours"`
}

type ViolationStatsView struct {
	StatsWindow
	Total            int            `json:"total"`
	ByType           map[string]int `json:"by_type"`
	ByStatus         map[string]int `json:"by_status"`
	TotalFines       string         `json:"total_fines"`
	CollectedFines   string         `json:"collected_fines"`
	OutstandingFines string         `json:"outstanding_fines"`
}

type MonthlyRevenueView struct {
	Month        string `json:"month"`
	Parking      string `json:"parking"`
	Reservations string `json:"reservations"`
	Fines        string `json:"fines"`
	Total        string `json:"total"`
}

type RevenueStatsView struct {
	StatsWindow
	Parking      string               `json:"parking"`
	Reservations string               `json:"reservations"`
	Fines        string               `json:"fines"`
	Total        string               `json:"total"`
	Payments     int                  `json:"payments"`
	Monthly      []MonthlyRevenueView `json:"monthly"`
}

func percent(part, whole int) string {
	if whole == 0 {
		return money(decimal.Zero)
	}
	return money(decimal.NewFromInt(int64(part)).Mul(decimal.NewFromInt(100)).Div(decimal.NewFromInt(int64(whole))))
}

// within opens a read-only transaction after checking the window and the lot.
func (q *analyticsQueriesImpl) within(ctx context.Context, lotID uuid.UUID, from, to time.Time, fn func(ctx context.Context, tx shared.Tx) error) error {
	if !to.After(from) {
		return errs.Wrapf(errs.ErrInvalidInterval, "window end %s is not after start %s", to, from)
	}
	return q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Lots().FindByID(ctx, lotID); err != nil {
			return readErr(err, "find lot")
		}
		return fn(ctx, tx)
	})
}

func (q *analyticsQueriesImpl) OccupancyStats(ctx context.Context, lotID uuid.UUID, from, to time.Time) (*OccupancyStatsView, error) {
	var view *OccupancyStatsView
	err := q.within(ctx, lotID, from, to, func(ctx context.Context, tx shared.Tx) error {
		spaces, err := tx.Spaces().ListByLot(ctx, lotID)
		if err != nil {
			return readErr(err, "list spaces")
		}
		sessions, err := tx.Sessions().ListByLotBetween(ctx, lotID, from, to)
		if err != nil {
			return readErr(err, "list sessions")
		}
		orders, err := tx.Bookings().ListByLotBetween(ctx, lotID, from, to)
		if err != nil {
			return readErr(err, "list reservations")
		}

		used := make(map[int64]bool)
		peak := make([]HourCountView, 24)
		for h := range peak {
			peak[h].Hour = h
		}
		var closed int
		hours := decimal.Zero
		for _, s := range sessions {
			used[s.SpaceID()] = true
			if !s.EntryAt().Before(from) {
				peak[s.EntryAt().UTC().Hour()].Entries++
			}
			if s.ExitAt() != nil {
				closed++
				hours = hours.Add(decimal.NewFromInt(int64(s.Duration())).Div(decimal.NewFromInt(int64(time.Hour))))
			}
		}
		avg := decimal.Zero
		if closed > 0 {
			avg = hours.Div(decimal.NewFromInt(int64(closed)))
		}

		byType := make(map[string]TypeUsageView)
		for _, sp := range spaces {
			u := byType[sp.SpaceType().String()]
			u.Total++
			if used[sp.ID()] {
				u.Used++
			}
			byType[sp.SpaceType().String()] = u
		}
		for t, u := range byType {
			u.UsageRate = percent(u.Used, u.Total)
			byType[t] = u
		}

		reservations := make(map[string]int)
		for _, o := range orders {
			reservations[string(o.Status())]++
		}

		view = &OccupancyStatsView{
			StatsWindow:          StatsWindow{LotID: lotID, From: from, To: to},
			TotalSpaces:          len(spaces),
			UsedSpaces:           len(used),
			UsageRate:            percent(len(used), len(spaces)),
			Sessions:             len(sessions),
			AvgParkingHours:      money(avg),
			ReservationsByStatus: reservations,
			ByType:               byType,
			PeakHours:            peak,
		}
		return nil
	})
	return view, err
}

func (q *analyticsQueriesImpl) ViolationStats(ctx context.Context, lotID uuid.UUID, from, to time.Time) (*ViolationStatsView, error) {
	var view *ViolationStatsView
	err := q.within(ctx, lotID, from, to, func(ctx context.Context, tx shared.Tx) error {
		rows, err := tx.Violations().ListByLotDetectedBetween(ctx, lotID, from, to)
		if err != nil {
			return readErr(err, "list violations")
		}
		byType := make(map[string]int)
		byStatus := make(map[string]int)
		total, collected := decimal.Zero, decimal.Zero
		for _, v := range rows {
			byType[string(v.Type())]++
			byStatus[string(v.Status())]++
			total = total.Add(v.Fine())
			if v.IsPaid() {
				collected = collected.Add(v.Fine())
			}
		}
		view = &ViolationStatsView{
			StatsWindow:      StatsWindow{LotID: lotID, From: from, To: to},
			Total:            len(rows),
			ByType:           byType,
			ByStatus:         byStatus,
			TotalFines:       money(total),
			CollectedFines:   money(collected),
			OutstandingFines: money(total.Sub(collected)),
		}
		return nil
	})
	return view, err
}

type revenue struct {
	parking, reservations, fines decimal.Decimal
}

func (r *revenue) add(p *billing.Payment) {
	switch p.TargetType() {
	case billing.TargetSession:
		r.parking = r.parking.Add(p.Amount())
	case billing.TargetReservation:
		r.reservations = r.reservations.Add(p.Amount())
	case billing.TargetViolation:
		r.fines = r.fines.Add(p.Amount())
	}
}

func (r revenue) total() decimal.Decimal {
	return r.parking.Add(r.reservations).Add(r.fines)
}

func (q *analyticsQueriesImpl) RevenueStats(ctx context.Context, lotID uuid.UUID, from, to time.Time) (*RevenueStatsView, error) {
	var view *RevenueStatsView
	err := q.within(ctx, lotID, from, to, func(ctx context.Context, tx shared.Tx) error {
		rows, err := tx.Payments().ListByLotPaidBetween(ctx, lotID, from, to)
		if err != nil {
			return readErr(err, "list payments")
		}
		var sum revenue
		months := make(map[string]*revenue)
		count := 0
		for _, p := range rows {
			if p.Status() != billing.PaymentSucceeded {
				continue
			}
			count++
			sum.add(p)
			key := p.PaidAt().UTC().Format("2006-01")
			m, ok := months[key]
			if !ok {
				m = &revenue{}
				months[key] = m
			}
			m.add(p)
		}

		monthly := make([]MonthlyRevenueView, 0, len(months))
		for _, key := range slices.Sorted(maps.Keys(months)) {
			m := months[key]
			monthly = append(monthly, MonthlyRevenueView{
				Month:        key,
				Parking:      money(m.parking),
				Reservations: money(m.reservations),
				Fines:        money(m.fines),
				Total:        money(m.total()),
			})
		}
		view = &RevenueStatsView{
			StatsWindow:  StatsWindow{LotID: lotID, From: from, To: to},
			Parking:      money(sum.parking),
			Reservations: money(sum.reservations),
			Fines:        money(sum.fines),
			Total:        money(sum.total()),
			Payments:     count,
			Monthly:      monthly,
		}
		return nil
	})
	return view, err
}
