package metrics

import (
	"net/http"
	"time"

	"parking-engine/internal/domain/billing"
	"parking-engine/internal/domain/lot"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shopspring/decimal"
)

const namespace = "parking"

// Metrics records engine and HTTP events on its own registry.
type Metrics struct {
	registry *prometheus.Registry

	sessionsOpened  *prometheus.CounterVec
	sessionsClosed  *prometheus.CounterVec
	sessionDuration prometheus.Histogram
	feesCharged     prometheus.Counter
	entryRejections *prometheus.CounterVec

	bookingsCreated    *prometheus.CounterVec
	bookingRejections  *prometheus.CounterVec
	bookingTransitions *prometheus.CounterVec

	violations     *prometheus.CounterVec
	finesAssessed  *prometheus.CounterVec
	paymentsTotal  *prometheus.CounterVec
	paymentsAmount *prometheus.CounterVec

	occupied *prometheus.GaugeVec
	capacity *prometheus.GaugeVec

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	f := promauto.With(reg)

	return &Metrics{
		registry: reg,

		sessionsOpened: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sessions_opened_total",
			Help:      "Parking sessions opened per lot and space type",
		}, []string{"lot_id", "space_type"}),
		sessionsClosed: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sessions_closed_total",
			Help:      "Parking sessions closed per lot",
		}, []string{"lot_id"}),
		sessionDuration: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "session_duration_seconds",
			Help:      "Length of closed parking sessions",
			Buckets:   prometheus.ExponentialBuckets(300, 2, 10),
		}),
		feesCharged: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "session_fees_total",
			Help:      "Sum of parking fees charged at exit",
		}),
		entryRejections: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "entry_rejections_total",
			Help:      "Refused entries by reason",
		}, []string{"reason"}),

		bookingsCreated: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bookings_created_total",
			Help:      "Reservations confirmed per lot and space type",
		}, []string{"lot_id", "space_type"}),
		bookingRejections: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "booking_rejections_total",
			Help:      "Refused reservations by reason",
		}, []string{"reason"}),
		bookingTransitions: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "booking_transitions_total",
			Help:      "Reservation status changes by target status",
		}, []string{"status"}),

		violations: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "violations_total",
			Help:      "Violations recorded by type",
		}, []string{"type"}),
		finesAssessed: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "fines_assessed_total",
			Help:      "Sum of fines assessed by violation type",
		}, []string{"type"}),
		paymentsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "payments_total",
			Help:      "Settled payments by target type",
		}, []string{"target_type"}),
		paymentsAmount: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "payments_amount_total",
			Help:      "Sum of settled amounts by target type",
		}, []string{"target_type"}),

		occupied: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "lot_occupied_spaces",
			Help:      "Occupied spaces per lot and space type",
		}, []string{"lot_id", "space_type"}),
		capacity: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "lot_capacity_spaces",
			Help:      "Total spaces per lot and space type",
		}, []string{"lot_id", "space_type"}),

		httpRequests: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status",
		}, []string{"method", "route", "status"}),
		httpDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func amount(d decimal.Decimal) float64 {
	f, _ := d.Float64()
	return f
}

func (m *Metrics) SessionOpened(lotID uuid.UUID, spaceType lot.SpaceType) {
	m.sessionsOpened.WithLabelValues(lotID.String(), spaceType.String()).Inc()
}

func (m *Metrics) SessionClosed(lotID uuid.UUID, duration time.Duration, fee decimal.Decimal) {
	m.sessionsClosed.WithLabelValues(lotID.String()).Inc()
	m.sessionDuration.Observe(duration.Seconds())
	m.feesCharged.Add(amount(fee))
}

func (m *Metrics) EntryRejected(reason string) {
	m.entryRejections.WithLabelValues(reason).Inc()
}

func (m *Metrics) BookingCreated(lotID uuid.UUID, spaceType lot.SpaceType) {
	m.bookingsCreated.WithLabelValues(lotID.String(), spaceType.String()).Inc()
}

func (m *Metrics) BookingRejected(reason string) {
	m.bookingRejections.WithLabelValues(reason).Inc()
}

func (m *Metrics) BookingTransition(status string) {
	m.bookingTransitions.WithLabelValues(status).Inc()
}

func (m *Metrics) ViolationRecorded(vt billing.ViolationType, fine decimal.Decimal) {
	m.violations.WithLabelValues(string(vt)).Inc()
	m.finesAssessed.WithLabelValues(string(vt)).Add(amount(fine))
}

func (m *Metrics) PaymentSettled(target billing.TargetType, value decimal.Decimal) {
	m.paymentsTotal.WithLabelValues(string(target)).Inc()
	m.paymentsAmount.WithLabelValues(string(target)).Add(amount(value))
}

func (m *Metrics) OccupancyChanged(lotID uuid.UUID, occ lot.Occupancy) {
	for t, o := range occ {
		m.occupied.WithLabelValues(lotID.String(), t.String()).Set(float64(o.Occupied))
		m.capacity.WithLabelValues(lotID.String(), t.String()).Set(float64(o.Total))
	}
}

// ObserveRequest is called by the HTTP middleware once per request.
func (m *Metrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	m.httpRequests.WithLabelValues(method, route, statusClass(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func statusClass(status int) string {
	switch {
	case status >= 500:
		return "5xx"
	case status >= 400:
		return "4xx"
	case status >= 300:
		return "3xx"
	default:
		return "2xx"
	}
}
