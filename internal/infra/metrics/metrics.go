// Package metrics exposes business and HTTP counters to Prometheus.
package metrics

import (
	"strconv"

	"gazexpress/internal/domain/entity"
	"gazexpress/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
)

// Recorder implements service.MetricsRecorder on Prometheus collectors.
type Recorder struct {
	ordersCreated      prometheus.Counter
	orderTransitions   *prometheus.CounterVec
	couriersAssigned   prometheus.Counter
	approvals          *prometheus.CounterVec
	registrations      *prometheus.CounterVec
	httpRequestsTotal  *prometheus.CounterVec
	httpRequestLatency *prometheus.HistogramVec
}

// NewRecorder builds the collectors and registers them on reg.
func NewRecorder(reg prometheus.Registerer) (*Recorder, error) {
	r := &Recorder{
		ordersCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "gazexpress_orders_created_total",
			Help: "Total number of orders placed",
		}),
		orderTransitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "gazexpress_order_status_transitions_total",
			Help: "Total number of order status changes",
		}, []string{"from", "to"}),
		couriersAssigned: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "gazexpress_courier_assignments_total",
			Help: "Total number of courier assignments",
		}),
		approvals: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "gazexpress_approval_decisions_total",
			Help: "Total number of account approval decisions",
		}, []string{"role", "approved"}),
		registrations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "gazexpress_registrations_total",
			Help: "Total number of self-registrations",
		}, []string{"role"}),
		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"method", "path", "status"}),
		httpRequestLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path", "status"}),
	}

	collectors := []prometheus.Collector{
		r.ordersCreated,
		r.orderTransitions,
		r.couriersAssigned,
		r.approvals,
		r.registrations,
		r.httpRequestsTotal,
		r.httpRequestLatency,
	}
	for _, c := range collectors {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// NewMetricsRecorder exposes the Recorder as the domain interface.
func NewMetricsRecorder(r *Recorder) service.MetricsRecorder {
	return r
}

func (r *Recorder) OrderCreated() {
	r.ordersCreated.Inc()
}

func (r *Recorder) OrderStatusChanged(from, to entity.OrderStatus) {
	r.orderTransitions.WithLabelValues(string(from), string(to)).Inc()
}

func (r *Recorder) CourierAssigned() {
	r.couriersAssigned.Inc()
}

func (r *Recorder) ApprovalDecided(role entity.Role, approved bool) {
	r.approvals.WithLabelValues(role.String(), strconv.FormatBool(approved)).Inc()
}

func (r *Recorder) AccountRegistered(role entity.Role) {
	r.registrations.WithLabelValues(role.String()).Inc()
}

// ObserveHTTP records one served request. path must be the route pattern.
func (r *Recorder) ObserveHTTP(method, path string, status int, seconds float64) {
	code := strconv.Itoa(status)
	r.httpRequestsTotal.WithLabelValues(method, path, code).Inc()
	r.httpRequestLatency.WithLabelValues(method, path, code).Observe(seconds)
}

// Nop discards every event.
type Nop struct{}

func (Nop) OrderCreated()                              {}
func (Nop) OrderStatusChanged(_, _ entity.OrderStatus) {}
func (Nop) CourierAssigned()                           {}
func (Nop) ApprovalDecided(_ entity.Role, _ bool)      {}
func (Nop) AccountRegistered(_ entity.Role)            {}
