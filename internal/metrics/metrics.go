package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chiMid "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "hostup"

// SiteMetrics exposes counters for the wizard, chat and forms, plus request
// latency per route.
type SiteMetrics struct {
	bookingTransitions *prometheus.CounterVec
	bookingSubmissions *prometheus.CounterVec
	chatReplies        *prometheus.CounterVec
	contactSubmissions *prometheus.CounterVec
	validationFailures *prometheus.CounterVec
	requestDuration    *prometheus.HistogramVec
}

func NewSiteMetrics(reg prometheus.Registerer) *SiteMetrics {
	m := &SiteMetrics{
		bookingTransitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "booking",
			Name:      "transitions_total",
			Help:      "Consultation wizard actions by outcome",
		}, []string{"action", "result"}),
		bookingSubmissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "booking",
			Name:      "submissions_total",
			Help:      "Consultation schedule attempts by outcome",
		}, []string{"result"}),
		chatReplies: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "chat",
			Name:      "replies_total",
			Help:      "Chat replies by selection path and topic",
		}, []string{"path", "topic"}),
		contactSubmissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "contact",
			Name:      "submissions_total",
			Help:      "Contact form submissions by outcome",
		}, []string{"result"}),
		validationFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "form",
			Name:      "validation_failures_total",
			Help:      "Inline field validation failures",
		}, []string{"field"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Latency of HTTP requests by route",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method", "status"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(
		m.bookingTransitions,
		m.bookingSubmissions,
		m.chatReplies,
		m.contactSubmissions,
		m.validationFailures,
		m.requestDuration,
	)
	return m
}

func (m *SiteMetrics) ObserveBookingTransition(action string, err error) {
	if m == nil {
		return
	}
	m.bookingTransitions.WithLabelValues(action, result(err)).Inc()
}

func (m *SiteMetrics) ObserveBookingSubmission(err error) {
	if m == nil {
		return
	}
	m.bookingSubmissions.WithLabelValues(result(err)).Inc()
}

func (m *SiteMetrics) ObserveChatReply(path, topic string) {
	if m == nil {
		return
	}
	m.chatReplies.WithLabelValues(path, topic).Inc()
}

func (m *SiteMetrics) ObserveContactSubmission(ok bool) {
	if m == nil {
		return
	}
	label := "invalid"
	if ok {
		label = "ok"
	}
	m.contactSubmissions.WithLabelValues(label).Inc()
}

func (m *SiteMetrics) ObserveValidationFailure(field string) {
	if m == nil {
		return
	}
	m.validationFailures.WithLabelValues(field).Inc()
}

// Middleware records request latency labelled by the matched chi route
// pattern, keeping label cardinality bounded.
func (m *SiteMetrics) Middleware(next http.Handler) http.Handler {
	if m == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chiMid.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		route := "unmatched"
		if rc := chi.RouteContext(r.Context()); rc != nil {
			if p := rc.RoutePattern(); p != "" {
				route = p
			}
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		m.requestDuration.WithLabelValues(route, r.Method, strconv.Itoa(status)).Observe(time.Since(start).Seconds())
	})
}

func result(err error) string {
	if err != nil {
		return "rejected"
	}
	return "ok"
}
