package metrics

import (
	"time"

	prom "github.com/prometheus/client_golang/prometheus"

	"git.home.luguber.info/inful/sitenav/internal/site"
)

const namespace = "sitenav"

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	loads              *prom.CounterVec
	validationFailures *prom.CounterVec
	loadDuration       prom.Histogram
	navEntries         *prom.GaugeVec
	sidebarDepth       prom.Gauge
	linkProblems       prom.Gauge
}

// NewPrometheusRecorder constructs the metrics and registers them with reg.
// A nil reg gets a fresh registry.
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{
		loads: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "config_loads_total",
			Help:      "Configuration loads by result",
		}, []string{"result"}),
		validationFailures: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "config_validation_failures_total",
			Help:      "Rejected configurations by error category",
		}, []string{"category"}),
		loadDuration: prom.NewHistogram(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "config_load_duration_seconds",
			Help:      "Duration of configuration load and validation",
			Buckets:   prom.DefBuckets,
		}),
		navEntries: prom.NewGaugeVec(prom.GaugeOpts{
			Namespace: namespace,
			Name:      "nav_entries",
			Help:      "Entries in the current navigation model by kind",
		}, []string{"kind"}),
		sidebarDepth: prom.NewGauge(prom.GaugeOpts{
			Namespace: namespace,
			Name:      "sidebar_depth",
			Help:      "Nesting depth of the current sidebar",
		}),
		linkProblems: prom.NewGauge(prom.GaugeOpts{
			Namespace: namespace,
			Name:      "link_problems",
			Help:      "Navigation links without a matching document in the last check",
		}),
	}
	reg.MustRegister(pr.loads, pr.validationFailures, pr.loadDuration, pr.navEntries, pr.sidebarDepth, pr.linkProblems)
	return pr
}

func (p *PrometheusRecorder) IncLoad(result ResultLabel) {
	if p == nil || p.loads == nil {
		return
	}
	p.loads.WithLabelValues(string(result)).Inc()
}

func (p *PrometheusRecorder) IncValidationFailure(category string) {
	if p == nil || p.validationFailures == nil {
		return
	}
	p.validationFailures.WithLabelValues(category).Inc()
}

func (p *PrometheusRecorder) ObserveLoadDuration(d time.Duration) {
	if p == nil || p.loadDuration == nil {
		return
	}
	p.loadDuration.Observe(d.Seconds())
}

func (p *PrometheusRecorder) SetNavStats(s site.Stats) {
	if p == nil || p.navEntries == nil {
		return
	}
	p.navEntries.WithLabelValues("nav").Set(float64(s.NavItems))
	p.navEntries.WithLabelValues("sidebar_group").Set(float64(s.SidebarGroups))
	p.navEntries.WithLabelValues("sidebar_link").Set(float64(s.SidebarLinks))
	p.navEntries.WithLabelValues("social").Set(float64(s.SocialLinks))
	p.sidebarDepth.Set(float64(s.SidebarDepth))
}

func (p *PrometheusRecorder) SetLinkProblems(n int) {
	if p == nil || p.linkProblems == nil {
		return
	}
	p.linkProblems.Set(float64(n))
}
