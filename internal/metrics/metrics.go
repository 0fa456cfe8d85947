package metrics

import "github.com/prometheus/client_golang/prometheus"

type Metrics struct {
	ApiTotal     *prometheus.CounterVec
	ApiInFlight  *prometheus.GaugeVec
	SamplesTotal *prometheus.CounterVec
}

func New(reg prometheus.Registerer) *Metrics {
	metrics := &Metrics{
		ApiTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "api_total_requests",
			Help: "total number of api requests",
		}, []string{"type", "protocol", "status"}),
		ApiInFlight: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "api_in_flight_requests",
			Help: "number of in flight api requests",
		}, []string{"type", "protocol"}),
		SamplesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "samples_total",
			Help: "total number of samples drawn",
		}, []string{"status"}),
	}

	metrics.Enable(reg)
	return metrics
}

func (m *Metrics) Enable(reg prometheus.Registerer) {
	reg.MustRegister(m.ApiTotal)
	reg.MustRegister(m.ApiInFlight)
	reg.MustRegister(m.SamplesTotal)
}

func (m *Metrics) Disable(reg prometheus.Registerer) {
	reg.Unregister(m.ApiTotal)
	reg.Unregister(m.ApiInFlight)
	reg.Unregister(m.SamplesTotal)
}
