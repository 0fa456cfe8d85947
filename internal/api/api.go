package api

import (
	"errors"

	"github.com/bingohq/rng/internal/metrics"
	"github.com/bingohq/rng/internal/rng"
	"github.com/bingohq/rng/internal/util"
)

type API struct {
	sampler    *rng.Sampler
	subsystems []Subsystem
	errors     chan error
	metrics    *metrics.Metrics
}

func New(sampler *rng.Sampler, metrics *metrics.Metrics) *API {
	return &API{
		sampler: sampler,
		errors:  make(chan error),
		metrics: metrics,
	}
}

func (a *API) AddSubsystem(subsystem Subsystem) {
	a.subsystems = append(a.subsystems, subsystem)
}

func (a *API) Start() error {
	for _, subsystem := range a.subsystems {
		go subsystem.Start(a.errors)
	}

	return nil
}

func (a *API) Stop() error {
	for _, subsystem := range a.subsystems {
		if err := subsystem.Stop(); err != nil {
			return err
		}
	}

	return nil
}

func (a *API) Errors() <-chan error {
	return a.errors
}

// Sample draws one integer from [low, high] on behalf of a transport
// subsystem, accounting the request against the given protocol.
func (a *API) Sample(protocol string, low int64, high int64) (int64, error) {
	a.metrics.ApiInFlight.WithLabelValues("sample", protocol).Inc()
	defer a.metrics.ApiInFlight.WithLabelValues("sample", protocol).Dec()

	v, err := a.sampler.Sample(low, high)
	if err != nil {
		var rangeErr *rng.InvalidRangeError
		util.Assert(errors.As(err, &rangeErr), "sampler error must be an invalid range error")

		a.metrics.ApiTotal.WithLabelValues("sample", protocol, "invalid_range").Inc()
		a.metrics.SamplesTotal.WithLabelValues("invalid_range").Inc()
		return 0, err
	}

	util.Assert(v >= low && v <= high, "sample must be within range")

	a.metrics.ApiTotal.WithLabelValues("sample", protocol, "ok").Inc()
	a.metrics.SamplesTotal.WithLabelValues("ok").Inc()
	return v, nil
}
