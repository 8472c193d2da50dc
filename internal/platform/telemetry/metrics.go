package telemetry

import (
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/metric"
)

// Metrics holds the service's metric instruments.
type Metrics struct {
	ServerRequestDuration metric.Float64Histogram
	ServerRequestTotal    metric.Int64Counter
	ClientRequestDuration metric.Float64Histogram
	ClientRequestTotal    metric.Int64Counter
	// ClientRetryTotal counts outbound attempts that were retried.
	ClientRetryTotal metric.Int64Counter

	// CorporationCheckTotal counts settled corporation number checks by
	// result: valid, invalid, error, or cancelled.
	CorporationCheckTotal metric.Int64Counter
	// SubmissionTotal counts profile submissions by result: success or failure.
	SubmissionTotal    metric.Int64Counter
	SubmissionDuration metric.Float64Histogram
	// FormsOpen is the number of onboarding forms held in memory.
	FormsOpen metric.Int64UpDownCounter
}

// NewMetrics creates every instrument on a meter scoped to serviceName.
// Tests may pass a noop provider.
func NewMetrics(mp metric.MeterProvider, serviceName string) (*Metrics, error) {
	r := &registrar{meter: mp.Meter(serviceName)}

	m := &Metrics{
		ServerRequestDuration: r.histogram("http.server.request.duration", "Duration of incoming HTTP requests", "s"),
		ServerRequestTotal:    r.counter("http.server.request.total", "Incoming HTTP requests", "{request}"),
		ClientRequestDuration: r.histogram("http.client.request.duration", "Duration of outgoing HTTP requests", "s"),
		ClientRequestTotal:    r.counter("http.client.request.total", "Outgoing HTTP requests", "{request}"),
		ClientRetryTotal:      r.counter("http.client.retry.total", "Retried outgoing HTTP attempts", "{attempt}"),
		CorporationCheckTotal: r.counter("onboarding.corporation_check.total", "Settled corporation number checks", "{check}"),
		SubmissionTotal:       r.counter("onboarding.submission.total", "Profile submissions", "{submission}"),
		SubmissionDuration:    r.histogram("onboarding.submission.duration", "Duration of profile submissions", "s"),
		FormsOpen:             r.upDown("onboarding.forms.open", "Onboarding forms held in memory", "{form}"),
	}

	if err := errors.Join(r.errs...); err != nil {
		return nil, err
	}
	return m, nil
}

// registrar creates instruments and collects registration errors so
// NewMetrics can report them together.
type registrar struct {
	meter metric.Meter
	errs  []error
}

func (r *registrar) check(name string, err error) {
	if err != nil {
		r.errs = append(r.errs, fmt.Errorf("creating %s: %w", name, err))
	}
}

func (r *registrar) histogram(name, desc, unit string) metric.Float64Histogram {
	h, err := r.meter.Float64Histogram(name, metric.WithDescription(desc), metric.WithUnit(unit))
	r.check(name, err)
	return h
}

func (r *registrar) counter(name, desc, unit string) metric.Int64Counter {
	c, err := r.meter.Int64Counter(name, metric.WithDescription(desc), metric.WithUnit(unit))
	r.check(name, err)
	return c
}

func (r *registrar) upDown(name, desc, unit string) metric.Int64UpDownCounter {
	c, err := r.meter.Int64UpDownCounter(name, metric.WithDescription(desc), metric.WithUnit(unit))
	r.check(name, err)
	return c
}
