// Package metrics records dispatch outcomes with Prometheus collectors.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/hupe1980/agentrelay/core"
)

// DefaultNamespace prefixes every metric name.
const DefaultNamespace = "agentrelay"

// Recorder receives dispatch observations from agents.
type Recorder interface {
	// ObserveDispatch counts a finished Run by result kind.
	ObserveDispatch(agent string, kind core.ResultKind)
	// ObserveToolCall counts a tool invocation and its latency.
	ObserveToolCall(agent, tool string, err error, dur time.Duration)
	// ObserveDelegation counts a forwarded task.
	ObserveDelegation(from, to string)
}

// NoopRecorder discards all observations.
type NoopRecorder struct{}

// ObserveDispatch implements Recorder.
func (NoopRecorder) ObserveDispatch(string, core.ResultKind) {}

// ObserveToolCall implements Recorder.
func (NoopRecorder) ObserveToolCall(string, string, error, time.Duration) {}

// ObserveDelegation implements Recorder.
func (NoopRecorder) ObserveDelegation(string, string) {}

// PrometheusRecorder implements Recorder with Prometheus collectors.
type PrometheusRecorder struct {
	Dispatches   *prometheus.CounterVec
	ToolCalls    *prometheus.CounterVec
	ToolDuration *prometheus.HistogramVec
	Delegations  *prometheus.CounterVec
}

// NewPrometheusRecorder creates the collectors under namespace (DefaultNamespace
// when empty) and registers them on reg. A nil reg leaves them unregistered.
func NewPrometheusRecorder(reg prometheus.Registerer, namespace string) (*PrometheusRecorder, error) {
	if namespace == "" {
		namespace = DefaultNamespace
	}

	r := &PrometheusRecorder{
		Dispatches: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "dispatch_total",
				Help:      "Total agent runs by result kind",
			},
			[]string{"agent", "kind"}, // kind: tool, response, error
		),
		ToolCalls: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "tool_calls_total",
				Help:      "Total tool invocations by outcome",
			},
			[]string{"agent", "tool", "outcome"}, // outcome: success, failure
		),
		ToolDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "tool_duration_seconds",
				Help:      "Tool invocation latency",
				Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
			},
			[]string{"tool"},
		),
		Delegations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "delegations_total",
				Help:      "Total tasks forwarded between agents",
			},
			[]string{"from", "to"},
		),
	}

	if reg != nil {
		for _, c := range []prometheus.Collector{r.Dispatches, r.ToolCalls, r.ToolDuration, r.Delegations} {
			if err := reg.Register(c); err != nil {
				return nil, err
			}
		}
	}

	return r, nil
}

// ObserveDispatch implements Recorder.
func (r *PrometheusRecorder) ObserveDispatch(agent string, kind core.ResultKind) {
	r.Dispatches.WithLabelValues(agent, kind.String()).Inc()
}

// ObserveToolCall implements Recorder.
func (r *PrometheusRecorder) ObserveToolCall(agent, tool string, err error, dur time.Duration) {
	outcome := "success"
	if err != nil {
		outcome = "failure"
	}
	r.ToolCalls.WithLabelValues(agent, tool, outcome).Inc()
	r.ToolDuration.WithLabelValues(tool).Observe(dur.Seconds())
}

// ObserveDelegation implements Recorder.
func (r *PrometheusRecorder) ObserveDelegation(from, to string) {
	r.Delegations.WithLabelValues(from, to).Inc()
}

var (
	_ Recorder = NoopRecorder{}
	_ Recorder = (*PrometheusRecorder)(nil)
)
