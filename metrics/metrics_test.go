package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/agentrelay/core"
)

func TestPrometheusRecorder_Counts(t *testing.T) {
	reg := prometheus.NewRegistry()
	r, err := NewPrometheusRecorder(reg, "")
	require.NoError(t, err)

	r.ObserveDispatch("worker", core.KindTool)
	r.ObserveDispatch("worker", core.KindTool)
	r.ObserveDispatch("supervisor", core.KindError)
	r.ObserveToolCall("worker", "echo_tool", nil, time.Millisecond)
	r.ObserveToolCall("worker", "echo_tool", errors.New("boom"), time.Millisecond)
	r.ObserveDelegation("supervisor", "worker")

	require.Equal(t, 2.0, testutil.ToFloat64(r.Dispatches.WithLabelValues("worker", "tool")))
	require.Equal(t, 1.0, testutil.ToFloat64(r.Dispatches.WithLabelValues("supervisor", "error")))
	require.Equal(t, 1.0, testutil.ToFloat64(r.ToolCalls.WithLabelValues("worker", "echo_tool", "success")))
	require.Equal(t, 1.0, testutil.ToFloat64(r.ToolCalls.WithLabelValues("worker", "echo_tool", "failure")))
	require.Equal(t, 1.0, testutil.ToFloat64(r.Delegations.WithLabelValues("supervisor", "worker")))
	require.Equal(t, 1, testutil.CollectAndCount(r.ToolDuration))
}

func TestPrometheusRecorder_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewPrometheusRecorder(reg, "dup")
	require.NoError(t, err)

	_, err = NewPrometheusRecorder(reg, "dup")
	require.Error(t, err)
}

func TestPrometheusRecorder_Unregistered(t *testing.T) {
	r, err := NewPrometheusRecorder(nil, "x")
	require.NoError(t, err)
	r.ObserveDispatch("worker", core.KindResponse)
	require.Equal(t, 1.0, testutil.ToFloat64(r.Dispatches.WithLabelValues("worker", "response")))
}
