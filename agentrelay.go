// Package agentrelay provides a high-level façade over a session of
// cooperating in-process agents. Most applications interact with this package
// by:
//  1. Creating a Relay via New() (optionally supplying a logger and metrics)
//  2. Sending messages to the "supervisor" or "worker" agent with Send
//  3. Inspecting the returned core.Result (or its Map form)
//
// Messages use a small text protocol: "tool:<name> <json-object>" invokes a
// tool on the target agent, any other text is acknowledged. The supervisor
// forwards messages containing "delegate" to the worker.
package agentrelay

import (
	"context"

	"github.com/hupe1980/agentrelay/core"
	"github.com/hupe1980/agentrelay/logging"
	"github.com/hupe1980/agentrelay/metrics"
	"github.com/hupe1980/agentrelay/session"
)

// Options configures the Relay instance.
type Options struct {
	// Logger (defaults to NoOp logger if nil)
	Logger logging.Logger
	// Metrics (defaults to a no-op recorder if nil)
	Metrics metrics.Recorder
}

// Relay is the high-level façade owning one session.
type Relay struct {
	session *session.Session
}

// New creates a Relay with a fresh session.
func New(optFns ...func(o *Options)) *Relay {
	opts := Options{
		Logger:  logging.NoOpLogger{},
		Metrics: metrics.NoopRecorder{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	s := session.New(func(o *session.Options) {
		o.Logger = opts.Logger
		o.Metrics = opts.Metrics
	})

	return &Relay{session: s}
}

// Session exposes the underlying session.
func (r *Relay) Session() *session.Session { return r.session }

// Agents returns the available agent names in registry order.
func (r *Relay) Agents() []string { return r.session.Agents() }

// Send delivers message to agentName. It never panics; failures are error
// results.
func (r *Relay) Send(ctx context.Context, agentName, message string) core.Result {
	return r.session.Send(ctx, agentName, message)
}

// SendMap is Send returning the plain mapping form of the result: {"error"},
// {"from","tool","result"} or {"from","response"}.
func (r *Relay) SendMap(ctx context.Context, agentName, message string) map[string]any {
	return r.Send(ctx, agentName, message).Map()
}
