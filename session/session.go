package session

import (
	"context"
	"fmt"

	"github.com/hupe1980/agentrelay/agent"
	"github.com/hupe1980/agentrelay/core"
	"github.com/hupe1980/agentrelay/logging"
	"github.com/hupe1980/agentrelay/metrics"
)

// Options configures a Session.
type Options struct {
	// Logger is handed to the agents (defaults to NoOpLogger). A
	// *logging.RelayLogger is tagged with the session id.
	Logger logging.Logger
	// Metrics receives agent observations (defaults to NoopRecorder).
	Metrics metrics.Recorder
}

// Session routes messages to a fixed set of named agents.
//
// The registry is built once in New and never changes. Agents keep their
// memory for the lifetime of the session; separate sessions share nothing.
type Session struct {
	id     string
	order  []string
	agents map[string]core.Agent

	supervisor *agent.SupervisorAgent
	worker     *agent.WorkerAgent
}

// New creates a session holding one worker and one supervisor bound to it,
// registered as "supervisor" and "worker" in that order.
func New(optFns ...func(o *Options)) *Session {
	opts := Options{
		Logger:  logging.NoOpLogger{},
		Metrics: metrics.NoopRecorder{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	id := core.NewID()

	logger := opts.Logger
	if rl, ok := logger.(*logging.RelayLogger); ok {
		logger = rl.WithSession(id, "")
	}

	agentOpts := func(o *agent.Options) {
		o.Logger = logger
		o.Metrics = opts.Metrics
	}

	worker := agent.NewWorkerAgent(agentOpts)
	supervisor := agent.NewSupervisorAgent(worker, agentOpts)

	s := newSession(id, supervisor, worker)
	s.supervisor = supervisor
	s.worker = worker

	return s
}

func newSession(id string, agents ...core.Agent) *Session {
	s := &Session{
		id:     id,
		order:  make([]string, 0, len(agents)),
		agents: make(map[string]core.Agent, len(agents)),
	}

	for _, a := range agents {
		if _, dup := s.agents[a.Name()]; dup {
			panic(fmt.Sprintf("session: duplicate agent name %q", a.Name()))
		}
		s.order = append(s.order, a.Name())
		s.agents[a.Name()] = a
	}

	return s
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// Agents returns the registered agent names in registry order.
func (s *Session) Agents() []string {
	names := make([]string, len(s.order))
	copy(names, s.order)
	return names
}

// Agent looks up a registered agent by name.
func (s *Session) Agent(name string) (core.Agent, bool) {
	a, ok := s.agents[name]
	return a, ok
}

// Supervisor returns the session's supervisor agent.
func (s *Session) Supervisor() *agent.SupervisorAgent { return s.supervisor }

// Worker returns the session's worker agent.
func (s *Session) Worker() *agent.WorkerAgent { return s.worker }

// Send delivers message to the agent registered under agentName and returns
// its result. Send never panics: a lookup miss yields an UnknownAgent error
// result and a panic inside the agent yields an AgentRunFailure result.
func (s *Session) Send(ctx context.Context, agentName, message string) (res core.Result) {
	a, ok := s.agents[agentName]
	if !ok {
		return core.NewErrorResult(core.NewUnknownAgentError(agentName, s.order))
	}

	if ctx == nil {
		ctx = context.Background()
	}

	if _, ok := core.InvocationIDFromContext(ctx); !ok {
		ctx = core.WithInvocationID(ctx, core.NewID())
	}

	defer func() {
		if r := recover(); r != nil {
			res = core.NewErrorResult(core.NewAgentRunError(core.PanicError(r)))
		}
	}()

	return a.Run(ctx, message)
}
