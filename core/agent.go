package core

import "context"

// Agent defines the message dispatch contract every agent implements.
//
// An agent owns a MemoryStore and a registry of tools. Run answers a single
// textual message and never panics for protocol or tool failures; those are
// reported as error Results. Each Run is independent of prior calls.
type Agent interface {
	Name() string
	Description() string
	Memory() MemoryStore
	// Tools returns the names of the registered tools in sorted order.
	Tools() []string
	Run(ctx context.Context, message string) Result
}

// AgentInfo carries identifying details about an agent used in contexts & logs.
// Name is the external identifier; Type categorizes implementation (e.g. "worker", "supervisor").
type AgentInfo struct{ Name, Type string }
