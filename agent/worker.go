package agent

import "github.com/hupe1980/agentrelay/tool"

// WorkerName is the fixed name of the worker agent.
const WorkerName = "worker"

// WorkerAgent is the terminal point of delegation. It answers with the base
// dispatch and comes with the echo tool registered.
type WorkerAgent struct {
	BaseAgent
}

// NewWorkerAgent constructs the worker agent.
func NewWorkerAgent(optFns ...func(o *Options)) *WorkerAgent {
	w := &WorkerAgent{BaseAgent: newBaseAgent(WorkerName, "worker", optFns...)}
	w.AddTool(tool.NewEchoTool())
	return w
}
