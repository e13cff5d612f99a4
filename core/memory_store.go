package core

// MemoryStore is the per-agent key/value scratch space. A store is created
// with its agent, lives exactly as long as the agent and is never shared.
// Get reports absence with ok == false and never fails.
type MemoryStore interface {
	Get(key string) (value any, ok bool)
	Set(key string, value any)
}
