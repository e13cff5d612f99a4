// Package core provides the foundational domain types and interfaces shared by
// the relay packages. It defines the core abstractions for:
//
//   - Agents (named units that answer a textual message with a Result)
//   - Results (the tool / response / error union returned to callers)
//   - Errors (the typed failure taxonomy carried inside error results)
//   - MemoryStore (per-agent key/value scratch space)
//   - ToolContext (the read-only surface handed to tool implementations)
//
// Implementation concerns (concrete agents, tools, stores and the session
// registry) live in their own packages and depend on these contracts only.
package core
