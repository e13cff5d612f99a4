// Package memory contains concrete MemoryStore implementations. The store
// interface resides in the core package; agents depend on core.MemoryStore
// and receive an implementation at construction time.
package memory
