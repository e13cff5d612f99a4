// Package logging provides a minimal logging interface and adapters for agentrelay.
//
// The Logger interface defines the standard logging methods (Debug, Info, Warn, Error)
// that agents and the CLI use for observability. This package includes:
//
//   - Logger interface for dependency injection
//   - SlogAdapter wrapping Go's structured logging
//   - RelayLogger with session/component context and tool call helpers
//   - NoOpLogger for silent operation (testing, library defaults)
//
// Usage:
//
//	logger := logging.NewSlogLogger(logging.LogLevelInfo, "json", false)
//	sess := session.New(func(o *session.Options) { o.Logger = logger })
package logging
