// Package session is the routing boundary of agentrelay. A Session owns a
// fixed registry of agents (a supervisor and the worker it delegates to) and
// turns every request into a core.Result: unknown agent names, failing tools
// and panics escaping an agent are all reported as error results, so callers
// never have to recover.
//
// Typical usage:
//
//	s := session.New()
//	res := s.Send(ctx, "supervisor", "delegate tool:echo_tool {\"text\":\"hi\"}")
//	if res.IsError() {
//		// res.Error holds the message, res.ErrorKind() the category
//	}
package session
