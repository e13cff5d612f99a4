// Package testutil contains helpers shared by package tests: a logger that
// captures structured log entries in memory and a configurable stub agent for
// exercising routing without the built-in agents. Not intended for
// production usage.
package testutil
