package main

import (
	"bufio"
	"context"
	"fmt"
	"runtime/debug"
	"strings"
	"text/tabwriter"

	"github.com/goccy/go-json"

	"github.com/hupe1980/agentrelay/core"
)

// SendCmd sends a single message.
type SendCmd struct {
	Agent   string `arg:"" help:"Target agent name."`
	Message string `arg:"" help:"Message text, either plain text or tool:<name> <json-object>."`
}

// Run executes the send command.
func (c *SendCmd) Run(a *app) error {
	res := a.session.Send(context.Background(), c.Agent, c.Message)
	return a.printResult(res)
}

// ReplCmd processes messages line by line.
type ReplCmd struct{}

// Run executes the repl command. Blank lines and lines starting with '#' are
// skipped.
func (c *ReplCmd) Run(a *app) error {
	sc := bufio.NewScanner(a.in)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		name, message, _ := strings.Cut(line, " ")

		res := a.session.Send(context.Background(), name, message)
		if err := a.printResult(res); err != nil {
			return err
		}
	}

	return sc.Err()
}

// AgentsCmd lists agents.
type AgentsCmd struct{}

// Run executes the agents command.
func (c *AgentsCmd) Run(a *app) error {
	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tTOOLS\tDESCRIPTION")

	for _, name := range a.session.Agents() {
		ag, _ := a.session.Agent(name)
		fmt.Fprintf(tw, "%s\t%s\t%s\n", name, strings.Join(ag.Tools(), ","), ag.Description())
	}

	return tw.Flush()
}

// VersionCmd prints the build version.
type VersionCmd struct{}

// Run executes the version command.
func (c *VersionCmd) Run(a *app) error {
	_, err := fmt.Fprintf(a.out, "agentrelay version %s\n", buildVersion())
	return err
}

func buildVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok {
		if info.Main.Version != "(devel)" && info.Main.Version != "" {
			return info.Main.Version
		}
	}
	return "dev"
}

func (a *app) printResult(res core.Result) error {
	data, err := json.Marshal(res.Map())
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}

	_, err = fmt.Fprintln(a.out, string(data))

	return err
}
