// Command agentrelay sends messages to the agents of an in-process session.
//
//	agentrelay send worker 'tool:echo_tool {"text":"hi"}'
//	agentrelay send supervisor 'delegate tool:echo_tool {"text":"hi"}'
//	echo 'worker hello' | agentrelay repl
package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/hupe1980/agentrelay/config"
)

// CLI is the command line grammar.
type CLI struct {
	Send    SendCmd    `cmd:"" help:"Send one message to an agent and print the result as JSON."`
	Repl    ReplCmd    `cmd:"" help:"Read '<agent> <message>' lines from stdin and print one JSON result per line."`
	Agents  AgentsCmd  `cmd:"" help:"List the session's agents and their tools."`
	Version VersionCmd `cmd:"" help:"Show version information."`

	Config    string `short:"c" help:"Path to config file." type:"path"`
	LogLevel  string `help:"Log level (debug, info, warn, error)."`
	LogFormat string `help:"Log format (text, json)."`
}

func main() {
	_ = config.LoadDotEnv()

	cli := CLI{}
	ctx := kong.Parse(&cli,
		kong.Name("agentrelay"),
		kong.Description("Route messages between in-process agents"),
		kong.UsageOnError(),
	)

	a, err := newApp(&cli, os.Stdin, os.Stdout, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}

	err = ctx.Run(a)
	a.close()
	ctx.FatalIfErrorf(err)
}
