package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/bookkeeping"
	"github.com/etnz/bookkeeping/agent"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

type assistCmd struct {
	noAdvisor bool
}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "start an interactive session with the AI assistant" }
func (*assistCmd) Usage() string {
	return `bk assist [-no-advisor] [<question>...]

  Start an interactive session with an assistant that reads the ledger.
  The question, if any, is asked first. Type 'bye' to exit.

  The Gemini client is configured from the environment, GEMINI_API_KEY
  for instance, which can be set in the .env file.
`
}

func (c *assistCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.noAdvisor, "no-advisor", false, "Do not consult the personal finance advisor, which uses Google Search.")
}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := OpenStore(false)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return subcommands.ExitFailure
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	experts := []*agent.Expert{agent.NewBookkeeper(s, bookkeeping.NewEngine(s), options())}
	if !c.noAdvisor {
		experts = append(experts, agent.NewAdvisor())
	}
	a := agent.New(stdout, os.Stdin, experts...)

	if err := a.Run(ctx, client, strings.Join(f.Args(), " ")); err != nil {
		fmt.Fprintln(stderr, "Agent failed:", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
