package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/folioapp/folio/renderer"
	"github.com/google/subcommands"
)

// valueCmd holds the flags for the 'value' subcommand.
type valueCmd struct{}

func (*valueCmd) Name() string     { return "value" }
func (*valueCmd) Synopsis() string { return "value a saved portfolio against current prices" }
func (*valueCmd) Usage() string {
	return `fol value <name>

  Fetches a current quote for every holding of the named portfolio and
  displays the valuation dashboard: per-holding value and return, totals,
  sector allocation, and any holdings that had to be skipped.
`
}

func (c *valueCmd) SetFlags(f *flag.FlagSet) {}

func (c *valueCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	name := f.Arg(0)
	if name == "" {
		fmt.Fprintf(os.Stderr, "Error: missing portfolio name\n%s", c.Usage())
		return subcommands.ExitUsageError
	}

	store, err := OpenStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening portfolio folder: %v\n", err)
		return subcommands.ExitFailure
	}
	holdings, err := store.Load(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading portfolio %q: %v\n", name, err)
		return subcommands.ExitFailure
	}

	engine, _, err := NewEngine(Log())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	results, summary, notices, err := engine.Evaluate(ctx, holdings)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error valuing portfolio %q: %v\n", name, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.DashboardMarkdown(name, results, summary, notices))
	return subcommands.ExitSuccess
}
