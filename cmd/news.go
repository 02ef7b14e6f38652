package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/folioapp/folio/renderer"
	"github.com/google/subcommands"
)

// newsCmd holds the flags for the 'news' subcommand.
type newsCmd struct{}

func (*newsCmd) Name() string     { return "news" }
func (*newsCmd) Synopsis() string { return "show recent headlines for a ticker, with sentiment" }
func (*newsCmd) Usage() string {
	return `fol news <ticker>

  Fetches the latest headlines mentioning a ticker and scores each one
  with a simple keyword sentiment heuristic.
`
}

func (c *newsCmd) SetFlags(f *flag.FlagSet) {}

func (c *newsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	symbol := f.Arg(0)
	if symbol == "" {
		fmt.Fprintf(os.Stderr, "Error: missing ticker\n%s", c.Usage())
		return subcommands.ExitUsageError
	}

	_, client, err := NewEngine(Log())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	headlines, err := client.News(ctx, symbol)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching news for %q: %v\n", symbol, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.NewsMarkdown(symbol, headlines))
	return subcommands.ExitSuccess
}
