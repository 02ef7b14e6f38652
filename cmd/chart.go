package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/folioapp/folio/date"
	"github.com/folioapp/folio/renderer"
	"github.com/google/subcommands"
)

// chartCmd holds the flags for the 'chart' subcommand.
type chartCmd struct {
	benchmark string
}

func (*chartCmd) Name() string     { return "chart" }
func (*chartCmd) Synopsis() string { return "display the portfolio value curve over time" }
func (*chartCmd) Usage() string {
	return `fol chart [-b <index>] <name>

  Builds the combined daily value of the named portfolio over the
  configured lookback window. With -b, an index close series is overlaid,
  rescaled to start at the portfolio's first value.
`
}

func (c *chartCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.benchmark, "b", "", "Benchmark index symbol to overlay, e.g. ^FTSE")
}

func (c *chartCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	cfg, err := LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	engine, _, err := NewEngine(Log())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	portfolio, notices, err := engine.ValueSeries(ctx, holdings)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error charting portfolio %q: %v\n", name, err)
		return subcommands.ExitFailure
	}

	var benchmark date.History[float64]
	if c.benchmark != "" {
		b, ns, err := engine.BenchmarkSeries(ctx, c.benchmark, portfolio)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error fetching benchmark %q: %v\n", c.benchmark, err)
			return subcommands.ExitFailure
		}
		benchmark = b
		notices = append(notices, ns...)
	}

	printMarkdown(renderer.SeriesMarkdown(cfg.BaseCurrency, c.benchmark, portfolio, benchmark))
	for _, n := range notices {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", n)
	}
	return subcommands.ExitSuccess
}
