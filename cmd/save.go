package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/folioapp/folio"
	"github.com/google/subcommands"
)

// saveCmd holds the flags for the 'save' subcommand.
type saveCmd struct {
	tickers string
	shares  string
	prices  string
}

func (*saveCmd) Name() string     { return "save" }
func (*saveCmd) Synopsis() string { return "save a portfolio under a name" }
func (*saveCmd) Usage() string {
	return `fol save -t <tickers> -s <shares> -p <prices> <name>

  Saves a portfolio as three comma-separated columns: tickers, share
  counts, and buy prices per share in the base currency. The three
  columns must have the same length. An existing portfolio with that
  name is replaced.

Usage Examples:
$ fol save -t AAPL,VOD.L -s 10,2400 -p 150,0.9 mixed
`
}

func (c *saveCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.tickers, "t", "", "Comma-separated ticker symbols")
	f.StringVar(&c.shares, "s", "", "Comma-separated share counts")
	f.StringVar(&c.prices, "p", "", "Comma-separated buy prices per share")
}

func (c *saveCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	name := f.Arg(0)
	if name == "" {
		fmt.Fprintf(os.Stderr, "Error: missing portfolio name\n%s", c.Usage())
		return subcommands.ExitUsageError
	}

	tickers := splitColumn(c.tickers)
	shares, err := parseFloats(c.shares)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing shares: %v\n", err)
		return subcommands.ExitUsageError
	}
	prices, err := parseFloats(c.prices)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing prices: %v\n", err)
		return subcommands.ExitUsageError
	}

	holdings, err := folio.ParseHoldings(tickers, shares, prices)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	store, err := OpenStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening portfolio folder: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := store.Save(name, holdings); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving portfolio %q: %v\n", name, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Saved portfolio %q with %d holdings\n", name, len(holdings))
	return subcommands.ExitSuccess
}

// splitColumn splits a comma-separated flag into trimmed cells, none for "".
func splitColumn(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	cells := strings.Split(s, ",")
	for i := range cells {
		cells[i] = strings.TrimSpace(cells[i])
	}
	return cells
}

// parseFloats parses a comma-separated flag into numbers.
func parseFloats(s string) ([]float64, error) {
	cells := splitColumn(s)
	out := make([]float64, 0, len(cells))
	for _, cell := range cells {
		v, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q", cell)
		}
		out = append(out, v)
	}
	return out, nil
}
