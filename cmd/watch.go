package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/folioapp/folio"
	"github.com/folioapp/folio/renderer"
	"github.com/google/subcommands"
)

// watchCmd holds the flags for the 'watch' subcommand.
type watchCmd struct {
	add    string
	remove string
}

func (*watchCmd) Name() string     { return "watch" }
func (*watchCmd) Synopsis() string { return "show or edit the watchlist" }
func (*watchCmd) Usage() string {
	return `fol watch [-add <ticker>] [-rm <ticker>]

  Without flags, fetches a current quote for every watched symbol and
  displays them. With -add or -rm, edits the watchlist instead.
`
}

func (c *watchCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.add, "add", "", "Ticker to add to the watchlist")
	f.StringVar(&c.remove, "rm", "", "Ticker to remove from the watchlist")
}

func (c *watchCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := OpenStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening portfolio folder: %v\n", err)
		return subcommands.ExitFailure
	}
	symbols, err := store.Watchlist()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.add != "" || c.remove != "" {
		return c.edit(store, symbols)
	}

	if len(symbols) == 0 {
		fmt.Println("The watchlist is empty. Add a ticker with: fol watch -add <ticker>")
		return subcommands.ExitSuccess
	}

	// A watched symbol is a one-share holding with no cost, the valuation
	// pass then yields its quote and descriptive fields.
	holdings := make([]folio.Holding, 0, len(symbols))
	for _, sym := range symbols {
		holdings = append(holdings, folio.Holding{Symbol: sym, Shares: folio.Q(1), BuyPrice: folio.M(0, "")})
	}

	engine, _, err := NewEngine(Log())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	results, _, notices, err := engine.Evaluate(ctx, holdings)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error valuing watchlist: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.WatchlistMarkdown(results, notices))
	return subcommands.ExitSuccess
}

// edit applies the -add / -rm flags and saves the watchlist back.
func (c *watchCmd) edit(store *folio.Store, symbols []string) subcommands.ExitStatus {
	if c.add != "" {
		symbols = append(symbols, c.add)
	}
	if c.remove != "" {
		symbols = slices.DeleteFunc(symbols, func(s string) bool {
			return strings.EqualFold(s, c.remove)
		})
	}
	if err := store.SaveWatchlist(symbols); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Watchlist updated (%d symbols)\n", len(symbols))
	return subcommands.ExitSuccess
}
