package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

// lsCmd lists the saved portfolios.
type lsCmd struct{}

func (*lsCmd) Name() string     { return "ls" }
func (*lsCmd) Synopsis() string { return "list saved portfolios" }
func (*lsCmd) Usage() string {
	return `fol ls

  Lists the names of all saved portfolios.
`
}
func (c *lsCmd) SetFlags(f *flag.FlagSet) {}

func (c *lsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := OpenStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening portfolio folder: %v\n", err)
		return subcommands.ExitFailure
	}
	names, err := store.List()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error listing portfolios: %v\n", err)
		return subcommands.ExitFailure
	}
	for _, name := range names {
		fmt.Println(name)
	}
	return subcommands.ExitSuccess
}

// rmCmd deletes a saved portfolio.
type rmCmd struct{}

func (*rmCmd) Name() string     { return "rm" }
func (*rmCmd) Synopsis() string { return "delete a saved portfolio" }
func (*rmCmd) Usage() string {
	return `fol rm <name>

  Deletes the named portfolio.
`
}
func (c *rmCmd) SetFlags(f *flag.FlagSet) {}

func (c *rmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	if err := store.Delete(name); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Deleted portfolio %q\n", name)
	return subcommands.ExitSuccess
}

// mvCmd renames a saved portfolio.
type mvCmd struct{}

func (*mvCmd) Name() string     { return "mv" }
func (*mvCmd) Synopsis() string { return "rename a saved portfolio" }
func (*mvCmd) Usage() string {
	return `fol mv <old> <new>

  Renames a portfolio. An existing portfolio under the new name is
  replaced.
`
}
func (c *mvCmd) SetFlags(f *flag.FlagSet) {}

func (c *mvCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	oldName, newName := f.Arg(0), f.Arg(1)
	if oldName == "" || newName == "" {
		fmt.Fprintf(os.Stderr, "Error: missing portfolio names\n%s", c.Usage())
		return subcommands.ExitUsageError
	}
	store, err := OpenStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening portfolio folder: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := store.Rename(oldName, newName); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Renamed portfolio %q to %q\n", oldName, newName)
	return subcommands.ExitSuccess
}
