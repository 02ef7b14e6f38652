package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/folioapp/folio/cmd"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// A .env next to the portfolios can carry FOLIO_* settings.
	_ = godotenv.Load()

	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")

	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion wires shell completion. It only acts when the shell invokes
// the binary as a completer, otherwise it is a no-op.
func completion() {
	sub := func(flags map[string]complete.Predictor) *complete.Command {
		return &complete.Command{Flags: flags}
	}
	cmp := &complete.Command{
		Sub: map[string]*complete.Command{
			"value": sub(nil),
			"chart": sub(map[string]complete.Predictor{"b": predict.Something}),
			"save": sub(map[string]complete.Predictor{
				"t": predict.Something,
				"s": predict.Something,
				"p": predict.Something,
			}),
			"ls":    sub(nil),
			"rm":    sub(nil),
			"mv":    sub(nil),
			"watch": sub(map[string]complete.Predictor{"add": predict.Something, "rm": predict.Something}),
			"news":  sub(nil),
		},
		Flags: map[string]complete.Predictor{
			"portfolio-dir": predict.Dirs("*"),
			"v":             predict.Nothing,
		},
	}
	cmp.Complete(path.Base(os.Args[0]))
}
