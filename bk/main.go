// Command bk keeps a personal ledger of income and expenses.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path"

	"github.com/etnz/bookkeeping/cmd"
	"github.com/etnz/bookkeeping/docs"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

var builtins = []string{"help", "flags", "commands"}

func main() {
	// Only returns when the shell did not ask for completion.
	completion().Complete("bk")

	if err := cmd.LoadEnv(); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()

	if name := flag.Arg(0); name != "" && !known(name) {
		if found, code := cmd.RunExtension(name, flag.Args()[1:]); found {
			os.Exit(code)
		}
	}
	os.Exit(int(commander.Execute(context.Background())))
}

func known(name string) bool {
	for _, b := range builtins {
		if b == name {
			return true
		}
	}
	for _, c := range cmd.Commands {
		if c.Name() == name {
			return true
		}
	}
	return false
}

// completion describes the commands and their flags to the shell.
func completion() *complete.Command {
	sub := make(map[string]*complete.Command)
	for _, b := range builtins {
		sub[b] = &complete.Command{}
	}
	for _, c := range cmd.Commands {
		fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
		c.SetFlags(fs)
		sub[c.Name()] = &complete.Command{Flags: flags(fs)}
	}
	if topics, err := docs.GetAllTopics(); err == nil {
		sub["topic"].Args = predict.Set(append(topics, "readme"))
	}
	return &complete.Command{Sub: sub, Flags: flags(flag.CommandLine)}
}

func flags(fs *flag.FlagSet) map[string]complete.Predictor {
	m := make(map[string]complete.Predictor)
	fs.VisitAll(func(f *flag.Flag) {
		if b, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
			m[f.Name] = predict.Nothing
			return
		}
		switch f.Name {
		case "ledger-file":
			m[f.Name] = predict.Files("*.json")
		case "html":
			m[f.Name] = predict.Files("*.html")
		case "currency":
			m[f.Name] = predict.Set{"USD", "EUR", "GBP", "JPY", "CNY", "CHF"}
		case "k":
			m[f.Name] = predict.Set{"income", "expense"}
		default:
			m[f.Name] = predict.Something
		}
	})
	return m
}
