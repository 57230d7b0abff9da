package main

import (
	"io"
	"os"

	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Tally    TallyCmd         `cmd:"" help:"Count wins and draws over a file of rounds"`
	Classify ClassifyCmd      `cmd:"" help:"Print the category of one or more hands"`
	Compare  CompareCmd       `cmd:"" help:"Compare two hands"`
}

// Globals carries the process streams into command Run methods.
type Globals struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

func newParser(cli *CLI, globals *Globals, options ...kong.Option) (*kong.Kong, error) {
	options = append([]kong.Option{
		kong.Name("fivecard"),
		kong.Description("Five card poker hand ranking and batch tally"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
		kong.Bind(globals),
	}, options...)
	return kong.New(cli, options...)
}

func main() {
	var cli CLI
	parser, err := newParser(&cli, &Globals{Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr})
	if err != nil {
		panic(err)
	}
	ctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)
	err = ctx.Run()
	ctx.FatalIfErrorf(err)
}
