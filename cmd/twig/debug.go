package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/midbel/cli"

	"github.com/midbel/twig/query"
)

var debugCmd = cli.Command{
	Name:    "debug",
	Summary: "print the compiled form of a path expression",
	Handler: &DebugCmd{},
}

type DebugCmd struct {
	Trace bool
}

func (d *DebugCmd) Run(args []string) error {
	set := flag.NewFlagSet("debug", flag.ContinueOnError)
	set.BoolVar(&d.Trace, "trace", false, "trace the parser while compiling")
	if err := set.Parse(args); err != nil {
		return err
	}
	var tracer query.Tracer
	if d.Trace {
		tracer = query.TraceStderr()
	}
	path, err := query.ParseWith(nil, set.Arg(0), tracer)
	if err != nil {
		printParseError(err)
		return errFail
	}
	fmt.Fprintln(os.Stdout, query.Debug(path))
	return nil
}
