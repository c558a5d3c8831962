package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/midbel/cli"

	"github.com/midbel/twig/query"
)

var expandCmd = cli.Command{
	Name:    "expand",
	Summary: "create the tree branches implied by a path expression",
	Handler: &ExpandCmd{},
}

type ExpandCmd struct {
	Value string
	Out   string
}

func (e *ExpandCmd) Run(args []string) error {
	set := flag.NewFlagSet("expand", flag.ContinueOnError)
	set.StringVar(&e.Value, "value", "", "value to set on the leaf node")
	set.StringVar(&e.Out, "out", "", "write the updated tree to file - default is stdout")
	if err := set.Parse(args); err != nil {
		return err
	}
	root, err := loadTree(set.Arg(1))
	if err != nil {
		return err
	}
	path, err := query.Parse(root, set.Arg(0))
	if err != nil {
		printParseError(err)
		return errFail
	}
	leaf, err := path.Expand()
	if err != nil {
		return fmt.Errorf("%s: %w", set.Arg(0), err)
	}
	if e.Value != "" {
		leaf.SetValue(e.Value)
	}
	color.Green("expanded to %s", leaf.Path())
	if err := saveTree(e.Out, root); err != nil {
		return err
	}
	if e.Out != "" {
		fmt.Fprintln(os.Stdout, "tree written to", e.Out)
	}
	return nil
}
