package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/midbel/cli"
	"github.com/midbel/distance"

	"github.com/midbel/twig/query"
	"github.com/midbel/twig/tree"
)

var queryCmd = cli.Command{
	Name:    "query",
	Alias:   []string{"exec"},
	Summary: "run a path expression and print the matching nodes",
	Handler: &QueryCmd{},
}

var findCmd = cli.Command{
	Name:    "find",
	Summary: "find the single node matching a path expression",
	Handler: &FindCmd{},
}

type QueryCmd struct {
	Noout bool
	Text  bool
	Limit int
}

const queryInfo = "query took %s - %d nodes matching %q"

func (q *QueryCmd) Run(args []string) error {
	set := flag.NewFlagSet("query", flag.ContinueOnError)
	set.IntVar(&q.Limit, "limit", 0, "limit number of results returned by query")
	set.BoolVar(&q.Noout, "quiet", false, "suppress output - default is to print the result nodes")
	set.BoolVar(&q.Text, "text", false, "print only value of node")
	if err := set.Parse(args); err != nil {
		return err
	}
	root, err := loadTree(set.Arg(1))
	if err != nil {
		return err
	}
	now := time.Now()
	path, err := query.Parse(root, set.Arg(0))
	if err != nil {
		printParseError(err)
		return errFail
	}
	var nodes []*tree.Node
	runSpinner("running query", func() {
		for n := path.First(); n != nil; n = path.Next() {
			nodes = append(nodes, n)
			if q.Limit > 0 && len(nodes) >= q.Limit {
				break
			}
		}
	})
	if err := path.Err(); err != nil {
		return err
	}
	elapsed := time.Since(now)
	if !q.Noout {
		printNodes(nodes, q.Text)
	}
	fmt.Fprintf(os.Stdout, queryInfo, elapsed, len(nodes), set.Arg(0))
	fmt.Fprintln(os.Stdout)
	if len(nodes) == 0 {
		suggestLabels(root, set.Arg(0))
		return errFail
	}
	return nil
}

type FindCmd struct {
	Text bool
}

func (f *FindCmd) Run(args []string) error {
	set := flag.NewFlagSet("find", flag.ContinueOnError)
	set.BoolVar(&f.Text, "text", false, "print only value of node")
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
	node, err := path.FindOne()
	if err != nil {
		return err
	}
	printNodes([]*tree.Node{node}, f.Text)
	return nil
}

var (
	pathFmt  = color.New(color.FgBlue).SprintFunc()
	caretFmt = color.New(color.FgRed, color.Bold).SprintFunc()
)

func printNodes(nodes []*tree.Node, text bool) {
	for _, n := range nodes {
		if text {
			fmt.Fprintln(os.Stdout, n.Value())
			continue
		}
		fmt.Fprintf(os.Stdout, "%s = %s", pathFmt(n.Path()), n.Value())
		fmt.Fprintln(os.Stdout)
	}
}

// printParseError shows the rejected expression with a caret under the
// byte offset the parser stopped at.
func printParseError(err error) {
	var p *query.ParseError
	if !errors.As(err, &p) {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	msg, txt, offset := p.ErrorContext()
	fmt.Fprintln(os.Stderr, msg)
	fmt.Fprintln(os.Stderr, txt)
	fmt.Fprint(os.Stderr, strings.Repeat(" ", offset))
	fmt.Fprintln(os.Stderr, caretFmt("^"))
}

// suggestLabels proposes labels present in the tree that are close to
// the words of an expression that matched nothing.
func suggestLabels(root *tree.Node, expr string) {
	labels := make(map[string]struct{})
	for n := range root.Descendants() {
		if n.Label() != "" {
			labels[n.Label()] = struct{}{}
		}
	}
	var list []string
	for label := range labels {
		list = append(list, label)
	}
	seen := make(map[string]struct{})
	for _, word := range strings.FieldsFunc(expr, func(r rune) bool {
		return r == '/' || r == '[' || r == ']' || r == '='
	}) {
		for _, other := range distance.Levenshtein(word, list) {
			if _, ok := seen[other]; ok || other == word {
				continue
			}
			seen[other] = struct{}{}
			fmt.Fprintln(os.Stderr, "similar label:", other)
		}
	}
}

func runSpinner(msg string, fn func()) {
	if st, err := os.Stdout.Stat(); err != nil || st.Mode()&os.ModeCharDevice == 0 {
		fn()
		return
	}
	spin := NewSpinner()
	spin.SetMessage(msg)
	spin.Run(fn)
}
