package query

import (
	"io"
	"log/slog"
	"os"
)

// Tracer observes the engine at work: grammar productions entered and
// left by the parser, with the byte offset the cursor sits on, and,
// while a location path runs, the size of the working node-set after
// each step expansion and each predicate pass.
type Tracer interface {
	Enter(rule string, offset int)
	Leave(rule string, offset int)
	Expand(axis, name string, found int)
	Filter(before, kept int)
}

type discardTracer struct{}

func (_ discardTracer) Enter(_ string, _ int)     {}
func (_ discardTracer) Leave(_ string, _ int)     {}
func (_ discardTracer) Expand(_, _ string, _ int) {}
func (_ discardTracer) Filter(_, _ int)           {}

type slogTracer struct {
	logger *slog.Logger
	depth  int
}

func TraceStdout() Tracer {
	tracer := slogTracer{
		logger: traceLogger(os.Stdout),
	}
	return &tracer
}

func TraceStderr() Tracer {
	tracer := slogTracer{
		logger: traceLogger(os.Stderr),
	}
	return &tracer
}

func traceLogger(w io.Writer) *slog.Logger {
	opts := slog.HandlerOptions{
		Level: slog.LevelDebug,
	}
	return slog.New(slog.NewTextHandler(w, &opts))
}

func (t *slogTracer) Enter(rule string, offset int) {
	t.depth++
	t.logger.Debug("parse", "rule", rule, "offset", offset, "depth", t.depth)
}

func (t *slogTracer) Leave(rule string, offset int) {
	t.logger.Debug("parsed", "rule", rule, "offset", offset, "depth", t.depth)
	t.depth--
}

func (t *slogTracer) Expand(axis, name string, found int) {
	if name == "" {
		name = "*"
	}
	t.logger.Debug("expand step", "axis", axis, "name", name, "nodes", found)
}

func (t *slogTracer) Filter(before, kept int) {
	t.logger.Debug("filter predicate", "before", before, "kept", kept)
}
