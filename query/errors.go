package query

import (
	"errors"
	"fmt"
)

var (
	ErrNoMatch  = errors.New("no node matches")
	ErrMultiple = errors.New("more than one node matches")
	ErrBadPath  = errors.New("path can not be expanded")
)

// ErrCode identifies the failure class of a rejected expression. The
// set of codes and their meaning is a stable contract.
type ErrCode int8

const (
	CodeNone ErrCode = iota
	CodeName
	CodeString
	CodeNumber
	CodeDelim
	CodePred
	CodeNoMem
	CodeSlash
	CodeInternal
	CodeType
)

var errMessages = [...]string{
	"no error",
	"empty or illegal name",
	"illegal string literal",
	"illegal number",
	"missing ', \", ) or ,",
	"unmatched ']'",
	"allocation failed",
	"expected '/'",
	"internal error",
	"type error",
}

func (c ErrCode) String() string {
	if c < 0 || int(c) >= len(errMessages) {
		return errMessages[CodeInternal]
	}
	return errMessages[c]
}

// ParseError reports why an expression was rejected, together with the
// original text and the byte offset the cursor had reached.
type ParseError struct {
	Code   ErrCode
	Text   string
	Offset int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s at offset %d in %q", e.Code, e.Offset, e.Text)
}

// ErrorContext returns the reporting triple: a human readable message,
// the expression text and the failure offset.
func (e *ParseError) ErrorContext() (string, string, int) {
	return e.Code.String(), e.Text, e.Offset
}
