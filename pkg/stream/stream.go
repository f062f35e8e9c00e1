// Package stream drives the single-threaded, order-preserving read/match/
// write loop: read a line, tokenize it, evaluate the compiled expression
// against its tokens, and copy matching lines verbatim to the output.
package stream

import (
	"bufio"
	"io"
	"strings"

	"github.com/qpanda/semfilter/pkg/expr/ast"
	"github.com/qpanda/semfilter/pkg/expr/experr"
	"github.com/qpanda/semfilter/pkg/expr/format"
	"github.com/qpanda/semfilter/pkg/expr/lexer"
)

// Counters reports how many lines were processed and how many matched.
type Counters struct {
	Processed uint64
	Matched   uint64
}

// Run reads lines from r, tokenizing and evaluating expr against each one,
// and writes every matching line verbatim (terminator included) to w. It
// never returns a per-line error: a line whose tokens fail every
// recogniser simply fails to match.
func Run(r io.Reader, w io.Writer, expr ast.Node, formats *format.Formats) (Counters, error) {
	reader := bufio.NewReaderSize(r, 64*1024)
	writer := bufio.NewWriter(w)

	var counters Counters
	for {
		line, readErr := reader.ReadString('\n')
		if len(line) > 0 {
			counters.Processed++

			content := strings.TrimRight(line, "\r\n")
			tokens := lexer.Tokenize(content, formats)
			if expr.Evaluate(tokens) {
				counters.Matched++
				if _, err := writer.WriteString(line); err != nil {
					return counters, &experr.IOError{Op: "write output", Err: err}
				}
			}
		}
		if readErr != nil {
			if readErr == io.EOF {
				break
			}
			return counters, &experr.IOError{Op: "read input", Err: readErr}
		}
	}

	if err := writer.Flush(); err != nil {
		return counters, &experr.IOError{Op: "write output", Err: err}
	}
	return counters, nil
}
