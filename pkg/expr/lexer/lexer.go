// Package lexer splits an input line into whitespace-delimited tokens and
// runs every typed recogniser against each one, producing the bag of
// interpretations the evaluator consumes.
package lexer

import (
	"strings"

	"github.com/qpanda/semfilter/pkg/expr/format"
	"github.com/qpanda/semfilter/pkg/expr/value"
)

// Token is a contiguous non-whitespace slice of a line together with every
// TypedValue it was recognised as.
type Token struct {
	Raw    string
	Values []value.Value
}

// Tokenize splits line on ASCII whitespace and recognises each resulting
// raw token against every recogniser in turn. A token for which no
// recogniser succeeds is still emitted, with an empty Values slice.
func Tokenize(line string, formats *format.Formats) []Token {
	fields := strings.Fields(line)
	tokens := make([]Token, 0, len(fields))
	for _, raw := range fields {
		tokens = append(tokens, Token{Raw: raw, Values: recognise(raw, formats)})
	}
	return tokens
}

func recognise(raw string, formats *format.Formats) []value.Value {
	var values []value.Value

	if v, ok := recogniseInteger(raw); ok {
		values = append(values, v)
	}
	if v, ok := recogniseFloat(raw); ok {
		values = append(values, v)
	}
	if v, ok := recogniseID(raw); ok {
		values = append(values, v)
	}
	if v, ok := recogniseDate(raw, formats.Date); ok {
		values = append(values, v)
	}
	if v, ok := recogniseTime(raw, formats.Time); ok {
		values = append(values, v)
	}
	if v, ok := recogniseDateTime(raw, formats.DateTime); ok {
		values = append(values, v)
	}
	if v, ok := recogniseLocalDateTime(raw, formats.LocalDateTime); ok {
		values = append(values, v)
	}
	values = append(values, recogniseIPAddress(raw)...)
	values = append(values, recogniseIPSocketAddress(raw)...)
	values = append(values, recogniseIPNetwork(raw)...)
	if v, ok := recogniseSemanticVersion(raw); ok {
		values = append(values, v)
	}

	return values
}
