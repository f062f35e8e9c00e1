// Package eval implements the existential matching semantics the parser's
// dispatch tables build Condition closures against, plus the top-level
// entry point that walks a parsed expression over a line's tokens.
package eval

import (
	"github.com/qpanda/semfilter/pkg/expr/ast"
	"github.com/qpanda/semfilter/pkg/expr/lexer"
	"github.com/qpanda/semfilter/pkg/expr/token"
	"github.com/qpanda/semfilter/pkg/expr/value"
)

// Evaluate reports whether tokens satisfies expr. A nil expr is never
// produced by a successful parse.
func Evaluate(expr ast.Node, tokens []lexer.Token) bool {
	return expr.Evaluate(tokens)
}

// Select returns every value among tokens whose Kind is exactly kind, in
// token order. It is the set S of §4.3: the values a bare $kind selector
// ranges over.
func Select(tokens []lexer.Token, kind token.Kind) []value.Value {
	var out []value.Value
	for _, t := range tokens {
		for _, v := range t.Values {
			if v.Kind() == kind {
				out = append(out, v)
			}
		}
	}
	return out
}

// Exists reports whether some value of kind among tokens satisfies pred.
// An empty selection is vacuously false, per the no-type-no-match invariant.
func Exists(tokens []lexer.Token, kind token.Kind, pred func(value.Value) bool) bool {
	for _, v := range Select(tokens, kind) {
		if pred(v) {
			return true
		}
	}
	return false
}

// Project returns the values obtained by applying fn to every value of
// kind among tokens that fn can project (fn returns ok=false for values it
// does not apply to, which are skipped rather than aborting the scan).
func Project(tokens []lexer.Token, kind token.Kind, fn func(value.Value) (value.Value, bool)) []value.Value {
	var out []value.Value
	for _, v := range Select(tokens, kind) {
		if pv, ok := fn(v); ok {
			out = append(out, pv)
		}
	}
	return out
}
