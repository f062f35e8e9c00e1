// Package parser implements the recursive-descent LL(1) parser that turns
// an expression string into an ast.Node. Every Condition it produces is
// already type-consistent: the dispatch tables in dispatch.go are
// consulted here, at parse time, so an unsupported (selector, comparator,
// literal-kind) combination is an experr.TypeError rather than a runtime
// possibility.
package parser

import (
	"fmt"
	"strings"

	"github.com/qpanda/semfilter/pkg/expr/ast"
	"github.com/qpanda/semfilter/pkg/expr/eval"
	"github.com/qpanda/semfilter/pkg/expr/experr"
	"github.com/qpanda/semfilter/pkg/expr/format"
	"github.com/qpanda/semfilter/pkg/expr/lexer"
	"github.com/qpanda/semfilter/pkg/expr/token"
	"github.com/qpanda/semfilter/pkg/expr/value"
)

// Parse compiles expr into an AST using formats to resolve any temporal
// literals it contains.
func Parse(expr string, formats *format.Formats) (ast.Node, error) {
	tokens := scan(expr)
	if len(tokens) == 0 {
		return nil, &experr.SyntaxError{Pos: 1, Msg: "empty expression"}
	}

	p := &parser{tokens: tokens, formats: formats}
	node, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if !p.atEnd() {
		return nil, &experr.SyntaxError{Pos: p.peek().Pos, Msg: fmt.Sprintf("unexpected token %q", p.peek().Text)}
	}
	return node, nil
}

type parser struct {
	tokens  []exprToken
	pos     int
	formats *format.Formats
}

func (p *parser) atEnd() bool { return p.pos >= len(p.tokens) }

func (p *parser) peek() exprToken { return p.tokens[p.pos] }

func (p *parser) next() exprToken {
	t := p.tokens[p.pos]
	p.pos++
	return t
}

func (p *parser) lastPos() int {
	if len(p.tokens) == 0 {
		return 1
	}
	return p.tokens[len(p.tokens)-1].Pos
}

func (p *parser) peekIsRParen() bool {
	return !p.atEnd() && p.peek().Paren == ')'
}

func (p *parser) peekOperator() (string, bool) {
	if p.atEnd() || p.peek().Paren != 0 {
		return "", false
	}
	switch p.peek().Text {
	case "and", "or":
		return p.peek().Text, true
	default:
		return "", false
	}
}

// parseExpr parses a flat, left-associative chain of the same operator.
// Mixing 'and' and 'or' without parentheses is a syntax error.
func (p *parser) parseExpr() (ast.Node, error) {
	node, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	if p.atEnd() || p.peekIsRParen() {
		return node, nil
	}

	chainOp, ok := p.peekOperator()
	if !ok {
		return nil, &experr.SyntaxError{Pos: p.peek().Pos, Msg: fmt.Sprintf("expected 'and' or 'or', found %q", p.peek().Text)}
	}

	for {
		if p.atEnd() || p.peekIsRParen() {
			break
		}
		op, ok := p.peekOperator()
		if !ok {
			return nil, &experr.SyntaxError{Pos: p.peek().Pos, Msg: fmt.Sprintf("expected 'and' or 'or', found %q", p.peek().Text)}
		}
		if op != chainOp {
			return nil, &experr.SyntaxError{Pos: p.peek().Pos, Msg: "mixed 'and'/'or' requires parentheses"}
		}
		p.next()
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		if chainOp == "and" {
			node = &ast.And{L: node, R: right}
		} else {
			node = &ast.Or{L: node, R: right}
		}
	}
	return node, nil
}

func (p *parser) parseTerm() (ast.Node, error) {
	if p.atEnd() {
		return nil, &experr.SyntaxError{Pos: p.lastPos(), Msg: "unexpected end of expression"}
	}
	if p.peek().Paren == '(' {
		p.next()
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if p.atEnd() || p.peek().Paren != ')' {
			return nil, &experr.SyntaxError{Pos: p.lastPos(), Msg: "unbalanced parentheses"}
		}
		p.next()
		return &ast.Group{Inner: inner}, nil
	}
	if p.peek().Paren == ')' {
		return nil, &experr.SyntaxError{Pos: p.peek().Pos, Msg: "unexpected ')'"}
	}
	return p.parseCondition()
}

type selectFunc func(tokens []lexer.Token) []value.Value

func (p *parser) parseCondition() (ast.Node, error) {
	start := p.peek()
	selectorTok := p.next()

	var (
		selectFn     selectFunc
		selectorKind token.Kind
	)

	if strings.HasPrefix(selectorTok.Text, "$") {
		name := selectorTok.Text[1:]
		kind, ok := token.VariableKinds[name]
		if !ok {
			return nil, &experr.SyntaxError{Pos: selectorTok.Pos, Msg: fmt.Sprintf("unknown variable %q", selectorTok.Text)}
		}
		selectorKind = kind
		selectFn = func(tokens []lexer.Token) []value.Value { return eval.Select(tokens, kind) }
	} else {
		spec, ok := functions[selectorTok.Text]
		if !ok {
			return nil, &experr.SyntaxError{Pos: selectorTok.Pos, Msg: fmt.Sprintf("unknown function %q", selectorTok.Text)}
		}
		if p.atEnd() || p.peek().Paren != '(' {
			return nil, &experr.SyntaxError{Pos: p.lastPos(), Msg: "expected '(' after function name"}
		}
		p.next()
		if p.atEnd() {
			return nil, &experr.SyntaxError{Pos: p.lastPos(), Msg: "expected variable after '('"}
		}
		varTok := p.next()
		if !strings.HasPrefix(varTok.Text, "$") {
			return nil, &experr.SyntaxError{Pos: varTok.Pos, Msg: fmt.Sprintf("expected variable, found %q", varTok.Text)}
		}
		varKind, ok := token.VariableKinds[varTok.Text[1:]]
		if !ok {
			return nil, &experr.SyntaxError{Pos: varTok.Pos, Msg: fmt.Sprintf("unknown variable %q", varTok.Text)}
		}
		outKind, ok := spec.OutputKind[varKind]
		if !ok {
			return nil, &experr.TypeError{Pos: selectorTok.Pos, Msg: fmt.Sprintf("function %q does not accept %s", selectorTok.Text, varKind)}
		}
		if p.atEnd() || p.peek().Paren != ')' {
			return nil, &experr.SyntaxError{Pos: p.lastPos(), Msg: "expected ')' to close function call"}
		}
		p.next()

		project := spec.Project
		selectFn = func(tokens []lexer.Token) []value.Value { return eval.Project(tokens, varKind, project) }
		selectorKind = outKind
	}

	if p.atEnd() {
		return nil, &experr.SyntaxError{Pos: p.lastPos(), Msg: "expected comparator"}
	}
	cmpTok := p.next()
	comparator := cmpTok.Text
	if comparator == "not" {
		if p.atEnd() || p.peek().Text != "in" {
			return nil, &experr.SyntaxError{Pos: cmpTok.Pos, Msg: "expected 'in' after 'not'"}
		}
		p.next()
		comparator = "not in"
	}

	allowed, ok := comparatorsByKind[selectorKind]
	if !ok || !allowed[comparator] {
		return nil, &experr.TypeError{Pos: cmpTok.Pos, Msg: fmt.Sprintf("comparator %q is not defined for %s", comparator, selectorKind)}
	}

	if p.atEnd() {
		return nil, &experr.SyntaxError{Pos: p.lastPos(), Msg: "expected literal"}
	}
	litTok := p.next()

	literalKind, err := literalKindForComparator(selectorKind, comparator)
	if err != nil {
		return nil, &experr.TypeError{Pos: cmpTok.Pos, Msg: err.Error()}
	}
	literal, err := parseLiteral(literalKind, litTok.Text, p.formats)
	if err != nil {
		return nil, &experr.LiteralFormatError{Pos: litTok.Pos, Literal: litTok.Text, Kind: literalKind.String()}
	}

	predicate, err := buildPredicate(comparator, literal)
	if err != nil {
		return nil, &experr.TypeError{Pos: cmpTok.Pos, Msg: err.Error()}
	}

	match := func(tokens []lexer.Token) bool {
		for _, v := range selectFn(tokens) {
			if predicate(v) {
				return true
			}
		}
		return false
	}

	text := fmt.Sprintf("%s %s %s", start.Text, comparator, litTok.Text)
	return &ast.Condition{Text: text, Match: match}, nil
}
