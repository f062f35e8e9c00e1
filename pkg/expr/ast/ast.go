// Package ast defines the expression abstract syntax tree. Conditions carry
// a pre-built matcher closure, assembled by the parser's dispatch tables at
// parse time rather than re-resolved by type switch on every line.
package ast

import "github.com/qpanda/semfilter/pkg/expr/lexer"

// Node is any node in the expression tree.
type Node interface {
	// Evaluate reports whether tokens satisfies the node.
	Evaluate(tokens []lexer.Token) bool
}

// And is true iff both operands are true.
type And struct {
	L, R Node
}

func (n *And) Evaluate(tokens []lexer.Token) bool {
	return n.L.Evaluate(tokens) && n.R.Evaluate(tokens)
}

// Or is true iff either operand is true.
type Or struct {
	L, R Node
}

func (n *Or) Evaluate(tokens []lexer.Token) bool {
	return n.L.Evaluate(tokens) || n.R.Evaluate(tokens)
}

// Group is a parenthesised sub-expression. It is semantically transparent;
// it exists so the tree mirrors the source grouping the user wrote.
type Group struct {
	Inner Node
}

func (n *Group) Evaluate(tokens []lexer.Token) bool {
	return n.Inner.Evaluate(tokens)
}

// Condition is a single selector/comparator/literal comparison. Match is
// built once by the parser from the static dispatch tables and closes over
// the parsed literal; Evaluate only ever calls it.
type Condition struct {
	// Text renders the condition as its first selector word, comparator and
	// literal (a function selector appears by its name only), kept for
	// diagnostics only.
	Text  string
	Match func(tokens []lexer.Token) bool
}

func (n *Condition) Evaluate(tokens []lexer.Token) bool {
	return n.Match(tokens)
}
