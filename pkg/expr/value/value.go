// Package value implements the closed TypedValue set: the concrete types a
// token interpretation or a parsed literal can hold, together with the
// ordering and extended-comparator operations the evaluator dispatches to.
package value

import "github.com/qpanda/semfilter/pkg/expr/token"

// Value is satisfied by every member of the TypedValue set.
type Value interface {
	// Kind identifies which member of the closed set this value is.
	Kind() token.Kind
	// String renders the canonical form of the value. For kinds the
	// tokenizer produces, this is a form a recogniser in pkg/expr/lexer
	// accepts to reproduce it (for temporal kinds, under the default
	// patterns); Port and SemanticVersionRequirement have no recogniser.
	String() string
}

// Ordered is satisfied by values that support the basic comparators
// (== != > >= < <=). Less and Equal must agree with a single total order.
type Ordered interface {
	Value
	Less(other Value) bool
	Equal(other Value) bool
}

// IDLike is satisfied by values whose raw textual form supports the
// extended id comparators (contains, starts-with, ends-with).
type IDLike interface {
	Value
	Text() string
}

// Containable is satisfied by address-family values that can be tested for
// membership in a network of the same family (the `in` / `not in` comparators).
type Containable interface {
	Value
	In(network Value) (bool, bool) // second return is false if network is not a compatible kind
}

// Matchable is satisfied by values that support the `matches` comparator
// against a requirement value of a compatible kind.
type Matchable interface {
	Value
	Matches(requirement Value) (bool, bool)
}
