package value

import (
	"strings"

	"github.com/qpanda/semfilter/pkg/expr/token"
)

// ID is an identifier token: first character alphabetic, the remainder
// alphanumeric or one of "+-.:_".
type ID string

func (v ID) Kind() token.Kind { return token.KindID }
func (v ID) String() string   { return string(v) }
func (v ID) Text() string     { return string(v) }

func (v ID) Less(other Value) bool {
	o, ok := other.(ID)
	return ok && v < o
}

func (v ID) Equal(other Value) bool {
	o, ok := other.(ID)
	return ok && v == o
}

// Contains reports whether the identifier's raw text contains needle.
func (v ID) Contains(needle ID) bool {
	return strings.Contains(string(v), string(needle))
}

// StartsWith reports whether the identifier's raw text is prefixed by needle.
func (v ID) StartsWith(needle ID) bool {
	return strings.HasPrefix(string(v), string(needle))
}

// EndsWith reports whether the identifier's raw text is suffixed by needle.
func (v ID) EndsWith(needle ID) bool {
	return strings.HasSuffix(string(v), string(needle))
}
