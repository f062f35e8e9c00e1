package value

import (
	"strconv"
	"strings"

	"github.com/qpanda/semfilter/pkg/expr/token"
)

// Integer is a signed 64-bit whole number.
type Integer int64

func (v Integer) Kind() token.Kind { return token.KindInteger }
func (v Integer) String() string   { return strconv.FormatInt(int64(v), 10) }

func (v Integer) Less(other Value) bool {
	o, ok := other.(Integer)
	return ok && v < o
}

func (v Integer) Equal(other Value) bool {
	o, ok := other.(Integer)
	return ok && v == o
}

// Float is a finite IEEE 754 double; NaN and infinities never occur, since
// the recogniser in pkg/expr/lexer rejects them outright.
type Float float64

func (v Float) Kind() token.Kind { return token.KindFloat }
func (v Float) String() string {
	s := strconv.FormatFloat(float64(v), 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

func (v Float) Less(other Value) bool {
	o, ok := other.(Float)
	return ok && v < o
}

func (v Float) Equal(other Value) bool {
	o, ok := other.(Float)
	return ok && v == o
}
