package value

import (
	"strconv"

	"github.com/qpanda/semfilter/pkg/expr/token"
)

// Port is the 16-bit result of the `port` function; it never appears as a
// tokenizer-produced interpretation, only as a selector/literal kind.
type Port uint16

func (v Port) Kind() token.Kind { return token.KindPort }
func (v Port) String() string   { return strconv.FormatUint(uint64(v), 10) }

func (v Port) Less(other Value) bool {
	o, ok := other.(Port)
	return ok && v < o
}

func (v Port) Equal(other Value) bool {
	o, ok := other.(Port)
	return ok && v == o
}
