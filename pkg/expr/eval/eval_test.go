package eval

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/qpanda/semfilter/pkg/expr/format"
	"github.com/qpanda/semfilter/pkg/expr/lexer"
	"github.com/qpanda/semfilter/pkg/expr/token"
	"github.com/qpanda/semfilter/pkg/expr/value"
)

func formats(t *testing.T) *format.Formats {
	t.Helper()
	f, err := format.New(format.DefaultDatePattern, format.DefaultTimePattern, format.DefaultDateTimePattern, format.DefaultLocalDateTimePattern)
	require.NoError(t, err)
	return f
}

func TestSelectReturnsOnlyMatchingKind(t *testing.T) {
	tokens := lexer.Tokenize("42 hello 3.14", formats(t))
	ints := Select(tokens, token.KindInteger)
	require.Len(t, ints, 1)
	require.Equal(t, "42", ints[0].String())
}

func TestExistsIsVacuouslyFalseOnEmptySelection(t *testing.T) {
	tokens := lexer.Tokenize("hello world", formats(t))
	require.False(t, Exists(tokens, token.KindInteger, func(v value.Value) bool { return true }))
}
