package parser

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/qpanda/semfilter/pkg/expr/experr"
	"github.com/qpanda/semfilter/pkg/expr/format"
	"github.com/qpanda/semfilter/pkg/expr/lexer"
)

func defaultFormats(t *testing.T) *format.Formats {
	t.Helper()
	f, err := format.New(format.DefaultDatePattern, format.DefaultTimePattern, format.DefaultDateTimePattern, format.DefaultLocalDateTimePattern)
	require.NoError(t, err)
	return f
}

func evalLine(t *testing.T, expr, line string, formats *format.Formats) bool {
	t.Helper()
	node, err := Parse(expr, formats)
	require.NoError(t, err)
	tokens := lexer.Tokenize(line, formats)
	return node.Evaluate(tokens)
}

func TestGitTagsScenario(t *testing.T) {
	formats := defaultFormats(t)
	lines := map[string]bool{
		"0.1.0": false,
		"0.2.0": true,
		"0.3.0": true,
		"0.4.0": true,
	}
	for line, want := range lines {
		require.Equal(t, want, evalLine(t, "$semanticVersion >= 0.2.0", line, formats), line)
	}
}

func TestWOutputScenario(t *testing.T) {
	formats := defaultFormats(t)
	line := "qpanda    pts/1    10.10.0.7   20:01    7.00s  0.00s  0.00s zsh"
	require.True(t, evalLine(t, "$id == qpanda and $ipv4Address == 10.10.0.7", line, formats))
	require.False(t, evalLine(t, "$id == root", line, formats))
}

func TestTimeWithNonDefaultFormatScenario(t *testing.T) {
	formats, err := format.New(format.DefaultDatePattern, "%R", format.DefaultDateTimePattern, format.DefaultLocalDateTimePattern)
	require.NoError(t, err)
	line := "qpanda    pts/1    10.10.0.8   21:41    7.00s  0.00s  0.00s zsh"
	require.True(t, evalLine(t, "$id == qpanda and $time > 21:00", line, formats))
	require.False(t, evalLine(t, "$id == qpanda and $time > 22:00", line, formats))
}

func TestNetstatCIDRScenario(t *testing.T) {
	formats := defaultFormats(t)
	line := "tcp        1      0 109.74.193.253:25       193.32.160.143:41356    ESTABLISHED"
	require.True(t, evalLine(t, "$id == ESTABLISHED and ip($ipv4SocketAddress) in 193.32.160.0/24", line, formats))
	require.False(t, evalLine(t, "$id == ESTABLISHED and ip($ipv4SocketAddress) in 193.32.161.0/24", line, formats))
}

func TestPortFunctionScenario(t *testing.T) {
	formats := defaultFormats(t)
	line := "src 10.10.0.7:8080 dst 10.10.0.8:9001"
	require.True(t, evalLine(t, "port($ipv4SocketAddress) == 8080", line, formats))
	require.True(t, evalLine(t, "port($ipv4SocketAddress) > 9000", line, formats))
	require.False(t, evalLine(t, "port($ipv4SocketAddress) > 9999", line, formats))
}

func TestEmptyTokenSetScenario(t *testing.T) {
	formats := defaultFormats(t)
	line := "hello world"
	require.False(t, evalLine(t, "$integer > 0", line, formats))
	require.True(t, evalLine(t, "$id contains hell", line, formats))
}

func TestGroupingDoesNotChangeSemantics(t *testing.T) {
	formats := defaultFormats(t)
	line := "qpanda 10.10.0.7"
	require.Equal(t,
		evalLine(t, "$id == qpanda and $ipv4Address == 10.10.0.7", line, formats),
		evalLine(t, "($id == qpanda) and ($ipv4Address == 10.10.0.7)", line, formats),
	)
}

func TestMixedAndOrWithoutParenthesesIsSyntaxError(t *testing.T) {
	formats := defaultFormats(t)
	_, err := Parse("$id == a and $id == b or $id == c", formats)
	require.Error(t, err)
	var syntaxErr *experr.SyntaxError
	require.ErrorAs(t, err, &syntaxErr)
}

func TestMixedAndOrWithParenthesesIsValid(t *testing.T) {
	formats := defaultFormats(t)
	_, err := Parse("($id == a and $id == b) or $id == c", formats)
	require.NoError(t, err)
}

func TestUnknownVariableIsSyntaxError(t *testing.T) {
	formats := defaultFormats(t)
	_, err := Parse("$bogus == 1", formats)
	var syntaxErr *experr.SyntaxError
	require.ErrorAs(t, err, &syntaxErr)
}

func TestUnsupportedComparatorIsTypeError(t *testing.T) {
	formats := defaultFormats(t)
	_, err := Parse("$integer contains 1", formats)
	var typeErr *experr.TypeError
	require.ErrorAs(t, err, &typeErr)
}

func TestMalformedLiteralIsLiteralFormatError(t *testing.T) {
	formats := defaultFormats(t)
	_, err := Parse("$integer == notanumber", formats)
	var litErr *experr.LiteralFormatError
	require.ErrorAs(t, err, &litErr)
}

func TestUnbalancedParenthesesIsSyntaxError(t *testing.T) {
	formats := defaultFormats(t)
	_, err := Parse("($id == a and $id == b", formats)
	require.Error(t, err)
}

func TestFunctionOnWrongInputKindIsTypeError(t *testing.T) {
	formats := defaultFormats(t)
	_, err := Parse("port($id) == 80", formats)
	var typeErr *experr.TypeError
	require.ErrorAs(t, err, &typeErr)
}
