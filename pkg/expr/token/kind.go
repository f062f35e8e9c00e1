// Package token defines the closed set of typed value kinds that the
// tokenizer, parser and evaluator agree on.
package token

// Kind tags a TypedValue with the variant of the closed set it belongs to.
type Kind int

const (
	KindUnknown Kind = iota
	KindInteger
	KindFloat
	KindID
	KindDate
	KindTime
	KindDateTime
	KindLocalDateTime
	KindIPAddress
	KindIPv4Address
	KindIPv6Address
	KindIPSocketAddress
	KindIPv4SocketAddress
	KindIPv6SocketAddress
	KindIPNetwork
	KindIPv4Network
	KindIPv6Network
	KindSemanticVersion

	// KindPort and KindSemanticVersionRequirement never appear as a
	// tokenizer-produced interpretation; they exist only as literal/result
	// kinds inside the parser and function dispatch tables.
	KindPort
	KindSemanticVersionRequirement
)

var names = map[Kind]string{
	KindUnknown:                    "unknown",
	KindInteger:                    "integer",
	KindFloat:                      "float",
	KindID:                         "id",
	KindDate:                       "date",
	KindTime:                       "time",
	KindDateTime:                   "dateTime",
	KindLocalDateTime:              "localDateTime",
	KindIPAddress:                  "ipAddress",
	KindIPv4Address:                "ipv4Address",
	KindIPv6Address:                "ipv6Address",
	KindIPSocketAddress:            "ipSocketAddress",
	KindIPv4SocketAddress:          "ipv4SocketAddress",
	KindIPv6SocketAddress:          "ipv6SocketAddress",
	KindIPNetwork:                  "ipNetwork",
	KindIPv4Network:                "ipv4Network",
	KindIPv6Network:                "ipv6Network",
	KindSemanticVersion:            "semanticVersion",
	KindPort:                       "port",
	KindSemanticVersionRequirement: "semanticVersionRequirement",
}

// String renders the kind the way it appears in $variable placeholders
// (sans the leading '$').
func (k Kind) String() string {
	if s, ok := names[k]; ok {
		return s
	}
	return "unknown"
}

// VariableKinds are the kinds that may appear as a bare `$name` selector,
// i.e. every kind the tokenizer can actually produce.
var VariableKinds = map[string]Kind{
	"integer":           KindInteger,
	"float":             KindFloat,
	"id":                KindID,
	"date":              KindDate,
	"time":              KindTime,
	"dateTime":          KindDateTime,
	"localDateTime":     KindLocalDateTime,
	"ipAddress":         KindIPAddress,
	"ipv4Address":       KindIPv4Address,
	"ipv6Address":       KindIPv6Address,
	"ipSocketAddress":   KindIPSocketAddress,
	"ipv4SocketAddress": KindIPv4SocketAddress,
	"ipv6SocketAddress": KindIPv6SocketAddress,
	"ipNetwork":         KindIPNetwork,
	"ipv4Network":       KindIPv4Network,
	"ipv6Network":       KindIPv6Network,
	"semanticVersion":   KindSemanticVersion,
}
