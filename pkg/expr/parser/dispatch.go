package parser

import (
	"fmt"
	"strings"

	"github.com/qpanda/semfilter/pkg/expr/token"
	"github.com/qpanda/semfilter/pkg/expr/value"
)

var basicComparators = []string{"==", "!=", ">", ">=", "<", "<="}

// comparatorsByKind is the static (value-kind -> allowed comparators)
// table of §4.3, consulted at parse time so an unsupported combination is
// a parse error rather than a runtime type failure.
var comparatorsByKind = map[token.Kind]map[string]bool{
	token.KindInteger:             set(basicComparators),
	token.KindFloat:                set(basicComparators),
	token.KindID:                   set(basicComparators, "contains", "starts-with", "ends-with"),
	token.KindDate:                 set(basicComparators),
	token.KindTime:                 set(basicComparators),
	token.KindDateTime:             set(basicComparators),
	token.KindLocalDateTime:        set(basicComparators),
	token.KindIPAddress:            set(basicComparators, "in", "not in"),
	token.KindIPv4Address:          set(basicComparators, "in", "not in"),
	token.KindIPv6Address:          set(basicComparators, "in", "not in"),
	token.KindIPSocketAddress:      set(basicComparators),
	token.KindIPv4SocketAddress:    set(basicComparators),
	token.KindIPv6SocketAddress:    set(basicComparators),
	token.KindIPNetwork:            set(basicComparators),
	token.KindIPv4Network:          set(basicComparators),
	token.KindIPv6Network:          set(basicComparators),
	token.KindSemanticVersion:      set(basicComparators, "matches"),
	token.KindPort:                 set(basicComparators),
}

func set(lists ...interface{}) map[string]bool {
	m := make(map[string]bool)
	for _, l := range lists {
		switch v := l.(type) {
		case []string:
			for _, s := range v {
				m[s] = true
			}
		case string:
			m[v] = true
		}
	}
	return m
}

// literalKindForComparator returns the kind a literal must parse as, given
// the selector's resolved kind and the comparator applied to it. For most
// comparators this is just selectorKind; `in`/`not in` require a Network
// of the matching address family, and `matches` requires a
// SemanticVersionRequirement.
func literalKindForComparator(selectorKind token.Kind, comparator string) (token.Kind, error) {
	switch comparator {
	case "in", "not in":
		switch selectorKind {
		case token.KindIPAddress:
			return token.KindIPNetwork, nil
		case token.KindIPv4Address:
			return token.KindIPv4Network, nil
		case token.KindIPv6Address:
			return token.KindIPv6Network, nil
		}
		return 0, fmt.Errorf("comparator %q is not defined for %s", comparator, selectorKind)
	case "matches":
		if selectorKind != token.KindSemanticVersion {
			return 0, fmt.Errorf("comparator %q is not defined for %s", comparator, selectorKind)
		}
		return token.KindSemanticVersionRequirement, nil
	default:
		return selectorKind, nil
	}
}

// buildPredicate returns the function a Condition uses to test a single
// selected value against the parsed literal for the given comparator.
func buildPredicate(comparator string, literal value.Value) (func(value.Value) bool, error) {
	switch comparator {
	case "==":
		return func(v value.Value) bool { return asOrdered(v).Equal(literal) }, nil
	case "!=":
		return func(v value.Value) bool { return !asOrdered(v).Equal(literal) }, nil
	case ">":
		return func(v value.Value) bool { return asOrdered(literal).Less(v) }, nil
	case ">=":
		return func(v value.Value) bool { return !asOrdered(v).Less(literal) }, nil
	case "<":
		return func(v value.Value) bool { return asOrdered(v).Less(literal) }, nil
	case "<=":
		return func(v value.Value) bool { return !asOrdered(literal).Less(v) }, nil
	case "contains":
		lit := literal.(value.IDLike).Text()
		return func(v value.Value) bool { return strings.Contains(v.(value.IDLike).Text(), lit) }, nil
	case "starts-with":
		lit := literal.(value.IDLike).Text()
		return func(v value.Value) bool { return strings.HasPrefix(v.(value.IDLike).Text(), lit) }, nil
	case "ends-with":
		lit := literal.(value.IDLike).Text()
		return func(v value.Value) bool { return strings.HasSuffix(v.(value.IDLike).Text(), lit) }, nil
	case "in":
		return func(v value.Value) bool {
			ok, _ := v.(value.Containable).In(literal)
			return ok
		}, nil
	case "not in":
		return func(v value.Value) bool {
			ok, _ := v.(value.Containable).In(literal)
			return !ok
		}, nil
	case "matches":
		return func(v value.Value) bool {
			ok, _ := v.(value.Matchable).Matches(literal)
			return ok
		}, nil
	}
	return nil, fmt.Errorf("unknown comparator %q", comparator)
}

func asOrdered(v value.Value) value.Ordered {
	return v.(value.Ordered)
}

// functionSpec describes a selector-projection function: the selector
// kinds it accepts, the output kind it produces for each, and the
// projection itself.
type functionSpec struct {
	OutputKind map[token.Kind]token.Kind
	Project    func(value.Value) (value.Value, bool)
}

var functions = map[string]functionSpec{
	"port": {
		OutputKind: map[token.Kind]token.Kind{
			token.KindIPSocketAddress:   token.KindPort,
			token.KindIPv4SocketAddress: token.KindPort,
			token.KindIPv6SocketAddress: token.KindPort,
		},
		Project: func(v value.Value) (value.Value, bool) {
			sock, ok := v.(value.IPSocketAddress)
			if !ok {
				return nil, false
			}
			return value.Port(sock.AddrPort.Port()), true
		},
	},
	"ip": {
		OutputKind: map[token.Kind]token.Kind{
			token.KindIPSocketAddress:   token.KindIPAddress,
			token.KindIPv4SocketAddress: token.KindIPv4Address,
			token.KindIPv6SocketAddress: token.KindIPv6Address,
		},
		Project: func(v value.Value) (value.Value, bool) {
			sock, ok := v.(value.IPSocketAddress)
			if !ok {
				return nil, false
			}
			outKind := token.KindIPAddress
			if sock.AddrPort.Addr().Is6() {
				outKind = token.KindIPv6Address
			} else if sock.AddrPort.Addr().Is4() {
				outKind = token.KindIPv4Address
			}
			return value.IPAddress{Addr: sock.AddrPort.Addr(), K: outKind}, true
		},
	},
}
