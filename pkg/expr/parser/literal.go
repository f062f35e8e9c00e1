package parser

import (
	"fmt"
	"net/netip"
	"strconv"
	"strings"
	"time"

	"github.com/Masterminds/semver/v3"

	"github.com/qpanda/semfilter/pkg/expr/format"
	"github.com/qpanda/semfilter/pkg/expr/token"
	"github.com/qpanda/semfilter/pkg/expr/value"
)

// parseLiteral parses text as the specific kind required by the
// surrounding condition's dispatch-table entry. Unlike the tokenizer's
// recognise, this is targeted: a literal must parse as exactly kind, not
// merely as one of several possible interpretations.
func parseLiteral(kind token.Kind, text string, formats *format.Formats) (value.Value, error) {
	switch kind {
	case token.KindInteger:
		return parseIntegerLiteral(text)
	case token.KindFloat:
		return parseFloatLiteral(text)
	case token.KindID:
		return parseIDLiteral(text)
	case token.KindDate:
		return parseDateLiteral(text, formats.Date)
	case token.KindTime:
		return parseTimeLiteral(text, formats.Time)
	case token.KindDateTime:
		return parseDateTimeLiteral(text, formats.DateTime)
	case token.KindLocalDateTime:
		return parseLocalDateTimeLiteral(text, formats.LocalDateTime)
	case token.KindIPAddress, token.KindIPv4Address, token.KindIPv6Address:
		return parseIPAddressLiteral(kind, text)
	case token.KindIPSocketAddress, token.KindIPv4SocketAddress, token.KindIPv6SocketAddress:
		return parseIPSocketAddressLiteral(kind, text)
	case token.KindIPNetwork, token.KindIPv4Network, token.KindIPv6Network:
		return parseIPNetworkLiteral(kind, text)
	case token.KindSemanticVersion:
		return parseSemanticVersionLiteral(text)
	case token.KindSemanticVersionRequirement:
		return parseSemanticVersionRequirementLiteral(text)
	case token.KindPort:
		return parsePortLiteral(text)
	}
	return nil, fmt.Errorf("no literal parser for kind %s", kind)
}

func parseIntegerLiteral(text string) (value.Value, error) {
	n, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%q is not a valid integer", text)
	}
	return value.Integer(n), nil
}

func parseFloatLiteral(text string) (value.Value, error) {
	if !strings.Contains(text, ".") {
		return nil, fmt.Errorf("%q is not a valid float", text)
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return nil, fmt.Errorf("%q is not a valid float", text)
	}
	return value.Float(f), nil
}

func parseIDLiteral(text string) (value.Value, error) {
	if text == "" {
		return nil, fmt.Errorf("empty id literal")
	}
	return value.ID(text), nil
}

func parseDateLiteral(text, layout string) (value.Value, error) {
	t, err := time.Parse(layout, text)
	if err != nil {
		return nil, fmt.Errorf("%q does not match the configured date format: %w", text, err)
	}
	return value.Date{T: t}, nil
}

func parseTimeLiteral(text, layout string) (value.Value, error) {
	t, err := time.Parse(layout, text)
	if err != nil {
		return nil, fmt.Errorf("%q does not match the configured time format: %w", text, err)
	}
	return value.Time{T: t}, nil
}

func parseDateTimeLiteral(text, layout string) (value.Value, error) {
	t, err := time.Parse(layout, text)
	if err != nil {
		return nil, fmt.Errorf("%q does not match the configured date-time format: %w", text, err)
	}
	return value.DateTime{T: t}, nil
}

func parseLocalDateTimeLiteral(text, layout string) (value.Value, error) {
	t, err := time.Parse(layout, text)
	if err != nil {
		return nil, fmt.Errorf("%q does not match the configured local-date-time format: %w", text, err)
	}
	return value.LocalDateTime{T: t}, nil
}

func parseIPAddressLiteral(kind token.Kind, text string) (value.Value, error) {
	addr, err := netip.ParseAddr(text)
	if err != nil {
		return nil, err
	}
	if kind == token.KindIPv4Address && !addr.Is4() {
		return nil, fmt.Errorf("%q is not an IPv4 address", text)
	}
	if kind == token.KindIPv6Address && !addr.Is6() {
		return nil, fmt.Errorf("%q is not an IPv6 address", text)
	}
	return value.IPAddress{Addr: addr, K: kind}, nil
}

func parseIPSocketAddressLiteral(kind token.Kind, text string) (value.Value, error) {
	ap, err := netip.ParseAddrPort(text)
	if err != nil {
		return nil, err
	}
	if kind == token.KindIPv4SocketAddress && !ap.Addr().Is4() {
		return nil, fmt.Errorf("%q is not an IPv4 socket address", text)
	}
	if kind == token.KindIPv6SocketAddress && !ap.Addr().Is6() {
		return nil, fmt.Errorf("%q is not an IPv6 socket address", text)
	}
	return value.IPSocketAddress{AddrPort: ap, K: kind}, nil
}

func parseIPNetworkLiteral(kind token.Kind, text string) (value.Value, error) {
	p, err := netip.ParsePrefix(text)
	if err != nil {
		return nil, err
	}
	if kind == token.KindIPv4Network && !p.Addr().Is4() {
		return nil, fmt.Errorf("%q is not an IPv4 network", text)
	}
	if kind == token.KindIPv6Network && !p.Addr().Is6() {
		return nil, fmt.Errorf("%q is not an IPv6 network", text)
	}
	return value.IPNetwork{Prefix: p, K: kind}, nil
}

func parseSemanticVersionLiteral(text string) (value.Value, error) {
	v, err := semver.StrictNewVersion(text)
	if err != nil {
		return nil, err
	}
	return value.SemanticVersion{V: v}, nil
}

func parseSemanticVersionRequirementLiteral(text string) (value.Value, error) {
	c, err := semver.NewConstraint(text)
	if err != nil {
		return nil, err
	}
	return value.SemanticVersionRequirement{C: c}, nil
}

func parsePortLiteral(text string) (value.Value, error) {
	n, err := strconv.ParseUint(text, 10, 16)
	if err != nil {
		return nil, fmt.Errorf("%q is not a valid port", text)
	}
	return value.Port(n), nil
}
