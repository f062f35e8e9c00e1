package lexer

import (
	"net/netip"
	"strconv"
	"strings"
	"time"

	"github.com/Masterminds/semver/v3"

	"github.com/qpanda/semfilter/pkg/expr/value"
)

func recogniseInteger(raw string) (value.Integer, bool) {
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return value.Integer(n), true
}

// recogniseFloat accepts an optional sign, digits and at most one '.', with
// at least one digit present. An integer-looking token (no '.') is
// explicitly excluded, as are the scientific-notation / inf / nan forms
// strconv.ParseFloat would otherwise accept.
func recogniseFloat(raw string) (value.Float, bool) {
	s := raw
	if s == "" {
		return 0, false
	}
	if s[0] == '+' || s[0] == '-' {
		s = s[1:]
	}
	if s == "" {
		return 0, false
	}
	dot := false
	digits := false
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			digits = true
		case r == '.' && !dot:
			dot = true
		default:
			return 0, false
		}
	}
	if !digits || !dot {
		return 0, false
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return value.Float(f), true
}

func recogniseID(raw string) (value.ID, bool) {
	if raw == "" {
		return "", false
	}
	first := rune(raw[0])
	if !isAlpha(first) {
		return "", false
	}
	for _, r := range raw[1:] {
		if !isAlphaNum(r) && strings.IndexRune("+-.:_", r) < 0 {
			return "", false
		}
	}
	return value.ID(raw), true
}

func isAlpha(r rune) bool {
	return (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z')
}

func isAlphaNum(r rune) bool {
	return isAlpha(r) || (r >= '0' && r <= '9')
}

func recogniseDate(raw, layout string) (value.Date, bool) {
	t, err := time.Parse(layout, raw)
	if err != nil {
		return value.Date{}, false
	}
	return value.Date{T: t}, true
}

func recogniseTime(raw, layout string) (value.Time, bool) {
	t, err := time.Parse(layout, raw)
	if err != nil {
		return value.Time{}, false
	}
	return value.Time{T: t}, true
}

func recogniseDateTime(raw, layout string) (value.DateTime, bool) {
	t, err := time.Parse(layout, raw)
	if err != nil {
		return value.DateTime{}, false
	}
	return value.DateTime{T: t}, true
}

func recogniseLocalDateTime(raw, layout string) (value.LocalDateTime, bool) {
	t, err := time.Parse(layout, raw)
	if err != nil {
		return value.LocalDateTime{}, false
	}
	return value.LocalDateTime{T: t}, true
}

func recogniseIPAddress(raw string) []value.Value {
	addr, err := netip.ParseAddr(raw)
	if err != nil {
		return nil
	}
	out := make([]value.Value, 0, 2)
	for _, v := range value.NewIPAddress(addr) {
		out = append(out, v)
	}
	return out
}

func recogniseIPSocketAddress(raw string) []value.Value {
	ap, err := netip.ParseAddrPort(raw)
	if err != nil {
		return nil
	}
	out := make([]value.Value, 0, 2)
	for _, v := range value.NewIPSocketAddress(ap) {
		out = append(out, v)
	}
	return out
}

func recogniseIPNetwork(raw string) []value.Value {
	p, err := netip.ParsePrefix(raw)
	if err != nil {
		return nil
	}
	out := make([]value.Value, 0, 2)
	for _, v := range value.NewIPNetwork(p) {
		out = append(out, v)
	}
	return out
}

func recogniseSemanticVersion(raw string) (value.SemanticVersion, bool) {
	v, err := semver.StrictNewVersion(raw)
	if err != nil {
		return value.SemanticVersion{}, false
	}
	return value.SemanticVersion{V: v}, true
}
