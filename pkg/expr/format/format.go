// Package format translates the strftime-style patterns accepted on the
// command line into the time.Time layouts the temporal recognisers parse
// against, and validates them up front so a malformed pattern is a
// ConfigError rather than a per-line surprise.
package format

import (
	"fmt"
	"strings"

	"github.com/lestrrat-go/strftime"
)

// Formats holds the four configured temporal layouts, resolved once at
// start-up and read-only for the remainder of the run.
type Formats struct {
	Date          string
	Time          string
	DateTime      string
	LocalDateTime string
}

// Default patterns, taken verbatim from the command-line defaults.
const (
	DefaultDatePattern          = "%F"
	DefaultTimePattern          = "%T"
	DefaultDateTimePattern      = "%+"
	DefaultLocalDateTimePattern = "%Y-%m-%dT%H:%M:%S%.f"
)

// New validates the four strftime patterns and translates each into the Go
// reference-time layout used by time.Parse. A pattern that strftime cannot
// compile, or that contains a directive with no Go layout equivalent, is
// reported as an error (the caller surfaces it as a ConfigError).
func New(datePattern, timePattern, dateTimePattern, localDateTimePattern string) (*Formats, error) {
	date, err := compile(datePattern)
	if err != nil {
		return nil, fmt.Errorf("date format %q: %w", datePattern, err)
	}
	tod, err := compile(timePattern)
	if err != nil {
		return nil, fmt.Errorf("time format %q: %w", timePattern, err)
	}
	dt, err := compile(dateTimePattern)
	if err != nil {
		return nil, fmt.Errorf("date-time format %q: %w", dateTimePattern, err)
	}
	ldt, err := compile(localDateTimePattern)
	if err != nil {
		return nil, fmt.Errorf("local-date-time format %q: %w", localDateTimePattern, err)
	}
	return &Formats{Date: date, Time: tod, DateTime: dt, LocalDateTime: ldt}, nil
}

// chronoOnly blanks out %+ and %.f before strftime validation: strftime
// does not define them, and toGoLayout translates them itself. "%%" is
// listed first so an escaped percent followed by '+' is left untouched.
var chronoOnly = strings.NewReplacer("%%", "%%", "%+", "", "%.f", "")

// compile validates pattern against strftime (catching unknown directives
// and malformed escapes) and returns the equivalent Go time layout.
func compile(pattern string) (string, error) {
	if _, err := strftime.New(chronoOnly.Replace(pattern)); err != nil {
		return "", err
	}
	return toGoLayout(pattern)
}

// toGoLayout walks a strftime pattern directive by directive and emits the
// Go reference-time ("Mon Jan 2 15:04:05 MST 2006") equivalent. Only the
// subset of directives needed by the default patterns and their plausible
// overrides is supported; an unsupported directive is a hard error.
func toGoLayout(pattern string) (string, error) {
	var b strings.Builder
	runes := []rune(pattern)
	for i := 0; i < len(runes); i++ {
		c := runes[i]
		if c != '%' {
			b.WriteRune(c)
			continue
		}
		i++
		if i >= len(runes) {
			return "", fmt.Errorf("dangling %% at end of pattern")
		}
		// composite directives expand to one or more of the directives below
		switch runes[i] {
		case 'F':
			b.WriteString("2006-01-02")
			continue
		case 'T':
			b.WriteString("15:04:05")
			continue
		case 'R':
			b.WriteString("15:04")
			continue
		case '+':
			b.WriteString("2006-01-02T15:04:05Z07:00")
			continue
		case '.':
			// %.f: fractional seconds, present only directly after %S
			if i+1 < len(runes) && runes[i+1] == 'f' {
				b.WriteString(".999999999")
				i++
				continue
			}
			return "", fmt.Errorf("unsupported directive %%.%c", runes[i+1])
		}
		layout, ok := directives[runes[i]]
		if !ok {
			return "", fmt.Errorf("unsupported strftime directive %%%c", runes[i])
		}
		b.WriteString(layout)
	}
	return b.String(), nil
}

// directives maps single-letter strftime conversions to their Go
// reference-time layout fragment.
var directives = map[rune]string{
	'Y': "2006",
	'y': "06",
	'm': "01",
	'd': "02",
	'e': "_2",
	'H': "15",
	'I': "03",
	'M': "04",
	'S': "05",
	'p': "PM",
	'Z': "MST",
	'z': "-0700",
	'b': "Jan",
	'h': "Jan",
	'B': "January",
	'a': "Mon",
	'A': "Monday",
	'%': "%",
}
