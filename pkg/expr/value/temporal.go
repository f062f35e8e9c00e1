package value

import (
	"time"

	"github.com/qpanda/semfilter/pkg/expr/token"
)

// Date is a calendar date with no time-of-day component.
type Date struct{ T time.Time }

func (v Date) Kind() token.Kind { return token.KindDate }
func (v Date) String() string   { return v.T.Format("2006-01-02") }
func (v Date) Less(other Value) bool {
	o, ok := other.(Date)
	return ok && v.T.Before(o.T)
}
func (v Date) Equal(other Value) bool {
	o, ok := other.(Date)
	return ok && v.T.Equal(o.T)
}

// Time is a time-of-day with no calendar date component.
type Time struct{ T time.Time }

func (v Time) Kind() token.Kind { return token.KindTime }
func (v Time) String() string   { return v.T.Format("15:04:05.999999999") }
func (v Time) Less(other Value) bool {
	o, ok := other.(Time)
	return ok && v.T.Before(o.T)
}
func (v Time) Equal(other Value) bool {
	o, ok := other.(Time)
	return ok && v.T.Equal(o.T)
}

// DateTime is a timezone-aware instant.
type DateTime struct{ T time.Time }

func (v DateTime) Kind() token.Kind { return token.KindDateTime }
func (v DateTime) String() string   { return v.T.Format(time.RFC3339Nano) }
func (v DateTime) Less(other Value) bool {
	o, ok := other.(DateTime)
	return ok && v.T.Before(o.T)
}
func (v DateTime) Equal(other Value) bool {
	o, ok := other.(DateTime)
	return ok && v.T.Equal(o.T)
}

// LocalDateTime is a naive (zone-less) date and time.
type LocalDateTime struct{ T time.Time }

func (v LocalDateTime) Kind() token.Kind { return token.KindLocalDateTime }
func (v LocalDateTime) String() string   { return v.T.Format("2006-01-02T15:04:05.999999999") }
func (v LocalDateTime) Less(other Value) bool {
	o, ok := other.(LocalDateTime)
	return ok && v.T.Before(o.T)
}
func (v LocalDateTime) Equal(other Value) bool {
	o, ok := other.(LocalDateTime)
	return ok && v.T.Equal(o.T)
}
