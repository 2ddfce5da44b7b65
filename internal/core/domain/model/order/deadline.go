package order

import (
	"strings"
	"time"

	"printorders/internal/pkg/errs"
)

// DeadlineLayout is the wire format of a deadline: a calendar date without time.
const DeadlineLayout = "2006-01-02"

// Deadline is the calendar date an order is due. It keeps the raw stored
// value because records imported from upstream may carry an empty or
// unparseable date; such deadlines report ok=false from Date.
type Deadline string

// NewDeadline validates a client-supplied deadline. The empty string means
// "no deadline" and is accepted.
func NewDeadline(raw string) (Deadline, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", nil
	}
	if _, err := time.Parse(DeadlineLayout, raw); err != nil {
		return "", errs.NewValueIsInvalidErrorWithCause("deadline", err)
	}
	return Deadline(raw), nil
}

// IsSet reports whether any value is stored.
func (d Deadline) IsSet() bool {
	return d != ""
}

// Date returns midnight of the deadline in loc.
func (d Deadline) Date(loc *time.Location) (time.Time, bool) {
	if !d.IsSet() {
		return time.Time{}, false
	}
	t, err := time.ParseInLocation(DeadlineLayout, string(d), loc)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// String implements fmt.Stringer.
func (d Deadline) String() string {
	return string(d)
}
