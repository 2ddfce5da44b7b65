package order

import (
	"fmt"
	"strings"

	"printorders/internal/pkg/errs"
)

// Binding is the cover type of the printed book.
type Binding string

const (
	Soft Binding = "Soft"
	Hard Binding = "Hard"
)

// ParseBinding accepts "Soft" or "Hard" in any letter case.
func ParseBinding(raw string) (Binding, error) {
	switch {
	case strings.EqualFold(raw, string(Soft)):
		return Soft, nil
	case strings.EqualFold(raw, string(Hard)):
		return Hard, nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause(
			"binding",
			fmt.Errorf("%q is neither Soft nor Hard", raw),
		)
	}
}

// String implements fmt.Stringer.
func (b Binding) String() string {
	return string(b)
}
