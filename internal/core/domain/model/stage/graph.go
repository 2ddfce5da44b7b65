package stage

import (
	"fmt"
	"slices"
	"strings"

	"printorders/internal/pkg/errs"
)

// UnknownPolicy decides what happens when an order's current stage is not
// part of the vocabulary (legacy or hand-edited records).
type UnknownPolicy int

const (
	// Permissive lets an order with an unrecognised stage move to any known stage.
	Permissive UnknownPolicy = iota
	// Strict rejects every transition out of an unrecognised stage.
	Strict
)

// ParseUnknownPolicy maps the configuration value ("permissive" or "strict",
// case-insensitive, empty meaning permissive) onto an UnknownPolicy.
func ParseUnknownPolicy(raw string) (UnknownPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "permissive":
		return Permissive, nil
	case "strict":
		return Strict, nil
	default:
		return Permissive, errs.NewValueIsInvalidErrorWithCause(
			"stage unknown policy",
			fmt.Errorf("%q is neither permissive nor strict", raw),
		)
	}
}

// Graph validates stage transitions against the fixed progression order.
//
// Example:
//
//	g := stage.NewGraph(stage.Permissive)
//	if err := g.ValidateTransition(stage.Printing, stage.Packed); err != nil {
//	    // never reached: skipping Quality Check is allowed
//	}
//	err := g.ValidateTransition(stage.Packed, stage.Printing) // ValueIsInvalidError
type Graph struct {
	policy UnknownPolicy
}

// NewGraph creates a transition validator with the given unknown-stage policy.
func NewGraph(policy UnknownPolicy) Graph {
	return Graph{policy: policy}
}

// Policy returns the configured unknown-stage policy.
func (g Graph) Policy() UnknownPolicy {
	return g.policy
}

// ValidateTransition accepts to when it equals from or is one of
// NextOptions(from). The target must always be a known stage.
func (g Graph) ValidateTransition(from, to Stage) error {
	if !to.IsKnown() {
		return errs.NewValueIsInvalidErrorWithCause(
			"stage",
			fmt.Errorf("%q is not a known stage", string(to)),
		)
	}

	if !from.IsKnown() {
		if g.policy == Strict {
			return errs.NewValueIsInvalidErrorWithCause(
				"stage",
				fmt.Errorf("current stage %q is not a known stage", string(from)),
			)
		}
		return nil
	}

	if to == from || slices.Contains(NextOptions(from), to) {
		return nil
	}

	return errs.NewValueIsInvalidErrorWithCause(
		"stage",
		fmt.Errorf("cannot move from %q back to %q", string(from), string(to)),
	)
}
