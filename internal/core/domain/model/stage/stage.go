// Package stage defines the ordered fulfilment vocabulary an order moves
// through, from upload to delivery, and the rule deciding which moves are legal.
//
// The order of All is significant: a stage may move to any stage that comes
// after it (skipping is allowed, e.g. past Quality Check) but never to one
// before it, so per-stage counts are never corrupted by regressions.
//
//	Uploaded -> Assigned to Vendor -> Printing -> Quality Check -> Packed ->
//	Shipped to Admin -> Received by Admin -> Final Packed for Customer ->
//	Shipped to Customer -> Delivered
package stage

// Stage is one position in the fulfilment vocabulary. The underlying string
// is the wire value. Values read from storage may fall outside the
// vocabulary; IsKnown tells them apart.
type Stage string

const (
	Uploaded               Stage = "Uploaded"
	AssignedToVendor       Stage = "Assigned to Vendor"
	Printing               Stage = "Printing"
	QualityCheck           Stage = "Quality Check"
	Packed                 Stage = "Packed"
	ShippedToAdmin         Stage = "Shipped to Admin"
	ReceivedByAdmin        Stage = "Received by Admin"
	FinalPackedForCustomer Stage = "Final Packed for Customer"
	ShippedToCustomer      Stage = "Shipped to Customer"
	Delivered              Stage = "Delivered"
)

// DefaultColorClass is the display token for stages outside the vocabulary.
const DefaultColorClass = "bg-gray-100 text-gray-800"

var ordered = [...]Stage{
	Uploaded,
	AssignedToVendor,
	Printing,
	QualityCheck,
	Packed,
	ShippedToAdmin,
	ReceivedByAdmin,
	FinalPackedForCustomer,
	ShippedToCustomer,
	Delivered,
}

var colorClasses = map[Stage]string{
	Uploaded:               "bg-slate-100 text-slate-800",
	AssignedToVendor:       "bg-blue-100 text-blue-800",
	Printing:               "bg-indigo-100 text-indigo-800",
	QualityCheck:           "bg-yellow-100 text-yellow-800",
	Packed:                 "bg-orange-100 text-orange-800",
	ShippedToAdmin:         "bg-purple-100 text-purple-800",
	ReceivedByAdmin:        "bg-pink-100 text-pink-800",
	FinalPackedForCustomer: "bg-teal-100 text-teal-800",
	ShippedToCustomer:      "bg-cyan-100 text-cyan-800",
	Delivered:              "bg-green-100 text-green-800",
}

// All returns the ten stages in progression order. The result is a fresh
// slice; callers may modify it.
func All() []Stage {
	out := make([]Stage, len(ordered))
	copy(out, ordered[:])
	return out
}

// First is the stage every new order starts in.
func First() Stage {
	return ordered[0]
}

// Last is the terminal stage.
func Last() Stage {
	return ordered[len(ordered)-1]
}

// Index returns the position of s in All, or -1 when s is not in the vocabulary.
func (s Stage) Index() int {
	for i, candidate := range ordered {
		if candidate == s {
			return i
		}
	}
	return -1
}

// IsKnown reports whether s belongs to the vocabulary.
func (s Stage) IsKnown() bool {
	return s.Index() >= 0
}

// String implements fmt.Stringer.
func (s Stage) String() string {
	return string(s)
}

// NextOptions returns every stage strictly after current, in order. An
// unrecognised current stage carries no position information, so the full
// vocabulary is returned. The terminal stage yields an empty slice.
func NextOptions(current Stage) []Stage {
	idx := current.Index()
	if idx < 0 {
		return All()
	}
	out := make([]Stage, 0, len(ordered)-idx-1)
	return append(out, ordered[idx+1:]...)
}

// ColorClass returns the display token for s; unknown stages share DefaultColorClass.
func ColorClass(s Stage) string {
	if class, ok := colorClasses[s]; ok {
		return class
	}
	return DefaultColorClass
}
