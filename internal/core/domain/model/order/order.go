package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"printorders/internal/core/domain/model/kernel"
	"printorders/internal/core/domain/model/stage"
	"printorders/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Details carries the client- or upstream-supplied fields of an order.
// Every field is optional on creation.
type Details struct {
	OrderID   string
	BookTitle string
	Binding   string
	Deadline  string
	S3Key     string
	Stage     string
}

// StageChange records a stage transition performed by a mutation.
type StageChange struct {
	From stage.Stage
	To   stage.Stage
}

// Order is the aggregate root tracking one print order through the
// fulfilment pipeline.
//
// Order follows these invariants:
//   - id is assigned at creation and never changes
//   - stage is never empty; new orders start at stage.First()
//   - stage only moves forward (see stage.Graph)
//   - createdAt <= updatedAt, both in epoch milliseconds
//   - createdAt is never changed by a mutation
type Order struct {
	id        kernel.UUID
	orderID   string
	bookTitle string
	binding   Binding
	deadline  Deadline
	s3Key     string
	stage     stage.Stage
	vendorID  string
	createdAt int64
	updatedAt int64

	isConstructed bool
}

// NewOrder creates an order from a partial set of details, validating every
// supplied field. Missing stage defaults to stage.First(), missing binding to Soft.
// createdAt and updatedAt are both set to now.
//
// Example:
//
//	o, err := order.NewOrder(kernel.NewUUID(), order.Details{
//	    OrderID:   "WC-1042",
//	    BookTitle: "Field Notes",
//	    Binding:   "Hard",
//	    Deadline:  "2026-11-02",
//	}, time.Now())
func NewOrder(id kernel.UUID, details Details, now time.Time) (*Order, error) {
	o := &Order{
		orderID:       strings.TrimSpace(details.OrderID),
		bookTitle:     strings.TrimSpace(details.BookTitle),
		s3Key:         strings.TrimSpace(details.S3Key),
		binding:       Soft,
		stage:         stage.First(),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setBinding(details.Binding),
		o.setDeadline(details.Deadline),
		o.setInitialStage(details.Stage),
	); err != nil {
		return nil, err
	}

	ms := now.UnixMilli()
	o.createdAt = ms
	o.updatedAt = ms
	return o, nil
}

// ImportOrder creates an order from an upstream record. It always starts at
// stage.First() and, unlike NewOrder, keeps a deadline it cannot parse as
// stored upstream; such deadlines never count as due.
func ImportOrder(id kernel.UUID, details Details, now time.Time) (*Order, error) {
	rawDeadline := strings.TrimSpace(details.Deadline)
	details.Deadline = ""
	details.Stage = ""

	o, err := NewOrder(id, details, now)
	if err != nil {
		return nil, err
	}
	o.deadline = Deadline(rawDeadline)
	return o, nil
}

// RestoreOrder rebuilds an order read from storage. It is the single place
// where defaults for missing stored fields are applied: an empty stage
// becomes stage.First() and an empty or unrecognised binding becomes Soft.
// Unrecognised stage values are kept as stored.
func RestoreOrder(id kernel.UUID, details Details, vendorID string, createdAt, updatedAt int64) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	binding, err := ParseBinding(details.Binding)
	if err != nil {
		binding = Soft
	}

	st := stage.Stage(details.Stage)
	if st == "" {
		st = stage.First()
	}

	if updatedAt < createdAt {
		updatedAt = createdAt
	}

	return &Order{
		id:            id,
		orderID:       details.OrderID,
		bookTitle:     details.BookTitle,
		binding:       binding,
		deadline:      Deadline(details.Deadline),
		s3Key:         details.S3Key,
		stage:         st,
		vendorID:      vendorID,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the Order instance was created through NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the opaque identifier assigned at creation.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// OrderID returns the external correlation identifier.
func (o *Order) OrderID() string {
	return o.orderID
}

func (o *Order) BookTitle() string {
	return o.bookTitle
}

func (o *Order) Binding() Binding {
	return o.binding
}

func (o *Order) Deadline() Deadline {
	return o.deadline
}

// S3Key returns the object-store key of the order PDF, or "" before upload.
func (o *Order) S3Key() string {
	return o.s3Key
}

// Stage returns the current stage. It may be outside the vocabulary for
// legacy records.
func (o *Order) Stage() stage.Stage {
	return o.stage
}

// VendorID returns the assigned vendor, or "" when unassigned.
func (o *Order) VendorID() string {
	return o.vendorID
}

// CreatedAt returns the creation time in epoch milliseconds.
func (o *Order) CreatedAt() int64 {
	return o.createdAt
}

// UpdatedAt returns the last mutation time in epoch milliseconds.
func (o *Order) UpdatedAt() int64 {
	return o.updatedAt
}

// HasArtifact reports whether a PDF has been uploaded for the order.
func (o *Order) HasArtifact() bool {
	return o.s3Key != ""
}

// IsAssignedTo reports whether the order belongs to the given vendor.
func (o *Order) IsAssignedTo(vendorID string) bool {
	return vendorID != "" && o.vendorID == vendorID
}

// Apply validates the whole patch first and only then mutates the order, so
// a rejected patch leaves the order untouched. A stage in the patch must be
// accepted by g for the current stage. updatedAt is always refreshed.
//
// The returned StageChange is nil when the stage did not change.
func (o *Order) Apply(p Patch, g stage.Graph, now time.Time) (*StageChange, error) {
	next := *o

	if p.OrderID != nil {
		next.orderID = strings.TrimSpace(*p.OrderID)
	}
	if p.BookTitle != nil {
		next.bookTitle = strings.TrimSpace(*p.BookTitle)
	}
	if p.S3Key != nil {
		next.s3Key = strings.TrimSpace(*p.S3Key)
	}

	var errList []error
	if p.Binding != nil {
		errList = append(errList, next.setBinding(*p.Binding))
	}
	if p.Deadline != nil {
		errList = append(errList, next.setDeadline(*p.Deadline))
	}

	var change *StageChange
	if p.Stage != nil {
		to := stage.Stage(strings.TrimSpace(*p.Stage))
		if err := g.ValidateTransition(o.stage, to); err != nil {
			errList = append(errList, err)
		} else if to != o.stage {
			change = &StageChange{From: o.stage, To: to}
			next.stage = to
		}
	}

	if err := errors.Join(errList...); err != nil {
		return nil, err
	}

	next.touch(now)
	*o = next
	return change, nil
}

// AssignVendor hands the order to a vendor. When the order is still before
// stage.AssignedToVendor it is advanced there; an order already further
// along keeps its stage, and an unrecognised stage is left as is.
func (o *Order) AssignVendor(vendorID string, now time.Time) (*StageChange, error) {
	vendorID = strings.TrimSpace(vendorID)
	if vendorID == "" {
		return nil, errs.NewValueIsRequiredError("vendorId")
	}

	var change *StageChange
	if idx := o.stage.Index(); idx >= 0 && idx < stage.AssignedToVendor.Index() {
		change = &StageChange{From: o.stage, To: stage.AssignedToVendor}
		o.stage = stage.AssignedToVendor
	}

	o.vendorID = vendorID
	o.touch(now)
	return change, nil
}

// touch refreshes updatedAt without ever letting it fall below createdAt.
func (o *Order) touch(now time.Time) {
	ms := now.UnixMilli()
	if ms < o.createdAt {
		ms = o.createdAt
	}
	o.updatedAt = ms
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setBinding(raw string) error {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	b, err := ParseBinding(strings.TrimSpace(raw))
	if err != nil {
		return err
	}
	o.binding = b
	return nil
}

func (o *Order) setDeadline(raw string) error {
	d, err := NewDeadline(raw)
	if err != nil {
		return err
	}
	o.deadline = d
	return nil
}

func (o *Order) setInitialStage(raw string) error {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	st := stage.Stage(raw)
	if !st.IsKnown() {
		return errs.NewValueIsInvalidErrorWithCause("stage", fmt.Errorf("%q is not a known stage", raw))
	}
	o.stage = st
	return nil
}
