package order

// Patch lists the fields an update may change. Nil means "leave as is".
// createdAt, updatedAt, id and vendorId are not patchable: timestamps are
// owned by the store and vendors are assigned through AssignVendor.
type Patch struct {
	OrderID   *string
	BookTitle *string
	Binding   *string
	Deadline  *string
	S3Key     *string
	Stage     *string
}

// IsEmpty reports whether the patch changes nothing.
func (p Patch) IsEmpty() bool {
	return p.OrderID == nil &&
		p.BookTitle == nil &&
		p.Binding == nil &&
		p.Deadline == nil &&
		p.S3Key == nil &&
		p.Stage == nil
}

// OnlyStage reports whether the patch touches the stage and nothing else,
// which is all a vendor may change.
func (p Patch) OnlyStage() bool {
	return p.Stage != nil &&
		p.OrderID == nil &&
		p.BookTitle == nil &&
		p.Binding == nil &&
		p.Deadline == nil &&
		p.S3Key == nil
}
