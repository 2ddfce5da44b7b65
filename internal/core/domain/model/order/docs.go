// Package order provides the Order aggregate of the print-order service.
//
// An Order is created by an administrator or imported from the upstream shop,
// assigned to a vendor, and then moved forward through the stages defined in
// package stage until it is delivered. The aggregate enforces:
//   - forward-only stage progression via stage.Graph
//   - createdAt <= updatedAt, with updatedAt refreshed on every mutation
//   - validated binding and deadline values on every write
//
// Records read back from storage go through RestoreOrder, which applies the
// defaults for missing fields in one place.
package order
