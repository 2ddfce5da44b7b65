// Package kernel provides shared domain primitives for the print-order service.
//
// UUID is the opaque identifier of an order. It is immutable, comparable and
// safe for concurrent use; the zero value is invalid so that forgotten
// initialisation is caught by Validate.
package kernel
