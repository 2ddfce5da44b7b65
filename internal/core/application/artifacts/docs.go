// Package artifacts issues short-lived access to order PDFs.
//
// The Gateway never proxies object bytes: it hands out presigned URLs and
// the client transfers directly against the object store. When no object
// store is configured every presign operation fails fast with a
// NotConfiguredError and the local-disk upload becomes the designed fallback.
//
// Best-effort operations (ListKeys) degrade to an empty result with a
// warning log instead of failing the caller. Every other operation returns
// its error.
package artifacts
