// Package access resolves who is calling and whether they may proceed.
//
// A Guard turns the raw Authorization header into an identity.Identity in
// two steps: a TokenVerifier checks the bearer credential, then a
// RoleResolver decides the caller's role. Role resolution is a strategy so
// the fast path (a fresh role claim inside the credential) and the slow path
// (a user profile lookup) can be combined with ChainRoleResolver and replaced
// independently in tests.
//
// Rejections are terminal: UnauthenticatedError (401) when the credential is
// missing or invalid, ForbiddenError (403) when the role is insufficient.
// The guard never writes anything.
package access
