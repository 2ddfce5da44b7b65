// Package api embeds the OpenAPI contract of the HTTP surface. The same
// document drives request validation and is served to API clients.
package api

import _ "embed"

// Spec is the raw openapi.yaml document.
//
//go:embed openapi.yaml
var Spec []byte
