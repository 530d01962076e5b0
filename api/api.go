// Package api embeds the OpenAPI contract of the HTTP surface. The
// server validates the document on construction and serves it verbatim
// at /openapi.yml.
package api

import _ "embed"

//go:embed openapi.yml
var spec []byte

// Spec returns the raw OpenAPI document.
func Spec() []byte {
	return spec
}
