// Package binder decodes HTTP request payloads into Go structs with strict
// content-type checks, a body size limit, and unknown-field rejection. All
// failures map to sentinel errors the caller can translate into responses.
package binder
