package binder

import "errors"

var (
	// ErrMissingContentType indicates the request had no Content-Type header.
	ErrMissingContentType = errors.New("missing content-type header")
	// ErrInvalidContentType indicates a Content-Type other than application/json.
	ErrInvalidContentType = errors.New("invalid content-type")
	// ErrEmptyRequestBody indicates the request body was empty.
	ErrEmptyRequestBody = errors.New("empty request body")
	// ErrRequestBodyTooLarge indicates the body exceeded the size limit.
	ErrRequestBodyTooLarge = errors.New("request body too large")
	// ErrFailedToParseJSON indicates malformed or mismatched JSON.
	ErrFailedToParseJSON = errors.New("failed to parse json")
)
