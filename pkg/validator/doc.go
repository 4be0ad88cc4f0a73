// Package validator provides composable request validation rules.
//
// Rules are plain values combining a predicate and an error; Apply runs a set
// of them and returns every failure as ValidationErrors:
//
//	err := validator.Apply(
//		validator.Required("email", req.Email),
//		validator.ValidEmail("email", req.Email),
//		validator.MinLen("password", req.Password, 6),
//	)
//
// The returned error is a ValidationErrors value, so callers can type-assert
// to render field-level messages.
package validator
