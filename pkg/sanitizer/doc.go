// Package sanitizer normalizes untrusted user input before it reaches the
// domain layer. The package is intentionally small: every entry point that
// accepts an email address runs it through NormalizeEmail so that lookups and
// uniqueness checks always operate on the same canonical form.
package sanitizer
