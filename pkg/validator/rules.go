package validator

import (
	"fmt"
	"net/mail"
	"strings"
)

// Required fails on empty or whitespace-only values.
func Required(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.TrimSpace(value) != ""
		},
		Error: ValidationError{Field: field, Message: "field is required"},
	}
}

// MinLen fails when the value is shorter than min bytes.
func MinLen(field, value string, min int) Rule {
	return Rule{
		Check: func() bool {
			return len(value) >= min
		},
		Error: ValidationError{Field: field, Message: fmt.Sprintf("must be at least %d characters long", min)},
	}
}

// MaxLen fails when the value is longer than max bytes.
func MaxLen(field, value string, max int) Rule {
	return Rule{
		Check: func() bool {
			return len(value) <= max
		},
		Error: ValidationError{Field: field, Message: fmt.Sprintf("must be at most %d characters long", max)},
	}
}

// ValidEmail checks the address against Go's mail parser plus the practical
// constraints web forms expect: a single @, a dotted domain, no display name.
func ValidEmail(field, value string) Rule {
	return Rule{
		Check: func() bool {
			if strings.TrimSpace(value) == "" {
				return false
			}

			addr, err := mail.ParseAddress(value)
			if err != nil || addr.Address != value {
				return false
			}

			parts := strings.Split(addr.Address, "@")
			if len(parts) != 2 || parts[0] == "" {
				return false
			}
			return strings.Contains(parts[1], ".")
		},
		Error: ValidationError{Field: field, Message: "must be a valid email address"},
	}
}
