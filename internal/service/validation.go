package service

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// User-facing violation texts. Login deliberately reuses one message for
// both unknown email and wrong password so the client cannot tell which.
const (
	MsgInvalidEmail     = "Invalid email format"
	MsgEmailTaken       = "Email already registered"
	MsgPasswordTooShort = "Password must be at least 8 characters long"
	MsgPasswordMismatch = "Passwords do not match"
	MsgFullnameRequired = "Full name is required"
	MsgBadCredentials   = "Invalid email or password"
)

const minPasswordLen = 8

// ValidationError accumulates every violation of one submission so the form
// can render them all at once instead of failing on the first.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Violations, "; ")
}

func (e *ValidationError) add(msg string) {
	e.Violations = append(e.Violations, msg)
}

func (e *ValidationError) orNil() error {
	if len(e.Violations) == 0 {
		return nil
	}
	return e
}

var validate = validator.New()

// validEmail applies the same syntax gate everywhere an email is accepted.
func validEmail(email string) bool {
	return validate.Var(email, "required,email") == nil
}
