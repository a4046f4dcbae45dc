package account

import (
	"github.com/dmitrymomot/signup/pkg/form"
	"github.com/dmitrymomot/signup/pkg/sanitizer"
	"github.com/dmitrymomot/signup/pkg/validator"
)

const (
	FieldFirstName       = "firstName"
	FieldLastName        = "lastName"
	FieldEmail           = "email"
	FieldPhone           = "phone"
	FieldAddress         = "address"
	FieldPassword        = "password"
	FieldConfirmPassword = "confirmPassword"
	FieldRememberMe      = "remember"
)

const minPasswordLength = 8

// RegistrationFields is the raw text of the sign-up form.
type RegistrationFields struct {
	FirstName       string `form:"firstName" json:"firstName"`
	LastName        string `form:"lastName" json:"lastName"`
	Email           string `form:"email" json:"email"`
	Phone           string `form:"phone" json:"phone"`
	Address         string `form:"address" json:"address"`
	Password        string `form:"password" json:"password"`
	ConfirmPassword string `form:"confirmPassword" json:"confirmPassword"`
}

// LoginFields is the raw text of the sign-in form. It is submitted as is.
type LoginFields struct {
	Email      string `form:"email" json:"email"`
	Password   string `form:"password" json:"password"`
	RememberMe bool   `form:"remember" json:"remember"`
}

// ValidateRegistration checks every rule and returns one message per invalid field.
// Names, phone and address are not validated.
func ValidateRegistration(f RegistrationFields) form.FieldErrors {
	return form.FromValidation(CheckRegistration(f))
}

// CheckRegistration returns the raw validator errors of ValidateRegistration.
func CheckRegistration(f RegistrationFields) error {
	return validator.Apply(
		validator.EqualString(FieldConfirmPassword, f.ConfirmPassword, f.Password).
			WithMessage("account.errors.password_mismatch", "Passwords do not match"),
		validator.MinLenString(FieldPassword, f.Password, minPasswordLength).
			WithMessage("account.errors.password_length", "Password must be at least 8 characters"),
		validator.ValidEmail(FieldEmail, f.Email).
			WithMessage("account.errors.email", "Invalid email address"),
	)
}

// Profile returns the registration data that may leave the process: cleaned
// contact fields and never the password pair.
func (f RegistrationFields) Profile() map[string]string {
	line := sanitizer.Compose(sanitizer.SingleLine, sanitizer.Trim)
	return map[string]string{
		FieldFirstName: line(f.FirstName),
		FieldLastName:  line(f.LastName),
		FieldEmail:     sanitizer.NormalizeEmail(f.Email),
		FieldPhone:     sanitizer.NormalizePhone(f.Phone),
		FieldAddress:   line(f.Address),
	}
}
