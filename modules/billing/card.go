package billing

import (
	"github.com/dmitrymomot/signup/pkg/form"
	"github.com/dmitrymomot/signup/pkg/sanitizer"
	"github.com/dmitrymomot/signup/pkg/validator"
)

// Field names shared by templates, binders and the error map.
const (
	FieldCardNumber     = "cardNumber"
	FieldExpiryDate     = "expiryDate"
	FieldCVV            = "cvv"
	FieldCardholderName = "cardholderName"
)

const (
	cardNumberDigits   = 16
	minCardGroupDigits = 4
	cardGroupSize      = 4
	expiryDigits       = 4
)

// CardFields is the raw text of the card form.
type CardFields struct {
	CardNumber     string `form:"cardNumber" json:"cardNumber"`
	ExpiryDate     string `form:"expiryDate" json:"expiryDate"`
	CVV            string `form:"cvv" json:"cvv"`
	CardholderName string `form:"cardholderName" json:"cardholderName"`
}

// Normalize applies the live-input formatting to the number and expiry date.
func (c CardFields) Normalize() CardFields {
	c.CardNumber = NormalizeCardNumber(c.CardNumber)
	c.ExpiryDate = NormalizeExpiryDate(c.ExpiryDate)
	return c
}

// NormalizeCardNumber drops everything but digits, keeps the first 16 and groups
// them by four: "4242424242424242" becomes "4242 4242 4242 4242". Input with
// fewer than four digits is returned unchanged so partial typing is not eaten.
func NormalizeCardNumber(raw string) string {
	digits := sanitizer.KeepDigits(raw)
	if len(digits) < minCardGroupDigits {
		return raw
	}
	if len(digits) > cardNumberDigits {
		digits = digits[:cardNumberDigits]
	}
	return sanitizer.GroupDigits(digits, cardGroupSize, " ")
}

// NormalizeExpiryDate formats digits as MM/YY. The slash is only inserted once a
// third digit is typed, so "12" stays "12". Extra digits are dropped.
func NormalizeExpiryDate(raw string) string {
	digits := sanitizer.KeepDigits(raw)
	if len(digits) < 2 {
		return digits
	}
	if len(digits) > expiryDigits {
		digits = digits[:expiryDigits]
	}
	if len(digits) == 2 {
		return digits
	}
	return digits[:2] + "/" + digits[2:]
}

// ValidateCard checks every rule and returns one message per invalid field.
// The cardholder name is free text and never rejected.
func ValidateCard(c CardFields) form.FieldErrors {
	return form.FromValidation(CheckCard(c))
}

// CheckCard is ValidateCard before flattening: the validator errors keep their
// translation keys.
func CheckCard(c CardFields) error {
	return validator.Apply(
		validator.CardNumberLength(FieldCardNumber, c.CardNumber, cardNumberDigits).
			WithMessage("billing.errors.card_number", "Invalid card number"),
		validator.ValidExpiry(FieldExpiryDate, c.ExpiryDate).
			WithMessage("billing.errors.expiry_date", "Invalid expiry date"),
		validator.ValidCVV(FieldCVV, c.CVV).
			WithMessage("billing.errors.cvv", "Invalid CVV"),
	)
}
