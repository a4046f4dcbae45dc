// Package validator builds declarative, translation-friendly validation rules
// for form input.
//
// A Rule couples a Check func with the ValidationError reported when the check
// fails. Apply evaluates every rule it receives, without short-circuiting, and
// aggregates failures into ValidationErrors, which implements error:
//
//	err := validator.Apply(
//	    validator.EqualString("confirmPassword", in.ConfirmPassword, in.Password),
//	    validator.MinLenString("password", in.Password, 8),
//	    validator.ValidEmail("email", in.Email),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    // render verrs per field
//	}
//
// Rules carry generic English messages and a TranslationKey. Callers that need
// product copy override both with Rule.WithMessage.
//
// Rule families:
//   - string_rules.go: required, rune based length bounds, equality
//   - pattern_rules.go: regular expression matching
//   - format_rules.go: email shape
//   - financial_rules.go: card number length, MM/YY expiry, CVV
//
// The package holds no state and is safe for concurrent use.
package validator
