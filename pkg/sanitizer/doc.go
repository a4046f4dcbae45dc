// Package sanitizer cleans user input before it reaches validation and masks
// sensitive values before they are logged or forwarded.
//
// Helpers are small pure functions over strings. Apply and Compose chain them:
//
//	clean := sanitizer.Compose(
//	    sanitizer.Trim,
//	    sanitizer.SingleLine,
//	)
//	name := clean(form.FirstName)
//
// Digit and whitespace classes are ASCII only: KeepDigits("٣4") returns "4".
package sanitizer
