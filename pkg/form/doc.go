// Package form holds per-request form state and the field keyed error map
// shared by every form in the application.
//
// A State is created for one form instance and is never shared:
//
//	st := form.New(fields)
//	if !st.Validate(billing.ValidateCard) {
//	    return render(st) // st.Errors holds one message per invalid field
//	}
//
// Validate replaces Errors wholesale. Set updates one field and clears only
// that field's error, mirroring how an edited input drops its own message.
package form
