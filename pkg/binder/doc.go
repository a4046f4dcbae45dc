// Package binder turns HTTP request data into typed request structs for
// handler.Wrap.
//
// Three sources are supported:
//
//   - Form: urlencoded and multipart bodies, `form` tags
//   - JSON: strict application/json bodies, `json` tags
//   - Signals: datastar signals, `json` tags
//
// Every binder returns ErrBinderNotApplicable when the request does not carry
// its source, so a route can list several and serve a plain GET, a classic
// form post and a datastar action with one handler:
//
//	handler.Wrap(svc.submit,
//		handler.WithBinders[handler.Context, CardRequest](
//			binder.Form(),
//			binder.Signals(),
//		),
//	)
//
// Binding failures wrap ErrInvalidForm, ErrInvalidJSON or ErrInvalidSignals so
// error handlers can map them to 400 responses with errors.Is.
package binder
