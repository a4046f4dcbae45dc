// Package handler provides typed HTTP handlers for the signup web UI.
//
// A HandlerFunc receives a Context and a request struct filled by binders and
// returns a Response. Wrap adapts it to http.HandlerFunc:
//
//	func (s *Service) submit(ctx handler.Context, req CardRequest) handler.Response {
//		st := form.New(req.CardFields.Normalize())
//		if !st.Validate(billing.ValidateCard) {
//			return handler.WithStatus(http.StatusUnprocessableEntity,
//				handler.TemplPartial(s.views.Form(st), s.views.Page(st), handler.WithTarget("#card-form")))
//		}
//		return handler.Redirect("/")
//	}
//
//	r.Post("/cards", handler.Wrap(svc.submit,
//		handler.WithBinders[handler.Context, CardRequest](binder.Form(), binder.Signals()),
//		handler.WithErrorHandler[handler.Context, CardRequest](errorHandler),
//	))
//
// # Responses
//
// Every response adapts to the request: datastar actions receive server-sent
// events, plain requests receive HTML, JSON or an HTTP redirect.
//
//	handler.Templ(component, opts...)       // page, or one patch
//	handler.TemplPartial(partial, full)     // patch partial, or render full page
//	handler.TemplMulti(patches...)          // several patches
//	handler.Signals(v)                      // patch client signals, or JSON
//	handler.Redirect("/")                   // 303, or client navigation
//	handler.JSON(v) / handler.JSONError(err) / handler.JSONFieldErrors(fields)
//	handler.WithStatus(422, resp)           // status for plain requests
//	handler.Error(err)                      // hand err to the route's ErrorHandler
//
// # Errors
//
// Binding and rendering errors go to the ErrorHandler. NewErrorHandler logs
// them and answers with a toast for datastar requests or an error page
// otherwise. NewJSONErrorHandler answers API routes with a JSON body instead.
// HTTPError values keep their status code; binder errors map to 400.
package handler
