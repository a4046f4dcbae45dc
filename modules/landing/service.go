// Package landing serves the entry page linking to registration and login.
package landing

import (
	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/signup/handler"
)

type PageParams struct {
	// Flash is the notice code set by a successful submission, e.g. "account_created".
	Flash string
}

type Views struct {
	Page func(PageParams) templ.Component
}

type Service struct {
	views        Views
	errorHandler handler.ErrorHandler[handler.Context]
}

func NewService(views Views, errorHandler handler.ErrorHandler[handler.Context]) *Service {
	return &Service{views: views, errorHandler: errorHandler}
}

func (s *Service) Routes(r chi.Router) {
	r.Get("/", handler.Wrap(s.page,
		handler.WithErrorHandler[handler.Context, struct{}](s.errorHandler),
	))
}

func (s *Service) page(ctx handler.Context, _ struct{}) handler.Response {
	return handler.Templ(s.views.Page(PageParams{Flash: ctx.Request().URL.Query().Get("flash")}))
}
