package account

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/dmitrymomot/signup/handler"
	"github.com/dmitrymomot/signup/pkg/binder"
	"github.com/dmitrymomot/signup/pkg/form"
	"github.com/dmitrymomot/signup/pkg/i18n"
	"github.com/dmitrymomot/signup/pkg/logger"
	"github.com/dmitrymomot/signup/pkg/sanitizer"
	"github.com/dmitrymomot/signup/svc/submission"
)

const (
	formRegistration = "registration"
	formLogin        = "login"
)

// Dispatcher hands accepted forms to the submission sinks.
type Dispatcher interface {
	Dispatch(ctx context.Context, kind submission.Kind, payload map[string]string) (submission.Result, error)
}

// FieldErrorRecorder counts rejected fields; *metrics.Metrics implements it.
type FieldErrorRecorder interface {
	FieldErrors(form string, fields []string)
}

// RegisterPageParams contains data for rendering the registration page.
type RegisterPageParams struct {
	Form  *form.State[RegistrationFields]
	Flash string
}

// RegisterFormParams contains data for rendering the #register-form fragment.
type RegisterFormParams struct {
	Form *form.State[RegistrationFields]
}

type LoginPageParams struct {
	Form *form.State[LoginFields]
}

type LoginFormParams struct {
	Form *form.State[LoginFields]
}

type Views struct {
	RegisterPage func(RegisterPageParams) templ.Component
	RegisterForm func(RegisterFormParams) templ.Component
	LoginPage    func(LoginPageParams) templ.Component
	LoginForm    func(LoginFormParams) templ.Component
}

// Service serves the registration and login forms and their JSON API.
type Service struct {
	views           Views
	dispatcher      Dispatcher
	recorder        FieldErrorRecorder
	translator      *i18n.Translator
	log             *slog.Logger
	errorHandler    handler.ErrorHandler[handler.Context]
	apiErrorHandler handler.ErrorHandler[handler.Context]
	submitMW        []func(http.Handler) http.Handler
}

type Option func(*Service)

func WithTranslator(t *i18n.Translator) Option {
	return func(s *Service) { s.translator = t }
}

func WithRecorder(r FieldErrorRecorder) Option {
	return func(s *Service) { s.recorder = r }
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

// WithErrorHandler sets the handler of page routes.
func WithErrorHandler(h handler.ErrorHandler[handler.Context]) Option {
	return func(s *Service) { s.errorHandler = h }
}

// WithAPIErrorHandler sets the handler of JSON routes.
func WithAPIErrorHandler(h handler.ErrorHandler[handler.Context]) Option {
	return func(s *Service) { s.apiErrorHandler = h }
}

// WithSubmitMiddleware wraps the page POST routes, e.g. with a rate limiter.
// API routes are left to the router they are mounted on.
func WithSubmitMiddleware(mw ...func(http.Handler) http.Handler) Option {
	return func(s *Service) { s.submitMW = append(s.submitMW, mw...) }
}

func NewService(views Views, dispatcher Dispatcher, opts ...Option) *Service {
	s := &Service{
		views:      views,
		dispatcher: dispatcher,
		log:        slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.apiErrorHandler == nil {
		s.apiErrorHandler = handler.NewJSONErrorHandler(s.log)
	}
	s.log = s.log.With(logger.Component("account"))
	return s
}

// Routes registers the page routes:
//
//	GET  /register  registration page
//	POST /register  validate and submit, or re-render #register-form
//	GET  /login     login page
//	POST /login     submit credentials as typed
func (s *Service) Routes(r chi.Router) {
	r.Get("/register", handler.Wrap(s.registerPage,
		handler.WithErrorHandler[handler.Context, RegistrationFields](s.errorHandler),
	))
	r.Get("/login", handler.Wrap(s.loginPage,
		handler.WithErrorHandler[handler.Context, LoginFields](s.errorHandler),
	))

	r.With(s.submitMW...).Post("/register", handler.Wrap(s.register,
		handler.WithBinders[handler.Context, RegistrationFields](binder.Form(), binder.Signals()),
		handler.WithErrorHandler[handler.Context, RegistrationFields](s.errorHandler),
	))
	r.With(s.submitMW...).Post("/login", handler.Wrap(s.login,
		handler.WithBinders[handler.Context, LoginFields](binder.Form(), binder.Signals()),
		handler.WithErrorHandler[handler.Context, LoginFields](s.errorHandler),
	))
}

// API registers the JSON routes, meant to be mounted under a version prefix:
//
//	POST /registrations
func (s *Service) API(r chi.Router) {
	r.Post("/registrations", handler.Wrap(s.createRegistration,
		handler.WithBinders[handler.Context, RegistrationFields](binder.JSON()),
		handler.WithErrorHandler[handler.Context, RegistrationFields](s.apiErrorHandler),
	))
}

func (s *Service) registerPage(ctx handler.Context, _ RegistrationFields) handler.Response {
	return handler.Templ(s.views.RegisterPage(RegisterPageParams{
		Form:  form.New(RegistrationFields{}),
		Flash: ctx.Request().URL.Query().Get("flash"),
	}))
}

func (s *Service) register(ctx handler.Context, req RegistrationFields) handler.Response {
	st := form.New(req)
	if !st.Validate(s.validateRegistration(ctx)) {
		s.rejected(ctx, formRegistration, st.Errors)
		return handler.WithStatus(http.StatusUnprocessableEntity, handler.TemplPartial(
			s.views.RegisterForm(RegisterFormParams{Form: st}),
			s.views.RegisterPage(RegisterPageParams{Form: st}),
			handler.WithTarget("#register-form"),
		))
	}

	if _, err := s.submit(ctx, submission.KindRegistration, req.Profile()); err != nil {
		return handler.Error(err)
	}
	return handler.Redirect("/?flash=account_created")
}

func (s *Service) loginPage(_ handler.Context, _ LoginFields) handler.Response {
	return handler.Templ(s.views.LoginPage(LoginPageParams{Form: form.New(LoginFields{})}))
}

// login accepts the credentials as typed; there is no account store to check
// them against.
func (s *Service) login(ctx handler.Context, req LoginFields) handler.Response {
	payload := map[string]string{
		FieldEmail:      sanitizer.NormalizeEmail(req.Email),
		FieldRememberMe: strconv.FormatBool(req.RememberMe),
	}
	if _, err := s.submit(ctx, submission.KindLogin, payload); err != nil {
		return handler.Error(err)
	}
	return handler.Redirect("/?flash=login_success")
}

// RegistrationResponse is the data of a created registration.
type RegistrationResponse struct {
	ID      uuid.UUID         `json:"id"`
	Profile map[string]string `json:"profile"`
}

func (s *Service) createRegistration(ctx handler.Context, req RegistrationFields) handler.Response {
	errs := form.Translated(CheckRegistration(req), s.translator.Lookup(ctx))
	if !errs.IsEmpty() {
		s.rejected(ctx, formRegistration, errs)
		return handler.JSONFieldErrors(errs)
	}

	profile := req.Profile()
	res, err := s.submit(ctx, submission.KindRegistration, profile)
	if err != nil {
		return handler.Error(err)
	}
	return handler.JSON(RegistrationResponse{ID: res.ID, Profile: profile}, http.StatusCreated)
}

func (s *Service) validateRegistration(ctx context.Context) func(RegistrationFields) form.FieldErrors {
	lookup := s.translator.Lookup(ctx)
	return func(f RegistrationFields) form.FieldErrors {
		return form.Translated(CheckRegistration(f), lookup)
	}
}

func (s *Service) rejected(ctx context.Context, name string, errs form.FieldErrors) {
	fields := errs.Fields()
	if s.recorder != nil {
		s.recorder.FieldErrors(name, fields)
	}
	s.log.DebugContext(ctx, "form rejected", logger.Form(name), logger.Fields(fields))
}

// submit maps dispatch failures to HTTP errors the error handlers understand.
func (s *Service) submit(ctx context.Context, kind submission.Kind, payload map[string]string) (submission.Result, error) {
	res, err := s.dispatcher.Dispatch(ctx, kind, payload)
	switch {
	case err == nil:
		return res, nil
	case errors.Is(err, submission.ErrTimeout):
		return res, fmt.Errorf("%w: %w", handler.ErrGatewayTimeout, err)
	default:
		return res, fmt.Errorf("%w: %w", handler.ErrServiceUnavailable, err)
	}
}
