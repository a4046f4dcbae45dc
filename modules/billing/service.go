package billing

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

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

const formCard = "card"

// Dispatcher hands accepted forms to the submission sinks.
type Dispatcher interface {
	Dispatch(ctx context.Context, kind submission.Kind, payload map[string]string) (submission.Result, error)
}

// FieldErrorRecorder counts rejected fields; *metrics.Metrics implements it.
type FieldErrorRecorder interface {
	FieldErrors(form string, fields []string)
}

// CardParams is shared by every card view.
type CardParams struct {
	Form  *form.State[CardFields]
	Brand Brand
}

type Views struct {
	// CardPage renders the card form as a standalone page for plain requests.
	CardPage func(CardParams) templ.Component
	// CardModal renders the #modal element holding the form.
	CardModal func(CardParams) templ.Component
	// CardForm renders the #card-form fragment.
	CardForm func(CardParams) templ.Component
	// ModalClosed renders an empty #modal element.
	ModalClosed func() templ.Component
	// CardAdded renders the success toast.
	CardAdded func() templ.Component
}

// Service serves the card modal, live formatting and card submission.
type Service struct {
	views           Views
	dispatcher      Dispatcher
	recorder        FieldErrorRecorder
	translator      *i18n.Translator
	log             *slog.Logger
	errorHandler    handler.ErrorHandler[handler.Context]
	apiErrorHandler handler.ErrorHandler[handler.Context]
	submitMW        []func(http.Handler) http.Handler
	returnURL       string
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

func WithErrorHandler(h handler.ErrorHandler[handler.Context]) Option {
	return func(s *Service) { s.errorHandler = h }
}

func WithAPIErrorHandler(h handler.ErrorHandler[handler.Context]) Option {
	return func(s *Service) { s.apiErrorHandler = h }
}

// WithSubmitMiddleware wraps the page route POST /cards. Live formatting and
// the API routes are not wrapped.
func WithSubmitMiddleware(mw ...func(http.Handler) http.Handler) Option {
	return func(s *Service) { s.submitMW = append(s.submitMW, mw...) }
}

// WithReturnURL is where plain requests land after closing or submitting the
// card page. Defaults to /register, the page that opens the modal.
func WithReturnURL(url string) Option {
	return func(s *Service) {
		if url != "" {
			s.returnURL = url
		}
	}
}

func NewService(views Views, dispatcher Dispatcher, opts ...Option) *Service {
	s := &Service{
		views:      views,
		dispatcher: dispatcher,
		log:        slog.Default(),
		returnURL:  "/register",
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.apiErrorHandler == nil {
		s.apiErrorHandler = handler.NewJSONErrorHandler(s.log)
	}
	s.log = s.log.With(logger.Component("billing"))
	return s
}

// Routes registers the page routes:
//
//	GET  /cards/new     open the modal, or the card page
//	GET  /cards/close   close the modal
//	POST /cards/format  normalize number and expiry while typing
//	POST /cards         validate and submit, or re-render #card-form
func (s *Service) Routes(r chi.Router) {
	r.Get("/cards/new", handler.Wrap(s.newCard,
		handler.WithErrorHandler[handler.Context, CardFields](s.errorHandler),
	))
	r.Get("/cards/close", handler.Wrap(s.closeCard,
		handler.WithErrorHandler[handler.Context, CardFields](s.errorHandler),
	))
	r.Post("/cards/format", handler.Wrap(s.format,
		handler.WithBinders[handler.Context, CardFields](binder.Signals(), binder.Form()),
		handler.WithErrorHandler[handler.Context, CardFields](s.errorHandler),
	))
	r.With(s.submitMW...).Post("/cards", handler.Wrap(s.submit,
		handler.WithBinders[handler.Context, CardFields](binder.Form(), binder.Signals()),
		handler.WithErrorHandler[handler.Context, CardFields](s.errorHandler),
	))
}

// API registers the JSON routes:
//
//	POST /cards/format
//	POST /cards
func (s *Service) API(r chi.Router) {
	r.Post("/cards/format", handler.Wrap(s.format,
		handler.WithBinders[handler.Context, CardFields](binder.JSON()),
		handler.WithErrorHandler[handler.Context, CardFields](s.apiErrorHandler),
	))
	r.Post("/cards", handler.Wrap(s.createCard,
		handler.WithBinders[handler.Context, CardFields](binder.JSON()),
		handler.WithErrorHandler[handler.Context, CardFields](s.apiErrorHandler),
	))
}

func (s *Service) newCard(_ handler.Context, _ CardFields) handler.Response {
	p := CardParams{Form: form.New(CardFields{}), Brand: BrandUnknown}
	return handler.TemplPartial(s.views.CardModal(p), s.views.CardPage(p), handler.WithTarget("#modal"))
}

func (s *Service) closeCard(ctx handler.Context, _ CardFields) handler.Response {
	if handler.IsDataStar(ctx.Request()) {
		return handler.Templ(s.views.ModalClosed(), handler.WithTarget("#modal"))
	}
	return handler.Redirect(s.returnURL)
}

// FormatSignals is the live formatting result. Field names match the card
// form signals so datastar patches the bound inputs in place.
type FormatSignals struct {
	CardNumber string `json:"cardNumber"`
	ExpiryDate string `json:"expiryDate"`
	CardBrand  Brand  `json:"cardBrand"`
	BrandLabel string `json:"cardBrandLabel"`
}

func (s *Service) format(_ handler.Context, req CardFields) handler.Response {
	n := req.Normalize()
	brand := DetectBrand(n.CardNumber)
	return handler.Signals(FormatSignals{
		CardNumber: n.CardNumber,
		ExpiryDate: n.ExpiryDate,
		CardBrand:  brand,
		BrandLabel: brand.Label(),
	})
}

func (s *Service) submit(ctx handler.Context, req CardFields) handler.Response {
	st := form.New(req.Normalize())
	if !st.Validate(s.validateCard(ctx)) {
		s.rejected(ctx, st.Errors)
		p := CardParams{Form: st, Brand: DetectBrand(st.Fields.CardNumber)}
		return handler.WithStatus(http.StatusUnprocessableEntity, handler.TemplPartial(
			s.views.CardForm(p),
			s.views.CardPage(p),
			handler.WithTarget("#card-form"),
		))
	}

	if _, err := s.dispatch(ctx, st.Fields.Summary()); err != nil {
		return handler.Error(err)
	}

	if handler.IsDataStar(ctx.Request()) {
		return handler.TemplMulti(
			handler.Patch(s.views.ModalClosed(), handler.WithTarget("#modal")),
			handler.Patch(s.views.CardAdded(),
				handler.WithTarget("#toast-container"),
				handler.WithPatchMode(handler.PatchPrepend),
			),
		)
	}
	return handler.Redirect(s.returnURL + "?flash=card_added")
}

// CardResponse is the data of an accepted card. It never carries the full
// number or the CVV.
type CardResponse struct {
	ID      uuid.UUID         `json:"id"`
	Summary map[string]string `json:"card"`
}

func (s *Service) createCard(ctx handler.Context, req CardFields) handler.Response {
	fields := req.Normalize()
	errs := form.Translated(CheckCard(fields), s.translator.Lookup(ctx))
	if !errs.IsEmpty() {
		s.rejected(ctx, errs)
		return handler.JSONFieldErrors(errs)
	}

	summary := fields.Summary()
	res, err := s.dispatch(ctx, summary)
	if err != nil {
		return handler.Error(err)
	}
	return handler.JSON(CardResponse{ID: res.ID, Summary: summary}, http.StatusCreated)
}

// Summary is what may leave the process for a valid card: the masked number,
// expiry, brand and holder name. The CVV is never included.
func (c CardFields) Summary() map[string]string {
	return map[string]string{
		FieldCardNumber:     sanitizer.MaskCreditCard(c.CardNumber),
		FieldExpiryDate:     c.ExpiryDate,
		FieldCardholderName: sanitizer.Apply(c.CardholderName, sanitizer.SingleLine, sanitizer.Trim),
		"brand":             string(DetectBrand(c.CardNumber)),
	}
}

func (s *Service) validateCard(ctx context.Context) func(CardFields) form.FieldErrors {
	lookup := s.translator.Lookup(ctx)
	return func(c CardFields) form.FieldErrors {
		return form.Translated(CheckCard(c), lookup)
	}
}

func (s *Service) rejected(ctx context.Context, errs form.FieldErrors) {
	fields := errs.Fields()
	if s.recorder != nil {
		s.recorder.FieldErrors(formCard, fields)
	}
	s.log.DebugContext(ctx, "form rejected", logger.Form(formCard), logger.Fields(fields))
}

func (s *Service) dispatch(ctx context.Context, payload map[string]string) (submission.Result, error) {
	res, err := s.dispatcher.Dispatch(ctx, submission.KindCard, payload)
	switch {
	case err == nil:
		return res, nil
	case errors.Is(err, submission.ErrTimeout):
		return res, fmt.Errorf("%w: %w", handler.ErrGatewayTimeout, err)
	default:
		return res, fmt.Errorf("%w: %w", handler.ErrServiceUnavailable, err)
	}
}
