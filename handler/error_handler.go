package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/a-h/templ"
	"github.com/starfederation/datastar-go/datastar"

	"github.com/dmitrymomot/signup/pkg/binder"
	"github.com/dmitrymomot/signup/pkg/logger"
	"github.com/dmitrymomot/signup/pkg/requestid"
)

// ErrorPageParams contains data for rendering error pages.
type ErrorPageParams struct {
	Error      string
	StatusCode int
	RequestID  string
	RetryURL   string
}

// ErrorToastParams contains data for rendering error toasts.
type ErrorToastParams struct {
	Message   string
	Type      string // "error", "warning", "info"
	RequestID string
}

// ErrorHandlerConfig configures NewErrorHandler.
type ErrorHandlerConfig struct {
	// ErrorPage renders the full page for plain requests.
	ErrorPage func(ErrorPageParams) templ.Component

	// ErrorToast renders a notification for datastar requests.
	ErrorToast func(ErrorToastParams) templ.Component

	// Translate turns an error key into a message. Optional.
	Translate func(r *http.Request, key string) string

	// ToastTarget defaults to "#toast-container".
	ToastTarget string

	// ToastMode defaults to PatchPrepend.
	ToastMode datastar.ElementPatchMode
}

// ErrorInfo is the classification of an error for the response and the log.
type ErrorInfo struct {
	StatusCode int
	Key        string
	Message    string
	Type       string
	LogLevel   slog.Level
}

func determineErrorType(statusCode int) string {
	switch {
	case statusCode >= http.StatusInternalServerError:
		return "error"
	case statusCode >= http.StatusBadRequest:
		return "warning"
	default:
		return "info"
	}
}

func classifyError(err error) ErrorInfo {
	info := ErrorInfo{
		StatusCode: http.StatusInternalServerError,
		Key:        ErrInternalServerError.Key,
		Message:    "An error occurred processing your request",
	}

	var httpErr HTTPError
	switch {
	case errors.As(err, &httpErr):
		info.StatusCode = httpErr.Code
		info.Key = httpErr.Key
		info.Message = http.StatusText(httpErr.Code)
	case errors.Is(err, binder.ErrInvalidForm),
		errors.Is(err, binder.ErrInvalidJSON),
		errors.Is(err, binder.ErrInvalidSignals):
		info.StatusCode = http.StatusBadRequest
		info.Key = ErrBadRequest.Key
		info.Message = "The submitted data could not be read"
	case errors.Is(err, binder.ErrUnsupportedMediaType):
		info.StatusCode = http.StatusUnsupportedMediaType
		info.Key = "unsupported_media_type"
		info.Message = http.StatusText(http.StatusUnsupportedMediaType)
	}

	info.Type = determineErrorType(info.StatusCode)
	info.LogLevel = slog.LevelError
	if info.StatusCode < http.StatusInternalServerError {
		info.LogLevel = slog.LevelWarn
	}
	return info
}

// NewErrorHandler logs the error and renders a toast for datastar requests or
// an error page otherwise. Configure it once and share it between services.
func NewErrorHandler(log *slog.Logger, cfg ErrorHandlerConfig) ErrorHandler[Context] {
	if cfg.ToastTarget == "" {
		cfg.ToastTarget = "#toast-container"
	}
	if cfg.ToastMode == "" {
		cfg.ToastMode = PatchPrepend
	}
	if log == nil {
		log = slog.Default()
	}

	return func(ctx Context, err error) {
		r := ctx.Request()
		requestID := requestid.FromContext(r.Context())
		info := classifyError(err)

		log.LogAttrs(r.Context(), info.LogLevel, "request error",
			logger.RequestID(requestID),
			logger.Error(err),
			slog.Int("status_code", info.StatusCode),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Bool("is_datastar", IsDataStar(r)),
			logger.Component("error_handler"),
		)

		if cfg.Translate != nil {
			if msg := cfg.Translate(r, info.Key); msg != "" && msg != info.Key {
				info.Message = msg
			}
		}

		if IsDataStar(r) {
			if cfg.ErrorToast == nil {
				return
			}
			resp := Templ(cfg.ErrorToast(ErrorToastParams{
				Message:   info.Message,
				Type:      info.Type,
				RequestID: requestID,
			}), WithTarget(cfg.ToastTarget), WithPatchMode(cfg.ToastMode))
			if renderErr := resp.Render(ctx.ResponseWriter(), r); renderErr != nil {
				log.Error("failed to render error toast",
					logger.RequestID(requestID),
					logger.Error(renderErr),
					logger.Event("render_error_toast"),
				)
			}
			return
		}

		if cfg.ErrorPage == nil {
			http.Error(ctx.ResponseWriter(), info.Message, info.StatusCode)
			return
		}

		resp := WithStatus(info.StatusCode, Templ(cfg.ErrorPage(ErrorPageParams{
			Error:      info.Message,
			StatusCode: info.StatusCode,
			RequestID:  requestID,
			RetryURL:   r.URL.Path,
		})))
		if renderErr := resp.Render(ctx.ResponseWriter(), r); renderErr != nil {
			log.Error("failed to render error page",
				logger.RequestID(requestID),
				logger.Error(renderErr),
				logger.Event("render_error_page"),
			)
		}
	}
}

// NewJSONErrorHandler logs the error and answers with the JSONError envelope.
// Use it for API routes where no page or toast makes sense.
func NewJSONErrorHandler(log *slog.Logger) ErrorHandler[Context] {
	if log == nil {
		log = slog.Default()
	}
	return func(ctx Context, err error) {
		r := ctx.Request()
		info := classifyError(err)
		log.LogAttrs(r.Context(), info.LogLevel, "api request error",
			logger.RequestID(requestid.FromContext(r.Context())),
			logger.Error(err),
			slog.Int("status_code", info.StatusCode),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			logger.Component("error_handler"),
		)
		if renderErr := JSONError(err).Render(ctx.ResponseWriter(), r); renderErr != nil {
			log.Error("failed to render json error",
				logger.Error(renderErr),
				logger.Event("render_json_error"),
			)
		}
	}
}
