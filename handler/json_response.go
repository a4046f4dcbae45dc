package handler

import (
	"encoding/json"
	"net/http"
)

// JSONResponse is the envelope of every JSON answer.
type JSONResponse struct {
	Data  any          `json:"data,omitempty"`
	Error *ErrorDetail `json:"error,omitempty"`
}

// ErrorDetail describes a failed request. Fields holds one message per invalid
// form field.
type ErrorDetail struct {
	Code    string            `json:"code"`
	Message string            `json:"message,omitempty"`
	Fields  map[string]string `json:"fields,omitempty"`
}

type jsonResponse struct {
	status int
	body   JSONResponse
}

func (j jsonResponse) Render(w http.ResponseWriter, r *http.Request) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(j.status)
	return json.NewEncoder(w).Encode(j.body)
}

// JSON answers 200 with v as data. Use status to override.
func JSON(v any, status ...int) Response {
	code := http.StatusOK
	if len(status) > 0 {
		code = status[0]
	}
	return jsonResponse{status: code, body: JSONResponse{Data: v}}
}

// JSONFieldErrors answers 422 with per field messages.
func JSONFieldErrors(fields map[string]string) Response {
	return jsonResponse{
		status: http.StatusUnprocessableEntity,
		body: JSONResponse{Error: &ErrorDetail{
			Code:    ErrUnprocessableEntity.Key,
			Message: "validation failed",
			Fields:  fields,
		}},
	}
}

// JSONError maps err to a status and error code. Unknown errors become a
// generic 500 without leaking their text.
func JSONError(err error) Response {
	info := classifyError(err)
	return jsonResponse{
		status: info.StatusCode,
		body: JSONResponse{Error: &ErrorDetail{
			Code:    info.Key,
			Message: info.Message,
		}},
	}
}
