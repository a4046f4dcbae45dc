package handler

import "net/http"

type errorResponse struct {
	err error
}

func (e errorResponse) Render(http.ResponseWriter, *http.Request) error {
	return e.err
}

// Error hands err to the route's ErrorHandler instead of writing anything.
//
//	if _, err := s.dispatcher.Dispatch(ctx, kind, payload); err != nil {
//		return handler.Error(err)
//	}
func Error(err error) Response {
	if err == nil {
		err = ErrNilResponse
	}
	return errorResponse{err: err}
}
