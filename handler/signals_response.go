package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
)

type signalsResponse struct {
	signals any
}

// Render patches the signals for datastar requests and writes them as JSON otherwise.
func (s signalsResponse) Render(w http.ResponseWriter, r *http.Request) error {
	data, err := json.Marshal(s.signals)
	if err != nil {
		return fmt.Errorf("marshal signals: %w", err)
	}

	if IsDataStar(r) {
		return NewSSE(w, r).PatchSignals(data)
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	_, err = w.Write(data)
	return err
}

// Signals updates client-side state. v is marshaled with encoding/json, so
// struct tags name the signals.
func Signals(v any) Response {
	return signalsResponse{signals: v}
}
