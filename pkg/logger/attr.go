package logger

import (
	"log/slog"
	"time"
)

// Error returns an empty Attr for a nil error so callers can log unconditionally.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// RequestID returns an empty Attr for an empty id.
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

func Component(name string) slog.Attr {
	return slog.String("component", name)
}

func Event(name string) slog.Attr {
	return slog.String("event", name)
}

func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// Form names the form a record is about, e.g. "registration" or "card".
func Form(name string) slog.Attr {
	return slog.String("form", name)
}

// Fields lists the invalid fields of a rejected form.
func Fields(names []string) slog.Attr {
	return slog.Any("fields", names)
}

func SubmissionID(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("submission_id", id)
}

func Kind(kind string) slog.Attr {
	return slog.String("kind", kind)
}

func RetryCount(count int) slog.Attr {
	return slog.Int("retry_count", count)
}
