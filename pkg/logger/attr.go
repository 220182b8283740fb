package logger

import (
	"log/slog"
)

// Group bundles attrs under a single key.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Error returns an empty attr for a nil error so it is dropped by handlers.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Field is the name of the record field under a transition guard.
func Field(name string) slog.Attr {
	return slog.String("field", name)
}

func FromState(name string) slog.Attr {
	return slog.String("from", name)
}

func ToState(name string) slog.Attr {
	return slog.String("to", name)
}

// Outcome reports whether a transition was accepted.
func Outcome(valid bool) slog.Attr {
	if valid {
		return slog.String("outcome", "valid")
	}
	return slog.String("outcome", "invalid")
}

func CallbackKey(key string) slog.Attr {
	if key == "" {
		return slog.Attr{}
	}
	return slog.String("callback", key)
}

func EventID(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("event_id", id)
}

func Channel(name string) slog.Attr {
	return slog.String("channel", name)
}
