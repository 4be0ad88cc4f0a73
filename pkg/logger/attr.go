package logger

import "log/slog"

// Component names the subsystem emitting the record.
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// UserID attaches the acting user's identifier.
func UserID(id string) slog.Attr {
	return slog.String("user_id", id)
}

// Error attaches an error message under a consistent key.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.String("error", err.Error())
}
