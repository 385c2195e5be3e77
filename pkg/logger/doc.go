// Package logger builds configured slog loggers with context attribute
// injection.
//
// New applies functional options over production-safe defaults (JSON
// handler, info level, stdout) and wraps the handler with a decorator that
// pulls request-scoped attributes out of context on every log call:
//
//	log := logger.New(
//		logger.WithDevelopment("formkit-live"),
//		logger.WithContextValue("session_id", sessionKey),
//	)
package logger
