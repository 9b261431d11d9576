// Package logger builds log/slog loggers with a small option surface:
// level, format (text or JSON), output destination, and static attributes.
//
// NewFromEnv reads FORMKIT_LOG_LEVEL and FORMKIT_LOG_FORMAT so library
// consumers can tune diagnostics without touching code.
package logger
