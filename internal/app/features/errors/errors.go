// internal/app/features/errors/errors.go
//
// Package errors holds the JSON response helpers shared by every
// feature handler. The API returns errors as {"error": "..."} pairs;
// handlers map store sentinels to status codes and everything
// unexpected becomes a logged 500.
package errors

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// JSON writes v with the given status code.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Error writes an error body with the given status code.
func Error(w http.ResponseWriter, status int, msg string) {
	JSON(w, status, map[string]string{"error": msg})
}

// NotFound writes a 404 error body.
func NotFound(w http.ResponseWriter, msg string) {
	Error(w, http.StatusNotFound, msg)
}

// BadRequest writes a 400 error body.
func BadRequest(w http.ResponseWriter, msg string) {
	Error(w, http.StatusBadRequest, msg)
}

// Conflict writes a 409 error body.
func Conflict(w http.ResponseWriter, msg string) {
	Error(w, http.StatusConflict, msg)
}

// ErrorLogger pairs the 500 response with a structured log line so
// internal details never leak into the body.
type ErrorLogger struct {
	Log *zap.Logger
}

func NewErrorLogger(log *zap.Logger) *ErrorLogger {
	return &ErrorLogger{Log: log}
}

// Internal logs err with context and writes a generic 500 body.
func (e *ErrorLogger) Internal(w http.ResponseWriter, r *http.Request, msg string, err error, fields ...zap.Field) {
	fields = append(fields,
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.Error(err),
	)
	e.Log.Error(msg, fields...)
	Error(w, http.StatusInternalServerError, "internal error")
}
