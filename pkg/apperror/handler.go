package apperror

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
)

// WriteJSON writes err as the standard {"error":{...}} envelope.
// Errors that are not *Error are reported as internal_error.
func WriteJSON(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	var appErr *Error
	if !errors.As(err, &appErr) {
		appErr = ErrInternal.WithInternal(err)
	}

	code, body := ToHTTPError(appErr)

	// 5xx errors get logged at error level
	if code >= 500 {
		log.Error("request error",
			slog.Int("status", code),
			slog.String("path", r.URL.Path),
			slog.String("error", appErr.Error()),
		)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if r.Method == http.MethodHead {
		return
	}
	_ = json.NewEncoder(w).Encode(body)
}
