// Package response writes JSON HTTP responses. Bodies are written raw (no
// envelope) so route payloads stay wire-compatible with existing clients.
package response

import (
	"encoding/json"
	"net/http"
)

func write(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

// JSON sends v with the given status code.
func JSON(w http.ResponseWriter, status int, v interface{}) {
	write(w, status, v)
}

// OK sends a 200 response with v as the body.
func OK(w http.ResponseWriter, v interface{}) {
	write(w, http.StatusOK, v)
}

// Error sends {"message": message} with the given status.
func Error(w http.ResponseWriter, status int, message string) {
	write(w, status, map[string]string{"message": message})
}

// Unauthorized sends the 401 body expected by the client app.
func Unauthorized(w http.ResponseWriter) {
	Error(w, http.StatusUnauthorized, "Unauthorized Access")
}

// Forbidden sends the 403 body expected by the client app.
func Forbidden(w http.ResponseWriter) {
	Error(w, http.StatusForbidden, "Forbidden Access")
}

// ValidationError sends a 422 with a field-level error map.
func ValidationError(w http.ResponseWriter, errs map[string]string) {
	write(w, http.StatusUnprocessableEntity, map[string]interface{}{
		"message": "Validation failed",
		"errors":  errs,
	})
}
