package apperror

import (
	"encoding/json"
	"net/http"
)

// WriteJSON serializes data to JSON and writes it with the given status.
// A nil data value writes only the status line, never a literal "null" body.
func WriteJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			http.Error(w, `{"message":"failed to encode response"}`, http.StatusInternalServerError)
		}
	}
}

// WriteError writes a standardized error response for any error. Errors that
// are not already *AppError are wrapped as internal errors so every response
// keeps the same JSON shape.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	appErr, ok := FromError(err)
	if !ok {
		appErr = NewInternalError("an unexpected error occurred", err)
	}
	WriteJSON(w, appErr.StatusCode(), appErr.ToResponse())
}
