package users

import (
	"encoding/json"
	"net/http"

	"github.com/user/bookshop-go/apperror"
)

// Handlers provides HTTP handlers for user registration.
type Handlers struct {
	registry *Registry
}

// NewHandlers creates new user Handlers.
func NewHandlers(registry *Registry) *Handlers {
	return &Handlers{registry: registry}
}

// HandleRegister handles POST /register.
//
// The upstream API reports both missing input and an already-registered
// username as 404, and that quirk is preserved for client compatibility.
// The registry still distinguishes the two as validation vs conflict errors.
func (h *Handlers) HandleRegister() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apperror.WriteJSON(w, http.StatusNotFound, apperror.ErrorResponse{Message: "Unable to register customer."})
			return
		}
		defer r.Body.Close()

		if err := h.registry.Register(req.Username, req.Password); err != nil {
			if apperror.IsValidationError(err) || apperror.IsConflictError(err) {
				appErr, _ := apperror.FromError(err)
				apperror.WriteJSON(w, http.StatusNotFound, appErr.ToResponse())
				return
			}
			apperror.WriteError(w, r, err)
			return
		}

		apperror.WriteJSON(w, http.StatusOK, RegisterResponse{
			Message: "Customer successfully registered. Now you can login",
		})
	}
}
