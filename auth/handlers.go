package auth

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/user/bookshop-go/apperror"
)

// Handlers wraps the auth Service to provide HTTP handlers.
type Handlers struct {
	service *Service
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(service *Service) *Handlers {
	return &Handlers{service: service}
}

// HandleLogin handles POST /login. On success the token is returned in the
// JSON body and stored in the session cookie. A missing field is reported as
// 404 and a credential mismatch as 208, matching the upstream API.
func (h *Handlers) HandleLogin() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apperror.WriteJSON(w, http.StatusNotFound, apperror.ErrorResponse{Message: "Error logging in"})
			return
		}
		defer r.Body.Close()

		resp, err := h.service.Login(req)
		if err != nil {
			if apperror.IsValidationError(err) {
				// Upstream reports missing credentials as 404.
				appErr, _ := apperror.FromError(err)
				apperror.WriteJSON(w, http.StatusNotFound, appErr.ToResponse())
				return
			}
			apperror.WriteError(w, r, err)
			return
		}

		if err := h.service.saveSession(w, r, req.Username, resp.AccessToken); err != nil {
			// The token in the body is still usable via the Authorization
			// header, so a cookie failure is logged, not fatal.
			log.Printf("failed to save session cookie for %q: %v", req.Username, err)
		}

		apperror.WriteJSON(w, http.StatusOK, resp)
	}
}
