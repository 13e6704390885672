package reviews

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/user/bookshop-go/apperror"
	"github.com/user/bookshop-go/auth"
)

// Handler serves the protected review endpoints. The routes it registers
// must sit behind the session middleware; the acting username is taken from
// the request context, never from the request payload.
type Handler struct {
	service *Service
}

// NewHandler creates a review Handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the review routes on the (protected) router.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Put("/review/{isbn}", h.handleUpsert)
	r.Delete("/review/{isbn}", h.handleDelete)
}

// upsertBody is the optional JSON body of a review upsert. The review text
// may come from the "review" query parameter instead.
type upsertBody struct {
	Review string `json:"review"`
}

// UpsertResponse is returned on a successful review upsert, embedding the
// updated reviews map for the book.
type UpsertResponse struct {
	Message string            `json:"message"`
	Reviews map[string]string `json:"reviews"`
}

// DeleteResponse is returned on a successful review deletion.
type DeleteResponse struct {
	Message string `json:"message"`
}

func (h *Handler) handleUpsert(w http.ResponseWriter, r *http.Request) {
	username, ok := auth.UsernameFromContext(r.Context())
	if !ok {
		apperror.WriteError(w, r, apperror.NewAuthError("User not authenticated", nil))
		return
	}

	isbn := chi.URLParam(r, "isbn")
	review := reviewText(r)

	reviews, err := h.service.Upsert(isbn, username, review)
	if err != nil {
		apperror.WriteError(w, r, err)
		return
	}

	apperror.WriteJSON(w, http.StatusOK, UpsertResponse{
		Message: "Review successfully posted",
		Reviews: reviews,
	})
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	username, ok := auth.UsernameFromContext(r.Context())
	if !ok {
		apperror.WriteError(w, r, apperror.NewAuthError("User not authenticated", nil))
		return
	}

	isbn := chi.URLParam(r, "isbn")
	if err := h.service.Delete(isbn, username); err != nil {
		apperror.WriteError(w, r, err)
		return
	}

	apperror.WriteJSON(w, http.StatusOK, DeleteResponse{Message: DeletedMessage(isbn)})
}

// reviewText extracts the review text, preferring the JSON body field over
// the query parameter, as upstream does. A missing or unparseable body just
// falls through to the query parameter.
func reviewText(r *http.Request) string {
	if r.Body != nil {
		var body upsertBody
		if err := json.NewDecoder(r.Body).Decode(&body); err == nil && body.Review != "" {
			return body.Review
		}
		r.Body.Close()
	}
	return r.URL.Query().Get("review")
}
