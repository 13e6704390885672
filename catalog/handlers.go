package catalog

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/user/bookshop-go/apperror"
)

// Handlers serves the public, read-only catalog endpoints.
type Handlers struct {
	store *Store
}

// NewHandlers creates catalog Handlers backed by the given store.
func NewHandlers(store *Store) *Handlers {
	return &Handlers{store: store}
}

// RegisterRoutes registers the public catalog routes on the router.
func (h *Handlers) RegisterRoutes(r chi.Router) {
	r.Get("/", h.handleList)
	r.Get("/isbn/{isbn}", h.handleByISBN)
	r.Get("/author/{author}", h.handleByAuthor)
	r.Get("/title/{title}", h.handleByTitle)
	r.Get("/review/{isbn}", h.handleReviews)
}

func (h *Handlers) handleList(w http.ResponseWriter, r *http.Request) {
	apperror.WriteJSON(w, http.StatusOK, h.store.List())
}

func (h *Handlers) handleByISBN(w http.ResponseWriter, r *http.Request) {
	isbn := chi.URLParam(r, "isbn")
	book, ok := h.store.Get(isbn)
	if !ok {
		apperror.WriteError(w, r, apperror.NewNotFoundError("Book not found", nil))
		return
	}
	apperror.WriteJSON(w, http.StatusOK, book)
}

func (h *Handlers) handleByAuthor(w http.ResponseWriter, r *http.Request) {
	author := chi.URLParam(r, "author")
	books := h.store.ByAuthor(author)
	if len(books) == 0 {
		apperror.WriteError(w, r, apperror.NewNotFoundError("No books found by this author", nil))
		return
	}
	apperror.WriteJSON(w, http.StatusOK, books)
}

func (h *Handlers) handleByTitle(w http.ResponseWriter, r *http.Request) {
	title := chi.URLParam(r, "title")
	books := h.store.ByTitle(title)
	if len(books) == 0 {
		apperror.WriteError(w, r, apperror.NewNotFoundError("No books found with this title", nil))
		return
	}
	apperror.WriteJSON(w, http.StatusOK, books)
}

func (h *Handlers) handleReviews(w http.ResponseWriter, r *http.Request) {
	isbn := chi.URLParam(r, "isbn")
	reviews, ok := h.store.Reviews(isbn)
	if !ok {
		apperror.WriteError(w, r, apperror.NewNotFoundError("Book not found", nil))
		return
	}
	apperror.WriteJSON(w, http.StatusOK, reviews)
}
