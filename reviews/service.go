// Package reviews implements the authorized mutation of book reviews: the
// per-user create/update/delete paths on a book's review map. Callers are
// expected to have resolved the acting username through the session
// middleware; this package trusts the username it is handed.
package reviews

import (
	"fmt"

	"github.com/user/bookshop-go/apperror"
	"github.com/user/bookshop-go/catalog"
)

// Service performs review mutations against the catalog store. The store
// serializes writes per catalog, so two concurrent upserts to the same book
// cannot lose entries and an upsert racing a delete on the same slot settles
// on exactly one of the two outcomes.
type Service struct {
	store *catalog.Store
}

// NewService creates a review Service backed by the given catalog store.
func NewService(store *catalog.Store) *Service {
	return &Service{store: store}
}

// Upsert sets the user's review on the book, overwriting any prior review by
// the same user. It returns the updated reviews map for the book.
func (s *Service) Upsert(isbn, username, review string) (map[string]string, error) {
	if review == "" {
		return nil, apperror.NewValidationError("Review text is required", nil)
	}

	reviews, ok := s.store.SetReview(isbn, username, review)
	if !ok {
		return nil, apperror.NewNotFoundError("Book not found", nil)
	}
	return reviews, nil
}

// Delete removes the user's review from the book. A delete on a slot with no
// review is an error, not a no-op.
func (s *Service) Delete(isbn, username string) error {
	switch s.store.RemoveReview(isbn, username) {
	case catalog.RemoveBookMissing:
		return apperror.NewNotFoundError("Book not found", nil)
	case catalog.RemoveReviewMissing:
		return apperror.NewNotFoundError("No review found for this user", nil)
	default:
		return nil
	}
}

// DeletedMessage is the success message for a review deletion.
func DeletedMessage(isbn string) string {
	return fmt.Sprintf("Review for ISBN %s deleted", isbn)
}
