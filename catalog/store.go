package catalog

import (
	"strings"
	"sync"
)

// Store is the owning component for the book catalog. The internal maps are
// never handed out: every query returns a copy taken under the lock, and the
// two review write paths run under the write lock so that concurrent
// upserts and deletes on the same book never interleave.
type Store struct {
	mu    sync.RWMutex
	books map[string]*Book
}

// NewStore creates a catalog store pre-populated with the fixed book set.
func NewStore() *Store {
	return &Store{books: seedBooks()}
}

// List returns a snapshot of the whole catalog keyed by ISBN.
func (s *Store) List() map[string]Book {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]Book, len(s.books))
	for isbn, book := range s.books {
		out[isbn] = copyBook(book)
	}
	return out
}

// Get returns a snapshot of a single book by ISBN.
func (s *Store) Get(isbn string) (Book, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	book, ok := s.books[isbn]
	if !ok {
		return Book{}, false
	}
	return copyBook(book), true
}

// ByAuthor returns all books whose author matches, case-insensitively.
func (s *Store) ByAuthor(author string) []Book {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []Book
	for _, book := range s.books {
		if strings.EqualFold(book.Author, author) {
			out = append(out, copyBook(book))
		}
	}
	return out
}

// ByTitle returns all books whose title matches, case-insensitively.
func (s *Store) ByTitle(title string) []Book {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []Book
	for _, book := range s.books {
		if strings.EqualFold(book.Title, title) {
			out = append(out, copyBook(book))
		}
	}
	return out
}

// Reviews returns a snapshot of a book's reviews map.
func (s *Store) Reviews(isbn string) (map[string]string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	book, ok := s.books[isbn]
	if !ok {
		return nil, false
	}
	return copyReviews(book.Reviews), true
}

// SetReview sets a user's review on a book, overwriting any prior review by
// the same user (last write wins, no history). It returns the updated
// reviews snapshot, or ok=false when the ISBN is unknown.
func (s *Store) SetReview(isbn, username, review string) (map[string]string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	book, ok := s.books[isbn]
	if !ok {
		return nil, false
	}
	book.Reviews[username] = review
	return copyReviews(book.Reviews), true
}

// RemoveReview removes a user's review from a book.
func (s *Store) RemoveReview(isbn, username string) RemoveStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	book, ok := s.books[isbn]
	if !ok {
		return RemoveBookMissing
	}
	if _, ok := book.Reviews[username]; !ok {
		return RemoveReviewMissing
	}
	delete(book.Reviews, username)
	return RemoveOK
}

func copyBook(b *Book) Book {
	return Book{
		Author:  b.Author,
		Title:   b.Title,
		Reviews: copyReviews(b.Reviews),
	}
}

func copyReviews(reviews map[string]string) map[string]string {
	out := make(map[string]string, len(reviews))
	for user, text := range reviews {
		out[user] = text
	}
	return out
}
