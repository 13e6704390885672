// Package catalog owns the book catalog: a fixed, memory-resident set of
// books keyed by ISBN. The set of ISBNs never changes at runtime; the only
// mutable state is each book's reviews map, and every access to it goes
// through the store so that concurrent mutations are applied as atomic units.
package catalog

// Book represents a single catalog entry. Reviews maps a reviewer's username
// to their review text; at most one entry exists per username.
type Book struct {
	Author  string            `json:"author"`
	Title   string            `json:"title"`
	Reviews map[string]string `json:"reviews"`
}

// RemoveStatus is the outcome of a review removal attempt.
type RemoveStatus int

const (
	// RemoveOK means the review existed and was removed.
	RemoveOK RemoveStatus = iota
	// RemoveBookMissing means the ISBN is not in the catalog.
	RemoveBookMissing
	// RemoveReviewMissing means the book exists but the user has no review
	// on it. Deleting an absent review slot is an error, not a no-op.
	RemoveReviewMissing
)
