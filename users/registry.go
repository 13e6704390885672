// Package users owns the user registry: the append-only, memory-resident
// collection of registered customers. The registry is the only component
// allowed to grow the user set, and it serializes registrations so that two
// concurrent attempts on the same username have at most one winner.
package users

import (
	"sync"

	"github.com/user/bookshop-go/apperror"
)

// User represents a registered customer. Records are immutable once created
// and there is no account deletion path.
type User struct {
	Username string `json:"username"`
	Password string `json:"-"`
}

// Registry is the owning component for user records. All access goes through
// its methods; the map is never handed out.
type Registry struct {
	mu    sync.RWMutex
	users map[string]User
}

// NewRegistry creates an empty user registry.
func NewRegistry() *Registry {
	return &Registry{users: make(map[string]User)}
}

// IsAvailable reports whether no existing record has this username.
// Pure query, no side effect.
func (r *Registry) IsAvailable(username string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, exists := r.users[username]
	return !exists
}

// Register appends a new user record. It fails with a validation error when
// either field is empty and with a conflict error when the username is taken.
// The existence check and the insert happen under one write lock, so a
// duplicate registration racing this one observes the conflict.
func (r *Registry) Register(username, password string) error {
	if username == "" || password == "" {
		return apperror.NewValidationError("Unable to register customer.", nil)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.users[username]; exists {
		return apperror.NewConflictError("Customer already exists!", nil)
	}
	r.users[username] = User{Username: username, Password: password}
	return nil
}

// Lookup performs the exact-match credential check used at login. Both the
// username and the password must match a single record.
func (r *Registry) Lookup(username, password string) (User, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, exists := r.users[username]
	if !exists || user.Password != password {
		return User{}, false
	}
	return user, true
}

// Count returns the number of registered users.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.users)
}
