package users

// RegisterRequest represents the registration request payload.
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegisterResponse is returned on successful registration.
type RegisterResponse struct {
	Message string `json:"message"`
}
