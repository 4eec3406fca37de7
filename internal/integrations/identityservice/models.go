package identityservice

import "github.com/google/uuid"

type verifyRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Identity is a staff account confirmed by the identity service
type Identity struct {
	UserID   uuid.UUID `json:"user_id"`
	Username string    `json:"username"`
	Name     string    `json:"name"`
	Role     string    `json:"role"`
	Active   bool      `json:"active"`
}

// ErrorResponse is the error body returned by the identity service
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
