// internal/auth/models.go

package auth

import "github.com/aviato-app/aviato-backend/internal/users"

// SessionUserID is the id assigned to the signed-in user on login.
const SessionUserID = "current-user"

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
}

type SignupRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
}

type AuthResponse struct {
	Token string      `json:"token"`
	User  *users.User `json:"user"`
}
