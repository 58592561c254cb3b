// AngelaMos | 2026
// dto.go

package auth

import (
	"github.com/carterperez-dev/templates/contacts-api/internal/user"
)

type RegisterRequest struct {
	Email        string `json:"email"        validate:"required,email,max=255"`
	Password     string `json:"password"     validate:"required,min=6,max=72,maxbytes=72"`
	Subscription string `json:"subscription" validate:"omitempty,oneof=starter pro business"`
}

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,max=72"`
}

type ResendVerificationRequest struct {
	Email string `json:"email" validate:"required,email,max=255"`
}

type RegisterResponse struct {
	User user.SummaryResponse `json:"user"`
}

type LoginResponse struct {
	Token string            `json:"token"`
	User  user.UserResponse `json:"user"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type AvatarResponse struct {
	AvatarURL string `json:"avatar_url"`
}
