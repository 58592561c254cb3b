// AngelaMos | 2026
// dto.go

package user

import (
	"time"
)

// UserResponse is the public view of an account: no password hash and no
// verification token.
type UserResponse struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Subscription string    `json:"subscription"`
	AvatarURL    string    `json:"avatar_url"`
	Verify       bool      `json:"verify"`
	Token        *string   `json:"token"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type SummaryResponse struct {
	Email        string `json:"email"`
	Subscription string `json:"subscription"`
}

func ToUserResponse(u *User) UserResponse {
	return UserResponse{
		ID:           u.ID,
		Email:        u.Email,
		Subscription: u.Subscription,
		AvatarURL:    u.AvatarURL,
		Verify:       u.Verify,
		Token:        u.Token,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func ToSummaryResponse(u *User) SummaryResponse {
	return SummaryResponse{
		Email:        u.Email,
		Subscription: u.Subscription,
	}
}
