// AngelaMos | 2026
// entity.go

package user

import (
	"time"
)

type User struct {
	ID                string    `db:"id"`
	Email             string    `db:"email"`
	PasswordHash      string    `db:"password_hash"`
	Subscription      string    `db:"subscription"`
	AvatarURL         string    `db:"avatar_url"`
	Verify            bool      `db:"verify"`
	VerificationToken string    `db:"verification_token"`
	Token             *string   `db:"token"`
	CreatedAt         time.Time `db:"created_at"`
	UpdatedAt         time.Time `db:"updated_at"`
}

// HasSession reports whether token is the session currently stored on the
// user. Only one session is live at a time.
func (u *User) HasSession(token string) bool {
	return token != "" && u.Token != nil && *u.Token == token
}

const (
	SubscriptionStarter  = "starter"
	SubscriptionPro      = "pro"
	SubscriptionBusiness = "business"
)
