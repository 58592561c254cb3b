// AngelaMos | 2026
// dto.go

package contact

import (
	"math"
	"time"
)

const (
	DefaultPage  = 1
	DefaultLimit = 2
	MaxLimit     = 100
)

// ContactRequest is the full contact body used by both create and replace.
// A contact's email is free text; only account emails are format checked.
type ContactRequest struct {
	Name     string `json:"name"     validate:"required,max=255"`
	Email    string `json:"email"    validate:"required,max=255"`
	Phone    string `json:"phone"    validate:"required,max=64"`
	Favorite *bool  `json:"favorite" validate:"required"`
}

type UpdateFavoriteRequest struct {
	Favorite *bool `json:"favorite" validate:"required"`
}

// ListParams holds the query of a list request. Favorite is accepted but
// does not filter.
type ListParams struct {
	Page     int
	Limit    int
	Favorite *bool
}

func (p *ListParams) Normalize() {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.Limit < 1 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	// keeps Offset from overflowing into a negative value
	if maxPage := math.MaxInt / p.Limit; p.Page > maxPage {
		p.Page = maxPage
	}
}

func (p ListParams) Offset() int {
	return (p.Page - 1) * p.Limit
}

type ContactResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Favorite  bool      `json:"favorite"`
	Owner     string    `json:"owner"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func ToContactResponse(c *Contact) ContactResponse {
	return ContactResponse{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Favorite:  c.Favorite,
		Owner:     c.Owner,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func ToContactResponses(contacts []Contact) []ContactResponse {
	out := make([]ContactResponse, len(contacts))
	for i := range contacts {
		out[i] = ToContactResponse(&contacts[i])
	}
	return out
}
