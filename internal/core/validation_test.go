// AngelaMos | 2026
// validation_test.go

package core

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type signup struct {
	Email        string `json:"email"        validate:"required,email"`
	Password     string `json:"password"     validate:"required,min=6,max=8"`
	Subscription string `json:"subscription" validate:"omitempty,oneof=starter pro"`
	Favorite     *bool  `json:"favorite"     validate:"required"`
	Internal     string `json:"-"            validate:"omitempty,len=3"`
}

func TestFormatValidationError(t *testing.T) {
	v := NewValidator()
	yes := true

	tests := []struct {
		name string
		in   signup
		want string
	}{
		{"required uses json name", signup{Password: "secret", Favorite: &yes}, "missing required field email"},
		{"email", signup{Email: "nope", Password: "secret", Favorite: &yes}, "email must be a valid email"},
		{"min", signup{Email: "a@b.co", Password: "abc", Favorite: &yes}, "password must be at least 6 characters"},
		{"max", signup{Email: "a@b.co", Password: "abcdefghi", Favorite: &yes}, "password must be at most 8 characters"},
		{"oneof", signup{Email: "a@b.co", Password: "secret", Subscription: "gold", Favorite: &yes}, "subscription must be one of [starter pro]"},
		{"nil pointer", signup{Email: "a@b.co", Password: "secret"}, "missing required field favorite"},
		{"fallback", signup{Email: "a@b.co", Password: "secret", Favorite: &yes, Internal: "toolong"}, "Internal failed on len"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.in)
			assert.Equal(t, tt.want, FormatValidationError(err))
		})
	}

	assert.NoError(t, v.Struct(signup{Email: "a@b.co", Password: "secret", Favorite: &yes}))
}

func TestFormatValidationErrorNonValidator(t *testing.T) {
	assert.Equal(t, "invalid request", FormatValidationError(errors.New("boom")))
}

type secret struct {
	Password string `json:"password" validate:"required,max=72,maxbytes=72"`
}

func TestMaxBytesCountsEncodedLength(t *testing.T) {
	v := NewValidator()

	assert.NoError(t, v.Struct(secret{Password: strings.Repeat("a", 72)}))
	assert.NoError(t, v.Struct(secret{Password: strings.Repeat("é", 36)}))

	err := v.Struct(secret{Password: strings.Repeat("é", 40)})
	assert.Equal(t, "password must be at most 72 bytes", FormatValidationError(err))
}
