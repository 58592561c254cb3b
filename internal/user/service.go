// AngelaMos | 2026
// service.go

package user

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/carterperez-dev/templates/contacts-api/internal/core"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type NewUser struct {
	Email             string
	PasswordHash      string
	Subscription      string
	AvatarURL         string
	VerificationToken string
}

func (s *Service) Create(ctx context.Context, in NewUser) (*User, error) {
	subscription := in.Subscription
	if subscription == "" {
		subscription = SubscriptionStarter
	}

	user := &User{
		ID:                uuid.New().String(),
		Email:             normalizeEmail(in.Email),
		PasswordHash:      in.PasswordHash,
		Subscription:      subscription,
		AvatarURL:         in.AvatarURL,
		VerificationToken: in.VerificationToken,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*User, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("get user: %w", core.ErrNotFound)
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) GetByEmail(ctx context.Context, email string) (*User, error) {
	return s.repo.GetByEmail(ctx, normalizeEmail(email))
}

func (s *Service) GetByVerificationToken(
	ctx context.Context,
	token string,
) (*User, error) {
	return s.repo.GetByVerificationToken(ctx, token)
}

func (s *Service) EmailExists(ctx context.Context, email string) (bool, error) {
	return s.repo.ExistsByEmail(ctx, normalizeEmail(email))
}

func (s *Service) MarkVerified(ctx context.Context, id string) error {
	return s.repo.MarkVerified(ctx, id)
}

// StartSession replaces whatever session token the user had.
func (s *Service) StartSession(ctx context.Context, id, token string) error {
	return s.repo.SetToken(ctx, id, &token)
}

func (s *Service) EndSession(ctx context.Context, id string) error {
	return s.repo.SetToken(ctx, id, nil)
}

func (s *Service) UpdateAvatar(ctx context.Context, id, avatarURL string) error {
	return s.repo.UpdateAvatar(ctx, id, avatarURL)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
