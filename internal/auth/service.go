// AngelaMos | 2026
// service.go

package auth

import (
	"context"
	"errors"
	"fmt"
	"io"

	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/carterperez-dev/templates/contacts-api/internal/core"
	"github.com/carterperez-dev/templates/contacts-api/internal/mail"
	"github.com/carterperez-dev/templates/contacts-api/internal/user"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotVerified        = errors.New("email not verified")
	ErrEmailExists        = errors.New("email already exists")
	ErrAlreadyVerified    = errors.New("already verified")
)

// UserStore is the slice of *user.Service the auth flows need.
type UserStore interface {
	Create(ctx context.Context, in user.NewUser) (*user.User, error)
	GetByEmail(ctx context.Context, email string) (*user.User, error)
	GetByVerificationToken(ctx context.Context, token string) (*user.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	MarkVerified(ctx context.Context, id string) error
	StartSession(ctx context.Context, id, token string) error
	EndSession(ctx context.Context, id string) error
	UpdateAvatar(ctx context.Context, id, avatarURL string) error
}

type TokenIssuer interface {
	CreateAccessToken(userID string) (string, error)
}

type AvatarUploader interface {
	Upload(
		ctx context.Context,
		userID, originalName string,
		src io.Reader,
	) (string, error)
}

type Service struct {
	users   UserStore
	tokens  TokenIssuer
	mailer  mail.Sender
	avatars AvatarUploader
	baseURL string
}

func NewService(
	users UserStore,
	tokens TokenIssuer,
	mailer mail.Sender,
	avatars AvatarUploader,
	baseURL string,
) *Service {
	return &Service{
		users:   users,
		tokens:  tokens,
		mailer:  mailer,
		avatars: avatars,
		baseURL: baseURL,
	}
}

// Register creates an unverified account and mails its verification link.
// A failed send leaves the account in place.
func (s *Service) Register(
	ctx context.Context,
	req RegisterRequest,
) (*user.User, error) {
	exists, err := s.users.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if exists {
		return nil, ErrEmailExists
	}

	passwordHash, err := core.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	verificationToken, err := gonanoid.New()
	if err != nil {
		return nil, fmt.Errorf("generate verification token: %w", err)
	}

	u, err := s.users.Create(ctx, user.NewUser{
		Email:             req.Email,
		PasswordHash:      passwordHash,
		Subscription:      req.Subscription,
		AvatarURL:         core.GravatarURL(req.Email),
		VerificationToken: verificationToken,
	})
	if err != nil {
		if errors.Is(err, core.ErrDuplicateKey) {
			return nil, ErrEmailExists
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	msg := mail.VerificationEmail(s.baseURL, u.Email, verificationToken)
	if err := s.mailer.Send(ctx, msg); err != nil {
		return nil, fmt.Errorf("send verification email: %w", err)
	}

	return u, nil
}

func (s *Service) VerifyEmail(ctx context.Context, token string) error {
	u, err := s.users.GetByVerificationToken(ctx, token)
	if err != nil {
		return err
	}
	return s.users.MarkVerified(ctx, u.ID)
}

func (s *Service) ResendVerification(ctx context.Context, email string) error {
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if u.Verify {
		return ErrAlreadyVerified
	}

	msg := mail.VerificationEmail(s.baseURL, u.Email, u.VerificationToken)
	if err := s.mailer.Send(ctx, msg); err != nil {
		return fmt.Errorf("send verification email: %w", err)
	}
	return nil
}

// Login issues a token and stores it as the user's only live session.
func (s *Service) Login(
	ctx context.Context,
	req LoginRequest,
) (string, *user.User, error) {
	u, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			//nolint:errcheck // timing attack prevention - always verify to prevent enumeration
			_, _ = core.VerifyPasswordTimingSafe(req.Password, nil)
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("get user: %w", err)
	}

	if !u.Verify {
		return "", nil, ErrNotVerified
	}

	valid, err := core.VerifyPasswordTimingSafe(req.Password, &u.PasswordHash)
	if err != nil {
		return "", nil, fmt.Errorf("verify password: %w", err)
	}
	if !valid {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.tokens.CreateAccessToken(u.ID)
	if err != nil {
		return "", nil, err
	}

	if err := s.users.StartSession(ctx, u.ID, token); err != nil {
		return "", nil, fmt.Errorf("start session: %w", err)
	}
	u.Token = &token

	return token, u, nil
}

func (s *Service) Logout(ctx context.Context, userID string) error {
	return s.users.EndSession(ctx, userID)
}

func (s *Service) UpdateAvatar(
	ctx context.Context,
	userID, originalName string,
	src io.Reader,
) (string, error) {
	url, err := s.avatars.Upload(ctx, userID, originalName, src)
	if err != nil {
		return "", err
	}

	if err := s.users.UpdateAvatar(ctx, userID, url); err != nil {
		return "", fmt.Errorf("update avatar: %w", err)
	}

	return url, nil
}
