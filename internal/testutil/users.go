// AngelaMos | 2026
// users.go

package testutil

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/carterperez-dev/templates/contacts-api/internal/core"
	"github.com/carterperez-dev/templates/contacts-api/internal/user"
)

// UserRepository is an in-memory user.Repository.
type UserRepository struct {
	mu    sync.Mutex
	users map[string]user.User
}

func NewUserRepository() *UserRepository {
	return &UserRepository{users: make(map[string]user.User)}
}

func (r *UserRepository) Create(_ context.Context, u *user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if existing.Email == u.Email {
			return fmt.Errorf("create user: %w", core.ErrDuplicateKey)
		}
	}

	now := time.Now().UTC()
	u.CreatedAt = now
	u.UpdatedAt = now
	r.users[u.ID] = *u
	return nil
}

func (r *UserRepository) GetByID(_ context.Context, id string) (*user.User, error) {
	return r.find(func(u user.User) bool { return u.ID == id })
}

func (r *UserRepository) GetByEmail(_ context.Context, email string) (*user.User, error) {
	return r.find(func(u user.User) bool { return u.Email == email })
}

func (r *UserRepository) GetByVerificationToken(
	_ context.Context,
	token string,
) (*user.User, error) {
	if token == "" {
		return nil, core.ErrNotFound
	}
	return r.find(func(u user.User) bool { return u.VerificationToken == token })
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := r.GetByEmail(ctx, email)
	if errors.Is(err, core.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *UserRepository) MarkVerified(_ context.Context, id string) error {
	return r.update(id, func(u *user.User) {
		u.Verify = true
		u.VerificationToken = ""
	})
}

func (r *UserRepository) SetToken(_ context.Context, id string, token *string) error {
	return r.update(id, func(u *user.User) {
		if token == nil {
			u.Token = nil
			return
		}
		t := *token
		u.Token = &t
	})
}

func (r *UserRepository) UpdateAvatar(_ context.Context, id, avatarURL string) error {
	return r.update(id, func(u *user.User) { u.AvatarURL = avatarURL })
}

func (r *UserRepository) find(match func(user.User) bool) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if match(u) {
			found := u
			return &found, nil
		}
	}
	return nil, core.ErrNotFound
}

func (r *UserRepository) update(id string, mutate func(*user.User)) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok {
		return core.ErrNotFound
	}
	mutate(&u)
	u.UpdatedAt = time.Now().UTC()
	r.users[id] = u
	return nil
}
