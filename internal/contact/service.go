// AngelaMos | 2026
// service.go

package contact

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/carterperez-dev/templates/contacts-api/internal/core"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns one page of the owner's contacts and the owner's total.
func (s *Service) List(
	ctx context.Context,
	owner string,
	params ListParams,
) ([]Contact, int, error) {
	params.Normalize()

	ctx, span := core.StartSpan(ctx, "contact.list",
		attribute.Int("page", params.Page),
		attribute.Int("limit", params.Limit),
	)
	defer span.End()

	contacts, err := s.repo.List(ctx, owner, params.Limit, params.Offset())
	if err != nil {
		core.SetSpanError(ctx, err)
		return nil, 0, err
	}

	total, err := s.repo.CountByOwner(ctx, owner)
	if err != nil {
		core.SetSpanError(ctx, err)
		return nil, 0, err
	}

	return contacts, total, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*Contact, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(
	ctx context.Context,
	owner string,
	req ContactRequest,
) (*Contact, error) {
	c := &Contact{
		ID:       uuid.New().String(),
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Favorite: boolValue(req.Favorite),
		Owner:    owner,
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}

func (s *Service) Update(
	ctx context.Context,
	id string,
	req ContactRequest,
) (*Contact, error) {
	c := &Contact{
		ID:       id,
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Favorite: boolValue(req.Favorite),
	}

	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}

func (s *Service) UpdateFavorite(
	ctx context.Context,
	id string,
	favorite bool,
) (*Contact, error) {
	return s.repo.UpdateFavorite(ctx, id, favorite)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	return nil
}

// ParseID rejects ids that could never name a stored contact.
func ParseID(raw string) (string, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("parse contact id %q: %w", raw, core.ErrInvalidInput)
	}
	return id.String(), nil
}

func boolValue(b *bool) bool {
	return b != nil && *b
}
