// AngelaMos | 2026
// repository.go

package contact

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/carterperez-dev/templates/contacts-api/internal/core"
)

type Repository interface {
	Create(ctx context.Context, c *Contact) error
	GetByID(ctx context.Context, id string) (*Contact, error)
	List(ctx context.Context, owner string, limit, offset int) ([]Contact, error)
	CountByOwner(ctx context.Context, owner string) (int, error)
	Update(ctx context.Context, c *Contact) error
	UpdateFavorite(ctx context.Context, id string, favorite bool) (*Contact, error)
	Delete(ctx context.Context, id string) (*Contact, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

const contactColumns = `id, name, email, phone, favorite, owner, created_at, updated_at`

func (r *repository) Create(ctx context.Context, c *Contact) error {
	query := `
		INSERT INTO contacts (id, name, email, phone, favorite, owner)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at`

	err := r.db.QueryRowxContext(ctx, query,
		c.ID,
		c.Name,
		c.Email,
		c.Phone,
		c.Favorite,
		c.Owner,
	).Scan(&c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create contact: %w", err)
	}

	return nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*Contact, error) {
	query := `SELECT ` + contactColumns + ` FROM contacts WHERE id = $1`

	var c Contact
	if err := r.db.GetContext(ctx, &c, query, id); err != nil {
		return nil, wrapNotFound("get contact", err)
	}

	return &c, nil
}

func (r *repository) List(
	ctx context.Context,
	owner string,
	limit, offset int,
) ([]Contact, error) {
	query := `
		SELECT ` + contactColumns + `
		FROM contacts
		WHERE owner = $1
		ORDER BY created_at ASC, id ASC
		LIMIT $2 OFFSET $3`

	var contacts []Contact
	if err := r.db.SelectContext(ctx, &contacts, query, owner, limit, offset); err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}

	return contacts, nil
}

func (r *repository) CountByOwner(ctx context.Context, owner string) (int, error) {
	query := `SELECT COUNT(*) FROM contacts WHERE owner = $1`

	var count int
	if err := r.db.GetContext(ctx, &count, query, owner); err != nil {
		return 0, fmt.Errorf("count contacts: %w", err)
	}

	return count, nil
}

// Update replaces every mutable field and refreshes c from the stored row.
func (r *repository) Update(ctx context.Context, c *Contact) error {
	query := `
		UPDATE contacts
		SET name = $2, email = $3, phone = $4, favorite = $5, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + contactColumns

	err := r.db.QueryRowxContext(ctx, query,
		c.ID,
		c.Name,
		c.Email,
		c.Phone,
		c.Favorite,
	).StructScan(c)
	if err != nil {
		return wrapNotFound("update contact", err)
	}

	return nil
}

func (r *repository) UpdateFavorite(
	ctx context.Context,
	id string,
	favorite bool,
) (*Contact, error) {
	query := `
		UPDATE contacts
		SET favorite = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + contactColumns

	var c Contact
	if err := r.db.QueryRowxContext(ctx, query, id, favorite).StructScan(&c); err != nil {
		return nil, wrapNotFound("update favorite", err)
	}

	return &c, nil
}

func (r *repository) Delete(ctx context.Context, id string) (*Contact, error) {
	query := `DELETE FROM contacts WHERE id = $1 RETURNING ` + contactColumns

	var c Contact
	if err := r.db.QueryRowxContext(ctx, query, id).StructScan(&c); err != nil {
		return nil, wrapNotFound("delete contact", err)
	}

	return &c, nil
}

func wrapNotFound(op string, err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, core.ErrNotFound)
	}
	return fmt.Errorf("%s: %w", op, err)
}
