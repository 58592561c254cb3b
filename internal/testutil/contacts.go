// AngelaMos | 2026
// contacts.go

package testutil

import (
	"context"
	"sync"
	"time"

	"github.com/carterperez-dev/templates/contacts-api/internal/contact"
	"github.com/carterperez-dev/templates/contacts-api/internal/core"
)

// ContactRepository is an in-memory contact.Repository that keeps
// insertion order.
type ContactRepository struct {
	mu       sync.Mutex
	contacts []contact.Contact
	clock    time.Time
}

func NewContactRepository() *ContactRepository {
	return &ContactRepository{
		clock: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (r *ContactRepository) Create(_ context.Context, c *contact.Contact) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.clock = r.clock.Add(time.Second)
	c.CreatedAt = r.clock
	c.UpdatedAt = r.clock
	r.contacts = append(r.contacts, *c)
	return nil
}

func (r *ContactRepository) GetByID(_ context.Context, id string) (*contact.Contact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, core.ErrNotFound
	}
	c := r.contacts[i]
	return &c, nil
}

func (r *ContactRepository) List(
	_ context.Context,
	owner string,
	limit, offset int,
) ([]contact.Contact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var owned []contact.Contact
	for _, c := range r.contacts {
		if c.Owner == owner {
			owned = append(owned, c)
		}
	}

	if offset >= len(owned) {
		return []contact.Contact{}, nil
	}
	end := offset + limit
	if end > len(owned) {
		end = len(owned)
	}
	return owned[offset:end], nil
}

func (r *ContactRepository) CountByOwner(_ context.Context, owner string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := 0
	for _, c := range r.contacts {
		if c.Owner == owner {
			n++
		}
	}
	return n, nil
}

func (r *ContactRepository) Update(_ context.Context, c *contact.Contact) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(c.ID)
	if i < 0 {
		return core.ErrNotFound
	}

	stored := &r.contacts[i]
	stored.Name = c.Name
	stored.Email = c.Email
	stored.Phone = c.Phone
	stored.Favorite = c.Favorite
	stored.UpdatedAt = time.Now().UTC()
	*c = *stored
	return nil
}

func (r *ContactRepository) UpdateFavorite(
	_ context.Context,
	id string,
	favorite bool,
) (*contact.Contact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, core.ErrNotFound
	}
	r.contacts[i].Favorite = favorite
	r.contacts[i].UpdatedAt = time.Now().UTC()
	c := r.contacts[i]
	return &c, nil
}

func (r *ContactRepository) Delete(_ context.Context, id string) (*contact.Contact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, core.ErrNotFound
	}
	c := r.contacts[i]
	r.contacts = append(r.contacts[:i], r.contacts[i+1:]...)
	return &c, nil
}

func (r *ContactRepository) indexOf(id string) int {
	for i, c := range r.contacts {
		if c.ID == id {
			return i
		}
	}
	return -1
}
