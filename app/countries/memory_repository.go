package countries

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/joefazee/directory/models"
)

// memoryRepository keeps countries in process memory, in insertion order
type memoryRepository struct {
	mu        sync.RWMutex
	countries []models.Country
	byID      map[uuid.UUID]int
}

// NewMemoryRepository creates an in-memory country repository holding seed
func NewMemoryRepository(seed ...models.Country) Repository {
	r := &memoryRepository{byID: make(map[uuid.UUID]int)}
	for i := range seed {
		_ = r.insert(seed[i])
	}
	return r
}

func (r *memoryRepository) insert(country models.Country) error {
	for i := range r.countries {
		if r.countries[i].Name == country.Name {
			return models.ErrDuplicateCountryName
		}
	}
	if country.ID == uuid.Nil {
		country.ID = uuid.New()
	}
	now := time.Now()
	if country.CreatedAt.IsZero() {
		country.CreatedAt = now
	}
	country.UpdatedAt = now

	r.byID[country.ID] = len(r.countries)
	r.countries = append(r.countries, country)
	return nil
}

func (r *memoryRepository) GetAll(_ context.Context) ([]models.Country, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Country, len(r.countries))
	copy(out, r.countries)
	return out, nil
}

func (r *memoryRepository) GetByID(_ context.Context, id uuid.UUID) (*models.Country, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i, ok := r.byID[id]
	if !ok {
		return nil, models.ErrRecordNotFound
	}
	country := r.countries[i]
	return &country, nil
}

func (r *memoryRepository) GetByName(_ context.Context, name string) (*models.Country, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.countries {
		if r.countries[i].Name == name {
			country := r.countries[i]
			return &country, nil
		}
	}
	return nil, models.ErrRecordNotFound
}

func (r *memoryRepository) Create(_ context.Context, country *models.Country) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if country.ID == uuid.Nil {
		country.ID = uuid.New()
	}
	if err := r.insert(*country); err != nil {
		return err
	}
	stored := r.countries[len(r.countries)-1]
	country.CreatedAt, country.UpdatedAt = stored.CreatedAt, stored.UpdatedAt
	return nil
}
