package persons

import (
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/joefazee/directory/models"
)

// memoryRepository keeps persons in process memory, in insertion order
type memoryRepository struct {
	mu      sync.RWMutex
	persons []models.Person
}

// NewMemoryRepository creates an in-memory person repository holding seed
func NewMemoryRepository(seed ...models.Person) Repository {
	r := &memoryRepository{}
	for i := range seed {
		person := clonePerson(seed[i])
		if person.ID == uuid.Nil {
			person.ID = uuid.New()
		}
		r.persons = append(r.persons, person)
	}
	return r
}

// clonePerson copies the pointer fields so callers never share state with the store
func clonePerson(p models.Person) models.Person {
	if p.DateOfBirth != nil {
		dob := *p.DateOfBirth
		p.DateOfBirth = &dob
	}
	if p.DeclaredAge != nil {
		age := *p.DeclaredAge
		p.DeclaredAge = &age
	}
	if p.CountryID != nil {
		id := *p.CountryID
		p.CountryID = &id
	}
	return p
}

func (r *memoryRepository) indexOf(id uuid.UUID) int {
	return slices.IndexFunc(r.persons, func(p models.Person) bool { return p.ID == id })
}

func (r *memoryRepository) snapshot(keep func(*models.Person) bool) []models.Person {
	out := make([]models.Person, 0, len(r.persons))
	for i := range r.persons {
		if keep == nil || keep(&r.persons[i]) {
			out = append(out, clonePerson(r.persons[i]))
		}
	}
	return out
}

func (r *memoryRepository) GetAll(_ context.Context) ([]models.Person, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.snapshot(nil), nil
}

func (r *memoryRepository) GetByID(_ context.Context, id uuid.UUID) (*models.Person, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i := r.indexOf(id)
	if i < 0 {
		return nil, models.ErrRecordNotFound
	}
	person := clonePerson(r.persons[i])
	return &person, nil
}

// searchText returns the text a search field is matched against
func searchText(field models.PersonSearchField, p *models.Person) string {
	switch field {
	case models.SearchName:
		return p.Name
	case models.SearchEmail:
		return p.Email
	case models.SearchDateOfBirth:
		if p.DateOfBirth == nil {
			return ""
		}
		return p.DateOfBirth.Format(models.DateOfBirthSearchLayout)
	case models.SearchGender:
		return p.Gender
	case models.SearchAddress:
		return p.Address
	}
	return ""
}

func matcher(filter models.PersonFilter) func(*models.Person) bool {
	if filter.IsEmpty() {
		return nil
	}
	if filter.Field == models.SearchCountryName {
		return func(p *models.Person) bool {
			return p.HasCountry() && slices.Contains(filter.CountryIDs, *p.CountryID)
		}
	}
	needle := strings.ToLower(filter.Text)
	return func(p *models.Person) bool {
		return strings.Contains(strings.ToLower(searchText(filter.Field, p)), needle)
	}
}

func (r *memoryRepository) GetFiltered(_ context.Context, filter models.PersonFilter) ([]models.Person, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.snapshot(matcher(filter)), nil
}

func (r *memoryRepository) Create(_ context.Context, person *models.Person) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if person.ID == uuid.Nil {
		person.ID = uuid.New()
	}
	now := time.Now()
	person.CreatedAt, person.UpdatedAt = now, now
	r.persons = append(r.persons, clonePerson(*person))
	return nil
}

func (r *memoryRepository) Update(_ context.Context, person *models.Person) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexOf(person.ID)
	if i < 0 {
		return models.ErrRecordNotFound
	}
	person.CreatedAt = r.persons[i].CreatedAt
	person.UpdatedAt = time.Now()
	r.persons[i] = clonePerson(*person)
	return nil
}

func (r *memoryRepository) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexOf(id)
	if i < 0 {
		return false, nil
	}
	r.persons = slices.Delete(r.persons, i, i+1)
	return true, nil
}
