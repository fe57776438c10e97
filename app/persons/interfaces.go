package persons

import (
	"bytes"
	"context"

	"github.com/google/uuid"

	"github.com/joefazee/directory/models"
)

// Repository defines the interface for person data access.
// GetByID and Update return models.ErrRecordNotFound for unknown ids.
type Repository interface {
	GetAll(ctx context.Context) ([]models.Person, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Person, error)
	GetFiltered(ctx context.Context, filter models.PersonFilter) ([]models.Person, error)
	Create(ctx context.Context, person *models.Person) error
	Update(ctx context.Context, person *models.Person) error
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

// CountryLookup resolves country references owned by the countries module
type CountryLookup interface {
	// CountryNames returns the names of the ids that exist. Unknown ids are absent.
	CountryNames(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error)
	// FindCountryIDs returns the ids of countries whose name contains fragment, ignoring case.
	FindCountryIDs(ctx context.Context, fragment string) ([]uuid.UUID, error)
}

// Service defines the interface for person business logic
type Service interface {
	AddPerson(ctx context.Context, req *PersonAddRequest) (*PersonResponse, error)
	GetAllPersons(ctx context.Context) ([]PersonResponse, error)
	GetPersonByID(ctx context.Context, id uuid.UUID) (*PersonResponse, error)
	GetFilteredPersons(ctx context.Context, field models.PersonSearchField, text string) ([]PersonResponse, error)
	GetSortedPersons(persons []PersonResponse, field SortField, order SortOrder) []PersonResponse
	UpdatePerson(ctx context.Context, req *PersonUpdateRequest) (*PersonResponse, error)
	DeletePerson(ctx context.Context, id uuid.UUID) (bool, error)
	ExportCSV(ctx context.Context) (*bytes.Buffer, error)
	ExportExcel(ctx context.Context) (*bytes.Buffer, error)
}
