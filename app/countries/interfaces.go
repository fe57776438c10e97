package countries

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/joefazee/directory/models"
)

// Repository defines the interface for country data access.
// Lookups that find nothing return models.ErrRecordNotFound.
type Repository interface {
	GetAll(ctx context.Context) ([]models.Country, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Country, error)
	GetByName(ctx context.Context, name string) (*models.Country, error)
	Create(ctx context.Context, country *models.Country) error
}

// Service defines the interface for country business logic
type Service interface {
	AddCountry(ctx context.Context, req *CountryAddRequest) (*CountryResponse, error)
	GetAllCountries(ctx context.Context) ([]CountryResponse, error)
	GetCountryByID(ctx context.Context, id uuid.UUID) (*CountryResponse, error)
	UploadCountriesFromExcel(ctx context.Context, r io.Reader) (int, error)
}
