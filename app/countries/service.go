package countries

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/joefazee/directory/internal/logger"
	"github.com/joefazee/directory/internal/metrics"
	"github.com/joefazee/directory/models"
)

// service implements the Service interface
type service struct {
	repo    Repository
	logger  logger.Logger
	metrics *metrics.Metrics
}

// NewService creates a new country service
func NewService(repo Repository, log logger.Logger, m *metrics.Metrics) Service {
	return &service{
		repo:    repo,
		logger:  logger.OrNull(log),
		metrics: m,
	}
}

// AddCountry validates the request and stores a new country with a fresh ID.
// Names are unique and compared case-sensitively.
func (s *service) AddCountry(ctx context.Context, req *CountryAddRequest) (*CountryResponse, error) {
	if req == nil {
		return nil, models.ErrNullArgument
	}

	country := req.ToCountry()
	if err := country.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", models.ErrInvalidArgument, err)
	}

	existing, err := s.repo.GetByName(ctx, country.Name)
	if err != nil && !errors.Is(err, models.ErrRecordNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: %w", models.ErrInvalidArgument, models.ErrDuplicateCountryName)
	}

	country.ID = uuid.New()
	if err := s.repo.Create(ctx, country); err != nil {
		if errors.Is(err, models.ErrDuplicateCountryName) {
			return nil, fmt.Errorf("%w: %w", models.ErrInvalidArgument, err)
		}
		return nil, err
	}

	s.metrics.IncrementCountriesCreated()
	s.logger.Info("country added", map[string]interface{}{
		"country_id": country.ID.String(),
		"name":       country.Name,
	})

	return ToCountryResponse(country), nil
}

// GetAllCountries returns all countries
func (s *service) GetAllCountries(ctx context.Context) ([]CountryResponse, error) {
	countries, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return ToCountryResponseList(countries), nil
}

// GetCountryByID returns a country by ID, or nil when there is none
func (s *service) GetCountryByID(ctx context.Context, id uuid.UUID) (*CountryResponse, error) {
	if id == uuid.Nil {
		return nil, nil
	}

	country, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, models.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return ToCountryResponse(country), nil
}

// UploadCountriesFromExcel adds every new country name listed in the workbook
// and returns how many were inserted. Names already present are skipped.
func (s *service) UploadCountriesFromExcel(ctx context.Context, r io.Reader) (int, error) {
	if r == nil {
		return 0, models.ErrNullArgument
	}

	names, err := readCountryNames(r)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", models.ErrUnsupportedFile, err)
	}

	inserted := 0
	for _, name := range names {
		_, err := s.AddCountry(ctx, &CountryAddRequest{Name: name})
		switch {
		case err == nil:
			inserted++
		case errors.Is(err, models.ErrInvalidArgument):
			s.logger.Debug("skipping spreadsheet row", map[string]interface{}{
				"name":  name,
				"error": err.Error(),
			})
		default:
			s.metrics.AddCountriesImported(inserted)
			return inserted, err
		}
	}

	s.metrics.AddCountriesImported(inserted)
	s.logger.Info("countries imported", map[string]interface{}{
		"rows":     len(names),
		"inserted": inserted,
	})
	return inserted, nil
}
