package persons

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/joefazee/directory/internal/logger"
	"github.com/joefazee/directory/internal/metrics"
	"github.com/joefazee/directory/models"
)

// service implements the Service interface
type service struct {
	repo      Repository
	countries CountryLookup
	region    string
	rules     []personRule
	logger    logger.Logger
	metrics   *metrics.Metrics
	now       func() time.Time
}

// NewService creates a new person service. A nil lookup leaves every country name empty.
func NewService(repo Repository, countries CountryLookup, cfg Config, log logger.Logger, m *metrics.Metrics) Service {
	s := &service{
		repo:      repo,
		countries: countries,
		region:    cfg.region(),
		logger:    logger.OrNull(log),
		metrics:   m,
		now:       time.Now,
	}
	s.rules = newPersonRules(cfg, func() time.Time { return s.now() })
	return s
}

// resolve converts persons to responses, looking up all referenced countries in one call
func (s *service) resolve(ctx context.Context, persons []models.Person) ([]PersonResponse, error) {
	names := map[uuid.UUID]string{}
	if s.countries != nil {
		var ids []uuid.UUID
		for i := range persons {
			if persons[i].HasCountry() {
				ids = append(ids, *persons[i].CountryID)
			}
		}
		if len(ids) > 0 {
			var err error
			names, err = s.countries.CountryNames(ctx, ids)
			if err != nil {
				return nil, fmt.Errorf("resolve country names: %w", err)
			}
		}
	}

	now := s.now()
	responses := make([]PersonResponse, len(persons))
	for i := range persons {
		var name string
		if persons[i].HasCountry() {
			name = names[*persons[i].CountryID]
		}
		responses[i] = ToPersonResponse(&persons[i], name, now)
	}
	return responses, nil
}

func (s *service) resolveOne(ctx context.Context, person *models.Person) (*PersonResponse, error) {
	responses, err := s.resolve(ctx, []models.Person{*person})
	if err != nil {
		return nil, err
	}
	return &responses[0], nil
}

// AddPerson validates the request and stores a new person with a fresh ID
func (s *service) AddPerson(ctx context.Context, req *PersonAddRequest) (*PersonResponse, error) {
	if req == nil {
		return nil, models.ErrNullArgument
	}
	if err := validate(req, s.rules); err != nil {
		return nil, err
	}

	person := req.ToPerson(s.region)
	person.ID = uuid.New()
	if err := s.repo.Create(ctx, person); err != nil {
		return nil, err
	}

	s.metrics.IncrementPersonsCreated()
	s.logger.Info("person added", map[string]interface{}{
		"person_id": person.ID.String(),
	})

	return s.resolveOne(ctx, person)
}

// GetAllPersons returns all persons in insertion order
func (s *service) GetAllPersons(ctx context.Context) ([]PersonResponse, error) {
	persons, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return s.resolve(ctx, persons)
}

// GetPersonByID returns a person by ID, or nil when there is none
func (s *service) GetPersonByID(ctx context.Context, id uuid.UUID) (*PersonResponse, error) {
	if id == uuid.Nil {
		return nil, nil
	}

	person, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, models.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return s.resolveOne(ctx, person)
}

// GetFilteredPersons returns persons whose field contains text, ignoring case.
// An empty field or text, or an unknown field, returns every person.
func (s *service) GetFilteredPersons(ctx context.Context, field models.PersonSearchField, text string) ([]PersonResponse, error) {
	filter := models.PersonFilter{Field: field, Text: text}
	if field != models.SearchNone && field.String() == "" {
		s.logger.Debug("unknown search field, returning all persons", map[string]interface{}{
			"field": int(field),
		})
		filter.Field = models.SearchNone
	}
	if filter.IsEmpty() {
		return s.GetAllPersons(ctx)
	}

	if filter.Field == models.SearchCountryName {
		if s.countries == nil {
			return []PersonResponse{}, nil
		}
		ids, err := s.countries.FindCountryIDs(ctx, text)
		if err != nil {
			return nil, fmt.Errorf("find countries: %w", err)
		}
		if len(ids) == 0 {
			return []PersonResponse{}, nil
		}
		filter.CountryIDs = ids
	}

	persons, err := s.repo.GetFiltered(ctx, filter)
	if err != nil {
		return nil, err
	}
	return s.resolve(ctx, persons)
}

// GetSortedPersons returns a stably sorted copy of persons
func (s *service) GetSortedPersons(persons []PersonResponse, field SortField, order SortOrder) []PersonResponse {
	if field != SortNone && field.String() == "" {
		s.logger.Debug("unknown sort field, keeping order", map[string]interface{}{
			"field": int(field),
		})
	}
	return GetSortedPersons(persons, field, order)
}

// UpdatePerson replaces the details of an existing person
func (s *service) UpdatePerson(ctx context.Context, req *PersonUpdateRequest) (*PersonResponse, error) {
	if req == nil {
		return nil, models.ErrNullArgument
	}
	if req.ID == uuid.Nil {
		return nil, fmt.Errorf("%w: %w", models.ErrInvalidArgument, models.ErrInvalidPersonID)
	}
	if err := validate(&req.PersonAddRequest, s.rules); err != nil {
		return nil, err
	}

	person, err := s.repo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, models.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %w", models.ErrInvalidArgument, models.ErrInvalidPersonID)
		}
		return nil, err
	}

	req.applyTo(person, s.region)
	if err := s.repo.Update(ctx, person); err != nil {
		if errors.Is(err, models.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %w", models.ErrInvalidArgument, models.ErrInvalidPersonID)
		}
		return nil, err
	}

	s.metrics.IncrementPersonsUpdated()
	s.logger.Info("person updated", map[string]interface{}{
		"person_id": person.ID.String(),
	})

	return s.resolveOne(ctx, person)
}

// DeletePerson removes a person and reports whether it existed
func (s *service) DeletePerson(ctx context.Context, id uuid.UUID) (bool, error) {
	if id == uuid.Nil {
		return false, models.ErrNullArgument
	}

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	if deleted {
		s.metrics.IncrementPersonsDeleted()
		s.logger.Info("person deleted", map[string]interface{}{
			"person_id": id.String(),
		})
	}
	return deleted, nil
}
