package persons

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/joefazee/directory/app/countries"
	"github.com/joefazee/directory/internal/cache"
	"github.com/joefazee/directory/internal/metrics"
	"github.com/joefazee/directory/models"
	"github.com/joefazee/directory/tests/mocks"
)

type fixture struct {
	countries countries.Service
	persons   Service
	repo      Repository
	metrics   *metrics.Metrics
}

func newFixture(t *testing.T, seed bool) *fixture {
	t.Helper()

	var countrySeed []models.Country
	var personSeed []models.Person
	if seed {
		countrySeed, personSeed = countries.DefaultCountries(), DefaultPersons()
	}

	nameCache := cache.NewMemoryCache[string]()
	t.Cleanup(func() { _ = nameCache.Close() })

	countryService := countries.NewService(countries.NewMemoryRepository(countrySeed...), nil, nil)
	resolver := countries.NewNameResolver(countryService, nameCache, time.Minute, nil)
	repo := NewMemoryRepository(personSeed...)
	m := metrics.New(prometheus.NewRegistry())

	return &fixture{
		countries: countryService,
		persons:   NewService(repo, resolver, Config{}, nil, m),
		repo:      repo,
		metrics:   m,
	}
}

func (f *fixture) addCountry(t *testing.T, name string) *countries.CountryResponse {
	t.Helper()
	c, err := f.countries.AddCountry(context.Background(), &countries.CountryAddRequest{Name: name})
	require.NoError(t, err)
	return c
}

func TestService_AddPerson(t *testing.T) {
	ctx := context.Background()

	t.Run("Null request", func(t *testing.T) {
		f := newFixture(t, false)

		result, err := f.persons.AddPerson(ctx, nil)

		assert.ErrorIs(t, err, models.ErrNullArgument)
		assert.Nil(t, result)
	})

	t.Run("Invalid request is not stored", func(t *testing.T) {
		f := newFixture(t, false)

		_, err := f.persons.AddPerson(ctx, &PersonAddRequest{})

		errs := validationErrors(t, err)
		assert.Contains(t, errs, "name")
		assert.Contains(t, errs, "date_of_birth")
		all, _ := f.repo.GetAll(ctx)
		assert.Empty(t, all)
	})

	t.Run("Country name and age are resolved", func(t *testing.T) {
		f := newFixture(t, false)
		japan := f.addCountry(t, "Japan")

		added, err := f.persons.AddPerson(ctx, &PersonAddRequest{
			Name:        "Smith",
			CountryID:   &japan.ID,
			DateOfBirth: datePtr("2000-01-01"),
		})
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, added.ID)

		all, err := f.persons.GetAllPersons(ctx)
		require.NoError(t, err)
		require.Len(t, all, 1)
		assert.Equal(t, "Japan", all[0].CountryName)
		require.NotNil(t, all[0].Age)
		expected := time.Now().Year() - 2000
		assert.True(t, *all[0].Age == expected || *all[0].Age == expected-1)
		assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.PersonsCreated))
	})

	t.Run("Phone is stored as E.164", func(t *testing.T) {
		f := newFixture(t, false)

		added, err := f.persons.AddPerson(ctx, &PersonAddRequest{Name: "Smith", Age: intPtr(40), Phone: "(202) 456-1111"})

		require.NoError(t, err)
		assert.Equal(t, "+12024561111", added.Phone)
		assert.Equal(t, 40, *added.Age)
		assert.Nil(t, added.DateOfBirth)
	})

	t.Run("Unknown country leaves name empty", func(t *testing.T) {
		f := newFixture(t, false)
		unknown := uuid.New()

		added, err := f.persons.AddPerson(ctx, &PersonAddRequest{Name: "Smith", Age: intPtr(40), CountryID: &unknown})

		require.NoError(t, err)
		assert.Equal(t, unknown, *added.CountryID)
		assert.Empty(t, added.CountryName)
	})

	t.Run("Repository error", func(t *testing.T) {
		mockRepo := new(mocks.MockPersonRepository)
		srvc := NewService(mockRepo, nil, Config{}, nil, nil)
		mockRepo.On("Create", ctx, mock.AnythingOfType("*models.Person")).Return(assert.AnError)

		_, err := srvc.AddPerson(ctx, validRequest())

		assert.ErrorIs(t, err, assert.AnError)
	})
}

func TestService_GetAllPersons(t *testing.T) {
	ctx := context.Background()

	t.Run("Empty store", func(t *testing.T) {
		result, err := newFixture(t, false).persons.GetAllPersons(ctx)

		require.NoError(t, err)
		assert.Empty(t, result)
	})

	t.Run("Seeded store in insertion order", func(t *testing.T) {
		result, err := newFixture(t, true).persons.GetAllPersons(ctx)

		require.NoError(t, err)
		require.Len(t, result, 7)
		assert.Equal(t, []string{"Brianna", "Candace", "Gaylor", "Mirabel", "Adria", "John", "Myriam"}, names(result))
		assert.Equal(t, "USA", result[0].CountryName)
		assert.Equal(t, "Australia", result[6].CountryName)
	})

	t.Run("Lookup error", func(t *testing.T) {
		lookup := new(mocks.MockCountryLookup)
		srvc := NewService(NewMemoryRepository(DefaultPersons()...), lookup, Config{}, nil, nil)
		lookup.On("CountryNames", ctx, mock.Anything).Return(nil, assert.AnError)

		_, err := srvc.GetAllPersons(ctx)

		assert.ErrorIs(t, err, assert.AnError)
	})

	t.Run("Names are looked up once per call", func(t *testing.T) {
		lookup := new(mocks.MockCountryLookup)
		srvc := NewService(NewMemoryRepository(DefaultPersons()...), lookup, Config{}, nil, nil)
		lookup.On("CountryNames", ctx, mock.Anything).Return(map[uuid.UUID]string{countries.IndiaID: "India"}, nil)

		result, err := srvc.GetAllPersons(ctx)

		require.NoError(t, err)
		assert.Equal(t, "India", result[5].CountryName)
		assert.Empty(t, result[0].CountryName)
		lookup.AssertNumberOfCalls(t, "CountryNames", 1)
	})
}

func TestService_GetPersonByID(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, true)

	t.Run("Nil id", func(t *testing.T) {
		result, err := f.persons.GetPersonByID(ctx, uuid.Nil)

		assert.NoError(t, err)
		assert.Nil(t, result)
	})

	t.Run("Unknown id", func(t *testing.T) {
		result, err := f.persons.GetPersonByID(ctx, uuid.New())

		assert.NoError(t, err)
		assert.Nil(t, result)
	})

	t.Run("Known id", func(t *testing.T) {
		id := uuid.MustParse("679A0362-E329-454F-8A62-BD3BAED481CD")

		result, err := f.persons.GetPersonByID(ctx, id)

		require.NoError(t, err)
		assert.Equal(t, "John", result.Name)
		assert.Equal(t, "India", result.CountryName)
	})

	t.Run("Repository error", func(t *testing.T) {
		mockRepo := new(mocks.MockPersonRepository)
		srvc := NewService(mockRepo, nil, Config{}, nil, nil)
		id := uuid.New()
		mockRepo.On("GetByID", ctx, id).Return(nil, assert.AnError)

		_, err := srvc.GetPersonByID(ctx, id)

		assert.ErrorIs(t, err, assert.AnError)
	})
}

func TestService_GetFilteredPersons(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, true)

	tests := []struct {
		name     string
		field    models.PersonSearchField
		text     string
		expected []string
	}{
		{"Empty text returns all", models.SearchName, "", []string{"Brianna", "Candace", "Gaylor", "Mirabel", "Adria", "John", "Myriam"}},
		{"No field returns all", models.SearchNone, "zzz", []string{"Brianna", "Candace", "Gaylor", "Mirabel", "Adria", "John", "Myriam"}},
		{"Unknown field returns all", models.PersonSearchField(42), "zzz", []string{"Brianna", "Candace", "Gaylor", "Mirabel", "Adria", "John", "Myriam"}},
		{"Name ignores case", models.SearchName, "RI", []string{"Brianna", "Adria", "Myriam"}},
		{"Email", models.SearchEmail, "@email.com", []string{"John"}},
		{"Date of birth month", models.SearchDateOfBirth, "june", []string{"Candace", "Adria"}},
		{"Date of birth full", models.SearchDateOfBirth, "06 December 1995", []string{"Brianna"}},
		{"Gender", models.SearchGender, "male", []string{"Brianna", "Candace", "Gaylor", "Mirabel", "Adria", "John", "Myriam"}},
		{"Gender prefix", models.SearchGender, "fem", []string{"Brianna", "Candace", "Mirabel", "Adria", "Myriam"}},
		{"Country name", models.SearchCountryName, "can", []string{"Mirabel", "Adria"}},
		{"Country name no match", models.SearchCountryName, "Japan", []string{}},
		{"Address", models.SearchAddress, "red cloud", []string{"Adria", "John"}},
		{"Wildcards are literal", models.SearchAddress, "%", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := f.persons.GetFilteredPersons(ctx, tt.field, tt.text)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, names(result))
		})
	}

	t.Run("Lookup error", func(t *testing.T) {
		lookup := new(mocks.MockCountryLookup)
		srvc := NewService(NewMemoryRepository(), lookup, Config{}, nil, nil)
		lookup.On("FindCountryIDs", ctx, "usa").Return(nil, assert.AnError)

		_, err := srvc.GetFilteredPersons(ctx, models.SearchCountryName, "usa")

		assert.ErrorIs(t, err, assert.AnError)
	})

	t.Run("Country ids are passed to the repository", func(t *testing.T) {
		lookup := new(mocks.MockCountryLookup)
		mockRepo := new(mocks.MockPersonRepository)
		srvc := NewService(mockRepo, lookup, Config{}, nil, nil)
		ids := []uuid.UUID{countries.UKID}
		lookup.On("FindCountryIDs", ctx, "uk").Return(ids, nil)
		mockRepo.On("GetFiltered", ctx, models.PersonFilter{Field: models.SearchCountryName, Text: "uk", CountryIDs: ids}).
			Return([]models.Person{}, nil)

		result, err := srvc.GetFilteredPersons(ctx, models.SearchCountryName, "uk")

		require.NoError(t, err)
		assert.Empty(t, result)
		mockRepo.AssertExpectations(t)
	})
}

func TestService_GetSortedPersons(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, true)
	all, err := f.persons.GetAllPersons(ctx)
	require.NoError(t, err)

	sorted := f.persons.GetSortedPersons(all, SortCountryName, Ascending)

	assert.Equal(t, "Australia", sorted[0].CountryName)
	assert.Equal(t, "USA", sorted[len(sorted)-1].CountryName)
	assert.Equal(t, []string{"Brianna", "Gaylor"}, names(sorted[len(sorted)-2:]))
	assert.Equal(t, all, f.persons.GetSortedPersons(all, SortField(-1), Descending))
}

func TestService_UpdatePerson(t *testing.T) {
	ctx := context.Background()

	t.Run("Null request", func(t *testing.T) {
		_, err := newFixture(t, false).persons.UpdatePerson(ctx, nil)

		assert.ErrorIs(t, err, models.ErrNullArgument)
	})

	t.Run("Nil id", func(t *testing.T) {
		req := &PersonUpdateRequest{PersonAddRequest: *validRequest()}

		_, err := newFixture(t, false).persons.UpdatePerson(ctx, req)

		assert.ErrorIs(t, err, models.ErrInvalidArgument)
		assert.ErrorIs(t, err, models.ErrInvalidPersonID)
	})

	t.Run("Unknown id", func(t *testing.T) {
		req := &PersonUpdateRequest{ID: uuid.New(), PersonAddRequest: *validRequest()}

		_, err := newFixture(t, false).persons.UpdatePerson(ctx, req)

		assert.ErrorIs(t, err, models.ErrInvalidPersonID)
	})

	t.Run("Round trip changes only the name", func(t *testing.T) {
		f := newFixture(t, false)
		japan := f.addCountry(t, "Japan")
		req := validRequest()
		req.CountryID = &japan.ID
		added, err := f.persons.AddPerson(ctx, req)
		require.NoError(t, err)

		update := added.ToPersonUpdateRequest()
		update.Name = "William"
		updated, err := f.persons.UpdatePerson(ctx, update)
		require.NoError(t, err)

		fetched, err := f.persons.GetPersonByID(ctx, added.ID)
		require.NoError(t, err)
		assert.Equal(t, updated, fetched)
		assert.Equal(t, added.ID, fetched.ID)
		assert.Equal(t, "William", fetched.Name)

		expected := *added
		expected.Name = "William"
		assert.Equal(t, expected, *fetched)
		assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.PersonsUpdated))
	})

	t.Run("Invalid update leaves record unchanged", func(t *testing.T) {
		f := newFixture(t, true)
		id := uuid.MustParse("441F9BA8-EC46-41BA-B3A4-E348E747D2EC")
		before, err := f.persons.GetPersonByID(ctx, id)
		require.NoError(t, err)

		update := before.ToPersonUpdateRequest()
		update.Email = "not-an-email"
		_, err = f.persons.UpdatePerson(ctx, update)
		validationErrors(t, err)

		after, err := f.persons.GetPersonByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, before, after)
	})

	t.Run("Age only person switches to date of birth", func(t *testing.T) {
		f := newFixture(t, false)
		added, err := f.persons.AddPerson(ctx, &PersonAddRequest{Name: "Smith", Age: intPtr(30)})
		require.NoError(t, err)

		update := added.ToPersonUpdateRequest()
		update.Age = nil
		update.DateOfBirth = datePtr("2001-03-04")
		updated, err := f.persons.UpdatePerson(ctx, update)

		require.NoError(t, err)
		assert.Equal(t, "2001-03-04", updated.DateOfBirth.String())
		stored, err := f.repo.GetByID(ctx, added.ID)
		require.NoError(t, err)
		assert.Nil(t, stored.DeclaredAge)
	})
}

func TestService_DeletePerson(t *testing.T) {
	ctx := context.Background()

	t.Run("Nil id", func(t *testing.T) {
		_, err := newFixture(t, true).persons.DeletePerson(ctx, uuid.Nil)

		assert.ErrorIs(t, err, models.ErrNullArgument)
	})

	t.Run("Random id leaves the store unchanged", func(t *testing.T) {
		f := newFixture(t, true)

		deleted, err := f.persons.DeletePerson(ctx, uuid.New())

		require.NoError(t, err)
		assert.False(t, deleted)
		all, _ := f.persons.GetAllPersons(ctx)
		assert.Len(t, all, 7)
		assert.Equal(t, 0.0, testutil.ToFloat64(f.metrics.PersonsDeleted))
	})

	t.Run("Existing id", func(t *testing.T) {
		f := newFixture(t, true)
		id := uuid.MustParse("C1348AFE-63D2-4552-9998-C2093347F477")

		deleted, err := f.persons.DeletePerson(ctx, id)

		require.NoError(t, err)
		assert.True(t, deleted)
		person, err := f.persons.GetPersonByID(ctx, id)
		assert.NoError(t, err)
		assert.Nil(t, person)
		assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.PersonsDeleted))
	})

	t.Run("Repository error", func(t *testing.T) {
		mockRepo := new(mocks.MockPersonRepository)
		srvc := NewService(mockRepo, nil, Config{}, nil, nil)
		id := uuid.New()
		mockRepo.On("Delete", ctx, id).Return(false, assert.AnError)

		deleted, err := srvc.DeletePerson(ctx, id)

		assert.ErrorIs(t, err, assert.AnError)
		assert.False(t, deleted)
	})
}
