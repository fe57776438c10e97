package persons

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/joefazee/directory/models"
)

// repository implements the Repository interface using GORM
type repository struct {
	db *gorm.DB
}

// NewRepository creates a new person repository
func NewRepository(db *gorm.DB) Repository {
	return &repository{
		db: db,
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern matches text anywhere, with LIKE wildcards taken literally
func containsPattern(text string) string {
	return "%" + likeEscaper.Replace(text) + "%"
}

// searchColumns maps text search fields to the SQL expression they match
var searchColumns = map[models.PersonSearchField]string{
	models.SearchName:        "person_name",
	models.SearchEmail:       "email",
	models.SearchDateOfBirth: "to_char(date_of_birth, 'DD FMMonth YYYY')",
	models.SearchGender:      "gender",
	models.SearchAddress:     "address",
}

func (r *repository) ordered(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Order("created_at ASC")
}

// GetAll returns all persons in insertion order
func (r *repository) GetAll(ctx context.Context) ([]models.Person, error) {
	var persons []models.Person
	err := r.ordered(ctx).Find(&persons).Error
	return persons, err
}

// GetByID returns a person by ID
func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*models.Person, error) {
	var person models.Person
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&person).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrRecordNotFound
		}
		return nil, err
	}
	return &person, nil
}

// GetFiltered returns the persons matching filter in insertion order
func (r *repository) GetFiltered(ctx context.Context, filter models.PersonFilter) ([]models.Person, error) {
	query := r.ordered(ctx)

	if !filter.IsEmpty() {
		if filter.Field == models.SearchCountryName {
			if len(filter.CountryIDs) == 0 {
				return []models.Person{}, nil
			}
			query = query.Where("country_id IN ?", filter.CountryIDs)
		} else if column, ok := searchColumns[filter.Field]; ok {
			query = query.Where(column+" ILIKE ?", containsPattern(filter.Text))
		}
	}

	var persons []models.Person
	err := query.Find(&persons).Error
	return persons, err
}

// Create creates a new person
func (r *repository) Create(ctx context.Context, person *models.Person) error {
	return r.db.WithContext(ctx).Create(person).Error
}

// Update overwrites every mutable column of an existing person
func (r *repository) Update(ctx context.Context, person *models.Person) error {
	result := r.db.WithContext(ctx).
		Model(person).
		Select("*").
		Omit("id", "created_at").
		Updates(person)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return models.ErrRecordNotFound
	}
	return nil
}

// Delete removes a person and reports whether a row was deleted
func (r *repository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Person{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
