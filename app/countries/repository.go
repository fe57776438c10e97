package countries

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/joefazee/directory/models"
)

// repository implements the Repository interface using GORM
type repository struct {
	db *gorm.DB
}

// NewRepository creates a new country repository
func NewRepository(db *gorm.DB) Repository {
	return &repository{
		db: db,
	}
}

func translateError(err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return models.ErrRecordNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return models.ErrDuplicateCountryName
	}
	return err
}

// GetAll returns all countries in insertion order
func (r *repository) GetAll(ctx context.Context) ([]models.Country, error) {
	var countries []models.Country
	err := r.db.WithContext(ctx).Order("created_at ASC").Find(&countries).Error
	return countries, err
}

// GetByID returns a country by ID
func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*models.Country, error) {
	var country models.Country
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&country).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &country, nil
}

// GetByName returns the country whose name matches exactly
func (r *repository) GetByName(ctx context.Context, name string) (*models.Country, error) {
	var country models.Country
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&country).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &country, nil
}

// Create creates a new country
func (r *repository) Create(ctx context.Context, country *models.Country) error {
	return translateError(r.db.WithContext(ctx).Create(country).Error)
}
