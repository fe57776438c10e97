package models

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CountryNameMaxLength bounds the display name of a country.
const CountryNameMaxLength = 100

// Country represents a country a person can reference
type Country struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name      string    `gorm:"type:varchar(100);not null;unique" json:"name"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for Country model
func (*Country) TableName() string {
	return "countries"
}

// BeforeCreate sets up the model before creation
func (c *Country) BeforeCreate(_ *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// Validate performs validation on the country model
func (c *Country) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return ErrInvalidCountryName
	}
	if utf8.RuneCountInString(c.Name) > CountryNameMaxLength {
		return ErrInvalidCountryName
	}
	return nil
}
