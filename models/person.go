package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Gender is stored as text and limited to a closed set of values
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

// Genders lists every accepted gender value
func Genders() []Gender {
	return []Gender{GenderMale, GenderFemale, GenderOther}
}

// IsValid reports whether g is one of the accepted values
func (g Gender) IsValid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	}
	return false
}

// Person represents a directory entry
type Person struct {
	ID                 uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	Name               string     `gorm:"column:person_name;type:varchar(40);not null" json:"name"`
	Email              string     `gorm:"type:varchar(254)" json:"email"`
	Phone              string     `gorm:"type:varchar(20)" json:"phone"`
	DateOfBirth        *time.Time `gorm:"type:date" json:"date_of_birth"`
	DeclaredAge        *int       `gorm:"type:smallint" json:"declared_age"`
	Gender             string     `gorm:"type:varchar(10)" json:"gender"`
	CountryID          *uuid.UUID `gorm:"type:uuid;index" json:"country_id"`
	Address            string     `gorm:"type:varchar(1000)" json:"address"`
	ReceiveNewsLetters bool       `gorm:"not null;default:false" json:"receive_news_letters"`
	CreatedAt          time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for Person model
func (*Person) TableName() string {
	return "persons"
}

// BeforeCreate sets up the model before creation
func (p *Person) BeforeCreate(_ *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// AgeAt returns the whole years elapsed between the date of birth and now.
// The declared age is used when no date of birth is known.
func (p *Person) AgeAt(now time.Time) *int {
	if p.DateOfBirth == nil {
		if p.DeclaredAge == nil {
			return nil
		}
		age := *p.DeclaredAge
		return &age
	}

	dob := p.DateOfBirth.UTC()
	now = now.UTC()
	age := now.Year() - dob.Year()
	if now.Month() < dob.Month() || (now.Month() == dob.Month() && now.Day() < dob.Day()) {
		age--
	}
	if age < 0 {
		age = 0
	}
	return &age
}

// HasCountry reports whether the person references a country
func (p *Person) HasCountry() bool {
	return p.CountryID != nil && *p.CountryID != uuid.Nil
}
