package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(year int, month time.Month, day int) *time.Time {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &d
}

func TestPerson(t *testing.T) {
	t.Run("TableName", func(t *testing.T) {
		p := Person{}
		assert.Equal(t, "persons", p.TableName())
	})

	t.Run("BeforeCreate", func(t *testing.T) {
		p := Person{}
		assert.NoError(t, p.BeforeCreate(nil))
		assert.NotEqual(t, uuid.Nil, p.ID)
	})

	t.Run("AgeAt", func(t *testing.T) {
		now := time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)
		declared := 33

		tests := []struct {
			name     string
			person   Person
			expected *int
		}{
			{"Birthday already passed", Person{DateOfBirth: date(2000, time.January, 1)}, intPtr(24)},
			{"Birthday today", Person{DateOfBirth: date(2000, time.June, 15)}, intPtr(24)},
			{"Birthday later this year", Person{DateOfBirth: date(2000, time.December, 6)}, intPtr(23)},
			{"Born in the future", Person{DateOfBirth: date(2030, time.January, 1)}, intPtr(0)},
			{"Declared age only", Person{DeclaredAge: &declared}, intPtr(33)},
			{"Date wins over declared age", Person{DateOfBirth: date(2000, time.January, 1), DeclaredAge: &declared}, intPtr(24)},
			{"Neither known", Person{}, nil},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				got := tt.person.AgeAt(now)
				if tt.expected == nil {
					assert.Nil(t, got)
					return
				}
				require.NotNil(t, got)
				assert.Equal(t, *tt.expected, *got)
			})
		}
	})

	t.Run("HasCountry", func(t *testing.T) {
		id := uuid.New()
		nilID := uuid.Nil
		assert.True(t, (&Person{CountryID: &id}).HasCountry())
		assert.False(t, (&Person{CountryID: &nilID}).HasCountry())
		assert.False(t, (&Person{}).HasCountry())
	})
}

func TestGender(t *testing.T) {
	for _, g := range Genders() {
		assert.True(t, g.IsValid(), g)
	}
	assert.False(t, Gender("male").IsValid())
	assert.False(t, Gender("").IsValid())
}

func TestPersonSearchField(t *testing.T) {
	field, ok := ParsePersonSearchField("country_name")
	assert.True(t, ok)
	assert.Equal(t, SearchCountryName, field)
	assert.Equal(t, "country_name", field.String())

	field, ok = ParsePersonSearchField("PersonName")
	assert.False(t, ok)
	assert.Equal(t, SearchNone, field)

	assert.True(t, PersonFilter{Field: SearchName}.IsEmpty())
	assert.True(t, PersonFilter{Text: "x"}.IsEmpty())
	assert.False(t, PersonFilter{Field: SearchName, Text: "x"}.IsEmpty())
}

func intPtr(i int) *int {
	return &i
}
