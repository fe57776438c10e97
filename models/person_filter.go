package models

import "github.com/google/uuid"

// PersonSearchField selects the person attribute a search runs against
type PersonSearchField int

const (
	SearchNone PersonSearchField = iota
	SearchName
	SearchEmail
	SearchDateOfBirth
	SearchGender
	SearchCountryName
	SearchAddress
)

// DateOfBirthSearchLayout is the layout a date of birth is matched in.
const DateOfBirthSearchLayout = "02 January 2006"

var searchFieldNames = map[PersonSearchField]string{
	SearchName:        "name",
	SearchEmail:       "email",
	SearchDateOfBirth: "date_of_birth",
	SearchGender:      "gender",
	SearchCountryName: "country_name",
	SearchAddress:     "address",
}

func (f PersonSearchField) String() string {
	return searchFieldNames[f]
}

// ParsePersonSearchField maps a field name to its selector.
// The second result is false for unknown names.
func ParsePersonSearchField(name string) (PersonSearchField, bool) {
	for field, fieldName := range searchFieldNames {
		if fieldName == name {
			return field, true
		}
	}
	return SearchNone, false
}

// PersonFilter is the storage predicate for a person search.
// CountryIDs is used by SearchCountryName, since country names live in another table.
type PersonFilter struct {
	Field      PersonSearchField
	Text       string
	CountryIDs []uuid.UUID
}

// IsEmpty reports whether the filter selects every person
func (f PersonFilter) IsEmpty() bool {
	return f.Field == SearchNone || f.Text == ""
}
