package persons

import (
	"cmp"
	"slices"
	"strings"

	"github.com/joefazee/directory/internal/formatter"
)

// SortField selects the attribute persons are ordered by
type SortField int

const (
	SortNone SortField = iota
	SortName
	SortEmail
	SortDateOfBirth
	SortAge
	SortGender
	SortCountryName
	SortAddress
	SortReceiveNewsLetters
)

var sortFieldNames = map[SortField]string{
	SortName:               "name",
	SortEmail:              "email",
	SortDateOfBirth:        "date_of_birth",
	SortAge:                "age",
	SortGender:             "gender",
	SortCountryName:        "country_name",
	SortAddress:            "address",
	SortReceiveNewsLetters: "receive_news_letters",
}

func (f SortField) String() string {
	return sortFieldNames[f]
}

// ParseSortField maps a field name to its selector.
// The second result is false for unknown names.
func ParseSortField(name string) (SortField, bool) {
	for field, fieldName := range sortFieldNames {
		if fieldName == name {
			return field, true
		}
	}
	return SortNone, false
}

// SortOrder is the direction of a sort
type SortOrder int

const (
	Ascending SortOrder = iota
	Descending
)

func (o SortOrder) String() string {
	if o == Descending {
		return "DESC"
	}
	return "ASC"
}

// ParseSortOrder accepts ASC or DESC in any case. Anything else is ascending.
func ParseSortOrder(name string) SortOrder {
	if strings.EqualFold(name, "desc") {
		return Descending
	}
	return Ascending
}

func compareFold(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}

// compareOptional orders nil before any value
func compareOptional[T any](a, b *T, compare func(x, y T) int) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}
	return compare(*a, *b)
}

func compareDate(a, b formatter.Date) int {
	return a.Compare(b.Time)
}

func compareBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case !a:
		return -1
	}
	return 1
}

func comparator(field SortField) func(a, b PersonResponse) int {
	switch field {
	case SortName:
		return func(a, b PersonResponse) int { return compareFold(a.Name, b.Name) }
	case SortEmail:
		return func(a, b PersonResponse) int { return compareFold(a.Email, b.Email) }
	case SortDateOfBirth:
		return func(a, b PersonResponse) int { return compareOptional(a.DateOfBirth, b.DateOfBirth, compareDate) }
	case SortAge:
		return func(a, b PersonResponse) int { return compareOptional(a.Age, b.Age, cmp.Compare[int]) }
	case SortGender:
		return func(a, b PersonResponse) int { return compareFold(a.Gender, b.Gender) }
	case SortCountryName:
		return func(a, b PersonResponse) int { return compareFold(a.CountryName, b.CountryName) }
	case SortAddress:
		return func(a, b PersonResponse) int { return compareFold(a.Address, b.Address) }
	case SortReceiveNewsLetters:
		return func(a, b PersonResponse) int { return compareBool(a.ReceiveNewsLetters, b.ReceiveNewsLetters) }
	}
	return nil
}

// GetSortedPersons returns a stably sorted copy of persons.
// SortNone and unknown fields return a copy in the original order.
func GetSortedPersons(persons []PersonResponse, field SortField, order SortOrder) []PersonResponse {
	sorted := slices.Clone(persons)
	compare := comparator(field)
	if compare == nil {
		return sorted
	}

	if order == Descending {
		slices.SortStableFunc(sorted, func(a, b PersonResponse) int { return compare(b, a) })
	} else {
		slices.SortStableFunc(sorted, compare)
	}
	return sorted
}
