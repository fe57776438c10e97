package persons

import (
	"time"

	"github.com/google/uuid"

	"github.com/joefazee/directory/app/countries"
	"github.com/joefazee/directory/models"
)

func seedDate(s string) *time.Time {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return &t
}

func seedCountry(id uuid.UUID) *uuid.UUID {
	return &id
}

// DefaultPersons is the sample data loaded into the in-memory store.
// Country ids refer to countries.DefaultCountries.
func DefaultPersons() []models.Person {
	return []models.Person{
		{
			ID:          uuid.MustParse("441F9BA8-EC46-41BA-B3A4-E348E747D2EC"),
			Name:        "Brianna",
			Email:       "bvearncombe0@biglobe.ne.jp",
			DateOfBirth: seedDate("1995-12-06"),
			CountryID:   seedCountry(countries.USAID),
			Gender:      string(models.GenderFemale),
			Address:     "29998 Havey Court",
		},
		{
			ID:                 uuid.MustParse("CAEB9CEC-3A52-4260-86A8-41D3EF5525FC"),
			Name:               "Candace",
			Email:              "crivelon1@bizjournals.com",
			DateOfBirth:        seedDate("1995-06-04"),
			CountryID:          seedCountry(countries.UKID),
			Gender:             string(models.GenderFemale),
			Address:            "382 American Ash Plaza",
			ReceiveNewsLetters: true,
		},
		{
			ID:                 uuid.MustParse("7729E3A4-5439-404A-9C2F-82B8DE8776C0"),
			Name:               "Gaylor",
			Email:              "glamping2@psu.edu",
			DateOfBirth:        seedDate("1990-01-02"),
			CountryID:          seedCountry(countries.USAID),
			Gender:             string(models.GenderMale),
			Address:            "16989 North Pass",
			ReceiveNewsLetters: true,
		},
		{
			ID:          uuid.MustParse("27997D6F-9506-482B-A49D-74E739BCA08C"),
			Name:        "Mirabel",
			Email:       "mespinha3@spotify.com",
			DateOfBirth: seedDate("1999-02-17"),
			CountryID:   seedCountry(countries.CanadaID),
			Gender:      string(models.GenderFemale),
			Address:     "203 Tennessee Parkway",
		},
		{
			ID:                 uuid.MustParse("CF3C827C-57F0-453B-99C5-C6BBBFA15839"),
			Name:               "Adria",
			Email:              "adana4@trellian.com",
			DateOfBirth:        seedDate("1993-06-04"),
			CountryID:          seedCountry(countries.CanadaID),
			Gender:             string(models.GenderFemale),
			Address:            "9387 Red Cloud Parkway",
			ReceiveNewsLetters: true,
		},
		{
			ID:                 uuid.MustParse("679A0362-E329-454F-8A62-BD3BAED481CD"),
			Name:               "John",
			Email:              "john31@email.com",
			DateOfBirth:        seedDate("1997-02-25"),
			CountryID:          seedCountry(countries.IndiaID),
			Gender:             string(models.GenderMale),
			Address:            "9387 Red Cloud Parkway",
			ReceiveNewsLetters: true,
		},
		{
			ID:                 uuid.MustParse("C1348AFE-63D2-4552-9998-C2093347F477"),
			Name:               "Myriam",
			Email:              "mklimko5@sitemeter.com",
			DateOfBirth:        seedDate("1997-12-11"),
			CountryID:          seedCountry(countries.AustraliaID),
			Gender:             string(models.GenderFemale),
			Address:            "6429 Center Park",
			ReceiveNewsLetters: true,
		},
	}
}
