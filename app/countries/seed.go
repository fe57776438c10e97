package countries

import (
	"github.com/google/uuid"

	"github.com/joefazee/directory/models"
)

// Ids of the countries loaded by DefaultCountries.
var (
	USAID       = uuid.MustParse("0364C2F1-44C7-486D-AE9C-3F1E4B3CDAC9")
	UKID        = uuid.MustParse("63617046-FDB4-442D-A00F-80850B60FFB5")
	CanadaID    = uuid.MustParse("A88EA912-1FED-4C96-9F05-E9FB8A4B9546")
	IndiaID     = uuid.MustParse("521B318F-2E8E-484E-B052-0BBD20A902DE")
	AustraliaID = uuid.MustParse("2BFF6716-7B91-4476-AB55-7DE717B5562C")
)

// DefaultCountries is the sample data loaded into the in-memory store
func DefaultCountries() []models.Country {
	return []models.Country{
		{ID: USAID, Name: "USA"},
		{ID: UKID, Name: "UK"},
		{ID: CanadaID, Name: "Canada"},
		{ID: IndiaID, Name: "India"},
		{ID: AustraliaID, Name: "Australia"},
	}
}
