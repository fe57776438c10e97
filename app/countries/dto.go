package countries

import (
	"github.com/google/uuid"
	"github.com/joefazee/directory/internal/sanitizer"
	"github.com/joefazee/directory/models"
)

// CountryAddRequest represents the request to add a country
type CountryAddRequest struct {
	Name string `json:"name"`
}

// Sanitize strips markup from the name
func (r *CountryAddRequest) Sanitize(s sanitizer.HTMLStripperer) {
	if s == nil {
		return
	}
	r.Name = s.StripHTML(r.Name)
}

// ToCountry converts the request into a new, unsaved country
func (r *CountryAddRequest) ToCountry() *models.Country {
	return &models.Country{Name: r.Name}
}

// CountryResponse represents the response for country data
type CountryResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// ToCountryResponse converts a models.Country to CountryResponse
func ToCountryResponse(country *models.Country) *CountryResponse {
	return &CountryResponse{
		ID:   country.ID,
		Name: country.Name,
	}
}

// ToCountryResponseList converts a slice of models.Country to CountryResponse
func ToCountryResponseList(countries []models.Country) []CountryResponse {
	responses := make([]CountryResponse, len(countries))
	for i := range countries {
		responses[i] = *ToCountryResponse(&countries[i])
	}
	return responses
}
