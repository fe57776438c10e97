package persons

import (
	"time"

	"github.com/google/uuid"

	"github.com/joefazee/directory/internal/formatter"
	"github.com/joefazee/directory/internal/sanitizer"
	"github.com/joefazee/directory/models"
)

// PersonAddRequest represents the request to add a person
type PersonAddRequest struct {
	Name               string          `json:"name"`
	Email              string          `json:"email"`
	Phone              string          `json:"phone"`
	DateOfBirth        *formatter.Date `json:"date_of_birth"`
	Age                *int            `json:"age"`
	Gender             string          `json:"gender"`
	CountryID          *uuid.UUID      `json:"country_id"`
	Address            string          `json:"address"`
	ReceiveNewsLetters bool            `json:"receive_news_letters"`
}

// PersonUpdateRequest carries the full replacement state of an existing person.
// The id comes from the route, not the body.
type PersonUpdateRequest struct {
	ID uuid.UUID `json:"-"`
	PersonAddRequest
}

// Sanitize strips markup from every free-text field
func (r *PersonAddRequest) Sanitize(s sanitizer.HTMLStripperer) {
	if s == nil {
		return
	}
	r.Name = s.StripHTML(r.Name)
	r.Email = s.StripHTML(r.Email)
	r.Phone = s.StripHTML(r.Phone)
	r.Gender = s.StripHTML(r.Gender)
	r.Address = s.StripHTML(r.Address)
}

// ToPerson converts the request into a new, unsaved person
func (r *PersonAddRequest) ToPerson(region string) *models.Person {
	person := &models.Person{}
	r.applyTo(person, region)
	return person
}

func (r *PersonAddRequest) applyTo(p *models.Person, region string) {
	p.Name = r.Name
	p.Email = r.Email
	p.Phone = formatter.NormalizePhone(r.Phone, region)
	p.DateOfBirth = r.DateOfBirth.TimePtr()
	p.DeclaredAge = nil
	if r.DateOfBirth == nil && r.Age != nil {
		age := *r.Age
		p.DeclaredAge = &age
	}
	p.Gender = r.Gender
	p.CountryID = nil
	if r.CountryID != nil && *r.CountryID != uuid.Nil {
		id := *r.CountryID
		p.CountryID = &id
	}
	p.Address = r.Address
	p.ReceiveNewsLetters = r.ReceiveNewsLetters
}

// PersonResponse is a person with its derived age and resolved country name.
// CountryName is empty when the person has no country or the id does not resolve.
type PersonResponse struct {
	ID                 uuid.UUID       `json:"id"`
	Name               string          `json:"name"`
	Email              string          `json:"email,omitempty"`
	Phone              string          `json:"phone,omitempty"`
	DateOfBirth        *formatter.Date `json:"date_of_birth,omitempty"`
	Age                *int            `json:"age,omitempty"`
	Gender             string          `json:"gender,omitempty"`
	CountryID          *uuid.UUID      `json:"country_id,omitempty"`
	CountryName        string          `json:"country_name"`
	Address            string          `json:"address,omitempty"`
	ReceiveNewsLetters bool            `json:"receive_news_letters"`
}

// ToPersonResponse converts a person, computing its age at now
func ToPersonResponse(p *models.Person, countryName string, now time.Time) PersonResponse {
	var countryID *uuid.UUID
	if p.HasCountry() {
		id := *p.CountryID
		countryID = &id
	}
	return PersonResponse{
		ID:                 p.ID,
		Name:               p.Name,
		Email:              p.Email,
		Phone:              p.Phone,
		DateOfBirth:        formatter.DatePtr(p.DateOfBirth),
		Age:                p.AgeAt(now),
		Gender:             p.Gender,
		CountryID:          countryID,
		CountryName:        countryName,
		Address:            p.Address,
		ReceiveNewsLetters: p.ReceiveNewsLetters,
	}
}

// ToPersonUpdateRequest builds an update request that leaves the person unchanged
func (r PersonResponse) ToPersonUpdateRequest() *PersonUpdateRequest {
	req := &PersonUpdateRequest{
		ID: r.ID,
		PersonAddRequest: PersonAddRequest{
			Name:               r.Name,
			Email:              r.Email,
			Phone:              r.Phone,
			DateOfBirth:        r.DateOfBirth,
			Gender:             r.Gender,
			CountryID:          r.CountryID,
			Address:            r.Address,
			ReceiveNewsLetters: r.ReceiveNewsLetters,
		},
	}
	if r.DateOfBirth == nil {
		req.Age = r.Age
	}
	return req
}
