package persons

import (
	"fmt"
	"time"

	"github.com/joefazee/directory/internal/validator"
	"github.com/joefazee/directory/models"
)

const (
	nameMinLength    = 2
	nameMaxLength    = 40
	emailMaxLength   = 254
	addressMaxLength = 1000
	maxAge           = 150
)

type personRule = validator.Rule[*PersonAddRequest]

// newPersonRules returns the checks applied on add and update.
func newPersonRules(cfg Config, now func() time.Time) []personRule {
	region := cfg.region()

	return []personRule{
		func(v *validator.Validator, r *PersonAddRequest) {
			if !validator.NotBlank(r.Name) {
				v.AddError("name", "Person Name can't be blank")
				return
			}
			v.Check(validator.MinRunes(r.Name, nameMinLength) && validator.MaxRunes(r.Name, nameMaxLength),
				"name", fmt.Sprintf("Person Name must be between %d and %d characters", nameMinLength, nameMaxLength))
		},
		func(v *validator.Validator, r *PersonAddRequest) {
			if r.Email == "" {
				return
			}
			v.Check(validator.IsEmail(r.Email), "email", "Email value should be a valid email")
			v.Check(validator.MaxRunes(r.Email, emailMaxLength), "email", "Email is too long")
		},
		func(v *validator.Validator, r *PersonAddRequest) {
			if r.Phone == "" {
				return
			}
			v.Check(validator.IsPhone(r.Phone, region), "phone", "Phone should be a valid phone number")
		},
		func(v *validator.Validator, r *PersonAddRequest) {
			if r.Gender == "" {
				return
			}
			v.Check(models.Gender(r.Gender).IsValid(), "gender", "Gender must be Male, Female or Other")
		},
		func(v *validator.Validator, r *PersonAddRequest) {
			v.Check(r.DateOfBirth != nil || r.Age != nil, "date_of_birth", "Either date of birth or age is required")
		},
		func(v *validator.Validator, r *PersonAddRequest) {
			if r.DateOfBirth == nil {
				return
			}
			v.Check(validator.NotAfter(r.DateOfBirth.Time, now()), "date_of_birth", "Date of birth can't be in the future")
		},
		func(v *validator.Validator, r *PersonAddRequest) {
			if r.Age == nil {
				return
			}
			v.Check(validator.Between(*r.Age, 0, maxAge), "age", fmt.Sprintf("Age must be between 0 and %d", maxAge))
		},
		func(v *validator.Validator, r *PersonAddRequest) {
			v.Check(validator.MaxRunes(r.Address, addressMaxLength), "address",
				fmt.Sprintf("Address can't exceed %d characters", addressMaxLength))
		},
	}
}

// validate runs every rule and wraps all violations in models.ErrInvalidArgument
func validate(req *PersonAddRequest, rules []personRule) error {
	v := validator.New()
	if validator.Apply(v, req, rules...) {
		return nil
	}
	return fmt.Errorf("%w: %w", models.ErrInvalidArgument,
		validator.NewValidationError("person validation failed", v.Errors))
}
