package usecase

import (
	"fmt"
	"net/mail"
	"strings"

	"github.com/erino/leadcrm/internal/entity"
)

func ValidateRegisterInput(input RegisterInput) ValidationErrors {
	var errs ValidationErrors

	if strings.TrimSpace(input.Email) == "" {
		errs = append(errs, ValidationError{"email", "is required"})
	} else if _, err := mail.ParseAddress(input.Email); err != nil {
		errs = append(errs, ValidationError{"email", "is invalid"})
	}

	if len(input.Password) < 6 {
		errs = append(errs, ValidationError{"password", "must have at least 6 characters"})
	}

	return errs
}

func ValidateCreateLeadInput(input CreateLeadInput) ValidationErrors {
	var errs ValidationErrors

	if strings.TrimSpace(input.FirstName) == "" {
		errs = append(errs, ValidationError{"first_name", "is required"})
	}
	if strings.TrimSpace(input.LastName) == "" {
		errs = append(errs, ValidationError{"last_name", "is required"})
	}

	if strings.TrimSpace(input.Email) == "" {
		errs = append(errs, ValidationError{"email", "is required"})
	} else if _, err := mail.ParseAddress(input.Email); err != nil {
		errs = append(errs, ValidationError{"email", "is invalid"})
	}

	if input.Source != "" && !entity.IsValidSource(input.Source) {
		errs = append(errs, ValidationError{"source", fmt.Sprintf("%q is not a valid source", input.Source)})
	}
	if input.Status != "" && !entity.IsValidStatus(input.Status) {
		errs = append(errs, ValidationError{"status", fmt.Sprintf("%q is not a valid status", input.Status)})
	}
	if input.Score != nil && (*input.Score < 0 || *input.Score > 100) {
		errs = append(errs, ValidationError{"score", "must be between 0 and 100"})
	}
	if input.LeadValue != nil && *input.LeadValue < 0 {
		errs = append(errs, ValidationError{"lead_value", "must not be negative"})
	}

	return errs
}

func ValidateUpdateLeadInput(input UpdateLeadInput) ValidationErrors {
	var errs ValidationErrors

	if input.FirstName != nil && strings.TrimSpace(*input.FirstName) == "" {
		errs = append(errs, ValidationError{"first_name", "must not be empty"})
	}
	if input.LastName != nil && strings.TrimSpace(*input.LastName) == "" {
		errs = append(errs, ValidationError{"last_name", "must not be empty"})
	}
	if input.Email != nil {
		if _, err := mail.ParseAddress(*input.Email); err != nil {
			errs = append(errs, ValidationError{"email", "is invalid"})
		}
	}
	if input.Source != nil && !entity.IsValidSource(*input.Source) {
		errs = append(errs, ValidationError{"source", fmt.Sprintf("%q is not a valid source", *input.Source)})
	}
	if input.Status != nil && !entity.IsValidStatus(*input.Status) {
		errs = append(errs, ValidationError{"status", fmt.Sprintf("%q is not a valid status", *input.Status)})
	}
	if input.Score != nil && (*input.Score < 0 || *input.Score > 100) {
		errs = append(errs, ValidationError{"score", "must be between 0 and 100"})
	}
	if input.LeadValue != nil && *input.LeadValue < 0 {
		errs = append(errs, ValidationError{"lead_value", "must not be negative"})
	}

	return errs
}
