package usecase

import (
	"time"

	"github.com/erino/leadcrm/internal/entity"
)

type RegisterInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UserOutput struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type CreateLeadInput struct {
	FirstName      string     `json:"first_name"`
	LastName       string     `json:"last_name"`
	Email          string     `json:"email"`
	Phone          string     `json:"phone"`
	Company        string     `json:"company"`
	City           string     `json:"city"`
	State          string     `json:"state"`
	Source         string     `json:"source"`
	Status         string     `json:"status"`
	Score          *int       `json:"score"`
	LeadValue      *float64   `json:"lead_value"`
	IsQualified    *bool      `json:"is_qualified"`
	LastActivityAt *time.Time `json:"last_activity_at"`
}

// UpdateLeadInput is fully optional; only the fields present in the JSON
// body are applied.
type UpdateLeadInput struct {
	FirstName      *string    `json:"first_name"`
	LastName       *string    `json:"last_name"`
	Email          *string    `json:"email"`
	Phone          *string    `json:"phone"`
	Company        *string    `json:"company"`
	City           *string    `json:"city"`
	State          *string    `json:"state"`
	Source         *string    `json:"source"`
	Status         *string    `json:"status"`
	Score          *int       `json:"score"`
	LeadValue      *float64   `json:"lead_value"`
	IsQualified    *bool      `json:"is_qualified"`
	LastActivityAt *time.Time `json:"last_activity_at"`
}

// LeadPage is the listing response envelope.
type LeadPage struct {
	Data       []entity.Lead `json:"data"`
	Page       int           `json:"page"`
	Limit      int           `json:"limit"`
	Total      int           `json:"total"`
	TotalPages int           `json:"totalPages"`
}
