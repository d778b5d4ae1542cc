package entity

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Allowed values for the categorical lead fields. The database enforces the
// same sets with CHECK constraints.
var (
	LeadSources  = []string{"website", "facebook_ads", "google_ads", "referral", "events", "other"}
	LeadStatuses = []string{"new", "contacted", "qualified", "lost", "won"}
)

type Lead struct {
	ID             string     `json:"id"`
	FirstName      string     `json:"first_name"`
	LastName       string     `json:"last_name"`
	Email          string     `json:"email"`
	Phone          string     `json:"phone,omitempty"`
	Company        string     `json:"company,omitempty"`
	City           string     `json:"city,omitempty"`
	State          string     `json:"state,omitempty"`
	Source         string     `json:"source"`
	Status         string     `json:"status"`
	Score          int        `json:"score"`
	LeadValue      float64    `json:"lead_value"`
	IsQualified    bool       `json:"is_qualified"`
	LastActivityAt *time.Time `json:"last_activity_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

func NewLead(firstName, lastName, email string) *Lead {
	now := time.Now().UTC()
	return &Lead{
		ID:        uuid.New().String(),
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Status:    "new",
		Source:    "other",
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func IsValidSource(s string) bool {
	for _, v := range LeadSources {
		if v == s {
			return true
		}
	}
	return false
}

func IsValidStatus(s string) bool {
	for _, v := range LeadStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// LeadUpdate carries a partial update; nil fields are left untouched.
type LeadUpdate struct {
	FirstName      *string
	LastName       *string
	Email          *string
	Phone          *string
	Company        *string
	City           *string
	State          *string
	Source         *string
	Status         *string
	Score          *int
	LeadValue      *float64
	IsQualified    *bool
	LastActivityAt *time.Time
}

type LeadRepositoryInterface interface {
	Create(ctx context.Context, lead *Lead) error
	FindByID(ctx context.Context, id string) (*Lead, error)
	Update(ctx context.Context, id string, update LeadUpdate) (*Lead, error)
	Delete(ctx context.Context, id string) error

	// CountAndList runs the count and the page fetch inside one read-only
	// transaction so total and data come from the same snapshot.
	CountAndList(ctx context.Context, filter LeadFilter, skip, limit int) ([]Lead, int, error)
}
