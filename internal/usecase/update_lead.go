package usecase

import (
	"context"

	"github.com/erino/leadcrm/internal/entity"
)

type UpdateLeadUseCase struct {
	Leads entity.LeadRepositoryInterface
}

func NewUpdateLeadUseCase(leads entity.LeadRepositoryInterface) *UpdateLeadUseCase {
	return &UpdateLeadUseCase{Leads: leads}
}

func (uc *UpdateLeadUseCase) Execute(ctx context.Context, id string, input UpdateLeadInput) (*entity.Lead, error) {
	if errs := ValidateUpdateLeadInput(input); len(errs) > 0 {
		return nil, errs
	}

	update := entity.LeadUpdate{
		FirstName:      input.FirstName,
		LastName:       input.LastName,
		Email:          input.Email,
		Phone:          input.Phone,
		Company:        input.Company,
		City:           input.City,
		State:          input.State,
		Source:         input.Source,
		Status:         input.Status,
		Score:          input.Score,
		LeadValue:      input.LeadValue,
		IsQualified:    input.IsQualified,
		LastActivityAt: input.LastActivityAt,
	}

	return uc.Leads.Update(ctx, id, update)
}
