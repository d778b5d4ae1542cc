package usecase

import (
	"context"
	"log"

	"github.com/erino/leadcrm/internal/entity"
	"github.com/erino/leadcrm/internal/infra/queue"
)

type CreateLeadUseCase struct {
	Leads entity.LeadRepositoryInterface
	Queue QueueProducerInterface
}

func NewCreateLeadUseCase(leads entity.LeadRepositoryInterface, producer QueueProducerInterface) *CreateLeadUseCase {
	return &CreateLeadUseCase{Leads: leads, Queue: producer}
}

func (uc *CreateLeadUseCase) Execute(ctx context.Context, input CreateLeadInput) (*entity.Lead, error) {
	if errs := ValidateCreateLeadInput(input); len(errs) > 0 {
		return nil, errs
	}

	lead := entity.NewLead(input.FirstName, input.LastName, input.Email)
	lead.Phone = input.Phone
	lead.Company = input.Company
	lead.City = input.City
	lead.State = input.State
	if input.Source != "" {
		lead.Source = input.Source
	}
	if input.Status != "" {
		lead.Status = input.Status
	}
	if input.Score != nil {
		lead.Score = *input.Score
	}
	if input.LeadValue != nil {
		lead.LeadValue = *input.LeadValue
	}
	if input.IsQualified != nil {
		lead.IsQualified = *input.IsQualified
	}
	lead.LastActivityAt = input.LastActivityAt

	if err := uc.Leads.Create(ctx, lead); err != nil {
		return nil, err
	}

	// The notification event is best-effort: the lead is already stored.
	if uc.Queue != nil {
		payload := queue.LeadCreatedPayload{
			ID:        lead.ID,
			FirstName: lead.FirstName,
			LastName:  lead.LastName,
			Email:     lead.Email,
			Company:   lead.Company,
			Source:    lead.Source,
			Status:    lead.Status,
			Score:     lead.Score,
		}
		if err := uc.Queue.PublishLeadCreated(ctx, payload); err != nil {
			log.Printf("failed to publish lead.created event for %s: %v", lead.ID, err)
		}
	}

	return lead, nil
}
