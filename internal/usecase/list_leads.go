package usecase

import (
	"context"
	"net/url"

	"github.com/erino/leadcrm/internal/entity"
)

type ListLeadsUseCase struct {
	Leads entity.LeadRepositoryInterface
}

func NewListLeadsUseCase(leads entity.LeadRepositoryInterface) *ListLeadsUseCase {
	return &ListLeadsUseCase{Leads: leads}
}

// Execute compiles the query, runs the snapshot count+fetch and shapes the
// envelope. Store faults bubble up untouched; there are no retries.
func (uc *ListLeadsUseCase) Execute(ctx context.Context, query url.Values) (*LeadPage, error) {
	filter, page, err := CompileLeadQuery(query)
	if err != nil {
		return nil, err
	}

	leads, total, err := uc.Leads.CountAndList(ctx, filter, page.Skip, page.Limit)
	if err != nil {
		return nil, err
	}

	if leads == nil {
		leads = []entity.Lead{}
	}

	totalPages := (total + page.Limit - 1) / page.Limit

	return &LeadPage{
		Data:       leads,
		Page:       page.Page,
		Limit:      page.Limit,
		Total:      total,
		TotalPages: totalPages,
	}, nil
}
