package usecase

import (
	"context"
	"errors"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/erino/leadcrm/internal/entity"
)

type MockLeadRepository struct {
	mock.Mock
}

func (m *MockLeadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	args := m.Called(ctx, lead)
	return args.Error(0)
}

func (m *MockLeadRepository) FindByID(ctx context.Context, id string) (*entity.Lead, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) Update(ctx context.Context, id string, update entity.LeadUpdate) (*entity.Lead, error) {
	args := m.Called(ctx, id, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockLeadRepository) CountAndList(ctx context.Context, filter entity.LeadFilter, skip, limit int) ([]entity.Lead, int, error) {
	args := m.Called(ctx, filter, skip, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]entity.Lead), args.Int(1), args.Error(2)
}

func TestListLeadsEnvelope(t *testing.T) {
	repo := new(MockLeadRepository)
	leads := []entity.Lead{{ID: "a"}, {ID: "b"}}
	repo.On("CountAndList", mock.Anything, mock.Anything, 0, 20).Return(leads, 155, nil)

	uc := NewListLeadsUseCase(repo)

	page, err := uc.Execute(context.Background(), url.Values{})
	require.NoError(t, err)

	assert.Equal(t, leads, page.Data)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 20, page.Limit)
	assert.Equal(t, 155, page.Total)
	assert.Equal(t, 8, page.TotalPages) // ceil(155/20)
	repo.AssertExpectations(t)
}

func TestListLeadsPassesSkipAndLimit(t *testing.T) {
	repo := new(MockLeadRepository)
	repo.On("CountAndList", mock.Anything, mock.Anything, 50, 50).Return([]entity.Lead{}, 0, nil)

	uc := NewListLeadsUseCase(repo)

	q, _ := url.ParseQuery("page=2&limit=50")
	page, err := uc.Execute(context.Background(), q)
	require.NoError(t, err)

	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 50, page.Limit)
	assert.Equal(t, 0, page.TotalPages)
	repo.AssertExpectations(t)
}

func TestListLeadsEmptyResultIsNotNil(t *testing.T) {
	repo := new(MockLeadRepository)
	repo.On("CountAndList", mock.Anything, mock.Anything, 0, 20).Return(nil, 0, nil)

	uc := NewListLeadsUseCase(repo)

	page, err := uc.Execute(context.Background(), url.Values{})
	require.NoError(t, err)
	assert.NotNil(t, page.Data)
	assert.Empty(t, page.Data)
}

func TestListLeadsStoreFaultSurfaces(t *testing.T) {
	repo := new(MockLeadRepository)
	boom := errors.New("connection reset")
	repo.On("CountAndList", mock.Anything, mock.Anything, 0, 20).Return(nil, 0, boom)

	uc := NewListLeadsUseCase(repo)

	_, err := uc.Execute(context.Background(), url.Values{})
	assert.ErrorIs(t, err, boom)
}

func TestListLeadsBadFilterSkipsStore(t *testing.T) {
	repo := new(MockLeadRepository)
	uc := NewListLeadsUseCase(repo)

	q, _ := url.ParseQuery("score=abc")
	_, err := uc.Execute(context.Background(), q)

	require.Error(t, err)
	assert.True(t, IsValidationError(err))
	repo.AssertNotCalled(t, "CountAndList")
}

func TestListLeadsForwardsCompiledFilter(t *testing.T) {
	repo := new(MockLeadRepository)
	repo.On("CountAndList", mock.Anything, mock.MatchedBy(func(f entity.LeadFilter) bool {
		return f.Status != nil && len(f.Status.In) == 2 && f.Status.In[0] == "contacted"
	}), 0, 20).Return([]entity.Lead{}, 0, nil)

	uc := NewListLeadsUseCase(repo)

	q, _ := url.ParseQuery("status=new&status_in=contacted,won")
	_, err := uc.Execute(context.Background(), q)
	require.NoError(t, err)
	repo.AssertExpectations(t)
}
