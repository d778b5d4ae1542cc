package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/erino/leadcrm/internal/entity"
	"github.com/erino/leadcrm/internal/usecase"
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

func newLeadRouter(repo entity.LeadRepositoryInterface) *chi.Mux {
	h := NewLeadHandler(
		usecase.NewCreateLeadUseCase(repo, nil),
		usecase.NewListLeadsUseCase(repo),
		usecase.NewUpdateLeadUseCase(repo),
		repo,
	)

	r := chi.NewRouter()
	r.Route("/api/leads", func(r chi.Router) {
		r.Get("/", h.List)
		r.Post("/", h.Create)
		r.Get("/{id}", h.Get)
		r.Put("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
	})
	return r
}

func TestListLeadsEndpoint(t *testing.T) {
	repo := new(MockLeadRepository)
	repo.On("CountAndList", mock.Anything, mock.Anything, 0, 20).
		Return([]entity.Lead{{ID: "a", Status: "won"}}, 41, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/leads", nil)
	newLeadRouter(repo).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var page usecase.LeadPage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
	assert.Len(t, page.Data, 1)
	assert.Equal(t, 41, page.Total)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, 20, page.Limit)
}

func TestListLeadsEndpointRejectsBadScore(t *testing.T) {
	repo := new(MockLeadRepository)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/leads?score=abc", nil)
	newLeadRouter(repo).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	repo.AssertNotCalled(t, "CountAndList")
}

func TestCreateLeadEndpoint(t *testing.T) {
	repo := new(MockLeadRepository)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	body := `{"first_name":"Jane","last_name":"Doe","email":"jane@acme.com","source":"website"}`
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/leads", strings.NewReader(body))
	newLeadRouter(repo).ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var lead entity.Lead
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &lead))
	assert.NotEmpty(t, lead.ID)
	assert.Equal(t, "website", lead.Source)
	assert.Equal(t, "new", lead.Status)
}

func TestCreateLeadEndpointRejectsUnknownFields(t *testing.T) {
	repo := new(MockLeadRepository)

	body := `{"first_name":"Jane","last_name":"Doe","email":"jane@acme.com","is_admin":true}`
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/leads", strings.NewReader(body))
	newLeadRouter(repo).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	repo.AssertNotCalled(t, "Create")
}

func TestCreateLeadEndpointDuplicateEmail(t *testing.T) {
	repo := new(MockLeadRepository)
	repo.On("Create", mock.Anything, mock.Anything).Return(entity.ErrEmailAlreadyExists)

	body := `{"first_name":"Jane","last_name":"Doe","email":"jane@acme.com"}`
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/leads", strings.NewReader(body))
	newLeadRouter(repo).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "already exists")
}

func TestGetLeadEndpointNotFound(t *testing.T) {
	repo := new(MockLeadRepository)
	repo.On("FindByID", mock.Anything, "missing").Return(nil, entity.ErrNotFound)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/leads/missing", nil)
	newLeadRouter(repo).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "missing")
}

func TestUpdateLeadEndpointNotFound(t *testing.T) {
	repo := new(MockLeadRepository)
	repo.On("Update", mock.Anything, "ghost", mock.Anything).Return(nil, entity.ErrNotFound)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/leads/ghost", strings.NewReader(`{"status":"won"}`))
	newLeadRouter(repo).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateLeadEndpointRejectsBadStatus(t *testing.T) {
	repo := new(MockLeadRepository)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/leads/some-id", strings.NewReader(`{"status":"imaginary"}`))
	newLeadRouter(repo).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	repo.AssertNotCalled(t, "Update")
}

func TestDeleteLeadEndpoint(t *testing.T) {
	repo := new(MockLeadRepository)
	repo.On("Delete", mock.Anything, "lead-1").Return(nil).Once()
	repo.On("Delete", mock.Anything, "lead-1").Return(entity.ErrNotFound).Once()

	router := newLeadRouter(repo)

	// First delete succeeds with no body.
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/leads/lead-1", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)

	// Second delete of the same id is a 404.
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/leads/lead-1", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
