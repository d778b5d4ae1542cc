package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/erino/leadcrm/internal/entity"
	"github.com/erino/leadcrm/internal/infra/http/middleware"
	"github.com/erino/leadcrm/internal/usecase"
)

type LeadHandler struct {
	CreateUC *usecase.CreateLeadUseCase
	ListUC   *usecase.ListLeadsUseCase
	UpdateUC *usecase.UpdateLeadUseCase
	Leads    entity.LeadRepositoryInterface
}

func NewLeadHandler(createUC *usecase.CreateLeadUseCase, listUC *usecase.ListLeadsUseCase, updateUC *usecase.UpdateLeadUseCase, leads entity.LeadRepositoryInterface) *LeadHandler {
	return &LeadHandler{
		CreateUC: createUC,
		ListUC:   listUC,
		UpdateUC: updateUC,
		Leads:    leads,
	}
}

func (h *LeadHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := h.ListUC.Execute(r.Context(), r.URL.Query())
	if err != nil {
		if usecase.IsValidationError(err) {
			writeMessage(w, http.StatusBadRequest, err.Error())
			return
		}
		writeMessage(w, http.StatusInternalServerError, "Error fetching leads: "+err.Error())
		return
	}

	writeJSON(w, http.StatusOK, page)
}

func (h *LeadHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreateLeadInput
	if err := decodeStrict(r, &input); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	lead, err := h.CreateUC.Execute(r.Context(), input)
	if err != nil {
		switch {
		case usecase.IsValidationError(err):
			writeMessage(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, entity.ErrEmailAlreadyExists):
			writeMessage(w, http.StatusBadRequest, "A lead with this email already exists.")
		default:
			writeMessage(w, http.StatusInternalServerError, "Failed to create lead: "+err.Error())
		}
		return
	}

	middleware.RecordLeadCreated(lead.Source)
	writeJSON(w, http.StatusCreated, lead)
}

func (h *LeadHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	lead, err := h.Leads.FindByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			writeMessage(w, http.StatusNotFound, fmt.Sprintf("Lead with ID %s not found", id))
			return
		}
		writeMessage(w, http.StatusInternalServerError, "Server error: "+err.Error())
		return
	}

	writeJSON(w, http.StatusOK, lead)
}

func (h *LeadHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var input usecase.UpdateLeadInput
	if err := decodeStrict(r, &input); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	lead, err := h.UpdateUC.Execute(r.Context(), id, input)
	if err != nil {
		switch {
		case usecase.IsValidationError(err):
			writeMessage(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, entity.ErrNotFound):
			writeMessage(w, http.StatusNotFound, fmt.Sprintf("Lead with ID %s not found", id))
		case errors.Is(err, entity.ErrEmailAlreadyExists):
			writeMessage(w, http.StatusBadRequest, "A lead with this email already exists.")
		default:
			writeMessage(w, http.StatusInternalServerError, "Failed to update lead: "+err.Error())
		}
		return
	}

	writeJSON(w, http.StatusOK, lead)
}

func (h *LeadHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.Leads.Delete(r.Context(), id); err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			writeMessage(w, http.StatusNotFound, fmt.Sprintf("Lead with ID %s not found", id))
			return
		}
		writeMessage(w, http.StatusInternalServerError, "Failed to delete lead: "+err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
