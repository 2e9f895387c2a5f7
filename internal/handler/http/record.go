package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/pontolabs/ponto-backend-go/internal/domain/record"
	"github.com/pontolabs/ponto-backend-go/internal/handler/http/response"
)

type RecordHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	AddActivity(w http.ResponseWriter, r *http.Request)
	UpdateActivity(w http.ResponseWriter, r *http.Request)
	DeleteActivity(w http.ResponseWriter, r *http.Request)
}

type RecordHandlerImpl struct {
	recordService record.RecordService
}

func NewRecordHandler(recordService record.RecordService) RecordHandler {
	return &RecordHandlerImpl{recordService: recordService}
}

// Create implements RecordHandler.
func (h *RecordHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq record.CreateRecordRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create record decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Validate DTO
	if err := createReq.Validate(); err != nil {
		slog.Error("Create record validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Call service
	created, err := h.recordService.Create(r.Context(), createReq)
	if err != nil {
		slog.Error("Create record service error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Success response
	slog.Info("Attendance record created successfully")
	response.Created(w, "Attendance record created successfully", created)
}

// Get implements RecordHandler.
func (h *RecordHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	rec, err := h.recordService.Get(r.Context(), id)
	if err != nil {
		slog.Error("Get record service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, rec)
}

// ListMine implements RecordHandler.
func (h *RecordHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	var filter record.ListMyRecordsFilter
	if v := r.URL.Query().Get("start_date"); v != "" {
		filter.StartDate = &v
	}
	if v := r.URL.Query().Get("end_date"); v != "" {
		filter.EndDate = &v
	}

	records, err := h.recordService.ListMine(r.Context(), filter)
	if err != nil {
		slog.Error("List records service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}

// Update implements RecordHandler.
func (h *RecordHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var updateReq record.UpdateRecordRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Update record decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.ID = chi.URLParam(r, "id")

	// Validate DTO
	if err := updateReq.Validate(); err != nil {
		slog.Error("Update record validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Call service
	updated, err := h.recordService.Update(r.Context(), updateReq)
	if err != nil {
		slog.Error("Update record service error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Success response
	slog.Info("Attendance record updated successfully")
	response.SuccessWithMessage(w, "Attendance record updated successfully", updated)
}

// Delete implements RecordHandler.
func (h *RecordHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.recordService.Delete(r.Context(), id); err != nil {
		slog.Error("Delete record service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Attendance record deleted successfully")
	response.SuccessWithMessage(w, "Attendance record deleted successfully", nil)
}

// AddActivity implements RecordHandler.
func (h *RecordHandlerImpl) AddActivity(w http.ResponseWriter, r *http.Request) {
	var addReq record.AddActivityRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&addReq); err != nil {
		slog.Error("Add activity decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	addReq.RecordID = chi.URLParam(r, "id")

	// Validate DTO
	if err := addReq.Validate(); err != nil {
		slog.Error("Add activity validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Call service
	created, err := h.recordService.AddActivity(r.Context(), addReq)
	if err != nil {
		slog.Error("Add activity service error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Success response
	slog.Info("Activity added successfully")
	response.Created(w, "Activity added successfully", created)
}

// UpdateActivity implements RecordHandler.
func (h *RecordHandlerImpl) UpdateActivity(w http.ResponseWriter, r *http.Request) {
	var updateReq record.UpdateActivityRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Update activity decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.ID = chi.URLParam(r, "activityID")

	// Validate DTO
	if err := updateReq.Validate(); err != nil {
		slog.Error("Update activity validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Call service
	updated, err := h.recordService.UpdateActivity(r.Context(), updateReq)
	if err != nil {
		slog.Error("Update activity service error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Success response
	slog.Info("Activity updated successfully")
	response.SuccessWithMessage(w, "Activity updated successfully", updated)
}

// DeleteActivity implements RecordHandler.
func (h *RecordHandlerImpl) DeleteActivity(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "activityID")

	if err := h.recordService.DeleteActivity(r.Context(), id); err != nil {
		slog.Error("Delete activity service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Activity deleted successfully")
	response.SuccessWithMessage(w, "Activity deleted successfully", nil)
}
