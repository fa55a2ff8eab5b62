package handler

import (
	"encoding/json"
	"net/http"

	"maternacare/internal/delivery/dto"
	"maternacare/internal/delivery/http/middleware"
	"maternacare/internal/usecase"
	"maternacare/pkg/response"
	"maternacare/pkg/validator"

	"github.com/gorilla/mux"
)

type AppointmentHandler struct {
	appointmentUsecase usecase.AppointmentUsecase
	validator          *validator.CustomValidator
}

func NewAppointmentHandler(appointmentUsecase usecase.AppointmentUsecase, validator *validator.CustomValidator) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentUsecase: appointmentUsecase,
		validator:          validator,
	}
}

func (h *AppointmentHandler) List(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	appointments, err := h.appointmentUsecase.List(r.Context(), caller)
	if err != nil {
		respondError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, map[string]any{"appointments": appointments})
}

func (h *AppointmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.CreateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.BadRequest(w, validationMessage(h.validator.FormatValidationErrors(err)))
		return
	}

	appointment, err := h.appointmentUsecase.Create(r.Context(), caller, &req)
	if err != nil {
		respondError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, map[string]any{"appointment": appointment})
}

func (h *AppointmentHandler) Update(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.UpdateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.BadRequest(w, validationMessage(h.validator.FormatValidationErrors(err)))
		return
	}

	id := mux.Vars(r)["id"]
	appointment, err := h.appointmentUsecase.Update(r.Context(), caller, id, &req)
	if err != nil {
		respondError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, map[string]any{"appointment": appointment})
}

func (h *AppointmentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	id := mux.Vars(r)["id"]
	if err := h.appointmentUsecase.Delete(r.Context(), caller, id); err != nil {
		respondError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, map[string]any{"message": "Appointment deleted"})
}
