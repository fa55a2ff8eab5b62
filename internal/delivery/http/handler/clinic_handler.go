package handler

import (
	"net/http"

	"maternacare/internal/delivery/http/middleware"
	"maternacare/internal/usecase"
	"maternacare/pkg/response"
)

type ClinicHandler struct {
	clinicUsecase usecase.ClinicUsecase
}

func NewClinicHandler(clinicUsecase usecase.ClinicUsecase) *ClinicHandler {
	return &ClinicHandler{clinicUsecase: clinicUsecase}
}

func (h *ClinicHandler) ListClinics(w http.ResponseWriter, r *http.Request) {
	clinics, err := h.clinicUsecase.ListClinics(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, map[string]any{"clinics": clinics})
}

func (h *ClinicHandler) ListPatients(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	patients, err := h.clinicUsecase.ListPatients(r.Context(), caller)
	if err != nil {
		respondError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, map[string]any{"patients": patients})
}
