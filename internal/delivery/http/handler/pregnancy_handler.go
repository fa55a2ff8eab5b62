package handler

import (
	"encoding/json"
	"net/http"

	"maternacare/internal/delivery/http/middleware"
	"maternacare/internal/usecase"
	"maternacare/pkg/response"

	"github.com/gorilla/mux"
)

type PregnancyHandler struct {
	pregnancyUsecase usecase.PregnancyUsecase
}

func NewPregnancyHandler(pregnancyUsecase usecase.PregnancyUsecase) *PregnancyHandler {
	return &PregnancyHandler{pregnancyUsecase: pregnancyUsecase}
}

func (h *PregnancyHandler) Get(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	motherID := mux.Vars(r)["motherId"]
	data, err := h.pregnancyUsecase.Get(r.Context(), caller, motherID)
	if err != nil {
		respondError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, data)
}

func (h *PregnancyHandler) AddMeasurement(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req struct {
		Data map[string]any `json:"data"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if len(req.Data) == 0 {
		response.BadRequest(w, "Measurement data is required")
		return
	}

	motherID := mux.Vars(r)["motherId"]
	measurement, err := h.pregnancyUsecase.AddMeasurement(r.Context(), caller, motherID, req.Data)
	if err != nil {
		respondError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, map[string]any{"measurement": measurement})
}
