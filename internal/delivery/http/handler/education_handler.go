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

type EducationHandler struct {
	educationUsecase usecase.EducationUsecase
	validator        *validator.CustomValidator
}

func NewEducationHandler(educationUsecase usecase.EducationUsecase, validator *validator.CustomValidator) *EducationHandler {
	return &EducationHandler{
		educationUsecase: educationUsecase,
		validator:        validator,
	}
}

func (h *EducationHandler) List(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	content, err := h.educationUsecase.List(r.Context(), category)
	if err != nil {
		respondError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, map[string]any{"content": content})
}

func (h *EducationHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	content, err := h.educationUsecase.Get(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, map[string]any{"content": content})
}

func (h *EducationHandler) Create(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.CreateEducationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.BadRequest(w, validationMessage(h.validator.FormatValidationErrors(err)))
		return
	}

	content, err := h.educationUsecase.Create(r.Context(), caller, &req)
	if err != nil {
		respondError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, map[string]any{"content": content})
}

func (h *EducationHandler) Update(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.UpdateEducationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	id := mux.Vars(r)["id"]
	content, err := h.educationUsecase.Update(r.Context(), caller, id, &req)
	if err != nil {
		respondError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, map[string]any{"content": content})
}

func (h *EducationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	id := mux.Vars(r)["id"]
	if err := h.educationUsecase.Delete(r.Context(), caller, id); err != nil {
		respondError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, map[string]any{"message": "Content deleted"})
}
