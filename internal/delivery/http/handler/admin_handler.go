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

type AdminHandler struct {
	adminUsecase usecase.AdminUsecase
	validator    *validator.CustomValidator
}

func NewAdminHandler(adminUsecase usecase.AdminUsecase, validator *validator.CustomValidator) *AdminHandler {
	return &AdminHandler{
		adminUsecase: adminUsecase,
		validator:    validator,
	}
}

func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.adminUsecase.ListUsers(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, map[string]any{"users": users})
}

func (h *AdminHandler) ListPendingClinics(w http.ResponseWriter, r *http.Request) {
	clinics, err := h.adminUsecase.ListPendingClinics(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, map[string]any{"clinics": clinics})
}

func (h *AdminHandler) ApproveClinic(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	id := mux.Vars(r)["id"]
	clinic, err := h.adminUsecase.ApproveClinic(r.Context(), caller, id)
	if err != nil {
		respondError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, map[string]any{"clinic": clinic})
}

func (h *AdminHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.BadRequest(w, validationMessage(h.validator.FormatValidationErrors(err)))
		return
	}

	user, err := h.adminUsecase.CreateUser(r.Context(), caller, &req)
	if err != nil {
		respondError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, map[string]any{"user": user})
}

func (h *AdminHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := h.adminUsecase.DeleteUser(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, map[string]any{"message": "User deleted"})
}

func (h *AdminHandler) MakeAdmin(w http.ResponseWriter, r *http.Request) {
	var req dto.MakeAdminRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.BadRequest(w, validationMessage(h.validator.FormatValidationErrors(err)))
		return
	}

	user, err := h.adminUsecase.MakeAdmin(r.Context(), &req)
	if err != nil {
		respondError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, map[string]any{"user": user})
}
