package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"go-identity-service/internal/model"
	"go-identity-service/internal/service"
	"go-identity-service/pkg/apierror"
)

type ProfileHandler struct {
	service *service.ProfileService
}

func NewProfileHandler(service *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{service: service}
}

func (h *ProfileHandler) Create(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var payload model.CreateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apierror.New("BAD_REQUEST", "invalid JSON body", "", http.StatusBadRequest))
		return
	}

	err := h.service.Create(r.Context(), model.Profile{
		FullName:    payload.FullName,
		PhoneNumber: payload.PhoneNumber,
		Address:     payload.Address,
		Bio:         payload.Bio,
		UserID:      payload.UserID,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusCreated, model.UpdateStatus{
		Status:  "success",
		Message: "User profile has been created successfully",
	}, nil)
}

func (h *ProfileHandler) List(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.service.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, profiles, &model.Meta{Total: len(profiles)})
}

func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var payload model.ProfileUpdate
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apierror.New("BAD_REQUEST", "invalid JSON body", "", http.StatusBadRequest))
		return
	}

	result, err := h.service.Update(r.Context(), payload)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, model.UpdateStatus{
		Status:  "success",
		Message: fmt.Sprintf("%d rows updated", result.Updated),
	}, nil)
}
