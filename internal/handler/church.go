package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/ipupy/tesoreria/internal/service"
)

type ChurchHandler struct {
	churchService *service.ChurchService
}

func NewChurchHandler(churchService *service.ChurchService) *ChurchHandler {
	return &ChurchHandler{churchService: churchService}
}

type createChurchRequest struct {
	Name   string `json:"name"`
	City   string `json:"city"`
	Pastor string `json:"pastor"`
	Phone  string `json:"phone"`
}

func (h *ChurchHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createChurchRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	church, err := h.churchService.Create(service.CreateChurchInput{
		Name:   req.Name,
		City:   req.City,
		Pastor: req.Pastor,
		Phone:  req.Phone,
	})
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		slog.Error("failed to create church", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to create church")
		return
	}

	slog.Info("church created", "church_id", church.ID, "name", church.Name)
	respondJSON(w, http.StatusCreated, church)
}

func (h *ChurchHandler) List(w http.ResponseWriter, r *http.Request) {
	churches, err := h.churchService.All()
	if err != nil {
		slog.Error("failed to list churches", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to list churches")
		return
	}

	respondJSON(w, http.StatusOK, churches)
}
