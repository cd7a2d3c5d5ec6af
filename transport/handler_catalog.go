package transport

import (
	"net/http"

	"github.com/srisatyasai136/review/model"
)

// CreateTrainer handler
// @Summary Create trainer
// @Tags Internal
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.CreateTrainerRequest true "Trainer"
// @Success 201 {object} model.TrainerEntity
// @Router /internal/v1/trainers [post]
func (s *RestHandler) CreateTrainer(w http.ResponseWriter, r *http.Request) {
	var req model.CreateTrainerRequest
	if err := decodeRequest(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.CatalogApp.CreateTrainer(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeCreated(w, res)
}

// ListTrainers handler
// @Summary List trainers
// @Tags Internal
// @Produce json
// @Security BearerAuth
// @Param q query string false "Search by name or expertise"
// @Success 200 {array} model.TrainerEntity
// @Router /internal/v1/trainers [get]
func (s *RestHandler) ListTrainers(w http.ResponseWriter, r *http.Request) {
	res, err := s.CatalogApp.ListTrainers(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// CreateClass handler
// @Summary Create demo class
// @Tags Internal
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.CreateClassRequest true "Class"
// @Success 201 {object} model.DemoClassEntity
// @Failure 404 {object} Response
// @Router /internal/v1/classes [post]
func (s *RestHandler) CreateClass(w http.ResponseWriter, r *http.Request) {
	var req model.CreateClassRequest
	if err := decodeRequest(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.CatalogApp.CreateClass(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeCreated(w, res)
}

// SetClassActive handler
// @Summary Open or close a class for feedback
// @Tags Internal
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Class ID"
// @Param request body model.SetClassActiveRequest true "Active flag"
// @Success 200 {object} Response
// @Router /internal/v1/classes/{id}/active [patch]
func (s *RestHandler) SetClassActive(w http.ResponseWriter, r *http.Request) {
	classID, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.SetClassActiveRequest
	if err := decodeRequest(r, &req); err != nil {
		writeError(w, err)
		return
	}

	if err := s.CatalogApp.SetClassActive(r.Context(), classID, *req.IsActive); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, nil)
}
