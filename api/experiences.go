package api

import (
	"net/http"

	"github.com/garnizeh/portfolio/internal/validation"
	"github.com/garnizeh/portfolio/pkg/models"
	"github.com/garnizeh/portfolio/pkg/repository"
)

func (h *PortfolioHandler) ListExperiences(w http.ResponseWriter, r *http.Request) {
	var items []models.Experience
	err := h.store.Tx(r.Context(), func(repo repository.Repos) error {
		var err error
		items, err = repo.Experiences.ListExperiences(r.Context())
		return err
	})
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, items, http.StatusOK)
}

func (h *PortfolioHandler) GetExperience(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, repository.EntityExperience)
	if err != nil {
		handleError(w, r, err)
		return
	}

	var item *models.Experience
	err = h.store.Tx(r.Context(), func(repo repository.Repos) error {
		var err error
		item, err = repo.Experiences.GetExperience(r.Context(), id)
		return err
	})
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, item, http.StatusOK)
}

func (h *PortfolioHandler) CreateExperience(w http.ResponseWriter, r *http.Request) {
	patch, err := decode[models.ExperiencePatch](h, w, r, validation.ExperienceCreate)
	if err != nil {
		handleError(w, r, err)
		return
	}

	var item *models.Experience
	err = h.store.Tx(r.Context(), func(repo repository.Repos) error {
		var err error
		item, err = repo.Experiences.CreateExperience(r.Context(), patch)
		return err
	})
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, item, http.StatusCreated)
}

func (h *PortfolioHandler) UpdateExperience(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, repository.EntityExperience)
	if err != nil {
		handleError(w, r, err)
		return
	}
	patch, err := decode[models.ExperiencePatch](h, w, r, validation.ExperienceUpdate)
	if err != nil {
		handleError(w, r, err)
		return
	}

	var item *models.Experience
	err = h.store.Tx(r.Context(), func(repo repository.Repos) error {
		var err error
		item, err = repo.Experiences.UpdateExperience(r.Context(), id, patch)
		return err
	})
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, item, http.StatusOK)
}

func (h *PortfolioHandler) DeleteExperience(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, repository.EntityExperience)
	if err != nil {
		handleError(w, r, err)
		return
	}

	err = h.store.Tx(r.Context(), func(repo repository.Repos) error {
		return repo.Experiences.DeleteExperience(r.Context(), id)
	})
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, okResponse{OK: true}, http.StatusOK)
}
