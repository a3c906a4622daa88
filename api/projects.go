package api

import (
	"net/http"

	"github.com/garnizeh/portfolio/internal/validation"
	"github.com/garnizeh/portfolio/pkg/models"
	"github.com/garnizeh/portfolio/pkg/repository"
)

func (h *PortfolioHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	var items []models.Project
	err := h.store.Tx(r.Context(), func(repo repository.Repos) error {
		var err error
		items, err = repo.Projects.ListProjects(r.Context())
		return err
	})
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, items, http.StatusOK)
}

func (h *PortfolioHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, repository.EntityProject)
	if err != nil {
		handleError(w, r, err)
		return
	}

	var item *models.Project
	err = h.store.Tx(r.Context(), func(repo repository.Repos) error {
		var err error
		item, err = repo.Projects.GetProject(r.Context(), id)
		return err
	})
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, item, http.StatusOK)
}

func (h *PortfolioHandler) CreateProject(w http.ResponseWriter, r *http.Request) {
	patch, err := decode[models.ProjectPatch](h, w, r, validation.ProjectCreate)
	if err != nil {
		handleError(w, r, err)
		return
	}

	var item *models.Project
	err = h.store.Tx(r.Context(), func(repo repository.Repos) error {
		var err error
		item, err = repo.Projects.CreateProject(r.Context(), patch)
		return err
	})
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, item, http.StatusCreated)
}

func (h *PortfolioHandler) UpdateProject(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, repository.EntityProject)
	if err != nil {
		handleError(w, r, err)
		return
	}
	patch, err := decode[models.ProjectPatch](h, w, r, validation.ProjectUpdate)
	if err != nil {
		handleError(w, r, err)
		return
	}

	var item *models.Project
	err = h.store.Tx(r.Context(), func(repo repository.Repos) error {
		var err error
		item, err = repo.Projects.UpdateProject(r.Context(), id, patch)
		return err
	})
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, item, http.StatusOK)
}

func (h *PortfolioHandler) DeleteProject(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, repository.EntityProject)
	if err != nil {
		handleError(w, r, err)
		return
	}

	err = h.store.Tx(r.Context(), func(repo repository.Repos) error {
		return repo.Projects.DeleteProject(r.Context(), id)
	})
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, okResponse{OK: true}, http.StatusOK)
}
