package api

import (
	"net/http"

	"github.com/garnizeh/portfolio/internal/validation"
	"github.com/garnizeh/portfolio/pkg/models"
	"github.com/garnizeh/portfolio/pkg/repository"
)

func (h *PortfolioHandler) ListSkills(w http.ResponseWriter, r *http.Request) {
	var items []models.Skill
	err := h.store.Tx(r.Context(), func(repo repository.Repos) error {
		var err error
		items, err = repo.Skills.ListSkills(r.Context())
		return err
	})
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, items, http.StatusOK)
}

func (h *PortfolioHandler) GetSkill(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, repository.EntitySkill)
	if err != nil {
		handleError(w, r, err)
		return
	}

	var item *models.Skill
	err = h.store.Tx(r.Context(), func(repo repository.Repos) error {
		var err error
		item, err = repo.Skills.GetSkill(r.Context(), id)
		return err
	})
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, item, http.StatusOK)
}

func (h *PortfolioHandler) CreateSkill(w http.ResponseWriter, r *http.Request) {
	patch, err := decode[models.SkillPatch](h, w, r, validation.SkillCreate)
	if err != nil {
		handleError(w, r, err)
		return
	}

	var item *models.Skill
	err = h.store.Tx(r.Context(), func(repo repository.Repos) error {
		var err error
		item, err = repo.Skills.CreateSkill(r.Context(), patch)
		return err
	})
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, item, http.StatusCreated)
}

func (h *PortfolioHandler) UpdateSkill(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, repository.EntitySkill)
	if err != nil {
		handleError(w, r, err)
		return
	}
	patch, err := decode[models.SkillPatch](h, w, r, validation.SkillUpdate)
	if err != nil {
		handleError(w, r, err)
		return
	}

	var item *models.Skill
	err = h.store.Tx(r.Context(), func(repo repository.Repos) error {
		var err error
		item, err = repo.Skills.UpdateSkill(r.Context(), id, patch)
		return err
	})
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, item, http.StatusOK)
}

func (h *PortfolioHandler) DeleteSkill(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, repository.EntitySkill)
	if err != nil {
		handleError(w, r, err)
		return
	}

	err = h.store.Tx(r.Context(), func(repo repository.Repos) error {
		return repo.Skills.DeleteSkill(r.Context(), id)
	})
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, okResponse{OK: true}, http.StatusOK)
}
