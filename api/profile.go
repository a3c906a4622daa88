package api

import (
	"net/http"

	"github.com/garnizeh/portfolio/internal/validation"
	"github.com/garnizeh/portfolio/pkg/models"
	"github.com/garnizeh/portfolio/pkg/repository"
)

// GetProfile responds with the first profile, or null when none exists.
func (h *PortfolioHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	var p *models.Profile
	err := h.store.Tx(r.Context(), func(repo repository.Repos) error {
		var err error
		p, err = repo.Profiles.First(r.Context())
		return err
	})
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, p, http.StatusOK)
}

func (h *PortfolioHandler) CreateProfile(w http.ResponseWriter, r *http.Request) {
	patch, err := decode[models.ProfilePatch](h, w, r, validation.ProfileCreate)
	if err != nil {
		handleError(w, r, err)
		return
	}

	var p *models.Profile
	err = h.store.Tx(r.Context(), func(repo repository.Repos) error {
		var err error
		p, err = repo.Profiles.CreateProfile(r.Context(), patch)
		return err
	})
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, p, http.StatusCreated)
}

// UpsertProfile merges the payload into the first profile, creating it
// when none exists.
func (h *PortfolioHandler) UpsertProfile(w http.ResponseWriter, r *http.Request) {
	patch, err := decode[models.ProfilePatch](h, w, r, validation.ProfileUpdate)
	if err != nil {
		handleError(w, r, err)
		return
	}

	var p *models.Profile
	err = h.store.Tx(r.Context(), func(repo repository.Repos) error {
		var err error
		p, err = repo.Profiles.UpsertProfile(r.Context(), patch)
		return err
	})
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, p, http.StatusOK)
}
