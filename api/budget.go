package api

import (
	"net/http"

	"github.com/garnizeh/portfolio/internal/validation"
	"github.com/garnizeh/portfolio/pkg/models"
	"github.com/garnizeh/portfolio/pkg/repository"
)

func (h *PortfolioHandler) CreateBudgetRequest(w http.ResponseWriter, r *http.Request) {
	in, err := decode[models.BudgetRequestInput](h, w, r, validation.BudgetCreate)
	if err != nil {
		handleError(w, r, err)
		return
	}

	var br *models.BudgetRequest
	err = h.store.Tx(r.Context(), func(repo repository.Repos) error {
		var err error
		br, err = repo.Budgets.CreateBudgetRequest(r.Context(), in)
		return err
	})
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, br, http.StatusCreated)
}

// ListBudgetRequests responds with every request, newest first.
func (h *PortfolioHandler) ListBudgetRequests(w http.ResponseWriter, r *http.Request) {
	var items []models.BudgetRequest
	err := h.store.Tx(r.Context(), func(repo repository.Repos) error {
		var err error
		items, err = repo.Budgets.ListBudgetRequests(r.Context())
		return err
	})
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, items, http.StatusOK)
}
