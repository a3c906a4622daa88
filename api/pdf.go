package api

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/garnizeh/portfolio/internal/pdf"
	"github.com/garnizeh/portfolio/pkg/repository"
)

// ExportPDF renders the whole portfolio, read in a single unit of work.
// The document is built in memory so a render failure can still be
// reported as JSON.
func (h *PortfolioHandler) ExportPDF(w http.ResponseWriter, r *http.Request) {
	var snap pdf.Snapshot
	err := h.store.Tx(r.Context(), func(repo repository.Repos) error {
		var err error
		if snap.Profile, err = repo.Profiles.First(r.Context()); err != nil {
			return err
		}
		if snap.Projects, err = repo.Projects.ListProjects(r.Context()); err != nil {
			return err
		}
		if snap.Skills, err = repo.Skills.ListSkills(r.Context()); err != nil {
			return err
		}
		snap.Experiences, err = repo.Experiences.ListExperiences(r.Context())
		return err
	})
	if err != nil {
		handleError(w, r, err)
		return
	}

	doc, err := h.renderer.Render(snap)
	if err != nil {
		handleError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "inline; filename=portfolio.pdf")
	w.Header().Set("Content-Length", strconv.Itoa(len(doc)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(doc); err != nil {
		logger.Warn("failed to write pdf", slog.Any("err", err))
	}
}
