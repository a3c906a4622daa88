package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/garnizeh/portfolio/internal/pdf"
	"github.com/garnizeh/portfolio/internal/validation"
	"github.com/garnizeh/portfolio/pkg/repository"
)

type errorResponse struct {
	Detail string               `json:"detail"`
	Errors []validation.Problem `json:"errors,omitempty"`
}

type okResponse struct {
	OK bool `json:"ok"`
}

func writeJSON(w http.ResponseWriter, v any, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("failed to encode response", slog.Any("err", err))
	}
}

func writeError(w http.ResponseWriter, status int, detail string, problems ...validation.Problem) {
	writeJSON(w, errorResponse{Detail: detail, Errors: problems}, status)
}

// handleError maps err to its response. Anything unrecognized is a 500 and
// is logged with the request it failed.
func handleError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		nf  *repository.NotFoundError
		ve  *validation.Error
		de  *decodeError
		re  *pdf.RenderError
		mbe *http.MaxBytesError
	)
	switch {
	case errors.As(err, &nf):
		writeError(w, http.StatusNotFound, nf.Error())
	case errors.As(err, &ve):
		writeError(w, http.StatusUnprocessableEntity, "invalid payload", ve.Problems...)
	case errors.As(err, &de):
		writeError(w, http.StatusUnprocessableEntity, de.Error())
	case errors.As(err, &mbe):
		writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
	case errors.Is(err, repository.ErrProfileNameRequired):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.As(err, &re):
		logger.Error("render failed", slog.String("path", r.URL.Path), slog.Any("err", err))
		writeError(w, http.StatusInternalServerError, "failed to render pdf")
	default:
		logger.Error("request failed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Any("err", err),
		)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
