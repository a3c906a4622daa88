package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/garnizeh/portfolio/internal/pdf"
	"github.com/garnizeh/portfolio/pkg/repository"
)

// Validator checks a raw request body against a named schema.
type Validator interface {
	Validate(ctx context.Context, schema string, body []byte) error
}

// Renderer turns a portfolio snapshot into a PDF document.
type Renderer interface {
	Render(s pdf.Snapshot) ([]byte, error)
}

// PortfolioHandler serves the portfolio resources. Every request runs in
// its own unit of work on store.
type PortfolioHandler struct {
	store     repository.Store
	validator Validator
	renderer  Renderer
	maxBody   int64
}

func NewPortfolioHandler(store repository.Store, v Validator, rd Renderer, maxBody int64) *PortfolioHandler {
	return &PortfolioHandler{store: store, validator: v, renderer: rd, maxBody: maxBody}
}

// decodeError reports a body that passed schema validation but could not
// be decoded into its payload type, such as an impossible calendar date.
type decodeError struct {
	err error
}

func (e *decodeError) Error() string { return "invalid payload: " + e.err.Error() }

func (e *decodeError) Unwrap() error { return e.err }

// decode reads the body, validates it against schema and unmarshals it into T.
func decode[T any](h *PortfolioHandler, w http.ResponseWriter, r *http.Request, schema string) (T, error) {
	var v T
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.maxBody))
	if err != nil {
		return v, fmt.Errorf("read body: %w", err)
	}
	if err := h.validator.Validate(r.Context(), schema, body); err != nil {
		return v, err
	}
	if err := json.Unmarshal(body, &v); err != nil {
		return v, &decodeError{err: err}
	}
	return v, nil
}

// pathID reads the {id} route variable. Routes only match digits, so the
// only failure left is overflow, which cannot name an existing row.
func pathID(r *http.Request, entity string) (int64, error) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		return 0, &repository.NotFoundError{Entity: entity}
	}
	return id, nil
}
