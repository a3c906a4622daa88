package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/garnizeh/portfolio/internal/config"
	"github.com/garnizeh/portfolio/pkg/repository"
)

func SetupRoutes(cfg *config.Config, version, buildTime string, store repository.Store, v Validator, rd Renderer) *mux.Router {
	r := mux.NewRouter()

	// Middleware chain
	r.Use(LoggingMiddleware)
	r.Use(CORSMiddleware)
	r.Use(RecoveryMiddleware)

	// unmatched requests bypass router middleware; preflight requests land
	// here too and are answered by CORSMiddleware
	r.NotFoundHandler = CORSMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "Not Found")
	}))
	r.MethodNotAllowedHandler = CORSMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "Method Not Allowed")
	}))

	// Create handlers
	systemHandler := &SystemHandler{}
	h := NewPortfolioHandler(store, v, rd, cfg.MaxBodyBytes)

	// Open endpoints
	r.HandleFunc("/version", systemHandler.VersionHandler(version, buildTime)).Methods("GET")
	r.HandleFunc("/health", systemHandler.HealthHandler).Methods("GET")

	// Routes are registered on the root router with the prefix spelled out.
	// A PathPrefix subrouter turns wrong-method requests into 404s.
	api := &prefixed{r: r, prefix: cfg.APIPrefix}

	// Profile endpoints
	api.HandleFunc("/profile", h.GetProfile).Methods("GET")
	api.HandleFunc("/profile", h.CreateProfile).Methods("POST")
	api.HandleFunc("/profile", h.UpsertProfile).Methods("PUT")

	// Project endpoints
	api.HandleFunc("/projects", h.ListProjects).Methods("GET")
	api.HandleFunc("/projects", h.CreateProject).Methods("POST")
	api.HandleFunc("/projects/{id:[0-9]+}", h.GetProject).Methods("GET")
	api.HandleFunc("/projects/{id:[0-9]+}", h.UpdateProject).Methods("PUT")
	api.HandleFunc("/projects/{id:[0-9]+}", h.DeleteProject).Methods("DELETE")

	// Skill endpoints
	api.HandleFunc("/skills", h.ListSkills).Methods("GET")
	api.HandleFunc("/skills", h.CreateSkill).Methods("POST")
	api.HandleFunc("/skills/{id:[0-9]+}", h.GetSkill).Methods("GET")
	api.HandleFunc("/skills/{id:[0-9]+}", h.UpdateSkill).Methods("PUT")
	api.HandleFunc("/skills/{id:[0-9]+}", h.DeleteSkill).Methods("DELETE")

	// Experience endpoints
	api.HandleFunc("/experiences", h.ListExperiences).Methods("GET")
	api.HandleFunc("/experiences", h.CreateExperience).Methods("POST")
	api.HandleFunc("/experiences/{id:[0-9]+}", h.GetExperience).Methods("GET")
	api.HandleFunc("/experiences/{id:[0-9]+}", h.UpdateExperience).Methods("PUT")
	api.HandleFunc("/experiences/{id:[0-9]+}", h.DeleteExperience).Methods("DELETE")

	// Budget endpoints
	api.HandleFunc("/budget", h.ListBudgetRequests).Methods("GET")
	api.HandleFunc("/budget", h.CreateBudgetRequest).Methods("POST")

	// Export
	api.HandleFunc("/pdf", h.ExportPDF).Methods("GET")

	return r
}

type prefixed struct {
	r      *mux.Router
	prefix string
}

func (p *prefixed) HandleFunc(path string, f func(http.ResponseWriter, *http.Request)) *mux.Route {
	return p.r.HandleFunc(p.prefix+path, f)
}
