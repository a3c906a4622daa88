// Package seed loads the initial portfolio content shipped with the binary.
package seed

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"

	"gopkg.in/yaml.v3"

	dbfs "github.com/garnizeh/portfolio/db"
	"github.com/garnizeh/portfolio/pkg/models"
	"github.com/garnizeh/portfolio/pkg/repository"
)

// DefaultFile is the seed document embedded under db/seed.
const DefaultFile = "seed/portfolio.yaml"

type profileDoc struct {
	Name     string  `yaml:"name"`
	Title    *string `yaml:"title"`
	Bio      *string `yaml:"bio"`
	Email    *string `yaml:"email"`
	Phone    *string `yaml:"phone"`
	Location *string `yaml:"location"`
	Website  *string `yaml:"website"`
	LinkedIn *string `yaml:"linkedin"`
	GitHub   *string `yaml:"github"`
}

type projectDoc struct {
	Title       string  `yaml:"title"`
	Description *string `yaml:"description"`
	URL         *string `yaml:"url"`
	RepoURL     *string `yaml:"repo_url"`
	Tags        *string `yaml:"tags"`
}

// Document is the parsed form of a seed file.
type Document struct {
	Profile  *profileDoc  `yaml:"profile"`
	Projects []projectDoc `yaml:"projects"`
}

// Result counts what a run changed.
type Result struct {
	ProfileWritten  bool
	ProjectsCreated int
	ProjectsUpdated int
}

// Parse decodes a seed document.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse seed: %w", err)
	}
	for i, p := range doc.Projects {
		if p.Title == "" {
			return nil, fmt.Errorf("parse seed: project %d has no title", i)
		}
	}
	return &doc, nil
}

// Load reads and parses name from fsys.
func Load(fsys fs.FS, name string) (*Document, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("read seed %s: %w", name, err)
	}
	return Parse(data)
}

// Run upserts the profile and ensures every project exists, matched by
// title. Existing projects get their description, url and tags rewritten
// from the document; repo_url is only touched when the document sets it.
// Running it twice leaves the data unchanged.
func Run(ctx context.Context, store repository.Store, doc *Document, logger *slog.Logger) (Result, error) {
	var res Result
	err := store.Tx(ctx, func(r repository.Repos) error {
		res = Result{}
		if doc.Profile != nil {
			if _, err := r.Profiles.UpsertProfile(ctx, doc.Profile.patch()); err != nil {
				return fmt.Errorf("seed profile: %w", err)
			}
			res.ProfileWritten = true
		}

		for _, p := range doc.Projects {
			existing, err := r.Projects.FindProjectByTitle(ctx, p.Title)
			if err != nil {
				return fmt.Errorf("seed project %q: %w", p.Title, err)
			}
			if existing != nil {
				if _, err := r.Projects.UpdateProject(ctx, existing.ID, p.patch()); err != nil {
					return fmt.Errorf("seed project %q: %w", p.Title, err)
				}
				res.ProjectsUpdated++
				continue
			}
			if _, err := r.Projects.CreateProject(ctx, p.patch()); err != nil {
				return fmt.Errorf("seed project %q: %w", p.Title, err)
			}
			res.ProjectsCreated++
		}
		return nil
	})
	if err != nil {
		return Result{}, err
	}

	if logger != nil {
		logger.Info("seed applied",
			"profile", res.ProfileWritten,
			"projects_created", res.ProjectsCreated,
			"projects_updated", res.ProjectsUpdated,
		)
	}
	return res, nil
}

// RunDefault seeds from the embedded document.
func RunDefault(ctx context.Context, store repository.Store, logger *slog.Logger) (Result, error) {
	doc, err := Load(dbfs.SeedFiles, DefaultFile)
	if err != nil {
		return Result{}, err
	}
	return Run(ctx, store, doc, logger)
}

// opt leaves fields the document omits untouched on upsert.
func opt(v *string) models.Field[*string] {
	if v == nil {
		return models.Field[*string]{}
	}
	return models.Some(v)
}

func (p *profileDoc) patch() models.ProfilePatch {
	return models.ProfilePatch{
		Name:     models.Some(p.Name),
		Title:    opt(p.Title),
		Bio:      opt(p.Bio),
		Email:    opt(p.Email),
		Phone:    opt(p.Phone),
		Location: opt(p.Location),
		Website:  opt(p.Website),
		LinkedIn: opt(p.LinkedIn),
		GitHub:   opt(p.GitHub),
	}
}

func (p projectDoc) patch() models.ProjectPatch {
	return models.ProjectPatch{
		Title:       models.Some(p.Title),
		Description: models.Some(p.Description),
		URL:         models.Some(p.URL),
		RepoURL:     opt(p.RepoURL),
		Tags:        models.Some(p.Tags),
	}
}
