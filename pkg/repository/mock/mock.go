package mock

import (
	"context"

	"github.com/garnizeh/portfolio/pkg/models"
	"github.com/garnizeh/portfolio/pkg/repository"
)

// Store is a repository.Store test double. When Err is set every unit of
// work fails with it before fn runs; otherwise fn receives Repos.
type Store struct {
	Repos repository.Repos
	Err   error
	Calls int
}

func (s *Store) Tx(ctx context.Context, fn func(r repository.Repos) error) error {
	s.Calls++
	if s.Err != nil {
		return s.Err
	}
	return fn(s.Repos)
}

// ProjectRepo returns canned results for project calls.
type ProjectRepo struct {
	Projects []models.Project
	Err      error
}

func (m *ProjectRepo) ListProjects(ctx context.Context) ([]models.Project, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Projects, nil
}

func (m *ProjectRepo) GetProject(ctx context.Context, id int64) (*models.Project, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for i := range m.Projects {
		if m.Projects[i].ID == id {
			return &m.Projects[i], nil
		}
	}
	return nil, &repository.NotFoundError{Entity: repository.EntityProject, ID: id}
}

func (m *ProjectRepo) FindProjectByTitle(ctx context.Context, title string) (*models.Project, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for i := range m.Projects {
		if m.Projects[i].Title == title {
			return &m.Projects[i], nil
		}
	}
	return nil, nil
}

func (m *ProjectRepo) CreateProject(ctx context.Context, pp models.ProjectPatch) (*models.Project, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	p := models.Project{ID: int64(len(m.Projects) + 1)}
	pp.Apply(&p)
	m.Projects = append(m.Projects, p)
	return &p, nil
}

func (m *ProjectRepo) UpdateProject(ctx context.Context, id int64, pp models.ProjectPatch) (*models.Project, error) {
	p, err := m.GetProject(ctx, id)
	if err != nil {
		return nil, err
	}
	pp.Apply(p)
	return p, nil
}

func (m *ProjectRepo) DeleteProject(ctx context.Context, id int64) error {
	if m.Err != nil {
		return m.Err
	}
	for i := range m.Projects {
		if m.Projects[i].ID == id {
			m.Projects = append(m.Projects[:i], m.Projects[i+1:]...)
			return nil
		}
	}
	return &repository.NotFoundError{Entity: repository.EntityProject, ID: id}
}
