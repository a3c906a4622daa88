package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/garnizeh/portfolio/pkg/models"
	"github.com/garnizeh/portfolio/pkg/repository"
)

const projectTable = "project"

var projectColumns = []string{"id", "title", "description", "url", "repo_url", "tags"}

func scanProject(s scanner) (*models.Project, error) {
	var p models.Project
	if err := s.Scan(&p.ID, &p.Title, &p.Description, &p.URL, &p.RepoURL, &p.Tags); err != nil {
		return nil, err
	}
	return &p, nil
}

func projectValues(p *models.Project) map[string]any {
	return map[string]any{
		"title":       p.Title,
		"description": p.Description,
		"url":         p.URL,
		"repo_url":    p.RepoURL,
		"tags":        p.Tags,
	}
}

func (r *SQLiteRepo) ListProjects(ctx context.Context) ([]models.Project, error) {
	rows, err := r.query(ctx, sq.Select(projectColumns...).From(projectTable).OrderBy("id"))
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return scanList(rows, scanProject)
}

func (r *SQLiteRepo) GetProject(ctx context.Context, id int64) (*models.Project, error) {
	row, err := r.queryRow(ctx, sq.Select(projectColumns...).From(projectTable).Where(sq.Eq{"id": id}))
	if err != nil {
		return nil, err
	}
	p, err := scanProject(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &repository.NotFoundError{Entity: repository.EntityProject, ID: id}
		}
		return nil, fmt.Errorf("get project %d: %w", id, err)
	}
	return p, nil
}

func (r *SQLiteRepo) FindProjectByTitle(ctx context.Context, title string) (*models.Project, error) {
	row, err := r.queryRow(ctx, sq.Select(projectColumns...).From(projectTable).Where(sq.Eq{"title": title}).OrderBy("id").Limit(1))
	if err != nil {
		return nil, err
	}
	p, err := scanProject(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find project %q: %w", title, err)
	}
	return p, nil
}

func (r *SQLiteRepo) CreateProject(ctx context.Context, pp models.ProjectPatch) (*models.Project, error) {
	var p models.Project
	pp.Apply(&p)

	id, err := r.insert(ctx, sq.Insert(projectTable).SetMap(projectValues(&p)))
	if err != nil {
		return nil, fmt.Errorf("insert project: %w", err)
	}
	return r.GetProject(ctx, id)
}

func (r *SQLiteRepo) UpdateProject(ctx context.Context, id int64, pp models.ProjectPatch) (*models.Project, error) {
	p, err := r.GetProject(ctx, id)
	if err != nil {
		return nil, err
	}

	pp.Apply(p)
	if _, err := r.exec(ctx, sq.Update(projectTable).SetMap(projectValues(p)).Where(sq.Eq{"id": id})); err != nil {
		return nil, fmt.Errorf("update project %d: %w", id, err)
	}
	return r.GetProject(ctx, id)
}

func (r *SQLiteRepo) DeleteProject(ctx context.Context, id int64) error {
	return r.deleteByID(ctx, projectTable, repository.EntityProject, id)
}
