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

const experienceTable = "experience"

var experienceColumns = []string{"id", "role", "company", "start_date", "end_date", "description", "location"}

func scanExperience(s scanner) (*models.Experience, error) {
	var e models.Experience
	if err := s.Scan(&e.ID, &e.Role, &e.Company, &e.StartDate, &e.EndDate, &e.Description, &e.Location); err != nil {
		return nil, err
	}
	return &e, nil
}

func experienceValues(e *models.Experience) map[string]any {
	return map[string]any{
		"role":        e.Role,
		"company":     e.Company,
		"start_date":  e.StartDate,
		"end_date":    e.EndDate,
		"description": e.Description,
		"location":    e.Location,
	}
}

func (r *SQLiteRepo) ListExperiences(ctx context.Context) ([]models.Experience, error) {
	rows, err := r.query(ctx, sq.Select(experienceColumns...).From(experienceTable).OrderBy("id"))
	if err != nil {
		return nil, fmt.Errorf("list experiences: %w", err)
	}
	return scanList(rows, scanExperience)
}

func (r *SQLiteRepo) GetExperience(ctx context.Context, id int64) (*models.Experience, error) {
	row, err := r.queryRow(ctx, sq.Select(experienceColumns...).From(experienceTable).Where(sq.Eq{"id": id}))
	if err != nil {
		return nil, err
	}
	e, err := scanExperience(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &repository.NotFoundError{Entity: repository.EntityExperience, ID: id}
		}
		return nil, fmt.Errorf("get experience %d: %w", id, err)
	}
	return e, nil
}

func (r *SQLiteRepo) CreateExperience(ctx context.Context, ep models.ExperiencePatch) (*models.Experience, error) {
	var e models.Experience
	ep.Apply(&e)

	id, err := r.insert(ctx, sq.Insert(experienceTable).SetMap(experienceValues(&e)))
	if err != nil {
		return nil, fmt.Errorf("insert experience: %w", err)
	}
	return r.GetExperience(ctx, id)
}

func (r *SQLiteRepo) UpdateExperience(ctx context.Context, id int64, ep models.ExperiencePatch) (*models.Experience, error) {
	e, err := r.GetExperience(ctx, id)
	if err != nil {
		return nil, err
	}

	ep.Apply(e)
	if _, err := r.exec(ctx, sq.Update(experienceTable).SetMap(experienceValues(e)).Where(sq.Eq{"id": id})); err != nil {
		return nil, fmt.Errorf("update experience %d: %w", id, err)
	}
	return r.GetExperience(ctx, id)
}

func (r *SQLiteRepo) DeleteExperience(ctx context.Context, id int64) error {
	return r.deleteByID(ctx, experienceTable, repository.EntityExperience, id)
}
