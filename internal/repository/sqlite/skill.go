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

const skillTable = "skill"

var skillColumns = []string{"id", "name", "level", "category"}

func scanSkill(s scanner) (*models.Skill, error) {
	var sk models.Skill
	if err := s.Scan(&sk.ID, &sk.Name, &sk.Level, &sk.Category); err != nil {
		return nil, err
	}
	return &sk, nil
}

func skillValues(s *models.Skill) map[string]any {
	return map[string]any{
		"name":     s.Name,
		"level":    s.Level,
		"category": s.Category,
	}
}

func (r *SQLiteRepo) ListSkills(ctx context.Context) ([]models.Skill, error) {
	rows, err := r.query(ctx, sq.Select(skillColumns...).From(skillTable).OrderBy("id"))
	if err != nil {
		return nil, fmt.Errorf("list skills: %w", err)
	}
	return scanList(rows, scanSkill)
}

func (r *SQLiteRepo) GetSkill(ctx context.Context, id int64) (*models.Skill, error) {
	row, err := r.queryRow(ctx, sq.Select(skillColumns...).From(skillTable).Where(sq.Eq{"id": id}))
	if err != nil {
		return nil, err
	}
	s, err := scanSkill(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &repository.NotFoundError{Entity: repository.EntitySkill, ID: id}
		}
		return nil, fmt.Errorf("get skill %d: %w", id, err)
	}
	return s, nil
}

func (r *SQLiteRepo) CreateSkill(ctx context.Context, sp models.SkillPatch) (*models.Skill, error) {
	var s models.Skill
	sp.Apply(&s)

	id, err := r.insert(ctx, sq.Insert(skillTable).SetMap(skillValues(&s)))
	if err != nil {
		return nil, fmt.Errorf("insert skill: %w", err)
	}
	return r.GetSkill(ctx, id)
}

func (r *SQLiteRepo) UpdateSkill(ctx context.Context, id int64, sp models.SkillPatch) (*models.Skill, error) {
	s, err := r.GetSkill(ctx, id)
	if err != nil {
		return nil, err
	}

	sp.Apply(s)
	if _, err := r.exec(ctx, sq.Update(skillTable).SetMap(skillValues(s)).Where(sq.Eq{"id": id})); err != nil {
		return nil, fmt.Errorf("update skill %d: %w", id, err)
	}
	return r.GetSkill(ctx, id)
}

func (r *SQLiteRepo) DeleteSkill(ctx context.Context, id int64) error {
	return r.deleteByID(ctx, skillTable, repository.EntitySkill, id)
}
