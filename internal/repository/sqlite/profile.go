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

const profileTable = "profile"

var profileColumns = []string{"id", "name", "title", "bio", "email", "phone", "location", "website", "linkedin", "github"}

func scanProfile(s scanner) (*models.Profile, error) {
	var p models.Profile
	if err := s.Scan(&p.ID, &p.Name, &p.Title, &p.Bio, &p.Email, &p.Phone, &p.Location, &p.Website, &p.LinkedIn, &p.GitHub); err != nil {
		return nil, err
	}
	return &p, nil
}

func profileValues(p *models.Profile) map[string]any {
	return map[string]any{
		"name":     p.Name,
		"title":    p.Title,
		"bio":      p.Bio,
		"email":    p.Email,
		"phone":    p.Phone,
		"location": p.Location,
		"website":  p.Website,
		"linkedin": p.LinkedIn,
		"github":   p.GitHub,
	}
}

func (r *SQLiteRepo) First(ctx context.Context) (*models.Profile, error) {
	row, err := r.queryRow(ctx, sq.Select(profileColumns...).From(profileTable).OrderBy("id").Limit(1))
	if err != nil {
		return nil, err
	}
	p, err := scanProfile(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("load profile: %w", err)
	}
	return p, nil
}

func (r *SQLiteRepo) getProfile(ctx context.Context, id int64) (*models.Profile, error) {
	row, err := r.queryRow(ctx, sq.Select(profileColumns...).From(profileTable).Where(sq.Eq{"id": id}))
	if err != nil {
		return nil, err
	}
	p, err := scanProfile(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &repository.NotFoundError{Entity: repository.EntityProfile, ID: id}
		}
		return nil, fmt.Errorf("load profile %d: %w", id, err)
	}
	return p, nil
}

// CreateProfile always inserts a new row, even when a profile exists.
func (r *SQLiteRepo) CreateProfile(ctx context.Context, pp models.ProfilePatch) (*models.Profile, error) {
	if !pp.Name.Set || pp.Name.Value == "" {
		return nil, repository.ErrProfileNameRequired
	}

	var p models.Profile
	pp.Apply(&p)

	id, err := r.insert(ctx, sq.Insert(profileTable).SetMap(profileValues(&p)))
	if err != nil {
		return nil, fmt.Errorf("insert profile: %w", err)
	}
	return r.getProfile(ctx, id)
}

func (r *SQLiteRepo) UpsertProfile(ctx context.Context, pp models.ProfilePatch) (*models.Profile, error) {
	existing, err := r.First(ctx)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return r.CreateProfile(ctx, pp)
	}

	pp.Apply(existing)
	if _, err := r.exec(ctx, sq.Update(profileTable).SetMap(profileValues(existing)).Where(sq.Eq{"id": existing.ID})); err != nil {
		return nil, fmt.Errorf("update profile %d: %w", existing.ID, err)
	}
	return r.getProfile(ctx, existing.ID)
}
