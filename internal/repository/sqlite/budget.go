package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/garnizeh/portfolio/pkg/models"
	"github.com/garnizeh/portfolio/pkg/repository"
)

const budgetTable = "budgetrequest"

var budgetColumns = []string{
	"id", "company_name", "contact_name", "email", "phone", "project_name", "project_summary",
	"scope_features", "target_platforms", "deadline_weeks", "budget_range", "attachments", "created_at",
}

// created_at is stored as unix microseconds.
func scanBudgetRequest(s scanner) (*models.BudgetRequest, error) {
	var b models.BudgetRequest
	var created int64
	if err := s.Scan(&b.ID, &b.CompanyName, &b.ContactName, &b.Email, &b.Phone, &b.ProjectName, &b.ProjectSummary,
		&b.ScopeFeatures, &b.TargetPlatforms, &b.DeadlineWeeks, &b.BudgetRange, &b.Attachments, &created); err != nil {
		return nil, err
	}
	b.CreatedAt = time.UnixMicro(created).UTC()
	return &b, nil
}

func (r *SQLiteRepo) CreateBudgetRequest(ctx context.Context, in models.BudgetRequestInput) (*models.BudgetRequest, error) {
	b := in.Build(r.now())

	id, err := r.insert(ctx, sq.Insert(budgetTable).SetMap(map[string]any{
		"company_name":     b.CompanyName,
		"contact_name":     b.ContactName,
		"email":            b.Email,
		"phone":            b.Phone,
		"project_name":     b.ProjectName,
		"project_summary":  b.ProjectSummary,
		"scope_features":   b.ScopeFeatures,
		"target_platforms": b.TargetPlatforms,
		"deadline_weeks":   b.DeadlineWeeks,
		"budget_range":     b.BudgetRange,
		"attachments":      b.Attachments,
		"created_at":       b.CreatedAt.UnixMicro(),
	}))
	if err != nil {
		return nil, fmt.Errorf("insert budget request: %w", err)
	}

	row, err := r.queryRow(ctx, sq.Select(budgetColumns...).From(budgetTable).Where(sq.Eq{"id": id}))
	if err != nil {
		return nil, err
	}
	stored, err := scanBudgetRequest(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &repository.NotFoundError{Entity: repository.EntityBudget, ID: id}
		}
		return nil, fmt.Errorf("reload budget request %d: %w", id, err)
	}
	return stored, nil
}

// ListBudgetRequests orders by created_at, newest first; rows sharing a
// timestamp fall back to insertion order, newest first.
func (r *SQLiteRepo) ListBudgetRequests(ctx context.Context) ([]models.BudgetRequest, error) {
	rows, err := r.query(ctx, sq.Select(budgetColumns...).From(budgetTable).OrderBy("created_at DESC", "id DESC"))
	if err != nil {
		return nil, fmt.Errorf("list budget requests: %w", err)
	}
	return scanList(rows, scanBudgetRequest)
}
