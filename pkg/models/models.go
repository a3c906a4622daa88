package models

import "time"

// Domain models matching the database schema in db/migrations/0001_init.sql.
// Optional columns are pointers and serialize as null when absent.

type Profile struct {
	ID       int64   `json:"id" db:"id"`
	Name     string  `json:"name" db:"name"`
	Title    *string `json:"title" db:"title"`
	Bio      *string `json:"bio" db:"bio"`
	Email    *string `json:"email" db:"email"`
	Phone    *string `json:"phone" db:"phone"`
	Location *string `json:"location" db:"location"`
	Website  *string `json:"website" db:"website"`
	LinkedIn *string `json:"linkedin" db:"linkedin"`
	GitHub   *string `json:"github" db:"github"`
}

type Project struct {
	ID          int64   `json:"id" db:"id"`
	Title       string  `json:"title" db:"title"`
	Description *string `json:"description" db:"description"`
	URL         *string `json:"url" db:"url"`
	RepoURL     *string `json:"repo_url" db:"repo_url"`
	// Tags is a comma separated list, kept as entered.
	Tags *string `json:"tags" db:"tags"`
}

type Experience struct {
	ID          int64   `json:"id" db:"id"`
	Role        string  `json:"role" db:"role"`
	Company     string  `json:"company" db:"company"`
	StartDate   *Date   `json:"start_date" db:"start_date"`
	EndDate     *Date   `json:"end_date" db:"end_date"`
	Description *string `json:"description" db:"description"`
	Location    *string `json:"location" db:"location"`
}

// Ongoing reports whether the experience has no end date.
func (e Experience) Ongoing() bool { return e.EndDate == nil }

type Skill struct {
	ID       int64   `json:"id" db:"id"`
	Name     string  `json:"name" db:"name"`
	Level    *string `json:"level" db:"level"`
	Category *string `json:"category" db:"category"`
}

type BudgetRequest struct {
	ID              int64     `json:"id" db:"id"`
	CompanyName     *string   `json:"company_name" db:"company_name"`
	ContactName     *string   `json:"contact_name" db:"contact_name"`
	Email           *string   `json:"email" db:"email"`
	Phone           *string   `json:"phone" db:"phone"`
	ProjectName     string    `json:"project_name" db:"project_name"`
	ProjectSummary  string    `json:"project_summary" db:"project_summary"`
	ScopeFeatures   *string   `json:"scope_features" db:"scope_features"`
	TargetPlatforms *string   `json:"target_platforms" db:"target_platforms"`
	DeadlineWeeks   *int64    `json:"deadline_weeks" db:"deadline_weeks"`
	BudgetRange     *string   `json:"budget_range" db:"budget_range"`
	Attachments     *string   `json:"attachments" db:"attachments"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
}

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T { return &v }
