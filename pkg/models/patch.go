package models

import (
	"encoding/json"
	"time"
)

// Field is one member of a patch. Set is true when the key was present in
// the decoded payload, including an explicit null.
type Field[T any] struct {
	Set   bool
	Value T
}

// Some returns a set field holding v.
func Some[T any](v T) Field[T] {
	return Field[T]{Set: true, Value: v}
}

func (f *Field[T]) UnmarshalJSON(b []byte) error {
	f.Set = true
	return json.Unmarshal(b, &f.Value)
}

func (f Field[T]) applyTo(dst *T) {
	if f.Set {
		*dst = f.Value
	}
}

// ProfilePatch carries the fields of a profile create or update payload.
type ProfilePatch struct {
	Name     Field[string]  `json:"name"`
	Title    Field[*string] `json:"title"`
	Bio      Field[*string] `json:"bio"`
	Email    Field[*string] `json:"email"`
	Phone    Field[*string] `json:"phone"`
	Location Field[*string] `json:"location"`
	Website  Field[*string] `json:"website"`
	LinkedIn Field[*string] `json:"linkedin"`
	GitHub   Field[*string] `json:"github"`
}

// Apply copies the set fields of the patch onto p.
func (pp ProfilePatch) Apply(p *Profile) {
	pp.Name.applyTo(&p.Name)
	pp.Title.applyTo(&p.Title)
	pp.Bio.applyTo(&p.Bio)
	pp.Email.applyTo(&p.Email)
	pp.Phone.applyTo(&p.Phone)
	pp.Location.applyTo(&p.Location)
	pp.Website.applyTo(&p.Website)
	pp.LinkedIn.applyTo(&p.LinkedIn)
	pp.GitHub.applyTo(&p.GitHub)
}

type ProjectPatch struct {
	Title       Field[string]  `json:"title"`
	Description Field[*string] `json:"description"`
	URL         Field[*string] `json:"url"`
	RepoURL     Field[*string] `json:"repo_url"`
	Tags        Field[*string] `json:"tags"`
}

func (pp ProjectPatch) Apply(p *Project) {
	pp.Title.applyTo(&p.Title)
	pp.Description.applyTo(&p.Description)
	pp.URL.applyTo(&p.URL)
	pp.RepoURL.applyTo(&p.RepoURL)
	pp.Tags.applyTo(&p.Tags)
}

type ExperiencePatch struct {
	Role        Field[string]  `json:"role"`
	Company     Field[string]  `json:"company"`
	StartDate   Field[*Date]   `json:"start_date"`
	EndDate     Field[*Date]   `json:"end_date"`
	Description Field[*string] `json:"description"`
	Location    Field[*string] `json:"location"`
}

func (ep ExperiencePatch) Apply(e *Experience) {
	ep.Role.applyTo(&e.Role)
	ep.Company.applyTo(&e.Company)
	ep.StartDate.applyTo(&e.StartDate)
	ep.EndDate.applyTo(&e.EndDate)
	ep.Description.applyTo(&e.Description)
	ep.Location.applyTo(&e.Location)
}

type SkillPatch struct {
	Name     Field[string]  `json:"name"`
	Level    Field[*string] `json:"level"`
	Category Field[*string] `json:"category"`
}

func (sp SkillPatch) Apply(s *Skill) {
	sp.Name.applyTo(&s.Name)
	sp.Level.applyTo(&s.Level)
	sp.Category.applyTo(&s.Category)
}

// BudgetRequestInput is the visitor supplied part of a budget request.
// Budget requests are never updated, so there is no patch form.
type BudgetRequestInput struct {
	CompanyName     *string `json:"company_name"`
	ContactName     *string `json:"contact_name"`
	Email           *string `json:"email"`
	Phone           *string `json:"phone"`
	ProjectName     string  `json:"project_name"`
	ProjectSummary  string  `json:"project_summary"`
	ScopeFeatures   *string `json:"scope_features"`
	TargetPlatforms *string `json:"target_platforms"`
	DeadlineWeeks   *int64  `json:"deadline_weeks"`
	BudgetRange     *string `json:"budget_range"`
	Attachments     *string `json:"attachments"`
}

// Build returns the request to store, stamped with createdAt.
func (in BudgetRequestInput) Build(createdAt time.Time) BudgetRequest {
	return BudgetRequest{
		CompanyName:     in.CompanyName,
		ContactName:     in.ContactName,
		Email:           in.Email,
		Phone:           in.Phone,
		ProjectName:     in.ProjectName,
		ProjectSummary:  in.ProjectSummary,
		ScopeFeatures:   in.ScopeFeatures,
		TargetPlatforms: in.TargetPlatforms,
		DeadlineWeeks:   in.DeadlineWeeks,
		BudgetRange:     in.BudgetRange,
		Attachments:     in.Attachments,
		CreatedAt:       createdAt,
	}
}
