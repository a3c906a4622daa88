package repository

import (
	"context"
	"errors"

	"github.com/garnizeh/portfolio/pkg/models"
)

// Repository interfaces for domain entities. These are the public contracts
// consumers should depend on; concrete implementations live under internal/.

// ErrNotFound is matched by every NotFoundError.
var ErrNotFound = errors.New("not found")

// ErrProfileNameRequired is returned when a profile would be created
// without a name.
var ErrProfileNameRequired = errors.New("name is required to create a profile")

// NotFoundError reports a missing row of a given entity.
type NotFoundError struct {
	Entity string
	ID     int64
}

func (e *NotFoundError) Error() string {
	switch e.Entity {
	case EntityProject:
		return "Projeto não encontrado"
	case EntitySkill:
		return "Skill não encontrada"
	case EntityExperience:
		return "Experiência não encontrada"
	case EntityProfile:
		return "Perfil não encontrado"
	}
	return e.Entity + " not found"
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

const (
	EntityProfile    = "profile"
	EntityProject    = "project"
	EntitySkill      = "skill"
	EntityExperience = "experience"
	EntityBudget     = "budget_request"
)

type ProfileRepo interface {
	// First returns the profile row with the lowest id, or nil when none exists.
	First(ctx context.Context) (*models.Profile, error)
	CreateProfile(ctx context.Context, p models.ProfilePatch) (*models.Profile, error)
	// UpsertProfile merges p into the first profile, creating one when absent.
	UpsertProfile(ctx context.Context, p models.ProfilePatch) (*models.Profile, error)
}

type ProjectRepo interface {
	ListProjects(ctx context.Context) ([]models.Project, error)
	GetProject(ctx context.Context, id int64) (*models.Project, error)
	// FindProjectByTitle returns nil when no project has the exact title.
	FindProjectByTitle(ctx context.Context, title string) (*models.Project, error)
	CreateProject(ctx context.Context, p models.ProjectPatch) (*models.Project, error)
	UpdateProject(ctx context.Context, id int64, p models.ProjectPatch) (*models.Project, error)
	DeleteProject(ctx context.Context, id int64) error
}

type SkillRepo interface {
	ListSkills(ctx context.Context) ([]models.Skill, error)
	GetSkill(ctx context.Context, id int64) (*models.Skill, error)
	CreateSkill(ctx context.Context, s models.SkillPatch) (*models.Skill, error)
	UpdateSkill(ctx context.Context, id int64, s models.SkillPatch) (*models.Skill, error)
	DeleteSkill(ctx context.Context, id int64) error
}

type ExperienceRepo interface {
	ListExperiences(ctx context.Context) ([]models.Experience, error)
	GetExperience(ctx context.Context, id int64) (*models.Experience, error)
	CreateExperience(ctx context.Context, e models.ExperiencePatch) (*models.Experience, error)
	UpdateExperience(ctx context.Context, id int64, e models.ExperiencePatch) (*models.Experience, error)
	DeleteExperience(ctx context.Context, id int64) error
}

type BudgetRepo interface {
	CreateBudgetRequest(ctx context.Context, in models.BudgetRequestInput) (*models.BudgetRequest, error)
	// ListBudgetRequests returns requests newest first.
	ListBudgetRequests(ctx context.Context) ([]models.BudgetRequest, error)
}

// Repos groups the repositories bound to a single unit of work.
type Repos struct {
	Profiles    ProfileRepo
	Projects    ProjectRepo
	Skills      SkillRepo
	Experiences ExperienceRepo
	Budgets     BudgetRepo
}

// Store runs fn inside one unit of work. The work is committed when fn
// returns nil and rolled back otherwise.
type Store interface {
	Tx(ctx context.Context, fn func(r Repos) error) error
}
