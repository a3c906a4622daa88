package pdf_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/garnizeh/portfolio/internal/pdf"
	"github.com/garnizeh/portfolio/pkg/models"
)

func texts(lines []pdf.Line) []string {
	var out []string
	for _, l := range lines {
		if l.Style == pdf.StyleSpacer {
			continue
		}
		out = append(out, l.String())
	}
	return out
}

func headings(lines []pdf.Line) []string {
	var out []string
	for _, l := range lines {
		if l.Style == pdf.StyleHeading {
			out = append(out, l.Text)
		}
	}
	return out
}

func TestLayout_EmptySnapshotHasNoSections(t *testing.T) {
	lines := pdf.Layout(pdf.Snapshot{})
	assert.Empty(t, headings(lines))
	assert.Empty(t, texts(lines))
}

func TestLayout_ProjectTitleWithTags(t *testing.T) {
	lines := pdf.Layout(pdf.Snapshot{
		Projects: []models.Project{{Title: "Site X", Tags: models.Ptr("web,design")}},
	})

	assert.Equal(t, []string{pdf.HeadingProjects}, headings(lines))
	assert.Equal(t, []string{"Projetos", "Site X — web,design"}, texts(lines))

	var strong []pdf.Line
	for _, l := range lines {
		if l.Style == pdf.StyleStrong {
			strong = append(strong, l)
		}
	}
	require.Len(t, strong, 1)
	assert.Equal(t, "Site X — web,design", strong[0].Text)
}

func TestLayout_ProjectLinksAndDescription(t *testing.T) {
	lines := pdf.Layout(pdf.Snapshot{
		Projects: []models.Project{{
			Title:       "Repo",
			Description: models.Ptr("a tool"),
			URL:         models.Ptr("https://a.example"),
			RepoURL:     models.Ptr("https://git.example/a"),
			Tags:        models.Ptr(""),
		}},
	})
	assert.Equal(t, []string{"Projetos", "Repo", "a tool", "url: https://a.example", "repo_url: https://git.example/a"}, texts(lines))
}

func TestLayout_ExperienceDates(t *testing.T) {
	start := models.MustDate("2020-01-01")
	end := models.MustDate("2021-12-31")

	cases := []struct {
		name  string
		exp   models.Experience
		dates string
	}{
		{name: "StartOnly", exp: models.Experience{StartDate: &start}, dates: "2020-01-01"},
		{name: "Both", exp: models.Experience{StartDate: &start, EndDate: &end}, dates: "2020-01-01 - 2021-12-31"},
		{name: "EndOnly", exp: models.Experience{EndDate: &end}, dates: " - 2021-12-31"},
		{name: "Neither", exp: models.Experience{}, dates: ""},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.dates, pdf.ExperienceDates(c.exp))
		})
	}
}

func TestLayout_ExperienceLine(t *testing.T) {
	start := models.MustDate("2020-01-01")
	lines := pdf.Layout(pdf.Snapshot{
		Experiences: []models.Experience{
			{Role: "Engineer", Company: "Acme", StartDate: &start},
			{Role: "Intern", Company: "Beta", Description: models.Ptr("learned a lot")},
		},
	})

	assert.Equal(t, []string{
		"Experiência",
		"Engineer — Acme 2020-01-01",
		"Intern — Beta ",
		"learned a lot",
	}, texts(lines))

	for _, l := range lines {
		if l.String() == "Engineer — Acme 2020-01-01" {
			assert.Equal(t, "Engineer", l.Label, "role is drawn bold")
		}
	}
}

func TestLayout_SkillsKeepSeparators(t *testing.T) {
	lines := pdf.Layout(pdf.Snapshot{
		Skills: []models.Skill{
			{Name: "Go", Level: models.Ptr("Expert"), Category: models.Ptr("Backend")},
			{Name: "CSS"},
		},
	})
	assert.Equal(t, []string{"Skills", "Go — Expert (Backend)", "CSS —  ()"}, texts(lines))
}

func TestLayout_ProfileAndContacts(t *testing.T) {
	lines := pdf.Layout(pdf.Snapshot{
		Profile: &models.Profile{
			Name:     "Ana",
			Title:    models.Ptr("Dev"),
			Bio:      models.Ptr("Writes Go."),
			Email:    models.Ptr("ana@example.com"),
			LinkedIn: models.Ptr("in/ana"),
			GitHub:   models.Ptr(""),
		},
	})

	assert.Equal(t, []string{
		"Ana",
		"Dev",
		"Writes Go.",
		"Contato",
		"Email: ana@example.com",
		"Linkedin: in/ana",
	}, texts(lines))
	assert.Equal(t, pdf.StyleTitle, lines[0].Style)
	assert.Equal(t, pdf.StyleSubheading, lines[1].Style)
}

func TestLayout_ProfileWithoutContactsOmitsHeading(t *testing.T) {
	lines := pdf.Layout(pdf.Snapshot{Profile: &models.Profile{Name: "Ana"}})
	assert.Empty(t, headings(lines))
	assert.Equal(t, []string{"Ana"}, texts(lines))
}

func TestLayout_EmptyNameHasNoTitleLine(t *testing.T) {
	lines := pdf.Layout(pdf.Snapshot{Profile: &models.Profile{Name: "", Title: models.Ptr("Dev")}})
	for _, l := range lines {
		assert.NotEqual(t, pdf.StyleTitle, l.Style, "unexpected title line %q", l.Text)
	}
	assert.Equal(t, []string{"Dev"}, texts(lines))

	assert.Empty(t, pdf.Layout(pdf.Snapshot{Profile: &models.Profile{}}))
}

func TestLayout_SectionOrderAndInputOrder(t *testing.T) {
	lines := pdf.Layout(pdf.Snapshot{
		Profile:     &models.Profile{Name: "Ana", Phone: models.Ptr("123")},
		Projects:    []models.Project{{Title: "Zeta"}, {Title: "Alpha"}},
		Skills:      []models.Skill{{Name: "Go"}},
		Experiences: []models.Experience{{Role: "R", Company: "C"}},
	})

	assert.Equal(t, []string{"Contato", "Skills", "Experiência", "Projetos"}, headings(lines))

	var projects []string
	for _, l := range lines {
		if l.Style == pdf.StyleStrong {
			projects = append(projects, l.Text)
		}
	}
	assert.Equal(t, []string{"Zeta", "Alpha"}, projects)
}
