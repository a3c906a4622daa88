package models_test

import (
	"encoding/json"
	"testing"

	"github.com/garnizeh/portfolio/pkg/models"
)

func TestProjectPatch_DecodeMarksPresentKeys(t *testing.T) {
	var p models.ProjectPatch
	if err := json.Unmarshal([]byte(`{"title":"A","url":null}`), &p); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !p.Title.Set || p.Title.Value != "A" {
		t.Fatalf("expected title set to A, got %#v", p.Title)
	}
	if !p.URL.Set || p.URL.Value != nil {
		t.Fatalf("expected url set to null, got %#v", p.URL)
	}
	if p.Description.Set || p.Tags.Set || p.RepoURL.Set {
		t.Fatalf("absent keys must not be marked set: %#v", p)
	}
}

func TestProjectPatch_ApplyLeavesAbsentFields(t *testing.T) {
	dst := models.Project{
		ID:          7,
		Title:       "Old",
		Description: models.Ptr("keep me"),
		URL:         models.Ptr("https://old.example"),
	}

	var p models.ProjectPatch
	if err := json.Unmarshal([]byte(`{"title":"New","url":null}`), &p); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	p.Apply(&dst)

	if dst.ID != 7 {
		t.Fatalf("id changed: %d", dst.ID)
	}
	if dst.Title != "New" {
		t.Fatalf("title not applied: %q", dst.Title)
	}
	if dst.URL != nil {
		t.Fatalf("explicit null should clear url, got %q", *dst.URL)
	}
	if dst.Description == nil || *dst.Description != "keep me" {
		t.Fatalf("description should be untouched, got %v", dst.Description)
	}
}

func TestExperiencePatch_Dates(t *testing.T) {
	var p models.ExperiencePatch
	body := `{"role":"Engineer","company":"Acme","start_date":"2020-01-01"}`
	if err := json.Unmarshal([]byte(body), &p); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	var e models.Experience
	p.Apply(&e)
	if e.StartDate == nil || e.StartDate.String() != "2020-01-01" {
		t.Fatalf("unexpected start date: %v", e.StartDate)
	}
	if !e.Ongoing() {
		t.Fatalf("experience without end date should be ongoing")
	}

	if err := json.Unmarshal([]byte(`{"start_date":"2020-13-40"}`), &p); err == nil {
		t.Fatalf("expected error for invalid calendar date")
	}
}

func TestDate_JSONRoundTrip(t *testing.T) {
	d := models.MustDate("2021-06-30")
	b, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `"2021-06-30"` {
		t.Fatalf("unexpected encoding %s", b)
	}

	var back models.Date
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !back.Equal(d.Time) {
		t.Fatalf("round trip mismatch: %v vs %v", back, d)
	}
}
