package domain

import "time"

// UnknownField is the default for absent module codes and titles.
// Missing fields are never an error; the pipeline is permissive by contract.
const UnknownField = "Unknown"

// Module is a university module as scraped from a catalogue.
// It is immutable input to the pipeline; ExtractedSkills is the only
// field the pipeline fills in, on its own enriched copy.
type Module struct {
	// Code is the catalogue code, e.g. "COMP10010".
	Code string `json:"code"`

	// URL is the catalogue page the module was scraped from.
	URL string `json:"url,omitempty"`

	// Title is the human-readable module title.
	Title string `json:"title"`

	// Description is the catalogue description text.
	Description string `json:"description,omitempty"`

	// LearningOutcomes are the outcome statements, in catalogue order.
	LearningOutcomes []string `json:"learning_outcomes"`

	// Syllabus is the free-text syllabus section, when present.
	Syllabus string `json:"syllabus,omitempty"`

	// Assessment is the free-text assessment section, when present.
	Assessment string `json:"assessment,omitempty"`

	// Credits is the module's credit value (0 = unknown).
	Credits int `json:"credits"`

	// Level is the coarse academic-year indicator (0 = unknown).
	Level int `json:"level"`

	// Coordinator is the module coordinator's name, when present.
	Coordinator string `json:"coordinator,omitempty"`

	// ExtractedSkills holds the skill records produced for this module,
	// preserving outcome order then rule order. Empty until extraction.
	ExtractedSkills []Skill `json:"extracted_skills,omitempty"`
}

// Normalised returns a copy with absent required fields defaulted:
// code and title fall back to "Unknown", outcomes to an empty sequence.
func (m Module) Normalised() Module {
	if m.Code == "" {
		m.Code = UnknownField
	}
	if m.Title == "" {
		m.Title = UnknownField
	}
	if m.LearningOutcomes == nil {
		m.LearningOutcomes = []string{}
	}
	return m
}

// HasOutcomes reports whether the module carries any learning outcomes.
// Modules without outcomes are skipped by extraction, not rejected.
func (m Module) HasOutcomes() bool {
	return len(m.LearningOutcomes) > 0
}

// ScrapeRun records one pass over the catalogue.
type ScrapeRun struct {
	// ID uniquely identifies the run.
	ID string `json:"id"`

	// Term is the academic term code the run targeted.
	Term string `json:"term"`

	// StartedAt is when the run began.
	StartedAt time.Time `json:"started_at"`

	// FinishedAt is when the run completed.
	FinishedAt time.Time `json:"finished_at"`

	// ModulesFound is the number of modules the run discovered.
	ModulesFound int `json:"modules_found"`
}
