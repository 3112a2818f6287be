package milestones

import (
	"reflect"
	"testing"

	"strategy-backend/internal/analyses"
)

func fullDocuments() analyses.Documents {
	return analyses.Documents{
		analyses.DomainIntegration: {
			"integrations_analyse": map[string]any{
				"sprachliche_integration": map[string]any{"bedarf": "hoch"},
				"jobcenter_anbindung": map[string]any{
					"status":       "aktiv",
					"empfehlungen": []any{"Termin beim Jobcenter vereinbaren"},
				},
				"finanzielle_unterstützung": map[string]any{
					"bedarf":       true,
					"möglichkeiten": []any{"Wohngeld prüfen", "Kinderzuschlag prüfen"},
				},
			},
		},
		analyses.DomainSocial: {
			"soziale_analyse": map[string]any{
				"alleinerziehend": map[string]any{
					"situation":    "ja",
					"empfehlungen": []any{"Beratung für Alleinerziehende"},
				},
				"drogenabhängigkeit": map[string]any{
					"situation":    "in Behandlung",
					"empfehlungen": []any{"Suchtberatung fortführen"},
				},
				"wohnverhältnisse": map[string]any{
					"situation":    "beengt",
					"empfehlungen": []any{"Wohnungsamt kontaktieren"},
				},
			},
		},
		analyses.DomainEmployment: {
			"analysis": map[string]any{
				"employment_opportunities": []any{
					map[string]any{"tasks": []any{"Stellenanzeigen sichten"}},
				},
				"skill_gaps": []any{
					map[string]any{"skill": "Deutsch B2", "improvement_tasks": []any{"Kurs A"}},
				},
				"recommendations": []any{"Netzwerk aufbauen"},
			},
		},
	}
}

func TestExtractEmissionOrder(t *testing.T) {
	got := Extract(fullDocuments())

	wantTitles := []string{
		"Sprache & Aufenthalt klären",
		"Jobcenter & Finanzierung",
		"Finanzielle Unterstützung",
		"Kinderbetreuung & Wohnen sichern",
		"Gesundheit & Suchtberatung",
		"Wohnsituation verbessern",
		"Beruflicher Einstieg",
		"Qualifizierung: Deutsch B2",
		"Zusätzliche Empfehlungen",
	}
	if len(got) != len(wantTitles) {
		t.Fatalf("expected %d milestones, got %d: %#v", len(wantTitles), len(got), got)
	}
	for i, want := range wantTitles {
		if got[i].Title != want {
			t.Fatalf("milestone %d title = %q, want %q", i, got[i].Title, want)
		}
	}
}

func TestExtractDeterminism(t *testing.T) {
	docs := fullDocuments()
	first := Extract(docs)
	second := Extract(docs)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected deterministic extraction")
	}
}

func TestExtractLanguageMilestoneOnly(t *testing.T) {
	docs := analyses.Documents{
		analyses.DomainIntegration: {
			"integrations_analyse": map[string]any{
				"sprachliche_integration": map[string]any{"bedarf": "yes"},
			},
		},
		analyses.DomainSocial:     {},
		analyses.DomainEmployment: {},
	}

	got := Extract(docs)
	if len(got) != 1 {
		t.Fatalf("expected exactly one milestone, got %d", len(got))
	}
	m := got[0]
	if m.Title != "Sprache & Aufenthalt klären" {
		t.Fatalf("title = %q", m.Title)
	}
	if m.Parallel {
		t.Fatalf("language milestone must not be parallel")
	}
	if len(m.ToDos) != 2 {
		t.Fatalf("expected two to-dos, got %#v", m.ToDos)
	}
	if len(m.Optional) != 1 {
		t.Fatalf("expected one optional item, got %#v", m.Optional)
	}
}

func TestExtractSkillGapMilestone(t *testing.T) {
	docs := analyses.Documents{
		analyses.DomainEmployment: {
			"analysis": map[string]any{
				"skill_gaps": []any{
					map[string]any{"skill": "Deutsch B2", "improvement_tasks": []any{"Kurs A"}},
				},
			},
		},
	}

	got := Extract(docs)
	if len(got) != 1 {
		t.Fatalf("expected one milestone, got %d", len(got))
	}
	m := got[0]
	if m.Title != "Qualifizierung: Deutsch B2" {
		t.Fatalf("title = %q", m.Title)
	}
	if !m.Parallel {
		t.Fatalf("skill gap milestone must be parallel")
	}
	if !reflect.DeepEqual(m.ToDos, []string{"Kurs A"}) {
		t.Fatalf("to_dos = %#v", m.ToDos)
	}
}

func TestExtractSkillGapDefaultLabel(t *testing.T) {
	docs := analyses.Documents{
		analyses.DomainEmployment: {
			"analysis": map[string]any{
				"skill_gaps": []any{map[string]any{}},
			},
		},
	}
	got := Extract(docs)
	if len(got) != 1 || got[0].Title != "Qualifizierung: Skill Gap" {
		t.Fatalf("got %#v", got)
	}
}

func TestExtractSkipsBareStringDomain(t *testing.T) {
	docs := analyses.Documents{
		analyses.DomainIntegration: {"integrations_analyse": "not a mapping"},
		analyses.DomainSocial:      {"soziale_analyse": 42},
		analyses.DomainEmployment:  {"analysis": []any{"wrong shape"}},
	}
	if got := Extract(docs); len(got) != 0 {
		t.Fatalf("expected no milestones, got %#v", got)
	}
}

func TestExtractRawContentDocumentsYieldNothing(t *testing.T) {
	docs := analyses.Documents{
		analyses.DomainIntegration: analyses.RawContent("free text"),
		analyses.DomainSocial:      analyses.RawContent("more free text"),
		analyses.DomainEmployment:  {"error": "read failed"},
	}
	if got := Extract(docs); len(got) != 0 {
		t.Fatalf("expected no milestones, got %#v", got)
	}
}

func TestExtractScalarSequencesDegradeToEmpty(t *testing.T) {
	docs := analyses.Documents{
		analyses.DomainIntegration: {
			"integrations_analyse": map[string]any{
				"jobcenter_anbindung": map[string]any{
					"status":       true,
					"empfehlungen": "should have been a list",
				},
			},
		},
	}
	got := Extract(docs)
	if len(got) != 1 {
		t.Fatalf("expected one milestone, got %d", len(got))
	}
	if got[0].ToDos == nil || len(got[0].ToDos) != 0 {
		t.Fatalf("to_dos must be an empty list, got %#v", got[0].ToDos)
	}
}

func TestExtractRepeatedOpportunitiesKeepRepeatedTitles(t *testing.T) {
	docs := analyses.Documents{
		analyses.DomainEmployment: {
			"analysis": map[string]any{
				"employment_opportunities": []any{
					map[string]any{"tasks": []any{"A"}},
					"skip me",
					map[string]any{"tasks": []any{"B"}},
				},
			},
		},
	}
	got := Extract(docs)
	if len(got) != 2 {
		t.Fatalf("expected two milestones, got %d", len(got))
	}
	for _, m := range got {
		if m.Title != "Beruflicher Einstieg" {
			t.Fatalf("title = %q", m.Title)
		}
		if m.Parallel {
			t.Fatalf("opportunity milestones must not be parallel")
		}
		if len(m.ToDos) != 3 {
			t.Fatalf("expected coaching, resume and one task, got %#v", m.ToDos)
		}
	}
}

func TestExtractScalarRecommendationsSkipAggregate(t *testing.T) {
	docs := analyses.Documents{
		analyses.DomainEmployment: {
			"analysis": map[string]any{
				"recommendations": "a single string, not a list",
			},
		},
	}
	if got := Extract(docs); len(got) != 0 {
		t.Fatalf("scalar recommendations must not emit a milestone, got %#v", got)
	}
}
