package milestones

import (
	"fmt"

	"strategy-backend/internal/analyses"
)

// Extract walks the three parsed analysis documents and synthesizes the
// ordered milestone list: integration first (language/residency, jobcenter,
// financial support), then social (single-parent, addiction, housing), then
// employment (one per opportunity, one per skill gap, one aggregate for
// recommendations). Every step is independently guarded through the
// analyses accessors, so a missing or malformed branch skips its milestone
// and never aborts extraction. The output is deterministic for identical
// inputs.
func Extract(docs analyses.Documents) []Milestone {
	out := make([]Milestone, 0, 8)
	out = append(out, fromIntegration(docs[analyses.DomainIntegration])...)
	out = append(out, fromSocial(docs[analyses.DomainSocial])...)
	out = append(out, fromEmployment(docs[analyses.DomainEmployment])...)
	return out
}

func fromIntegration(doc analyses.Document) []Milestone {
	var out []Milestone
	integration := analyses.Get(doc, "integrations_analyse", nil)

	lang := analyses.Get(integration, "sprachliche_integration", nil)
	if analyses.Truthy(analyses.Get(lang, "bedarf", nil)) {
		out = append(out, Milestone{
			Title:    "Sprache & Aufenthalt klären",
			Parallel: false,
			ToDos: []string{
				"BAMF-Integrationskurs beantragen",
				"Beratung bei Migrationsstelle vereinbaren",
			},
			Optional: []string{"Online-Deutschkurs vorbereitend nutzen"},
		})
	}

	jobcenter := analyses.Get(integration, "jobcenter_anbindung", nil)
	if analyses.Truthy(analyses.Get(jobcenter, "status", nil)) {
		out = append(out, Milestone{
			Title:    "Jobcenter & Finanzierung",
			Parallel: true,
			ToDos:    todoList(analyses.Get(jobcenter, "empfehlungen", nil)),
		})
	}

	financial := analyses.Get(integration, "finanzielle_unterstützung", nil)
	if analyses.Truthy(analyses.Get(financial, "bedarf", nil)) {
		out = append(out, Milestone{
			Title:    "Finanzielle Unterstützung",
			Parallel: true,
			ToDos:    todoList(analyses.Get(financial, "möglichkeiten", nil)),
		})
	}

	return out
}

func fromSocial(doc analyses.Document) []Milestone {
	var out []Milestone
	social := analyses.Get(doc, "soziale_analyse", nil)

	if single := analyses.Get(social, "alleinerziehend", nil); analyses.Truthy(analyses.Get(single, "situation", nil)) {
		todos := []string{
			"Kitaplatz beantragen",
			"Wohngeldantrag vorbereiten",
		}
		todos = append(todos, analyses.StringSlice(analyses.Get(single, "empfehlungen", nil))...)
		out = append(out, Milestone{
			Title:    "Kinderbetreuung & Wohnen sichern",
			Parallel: true,
			ToDos:    todos,
		})
	}

	if addiction := analyses.Get(social, "drogenabhängigkeit", nil); analyses.Truthy(analyses.Get(addiction, "situation", nil)) {
		out = append(out, Milestone{
			Title:    "Gesundheit & Suchtberatung",
			Parallel: true,
			ToDos:    todoList(analyses.Get(addiction, "empfehlungen", nil)),
		})
	}

	if housing := analyses.Get(social, "wohnverhältnisse", nil); analyses.Truthy(analyses.Get(housing, "situation", nil)) {
		out = append(out, Milestone{
			Title:    "Wohnsituation verbessern",
			Parallel: true,
			ToDos:    todoList(analyses.Get(housing, "empfehlungen", nil)),
		})
	}

	return out
}

func fromEmployment(doc analyses.Document) []Milestone {
	var out []Milestone
	analysis := analyses.Get(doc, "analysis", nil)

	// One milestone per opportunity entry. Titles are intentionally not
	// disambiguated: repeated opportunities yield repeated identically
	// titled milestones.
	opportunities, _ := analyses.Get(analysis, "employment_opportunities", nil).([]any)
	for _, entry := range opportunities {
		opp, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		todos := []string{
			"AVGS-Coaching starten",
			"Lebenslauf erstellen mit Coach",
		}
		todos = append(todos, analyses.StringSlice(analyses.Get(opp, "tasks", nil))...)
		out = append(out, Milestone{
			Title:    "Beruflicher Einstieg",
			Parallel: false,
			ToDos:    todos,
		})
	}

	gaps, _ := analyses.Get(analysis, "skill_gaps", nil).([]any)
	for _, entry := range gaps {
		gap, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		out = append(out, Milestone{
			Title:    "Qualifizierung: " + skillLabel(analyses.Get(gap, "skill", "Skill Gap")),
			Parallel: true,
			ToDos:    todoList(analyses.Get(gap, "improvement_tasks", nil)),
		})
	}

	if recs := analyses.StringSlice(analyses.Get(analysis, "recommendations", nil)); len(recs) > 0 {
		out = append(out, Milestone{
			Title:    "Zusätzliche Empfehlungen",
			Parallel: true,
			ToDos:    recs,
		})
	}

	return out
}

// todoList coerces a loose field into a non-nil to-do slice; scalars and
// absent values become an empty list.
func todoList(v any) []string {
	todos := analyses.StringSlice(v)
	if todos == nil {
		return []string{}
	}
	return todos
}

func skillLabel(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}
