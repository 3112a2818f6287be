package llm

import "fmt"

// Per-domain response skeletons. The domain assistants are asked to answer
// in exactly these shapes; the extractor still treats the result as loose
// JSON because assistants drift.
const (
	employmentSchema = `{
    "analysis": {
        "employment_opportunities": [],
        "skill_gaps": [],
        "recommendations": []
    }
}`

	socialSchema = `{
    "soziale_analyse": {
        "alleinerziehend": {
            "situation": "",
            "empfehlungen": []
        },
        "drogenabhängigkeit": {
            "situation": "",
            "empfehlungen": []
        },
        "wohnverhältnisse": {
            "situation": "",
            "empfehlungen": []
        },
        "zusätzliche_unterstützung": []
    }
}`

	integrationSchema = `{
    "integrations_analyse": {
        "finanzielle_unterstützung": {
            "bedarf": "",
            "möglichkeiten": []
        },
        "jobcenter_anbindung": {
            "status": "",
            "empfehlungen": []
        },
        "sprachliche_integration": {
            "bedarf": "",
            "kursempfehlungen": []
        },
        "zusätzliche_unterstützung": []
    }
}`
)

var domainSchemas = map[string]string{
	"employment":  employmentSchema,
	"social":      socialSchema,
	"integration": integrationSchema,
}

// BuildAnalysisContent renders the user payload for a domain analysis call:
// the serialized profile followed by the expected JSON response structure.
func BuildAnalysisContent(domain, profile string) string {
	schema, ok := domainSchemas[domain]
	if !ok {
		schema = "{}"
	}
	return fmt.Sprintf(
		"Please analyze the following user profile and provide your analysis in JSON format:\n%s\n\nYour response should be in JSON format with the following structure:\n%s",
		profile, schema,
	)
}

// BuildStrategyContent renders the payload for the strategy-determination
// call: the combined analyses, serialized as JSON.
func BuildStrategyContent(analysesJSON string) string {
	return analysesJSON
}
