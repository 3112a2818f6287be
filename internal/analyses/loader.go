package analyses

import (
	"context"
	"os"
	"path/filepath"

	"strategy-backend/internal/shared/telemetry"
)

// Loader reads the persisted per-domain analysis files. The files are
// written by the producers; the loader deliberately reads whatever is on
// disk regardless of the current run's producer outcomes, so a stale file
// from an earlier run is silently reused when a producer failed to refresh
// it.
type Loader struct {
	// Files maps domain name to the analysis file path.
	Files map[string]string
}

// NewLoader builds a loader over an explicit domain-to-path map.
func NewLoader(files map[string]string) *Loader {
	return &Loader{Files: files}
}

// ConventionalFiles returns the default analysis file layout under dir.
func ConventionalFiles(dir string) map[string]string {
	return map[string]string{
		DomainEmployment:  filepath.Join(dir, "employment_analysis.txt"),
		DomainSocial:      filepath.Join(dir, "social_analysis.txt"),
		DomainIntegration: filepath.Join(dir, "integration_analysis.txt"),
	}
}

// LoadAll reads and parses every domain's analysis file. An unreadable file
// degrades to {"error": ...}; parse problems degrade inside ParseDocument.
// LoadAll itself never fails.
func (l *Loader) LoadAll(ctx context.Context) Documents {
	docs := make(Documents, len(l.Files))
	for domain, path := range l.Files {
		if err := ctx.Err(); err != nil {
			docs[domain] = ErrorDocument(err)
			continue
		}
		raw, err := os.ReadFile(path)
		if err != nil {
			telemetry.Error("analysis.load_failed", map[string]any{
				"domain": domain,
				"path":   path,
				"error":  err.Error(),
			})
			docs[domain] = ErrorDocument(err)
			continue
		}
		docs[domain] = ParseDocument(domain, string(raw))
	}
	return docs
}
