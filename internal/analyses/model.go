package analyses

// Domain names for the three analysis producers.
const (
	DomainEmployment  = "employment"
	DomainSocial      = "social"
	DomainIntegration = "integration"
)

// AllDomains lists the domains in their canonical order.
var AllDomains = []string{DomainEmployment, DomainSocial, DomainIntegration}

// Document is the parsed analysis output for one domain. It is one of:
// a structured mapping from the producer, {"raw_content": ...} when no JSON
// could be located in the raw text, or {"error": ...} when the source file
// could not be read. No schema is enforced beyond "it is a mapping"; callers
// access nested fields through the helpers in access.go.
type Document map[string]any

// Reserved top-level keys for the degraded document variants.
const (
	KeyRawContent = "raw_content"
	KeyError      = "error"
)

// Documents holds one parsed document per domain.
type Documents map[string]Document

// RawContent wraps unparseable text as an opaque document.
func RawContent(raw string) Document {
	return Document{KeyRawContent: raw}
}

// ErrorDocument wraps a read failure as a document.
func ErrorDocument(err error) Document {
	return Document{KeyError: err.Error()}
}
