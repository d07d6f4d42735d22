package models

// DocumentSource distinguishes where the pipeline reads the document from.
type DocumentSource string

const (
	SourceURL    DocumentSource = "url"
	SourceUpload DocumentSource = "upload"
)

// DocumentRequest identifies the input document for one pipeline run.
// Exactly one of URL or Path is set, selected by Source. Built by the
// validator and never mutated afterwards.
type DocumentRequest struct {
	Source DocumentSource
	URL    string
	Path   string
}

// RunRequest is the JSON body of the URL-mode endpoint.
type RunRequest struct {
	Documents string   `json:"documents"`
	Questions []string `json:"questions"`
}

// RunResponse carries one answer per question, in question order.
type RunResponse struct {
	Answers []string `json:"answers"`
}

// FieldViolation describes a single validation failure.
type FieldViolation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Value   string `json:"value,omitempty"` // echoed only when safe
}

// ErrorResponse is the envelope for all non-2xx responses.
type ErrorResponse struct {
	Error   string           `json:"error"`
	Message string           `json:"message"`
	Details []FieldViolation `json:"details,omitempty"`
}

// HealthResponse is the static liveness payload.
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}
