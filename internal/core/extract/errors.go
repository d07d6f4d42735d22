package extract

import "fmt"

// Reason classifies why an extraction failed. The orchestrator treats every
// reason the same way (proceed with empty context), but logs and tests need
// to tell network trouble apart from parse trouble.
type Reason string

const (
	ReasonDownload     Reason = "download"
	ReasonTimeout      Reason = "timeout"
	ReasonNotFound     Reason = "not_found"
	ReasonParseFailure Reason = "parse_failure"
	ReasonEmptyContent Reason = "empty_content"
	ReasonFileNotFound Reason = "file_not_found"
)

// ExtractionError wraps any failure out of the extractor with its reason.
type ExtractionError struct {
	Reason Reason
	Err    error
}

func (e *ExtractionError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("extraction failed: %s", e.Reason)
	}
	return fmt.Sprintf("extraction failed (%s): %v", e.Reason, e.Err)
}

func (e *ExtractionError) Unwrap() error { return e.Err }

func failure(reason Reason, err error) *ExtractionError {
	return &ExtractionError{Reason: reason, Err: err}
}
