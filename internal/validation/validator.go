package validation

import (
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/oluwaseyi-a/DocuQuery/internal/models"
)

const (
	// MinQuestions and MaxQuestions bound the questions list per request.
	MinQuestions = 1
	MaxQuestions = 10

	// MinQuestionLen and MaxQuestionLen bound each question, counted in
	// characters after trimming.
	MinQuestionLen = 5
	MaxQuestionLen = 1000

	// MaxUploadBytes is the upload-mode file size ceiling (20 MiB).
	MaxUploadBytes = 20 << 20

	// UploadMimeType is the only accepted upload content type.
	UploadMimeType = "application/pdf"
)

// maxEchoedValueLen caps how much of an offending value gets echoed back.
const maxEchoedValueLen = 200

// ValidateRun checks the URL-mode request body. All violations are
// collected, never short-circuited, and the same input always yields the
// same violation set. On success it returns the normalized document
// request and the trimmed question set.
func ValidateRun(req models.RunRequest) (models.DocumentRequest, []string, []models.FieldViolation) {
	var violations []models.FieldViolation

	docRef := strings.TrimSpace(req.Documents)
	if docRef == "" {
		violations = append(violations, models.FieldViolation{
			Field: "documents", Message: "is required",
		})
	} else if !isHTTPURL(docRef) {
		violations = append(violations, models.FieldViolation{
			Field: "documents", Message: "must be an absolute http or https URL", Value: safeValue(docRef),
		})
	}

	questions, qv := validateQuestions(req.Questions)
	violations = append(violations, qv...)

	if len(violations) > 0 {
		return models.DocumentRequest{}, nil, violations
	}
	return models.DocumentRequest{Source: models.SourceURL, URL: docRef}, questions, nil
}

// ValidateUpload checks the upload-mode inputs: the multipart file header
// and the raw questions form field (a JSON-encoded array of strings).
// The trimmed question set is returned alongside any violations.
func ValidateUpload(header *multipart.FileHeader, questionsRaw string) ([]string, []models.FieldViolation) {
	var violations []models.FieldViolation

	if header == nil {
		violations = append(violations, models.FieldViolation{
			Field: "file", Message: "is required",
		})
	} else {
		if !strings.HasSuffix(strings.ToLower(header.Filename), ".pdf") {
			violations = append(violations, models.FieldViolation{
				Field: "file", Message: "filename must end in .pdf", Value: safeValue(header.Filename),
			})
		}
		if ct := header.Header.Get("Content-Type"); ct != UploadMimeType {
			violations = append(violations, models.FieldViolation{
				Field: "file", Message: fmt.Sprintf("content type must be %q", UploadMimeType), Value: safeValue(ct),
			})
		}
		if header.Size > MaxUploadBytes {
			violations = append(violations, models.FieldViolation{
				Field: "file", Message: fmt.Sprintf("must not exceed %d bytes", MaxUploadBytes),
			})
		}
	}

	var raw []string
	if strings.TrimSpace(questionsRaw) == "" {
		violations = append(violations, models.FieldViolation{
			Field: "questions", Message: "is required",
		})
		return nil, violations
	}
	if err := json.Unmarshal([]byte(questionsRaw), &raw); err != nil {
		violations = append(violations, models.FieldViolation{
			Field: "questions", Message: "must be a JSON array of strings",
		})
		return nil, violations
	}

	questions, qv := validateQuestions(raw)
	violations = append(violations, qv...)
	return questions, violations
}

// validateQuestions applies the shared list and per-item constraints and
// returns the trimmed questions in their original order.
func validateQuestions(raw []string) ([]string, []models.FieldViolation) {
	var violations []models.FieldViolation

	if raw == nil {
		return nil, []models.FieldViolation{{Field: "questions", Message: "is required"}}
	}
	if len(raw) < MinQuestions || len(raw) > MaxQuestions {
		violations = append(violations, models.FieldViolation{
			Field:   "questions",
			Message: fmt.Sprintf("must contain between %d and %d items", MinQuestions, MaxQuestions),
		})
	}

	questions := make([]string, 0, len(raw))
	for i, q := range raw {
		trimmed := strings.TrimSpace(q)
		if n := utf8.RuneCountInString(trimmed); n < MinQuestionLen || n > MaxQuestionLen {
			violations = append(violations, models.FieldViolation{
				Field:   fmt.Sprintf("questions[%d]", i),
				Message: fmt.Sprintf("must be between %d and %d characters after trimming", MinQuestionLen, MaxQuestionLen),
				Value:   safeValue(trimmed),
			})
		}
		questions = append(questions, trimmed)
	}

	if len(violations) > 0 {
		return nil, violations
	}
	return questions, nil
}

func isHTTPURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

func safeValue(s string) string {
	if utf8.RuneCountInString(s) <= maxEchoedValueLen {
		return s
	}
	runes := []rune(s)
	return string(runes[:maxEchoedValueLen]) + "..."
}
