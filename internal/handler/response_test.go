package handler

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"resumely/internal/domain"
	"resumely/internal/parser"
)

func TestMapDomainError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"not found", domain.ErrResumeNotFound, http.StatusNotFound, "RESUME_NOT_FOUND"},
		{"unsupported type", domain.ErrUnsupportedFileType, http.StatusBadRequest, "UNSUPPORTED_FILE_TYPE"},
		{"too large", domain.ErrFileTooLarge, http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE"},
		{"no text", domain.ErrNoExtractableText, http.StatusUnprocessableEntity, "NO_EXTRACTABLE_TEXT"},
		{"extraction error wraps no text", &domain.ExtractionError{Preview: "\xff\xfe"}, http.StatusUnprocessableEntity, "NO_EXTRACTABLE_TEXT"},
		{"ai unavailable", domain.ErrAIUnavailable, http.StatusServiceUnavailable, "AI_UNAVAILABLE"},
		{"upload failed", domain.ErrUploadFailed, http.StatusInternalServerError, "UPLOAD_FAILED"},
		{"rate limited", parser.NewRateLimitError("openai", errors.New("429"), 30), http.StatusTooManyRequests, "RATE_LIMITED"},
		{"ai parse failed", &parser.AIParseError{Preview: "garbage"}, http.StatusBadGateway, "AI_PARSE_FAILED"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, code, _ := MapDomainError(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantCode, code)
		})
	}
}
