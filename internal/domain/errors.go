package domain

import (
	"errors"
	"fmt"
)

var (
	ErrResumeNotFound      = errors.New("resume not found")
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrFileTooLarge        = errors.New("file exceeds maximum allowed size")
	ErrUploadFailed        = errors.New("file upload to storage failed")
	ErrNoExtractableText   = errors.New("no extractable text in document")
	ErrAIUnavailable       = errors.New("no AI completion client is configured")
)

// ExtractionError reports that every decoder in the extraction chain produced
// empty text. Preview carries a bounded sample of the raw decode for
// diagnostics.
type ExtractionError struct {
	Preview string
}

func (e *ExtractionError) Error() string {
	if e.Preview == "" {
		return "could not extract text from document"
	}
	return fmt.Sprintf("could not extract text from document (raw preview: %q)", e.Preview)
}

func (e *ExtractionError) Unwrap() error {
	return ErrNoExtractableText
}
