package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// RawDocument is the immutable input to the parsing pipeline: the uploaded
// bytes plus the declared filename and content type. It is never persisted.
type RawDocument struct {
	Data        []byte
	FileName    string
	ContentType string
}

// Contact holds the candidate's contact details. Every field is nullable;
// a missing value is serialized as JSON null, never omitted.
type Contact struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
	Location *string `json:"location"`
}

// Experience is one work-history entry of a canonical profile.
type Experience struct {
	Title            string   `json:"title"`
	Company          string   `json:"company"`
	StartDate        string   `json:"start_date"`
	EndDate          string   `json:"end_date"`
	Responsibilities []string `json:"responsibilities"`
}

// CanonicalProfile is the only shape the parsing core hands to callers.
// All array fields are present even when empty; callers may rely on every
// key existing in the serialized form.
type CanonicalProfile struct {
	Skills         []string      `json:"skills"`
	Contact        Contact       `json:"contact"`
	Summary        string        `json:"summary"`
	Experience     []Experience  `json:"experience"`
	Education      []interface{} `json:"education"`
	Certifications []string      `json:"certifications"`
	Languages      []string      `json:"languages"`
	Links          []string      `json:"links"`
}

// NewCanonicalProfile returns a profile with every array allocated so the
// serialized form always carries empty arrays rather than nulls.
func NewCanonicalProfile() *CanonicalProfile {
	return &CanonicalProfile{
		Skills:         []string{},
		Experience:     []Experience{},
		Education:      []interface{}{},
		Certifications: []string{},
		Languages:      []string{},
		Links:          []string{},
	}
}

// Resume is the persisted record of one uploaded résumé and its parse outcome.
type Resume struct {
	ID            uuid.UUID       `db:"id" json:"id"`
	FileName      string          `db:"file_name" json:"file_name"`
	ContentType   string          `db:"content_type" json:"content_type"`
	FileSize      int64           `db:"file_size" json:"file_size"`
	S3Bucket      string          `db:"s3_bucket" json:"-"`
	S3Key         string          `db:"s3_key" json:"-"`
	Decoder       string          `db:"decoder" json:"decoder"`
	TextTruncated bool            `db:"text_truncated" json:"text_truncated"`
	ParseSource   ParseSource     `db:"parse_source" json:"parse_source"`
	ParserModel   string          `db:"parser_model" json:"parser_model"`
	ParsingStatus ParsingStatus   `db:"parsing_status" json:"parsing_status"`
	ParsingError  string          `db:"parsing_error" json:"parsing_error"`
	Profile       json.RawMessage `db:"profile" json:"profile"`
	ParsedAt      *time.Time      `db:"parsed_at" json:"parsed_at"`
	CreatedAt     time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time       `db:"updated_at" json:"updated_at"`
}
