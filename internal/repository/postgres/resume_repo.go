package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"resumely/internal/domain"
	"resumely/internal/port"
)

type resumeRepo struct {
	db *sqlx.DB
}

// NewResumeRepo creates a new PostgreSQL-backed ResumeRepository.
func NewResumeRepo(db *sqlx.DB) port.ResumeRepository {
	return &resumeRepo{db: db}
}

func (r *resumeRepo) Create(ctx context.Context, resume *domain.Resume) error {
	now := time.Now().UTC()
	resume.CreatedAt = now
	resume.UpdatedAt = now

	query := `INSERT INTO resumes
		(id, file_name, content_type, file_size, s3_bucket, s3_key, decoder,
		 text_truncated, parse_source, parser_model, parsing_status, parsing_error,
		 profile, parsed_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`

	_, err := r.db.ExecContext(ctx, query,
		resume.ID, resume.FileName, resume.ContentType, resume.FileSize,
		resume.S3Bucket, resume.S3Key, resume.Decoder, resume.TextTruncated,
		resume.ParseSource, resume.ParserModel, resume.ParsingStatus,
		resume.ParsingError, resume.Profile, resume.ParsedAt,
		resume.CreatedAt, resume.UpdatedAt)
	if err != nil {
		return fmt.Errorf("resumeRepo.Create: %w", err)
	}
	return nil
}

func (r *resumeRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Resume, error) {
	var resume domain.Resume
	err := r.db.GetContext(ctx, &resume, "SELECT * FROM resumes WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrResumeNotFound
		}
		return nil, fmt.Errorf("resumeRepo.GetByID: %w", err)
	}
	return &resume, nil
}

func (r *resumeRepo) List(ctx context.Context, offset, limit int) ([]domain.Resume, int, error) {
	var total int
	err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM resumes")
	if err != nil {
		return nil, 0, fmt.Errorf("resumeRepo.List count: %w", err)
	}

	var resumes []domain.Resume
	err = r.db.SelectContext(ctx, &resumes,
		"SELECT * FROM resumes ORDER BY created_at DESC LIMIT $1 OFFSET $2",
		limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("resumeRepo.List: %w", err)
	}
	return resumes, total, nil
}

func (r *resumeRepo) ListParsed(ctx context.Context) ([]domain.Resume, error) {
	var resumes []domain.Resume
	err := r.db.SelectContext(ctx, &resumes,
		"SELECT * FROM resumes WHERE parsing_status = $1 ORDER BY created_at DESC",
		domain.ParsingStatusCompleted)
	if err != nil {
		return nil, fmt.Errorf("resumeRepo.ListParsed: %w", err)
	}
	return resumes, nil
}

func (r *resumeRepo) UpdateParseResult(ctx context.Context, resume *domain.Resume) error {
	resume.UpdatedAt = time.Now().UTC()

	query := `UPDATE resumes SET
		parse_source = $1, parser_model = $2, parsing_status = $3,
		parsing_error = $4, profile = $5, parsed_at = $6, updated_at = $7
		WHERE id = $8`

	result, err := r.db.ExecContext(ctx, query,
		resume.ParseSource, resume.ParserModel, resume.ParsingStatus,
		resume.ParsingError, resume.Profile, resume.ParsedAt,
		resume.UpdatedAt, resume.ID)
	if err != nil {
		return fmt.Errorf("resumeRepo.UpdateParseResult: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrResumeNotFound
	}
	return nil
}

func (r *resumeRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM resumes WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("resumeRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrResumeNotFound
	}
	return nil
}
