package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"resumely/internal/domain"
	"resumely/internal/extract"
	"resumely/internal/port"
	"resumely/internal/profile"
)

// UploadInput is the DTO for uploading a résumé and triggering parsing.
type UploadInput struct {
	Data        []byte
	FileName    string
	ContentType string
	Mode        domain.ParseMode
}

// ResumeService defines the résumé management contract.
type ResumeService interface {
	UploadAndParse(ctx context.Context, input *UploadInput) (*domain.Resume, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Resume, error)
	List(ctx context.Context, offset, limit int) ([]domain.Resume, int, error)
	ListParsed(ctx context.Context) ([]domain.Resume, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type resumeService struct {
	repo        port.ResumeRepository
	storage     port.ObjectStorage
	aiParser    port.ProfileParser // nil = heuristic-only deployment
	aiModel     string
	bucket      string
	maxFileSize int64
	maxChars    int
	logger      *zap.Logger
}

// NewResumeService creates a ResumeService. A nil aiParser disables AI parsing;
// uploads then always take the heuristic path.
func NewResumeService(
	repo port.ResumeRepository,
	storage port.ObjectStorage,
	aiParser port.ProfileParser,
	aiModel string,
	bucket string,
	maxFileSizeMB int64,
	maxChars int,
	logger *zap.Logger,
) ResumeService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if maxChars <= 0 {
		maxChars = extract.DefaultMaxChars
	}
	return &resumeService{
		repo:        repo,
		storage:     storage,
		aiParser:    aiParser,
		aiModel:     aiModel,
		bucket:      bucket,
		maxFileSize: maxFileSizeMB * 1024 * 1024,
		maxChars:    maxChars,
		logger:      logger,
	}
}

func (s *resumeService) UploadAndParse(ctx context.Context, input *UploadInput) (*domain.Resume, error) {
	if err := s.validateUpload(input); err != nil {
		return nil, err
	}

	mode := input.Mode
	if mode == "" {
		mode = domain.ParseModeAuto
	}
	if mode == domain.ParseModeAI && s.aiParser == nil {
		return nil, domain.ErrAIUnavailable
	}

	id := uuid.New()
	key := fmt.Sprintf("resumes/%s/%s", id, filepath.Base(input.FileName))

	if err := s.storage.Upload(ctx, port.UploadInput{
		Bucket:      s.bucket,
		Key:         key,
		Body:        bytes.NewReader(input.Data),
		ContentType: input.ContentType,
	}); err != nil {
		s.logger.Error("uploading resume file", zap.String("key", key), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", domain.ErrUploadFailed, err)
	}

	result := extract.Extract(domain.RawDocument{
		Data:        input.Data,
		FileName:    input.FileName,
		ContentType: input.ContentType,
	}, s.maxChars)

	resume := &domain.Resume{
		ID:            id,
		FileName:      input.FileName,
		ContentType:   input.ContentType,
		FileSize:      int64(len(input.Data)),
		S3Bucket:      s.bucket,
		S3Key:         key,
		Decoder:       result.Decoder,
		TextTruncated: result.Truncated,
		ParsingStatus: domain.ParsingStatusPending,
		Profile:       json.RawMessage("{}"),
	}
	if err := s.repo.Create(ctx, resume); err != nil {
		return nil, fmt.Errorf("creating resume record: %w", err)
	}

	if strings.TrimSpace(result.Text) == "" {
		extractErr := &domain.ExtractionError{Preview: previewBytes(input.Data)}
		s.failParsing(ctx, resume, extractErr.Error())
		return nil, extractErr
	}

	prof, source, err := s.parse(ctx, mode, result.Text)
	if err != nil {
		s.failParsing(ctx, resume, err.Error())
		return nil, err
	}

	profileJSON, err := json.Marshal(prof)
	if err != nil {
		s.failParsing(ctx, resume, fmt.Sprintf("marshaling profile: %v", err))
		return nil, fmt.Errorf("marshaling profile: %w", err)
	}

	now := time.Now().UTC()
	resume.Profile = profileJSON
	resume.ParseSource = source
	if source == domain.ParseSourceAI {
		resume.ParserModel = s.aiModel
	}
	resume.ParsingStatus = domain.ParsingStatusCompleted
	resume.ParsingError = ""
	resume.ParsedAt = &now

	if err := s.repo.UpdateParseResult(ctx, resume); err != nil {
		return nil, fmt.Errorf("saving parse result: %w", err)
	}

	s.logger.Info("resume parsed",
		zap.String("id", resume.ID.String()),
		zap.String("decoder", resume.Decoder),
		zap.String("source", string(source)))

	return resume, nil
}

func (s *resumeService) validateUpload(input *UploadInput) error {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(input.FileName)), ".")
	if _, ok := domain.AllowedExtensions[ext]; !ok {
		return domain.ErrUnsupportedFileType
	}
	if s.maxFileSize > 0 && int64(len(input.Data)) > s.maxFileSize {
		return domain.ErrFileTooLarge
	}
	return nil
}

// parse dispatches to the AI parser or the heuristic builder per mode. The
// heuristic path is a deployment choice, not an error fallback: when an AI
// parser is in play its failure surfaces to the caller.
func (s *resumeService) parse(ctx context.Context, mode domain.ParseMode, text string) (*domain.CanonicalProfile, domain.ParseSource, error) {
	if s.aiParser != nil && mode != domain.ParseModeHeuristic {
		prof, err := s.aiParser.Parse(ctx, text)
		if err != nil {
			return nil, "", err
		}
		return prof, domain.ParseSourceAI, nil
	}
	return profile.BuildHeuristic(text), domain.ParseSourceHeuristic, nil
}

func (s *resumeService) failParsing(ctx context.Context, resume *domain.Resume, errMsg string) {
	resume.ParsingStatus = domain.ParsingStatusFailed
	resume.ParsingError = errMsg
	if err := s.repo.UpdateParseResult(ctx, resume); err != nil {
		s.logger.Error("updating failed parse status",
			zap.String("id", resume.ID.String()), zap.Error(err))
	}
}

func (s *resumeService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Resume, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *resumeService) List(ctx context.Context, offset, limit int) ([]domain.Resume, int, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.repo.List(ctx, offset, limit)
}

func (s *resumeService) ListParsed(ctx context.Context) ([]domain.Resume, error) {
	return s.repo.ListParsed(ctx)
}

func (s *resumeService) Delete(ctx context.Context, id uuid.UUID) error {
	resume, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.storage.Delete(ctx, resume.S3Bucket, resume.S3Key); err != nil {
		// The DB row is the source of truth; an orphaned object is acceptable.
		s.logger.Warn("deleting stored file",
			zap.String("key", resume.S3Key), zap.Error(err))
	}
	return s.repo.Delete(ctx, id)
}

// previewBytes renders a bounded, printable sample of undecodable input for
// extraction failure messages.
func previewBytes(data []byte) string {
	const max = 120
	if len(data) > max {
		data = data[:max]
	}
	return strings.ToValidUTF8(string(data), ".")
}
