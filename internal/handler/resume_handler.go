package handler

import (
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"resumely/internal/domain"
	"resumely/internal/export"
	"resumely/internal/service"
)

// ResumeHandler handles résumé upload and management endpoints.
type ResumeHandler struct {
	resumeService service.ResumeService
	logger        *zap.Logger
}

// NewResumeHandler creates a new ResumeHandler.
func NewResumeHandler(resumeService service.ResumeService, logger *zap.Logger) *ResumeHandler {
	return &ResumeHandler{resumeService: resumeService, logger: logger}
}

// Upload handles POST /api/v1/resumes. The résumé file is a multipart "file"
// field; an optional "mode" query or form value selects the parsing pipeline
// (auto, ai, heuristic).
func (h *ResumeHandler) Upload(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "MISSING_FILE", "file field is required")
		return
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(file)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "UNREADABLE_FILE", "could not read uploaded file")
		return
	}

	mode, ok := parseMode(c)
	if !ok {
		RespondError(c, http.StatusBadRequest, "INVALID_MODE", "mode must be one of: auto, ai, heuristic")
		return
	}

	resume, err := h.resumeService.UploadAndParse(c.Request.Context(), &service.UploadInput{
		Data:        data,
		FileName:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Mode:        mode,
	})
	if err != nil {
		HandleError(c, h.logger, err)
		return
	}

	RespondCreated(c, resume)
}

func parseMode(c *gin.Context) (domain.ParseMode, bool) {
	raw := c.Query("mode")
	if raw == "" {
		raw = c.PostForm("mode")
	}
	switch domain.ParseMode(raw) {
	case "", domain.ParseModeAuto:
		return domain.ParseModeAuto, true
	case domain.ParseModeAI:
		return domain.ParseModeAI, true
	case domain.ParseModeHeuristic:
		return domain.ParseModeHeuristic, true
	default:
		return "", false
	}
}

// List handles GET /api/v1/resumes with offset/limit pagination.
func (h *ResumeHandler) List(c *gin.Context) {
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	resumes, total, err := h.resumeService.List(c.Request.Context(), offset, limit)
	if err != nil {
		HandleError(c, h.logger, err)
		return
	}

	RespondPaginated(c, resumes, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// GetByID handles GET /api/v1/resumes/:id.
func (h *ResumeHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid resume ID")
		return
	}

	resume, err := h.resumeService.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, h.logger, err)
		return
	}

	RespondOK(c, resume)
}

// GetProfile handles GET /api/v1/resumes/:id/profile, returning only the
// canonical profile JSON of a parsed résumé.
func (h *ResumeHandler) GetProfile(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid resume ID")
		return
	}

	resume, err := h.resumeService.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, h.logger, err)
		return
	}

	if resume.ParsingStatus != domain.ParsingStatusCompleted {
		RespondError(c, http.StatusConflict, "NOT_PARSED",
			fmt.Sprintf("resume parsing is %s", resume.ParsingStatus))
		return
	}

	c.Data(http.StatusOK, "application/json", resume.Profile)
}

// Delete handles DELETE /api/v1/resumes/:id.
func (h *ResumeHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid resume ID")
		return
	}

	if err := h.resumeService.Delete(c.Request.Context(), id); err != nil {
		HandleError(c, h.logger, err)
		return
	}

	RespondOK(c, gin.H{"message": "resume deleted"})
}

// Export handles GET /api/v1/resumes/export, streaming all parsed profiles
// as an XLSX workbook.
func (h *ResumeHandler) Export(c *gin.Context) {
	resumes, err := h.resumeService.ListParsed(c.Request.Context())
	if err != nil {
		HandleError(c, h.logger, err)
		return
	}

	filename := fmt.Sprintf("profiles-%s.xlsx", time.Now().UTC().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

	if err := export.WriteProfilesXLSX(c.Writer, resumes); err != nil {
		h.logger.Error("writing xlsx export", zap.Error(err))
	}
}
