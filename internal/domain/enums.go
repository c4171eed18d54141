package domain

// FileType represents the allowed résumé file types for upload.
type FileType string

const (
	FileTypePDF  FileType = "pdf"
	FileTypeDOC  FileType = "doc"
	FileTypeDOCX FileType = "docx"
	FileTypeTXT  FileType = "txt"
	FileTypeRTF  FileType = "rtf"
	FileTypeODT  FileType = "odt"
)

// AllowedFileTypes maps FileType to its MIME content type.
var AllowedFileTypes = map[FileType]string{
	FileTypePDF:  "application/pdf",
	FileTypeDOC:  "application/msword",
	FileTypeDOCX: "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	FileTypeTXT:  "text/plain",
	FileTypeRTF:  "application/rtf",
	FileTypeODT:  "application/vnd.oasis.opendocument.text",
}

// AllowedExtensions maps file extensions (without dot) to FileType.
var AllowedExtensions = map[string]FileType{
	"pdf":  FileTypePDF,
	"doc":  FileTypeDOC,
	"docx": FileTypeDOCX,
	"txt":  FileTypeTXT,
	"rtf":  FileTypeRTF,
	"odt":  FileTypeODT,
}

// ParsingStatus represents the lifecycle of a résumé parse.
type ParsingStatus string

const (
	ParsingStatusPending   ParsingStatus = "pending"
	ParsingStatusCompleted ParsingStatus = "completed"
	ParsingStatusFailed    ParsingStatus = "failed"
)

// ParseSource records which pipeline produced the stored profile.
type ParseSource string

const (
	ParseSourceAI        ParseSource = "ai"
	ParseSourceHeuristic ParseSource = "heuristic"
)

// ParseMode selects the parsing pipeline for a request.
type ParseMode string

const (
	// ParseModeAuto uses the AI parser when one is configured, otherwise the
	// heuristic builder.
	ParseModeAuto ParseMode = "auto"
	// ParseModeAI requires a configured AI parser and fails otherwise.
	ParseModeAI ParseMode = "ai"
	// ParseModeHeuristic always uses the heuristic builder.
	ParseModeHeuristic ParseMode = "heuristic"
)
