package extract

import (
	"path/filepath"
	"strings"
	"unicode/utf8"

	"resumely/internal/domain"
)

// DefaultMaxChars is the extraction-layer character cap.
const DefaultMaxChars = 60000

// Decoder identities recorded on extraction results.
const (
	DecoderPDFLayer = "pdf-text-layer"
	DecoderPDFAlt   = "pdf-plaintext"
	DecoderDOCX     = "docx-xml"
	DecoderRaw      = "raw-utf8"
)

// Result is the extracted text plus metadata about how it was produced.
type Result struct {
	Text      string
	Decoder   string
	Truncated bool
}

// Extract runs the ordered decoder chain over the document and returns the
// first non-empty result, capped at maxChars. It never fails: decoder errors
// and panics are contained, and the raw UTF-8 decode at the end of the chain
// always yields a string. An empty Text means no decoder found usable text.
//
// Chain order: PDF text layer, second independent PDF extractor, DOCX XML
// walk, raw byte decode. The extension alone selects the format-specific
// decoders; the raw decode runs unconditionally as the last resort.
func Extract(doc domain.RawDocument, maxChars int) Result {
	if maxChars <= 0 {
		maxChars = DefaultMaxChars
	}
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(doc.FileName), "."))

	var text, decoder string

	if ext == "pdf" {
		if t := pdfTextLayer(doc.Data); strings.TrimSpace(t) != "" {
			text, decoder = t, DecoderPDFLayer
		} else if t := pdfPlainText(doc.Data); strings.TrimSpace(t) != "" {
			text, decoder = t, DecoderPDFAlt
		}
	}

	if text == "" && (ext == "doc" || ext == "docx") {
		if t := docxText(doc.Data); strings.TrimSpace(t) != "" {
			text, decoder = t, DecoderDOCX
		}
	}

	// Covers txt/rtf/odt and any format-specific decoder that came up empty.
	if strings.TrimSpace(text) == "" {
		text, decoder = rawText(doc.Data), DecoderRaw
	}

	text = strings.TrimSpace(text)

	truncated := false
	if runes := []rune(text); len(runes) > maxChars {
		// Deterministic prefix so identical inputs extract identically.
		text = string(runes[:maxChars])
		truncated = true
	}

	return Result{Text: text, Decoder: decoder, Truncated: truncated}
}

// rawText decodes the bytes as UTF-8, dropping invalid sequences. This is the
// chain's unconditional fallback and may well produce garbage for binary
// formats; downstream stages tolerate that.
func rawText(data []byte) string {
	s := string(data)
	if !utf8.ValidString(s) {
		s = strings.ToValidUTF8(s, "")
	}
	return strings.TrimSpace(s)
}
