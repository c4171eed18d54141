package extract

import (
	"archive/zip"
	"bytes"
	"io"
	"regexp"
	"strings"
)

var xmlTagRe = regexp.MustCompile(`<[^>]*>`)

// docxText pulls the main document part out of a DOCX (Office Open XML)
// archive and strips the markup. Legacy binary .doc files are not zip
// archives, so they fall out of here empty and the chain degrades to the raw
// decode.
func docxText(data []byte) string {
	zipReader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return ""
	}

	for _, file := range zipReader.File {
		if file.Name != "word/document.xml" {
			continue
		}
		rc, err := file.Open()
		if err != nil {
			return ""
		}
		content, err := io.ReadAll(rc)
		_ = rc.Close()
		if err != nil {
			return ""
		}
		text := xmlTagRe.ReplaceAllString(string(content), " ")
		return strings.TrimSpace(text)
	}

	return ""
}
