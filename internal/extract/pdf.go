package extract

import (
	"bytes"
	"io"
	"strings"

	altpdf "github.com/dslipak/pdf"
	"github.com/ledongthuc/pdf"
)

// pdfTextLayer walks the PDF page by page and joins the text-layer tokens of
// each page with single spaces, pages with newlines. Both PDF libraries are
// known to panic on malformed input, so every call into them is guarded with
// recover; a failed extraction simply returns "".
func pdfTextLayer(data []byte) (out string) {
	defer func() {
		if r := recover(); r != nil {
			out = ""
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return ""
	}

	pages := 0
	func() {
		defer func() { _ = recover() }()
		pages = reader.NumPage()
	}()
	if pages <= 0 {
		return ""
	}

	var b strings.Builder
	for i := 1; i <= pages; i++ {
		func() {
			defer func() { _ = recover() }()
			page := reader.Page(i)
			if page.V.IsNull() {
				return
			}
			content := page.Content()
			for j, item := range content.Text {
				if j > 0 {
					b.WriteString(" ")
				}
				b.WriteString(item.S)
			}
			b.WriteString("\n")
		}()
	}

	return strings.TrimSpace(b.String())
}

// pdfPlainText is the second, independent PDF extractor in the chain. It uses
// a different library whose text reconstruction handles some documents the
// text-layer walk does not.
func pdfPlainText(data []byte) (out string) {
	defer func() {
		if r := recover(); r != nil {
			out = ""
		}
	}()

	reader, err := altpdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return ""
	}

	plain, err := reader.GetPlainText()
	if err != nil {
		return ""
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return ""
	}
	return strings.TrimSpace(buf.String())
}
