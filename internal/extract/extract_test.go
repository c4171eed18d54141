package extract

import (
	"archive/zip"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumely/internal/domain"
)

func TestExtractPlainTextPassthrough(t *testing.T) {
	text := "Jane Roe\nSenior Engineer\nGo, Postgres, Kubernetes"
	result := Extract(domain.RawDocument{
		Data:     []byte(text),
		FileName: "resume.txt",
	}, 0)

	assert.Equal(t, text, result.Text)
	assert.Equal(t, DecoderRaw, result.Decoder)
	assert.False(t, result.Truncated)
}

func TestExtractTruncatesToPrefix(t *testing.T) {
	long := strings.Repeat("abcde ", 100)
	result := Extract(domain.RawDocument{
		Data:     []byte(long),
		FileName: "resume.txt",
	}, 50)

	assert.Len(t, []rune(result.Text), 50)
	assert.True(t, result.Truncated)
	assert.True(t, strings.HasPrefix(long, result.Text))
}

func TestExtractDOCX(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(`<w:document><w:body><w:p><w:t>Jane Roe</w:t></w:p><w:p><w:t>Staff Engineer</w:t></w:p></w:body></w:document>`))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	result := Extract(domain.RawDocument{
		Data:     buf.Bytes(),
		FileName: "resume.docx",
	}, 0)

	assert.Equal(t, DecoderDOCX, result.Decoder)
	assert.Contains(t, result.Text, "Jane Roe")
	assert.Contains(t, result.Text, "Staff Engineer")
	assert.NotContains(t, result.Text, "<w:")
}

func TestExtractMalformedPDFFallsThroughToRaw(t *testing.T) {
	result := Extract(domain.RawDocument{
		Data:     []byte("this is not a pdf at all"),
		FileName: "resume.pdf",
	}, 0)

	assert.Equal(t, DecoderRaw, result.Decoder)
	assert.Equal(t, "this is not a pdf at all", result.Text)
}

func TestExtractInvalidUTF8YieldsEmpty(t *testing.T) {
	result := Extract(domain.RawDocument{
		Data:     []byte{0xff, 0xfe, 0xfd},
		FileName: "resume.txt",
	}, 0)

	assert.Equal(t, DecoderRaw, result.Decoder)
	assert.Empty(t, result.Text)
}

func TestExtractEmptyInput(t *testing.T) {
	result := Extract(domain.RawDocument{FileName: "resume.txt"}, 0)
	assert.Empty(t, result.Text)
	assert.False(t, result.Truncated)
}
