package extract

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rcmkit/contract-analyzer/constants"
)

// buildDOCX assembles a minimal OPC package with the given document.xml body.
func buildDOCX(t *testing.T, documentXML string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(documentXML))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

const docxBody = `<?xml version="1.0"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>MASTER SERVICES AGREEMENT</w:t></w:r></w:p>
    <w:p><w:r><w:t>Vendor:</w:t></w:r><w:r><w:tab/><w:t>Acme RCM Services</w:t></w:r></w:p>
    <w:p></w:p>
    <w:p><w:r><w:t>Monthly fee of $2,500</w:t><w:br/><w:t>plus 4.9% of collections.</w:t></w:r></w:p>
  </w:body>
</w:document>`

func TestExtractDOCX(t *testing.T) {
	data := buildDOCX(t, docxBody)

	res, err := extractDOCX(context.Background(), data)
	require.NoError(t, err)

	assert.Contains(t, res.Text, "MASTER SERVICES AGREEMENT")
	assert.Contains(t, res.Text, "Vendor: Acme RCM Services")
	assert.Contains(t, res.Text, "Monthly fee of $2,500\nplus 4.9% of collections.")
	// the empty paragraph does not produce a blank line
	assert.NotContains(t, res.Text, "\n\n\n")
}

func TestExtractDOCX_NotAZip(t *testing.T) {
	_, err := extractDOCX(context.Background(), []byte("%PDF-1.7 definitely not a zip"))

	var exErr *ExtractionError
	require.True(t, errors.As(err, &exErr))
	assert.Equal(t, ReasonParseFailed, exErr.Reason)
}

func TestExtractDOCX_MissingDocumentXML(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/styles.xml")
	require.NoError(t, err)
	_, _ = w.Write([]byte("<styles/>"))
	require.NoError(t, zw.Close())

	_, err = extractDOCX(context.Background(), buf.Bytes())

	var exErr *ExtractionError
	require.True(t, errors.As(err, &exErr))
	assert.Equal(t, ReasonParseFailed, exErr.Reason)
}

func TestExtractor_EmptyDocument(t *testing.T) {
	data := buildDOCX(t, `<?xml version="1.0"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body><w:p></w:p></w:body>
</w:document>`)

	e := NewExtractor(nil)
	_, err := e.Extract(context.Background(), data, constants.FileTypeDOCX)

	var exErr *ExtractionError
	require.True(t, errors.As(err, &exErr))
	assert.Equal(t, ReasonNoText, exErr.Reason)
}

func TestExtractor_UnsupportedType(t *testing.T) {
	e := NewExtractor(nil)
	_, err := e.Extract(context.Background(), []byte("hello"), constants.FileType("TXT"))

	var exErr *ExtractionError
	require.True(t, errors.As(err, &exErr))
	assert.Equal(t, ReasonParseFailed, exErr.Reason)
}

func TestExtractor_GarbagePDF(t *testing.T) {
	e := NewExtractor(nil)
	_, err := e.Extract(context.Background(), []byte("not a pdf at all"), constants.FileTypePDF)

	var exErr *ExtractionError
	require.True(t, errors.As(err, &exErr))
	assert.Equal(t, ReasonParseFailed, exErr.Reason)
}
