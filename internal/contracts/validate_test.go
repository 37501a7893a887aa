package contracts

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rcmkit/contract-analyzer/constants"
	"github.com/rcmkit/contract-analyzer/internal/common"
)

const testMaxSize = 1024

func TestValidateUpload_PDFByExtension(t *testing.T) {
	ft, err := validateUpload(UploadRequest{
		Filename: "msa-acme.PDF",
		Data:     []byte("%PDF-1.7"),
	}, testMaxSize)
	require.NoError(t, err)
	assert.Equal(t, constants.FileTypePDF, ft)
}

func TestValidateUpload_DOCXByContentType(t *testing.T) {
	// extensionless upload falls back to the declared content type
	ft, err := validateUpload(UploadRequest{
		Filename:    "contract_final_v3",
		ContentType: "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
		Data:        []byte("PK"),
	}, testMaxSize)
	require.NoError(t, err)
	assert.Equal(t, constants.FileTypeDOCX, ft)
}

func TestValidateUpload_UnsupportedExtension(t *testing.T) {
	_, err := validateUpload(UploadRequest{
		Filename: "notes.txt",
		Data:     []byte("plain text"),
	}, testMaxSize)
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrValidation))
}

func TestValidateUpload_MissingFilename(t *testing.T) {
	_, err := validateUpload(UploadRequest{
		Filename: "   ",
		Data:     []byte("%PDF-1.7"),
	}, testMaxSize)
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrValidation))
}

func TestValidateUpload_EmptyFile(t *testing.T) {
	_, err := validateUpload(UploadRequest{
		Filename: "empty.pdf",
		Data:     nil,
	}, testMaxSize)
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrValidation))
}

func TestValidateUpload_SizeBoundary(t *testing.T) {
	atLimit := UploadRequest{
		Filename: "big.pdf",
		Data:     bytes.Repeat([]byte("a"), testMaxSize),
	}
	_, err := validateUpload(atLimit, testMaxSize)
	assert.NoError(t, err, "exactly max size is accepted")

	overLimit := UploadRequest{
		Filename: "bigger.pdf",
		Data:     bytes.Repeat([]byte("a"), testMaxSize+1),
	}
	_, err = validateUpload(overLimit, testMaxSize)
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrValidation))
}
