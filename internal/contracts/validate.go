package contracts

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rcmkit/contract-analyzer/constants"
	"github.com/rcmkit/contract-analyzer/internal/common"
)

// UploadRequest is the declared metadata and content of an incoming file.
// Nothing is persisted until it passes validation.
type UploadRequest struct {
	Filename    string
	ContentType string
	Data        []byte
}

// validateUpload checks intake constraints and resolves the detected file
// type. Rejections happen before any record or blob exists.
func validateUpload(req UploadRequest, maxSize int64) (constants.FileType, error) {
	name := strings.TrimSpace(req.Filename)
	if name == "" {
		return "", validationError("filename is required")
	}

	fileType := constants.MapExtToFileType(filepath.Ext(name))
	if fileType == "" {
		// fall back to the declared content type for extensionless uploads
		if ct, ok := constants.AllowedContentTypes[req.ContentType]; ok {
			fileType = ct
		}
	}
	if fileType == "" {
		return "", validationError(fmt.Sprintf("unsupported file type %q: only PDF and DOCX are accepted", filepath.Ext(name)))
	}

	size := int64(len(req.Data))
	if size == 0 {
		return "", validationError("uploaded file is empty")
	}
	if size > maxSize {
		return "", validationError(fmt.Sprintf("file too large: %d bytes (max %d)", size, maxSize))
	}
	return fileType, nil
}

func validationError(msg string) error {
	return common.NewAppError("VALIDATION_ERROR", msg, common.ErrValidation)
}
