package constants

import "strings"

// FileType is the detected document format for an uploaded contract.
type FileType string

// Stable values (store these exact strings in DB).
const (
	FileTypePDF  FileType = "PDF"
	FileTypeDOCX FileType = "DOCX"
)

// FileTypes holds the allowed document formats for contract uploads.
var FileTypes = []string{string(FileTypePDF), string(FileTypeDOCX)}

// AllowedContentTypes maps acceptable upload content types to a file type.
var AllowedContentTypes = map[string]FileType{
	"application/pdf": FileTypePDF,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": FileTypeDOCX,
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// MapExtToFileType returns the file type for a filename extension,
// or "" when the extension is not supported.
func MapExtToFileType(ext string) FileType {
	switch NormalizeExt(ext) {
	case "pdf":
		return FileTypePDF
	case "docx":
		return FileTypeDOCX
	default:
		return ""
	}
}
