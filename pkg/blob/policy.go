package blob

import (
	"bytes"
	"path/filepath"
	"strings"
)

// Upload policy for resume intake: one PDF, at most 5 MiB, stored under a
// fixed logical prefix with a random key.
const (
	MaxFileSize  = 5 * 1024 * 1024
	ResumePrefix = "resumes/"
	AllowedMIME  = "application/pdf"
)

// %PDF
var pdfMagic = []byte{0x25, 0x50, 0x44, 0x46}

// FileValidationResult contains the result of file validation
type FileValidationResult struct {
	Valid     bool   // Whether the file passed all checks
	Extension string // Detected file extension
	Error     string // Error message if validation failed
}

// ValidateResume checks an uploaded resume against the intake policy:
// 1. Size cap
// 2. Declared MIME type must be exactly application/pdf
// 3. Content must start with the PDF magic bytes (catches renamed files)
func ValidateResume(filename string, size int64, declaredMIME string, head []byte) FileValidationResult {
	result := FileValidationResult{
		Extension: strings.ToLower(filepath.Ext(filename)),
	}
	if result.Extension == "" {
		result.Extension = ".pdf"
	}

	if size > MaxFileSize {
		result.Error = "File size must be less than 5MB"
		return result
	}

	if declaredMIME != AllowedMIME {
		result.Error = "Only PDF files are allowed"
		return result
	}

	if len(head) < len(pdfMagic) || !bytes.HasPrefix(head, pdfMagic) {
		result.Error = "File content does not match its type"
		return result
	}

	result.Valid = true
	return result
}
