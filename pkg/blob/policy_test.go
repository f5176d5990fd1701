package blob

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var pdfBytes = []byte("%PDF-1.7 fake document body")

func TestValidateResumeAccepted(t *testing.T) {
	result := ValidateResume("resume.pdf", int64(len(pdfBytes)), "application/pdf", pdfBytes)
	assert.True(t, result.Valid)
	assert.Equal(t, ".pdf", result.Extension)
	assert.Empty(t, result.Error)
}

func TestValidateResumeRejectsWrongMIME(t *testing.T) {
	result := ValidateResume("resume.docx", 100, "application/msword", pdfBytes)
	assert.False(t, result.Valid)
	assert.Equal(t, "Only PDF files are allowed", result.Error)
}

func TestValidateResumeRejectsOversize(t *testing.T) {
	result := ValidateResume("resume.pdf", MaxFileSize+1, "application/pdf", pdfBytes)
	assert.False(t, result.Valid)
	assert.Equal(t, "File size must be less than 5MB", result.Error)
}

func TestValidateResumeRejectsSpoofedContent(t *testing.T) {
	// Declared as PDF but the content is something else entirely
	result := ValidateResume("resume.pdf", 20, "application/pdf", []byte("MZ\x90\x00 not a pdf"))
	assert.False(t, result.Valid)
	assert.Equal(t, "File content does not match its type", result.Error)
}

func TestValidateResumeRejectsEmptyFile(t *testing.T) {
	result := ValidateResume("resume.pdf", 0, "application/pdf", nil)
	assert.False(t, result.Valid)
}
