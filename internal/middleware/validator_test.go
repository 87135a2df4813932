package middleware

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	assert.NoError(t, ValidateEmail("alice@example.com"))
	assert.NoError(t, ValidateEmail("  smp@gmail.com  "))

	assert.Error(t, ValidateEmail(""))
	assert.Error(t, ValidateEmail("not-an-email"))
	assert.Error(t, ValidateEmail("missing@tld"))
	assert.Error(t, ValidateEmail(strings.Repeat("a", 250)+"@example.com"))
}

func TestValidateDocumentTitle(t *testing.T) {
	assert.NoError(t, ValidateDocumentTitle(""))
	assert.NoError(t, ValidateDocumentTitle("Business Loan Agreement"))
	assert.Error(t, ValidateDocumentTitle(strings.Repeat("x", 256)))
}

func TestValidateUploadSize(t *testing.T) {
	assert.NoError(t, ValidateUploadSize(1024, 32<<20))
	assert.Error(t, ValidateUploadSize(0, 32<<20))
	assert.Error(t, ValidateUploadSize((32<<20)+1, 32<<20))
}

func TestSanitizeFilename(t *testing.T) {
	assert.Equal(t, "loan.pdf", SanitizeFilename("loan.pdf"))
	assert.Equal(t, "loan.pdf", SanitizeFilename("../../etc/loan.pdf"))
	assert.Equal(t, "loan.pdf", SanitizeFilename(`C:\uploads\loan.pdf`))
	assert.Equal(t, "document", SanitizeFilename(""))
	assert.Equal(t, "report.pdf", SanitizeFilename("rep\x00ort.pdf"))
}
