package middleware

import (
	"fmt"
	"regexp"
	"strings"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// ValidateEmail validates a user email address
func ValidateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return fmt.Errorf("user_email is required")
	}
	if len(email) > 254 {
		return fmt.Errorf("user_email too long")
	}
	if !emailPattern.MatchString(email) {
		return fmt.Errorf("user_email is not a valid email address")
	}
	return nil
}

// ValidateDocumentTitle validates an optional document title
func ValidateDocumentTitle(title string) error {
	if len(title) > 255 {
		return fmt.Errorf("document_title too long (max 255 characters)")
	}
	return nil
}

// ValidateUploadSize rejects uploads above the limit
func ValidateUploadSize(size int64, limit int64) error {
	if size <= 0 {
		return fmt.Errorf("uploaded file is empty")
	}
	if size > limit {
		return fmt.Errorf("uploaded file too large (max %d bytes)", limit)
	}
	return nil
}

// SanitizeFilename strips path separators and control characters so the
// name is safe to echo back in headers and object keys.
func SanitizeFilename(name string) string {
	name = strings.TrimSpace(name)
	name = strings.ReplaceAll(name, "\\", "/")
	if idx := strings.LastIndex(name, "/"); idx >= 0 {
		name = name[idx+1:]
	}
	var b strings.Builder
	for _, r := range name {
		if r < 32 || r == 127 {
			continue
		}
		b.WriteRune(r)
	}
	if b.Len() == 0 {
		return "document"
	}
	return b.String()
}
