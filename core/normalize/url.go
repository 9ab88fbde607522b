// ABOUTME: URL validation and normalization for tracked pages
// ABOUTME: Retries scheme-less inputs with an https prefix before rejecting

package normalize

import (
	"net/url"
	"strings"

	apperrors "keyword-intel-api/core/errors"
)

// URL validates a raw address and returns its normalized absolute form.
// Scheme-less inputs like "example.com/page" are retried with an https
// prefix. Inputs that still lack a host are rejected with a validation error.
func URL(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", &apperrors.ValidationError{Field: "url", Message: "url is required"}
	}

	if u, err := url.Parse(trimmed); err == nil && u.Scheme != "" && u.Host != "" {
		return u.String(), nil
	}

	if u, err := url.Parse("https://" + trimmed); err == nil && u.Host != "" {
		return u.String(), nil
	}

	return "", &apperrors.ValidationError{Field: "url", Message: "invalid url: " + trimmed}
}
