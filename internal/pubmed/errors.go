package pubmed

import (
	"errors"
	"fmt"
)

// Common errors returned by the PubMed client.
var (
	// ErrNotFound indicates the PMID has no matching record.
	ErrNotFound = errors.New("not found in PubMed")

	// ErrRateLimited indicates the rate limit has been exceeded.
	ErrRateLimited = errors.New("PubMed rate limit exceeded")

	// ErrNetworkError indicates a network connectivity issue.
	ErrNetworkError = errors.New("network error communicating with PubMed")

	// ErrInvalidResponse indicates an unexpected API response.
	ErrInvalidResponse = errors.New("invalid response from PubMed")
)

// APIError represents an error from the Citation Exporter API.
type APIError struct {
	StatusCode int
	Message    string
	PMID       string // For context in lookup errors
}

func (e *APIError) Error() string {
	if e.PMID != "" {
		return fmt.Sprintf("PubMed API error (status %d): %s (PMID: %s)", e.StatusCode, e.Message, e.PMID)
	}
	return fmt.Sprintf("PubMed API error (status %d): %s", e.StatusCode, e.Message)
}

// IsNotFound returns true if the error indicates a record was not found.
func IsNotFound(err error) bool {
	if errors.Is(err, ErrNotFound) {
		return true
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == 404
	}
	return false
}

// IsRateLimited returns true if the error indicates rate limiting.
func IsRateLimited(err error) bool {
	if errors.Is(err, ErrRateLimited) {
		return true
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == 429
	}
	return false
}
