// ABOUTME: Custom error types for the aggregation core
// ABOUTME: Classifies source, enrichment and internal failures so callers can absorb or surface them

package errors

import (
	"errors"
	"fmt"
)

// SourceFetchError is returned when a feed could not be retrieved or parsed
type SourceFetchError struct {
	Source string
	URL    string
	Err    error
}

// Error implements the error interface
func (e *SourceFetchError) Error() string {
	return fmt.Sprintf("fetch source %s (%s): %v", e.Source, e.URL, e.Err)
}

// Unwrap returns the underlying cause
func (e *SourceFetchError) Unwrap() error {
	return e.Err
}

// EnrichmentError is returned when an article page could not be scraped for an image
type EnrichmentError struct {
	Link string
	Err  error
}

// Error implements the error interface
func (e *EnrichmentError) Error() string {
	return fmt.Sprintf("enrich %s: %v", e.Link, e.Err)
}

// Unwrap returns the underlying cause
func (e *EnrichmentError) Unwrap() error {
	return e.Err
}

// ExternalAPIError represents an unexpected response from an upstream server
type ExternalAPIError struct {
	StatusCode int
	Message    string
	API        string
}

// Error implements the error interface
func (e *ExternalAPIError) Error() string {
	return fmt.Sprintf("external API error from %s: %d - %s", e.API, e.StatusCode, e.Message)
}

// InternalError is an unexpected fault inside the pipeline itself
type InternalError struct {
	Op  string
	Err error
}

// Error implements the error interface
func (e *InternalError) Error() string {
	return fmt.Sprintf("internal error in %s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying cause
func (e *InternalError) Unwrap() error {
	return e.Err
}

// IsSourceFetch checks if an error is a SourceFetchError
func IsSourceFetch(err error) bool {
	var fetchErr *SourceFetchError
	return errors.As(err, &fetchErr)
}

// IsEnrichment checks if an error is an EnrichmentError
func IsEnrichment(err error) bool {
	var enrichErr *EnrichmentError
	return errors.As(err, &enrichErr)
}

// IsExternalAPI checks if an error is an ExternalAPIError
func IsExternalAPI(err error) bool {
	var apiErr *ExternalAPIError
	return errors.As(err, &apiErr)
}

// IsInternal checks if an error is an InternalError
func IsInternal(err error) bool {
	var internalErr *InternalError
	return errors.As(err, &internalErr)
}

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
