// ABOUTME: Error handling utilities for API handlers
// ABOUTME: Renders every error as a flat {"error": "..."} JSON body

package handlers

import (
	"sync"

	"github.com/danielgtaylor/huma/v2"

	coreerrors "bevtrends-api/core/errors"
)

// ErrorBody is the JSON error shape returned by every endpoint
type ErrorBody struct {
	status  int
	Message string `json:"error" doc:"Human readable error message"`
}

// Error implements error
func (e *ErrorBody) Error() string {
	return e.Message
}

// GetStatus implements huma.StatusError
func (e *ErrorBody) GetStatus() int {
	return e.status
}

var installErrorFormat sync.Once

// InstallErrorFormat makes huma emit ErrorBody instead of RFC 7807 problem details.
// Underlying errors are logged by the handlers, never exposed to clients.
func InstallErrorFormat() {
	installErrorFormat.Do(func() {
		huma.NewError = func(status int, msg string, errs ...error) huma.StatusError {
			return &ErrorBody{status: status, Message: msg}
		}
	})
}

// toHumaError converts domain errors to HTTP errors with a client-safe message
func toHumaError(err error, msg string) error {
	if err == nil {
		return nil
	}

	if coreerrors.IsExternalAPI(err) {
		return huma.Error502BadGateway(msg, err)
	}

	return huma.Error500InternalServerError(msg, err)
}
