// ABOUTME: Error handling utilities for API handlers
// ABOUTME: Converts domain errors to appropriate HTTP responses

package handlers

import (
	"errors"

	"github.com/danielgtaylor/huma/v2"

	apperrors "keyword-intel-api/core/errors"
)

// toHumaError converts domain errors to appropriate Huma HTTP errors
func toHumaError(err error) error {
	if err == nil {
		return nil
	}

	if apperrors.IsNotFound(err) {
		return huma.Error404NotFound(err.Error())
	}

	if apperrors.IsValidation(err) {
		return huma.Error400BadRequest(err.Error())
	}

	if apperrors.IsRemoteService(err) {
		var remoteErr *apperrors.RemoteServiceError
		if errors.As(err, &remoteErr) {
			switch {
			case remoteErr.StatusCode == 429:
				return huma.Error429TooManyRequests("Rate limited by external service")
			case remoteErr.StatusCode >= 500:
				return huma.Error503ServiceUnavailable("External service error", err)
			default:
				// Non-success collaborator results surface as a bad gateway
				return huma.Error502BadGateway(remoteErr.Message)
			}
		}
	}

	return huma.Error500InternalServerError("Internal server error", err)
}
