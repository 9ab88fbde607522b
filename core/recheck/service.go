// ABOUTME: Manual recheck dispatch to the external ranking-check collaborator
// ABOUTME: Fire-and-forget; results arrive later through the history store

package recheck

import (
	"bytes"
	"context"
	"encoding/json"

	apperrors "keyword-intel-api/core/errors"
	"keyword-intel-api/core/interfaces"
)

const serviceName = "manual-recheck"

// Options configures the recheck service
type Options struct {
	// RecheckURL is the manual-recheck endpoint
	RecheckURL string
}

// Service dispatches manual recheck requests for tracked jobs
type Service struct {
	deps *interfaces.Dependencies
	opts Options
}

// NewService creates a new recheck service
func NewService(deps *interfaces.Dependencies, opts Options) *Service {
	return &Service{deps: deps, opts: opts}
}

type recheckRequest struct {
	JobID string `json:"job_id"`
}

type recheckResponse struct {
	Error string `json:"error,omitempty"`
}

// Dispatch asks the collaborator to re-run the rank check for one job.
// It does not append a result itself: the collaborator records the outcome
// asynchronously and callers re-fetch the history afterward. Concurrent
// dispatches for the same job are not deduplicated here.
func (s *Service) Dispatch(ctx context.Context, jobID string) error {
	if _, err := s.deps.Jobs.Get(ctx, jobID); err != nil {
		return err
	}

	payload, err := json.Marshal(recheckRequest{JobID: jobID})
	if err != nil {
		return apperrors.WrapError(err, "encoding recheck request")
	}

	headers := map[string]string{"Content-Type": "application/json"}
	if s.deps.Credentials != nil {
		if token := s.deps.Credentials.Token(ctx); token != "" {
			headers["Authorization"] = "Bearer " + token
		}
	}

	body, err := s.deps.HTTPClient.Post(ctx, s.opts.RecheckURL, bytes.NewReader(payload), headers)
	if err != nil {
		if apperrors.IsRemoteService(err) {
			return err
		}
		return &apperrors.RemoteServiceError{Message: err.Error(), Service: serviceName}
	}

	var resp recheckResponse
	if len(body) > 0 {
		if err := json.Unmarshal(body, &resp); err != nil {
			return &apperrors.RemoteServiceError{Message: "unreadable recheck response", Service: serviceName}
		}
	}
	if resp.Error != "" {
		return &apperrors.RemoteServiceError{Message: resp.Error, Service: serviceName}
	}

	s.deps.Logger.Info("recheck accepted", map[string]interface{}{"job_id": jobID})
	return nil
}
