// ABOUTME: Keyword research service orchestrating analysis calls and merging
// ABOUTME: Validates input, calls the analysis collaborator, merges results

package research

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"time"

	"keyword-intel-api/core/domain"
	apperrors "keyword-intel-api/core/errors"
	"keyword-intel-api/core/interfaces"
	"keyword-intel-api/core/normalize"
)

const (
	serviceName = "keyword-research"

	// analysisCacheTTL bounds how long an identical analysis response is reused
	analysisCacheTTL = 15 * time.Minute
)

// Options configures the research service
type Options struct {
	// AnalysisURL is the keyword-research analysis endpoint
	AnalysisURL string

	// Normalize controls raw-row normalization; zero value uses the defaults
	Normalize normalize.Config
}

// Service coordinates keyword-research analysis and the working set
type Service struct {
	deps  *interfaces.Dependencies
	store *Store
	opts  Options
}

// NewService creates a new research service
func NewService(deps *interfaces.Dependencies, store *Store, opts Options) *Service {
	if opts.Normalize.Aliases.Fields == nil {
		opts.Normalize = normalize.DefaultConfig()
	}
	if opts.Normalize.EstimateVisitors == nil {
		opts.Normalize.EstimateVisitors = normalize.DefaultVisitorEstimator
	}
	return &Service{deps: deps, store: store, opts: opts}
}

// AnalysisOutcome reports the result of one analysis call
type AnalysisOutcome struct {
	// Rows is the working set snapshot after the merge
	Rows []domain.KeywordInsight

	// Added is how many normalized rows the provider contributed
	Added int

	// Dropped is how many raw rows failed normalization
	Dropped int

	// Warning is set when the provider succeeded but no rows survived
	// normalization and row-level errors were reported
	Warning *apperrors.PartialDataWarning

	// Summary aggregates the post-merge working set
	Summary Summary
}

type analysisRequest struct {
	URL      string   `json:"url"`
	Keywords []string `json:"keywords"`
}

type analysisResponse struct {
	Success bool                     `json:"success"`
	Rows    []map[string]interface{} `json:"rows"`
	Errors  []string                 `json:"errors,omitempty"`
}

// Analyze validates the input, calls the analysis collaborator, normalizes
// the returned rows and merges them into the working set. The working set is
// untouched when the call fails or yields no usable rows.
func (s *Service) Analyze(ctx context.Context, rawURL string, keywords []string) (*AnalysisOutcome, error) {
	pageURL, err := normalize.URL(rawURL)
	if err != nil {
		return nil, err
	}

	cleaned := make([]string, 0, len(keywords))
	for _, k := range keywords {
		if k = strings.TrimSpace(k); k != "" {
			cleaned = append(cleaned, k)
		}
	}
	if len(cleaned) == 0 {
		return nil, &apperrors.ValidationError{Field: "keywords", Message: "at least one keyword is required"}
	}

	resp, err := s.fetchAnalysis(ctx, pageURL, cleaned)
	if err != nil {
		return nil, err
	}

	if !resp.Success {
		return nil, &apperrors.RemoteServiceError{
			Message: firstOr(resp.Errors, "analysis request failed"),
			Service: serviceName,
		}
	}

	batch := normalize.InsightBatch(resp.Rows, s.opts.Normalize)

	outcome := &AnalysisOutcome{Added: len(batch.Rows), Dropped: batch.Dropped}

	if len(batch.Rows) == 0 {
		outcome.Rows = s.store.Snapshot()
		outcome.Summary = Summarize(outcome.Rows)
		if len(resp.Errors) > 0 {
			outcome.Warning = &apperrors.PartialDataWarning{Service: serviceName, Errors: resp.Errors}
			s.deps.Logger.Warn("analysis returned no usable rows", map[string]interface{}{
				"url":             pageURL,
				"provider_errors": len(resp.Errors),
			})
		}
		return outcome, nil
	}

	outcome.Rows = s.store.Merge(batch.Rows)
	outcome.Summary = Summarize(outcome.Rows)

	s.deps.Logger.Info("analysis merged into working set", map[string]interface{}{
		"url":     pageURL,
		"added":   outcome.Added,
		"dropped": outcome.Dropped,
		"total":   len(outcome.Rows),
	})
	return outcome, nil
}

func (s *Service) fetchAnalysis(ctx context.Context, pageURL string, keywords []string) (*analysisResponse, error) {
	cacheKey := "research:" + pageURL + ":" + strings.Join(keywords, ",")
	if s.deps.Cache != nil {
		if data, ok := s.deps.Cache.Get(ctx, cacheKey); ok {
			var cached analysisResponse
			if err := json.Unmarshal(data, &cached); err == nil {
				return &cached, nil
			}
		}
	}

	payload, err := json.Marshal(analysisRequest{URL: pageURL, Keywords: keywords})
	if err != nil {
		return nil, apperrors.WrapError(err, "encoding analysis request")
	}

	body, err := s.deps.HTTPClient.Post(ctx, s.opts.AnalysisURL, bytes.NewReader(payload), s.authHeaders(ctx))
	if err != nil {
		if apperrors.IsRemoteService(err) {
			return nil, err
		}
		return nil, &apperrors.RemoteServiceError{Message: err.Error(), Service: serviceName}
	}

	var resp analysisResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, &apperrors.RemoteServiceError{Message: "unreadable analysis response", Service: serviceName}
	}

	if s.deps.Cache != nil && resp.Success {
		if data, err := json.Marshal(resp); err == nil {
			_ = s.deps.Cache.Set(ctx, cacheKey, data, analysisCacheTTL)
		}
	}
	return &resp, nil
}

func (s *Service) authHeaders(ctx context.Context) map[string]string {
	headers := map[string]string{"Content-Type": "application/json"}
	if s.deps.Credentials != nil {
		if token := s.deps.Credentials.Token(ctx); token != "" {
			headers["Authorization"] = "Bearer " + token
		}
	}
	return headers
}

// View returns the working set filtered and sorted for display. An invalid
// or empty sort key leaves the merge ordering intact.
func (s *Service) View(query string, key SortKey, dir Direction) []domain.KeywordInsight {
	rows := Filter(s.store.Snapshot(), query)
	if ValidSortKey(key) {
		rows = SortRows(rows, key, dir)
	}
	return rows
}

// WorkingSet returns the current working set snapshot
func (s *Service) WorkingSet() []domain.KeywordInsight {
	return s.store.Snapshot()
}

// ReplaceWorkingSet swaps the working set, used when loading a snapshot
func (s *Service) ReplaceWorkingSet(rows []domain.KeywordInsight) {
	s.store.Replace(rows)
}

// Export serializes the current view as CSV and returns the file name and
// content
func (s *Service) Export(datasetName, query string, key SortKey, dir Direction) (string, []byte) {
	return ExportCSV(s.View(query, key, dir), datasetName)
}

func firstOr(list []string, fallback string) string {
	if len(list) > 0 {
		return list[0]
	}
	return fallback
}
