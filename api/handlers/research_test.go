package handlers

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"

	"keyword-intel-api/core/domain"
	apperrors "keyword-intel-api/core/errors"
	"keyword-intel-api/core/research"
)

// mockResearchService is a mock implementation of the research service
type mockResearchService struct {
	analyzeFunc func(ctx context.Context, rawURL string, keywords []string) (*research.AnalysisOutcome, error)
	viewFunc    func(query string, key research.SortKey, dir research.Direction) []domain.KeywordInsight
	exportFunc  func(datasetName, query string, key research.SortKey, dir research.Direction) (string, []byte)
}

func (m *mockResearchService) Analyze(ctx context.Context, rawURL string, keywords []string) (*research.AnalysisOutcome, error) {
	if m.analyzeFunc != nil {
		return m.analyzeFunc(ctx, rawURL, keywords)
	}
	return &research.AnalysisOutcome{}, nil
}

func (m *mockResearchService) View(query string, key research.SortKey, dir research.Direction) []domain.KeywordInsight {
	if m.viewFunc != nil {
		return m.viewFunc(query, key, dir)
	}
	return nil
}

func (m *mockResearchService) Export(datasetName, query string, key research.SortKey, dir research.Direction) (string, []byte) {
	if m.exportFunc != nil {
		return m.exportFunc(datasetName, query, key, dir)
	}
	return "research.csv", nil
}

func newResearchTestAPI(t *testing.T, svc ResearchService) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewResearchHandler(svc).RegisterRoutes(api)
	return api
}

func TestAnalyze(t *testing.T) {
	svc := &mockResearchService{
		analyzeFunc: func(ctx context.Context, rawURL string, keywords []string) (*research.AnalysisOutcome, error) {
			if rawURL != "example.com" {
				t.Errorf("Expected example.com, got %q", rawURL)
			}
			if len(keywords) != 1 || keywords[0] != "seo tips" {
				t.Errorf("Unexpected keywords %v", keywords)
			}
			pos := 3
			return &research.AnalysisOutcome{
				Rows:    []domain.KeywordInsight{{Keyword: "seo tips", RankingPosition: &pos}},
				Added:   1,
				Summary: research.Summary{Keywords: 1, Ranked: 1, TopTen: 1},
			}, nil
		},
	}
	api := newResearchTestAPI(t, svc)

	resp := api.Post("/research", map[string]interface{}{
		"url":      "example.com",
		"keywords": []string{"seo tips"},
	})

	if resp.Code != 200 {
		t.Fatalf("Expected status 200, got %d", resp.Code)
	}

	var body struct {
		Added   int `json:"added"`
		Summary struct {
			Keywords int `json:"keywords"`
		} `json:"summary"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if body.Added != 1 || body.Summary.Keywords != 1 {
		t.Errorf("Unexpected body added=%d keywords=%d", body.Added, body.Summary.Keywords)
	}
}

func TestAnalyzeWarningSurfaced(t *testing.T) {
	svc := &mockResearchService{
		analyzeFunc: func(ctx context.Context, rawURL string, keywords []string) (*research.AnalysisOutcome, error) {
			return &research.AnalysisOutcome{
				Warning: &apperrors.PartialDataWarning{Service: "keyword-research", Errors: []string{"row 3 malformed"}},
			}, nil
		},
	}
	api := newResearchTestAPI(t, svc)

	resp := api.Post("/research", map[string]interface{}{
		"url":      "example.com",
		"keywords": []string{"seo"},
	})

	if resp.Code != 200 {
		t.Fatalf("Expected status 200, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "warning") {
		t.Error("Expected a warning in the response body")
	}
}

func TestAnalyzeRemoteFailure(t *testing.T) {
	svc := &mockResearchService{
		analyzeFunc: func(ctx context.Context, rawURL string, keywords []string) (*research.AnalysisOutcome, error) {
			return nil, &apperrors.RemoteServiceError{StatusCode: 500, Message: "upstream down", Service: "keyword-research"}
		},
	}
	api := newResearchTestAPI(t, svc)

	resp := api.Post("/research", map[string]interface{}{
		"url":      "example.com",
		"keywords": []string{"seo"},
	})

	if resp.Code != 503 {
		t.Errorf("Expected status 503, got %d", resp.Code)
	}
}

func TestWorkingSetPassesViewParams(t *testing.T) {
	svc := &mockResearchService{
		viewFunc: func(query string, key research.SortKey, dir research.Direction) []domain.KeywordInsight {
			if query != "seo" {
				t.Errorf("Expected query seo, got %q", query)
			}
			if key != research.SortByMonthlySearches || dir != research.Descending {
				t.Errorf("Unexpected sort %q %q", key, dir)
			}
			return []domain.KeywordInsight{{Keyword: "seo tips"}}
		},
	}
	api := newResearchTestAPI(t, svc)

	resp := api.Get("/research?query=seo&sort_by=monthly_searches&direction=desc")

	if resp.Code != 200 {
		t.Errorf("Expected status 200, got %d", resp.Code)
	}
}

func TestExportSetsDownloadHeaders(t *testing.T) {
	svc := &mockResearchService{
		exportFunc: func(datasetName, query string, key research.SortKey, dir research.Direction) (string, []byte) {
			if datasetName != "launch" {
				t.Errorf("Expected name launch, got %q", datasetName)
			}
			return "launch.csv", []byte("\"Keyword\"\n")
		},
	}
	api := newResearchTestAPI(t, svc)

	resp := api.Get("/research/export?name=launch")

	if resp.Code != 200 {
		t.Fatalf("Expected status 200, got %d", resp.Code)
	}
	if ct := resp.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/csv") {
		t.Errorf("Expected text/csv content type, got %q", ct)
	}
	if cd := resp.Header().Get("Content-Disposition"); !strings.Contains(cd, `filename="launch.csv"`) {
		t.Errorf("Unexpected Content-Disposition %q", cd)
	}
}
