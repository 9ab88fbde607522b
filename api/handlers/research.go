// ABOUTME: Keyword research handlers for the Huma API
// ABOUTME: HTTP endpoints for analysis, working set views and CSV export

package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"keyword-intel-api/api/dto/mappers"
	"keyword-intel-api/api/dto/requests"
	"keyword-intel-api/api/dto/responses"
	"keyword-intel-api/core/domain"
	"keyword-intel-api/core/research"
)

// ResearchService defines the methods needed from the research service
type ResearchService interface {
	Analyze(ctx context.Context, rawURL string, keywords []string) (*research.AnalysisOutcome, error)
	View(query string, key research.SortKey, dir research.Direction) []domain.KeywordInsight
	Export(datasetName, query string, key research.SortKey, dir research.Direction) (string, []byte)
}

// ResearchHandler handles keyword research HTTP requests
type ResearchHandler struct {
	research ResearchService
}

// NewResearchHandler creates a new research handler
func NewResearchHandler(research ResearchService) *ResearchHandler {
	return &ResearchHandler{research: research}
}

// RegisterRoutes registers all research-related routes
func (h *ResearchHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "analyzeKeywords",
		Method:      http.MethodPost,
		Path:        "/research",
		Summary:     "Run keyword analysis",
		Description: "Calls the analysis provider for the given URL and keywords and merges the normalized rows into the working set",
		Tags:        []string{"Research"},
	}, h.Analyze)

	huma.Register(api, huma.Operation{
		OperationID: "getWorkingSet",
		Method:      http.MethodGet,
		Path:        "/research",
		Summary:     "View the working set",
		Description: "Returns the accumulated keyword rows, optionally filtered and sorted",
		Tags:        []string{"Research"},
	}, h.WorkingSet)

	huma.Register(api, huma.Operation{
		OperationID: "exportWorkingSet",
		Method:      http.MethodGet,
		Path:        "/research/export",
		Summary:     "Export the working set as CSV",
		Description: "Serializes the current view to a CSV download",
		Tags:        []string{"Research"},
	}, h.Export)
}

// AnalyzeInput defines the input for the Analyze operation
type AnalyzeInput struct {
	Body requests.AnalyzeRequest
}

// AnalyzeOutput defines the output for the Analyze operation
type AnalyzeOutput struct {
	Body responses.AnalysisResponse
}

// Analyze handles POST /research
func (h *ResearchHandler) Analyze(ctx context.Context, input *AnalyzeInput) (*AnalyzeOutput, error) {
	outcome, err := h.research.Analyze(ctx, input.Body.URL, input.Body.Keywords)
	if err != nil {
		return nil, toHumaError(err)
	}

	resp := responses.AnalysisResponse{
		Rows:    mappers.ToInsightResponses(outcome.Rows),
		Added:   outcome.Added,
		Dropped: outcome.Dropped,
		Summary: mappers.ToSummaryResponse(outcome.Summary),
	}
	if outcome.Warning != nil {
		resp.Warning = outcome.Warning.Error()
	}
	return &AnalyzeOutput{Body: resp}, nil
}

// WorkingSetInput defines the input for the WorkingSet operation
type WorkingSetInput struct {
	Query     string `query:"query" doc:"Case-insensitive keyword substring filter"`
	SortBy    string `query:"sort_by" doc:"Sort column: keyword, ranking_position, ranking_page_number, top_competitors_count, monthly_searches, daily_visitors or difficulty_score; anything else keeps merge order"`
	Direction string `query:"direction" default:"asc" enum:"asc,desc" doc:"Sort direction"`
}

// WorkingSetOutput defines the output for the WorkingSet operation
type WorkingSetOutput struct {
	Body responses.WorkingSetResponse
}

// WorkingSet handles GET /research
func (h *ResearchHandler) WorkingSet(ctx context.Context, input *WorkingSetInput) (*WorkingSetOutput, error) {
	rows := h.research.View(input.Query, research.SortKey(input.SortBy), research.Direction(input.Direction))
	return &WorkingSetOutput{Body: responses.WorkingSetResponse{
		Rows:    mappers.ToInsightResponses(rows),
		Summary: mappers.ToSummaryResponse(research.Summarize(rows)),
	}}, nil
}

// ExportInput defines the input for the Export operation
type ExportInput struct {
	Name      string `query:"name" doc:"Base name for the exported file"`
	Query     string `query:"query" doc:"Case-insensitive keyword substring filter"`
	SortBy    string `query:"sort_by" doc:"Sort column: keyword, ranking_position, ranking_page_number, top_competitors_count, monthly_searches, daily_visitors or difficulty_score; anything else keeps merge order"`
	Direction string `query:"direction" default:"asc" enum:"asc,desc" doc:"Sort direction"`
}

// ExportOutput defines the output for the Export operation
type ExportOutput struct {
	ContentType        string `header:"Content-Type"`
	ContentDisposition string `header:"Content-Disposition"`
	Body               []byte
}

// Export handles GET /research/export
func (h *ResearchHandler) Export(ctx context.Context, input *ExportInput) (*ExportOutput, error) {
	filename, data := h.research.Export(input.Name, input.Query, research.SortKey(input.SortBy), research.Direction(input.Direction))
	return &ExportOutput{
		ContentType:        "text/csv; charset=utf-8",
		ContentDisposition: `attachment; filename="` + filename + `"`,
		Body:               data,
	}, nil
}
