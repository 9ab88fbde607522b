// ABOUTME: Job handlers for the Huma API
// ABOUTME: HTTP endpoints for tracking jobs, rank history and rechecks

package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"keyword-intel-api/api/dto/mappers"
	"keyword-intel-api/api/dto/requests"
	"keyword-intel-api/api/dto/responses"
	"keyword-intel-api/core/domain"
	apperrors "keyword-intel-api/core/errors"
)

// JobService defines the methods needed from the jobs service
type JobService interface {
	Create(ctx context.Context, ownerID, rawURL, keyword string) (domain.RankJob, error)
	List(ctx context.Context, ownerID string, page, perPage int) (domain.JobPage, error)
	Delete(ctx context.Context, id string) error
}

// ResultService defines the methods needed from the results service
type ResultService interface {
	Append(ctx context.Context, jobID string, rank *int, runAt time.Time) (domain.RankResult, error)
	History(ctx context.Context, jobID string) ([]domain.RankResult, error)
}

// RecheckService defines the methods needed from the recheck service
type RecheckService interface {
	Dispatch(ctx context.Context, jobID string) error
}

// JobHandler handles job-related HTTP requests
type JobHandler struct {
	jobs    JobService
	results ResultService
	recheck RecheckService
}

// NewJobHandler creates a new job handler
func NewJobHandler(jobs JobService, results ResultService, recheck RecheckService) *JobHandler {
	return &JobHandler{jobs: jobs, results: results, recheck: recheck}
}

// RegisterRoutes registers all job-related routes
func (h *JobHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "createJob",
		Method:        http.MethodPost,
		Path:          "/jobs",
		Summary:       "Register a tracking job",
		Description:   "Registers a (URL, keyword) pair for rank tracking",
		Tags:          []string{"Jobs"},
		DefaultStatus: http.StatusCreated,
	}, h.CreateJob)

	huma.Register(api, huma.Operation{
		OperationID: "listJobs",
		Method:      http.MethodGet,
		Path:        "/jobs",
		Summary:     "List tracking jobs",
		Description: "Returns the caller's tracking jobs, newest first, in pages of 10",
		Tags:        []string{"Jobs"},
	}, h.ListJobs)

	huma.Register(api, huma.Operation{
		OperationID: "deleteJob",
		Method:      http.MethodDelete,
		Path:        "/jobs/{id}",
		Summary:     "Delete a tracking job",
		Description: "Removes a job and its accumulated rank history",
		Tags:        []string{"Jobs"},
	}, h.DeleteJob)

	huma.Register(api, huma.Operation{
		OperationID: "getJobResults",
		Method:      http.MethodGet,
		Path:        "/jobs/{id}/results",
		Summary:     "Get rank history",
		Description: "Returns a job's rank observations, oldest first, capped at 200",
		Tags:        []string{"Jobs"},
	}, h.GetResults)

	huma.Register(api, huma.Operation{
		OperationID:   "appendJobResult",
		Method:        http.MethodPost,
		Path:          "/jobs/{id}/results",
		Summary:       "Record a rank observation",
		Description:   "Appends one rank-check result to a job's history",
		Tags:          []string{"Jobs"},
		DefaultStatus: http.StatusCreated,
	}, h.AppendResult)

	huma.Register(api, huma.Operation{
		OperationID:   "recheckJob",
		Method:        http.MethodPost,
		Path:          "/jobs/{id}/recheck",
		Summary:       "Dispatch a manual recheck",
		Description:   "Asks the external rank-check service to re-run the check for this job; the result arrives in the history asynchronously",
		Tags:          []string{"Jobs"},
		DefaultStatus: http.StatusAccepted,
	}, h.Recheck)
}

// CreateJobInput defines the input for the CreateJob operation
type CreateJobInput struct {
	OwnerID string `header:"X-Owner-ID" doc:"Caller identity"`
	Body    requests.CreateJobRequest
}

// CreateJobOutput defines the output for the CreateJob operation
type CreateJobOutput struct {
	Body responses.JobResponse
}

// CreateJob handles POST /jobs
func (h *JobHandler) CreateJob(ctx context.Context, input *CreateJobInput) (*CreateJobOutput, error) {
	job, err := h.jobs.Create(ctx, input.OwnerID, input.Body.URL, input.Body.Keyword)
	if err != nil {
		return nil, toHumaError(err)
	}
	return &CreateJobOutput{Body: mappers.ToJobResponse(job)}, nil
}

// ListJobsInput defines the input for the ListJobs operation
type ListJobsInput struct {
	OwnerID string `header:"X-Owner-ID" doc:"Caller identity"`
	Page    int    `query:"page" default:"1" minimum:"1" doc:"1-based page number"`
	PerPage int    `query:"per_page" default:"10" maximum:"100" doc:"Page size"`
}

// ListJobsOutput defines the output for the ListJobs operation
type ListJobsOutput struct {
	Body responses.JobListResponse
}

// ListJobs handles GET /jobs
func (h *JobHandler) ListJobs(ctx context.Context, input *ListJobsInput) (*ListJobsOutput, error) {
	page, err := h.jobs.List(ctx, input.OwnerID, input.Page, input.PerPage)
	if err != nil {
		return nil, toHumaError(err)
	}
	return &ListJobsOutput{Body: mappers.ToJobListResponse(page)}, nil
}

// DeleteJobInput defines the input for the DeleteJob operation
type DeleteJobInput struct {
	ID string `path:"id" doc:"Job ID"`
}

// DeleteJobOutput defines the output for the DeleteJob operation
type DeleteJobOutput struct {
	Body struct {
		Deleted bool `json:"deleted"`
	}
}

// DeleteJob handles DELETE /jobs/{id}
func (h *JobHandler) DeleteJob(ctx context.Context, input *DeleteJobInput) (*DeleteJobOutput, error) {
	if err := h.jobs.Delete(ctx, input.ID); err != nil {
		return nil, toHumaError(err)
	}
	out := &DeleteJobOutput{}
	out.Body.Deleted = true
	return out, nil
}

// GetResultsInput defines the input for the GetResults operation
type GetResultsInput struct {
	ID string `path:"id" doc:"Job ID"`
}

// GetResultsOutput defines the output for the GetResults operation
type GetResultsOutput struct {
	Body responses.RankHistoryResponse
}

// GetResults handles GET /jobs/{id}/results
func (h *JobHandler) GetResults(ctx context.Context, input *GetResultsInput) (*GetResultsOutput, error) {
	history, err := h.results.History(ctx, input.ID)
	if err != nil {
		return nil, toHumaError(err)
	}
	return &GetResultsOutput{Body: mappers.ToRankHistoryResponse(history)}, nil
}

// AppendResultInput defines the input for the AppendResult operation
type AppendResultInput struct {
	ID   string `path:"id" doc:"Job ID"`
	Body requests.AppendResultRequest
}

// AppendResultOutput defines the output for the AppendResult operation
type AppendResultOutput struct {
	Body responses.RankResultResponse
}

// AppendResult handles POST /jobs/{id}/results
func (h *JobHandler) AppendResult(ctx context.Context, input *AppendResultInput) (*AppendResultOutput, error) {
	var runAt time.Time
	if input.Body.RunAt != "" {
		parsed, err := time.Parse(time.RFC3339, input.Body.RunAt)
		if err != nil {
			return nil, toHumaError(&apperrors.ValidationError{Field: "run_at", Message: "must be RFC 3339"})
		}
		runAt = parsed
	}

	result, err := h.results.Append(ctx, input.ID, input.Body.Rank, runAt)
	if err != nil {
		return nil, toHumaError(err)
	}
	return &AppendResultOutput{Body: mappers.ToRankResultResponse(result)}, nil
}

// RecheckInput defines the input for the Recheck operation
type RecheckInput struct {
	ID string `path:"id" doc:"Job ID"`
}

// RecheckOutput defines the output for the Recheck operation
type RecheckOutput struct {
	Body responses.RecheckResponse
}

// Recheck handles POST /jobs/{id}/recheck
func (h *JobHandler) Recheck(ctx context.Context, input *RecheckInput) (*RecheckOutput, error) {
	if err := h.recheck.Dispatch(ctx, input.ID); err != nil {
		return nil, toHumaError(err)
	}
	return &RecheckOutput{Body: responses.RecheckResponse{Accepted: true}}, nil
}
