// ABOUTME: Mappers for job, result and dataset response DTOs
// ABOUTME: Pure conversions, no validation or business logic

package mappers

import (
	"keyword-intel-api/api/dto/responses"
	"keyword-intel-api/core/domain"
)

// ToJobResponse maps a tracking job to its wire form
func ToJobResponse(job domain.RankJob) responses.JobResponse {
	return responses.JobResponse{
		ID:        job.ID,
		URL:       job.URL,
		Keyword:   job.Keyword,
		CreatedAt: job.CreatedAt,
	}
}

// ToJobListResponse maps one page of jobs
func ToJobListResponse(page domain.JobPage) responses.JobListResponse {
	jobs := make([]responses.JobResponse, len(page.Jobs))
	for i, job := range page.Jobs {
		jobs[i] = ToJobResponse(job)
	}
	return responses.JobListResponse{
		Jobs:    jobs,
		Total:   page.Total,
		Page:    page.Page,
		PerPage: page.PerPage,
	}
}

// ToRankResultResponse maps one rank observation
func ToRankResultResponse(result domain.RankResult) responses.RankResultResponse {
	return responses.RankResultResponse{
		JobID: result.JobID,
		Rank:  result.Rank,
		RunAt: result.RunAt,
	}
}

// ToRankHistoryResponse maps a job's check history
func ToRankHistoryResponse(results []domain.RankResult) responses.RankHistoryResponse {
	out := make([]responses.RankResultResponse, len(results))
	for i, result := range results {
		out[i] = ToRankResultResponse(result)
	}
	return responses.RankHistoryResponse{Results: out}
}

// ToDatasetResponse maps snapshot metadata
func ToDatasetResponse(dataset domain.Dataset) responses.DatasetResponse {
	return responses.DatasetResponse{
		ID:      dataset.ID,
		Name:    dataset.Name,
		Rows:    len(dataset.Rows),
		SavedAt: dataset.SavedAt,
	}
}

// ToDatasetListResponse maps stored snapshots, most recent first
func ToDatasetListResponse(datasets []domain.Dataset) responses.DatasetListResponse {
	out := make([]responses.DatasetResponse, len(datasets))
	for i, dataset := range datasets {
		out[i] = ToDatasetResponse(dataset)
	}
	return responses.DatasetListResponse{Datasets: out}
}
