// ABOUTME: Dataset snapshot handlers for the Huma API
// ABOUTME: HTTP endpoints for saving, listing, loading and deleting snapshots

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

// DatasetService defines the methods needed from the datasets service
type DatasetService interface {
	Save(ctx context.Context, name string) (domain.Dataset, error)
	List(ctx context.Context) []domain.Dataset
	Load(ctx context.Context, id string) ([]domain.KeywordInsight, error)
	Delete(ctx context.Context, id string) error
}

// DatasetHandler handles dataset snapshot HTTP requests
type DatasetHandler struct {
	datasets DatasetService
}

// NewDatasetHandler creates a new dataset handler
func NewDatasetHandler(datasets DatasetService) *DatasetHandler {
	return &DatasetHandler{datasets: datasets}
}

// RegisterRoutes registers all dataset-related routes
func (h *DatasetHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "saveDataset",
		Method:        http.MethodPost,
		Path:          "/datasets",
		Summary:       "Save the working set",
		Description:   "Snapshots the current working set under a name; only the 20 most recent snapshots are kept",
		Tags:          []string{"Datasets"},
		DefaultStatus: http.StatusCreated,
	}, h.Save)

	huma.Register(api, huma.Operation{
		OperationID: "listDatasets",
		Method:      http.MethodGet,
		Path:        "/datasets",
		Summary:     "List saved snapshots",
		Description: "Returns snapshot metadata, most recently saved first",
		Tags:        []string{"Datasets"},
	}, h.List)

	huma.Register(api, huma.Operation{
		OperationID: "loadDataset",
		Method:      http.MethodPost,
		Path:        "/datasets/{id}/load",
		Summary:     "Load a snapshot",
		Description: "Replaces the working set with the stored snapshot, re-normalizing the rows first",
		Tags:        []string{"Datasets"},
	}, h.Load)

	huma.Register(api, huma.Operation{
		OperationID: "deleteDataset",
		Method:      http.MethodDelete,
		Path:        "/datasets/{id}",
		Summary:     "Delete a snapshot",
		Tags:        []string{"Datasets"},
	}, h.Delete)
}

// SaveDatasetInput defines the input for the Save operation
type SaveDatasetInput struct {
	Body requests.SaveDatasetRequest
}

// SaveDatasetOutput defines the output for the Save operation
type SaveDatasetOutput struct {
	Body responses.DatasetResponse
}

// Save handles POST /datasets
func (h *DatasetHandler) Save(ctx context.Context, input *SaveDatasetInput) (*SaveDatasetOutput, error) {
	dataset, err := h.datasets.Save(ctx, input.Body.Name)
	if err != nil {
		return nil, toHumaError(err)
	}
	return &SaveDatasetOutput{Body: mappers.ToDatasetResponse(dataset)}, nil
}

// ListDatasetsInput defines the input for the List operation
type ListDatasetsInput struct{}

// ListDatasetsOutput defines the output for the List operation
type ListDatasetsOutput struct {
	Body responses.DatasetListResponse
}

// List handles GET /datasets
func (h *DatasetHandler) List(ctx context.Context, input *ListDatasetsInput) (*ListDatasetsOutput, error) {
	return &ListDatasetsOutput{Body: mappers.ToDatasetListResponse(h.datasets.List(ctx))}, nil
}

// LoadDatasetInput defines the input for the Load operation
type LoadDatasetInput struct {
	ID string `path:"id" doc:"Dataset ID"`
}

// LoadDatasetOutput defines the output for the Load operation
type LoadDatasetOutput struct {
	Body responses.DatasetLoadResponse
}

// Load handles POST /datasets/{id}/load
func (h *DatasetHandler) Load(ctx context.Context, input *LoadDatasetInput) (*LoadDatasetOutput, error) {
	rows, err := h.datasets.Load(ctx, input.ID)
	if err != nil {
		return nil, toHumaError(err)
	}
	return &LoadDatasetOutput{Body: responses.DatasetLoadResponse{
		Rows:    mappers.ToInsightResponses(rows),
		Summary: mappers.ToSummaryResponse(research.Summarize(rows)),
	}}, nil
}

// DeleteDatasetInput defines the input for the Delete operation
type DeleteDatasetInput struct {
	ID string `path:"id" doc:"Dataset ID"`
}

// DeleteDatasetOutput defines the output for the Delete operation
type DeleteDatasetOutput struct {
	Body struct {
		Deleted bool `json:"deleted"`
	}
}

// Delete handles DELETE /datasets/{id}
func (h *DatasetHandler) Delete(ctx context.Context, input *DeleteDatasetInput) (*DeleteDatasetOutput, error) {
	if err := h.datasets.Delete(ctx, input.ID); err != nil {
		return nil, toHumaError(err)
	}
	out := &DeleteDatasetOutput{}
	out.Body.Deleted = true
	return out, nil
}
