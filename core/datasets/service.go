// ABOUTME: Dataset snapshot service for saving and restoring the working set
// ABOUTME: Persistence is best-effort; loads re-normalize against drift

package datasets

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"

	"keyword-intel-api/core/domain"
	apperrors "keyword-intel-api/core/errors"
	"keyword-intel-api/core/interfaces"
	"keyword-intel-api/core/normalize"
	"keyword-intel-api/core/research"
)

// Service manages named snapshots of the research working set
type Service struct {
	deps  *interfaces.Dependencies
	store *research.Store
	cfg   normalize.Config
}

// NewService creates a new datasets service. The normalize config is used to
// re-normalize rows on load; a zero value falls back to the defaults.
func NewService(deps *interfaces.Dependencies, store *research.Store, cfg normalize.Config) *Service {
	if cfg.Aliases.Fields == nil {
		cfg = normalize.DefaultConfig()
	}
	if cfg.EstimateVisitors == nil {
		cfg.EstimateVisitors = normalize.DefaultVisitorEstimator
	}
	return &Service{deps: deps, store: store, cfg: cfg}
}

// Save snapshots the current working set under the given name. Persistence
// failures are logged and swallowed; a save never blocks the caller's flow.
func (s *Service) Save(ctx context.Context, name string) (domain.Dataset, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Dataset{}, &apperrors.ValidationError{Field: "name", Message: "name is required"}
	}

	dataset := domain.Dataset{
		ID:      uuid.New().String(),
		Name:    name,
		Rows:    s.store.Snapshot(),
		SavedAt: time.Now().UTC(),
	}

	if err := s.deps.Datasets.Save(ctx, dataset); err != nil {
		s.deps.Logger.Warn("dataset save failed", map[string]interface{}{
			"dataset_id": dataset.ID,
			"error":      err.Error(),
		})
	} else {
		s.deps.Logger.Info("dataset saved", map[string]interface{}{
			"dataset_id": dataset.ID,
			"rows":       len(dataset.Rows),
		})
	}
	return dataset, nil
}

// List returns stored snapshot metadata, most recently saved first. Read
// failures degrade to an empty listing.
func (s *Service) List(ctx context.Context) []domain.Dataset {
	list, err := s.deps.Datasets.List(ctx)
	if err != nil {
		s.deps.Logger.Warn("dataset listing failed", map[string]interface{}{"error": err.Error()})
		return nil
	}
	return list
}

// Load replaces the working set with a stored snapshot. Stored rows are
// re-normalized first since the canonical schema may have drifted since the
// save. Returns the new working set snapshot.
func (s *Service) Load(ctx context.Context, id string) ([]domain.KeywordInsight, error) {
	dataset, err := s.deps.Datasets.Get(ctx, id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, err
		}
		s.deps.Logger.Warn("dataset read failed", map[string]interface{}{
			"dataset_id": id,
			"error":      err.Error(),
		})
		return nil, &apperrors.NotFoundError{Resource: "dataset", ID: id}
	}

	rows := s.renormalize(dataset.Rows)
	s.store.Replace(rows)

	s.deps.Logger.Info("dataset loaded", map[string]interface{}{
		"dataset_id": id,
		"rows":       len(rows),
	})
	return s.store.Snapshot(), nil
}

// Delete removes a snapshot by ID
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.deps.Datasets.Delete(ctx, id); err != nil {
		if apperrors.IsNotFound(err) {
			return err
		}
		s.deps.Logger.Warn("dataset delete failed", map[string]interface{}{
			"dataset_id": id,
			"error":      err.Error(),
		})
	}
	return nil
}

// renormalize pushes stored rows back through the normalizer. Rows that no
// longer yield a usable keyword are dropped.
func (s *Service) renormalize(rows []domain.KeywordInsight) []domain.KeywordInsight {
	raws := make([]map[string]interface{}, 0, len(rows))
	for _, row := range rows {
		data, err := json.Marshal(row)
		if err != nil {
			continue
		}
		var raw map[string]interface{}
		if err := json.Unmarshal(data, &raw); err != nil {
			continue
		}
		raws = append(raws, raw)
	}

	batch := normalize.InsightBatch(raws, s.cfg)
	if batch.Dropped > 0 {
		s.deps.Logger.Warn("dropped rows while re-normalizing dataset", map[string]interface{}{
			"dropped": batch.Dropped,
		})
	}
	return batch.Rows
}
