package ports

import (
	"context"

	"github.com/emiliopalmerini/mlopsdemo/internal/domain"
)

// CatalogRepository reads the static datasets shown by the views. The
// catalog is seeded once and never written.
type CatalogRepository interface {
	ListExperiments(ctx context.Context) ([]domain.Experiment, error)
	ListFeatures(ctx context.Context) ([]domain.Feature, error)
	ListFlows(ctx context.Context) ([]domain.DeploymentFlow, error)
	// GetFlow returns nil when no flow has the id.
	GetFlow(ctx context.Context, id string) (*domain.DeploymentFlow, error)
	ListModelPerformance(ctx context.Context) ([]domain.ModelPerformance, error)
}
