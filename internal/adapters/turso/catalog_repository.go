package turso

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/emiliopalmerini/mlopsdemo/internal/domain"
	"github.com/emiliopalmerini/mlopsdemo/internal/util"
)

type CatalogRepository struct {
	db *sql.DB
}

func NewCatalogRepository(db *sql.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

func (r *CatalogRepository) ListExperiments(ctx context.Context) ([]domain.Experiment, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, status, accuracy, f1_score, runtime, created_at
		FROM experiments
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list experiments: %w", err)
	}
	defer rows.Close()

	var out []domain.Experiment
	for rows.Next() {
		var e domain.Experiment
		var status string
		if err := rows.Scan(&e.ID, &e.Name, &status, &e.Accuracy, &e.F1, &e.Runtime, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan experiment: %w", err)
		}
		e.Status = domain.ExperimentStatus(status)
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *CatalogRepository) ListFeatures(ctx context.Context) ([]domain.Feature, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT name, importance, feature_type, source
		FROM features
		ORDER BY importance DESC, name
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list features: %w", err)
	}
	defer rows.Close()

	var out []domain.Feature
	for rows.Next() {
		var f domain.Feature
		var typ string
		if err := rows.Scan(&f.Name, &f.Importance, &typ, &f.Source); err != nil {
			return nil, fmt.Errorf("failed to scan feature: %w", err)
		}
		f.Type = domain.FeatureType(typ)
		out = append(out, f)
	}
	return out, rows.Err()
}

func (r *CatalogRepository) ListModelPerformance(ctx context.Context) ([]domain.ModelPerformance, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT name, accuracy, precision_score, recall_score, f1_score
		FROM model_performance
		ORDER BY position
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list model performance: %w", err)
	}
	defer rows.Close()

	var out []domain.ModelPerformance
	for rows.Next() {
		var m domain.ModelPerformance
		if err := rows.Scan(&m.Name, &m.Accuracy, &m.Precision, &m.Recall, &m.F1); err != nil {
			return nil, fmt.Errorf("failed to scan model performance: %w", err)
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// ListFlows returns every flow with its steps and step details, in display
// order.
func (r *CatalogRepository) ListFlows(ctx context.Context) ([]domain.DeploymentFlow, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, description, icon, color
		FROM deployment_flows
		ORDER BY position
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list flows: %w", err)
	}

	var flows []domain.DeploymentFlow
	for rows.Next() {
		var f domain.DeploymentFlow
		if err := rows.Scan(&f.ID, &f.Name, &f.Description, &f.Icon, &f.Color); err != nil {
			_ = rows.Close()
			return nil, fmt.Errorf("failed to scan flow: %w", err)
		}
		flows = append(flows, f)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range flows {
		if flows[i].Steps, err = r.listSteps(ctx, flows[i].ID); err != nil {
			return nil, err
		}
	}
	return flows, nil
}

func (r *CatalogRepository) GetFlow(ctx context.Context, id string) (*domain.DeploymentFlow, error) {
	var f domain.DeploymentFlow
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, description, icon, color
		FROM deployment_flows
		WHERE id = ?
	`, id).Scan(&f.ID, &f.Name, &f.Description, &f.Icon, &f.Color)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get flow: %w", err)
	}

	if f.Steps, err = r.listSteps(ctx, f.ID); err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *CatalogRepository) listSteps(ctx context.Context, flowID string) ([]domain.WorkflowStep, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, title, description, status, duration
		FROM workflow_steps
		WHERE flow_id = ?
		ORDER BY position
	`, flowID)
	if err != nil {
		return nil, fmt.Errorf("failed to list steps for %s: %w", flowID, err)
	}

	var steps []domain.WorkflowStep
	for rows.Next() {
		var s domain.WorkflowStep
		var status string
		var duration sql.NullString
		if err := rows.Scan(&s.ID, &s.Title, &s.Description, &status, &duration); err != nil {
			_ = rows.Close()
			return nil, fmt.Errorf("failed to scan step: %w", err)
		}
		s.Status = domain.StepStatus(status)
		s.Duration = util.NullStringToPtr(duration)
		steps = append(steps, s)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	details, err := r.listDetails(ctx, flowID)
	if err != nil {
		return nil, err
	}
	for i := range steps {
		steps[i].Details = details[steps[i].ID]
	}
	return steps, nil
}

func (r *CatalogRepository) listDetails(ctx context.Context, flowID string) (map[string][]string, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT step_id, detail
		FROM workflow_step_details
		WHERE flow_id = ?
		ORDER BY step_id, position
	`, flowID)
	if err != nil {
		return nil, fmt.Errorf("failed to list step details for %s: %w", flowID, err)
	}
	defer rows.Close()

	out := make(map[string][]string)
	for rows.Next() {
		var stepID, detail string
		if err := rows.Scan(&stepID, &detail); err != nil {
			return nil, fmt.Errorf("failed to scan step detail: %w", err)
		}
		out[stepID] = append(out[stepID], detail)
	}
	return out, rows.Err()
}
