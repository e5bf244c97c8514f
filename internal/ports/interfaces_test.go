package ports_test

import (
	"testing"

	"github.com/emiliopalmerini/mlopsdemo/internal/adapters/otel"
	"github.com/emiliopalmerini/mlopsdemo/internal/adapters/turso"
	"github.com/emiliopalmerini/mlopsdemo/internal/ports"
)

// Compile-time interface conformance checks.
// These verify that concrete adapters properly implement their port interfaces.

func TestCatalogRepositoryConformance(t *testing.T) {
	var _ ports.CatalogRepository = (*turso.CatalogRepository)(nil)
}

func TestMetricsExporterConformance(t *testing.T) {
	var _ ports.MetricsExporter = (*otel.Exporter)(nil)
	var _ ports.MetricsExporter = (*otel.NoOpExporter)(nil)
}
