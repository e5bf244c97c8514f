package turso

import (
	"database/sql"

	"github.com/emiliopalmerini/mlopsdemo/internal/ports"
)

// Repositories holds all turso repository implementations as port interfaces.
type Repositories struct {
	Catalog ports.CatalogRepository
}

// NewRepositories creates all turso repository implementations from a database connection.
func NewRepositories(db *sql.DB) *Repositories {
	return &Repositories{
		Catalog: NewCatalogRepository(db),
	}
}
