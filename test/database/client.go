// Package database provides test database clients backed by per-test
// PostgreSQL schemas.
package database

import (
	"testing"

	"github.com/recapd/recapd/pkg/database"
	"github.com/recapd/recapd/test/util"
)

// NewTestClient creates a test database client.
// In CI (when CI_DATABASE_URL is set): connects to the external PostgreSQL
// service container. In local dev: spins up a PostgreSQL testcontainer.
// The schema and connections are cleaned up when the test ends.
func NewTestClient(t *testing.T) *database.Client {
	entClient, db := util.SetupTestDatabase(t)
	return database.NewClientFromEnt(entClient, db)
}
