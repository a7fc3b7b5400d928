// Package testdb opens throwaway SQLite-backed repositories for tests.
package testdb

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"cruises/internal/app/ds"
	"cruises/internal/app/repository"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
)

// New returns a migrated repository on a private in-memory database.
// The database is closed when the test ends.
func New(t testing.TB) *repository.Repository {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_", "#", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)

	rep, err := repository.Open(sqlite.Open(dsn), repository.PoolConfig{MaxOpenConns: 1})
	require.NoError(t, err)
	t.Cleanup(func() { _ = rep.Close() })

	require.NoError(t, rep.Migrate(context.Background()))
	return rep
}

// SeedShip inserts a ship and returns it with its id.
func SeedShip(t testing.TB, rep *repository.Repository, name string, tonnage int) ds.Ship {
	t.Helper()
	ship := ds.Ship{Name: name, Tonnage: tonnage}
	require.NoError(t, rep.CreateShip(context.Background(), &ship))
	return ship
}

// SeedCruise inserts a cruise sailing on ship.
func SeedCruise(t testing.TB, rep *repository.Repository, ship ds.Ship, name string, nights int) ds.Cruise {
	t.Helper()
	cruise := ds.Cruise{
		Name:      name,
		ShipID:    ship.ID,
		DepartsOn: time.Date(2026, time.December, 1, 0, 0, 0, 0, time.UTC),
		Nights:    nights,
	}
	require.NoError(t, rep.CreateCruise(context.Background(), &cruise))
	return cruise
}

// Counts returns the number of ship and cruise rows.
func Counts(t testing.TB, rep *repository.Repository) (ships, cruises int64) {
	t.Helper()
	require.NoError(t, rep.DB().Model(&ds.Ship{}).Count(&ships).Error)
	require.NoError(t, rep.DB().Model(&ds.Cruise{}).Count(&cruises).Error)
	return ships, cruises
}
