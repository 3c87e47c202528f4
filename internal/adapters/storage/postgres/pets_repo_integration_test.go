//go:build integration

package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"pet-care-insights/internal/domain/pets"
)

// startPostgres levanta postgres:16-alpine y devuelve un *sql.DB con el schema aplicado.
func startPostgres(t *testing.T) *sql.DB {
	t.Helper()
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:16-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "test",
				"POSTGRES_PASSWORD": "test",
				"POSTGRES_DB":       "petcare_test",
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	db, err := Open(ctx, fmt.Sprintf("postgres://test:test@%s:%s/petcare_test?sslmode=disable", host, port.Port()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, EnsureSchema(ctx, db))
	return db
}

func TestPetsRepo_RoundTrip(t *testing.T) {
	db := startPostgres(t)
	repo := NewPetsRepo(db)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Millisecond)

	toro := pets.Pet{
		ID: "p-1", OwnerUserID: "u-1",
		Name: "Toro", Category: "Dogs", Breed: "Bulldog",
		Age: "9", Weight: "25,5",
		CreatedAt: now, UpdatedAt: now,
	}
	require.NoError(t, repo.Create(ctx, toro))
	require.NoError(t, repo.Create(ctx, pets.Pet{
		ID: "p-2", OwnerUserID: "u-1", Name: "Nube", Category: "Cats",
		CreatedAt: now.Add(time.Second), UpdatedAt: now.Add(time.Second),
	}))

	got, err := repo.GetByID(ctx, "p-1")
	require.NoError(t, err)
	assert.Equal(t, "25,5", got.Weight)
	assert.Equal(t, "Bulldog", got.Breed)
	assert.True(t, got.CreatedAt.Equal(now))

	_, err = repo.GetByID(ctx, "missing")
	assert.True(t, errors.Is(err, pets.ErrNotFound))

	list, err := repo.ListByOwner(ctx, "u-1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "p-1", list[0].ID)
	assert.Equal(t, "p-2", list[1].ID)
}
