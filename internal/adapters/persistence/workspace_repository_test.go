package persistence_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stationforge/station-planner/internal/adapters/persistence"
	"github.com/stationforge/station-planner/internal/infrastructure/database"
)

func newTestRepo(t *testing.T) *persistence.GormWorkspaceRepository {
	t.Helper()
	db, err := database.NewTestConnection()
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })
	return persistence.NewGormWorkspaceRepository(db)
}

func TestWorkspaceRepository_TouchAndRecent(t *testing.T) {
	// Arrange
	repo := newTestRepo(t)
	ctx := context.Background()

	// Act
	err := repo.Touch(ctx, "/home/user/alpha.x4station", "alpha")
	require.NoError(t, err)
	err = repo.Touch(ctx, "/home/user/beta.x4station", "beta")
	require.NoError(t, err)

	docs, err := repo.Recent(ctx, 10)

	// Assert
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "/home/user/beta.x4station", docs[0].Path)
	assert.Equal(t, "/home/user/alpha.x4station", docs[1].Path)
}

func TestWorkspaceRepository_TouchRefreshesExistingPath(t *testing.T) {
	// Arrange
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Touch(ctx, "/home/user/alpha.x4station", "alpha"))
	require.NoError(t, repo.Touch(ctx, "/home/user/beta.x4station", "beta"))

	// Act - reopen alpha; it should move to the front, not duplicate
	time.Sleep(5 * time.Millisecond)
	require.NoError(t, repo.Touch(ctx, "/home/user/alpha.x4station", "alpha"))

	docs, err := repo.Recent(ctx, 10)

	// Assert
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "/home/user/alpha.x4station", docs[0].Path)
}

func TestWorkspaceRepository_RecentRespectsLimit(t *testing.T) {
	// Arrange
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Touch(ctx, "/a.x4station", "a"))
	require.NoError(t, repo.Touch(ctx, "/b.x4station", "b"))
	require.NoError(t, repo.Touch(ctx, "/c.x4station", "c"))

	// Act
	docs, err := repo.Recent(ctx, 2)

	// Assert
	require.NoError(t, err)
	assert.Len(t, docs, 2)
}

func TestWorkspaceRepository_Forget(t *testing.T) {
	// Arrange
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Touch(ctx, "/home/user/alpha.x4station", "alpha"))

	// Act
	err := repo.Forget(ctx, "/home/user/alpha.x4station")
	require.NoError(t, err)

	docs, err := repo.Recent(ctx, 10)

	// Assert
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestWorkspaceRepository_ForgetUnknownPath(t *testing.T) {
	// Arrange
	repo := newTestRepo(t)

	// Act
	err := repo.Forget(context.Background(), "/never/opened.x4station")

	// Assert
	assert.NoError(t, err)
}
