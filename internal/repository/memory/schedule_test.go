package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shiftlens/overlap-backend-go/internal/domain/schedule"
)

func TestScheduleRepository_SaveAndGet(t *testing.T) {
	ctx := context.Background()
	repo := NewScheduleRepository()
	parsed := schedule.ParsedSchedule{ID: "id-1", ContentHash: "hash-1", FileName: "week.pdf"}

	require.NoError(t, repo.Save(ctx, parsed))

	byID, err := repo.GetByID(ctx, "id-1")
	require.NoError(t, err)
	assert.Equal(t, "week.pdf", byID.FileName)

	byHash, err := repo.GetByContentHash(ctx, "hash-1")
	require.NoError(t, err)
	assert.Equal(t, "id-1", byHash.ID)
}

func TestScheduleRepository_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := NewScheduleRepository()

	_, err := repo.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, schedule.ErrScheduleNotFound)

	_, err = repo.GetByContentHash(ctx, "missing")
	assert.ErrorIs(t, err, schedule.ErrScheduleNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, "missing"), schedule.ErrScheduleNotFound)
}

func TestScheduleRepository_DeleteClearsHashIndex(t *testing.T) {
	ctx := context.Background()
	repo := NewScheduleRepository()
	require.NoError(t, repo.Save(ctx, schedule.ParsedSchedule{ID: "id-1", ContentHash: "hash-1"}))

	require.NoError(t, repo.Delete(ctx, "id-1"))

	_, err := repo.GetByID(ctx, "id-1")
	assert.ErrorIs(t, err, schedule.ErrScheduleNotFound)
	_, err = repo.GetByContentHash(ctx, "hash-1")
	assert.ErrorIs(t, err, schedule.ErrScheduleNotFound)
}
