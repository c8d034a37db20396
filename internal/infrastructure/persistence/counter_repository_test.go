package persistence

import (
	"context"
	"path/filepath"
	"sync"
	"testing"

	"github.com/factura/backend/internal/domain/billing"
	"github.com/factura/backend/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormCounterRepository_Next(t *testing.T) {
	t.Run("starts at one and increments", func(t *testing.T) {
		repo := NewGormCounterRepository(setupTestDB(t))
		ctx := context.Background()

		first, err := repo.Next(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(1), first.Value)
		assert.Equal(t, "000001", first.Formatted())

		second, err := repo.Next(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(2), second.Value)
	})

	t.Run("current reflects last handed out value", func(t *testing.T) {
		repo := NewGormCounterRepository(setupTestDB(t))
		ctx := context.Background()

		current, err := repo.Current(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(0), current.Value)

		_, err = repo.Next(ctx)
		require.NoError(t, err)

		current, err = repo.Current(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(1), current.Value)
	})

	t.Run("failed write does not advance the counter", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "factura.db")
		ctx := context.Background()

		db, err := NewDatabase(&config.DatabaseConfig{Path: path, BusyTimeout: 100})
		require.NoError(t, err)
		require.NoError(t, db.AutoMigrate())

		repo := NewGormCounterRepository(db.DB)
		seq, err := repo.Next(ctx)
		require.NoError(t, err)
		require.Equal(t, int64(1), seq.Value)

		// A dead connection makes the increment transaction fail
		require.NoError(t, db.Close())
		_, err = repo.Next(ctx)
		require.Error(t, err)

		reopened, err := NewDatabase(&config.DatabaseConfig{Path: path, BusyTimeout: 100})
		require.NoError(t, err)
		defer reopened.Close()

		current, err := NewGormCounterRepository(reopened.DB).Current(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(1), current.Value)
	})

	t.Run("concurrent increments never repeat a value", func(t *testing.T) {
		repo := NewGormCounterRepository(setupTestDB(t))
		ctx := context.Background()

		const workers = 20
		var mu sync.Mutex
		seen := make(map[int64]bool, workers)

		var wg sync.WaitGroup
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				seq, err := repo.Next(ctx)
				assert.NoError(t, err)
				mu.Lock()
				assert.False(t, seen[seq.Value], "value %d handed out twice", seq.Value)
				seen[seq.Value] = true
				mu.Unlock()
			}()
		}
		wg.Wait()

		current, err := repo.Current(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(workers), current.Value)
	})
}

func TestGormCounterRepository_Set(t *testing.T) {
	repo := NewGormCounterRepository(setupTestDB(t))
	ctx := context.Background()

	t.Run("set on empty store initializes the counter", func(t *testing.T) {
		require.NoError(t, repo.Set(ctx, billing.Sequence{Value: 42}))

		current, err := repo.Current(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(42), current.Value)
	})

	t.Run("next continues from restored value", func(t *testing.T) {
		seq, err := repo.Next(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(43), seq.Value)
		assert.Equal(t, "000043", seq.Formatted())
	})

	t.Run("set overwrites an existing counter", func(t *testing.T) {
		require.NoError(t, repo.Set(ctx, billing.Sequence{Value: 7}))

		current, err := repo.Current(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(7), current.Value)
	})
}
