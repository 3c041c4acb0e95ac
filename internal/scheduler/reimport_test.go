package scheduler

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/quoteserver/internal/database"
	"github.com/mrlokans/quoteserver/internal/database/quotes"
	"github.com/mrlokans/quoteserver/internal/importers"
)

type fakeImporter struct {
	mu     sync.Mutex
	calls  []string
	result importers.Result
	err    error
}

func (f *fakeImporter) ImportFile(_ context.Context, path string) (importers.Result, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, path)
	return f.result, f.err
}

func TestValidateCronSchedule(t *testing.T) {
	tests := []struct {
		schedule string
		wantErr  bool
	}{
		{"0 * * * *", false},
		{"*/15 * * * *", false},
		{"@hourly", false},
		{"@every 30m", false},
		{"", true},
		{"not a schedule", true},
		{"0 0 * * * *", true},
	}
	for _, tt := range tests {
		t.Run(tt.schedule, func(t *testing.T) {
			err := ValidateCronSchedule(tt.schedule)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestReimportScheduler_StartValidation(t *testing.T) {
	t.Run("missing source", func(t *testing.T) {
		s := NewReimportScheduler(&fakeImporter{}, "", "@hourly")
		assert.Error(t, s.Start(context.Background()))
		assert.False(t, s.IsRunning())
	})

	t.Run("invalid schedule", func(t *testing.T) {
		s := NewReimportScheduler(&fakeImporter{}, "quotes.json", "every day")
		err := s.Start(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid cron schedule")
		assert.False(t, s.IsRunning())
	})
}

func TestReimportScheduler_StartStop(t *testing.T) {
	s := NewReimportScheduler(&fakeImporter{}, "quotes.json", "0 * * * *")
	assert.Nil(t, s.GetNextRunTime())

	require.NoError(t, s.Start(context.Background()))
	assert.True(t, s.IsRunning())
	require.NoError(t, s.Start(context.Background()), "second start is a no-op")

	next := s.GetNextRunTime()
	require.NotNil(t, next)
	assert.True(t, next.After(time.Now()))

	s.Stop()
	assert.False(t, s.IsRunning())
	assert.Nil(t, s.GetNextRunTime())
	s.Stop()
}

func TestReimportScheduler_StopsOnContextCancel(t *testing.T) {
	s := NewReimportScheduler(&fakeImporter{}, "quotes.json", "@hourly")
	ctx, cancel := context.WithCancel(context.Background())

	require.NoError(t, s.Start(ctx))
	cancel()

	assert.Eventually(t, func() bool { return !s.IsRunning() }, time.Second, 10*time.Millisecond)
}

func TestReimportScheduler_RunNow(t *testing.T) {
	t.Run("records last run", func(t *testing.T) {
		imp := &fakeImporter{result: importers.Result{Total: 3, Inserted: 1, Skipped: 2}}
		s := NewReimportScheduler(imp, "quotes.json", "@hourly")
		assert.Nil(t, s.LastRun())

		result, err := s.RunNow(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 1, result.Inserted)
		assert.Equal(t, []string{"quotes.json"}, imp.calls)

		last := s.LastRun()
		require.NotNil(t, last)
		assert.NoError(t, last.Err)
		assert.Equal(t, 2, last.Result.Skipped)
		assert.False(t, last.FinishedAt.IsZero())
	})

	t.Run("records failure", func(t *testing.T) {
		imp := &fakeImporter{err: errors.New("could not find quote file")}
		s := NewReimportScheduler(imp, "missing.json", "@hourly")

		_, err := s.RunNow(context.Background())
		require.Error(t, err)
		require.NotNil(t, s.LastRun())
		assert.Error(t, s.LastRun().Err)
	})
}

func TestReimportScheduler_RunNowIsIdempotent(t *testing.T) {
	db, err := database.NewDatabase(filepath.Join(t.TempDir(), "reimport.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	source := filepath.Join(t.TempDir(), "quotes.json")
	require.NoError(t, os.WriteFile(source,
		[]byte(`[{"id":1,"quote":"Q1","author":"A1"},{"id":2,"quote":"Q2","author":"A2"}]`), 0o644))

	repo := quotes.NewRepository(db.DB)
	s := NewReimportScheduler(importers.NewImporter(repo), source, "@hourly")

	first, err := s.RunNow(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, first.Inserted)

	second, err := s.RunNow(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, second.Inserted)
	assert.Equal(t, 2, second.Skipped)

	count, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}
