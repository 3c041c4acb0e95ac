package scheduler

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/mrlokans/quoteserver/internal/importers"
	"github.com/mrlokans/quoteserver/internal/metrics"
)

var cronParser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)

// FileImporter imports a quote file. Implemented by importers.Importer.
type FileImporter interface {
	ImportFile(ctx context.Context, path string) (importers.Result, error)
}

// RunStatus describes the most recent re-import.
type RunStatus struct {
	FinishedAt time.Time
	Result     importers.Result
	Err        error
}

// ReimportScheduler periodically imports the same source file again. Imports
// are idempotent, so a pass over an unchanged file only counts skips.
type ReimportScheduler struct {
	importer FileImporter
	source   string
	schedule string

	cron       *cron.Cron
	entryID    cron.EntryID
	mu         sync.RWMutex
	runMu      sync.Mutex
	isRunning  bool
	lastRun    *RunStatus
	cancelFunc context.CancelFunc
}

// NewReimportScheduler creates a new scheduler instance
func NewReimportScheduler(importer FileImporter, source, schedule string) *ReimportScheduler {
	return &ReimportScheduler{
		importer: importer,
		source:   source,
		schedule: schedule,
		cron:     cron.New(cron.WithParser(cronParser)),
	}
}

// ValidateCronSchedule checks a five-field cron expression or an @descriptor.
func ValidateCronSchedule(schedule string) error {
	if schedule == "" {
		return fmt.Errorf("schedule is empty")
	}
	_, err := cronParser.Parse(schedule)
	return err
}

// Start begins the scheduler. It stops on its own when ctx is cancelled.
func (s *ReimportScheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return nil
	}

	if s.source == "" {
		return fmt.Errorf("re-import needs a source file")
	}

	if err := ValidateCronSchedule(s.schedule); err != nil {
		return fmt.Errorf("invalid cron schedule '%s': %w", s.schedule, err)
	}

	var cancelCtx context.Context
	cancelCtx, s.cancelFunc = context.WithCancel(ctx)

	entryID, err := s.cron.AddFunc(s.schedule, func() {
		_, _ = s.RunNow(cancelCtx)
	})
	if err != nil {
		s.cancelFunc()
		return fmt.Errorf("failed to schedule re-import job: %w", err)
	}
	s.entryID = entryID

	s.cron.Start()
	s.isRunning = true

	log.Printf("Re-import scheduler: started with schedule '%s' for %s. Next run: %v",
		s.schedule, s.source, s.cron.Entry(entryID).Next)

	go func() {
		<-cancelCtx.Done()
		s.Stop()
	}()

	return nil
}

// Stop waits for a running import to finish and stops the scheduler.
func (s *ReimportScheduler) Stop() {
	s.mu.Lock()
	if !s.isRunning {
		s.mu.Unlock()
		return
	}
	s.isRunning = false
	cancel := s.cancelFunc
	s.cancelFunc = nil
	s.mu.Unlock()

	// a running job takes s.mu to record its status, so wait unlocked
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.cron.Remove(s.entryID)
	if cancel != nil {
		cancel()
	}

	log.Printf("Re-import scheduler: stopped")
}

// RunNow imports the source immediately. Overlapping runs are serialised.
func (s *ReimportScheduler) RunNow(ctx context.Context) (importers.Result, error) {
	s.runMu.Lock()
	defer s.runMu.Unlock()

	log.Printf("Re-import: starting import from %s", s.source)
	startTime := time.Now()

	result, err := s.importer.ImportFile(ctx, s.source)
	metrics.RecordImport(result.Inserted, result.Skipped, result.Failed)

	if err != nil {
		log.Printf("Re-import: failed: %v", err)
	} else {
		log.Printf("Re-import: %d inserted, %d skipped, %d failed in %v",
			result.Inserted, result.Skipped, result.Failed, time.Since(startTime).Round(time.Millisecond))
	}

	s.mu.Lock()
	s.lastRun = &RunStatus{FinishedAt: time.Now(), Result: result, Err: err}
	s.mu.Unlock()

	return result, err
}

// IsRunning returns whether the scheduler is active
func (s *ReimportScheduler) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

// LastRun returns the status of the latest import, or nil before the first one.
func (s *ReimportScheduler) LastRun() *RunStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.lastRun == nil {
		return nil
	}
	status := *s.lastRun
	return &status
}

// GetNextRunTime returns when the next import will occur
func (s *ReimportScheduler) GetNextRunTime() *time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.isRunning {
		return nil
	}

	entry := s.cron.Entry(s.entryID)
	if !entry.Valid() {
		return nil
	}
	t := entry.Next
	return &t
}
