package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/riegum-client/internal/logger"
)

const defaultWatchInterval = 15 * time.Minute

type clientWateringWatchJob struct {
	plants ClientPlantService
	logger *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewClientWateringWatchJob creates a job that polls plants.Due on a ticker.
// The job is idle until Start is called.
func NewClientWateringWatchJob(plants ClientPlantService, logger *logger.Logger) ClientWateringWatchJob {
	return &clientWateringWatchJob{plants: plants, logger: logger}
}

// Start implements ClientWateringWatchJob. The first poll happens right away,
// then every interval. Failed polls are logged and skipped; notify is not
// called for them.
func (j *clientWateringWatchJob) Start(ctx context.Context, interval time.Duration, notify DueNotifier) {
	if interval <= 0 {
		interval = defaultWatchInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			j.poll(jobCtx, notify)

			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
			}
		}
	}()
}

func (j *clientWateringWatchJob) poll(ctx context.Context, notify DueNotifier) {
	due, err := j.plants.Due(ctx)
	if err != nil {
		if ctx.Err() == nil {
			j.logger.Warn().Err(err).Msg("watering watch poll failed")
		}
		return
	}
	if notify != nil {
		notify(due)
	}
}

// Stop implements ClientWateringWatchJob. Safe to call when the job is not
// running.
func (j *clientWateringWatchJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
