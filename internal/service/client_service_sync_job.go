package service

import (
	"context"
	"sync"
	"time"
)

// defaultSyncInterval applies when Start is given a non-positive interval.
const defaultSyncInterval = 30 * time.Second

type clientSyncJob struct {
	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	// tasks tracks task goroutines, which outlive Stop.
	tasks sync.WaitGroup
}

// NewClientSyncJob creates a clientSyncJob. The job is idle until Start is
// called.
func NewClientSyncJob() ClientSyncJob {
	return &clientSyncJob{}
}

// Start implements ClientSyncJob. It stops any previously running schedule,
// then launches a background goroutine that fires task after initialDelay and
// on every interval tick. A negative initialDelay skips the initial run. If
// interval is zero or negative it defaults to 30 seconds.
//
// Each task runs in its own goroutine on a context detached from ctx, so
// stopping the schedule never interrupts a task midway.
func (j *clientSyncJob) Start(ctx context.Context, task func(ctx context.Context), initialDelay, interval time.Duration) {
	if interval <= 0 {
		interval = defaultSyncInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	taskCtx := context.WithoutCancel(ctx)
	fire := func() {
		j.tasks.Add(1)
		go func() {
			defer j.tasks.Done()
			task(taskCtx)
		}()
	}

	go func() {
		defer j.wg.Done()

		if initialDelay >= 0 {
			initial := time.NewTimer(initialDelay)
			select {
			case <-jobCtx.Done():
				initial.Stop()
				return
			case <-initial.C:
				fire()
			}
		}

		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				fire()
			}
		}
	}()
}

// Stop implements ClientSyncJob. It cancels the scheduler's context and
// blocks until the scheduler has exited. Safe to call when the job is not
// running.
func (j *clientSyncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

// Wait implements ClientSyncJob.
func (j *clientSyncJob) Wait() {
	j.tasks.Wait()
}
