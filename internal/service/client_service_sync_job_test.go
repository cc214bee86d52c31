// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// spyTask counts calls and optionally blocks until released.
type spyTask struct {
	calls   atomic.Int64
	release chan struct{}
}

func (s *spyTask) run(_ context.Context) {
	s.calls.Add(1)
	if s.release != nil {
		<-s.release
	}
}

// ── NewClientSyncJob ─────────────────────────────────────────────────────────

func TestNewClientSyncJob_ReturnsInterface(t *testing.T) {
	job := NewClientSyncJob()
	require.NotNil(t, job)

	var _ ClientSyncJob = job
}

// ── Start / Stop ─────────────────────────────────────────────────────────────

func TestClientSyncJob_Start_CallsTaskOnTicks(t *testing.T) {
	spy := &spyTask{}
	job := NewClientSyncJob()

	// no initial run; ~5 ticks in 55ms
	job.Start(context.Background(), spy.run, -1, 10*time.Millisecond)
	time.Sleep(55 * time.Millisecond)
	job.Stop()
	job.Wait()

	got := spy.calls.Load()
	assert.GreaterOrEqual(t, got, int64(3), "task should run several times, ran: %d", got)
}

func TestClientSyncJob_Start_InitialRunAfterDelay(t *testing.T) {
	spy := &spyTask{}
	job := NewClientSyncJob()

	job.Start(context.Background(), spy.run, 5*time.Millisecond, time.Hour)
	assert.Equal(t, int64(0), spy.calls.Load())

	assert.Eventually(t, func() bool { return spy.calls.Load() == 1 }, time.Second, time.Millisecond)
	job.Stop()
	job.Wait()
	assert.Equal(t, int64(1), spy.calls.Load())
}

func TestClientSyncJob_Start_ZeroDelayRunsImmediately(t *testing.T) {
	spy := &spyTask{}
	job := NewClientSyncJob()

	job.Start(context.Background(), spy.run, 0, time.Hour)
	assert.Eventually(t, func() bool { return spy.calls.Load() == 1 }, time.Second, time.Millisecond)
	job.Stop()
	job.Wait()
}

func TestClientSyncJob_Stop_BeforeInitialDelay(t *testing.T) {
	spy := &spyTask{}
	job := NewClientSyncJob()

	job.Start(context.Background(), spy.run, 50*time.Millisecond, time.Hour)
	job.Stop()
	time.Sleep(70 * time.Millisecond)
	job.Wait()

	assert.Equal(t, int64(0), spy.calls.Load())
}

func TestClientSyncJob_Stop_StopsScheduling(t *testing.T) {
	spy := &spyTask{}
	job := NewClientSyncJob()

	job.Start(context.Background(), spy.run, -1, 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	job.Stop()
	job.Wait()

	callsAfterStop := spy.calls.Load()
	time.Sleep(30 * time.Millisecond)

	assert.Equal(t, callsAfterStop, spy.calls.Load(), "no calls expected after Stop")
}

func TestClientSyncJob_Stop_DoesNotInterruptRunningTask(t *testing.T) {
	spy := &spyTask{release: make(chan struct{})}
	job := NewClientSyncJob()

	var cancelled atomic.Bool
	task := func(ctx context.Context) {
		spy.run(ctx)
		cancelled.Store(ctx.Err() != nil)
	}

	ctx, cancel := context.WithCancel(context.Background())
	job.Start(ctx, task, 0, time.Hour)
	require.Eventually(t, func() bool { return spy.calls.Load() == 1 }, time.Second, time.Millisecond)

	cancel()
	job.Stop()

	waited := make(chan struct{})
	go func() {
		job.Wait()
		close(waited)
	}()

	select {
	case <-waited:
		t.Fatal("Wait returned while the task was still running")
	case <-time.After(20 * time.Millisecond):
	}

	close(spy.release)
	<-waited
	assert.False(t, cancelled.Load(), "task context must not be cancelled by Stop")
}

func TestClientSyncJob_Stop_BeforeStart_NoPanic(t *testing.T) {
	job := NewClientSyncJob()
	assert.NotPanics(t, func() { job.Stop() })
}

func TestClientSyncJob_DoubleStop_NoPanic(t *testing.T) {
	spy := &spyTask{}
	job := NewClientSyncJob()

	job.Start(context.Background(), spy.run, -1, 10*time.Millisecond)
	job.Stop()

	assert.NotPanics(t, func() { job.Stop() })
}

func TestClientSyncJob_Start_DefaultInterval(t *testing.T) {
	spy := &spyTask{}
	job := NewClientSyncJob()

	// interval <= 0 falls back to 30s, so nothing fires in 20ms
	job.Start(context.Background(), spy.run, -1, 0)
	time.Sleep(20 * time.Millisecond)
	job.Stop()

	assert.Equal(t, int64(0), spy.calls.Load())
}

func TestClientSyncJob_Restart_StopsPrevious(t *testing.T) {
	first := &spyTask{}
	second := &spyTask{}
	job := NewClientSyncJob()

	job.Start(context.Background(), first.run, -1, 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	assert.Greater(t, first.calls.Load(), int64(0))

	job.Start(context.Background(), second.run, -1, 10*time.Millisecond)
	firstAfterRestart := first.calls.Load()
	time.Sleep(30 * time.Millisecond)
	job.Stop()
	job.Wait()

	assert.Equal(t, firstAfterRestart, first.calls.Load(), "previous schedule must be stopped")
	assert.Greater(t, second.calls.Load(), int64(0))
}

func TestClientSyncJob_ContextCancel_StopsJob(t *testing.T) {
	spy := &spyTask{}
	job := NewClientSyncJob()
	ctx, cancel := context.WithCancel(context.Background())

	job.Start(ctx, spy.run, -1, 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	cancel()

	done := make(chan struct{})
	go func() {
		job.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop hung after context cancel")
	}
}
