// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package notify delivers user-visible toasts from background work to
// whatever surface is showing them.
package notify

import (
	"sync"
	"time"

	"github.com/fahim1105/seu-matrimony/internal/logger"
)

// Level is the kind of toast.
type Level string

const (
	LevelLoading Level = "loading"
	LevelSuccess Level = "success"
	LevelError   Level = "error"
	LevelInfo    Level = "info"
)

// Toast is one user-visible notification.
type Toast struct {
	Level   Level
	Message string
	At      time.Time
}

// Notifier receives toasts. Implementations must be safe for concurrent use
// and must not block the caller for long.
type Notifier interface {
	Loading(message string)
	Success(message string)
	Error(message string)
	Info(message string)
}

// sink adapts a single func to the Notifier interface.
type sink func(Toast)

func (s sink) Loading(m string) { s(Toast{Level: LevelLoading, Message: m, At: time.Now()}) }
func (s sink) Success(m string) { s(Toast{Level: LevelSuccess, Message: m, At: time.Now()}) }
func (s sink) Error(m string)   { s(Toast{Level: LevelError, Message: m, At: time.Now()}) }
func (s sink) Info(m string)    { s(Toast{Level: LevelInfo, Message: m, At: time.Now()}) }

// NewLogNotifier writes every toast to log.
func NewLogNotifier(log *logger.Logger) Notifier {
	return sink(func(t Toast) {
		log.Info().Str("func", "notify.toast").Str("toast", string(t.Level)).Msg(t.Message)
	})
}

// Recorder keeps every toast in memory.
type Recorder struct {
	mu     sync.Mutex
	toasts []Toast
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) record(t Toast) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.toasts = append(r.toasts, t)
}

func (r *Recorder) Loading(m string) { sink(r.record).Loading(m) }
func (r *Recorder) Success(m string) { sink(r.record).Success(m) }
func (r *Recorder) Error(m string)   { sink(r.record).Error(m) }
func (r *Recorder) Info(m string)    { sink(r.record).Info(m) }

// Toasts returns a copy of everything recorded so far.
func (r *Recorder) Toasts() []Toast {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Toast(nil), r.toasts...)
}

// Count returns how many toasts of level were recorded.
func (r *Recorder) Count(level Level) int {
	n := 0
	for _, t := range r.Toasts() {
		if t.Level == level {
			n++
		}
	}
	return n
}

// Chan forwards toasts to a buffered channel. When the buffer is full the
// toast is dropped.
type Chan struct {
	ch chan Toast
}

func NewChan(buffer int) *Chan {
	return &Chan{ch: make(chan Toast, buffer)}
}

// C returns the receive side.
func (c *Chan) C() <-chan Toast {
	return c.ch
}

func (c *Chan) send(t Toast) {
	select {
	case c.ch <- t:
	default:
	}
}

func (c *Chan) Loading(m string) { sink(c.send).Loading(m) }
func (c *Chan) Success(m string) { sink(c.send).Success(m) }
func (c *Chan) Error(m string)   { sink(c.send).Error(m) }
func (c *Chan) Info(m string)    { sink(c.send).Info(m) }

// Multi fans out to several notifiers in order.
type Multi []Notifier

func (m Multi) Loading(msg string) {
	for _, n := range m {
		n.Loading(msg)
	}
}

func (m Multi) Success(msg string) {
	for _, n := range m {
		n.Success(msg)
	}
}

func (m Multi) Error(msg string) {
	for _, n := range m {
		n.Error(msg)
	}
}

func (m Multi) Info(msg string) {
	for _, n := range m {
		n.Info(msg)
	}
}
