// Copyright (c) 2024, The enaml-extensions Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package watch provides background watchers of tabular data sources
// that compute the changes of each new snapshot of a source and hand
// them off to the user interface goroutine, where they are ingested
// by a [table.Model].
package watch

import (
	"context"
	"sync"

	"github.com/gabrielcnr/enaml-extensions/base/errors"
)

// ErrQuit is returned by [MainQueue.RunOnMain] after the main loop has quit.
var ErrQuit = errors.New("watch: main loop has quit")

// Dispatcher runs functions on the user interface goroutine.
type Dispatcher interface {

	// GoRunOnMain runs the given function on the user interface
	// goroutine and returns immediately.
	GoRunOnMain(f func())
}

// funcRun is a function to run and a channel to signal
// when it has finished running.
type funcRun struct {
	f    func()
	done chan struct{}
}

// MainQueue is a [Dispatcher] that runs functions on the goroutine
// running [MainQueue.MainLoop], which is the user interface goroutine.
// Functions run in the order they were queued.
type MainQueue struct {
	mu      sync.Mutex
	pending []funcRun

	// wake has a value when pending may be non-empty.
	wake chan struct{}
	done chan struct{}
	quit sync.Once
}

// NewMainQueue returns a new main queue.
func NewMainQueue() *MainQueue {
	return &MainQueue{wake: make(chan struct{}, 1), done: make(chan struct{})}
}

// MainLoop runs queued functions on the calling goroutine until the
// context is done or [MainQueue.Quit] is called. It returns the
// context error, or nil after Quit.
func (mq *MainQueue) MainLoop(ctx context.Context) error {
	defer mq.Quit()
	for {
		select {
		case <-mq.done:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		case <-mq.wake:
		}
		for mq.runNext() {
			if mq.quitted() {
				return nil
			}
		}
	}
}

func (mq *MainQueue) quitted() bool {
	select {
	case <-mq.done:
		return true
	default:
		return false
	}
}

// push adds the given function to the end of the queue, returning
// false if the main loop has quit.
func (mq *MainQueue) push(fr funcRun) bool {
	if mq.quitted() {
		return false
	}
	mq.mu.Lock()
	mq.pending = append(mq.pending, fr)
	mq.mu.Unlock()
	select {
	case mq.wake <- struct{}{}:
	default:
	}
	return true
}

// runNext runs the first queued function, returning false if there
// was none.
func (mq *MainQueue) runNext() bool {
	mq.mu.Lock()
	if len(mq.pending) == 0 {
		mq.mu.Unlock()
		return false
	}
	fr := mq.pending[0]
	mq.pending[0] = funcRun{}
	mq.pending = mq.pending[1:]
	mq.mu.Unlock()

	fr.f()
	if fr.done != nil {
		close(fr.done)
	}
	return true
}

// PollEvents runs the functions queued so far on the calling goroutine,
// without waiting for more, and returns how many were run. It is the
// equivalent of one iteration of [MainQueue.MainLoop] for applications
// that run their own event loop.
func (mq *MainQueue) PollEvents() int {
	mq.mu.Lock()
	n := len(mq.pending)
	mq.mu.Unlock()
	ran := 0
	for ran < n && mq.runNext() {
		ran++
	}
	return ran
}

// RunOnMain runs the given function on the main loop and waits for it
// to finish. It returns [ErrQuit] without running the function if the
// main loop quits first.
func (mq *MainQueue) RunOnMain(f func()) error {
	fr := funcRun{f: f, done: make(chan struct{})}
	if !mq.push(fr) {
		return ErrQuit
	}
	select {
	case <-fr.done:
		return nil
	case <-mq.done:
		return ErrQuit
	}
}

// GoRunOnMain queues the given function to run on the main loop and
// returns immediately. Functions queued after the main loop quits
// are dropped.
func (mq *MainQueue) GoRunOnMain(f func()) {
	mq.push(funcRun{f: f})
}

// Quit stops the main loop.
func (mq *MainQueue) Quit() {
	mq.quit.Do(func() { close(mq.done) })
}
