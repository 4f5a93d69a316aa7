/**
 * Copyright (c) 2018, The Artemis Authors.
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package executor

import (
	"sync/atomic"

	"github.com/nimbusgraph/gql/concurrent"
	"github.com/nimbusgraph/gql/graphql"
)

// serialDrain is the queue and dispatch loop shared by executors that run exactly one Task at a
// time: blockingExecutor (on the caller's own goroutine) and serialExecutor (on a goroutine
// submitted to a concurrent.Executor). At any given time, only one field is being resolved; once a
// task either completes or yields (waiting on a Future), the next task in the queue is popped and
// run. The graph of execution is traversed in DFS order, since completing an object or list field
// pushes its children on top of the queue.
type serialDrain struct {
	commonExecutorState

	// queue holds tasks ready to run, LIFO.
	queue []Task

	// ready receives tasks resumed (via Resume) from a goroutine other than the one draining queue,
	// e.g. by a Future's Waker invoked from I/O completion.
	ready chan Task

	// pending counts tasks that have been dispatched but have not yet completed, i.e. either still
	// queued or currently yielded awaiting resumption.
	pending int64

	// yielded is set by Yield when called from within the task currently being run, so the drain
	// loop can tell a completed run() apart from one that parked itself for later resumption.
	yielded bool
}

func newSerialDrain() serialDrain {
	return serialDrain{ready: make(chan Task, 16)}
}

// Dispatch implements executor.
func (d *serialDrain) Dispatch(task Task) {
	atomic.AddInt64(&d.pending, 1)
	d.queue = append(d.queue, task)
}

// Yield implements executor.
func (d *serialDrain) Yield(task Task) {
	d.yielded = true
}

// Resume implements executor.
func (d *serialDrain) Resume(task Task) {
	d.ready <- task
}

// drain collects and dispatches the root tasks for ctx's operation and then runs tasks, one at a
// time, until every one of them (including those spawned while running another) has completed.
func (d *serialDrain) drain(ctx *ExecutionContext, self executor) ExecutionResult {
	root, err := collectAndDispatchRootTasks(ctx, self)
	if err != nil {
		return ExecutionResult{Errors: graphql.ErrorsOf(err)}
	}

	for atomic.LoadInt64(&d.pending) > 0 {
		var task Task
		if n := len(d.queue); n > 0 {
			task = d.queue[n-1]
			d.queue = d.queue[:n-1]
		} else {
			task = <-d.ready
		}

		d.yielded = false
		task.run()
		if !d.yielded {
			atomic.AddInt64(&d.pending, -1)
		}
	}

	return ExecutionResult{Data: root, Errors: d.errors()}
}

// blockingExecutor runs every task on the calling goroutine. It is selected when ExecuteParams
// doesn't provide a Runner: PreparedOperation.Execute then blocks the caller until execution
// completes.
type blockingExecutor struct {
	serialDrain
}

func newBlockingExecutor() *blockingExecutor {
	return &blockingExecutor{serialDrain: newSerialDrain()}
}

var _ executor = (*blockingExecutor)(nil)

// Run implements executor.
func (e *blockingExecutor) Run(ctx *ExecutionContext) <-chan ExecutionResult {
	resultCh := make(chan ExecutionResult, 1)
	resultCh <- e.drain(ctx, e)
	return resultCh
}

// serialExecutor runs tasks "serially" like blockingExecutor (one at a time, in DFS order), but
// offloads the drain loop to a goroutine submitted to a concurrent.Executor so that Run doesn't
// block the caller. It is selected for mutations, whose root fields must execute serially per the
// specification.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Mutation
type serialExecutor struct {
	serialDrain

	runner concurrent.Executor
}

func newSerialExecutor(runner concurrent.Executor) *serialExecutor {
	return &serialExecutor{serialDrain: newSerialDrain(), runner: runner}
}

var _ executor = (*serialExecutor)(nil)

// Run implements executor.
func (e *serialExecutor) Run(ctx *ExecutionContext) <-chan ExecutionResult {
	resultCh := make(chan ExecutionResult, 1)

	_, err := e.runner.Submit(concurrent.TaskFunc(func() (interface{}, error) {
		resultCh <- e.drain(ctx, e)
		return nil, nil
	}))
	if err != nil {
		resultCh <- ExecutionResult{Errors: graphql.ErrorsOf(err.Error())}
	}

	return resultCh
}
