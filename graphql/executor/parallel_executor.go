/**
 * Copyright (c) 2019, The Artemis Authors.
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

// parallelExecutor submits every Task to a concurrent.Executor and lets them run concurrently with
// one another. It is selected for queries and subscriptions, whose top-level (and nested) fields
// may resolve independently and in any order.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Normal-and-Serial-Execution
type parallelExecutor struct {
	commonExecutorState

	runner concurrent.Executor

	// pending counts tasks that have been submitted to runner but have not yet completed, plus one
	// extra unit of work held by Run itself while it is still collecting and dispatching the root
	// tasks. The extra unit guards against a root task completing (and decrementing pending to zero)
	// before every root task has even been dispatched.
	pending int64

	// done is signalled once pending reaches zero.
	done chan struct{}
}

func newParallelExecutor(runner concurrent.Executor) *parallelExecutor {
	return &parallelExecutor{runner: runner, done: make(chan struct{}, 1)}
}

var _ executor = (*parallelExecutor)(nil)

// submit arranges for task.run() to execute on runner, decrementing pending (and signalling done
// once it reaches zero) when it finishes.
func (e *parallelExecutor) submit(task Task) {
	_, err := e.runner.Submit(concurrent.TaskFunc(func() (interface{}, error) {
		task.run()
		e.complete()
		return nil, nil
	}))
	if err != nil {
		// The runner rejected the task, e.g. because it has been shut down. Record it as an execution
		// error and account for it as if the task had run to completion.
		e.mu.Lock()
		e.errs.Emplace(err.Error())
		e.mu.Unlock()
		e.complete()
	}
}

// complete decrements pending and signals done once every outstanding task has completed.
func (e *parallelExecutor) complete() {
	if atomic.AddInt64(&e.pending, -1) == 0 {
		e.done <- struct{}{}
	}
}

// Dispatch implements executor.
func (e *parallelExecutor) Dispatch(task Task) {
	atomic.AddInt64(&e.pending, 1)
	e.submit(task)
}

// Yield implements executor. The task remains outstanding (still counted in e.pending) until Resume
// submits it again: Yield adds one unit to e.pending for the completion of the current run.
func (e *parallelExecutor) Yield(task Task) {
	atomic.AddInt64(&e.pending, 1)
}

// Resume implements executor.
func (e *parallelExecutor) Resume(task Task) {
	e.submit(task)
}

// Run implements executor.
func (e *parallelExecutor) Run(ctx *ExecutionContext) <-chan ExecutionResult {
	resultCh := make(chan ExecutionResult, 1)

	// Hold one unit of pending work for the setup below, so that root tasks completing concurrently
	// with collectAndDispatchRootTasks cannot signal done prematurely.
	atomic.AddInt64(&e.pending, 1)

	_, err := e.runner.Submit(concurrent.TaskFunc(func() (interface{}, error) {
		root, err := collectAndDispatchRootTasks(ctx, e)
		setupIsLastUnit := atomic.AddInt64(&e.pending, -1) == 0

		if err != nil {
			resultCh <- ExecutionResult{Errors: graphql.ErrorsOf(err)}
			return nil, nil
		}

		if !setupIsLastUnit {
			<-e.done
		}
		resultCh <- ExecutionResult{Data: root, Errors: e.errors()}
		return nil, nil
	}))
	if err != nil {
		resultCh <- ExecutionResult{Errors: graphql.ErrorsOf(err.Error())}
	}

	return resultCh
}
