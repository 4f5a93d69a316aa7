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
	"sync"
	"sync/atomic"

	"github.com/nimbusgraph/gql/graphql"
)

// Task represents a unit of execution work scheduled onto an executor. ExecuteNodeTask and
// AsyncValueTask are its two implementations: the former resolves a field, the latter polls a
// Future returned by a resolver until it produces a value.
type Task interface {
	run()
}

// DataLoaderCycle identifies a round of data loader dispatching within a single execution. A task
// that is about to wait on a pending data loader records the cycle in effect at the time it yields;
// when resumed, it compares that cycle against the executor's current one to decide whether it (or
// someone else) is responsible for triggering the next dispatch. See tryDispatchDataLoaders.
type DataLoaderCycle uint64

// executor drives execution of a single prepared operation. It schedules ExecuteNodeTask's and
// AsyncValueTask's (possibly concurrently, depending on implementation), collects the errors they
// produce, and arbitrates data loader dispatch cycles. blockingExecutor, serialExecutor and
// parallelExecutor are its three implementations, selected by PreparedOperation.Execute based on
// the ExecuteParams supplied by the caller.
type executor interface {
	// Dispatch schedules task to run for the first time.
	Dispatch(task Task)

	// Yield records that task is waiting on a Future and will be rescheduled later via Resume. It
	// must be called from within task.run().
	Yield(task Task)

	// Resume reschedules a task previously passed to Yield, once its Future is ready to make
	// progress again. It may be called from a goroutine other than the one running the executor.
	Resume(task Task)

	// AppendError records a field error produced while resolving result, for inclusion in the final
	// ExecutionResult.
	AppendError(err *graphql.Error, result *ResultNode)

	// DataLoaderCycle returns the current data loader dispatch cycle.
	DataLoaderCycle() DataLoaderCycle

	// IncDataLoaderCycle attempts to advance the data loader cycle to cycle. It returns true if the
	// caller won the race to do so, and is therefore responsible for dispatching the pending data
	// loaders, or false if another task already advanced it.
	IncDataLoaderCycle(cycle DataLoaderCycle) bool

	// Run starts execution of ctx's operation and returns a channel that receives the single
	// ExecutionResult once every task has completed.
	Run(ctx *ExecutionContext) <-chan ExecutionResult
}

// commonExecutorState implements the bookkeeping shared by every executor implementation: error
// collection and data loader cycle tracking.
type commonExecutorState struct {
	mu   sync.Mutex
	errs graphql.Errors

	dataLoaderCycle uint64
}

// AppendError implements executor.
func (s *commonExecutorState) AppendError(err *graphql.Error, result *ResultNode) {
	s.mu.Lock()
	s.errs.Append(err)
	s.mu.Unlock()
}

// DataLoaderCycle implements executor.
func (s *commonExecutorState) DataLoaderCycle() DataLoaderCycle {
	return DataLoaderCycle(atomic.LoadUint64(&s.dataLoaderCycle))
}

// IncDataLoaderCycle implements executor.
func (s *commonExecutorState) IncDataLoaderCycle(cycle DataLoaderCycle) bool {
	return atomic.CompareAndSwapUint64(&s.dataLoaderCycle, uint64(cycle)-1, uint64(cycle))
}

// errors returns the errors collected so far. Callers must only call this once no more tasks can
// possibly call AppendError concurrently.
func (s *commonExecutorState) errors() graphql.Errors {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errs
}
