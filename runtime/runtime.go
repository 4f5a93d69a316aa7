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

package runtime

import "context"

// Runtime schedules the work behind a Deferred. Host code picks an implementation (Blocking for a
// synchronous, single-goroutine pipeline, or a NewWorkerPool for bounded concurrency) and supplies
// it to the executor once per request.
type Runtime interface {
	// Submit schedules fn for execution and returns a Deferred for its eventual result. Submit
	// itself never blocks waiting for fn to finish.
	Submit(fn func() (interface{}, error)) *Deferred

	// EnsureDeferred normalizes a resolver's return value. If value is already a *Deferred (a
	// resolver that started its own async work and handed back a handle to it), it is returned
	// unchanged; otherwise value and err are wrapped in an already-resolved Deferred.
	EnsureDeferred(value interface{}, err error) *Deferred

	// GatherValues waits for every Deferred in ds, preserving order, and returns their resolved
	// values. It returns the first error encountered (in ds order), matching the executor's
	// fail-fast treatment of field errors within a selection set.
	GatherValues(ctx context.Context, ds []*Deferred) ([]interface{}, error)

	// Chain schedules fn to run once d resolves, passing d's value and error, and returns a
	// Deferred for fn's result. Lets a resolver post-process an asynchronous value (e.g., apply a
	// transform to a batched load) without blocking the goroutine that requested it.
	Chain(d *Deferred, fn func(value interface{}, err error) (interface{}, error)) *Deferred

	// Wait blocks the calling goroutine until d resolves.
	Wait(ctx context.Context, d *Deferred) (interface{}, error)
}
