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

// Package runtime schedules the asynchronous work a field resolver hands back: a resolver may
// return a value directly, or it may return something that still needs more work to produce a
// value, in which case a Runtime arranges for that work to happen and reports the eventual result
// through a Deferred.
//
// This is deliberately simpler than concurrent/future's Future/Waker cooperative-polling machinery:
// a Deferred resolves exactly once, on a completion channel, and nothing needs to poll it.
package runtime

import "context"

// Deferred is a value that becomes available sometime after Runtime.Submit, Runtime.Chain or
// Runtime.EnsureDeferred returns it.
type Deferred struct {
	done  chan struct{}
	value interface{}
	err   error
}

func newPendingDeferred() *Deferred {
	return &Deferred{done: make(chan struct{})}
}

// Resolved returns a Deferred that has already completed with value and err.
func Resolved(value interface{}, err error) *Deferred {
	d := &Deferred{done: make(chan struct{}), value: value, err: err}
	close(d.done)
	return d
}

// resolve completes d. It must be called at most once.
func (d *Deferred) resolve(value interface{}, err error) {
	d.value = value
	d.err = err
	close(d.done)
}

// Wait blocks until d resolves or ctx is done, whichever happens first.
func (d *Deferred) Wait(ctx context.Context) (interface{}, error) {
	select {
	case <-d.done:
		return d.value, d.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// gatherValues waits for every Deferred in ds, in order, stopping at the first error. It backs
// both Runtime implementations' GatherValues method.
func gatherValues(ctx context.Context, ds []*Deferred) ([]interface{}, error) {
	values := make([]interface{}, len(ds))
	for i, d := range ds {
		value, err := d.Wait(ctx)
		if err != nil {
			return nil, err
		}
		values[i] = value
	}
	return values, nil
}
