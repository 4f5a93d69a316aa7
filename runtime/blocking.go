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

// Blocking returns a Runtime whose Submit runs fn synchronously, in the calling goroutine, before
// returning. It's the simplest Runtime: no goroutines, no pool to size, useful for tests and for
// hosts that don't need resolvers to run concurrently.
func Blocking() Runtime {
	return blockingRuntime{}
}

type blockingRuntime struct{}

func (blockingRuntime) Submit(fn func() (interface{}, error)) *Deferred {
	value, err := fn()
	return Resolved(value, err)
}

func (blockingRuntime) EnsureDeferred(value interface{}, err error) *Deferred {
	if d, ok := value.(*Deferred); ok {
		return d
	}
	return Resolved(value, err)
}

func (blockingRuntime) GatherValues(ctx context.Context, ds []*Deferred) ([]interface{}, error) {
	return gatherValues(ctx, ds)
}

func (blockingRuntime) Chain(d *Deferred, fn func(interface{}, error) (interface{}, error)) *Deferred {
	value, err := d.Wait(context.Background())
	result, err := fn(value, err)
	return Resolved(result, err)
}

func (blockingRuntime) Wait(ctx context.Context, d *Deferred) (interface{}, error) {
	return d.Wait(ctx)
}
