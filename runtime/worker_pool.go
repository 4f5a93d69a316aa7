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

import (
	"context"
	"errors"
	"time"
)

// WorkerPoolConfig configures NewWorkerPool. Field names mirror
// concurrent.WorkerPoolExecutorConfig so the two read as the same idea at two different sizes: that
// pool bounds a general Task/TaskHandle executor with CAS-driven pool growth and shrinkage; this one
// only needs to bound how many resolver functions may run at once.
type WorkerPoolConfig struct {
	// MaxPoolSize bounds how many Submit'd functions may run concurrently. Required, must be > 0.
	MaxPoolSize uint32

	// KeepAliveTime is accepted for config-shape parity with concurrent.WorkerPoolExecutorConfig but
	// unused: this pool has no idle workers to expire, since it does not pre-spawn goroutines.
	KeepAliveTime time.Duration
}

// NewWorkerPool creates a Runtime whose Submit runs fn on its own goroutine, bounded to at most
// cfg.MaxPoolSize concurrently running functions via a semaphore channel.
func NewWorkerPool(cfg WorkerPoolConfig) (Runtime, error) {
	if cfg.MaxPoolSize == 0 {
		return nil, errors.New("runtime: WorkerPoolConfig.MaxPoolSize must be greater than zero")
	}
	return &workerPoolRuntime{sem: make(chan struct{}, cfg.MaxPoolSize)}, nil
}

type workerPoolRuntime struct {
	sem chan struct{}
}

func (r *workerPoolRuntime) Submit(fn func() (interface{}, error)) *Deferred {
	d := newPendingDeferred()
	go func() {
		r.sem <- struct{}{}
		defer func() { <-r.sem }()
		value, err := fn()
		d.resolve(value, err)
	}()
	return d
}

func (r *workerPoolRuntime) EnsureDeferred(value interface{}, err error) *Deferred {
	if d, ok := value.(*Deferred); ok {
		return d
	}
	return Resolved(value, err)
}

func (r *workerPoolRuntime) GatherValues(ctx context.Context, ds []*Deferred) ([]interface{}, error) {
	return gatherValues(ctx, ds)
}

func (r *workerPoolRuntime) Chain(d *Deferred, fn func(interface{}, error) (interface{}, error)) *Deferred {
	return r.Submit(func() (interface{}, error) {
		value, err := d.Wait(context.Background())
		return fn(value, err)
	})
}

func (r *workerPoolRuntime) Wait(ctx context.Context, d *Deferred) (interface{}, error) {
	return d.Wait(ctx)
}
