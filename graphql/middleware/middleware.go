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

// Package middleware implements ordered wrapping of field resolvers.
//
// A middleware chain is an ordered list of wrappers around a field's resolver. Composition is
// inside-out: the last Middleware passed to Chain wraps the resolver directly, the first is
// outermost and observes a field's resolution first and last.
//
// Conceptually, a middleware is a generator that yields exactly once: code before the yield runs
// before the field resolves, the yielded value is the (possibly still in-flight) resolved value,
// and code after the yield runs once resolution completes, however it completes. Go has no
// coroutines, so that shape is realized here as two callbacks, Before and After, with After
// guaranteed to run (via defer) even when the resolver or a downstream middleware panics.
package middleware

import (
	"context"
	"fmt"

	"github.com/nimbusgraph/gql/graphql"
)

// Middleware wraps field resolution with a Before/After pair.
type Middleware interface {
	// Before runs immediately before the next resolver in the chain (the wrapped field's own
	// resolver, if this Middleware is innermost). The token it returns, if any, is handed back to
	// After once resolution completes. Returning a non-nil error aborts resolution: the wrapped
	// resolver is never called and the error is returned in the field's place, but After still runs.
	Before(ctx context.Context, info graphql.ResolveInfo) (token interface{}, err error)

	// After runs once resolution completes, whether it succeeded, returned an error, or a resolver
	// further down the chain panicked (in which case result is nil and err holds the recovered
	// value, and the panic is re-raised after After returns).
	After(token interface{}, result interface{}, err error)
}

// Chain wraps resolver with middlewares and returns the combined resolver. middlewares are applied
// inside-out: middlewares[len(middlewares)-1] wraps resolver directly, middlewares[0] is outermost.
func Chain(resolver graphql.FieldResolver, middlewares ...Middleware) graphql.FieldResolver {
	for i := len(middlewares) - 1; i >= 0; i-- {
		resolver = wrap(middlewares[i], resolver)
	}
	return resolver
}

func wrap(m Middleware, next graphql.FieldResolver) graphql.FieldResolver {
	return graphql.FieldResolverFunc(
		func(ctx context.Context, source interface{}, info graphql.ResolveInfo) (result interface{}, err error) {
			token, err := m.Before(ctx, info)
			if err != nil {
				m.After(token, nil, err)
				return nil, err
			}

			defer func() {
				if r := recover(); r != nil {
					if recovered, ok := r.(error); ok {
						err = recovered
					} else {
						err = fmt.Errorf("%v", r)
					}
					m.After(token, nil, err)
					panic(r)
				}
				m.After(token, result, err)
			}()

			return next.Resolve(ctx, source, info)
		})
}
