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

package instrumentation

import (
	"context"

	"github.com/nimbusgraph/gql/graphql"
	"github.com/nimbusgraph/gql/graphql/middleware"
)

// fieldMiddleware adapts a Tracer's OnFieldStart/OnFieldEnd pair to middleware.Middleware's
// Before/After shape, so a Tracer can observe field resolution by riding along with
// executor.PrepareParams.Middlewares instead of the executor itself needing to know tracers exist.
type fieldMiddleware struct {
	tracer *Tracer
}

// Middleware returns a middleware.Middleware that reports every field resolution to t. Append it
// to executor.PrepareParams.Middlewares to wire a Tracer into execution.
func (t *Tracer) Middleware() middleware.Middleware {
	return fieldMiddleware{tracer: t}
}

func (m fieldMiddleware) Before(ctx context.Context, info graphql.ResolveInfo) (interface{}, error) {
	m.tracer.FieldStart(info)
	// info is threaded through as the token so After can report the same info to OnFieldEnd:
	// middleware.Chain only hands After whatever Before returned, not info itself.
	return info, nil
}

func (m fieldMiddleware) After(token interface{}, result interface{}, err error) {
	info, ok := token.(graphql.ResolveInfo)
	if !ok {
		return
	}
	m.tracer.FieldEnd(info)
}
