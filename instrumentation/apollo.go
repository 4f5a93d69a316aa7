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
	"fmt"
	"sync"
	"time"

	"github.com/nimbusgraph/gql/graphql"
)

// fieldTiming records the resolution window for one occurrence of a field in the response tree,
// keyed by its response path.
type fieldTiming struct {
	path       []interface{}
	parentType string
	fieldName  string
	returnType string
	start      time.Time
	end        time.Time
}

// ApolloTracer collects request timing in the shape the Apollo Tracing specification
// (https://github.com/apollographql/apollo-tracing) expects for a response's "tracing" extension.
// It is safe for concurrent use: sibling fields report through OnFieldStart/OnFieldEnd from
// separate goroutines during execution.
type ApolloTracer struct {
	mu sync.Mutex

	start, end                 time.Time
	parseStart, parseEnd       time.Time
	validateStart, validateEnd time.Time

	fields     []*fieldTiming
	fieldIndex map[string]*fieldTiming
}

// Tracer returns the Tracer whose callbacks feed this ApolloTracer.
func (a *ApolloTracer) Tracer() *Tracer {
	return &Tracer{
		OnStart:         a.onStart,
		OnEnd:           a.onEnd,
		OnParseStart:    a.onParseStart,
		OnParseEnd:      a.onParseEnd,
		OnValidateStart: a.onValidateStart,
		OnValidateEnd:   a.onValidateEnd,
		OnFieldStart:    a.onFieldStart,
		OnFieldEnd:      a.onFieldEnd,
	}
}

func (a *ApolloTracer) onStart() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.start = time.Now().UTC()
}

func (a *ApolloTracer) onEnd() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.end = time.Now().UTC()
}

func (a *ApolloTracer) onParseStart() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.parseStart = time.Now().UTC()
}

func (a *ApolloTracer) onParseEnd() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.parseEnd = time.Now().UTC()
}

func (a *ApolloTracer) onValidateStart() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.validateStart = time.Now().UTC()
}

func (a *ApolloTracer) onValidateEnd() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.validateEnd = time.Now().UTC()
}

// pathKey turns a ResponsePath's keys into a lookup key stable for the lifetime of one field
// occurrence (a given path never repeats within a single response tree).
func pathKey(path graphql.ResponsePath) string {
	return fmt.Sprint(path.Keys())
}

func (a *ApolloTracer) onFieldStart(info graphql.ResolveInfo) {
	timing := &fieldTiming{
		path:       info.Path().Keys(),
		parentType: info.Object().Name(),
		fieldName:  info.Field().Name(),
		returnType: graphql.Inspect(info.Field().Type()),
		start:      time.Now().UTC(),
	}

	key := pathKey(info.Path())

	a.mu.Lock()
	defer a.mu.Unlock()
	if a.fieldIndex == nil {
		a.fieldIndex = map[string]*fieldTiming{}
	}
	a.fieldIndex[key] = timing
	a.fields = append(a.fields, timing)
}

func (a *ApolloTracer) onFieldEnd(info graphql.ResolveInfo) {
	key := pathKey(info.Path())

	a.mu.Lock()
	defer a.mu.Unlock()
	if timing, ok := a.fieldIndex[key]; ok {
		timing.end = time.Now().UTC()
	}
}

func nanosBetween(start, end time.Time) int64 {
	return end.Sub(start).Nanoseconds()
}

func rfc3339Micro(t time.Time) string {
	return t.Format("2006-01-02T15:04:05.000000Z")
}

// Extension produces the "tracing" extensions payload for the response, per the Apollo Tracing
// specification's version-1 shape: a top-level start/end/duration, an "execution.resolvers" entry
// per field resolved, and "parsing"/"validation" blocks when those phases were timed.
func (a *ApolloTracer) Extension() map[string]interface{} {
	a.mu.Lock()
	defer a.mu.Unlock()

	payload := map[string]interface{}{
		"version":   1,
		"startTime": rfc3339Micro(a.start),
		"endTime":   rfc3339Micro(a.end),
		"duration":  nanosBetween(a.start, a.end),
	}

	if len(a.fields) > 0 {
		resolvers := make([]map[string]interface{}, 0, len(a.fields))
		for _, f := range a.fields {
			resolvers = append(resolvers, map[string]interface{}{
				"path":        f.path,
				"parentType":  f.parentType,
				"fieldName":   f.fieldName,
				"returnType":  f.returnType,
				"startOffset": nanosBetween(a.start, f.start),
				"duration":    nanosBetween(f.start, f.end),
			})
		}
		payload["execution"] = map[string]interface{}{"resolvers": resolvers}
	}

	if !a.validateStart.IsZero() {
		payload["validation"] = map[string]interface{}{
			"startOffset": nanosBetween(a.start, a.validateStart),
			"duration":    nanosBetween(a.validateStart, a.validateEnd),
		}
	}

	if !a.parseStart.IsZero() {
		payload["parsing"] = map[string]interface{}{
			"startOffset": nanosBetween(a.start, a.parseStart),
			"duration":    nanosBetween(a.parseStart, a.parseEnd),
		}
	}

	return payload
}
