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

// Package instrumentation lets host code observe a request's lifecycle — parse, validate, field
// resolution, the whole query — without changing how the request runs. A Tracer is a struct of
// optional callbacks rather than an interface so a caller only supplies the hooks it cares about;
// every call site treats a nil field as "do nothing."
package instrumentation

import "github.com/nimbusgraph/gql/graphql"

// Tracer is a set of best-effort lifecycle callbacks. Implementations must tolerate concurrent
// calls to OnFieldStart/OnFieldEnd: sibling fields in a selection set resolve concurrently.
type Tracer struct {
	// OnStart/OnEnd bracket the whole request, from the moment a caller receives the raw query
	// text to the moment the response is fully assembled.
	OnStart func()
	OnEnd   func()

	// OnParseStart/OnParseEnd bracket lexing+parsing the query text into a Document.
	OnParseStart func()
	OnParseEnd   func()

	// OnValidateStart/OnValidateEnd bracket validating the parsed Document against the schema.
	OnValidateStart func()
	OnValidateEnd   func()

	// OnQueryStart/OnQueryEnd bracket executing the prepared operation (field resolution).
	OnQueryStart func()
	OnQueryEnd   func()

	// OnFieldStart/OnFieldEnd bracket resolving a single field. info is only valid for the
	// duration of the call.
	OnFieldStart func(info graphql.ResolveInfo)
	OnFieldEnd   func(info graphql.ResolveInfo)
}

func (t *Tracer) call(fn func()) {
	if t != nil && fn != nil {
		fn()
	}
}

// Start invokes OnStart, if set.
func (t *Tracer) Start() { t.call(t.OnStart) }

// End invokes OnEnd, if set.
func (t *Tracer) End() { t.call(t.OnEnd) }

// ParseStart invokes OnParseStart, if set.
func (t *Tracer) ParseStart() { t.call(t.OnParseStart) }

// ParseEnd invokes OnParseEnd, if set.
func (t *Tracer) ParseEnd() { t.call(t.OnParseEnd) }

// ValidateStart invokes OnValidateStart, if set.
func (t *Tracer) ValidateStart() { t.call(t.OnValidateStart) }

// ValidateEnd invokes OnValidateEnd, if set.
func (t *Tracer) ValidateEnd() { t.call(t.OnValidateEnd) }

// QueryStart invokes OnQueryStart, if set.
func (t *Tracer) QueryStart() { t.call(t.OnQueryStart) }

// QueryEnd invokes OnQueryEnd, if set.
func (t *Tracer) QueryEnd() { t.call(t.OnQueryEnd) }

// FieldStart invokes OnFieldStart, if set.
func (t *Tracer) FieldStart(info graphql.ResolveInfo) {
	if t != nil && t.OnFieldStart != nil {
		t.OnFieldStart(info)
	}
}

// FieldEnd invokes OnFieldEnd, if set.
func (t *Tracer) FieldEnd(info graphql.ResolveInfo) {
	if t != nil && t.OnFieldEnd != nil {
		t.OnFieldEnd(info)
	}
}
