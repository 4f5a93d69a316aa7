/**
 * Copyright (c) 2018, The Artemis Authors.
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

package graphql

import "github.com/nimbusgraph/gql/graphql/token"

// Source, and the aliases below, re-export the token package's source model at the root of the
// module so that lexer, parser and schema-building code can all speak of "a GraphQL source" in
// terms of this package rather than reaching into graphql/token directly.
type (
	Source             = token.Source
	SourceBody         = token.SourceBody
	SourceOption       = token.SourceOption
	SourceLocation     = token.SourceLocation
	SourceLocationInfo = token.SourceLocationInfo
	SourceRange        = token.SourceRange
)

// NoSourceLocation is the zero SourceLocation, used by nodes with no real position (e.g. built-in
// introspection types).
const NoSourceLocation = token.NoSourceLocation

// NewSource builds a Source from GraphQL text.
func NewSource(body string, opts ...SourceOption) *Source {
	return token.NewSource(body, opts...)
}

// NewSourceFromBytes builds a Source from a raw byte slice.
func NewSourceFromBytes(body []byte, opts ...SourceOption) *Source {
	return token.NewSourceFromBytes(body, opts...)
}

// SourceName labels a Source, shown in printed error locations.
func SourceName(name string) SourceOption {
	return token.SourceName(name)
}

// SourceLineOffset offsets every computed line number for a Source.
func SourceLineOffset(offset uint) SourceOption {
	return token.SourceLineOffset(offset)
}

// SourceColumnOffset offsets every computed column number for a Source.
func SourceColumnOffset(offset uint) SourceOption {
	return token.SourceColumnOffset(offset)
}
