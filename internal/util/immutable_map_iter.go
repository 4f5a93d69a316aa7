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

// Built for Go 1.12+ where reflect.MapIter is available.
//+build go1.12

package util

import (
	"reflect"
)

// ImmutableMapIter iterates over the entries of a Go map without taking a snapshot: it reflects
// insertions and deletions made to the map before Next is first called, same as range over a map
// handles concurrent-with-iteration-setup mutation. Deletions and insertions made after iteration
// has begun follow the same unspecified-order guarantees as Go's own map iteration.
type ImmutableMapIter struct {
	iter *reflect.MapIter
}

// NewImmutableMapIter creates an ImmutableMapIter for m. m must be a Go map; NewImmutableMapIter
// panics otherwise.
func NewImmutableMapIter(m interface{}) *ImmutableMapIter {
	v := reflect.ValueOf(m)
	if v.Kind() != reflect.Map {
		panic(&reflect.ValueError{
			Method: "github.com/nimbusgraph/gql/internal/util.NewMapIter",
			Kind:   v.Kind(),
		})
	}
	return &ImmutableMapIter{iter: v.MapRange()}
}

// Key returns the key of the iterator's current map entry.
func (it *ImmutableMapIter) Key() reflect.Value {
	return it.iter.Key()
}

// Value returns the value of the iterator's current map entry.
func (it *ImmutableMapIter) Value() reflect.Value {
	return it.iter.Value()
}

// Next advances the iterator and reports whether there is another entry. It must be called before
// the first call to Key or Value and after all calls to Key and Value.
func (it *ImmutableMapIter) Next() bool {
	return it.iter.Next()
}
