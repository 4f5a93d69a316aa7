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

package graphql

import (
	"reflect"

	"github.com/nimbusgraph/gql/internal/util"
	"github.com/nimbusgraph/gql/iterator"
)

// A value resolved for a List-typed field is usually a Go array or slice, which the executor walks
// with reflection. When a resolver instead returns a value implementing Iterable, the executor
// recognizes it specially and drains it through Iterator rather than reflect.Value.Index, which
// lets resolvers stream results (e.g. from a cursor or generator) without first materializing a
// slice.
type Iterable interface {
	// Iterator returns an iterator to loop over the sequence's values.
	Iterator() Iterator
}

// SizedIterable is an Iterable that can report how many values it holds before iteration starts.
// The executor uses the hint to preallocate the result list.
type SizedIterable interface {
	Iterable

	// Size returns the number of values the sequence holds.
	Size() int
}

// Iterator accesses the values of an Iterable one at a time.
type Iterator interface {
	// Next returns the next value in the sequence. It follows the semantics of the iterator package
	// [0], returning:
	//
	//  - (value, nil): the next value in the sequence.
	//  - (<ignored>, iterator.Done): the sequence is exhausted.
	//  - (<ignored>, <error>): an error occurred fetching the next value.
	//
	// [0]: github.com/nimbusgraph/gql/iterator
	Next() (interface{}, error)
}

// mapValuesIterator implements Iterator over the values of a Go map. Introspection resolvers use
// it to enumerate FieldMap, EnumValueMap and InputFieldMap without a copy.
type mapValuesIterator struct {
	iter *util.ImmutableMapIter
}

// NewMapValuesIterator returns an Iterator over the values of m, which must be a Go map. The map
// must not be modified while the returned Iterator is in use.
func NewMapValuesIterator(m interface{}) Iterator {
	return mapValuesIterator{util.NewImmutableMapIter(m)}
}

// Next implements Iterator.
func (iter mapValuesIterator) Next() (interface{}, error) {
	mapIter := iter.iter
	if !mapIter.Next() {
		return nil, iterator.Done
	}
	return mapIter.Value().Interface(), nil
}

// MapValuesIterable wraps a Go map into a SizedIterable over its values. It is handy for a
// resolver that wants to return a map's values as a List field without first copying them into a
// slice.
type MapValuesIterable struct {
	// m is the map to be iterated; it must be a Go map.
	m interface{}
}

// NewMapValuesIterable creates a MapValuesIterable. m must be a Go map.
func NewMapValuesIterable(m interface{}) MapValuesIterable {
	return MapValuesIterable{m}
}

// Iterator implements Iterable.
func (iterable MapValuesIterable) Iterator() Iterator {
	return NewMapValuesIterator(iterable.m)
}

// Size implements SizedIterable.
func (iterable MapValuesIterable) Size() int {
	return reflect.ValueOf(iterable.m).Len()
}
