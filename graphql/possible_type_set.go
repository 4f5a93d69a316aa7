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

import (
	"github.com/nimbusgraph/gql/internal/util"
	"github.com/nimbusgraph/gql/iterator"
)

// PossibleTypeSet is the set of concrete Object types that can satisfy an AbstractType (the
// implementors of an Interface, or the members of a Union). It is also an Iterable so that the
// "possibleTypes" introspection field can return it directly to the executor without first
// copying it into a slice.
type PossibleTypeSet struct {
	types map[Object]bool
}

// NewPossibleTypeSet creates an empty PossibleTypeSet.
func NewPossibleTypeSet() PossibleTypeSet {
	return PossibleTypeSet{types: map[Object]bool{}}
}

// Add inserts t into the set.
func (set PossibleTypeSet) Add(t Object) {
	set.types[t] = true
}

// Contains reports whether t is a member of the set.
func (set PossibleTypeSet) Contains(t Object) bool {
	return set.types[t]
}

// DoesIntersect reports whether set and other share at least one common Object type.
func (set PossibleTypeSet) DoesIntersect(other PossibleTypeSet) bool {
	// Range over the smaller set to minimize lookups.
	small, large := set, other
	if len(large.types) < len(small.types) {
		small, large = large, small
	}
	for t := range small.types {
		if large.types[t] {
			return true
		}
	}
	return false
}

// Size implements SizedIterable.
func (set PossibleTypeSet) Size() int {
	return len(set.types)
}

// Iterator implements Iterable, yielding each member Object in the set.
func (set PossibleTypeSet) Iterator() Iterator {
	return possibleTypeSetIterator{util.NewImmutableMapIter(set.types)}
}

type possibleTypeSetIterator struct {
	iter *util.ImmutableMapIter
}

// Next implements Iterator.
func (iter possibleTypeSetIterator) Next() (interface{}, error) {
	mapIter := iter.iter
	if !mapIter.Next() {
		return nil, iterator.Done
	}
	return mapIter.Key().Interface(), nil
}
