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

package rules

import (
	"github.com/nimbusgraph/gql/graphql/validator"
)

// Importing this package registers the set of validation rules required by the GraphQL
// specification with the validator package, in the order graphql-js runs them.
func init() {
	validator.InitStandardRules(
		UniqueOperationNames{},
		LoneAnonymousOperation{},
		SingleFieldSubscriptions{},
		KnownTypeNames{},
		FragmentsOnCompositeTypes{},
		VariablesAreInputTypes{},
		ScalarLeafs{},
		FieldsOnCorrectType{},
		UniqueFragmentNames{},
		KnownFragmentNames{},
		NoUnusedFragments{},
		PossibleFragmentSpreads{},
		NoFragmentCycles{},
		UniqueVariableNames{},
		NoUndefinedVariables{},
		NoUnusedVariables{},
		KnownDirectives{},
		UniqueDirectivesPerLocation{},
		DirectivesInValidLocations{},
		KnownArgumentNames{},
		UniqueArgumentNames{},
		ValuesOfCorrectType{},
		ProvidedRequiredArguments{},
		VariablesInAllowedPosition{},
		OverlappingFieldsCanBeMerged{},
		UniqueInputFieldNames{},
	)
}
