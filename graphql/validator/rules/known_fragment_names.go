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
	"github.com/nimbusgraph/gql/graphql"
	"github.com/nimbusgraph/gql/graphql/ast"
	messages "github.com/nimbusgraph/gql/graphql/internal/validator"
	"github.com/nimbusgraph/gql/graphql/validator"
)

// KnownFragmentNames implements the "Fragment spread target defined" validation rule.
//
// See https://facebook.github.io/graphql/June2018/#sec-Fragment-spread-target-defined.
type KnownFragmentNames struct{}

// CheckFragmentSpread implements validator.FragmentSpreadRule.
func (rule KnownFragmentNames) CheckFragmentSpread(
	ctx *validator.ValidationContext,
	parentType graphql.Type,
	fragmentInfo *validator.FragmentInfo,
	fragmentSpread *ast.FragmentSpread) validator.NextCheckAction {

	if fragmentInfo == nil {
		ctx.ReportError(
			messages.UnknownFragmentMessage(fragmentSpread.Name.Value()),
			graphql.ErrorLocationOfASTNode(fragmentSpread),
		)
	}

	return validator.ContinueCheck
}
