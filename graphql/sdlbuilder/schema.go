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

package sdlbuilder

import (
	"fmt"

	"github.com/nimbusgraph/gql/graphql"
	"github.com/nimbusgraph/gql/graphql/ast"
)

// conventionalRootTypeNames maps each root operation to the type name SDL convention assigns it
// when a document declares no explicit "schema { ... }" block.
var conventionalRootTypeNames = map[string]string{
	"query":        "Query",
	"mutation":     "Mutation",
	"subscription": "Subscription",
}

// schemaConfig assembles the final graphql.SchemaConfig: it resolves the schema's root operation
// types and directive definitions, and materializes every stub into a real graphql.Type by
// calling graphql.NewType on each of them.
func (b *builder) schemaConfig() (*graphql.SchemaConfig, error) {
	roots, err := b.rootOperationTypeNames()
	if err != nil {
		return nil, err
	}

	config := &graphql.SchemaConfig{}
	for op, name := range roots {
		obj, err := b.rootObjectType(op, name)
		if err != nil {
			return nil, err
		}
		switch op {
		case "query":
			config.Query = obj
		case "mutation":
			config.Mutation = obj
		case "subscription":
			config.Subscription = obj
		}
	}

	types := make([]graphql.Type, 0, len(b.typeOrder))
	for _, name := range b.typeOrder {
		t, err := graphql.NewType(b.stubs[name])
		if err != nil {
			return nil, err
		}
		types = append(types, t)
	}
	config.Types = types

	for _, def := range b.directiveDefs {
		directiveConfig, err := b.directiveConfig(def)
		if err != nil {
			return nil, err
		}
		directive, err := graphql.NewDirective(directiveConfig)
		if err != nil {
			return nil, err
		}
		config.Directives = append(config.Directives, directive)
	}

	return config, nil
}

// rootObjectType materializes the stub named typeName (the root type the document assigned to
// op) into a graphql.Object.
func (b *builder) rootObjectType(op string, typeName string) (graphql.Object, error) {
	stub, ok := b.stubs[typeName]
	if !ok {
		return nil, graphql.NewSDLError(fmt.Sprintf("%s root type %q is not defined.", op, typeName))
	}
	t, err := graphql.NewType(stub)
	if err != nil {
		return nil, err
	}
	obj, ok := t.(graphql.Object)
	if !ok {
		return nil, graphql.NewSDLError(fmt.Sprintf("%s root type %q must be an object type.", op, typeName))
	}
	return obj, nil
}

// rootOperationTypeNames resolves the schema's root operation type names from its "schema { ... }"
// definition and extensions, if any, falling back to the Query/Mutation/Subscription naming
// convention when the document gives none.
func (b *builder) rootOperationTypeNames() (map[string]string, error) {
	roots := map[string]string{}

	assign := func(opType *ast.OperationTypeDefinition) error {
		op := string(opType.Operation())
		if _, exists := roots[op]; exists {
			return graphql.NewSDLError(fmt.Sprintf("Must provide only one %s type in schema.", op), opType)
		}
		roots[op] = opType.Type.Name.Value()
		return nil
	}

	if b.schemaDef != nil {
		for _, opType := range b.schemaDef.OperationTypes {
			if err := assign(opType); err != nil {
				return nil, err
			}
		}
	}
	for _, ext := range b.schemaExts {
		for _, opType := range ext.OperationTypes {
			if err := assign(opType); err != nil {
				return nil, err
			}
		}
	}

	if len(roots) == 0 {
		for op, name := range conventionalRootTypeNames {
			if _, exists := b.typeDefs[name]; exists {
				roots[op] = name
			}
		}
	}

	if _, hasQuery := roots["query"]; !hasQuery {
		return nil, graphql.NewSDLError("Must provide a query type in schema.")
	}

	return roots, nil
}

// directiveConfig builds a *graphql.DirectiveConfig from a directive definition. Repeatable
// directives (GraphQL's newer @repeatable modifier) have no representation in graphql.Directive
// and are accepted but not tracked as repeatable.
func (b *builder) directiveConfig(def *ast.DirectiveDefinition) (*graphql.DirectiveConfig, error) {
	args, err := b.buildArgumentConfigMap(def.Arguments)
	if err != nil {
		return nil, err
	}

	locations := make([]graphql.DirectiveLocation, len(def.Locations))
	for i, loc := range def.Locations {
		locations[i] = graphql.DirectiveLocation(loc.Value())
	}

	return &graphql.DirectiveConfig{
		Name:        def.Name.Value(),
		Description: descriptionOf(def.Description),
		Locations:   locations,
		Args:        args,
	}, nil
}
