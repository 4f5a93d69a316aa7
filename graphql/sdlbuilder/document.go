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

// Package sdlbuilder builds a graphql.Schema from SDL (schema definition language) documents: the
// type-system definitions and extensions produced by parser.ParseSchema.
//
// Construction proceeds in passes so that forward references between types (the usual case in SDL,
// where a type can reference another declared later in the document) resolve correctly:
//
//  1. bucket the document's definitions by kind (schema definition/extension, type definition,
//     type extension, directive definition) and reject structural errors (duplicate type names,
//     an extension with no matching base definition, a scalar extension, which this module does
//     not support and rejects rather than silently ignoring).
//  2. create one stub TypeDefinition (a *graphql.ObjectConfig, *graphql.EnumConfig, ...) per named
//     type, keyed by name. These pointers are handed out as the TypeDefinition value wherever the
//     type is referenced, including by itself or its own descendants, which is what lets the
//     underlying graphql package's pointer-identity cache (see graphql.NewType) resolve cycles.
//  3. fill in each stub's fields, arguments, interfaces, possible types and enum values, merging
//     in whatever the type's extensions add, resolving every type reference against the stub map
//     built in pass 2.
//  4. resolve the schema's root operation types and directive definitions, then call
//     graphql.NewSchema to materialize every stub into a real graphql.Type.
package sdlbuilder

import (
	"fmt"

	"github.com/nimbusgraph/gql/graphql"
	"github.com/nimbusgraph/gql/graphql/ast"
	"github.com/nimbusgraph/gql/graphql/parser"
)

// BuildSchema parses source as an SDL document and builds a graphql.Schema from it.
func BuildSchema(source *graphql.Source) (graphql.Schema, error) {
	doc, err := parser.ParseSchema(source, parser.ParseOptions{})
	if err != nil {
		return nil, err
	}
	return BuildSchemaFromDocument(doc)
}

// BuildSchemaFromDocument builds a graphql.Schema from an already-parsed SDL document.
func BuildSchemaFromDocument(doc ast.Document) (graphql.Schema, error) {
	b, err := newBuilder(doc)
	if err != nil {
		return nil, err
	}
	return b.build()
}

// builder accumulates the buckets gathered from a single SDL document and the stubs created from
// them.
type builder struct {
	schemaDef  *ast.SchemaDefinition
	schemaExts []*ast.SchemaExtension

	// typeOrder preserves declaration order so the resulting schema's Types slice (and therefore
	// introspection's __schema.types) lists types in the order the SDL declared them.
	typeOrder []string
	typeDefs  map[string]ast.TypeDefinition
	typeExts  map[string][]ast.TypeExtension

	directiveDefs []*ast.DirectiveDefinition

	// stubs maps every named type (built-in scalars included) to the TypeDefinition standing in for
	// it while the schema is under construction.
	stubs map[string]graphql.TypeDefinition
}

func newBuilder(doc ast.Document) (*builder, error) {
	b := &builder{
		typeDefs: map[string]ast.TypeDefinition{},
		typeExts: map[string][]ast.TypeExtension{},
		stubs:    map[string]graphql.TypeDefinition{},
	}

	for _, def := range doc.Definitions {
		switch def := def.(type) {
		case *ast.SchemaDefinition:
			if b.schemaDef != nil {
				return nil, graphql.NewSDLError("Must provide only one schema definition.", def)
			}
			b.schemaDef = def

		case *ast.SchemaExtension:
			b.schemaExts = append(b.schemaExts, def)

		case *ast.DirectiveDefinition:
			b.directiveDefs = append(b.directiveDefs, def)

		case ast.TypeDefinition:
			name := def.GetName().Value()
			if _, exists := b.typeDefs[name]; exists {
				return nil, graphql.NewSDLError(
					fmt.Sprintf("Type %q was defined more than once.", name), def)
			}
			b.typeDefs[name] = def
			b.typeOrder = append(b.typeOrder, name)

		case *ast.ScalarTypeExtension:
			// Open question (resolved): unlike the other type extensions, a scalar extension can only
			// carry directives, which this builder does not otherwise track, so rather than silently
			// drop it, reject it outright.
			return nil, graphql.NewSDLError(
				fmt.Sprintf("Scalar extensions are not supported, but %q was extended.", def.GetName().Value()), def)

		case ast.TypeExtension:
			name := def.GetName().Value()
			b.typeExts[name] = append(b.typeExts[name], def)

		default:
			return nil, graphql.NewSDLError(
				fmt.Sprintf("%T is not allowed in a schema document.", def), def)
		}
	}

	for name, exts := range b.typeExts {
		if _, exists := b.typeDefs[name]; !exists {
			return nil, graphql.NewSDLError(
				fmt.Sprintf("Cannot extend type %q because it is not defined.", name), exts[0].(ast.Node))
		}
	}

	return b, nil
}

// build runs passes 2 through 4 described in the package documentation.
func (b *builder) build() (graphql.Schema, error) {
	b.seedBuiltinScalars()

	for _, name := range b.typeOrder {
		if err := b.createStub(name); err != nil {
			return nil, err
		}
	}
	for _, name := range b.typeOrder {
		if err := b.populateStub(name); err != nil {
			return nil, err
		}
	}

	config, err := b.schemaConfig()
	if err != nil {
		return nil, err
	}
	return graphql.NewSchema(config)
}

// seedBuiltinScalars registers the five built-in scalars so that field/argument/input-field types
// can reference them by name like any other type. It is an error for the document to also declare
// a type with one of these names.
func (b *builder) seedBuiltinScalars() {
	for name, t := range map[string]graphql.Type{
		"Int":     graphql.Int(),
		"Float":   graphql.Float(),
		"String":  graphql.String(),
		"Boolean": graphql.Boolean(),
		"ID":      graphql.ID(),
	} {
		b.stubs[name] = graphql.T(t)
	}
}
