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

package sdlbuilder_test

import (
	"github.com/nimbusgraph/gql/graphql"
	"github.com/nimbusgraph/gql/graphql/parser"
	"github.com/nimbusgraph/gql/graphql/sdlbuilder"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("SDL builder: schema and root operation types", func() {
	It("falls back to the Query/Mutation/Subscription naming convention with no schema block", func() {
		schema := buildSchema(`
			type Query {
				hello: String
			}

			type Mutation {
				setHello(value: String): String
			}
		`)

		Expect(schema.Query()).ShouldNot(BeNil())
		Expect(schema.Query().Name()).Should(Equal("Query"))
		Expect(schema.Mutation()).ShouldNot(BeNil())
		Expect(schema.Mutation().Name()).Should(Equal("Mutation"))
		Expect(schema.Subscription()).Should(BeNil())
	})

	It("honors an explicit schema block naming non-conventional root types", func() {
		schema := buildSchema(`
			schema {
				query: RootQuery
			}

			type RootQuery {
				hello: String
			}

			type Query {
				ignoredBecauseNotTheRoot: String
			}
		`)

		Expect(schema.Query().Name()).Should(Equal("RootQuery"))
	})

	It("merges root operation types declared across a schema extension", func() {
		schema := buildSchema(`
			schema {
				query: Query
			}

			extend schema {
				mutation: Mutation
			}

			type Query {
				hello: String
			}

			type Mutation {
				setHello(value: String): String
			}
		`)

		Expect(schema.Query().Name()).Should(Equal("Query"))
		Expect(schema.Mutation().Name()).Should(Equal("Mutation"))
	})

	It("requires a query type", func() {
		_, err := sdlbuilder.BuildSchema(graphql.NewSource(`
			type Mutation {
				setHello(value: String): String
			}
		`))
		Expect(err).Should(HaveOccurred())
		Expect(err.Error()).Should(ContainSubstring("Must provide a query type"))
	})

	It("rejects a root type naming an object the document never defines", func() {
		_, err := sdlbuilder.BuildSchema(graphql.NewSource(`
			schema {
				query: Ghost
			}
		`))
		Expect(err).Should(HaveOccurred())
		Expect(err.Error()).Should(ContainSubstring("is not defined"))
	})

	It("rejects a root type that resolves to a non-object type", func() {
		_, err := sdlbuilder.BuildSchema(graphql.NewSource(`
			schema {
				query: Color
			}

			enum Color {
				RED
			}
		`))
		Expect(err).Should(HaveOccurred())
		Expect(err.Error()).Should(ContainSubstring("must be an object type"))
	})

	It("rejects more than one schema definition", func() {
		_, err := sdlbuilder.BuildSchema(graphql.NewSource(`
			schema {
				query: Query
			}

			schema {
				query: Query
			}

			type Query {
				hello: String
			}
		`))
		Expect(err).Should(HaveOccurred())
		Expect(err.Error()).Should(ContainSubstring("only one schema definition"))
	})

	It("builds a directive definition with arguments", func() {
		schema := buildSchema(`
			directive @length(max: Int!) on FIELD_DEFINITION

			type Query {
				name: String @length(max: 10)
			}
		`)

		var length graphql.Directive
		for _, d := range schema.Directives() {
			if d.Name() == "length" {
				length = d
			}
		}
		Expect(length).ShouldNot(BeNil())
		Expect(length.Locations()).Should(ContainElement(graphql.DirectiveLocationFieldDefinition))
	})

	It("still includes the standard directives alongside custom ones", func() {
		schema := buildSchema(`
			type Query {
				hello: String
			}
		`)

		names := make(map[string]bool)
		for _, d := range schema.Directives() {
			names[d.Name()] = true
		}
		Expect(names).Should(HaveKey("skip"))
		Expect(names).Should(HaveKey("include"))
		Expect(names).Should(HaveKey("deprecated"))
	})

	It("builds from an already-parsed document via BuildSchemaFromDocument", func() {
		doc, err := parser.ParseSchema(graphql.NewSource(`
			type Query {
				hello: String
			}
		`), parser.ParseOptions{})
		Expect(err).ShouldNot(HaveOccurred())

		schema, err := sdlbuilder.BuildSchemaFromDocument(doc)
		Expect(err).ShouldNot(HaveOccurred())
		Expect(schema.Query().Name()).Should(Equal("Query"))
	})

	It("rejects malformed SDL text with a parse error", func() {
		_, err := sdlbuilder.BuildSchema(graphql.NewSource(`type Query {`))
		Expect(err).Should(HaveOccurred())
	})

	It("lists every declared type in the schema's type map", func() {
		schema := buildSchema(`
			type Query {
				a: TypeA
				b: TypeB
			}

			type TypeB {
				value: String
			}

			type TypeA {
				value: String
			}
		`)

		var names []string
		iter := schema.TypeMap().KeyIterator()
		for {
			name, err := iter.Next()
			if err != nil {
				break
			}
			names = append(names, name.(string))
		}
		Expect(names).Should(ContainElement("TypeA"))
		Expect(names).Should(ContainElement("TypeB"))
		Expect(names).Should(ContainElement("Query"))
	})
})
