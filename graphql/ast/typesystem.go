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

package ast

import "github.com/nimbusgraph/gql/graphql/token"

//===----------------------------------------------------------------------------------------====//
// Type System Definitions and Extensions (SDL)
//===----------------------------------------------------------------------------------------====//
// Beyond the executable grammar, a GraphQL document may also describe a type system: the schema
// itself, the types it exposes, and the directives it supports. These nodes are only produced when
// the parser is asked to accept the SDL grammar.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Type-System

// TypeSystemDefinition is a Definition describing some part of a GraphQL type system: the schema,
// a type, or a directive.
type TypeSystemDefinition interface {
	Definition

	// typeSystemDefinitionNode marks a node as a TypeSystemDefinition.
	typeSystemDefinitionNode()
}

// TypeSystemDefinitionBase is embedded by every TypeSystemDefinition implementation.
type TypeSystemDefinitionBase struct {
	DefinitionBase
}

func (TypeSystemDefinitionBase) typeSystemDefinitionNode() {}

// Description optionally documents a type-system definition with a leading string literal.
type Description struct {
	// StringValue is nil when no description was given.
	StringValue *StringValue
}

// HasDescription reports whether a description was given.
func (d Description) HasDescription() bool {
	return d.StringValue != nil
}

// Value returns the description text, or "" if absent.
func (d Description) Value() string {
	if d.StringValue == nil {
		return ""
	}
	return d.StringValue.Value()
}

// SchemaDefinition declares the operation root types and directives of a schema.
//
// Reference: https://facebook.github.io/graphql/June2018/#SchemaDefinition
type SchemaDefinition struct {
	TypeSystemDefinitionBase

	// SchemaToken is the "schema" keyword token.
	SchemaToken *token.Token

	// OperationTypes declares each root operation type.
	OperationTypes []*OperationTypeDefinition

	// RightBrace closes the definition.
	RightBrace *token.Token
}

var _ TypeSystemDefinition = (*SchemaDefinition)(nil)

// TokenRange implements Node.
func (def *SchemaDefinition) TokenRange() token.Range {
	return token.Range{First: def.SchemaToken, Last: def.RightBrace}
}

// OperationTypeDefinition binds an operation type (query/mutation/subscription) to a named object
// type within a SchemaDefinition or SchemaExtension.
//
// Reference: https://facebook.github.io/graphql/June2018/#OperationTypeDefinition
type OperationTypeDefinition struct {
	// OperationToken is the "query"/"mutation"/"subscription" keyword token.
	OperationToken *token.Token

	// Type names the object type serving this operation.
	Type NamedType
}

var _ Node = (*OperationTypeDefinition)(nil)

// Operation returns the operation type this definition binds.
func (def *OperationTypeDefinition) Operation() OperationType {
	return OperationType(def.OperationToken.Value)
}

// TokenRange implements Node.
func (def *OperationTypeDefinition) TokenRange() token.Range {
	return token.Range{First: def.OperationToken, Last: def.Type.TokenRange().Last}
}

// TypeDefinition is a TypeSystemDefinition introducing a named type: scalar, object, interface,
// union, enum, or input object.
type TypeDefinition interface {
	TypeSystemDefinition

	// GetName returns the type's name.
	GetName() Name

	// GetDescription returns the type's description, if any.
	GetDescription() Description

	typeDefinitionNode()
}

var (
	_ TypeDefinition = (*ScalarTypeDefinition)(nil)
	_ TypeDefinition = (*ObjectTypeDefinition)(nil)
	_ TypeDefinition = (*InterfaceTypeDefinition)(nil)
	_ TypeDefinition = (*UnionTypeDefinition)(nil)
	_ TypeDefinition = (*EnumTypeDefinition)(nil)
	_ TypeDefinition = (*InputObjectTypeDefinition)(nil)
)

// TypeDefinitionBase is embedded by every TypeDefinition implementation.
type TypeDefinitionBase struct {
	TypeSystemDefinitionBase
	Description Description
	Name        Name
}

// GetName implements TypeDefinition.
func (base TypeDefinitionBase) GetName() Name { return base.Name }

// GetDescription implements TypeDefinition.
func (base TypeDefinitionBase) GetDescription() Description { return base.Description }

func (TypeDefinitionBase) typeDefinitionNode() {}

// ScalarTypeDefinition introduces a custom scalar type.
//
// Reference: https://facebook.github.io/graphql/June2018/#ScalarTypeDefinition
type ScalarTypeDefinition struct {
	TypeDefinitionBase
	// KeywordToken is the "scalar" keyword token.
	KeywordToken *token.Token
}

// TokenRange implements Node.
func (def *ScalarTypeDefinition) TokenRange() token.Range {
	first := def.KeywordToken
	if def.Description.HasDescription() {
		first = def.Description.StringValue.Token
	}
	last := def.Name.Token
	if len(def.Directives) > 0 {
		last = def.Directives.LastToken()
	}
	return token.Range{First: first, Last: last}
}

// FieldDefinition declares a single field of an ObjectTypeDefinition or InterfaceTypeDefinition.
//
// Reference: https://facebook.github.io/graphql/June2018/#FieldDefinition
type FieldDefinition struct {
	Description Description
	Name        Name
	Arguments   []*InputValueDefinition
	Type        Type
	Directives  Directives
}

var _ Node = (*FieldDefinition)(nil)

// TokenRange implements Node.
func (def *FieldDefinition) TokenRange() token.Range {
	first := def.Name.Token
	if def.Description.HasDescription() {
		first = def.Description.StringValue.Token
	}
	last := def.Type.TokenRange().Last
	if len(def.Directives) > 0 {
		last = def.Directives.LastToken()
	}
	return token.Range{First: first, Last: last}
}

// InputValueDefinition declares a single input value: a field argument, a directive argument, or
// a field of an InputObjectTypeDefinition.
//
// Reference: https://facebook.github.io/graphql/June2018/#InputValueDefinition
type InputValueDefinition struct {
	Description  Description
	Name         Name
	Type         Type
	DefaultValue Value
	Directives   Directives
}

var _ Node = (*InputValueDefinition)(nil)

// TokenRange implements Node.
func (def *InputValueDefinition) TokenRange() token.Range {
	first := def.Name.Token
	if def.Description.HasDescription() {
		first = def.Description.StringValue.Token
	}
	var last *token.Token
	if len(def.Directives) > 0 {
		last = def.Directives.LastToken()
	} else if def.DefaultValue != nil {
		last = def.DefaultValue.TokenRange().Last
	} else {
		last = def.Type.TokenRange().Last
	}
	return token.Range{First: first, Last: last}
}

// ObjectTypeDefinition introduces an object type: a named collection of fields, optionally
// implementing one or more interfaces.
//
// Reference: https://facebook.github.io/graphql/June2018/#ObjectTypeDefinition
type ObjectTypeDefinition struct {
	TypeDefinitionBase
	KeywordToken *token.Token
	Interfaces   []NamedType
	Fields       []*FieldDefinition
	RightBrace   *token.Token // nil if no fields were declared
}

// TokenRange implements Node.
func (def *ObjectTypeDefinition) TokenRange() token.Range {
	first := def.KeywordToken
	if def.Description.HasDescription() {
		first = def.Description.StringValue.Token
	}
	last := def.Name.Token
	switch {
	case def.RightBrace != nil:
		last = def.RightBrace
	case len(def.Directives) > 0:
		last = def.Directives.LastToken()
	case len(def.Interfaces) > 0:
		last = def.Interfaces[len(def.Interfaces)-1].TokenRange().Last
	}
	return token.Range{First: first, Last: last}
}

// InterfaceTypeDefinition introduces an interface type: a named collection of fields that object
// types may implement.
//
// Reference: https://facebook.github.io/graphql/June2018/#InterfaceTypeDefinition
type InterfaceTypeDefinition struct {
	TypeDefinitionBase
	KeywordToken *token.Token
	Fields       []*FieldDefinition
	RightBrace   *token.Token
}

// TokenRange implements Node.
func (def *InterfaceTypeDefinition) TokenRange() token.Range {
	first := def.KeywordToken
	if def.Description.HasDescription() {
		first = def.Description.StringValue.Token
	}
	last := def.Name.Token
	switch {
	case def.RightBrace != nil:
		last = def.RightBrace
	case len(def.Directives) > 0:
		last = def.Directives.LastToken()
	}
	return token.Range{First: first, Last: last}
}

// UnionTypeDefinition introduces a union of object types.
//
// Reference: https://facebook.github.io/graphql/June2018/#UnionTypeDefinition
type UnionTypeDefinition struct {
	TypeDefinitionBase
	KeywordToken *token.Token
	Types        []NamedType
}

// TokenRange implements Node.
func (def *UnionTypeDefinition) TokenRange() token.Range {
	first := def.KeywordToken
	if def.Description.HasDescription() {
		first = def.Description.StringValue.Token
	}
	last := def.Name.Token
	switch {
	case len(def.Types) > 0:
		last = def.Types[len(def.Types)-1].TokenRange().Last
	case len(def.Directives) > 0:
		last = def.Directives.LastToken()
	}
	return token.Range{First: first, Last: last}
}

// EnumValueDefinition declares a single member of an EnumTypeDefinition.
//
// Reference: https://facebook.github.io/graphql/June2018/#EnumValueDefinition
type EnumValueDefinition struct {
	Description Description
	Name        Name
	Directives  Directives
}

var _ Node = (*EnumValueDefinition)(nil)

// TokenRange implements Node.
func (def *EnumValueDefinition) TokenRange() token.Range {
	first := def.Name.Token
	if def.Description.HasDescription() {
		first = def.Description.StringValue.Token
	}
	last := def.Name.Token
	if len(def.Directives) > 0 {
		last = def.Directives.LastToken()
	}
	return token.Range{First: first, Last: last}
}

// EnumTypeDefinition introduces an enumeration type.
//
// Reference: https://facebook.github.io/graphql/June2018/#EnumTypeDefinition
type EnumTypeDefinition struct {
	TypeDefinitionBase
	KeywordToken *token.Token
	Values       []*EnumValueDefinition
	RightBrace   *token.Token
}

// TokenRange implements Node.
func (def *EnumTypeDefinition) TokenRange() token.Range {
	first := def.KeywordToken
	if def.Description.HasDescription() {
		first = def.Description.StringValue.Token
	}
	last := def.Name.Token
	switch {
	case def.RightBrace != nil:
		last = def.RightBrace
	case len(def.Directives) > 0:
		last = def.Directives.LastToken()
	}
	return token.Range{First: first, Last: last}
}

// InputObjectTypeDefinition introduces an input object type.
//
// Reference: https://facebook.github.io/graphql/June2018/#InputObjectTypeDefinition
type InputObjectTypeDefinition struct {
	TypeDefinitionBase
	KeywordToken *token.Token
	Fields       []*InputValueDefinition
	RightBrace   *token.Token
}

// TokenRange implements Node.
func (def *InputObjectTypeDefinition) TokenRange() token.Range {
	first := def.KeywordToken
	if def.Description.HasDescription() {
		first = def.Description.StringValue.Token
	}
	last := def.Name.Token
	switch {
	case def.RightBrace != nil:
		last = def.RightBrace
	case len(def.Directives) > 0:
		last = def.Directives.LastToken()
	}
	return token.Range{First: first, Last: last}
}

// DirectiveDefinition introduces a directive and the locations where it may be applied.
//
// Reference: https://facebook.github.io/graphql/June2018/#DirectiveDefinition
type DirectiveDefinition struct {
	Description  Description
	KeywordToken *token.Token // "directive" keyword
	Name         Name
	Arguments    []*InputValueDefinition
	Repeatable   bool
	Locations    []Name
}

var _ TypeSystemDefinition = (*DirectiveDefinition)(nil)

// TokenRange implements Node.
func (def *DirectiveDefinition) TokenRange() token.Range {
	first := def.KeywordToken
	if def.Description.HasDescription() {
		first = def.Description.StringValue.Token
	}
	last := def.Locations[len(def.Locations)-1].Token
	return token.Range{First: first, Last: last}
}

// GetDirectives implements Definition; a directive definition carries no directives of its own.
func (def *DirectiveDefinition) GetDirectives() Directives { return nil }

func (*DirectiveDefinition) definitionNode()           {}
func (*DirectiveDefinition) typeSystemDefinitionNode() {}

//===----------------------------------------------------------------------------------------====//
// Type System Extensions
//===----------------------------------------------------------------------------------------====//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Type-System-Extensions

// TypeSystemExtension is a TypeSystemDefinition that extends a previously declared schema or type
// rather than introducing a new one.
type TypeSystemExtension interface {
	TypeSystemDefinition
	typeSystemExtensionNode()
}

// TypeSystemExtensionBase is embedded by every TypeSystemExtension implementation.
type TypeSystemExtensionBase struct {
	TypeSystemDefinitionBase
}

func (TypeSystemExtensionBase) typeSystemExtensionNode() {}

// SchemaExtension adds directives or additional operation type bindings to a schema.
//
// Reference: https://facebook.github.io/graphql/June2018/#SchemaExtension
type SchemaExtension struct {
	TypeSystemExtensionBase
	ExtendToken    *token.Token // "extend" keyword
	OperationTypes []*OperationTypeDefinition
	RightBrace     *token.Token // nil if no operation types were declared
}

var _ TypeSystemExtension = (*SchemaExtension)(nil)

// TokenRange implements Node.
func (ext *SchemaExtension) TokenRange() token.Range {
	last := ext.ExtendToken
	switch {
	case ext.RightBrace != nil:
		last = ext.RightBrace
	case len(ext.Directives) > 0:
		last = ext.Directives.LastToken()
	}
	return token.Range{First: ext.ExtendToken, Last: last}
}

// TypeExtension is a TypeSystemExtension that extends a previously declared named type.
type TypeExtension interface {
	TypeSystemExtension
	GetName() Name
	typeExtensionNode()
}

// TypeExtensionBase is embedded by every TypeExtension implementation.
type TypeExtensionBase struct {
	TypeSystemExtensionBase
	ExtendToken *token.Token
	Name        Name
}

// GetName implements TypeExtension.
func (base TypeExtensionBase) GetName() Name { return base.Name }

func (TypeExtensionBase) typeExtensionNode() {}

// ScalarTypeExtension adds directives to a previously declared scalar type.
type ScalarTypeExtension struct {
	TypeExtensionBase
}

var _ TypeExtension = (*ScalarTypeExtension)(nil)

// TokenRange implements Node.
func (ext *ScalarTypeExtension) TokenRange() token.Range {
	return token.Range{First: ext.ExtendToken, Last: ext.Directives.LastToken()}
}

// ObjectTypeExtension adds interfaces, directives, or fields to a previously declared object type.
type ObjectTypeExtension struct {
	TypeExtensionBase
	Interfaces []NamedType
	Fields     []*FieldDefinition
	RightBrace *token.Token
}

var _ TypeExtension = (*ObjectTypeExtension)(nil)

// TokenRange implements Node.
func (ext *ObjectTypeExtension) TokenRange() token.Range {
	last := ext.Name.Token
	switch {
	case ext.RightBrace != nil:
		last = ext.RightBrace
	case len(ext.Directives) > 0:
		last = ext.Directives.LastToken()
	case len(ext.Interfaces) > 0:
		last = ext.Interfaces[len(ext.Interfaces)-1].TokenRange().Last
	}
	return token.Range{First: ext.ExtendToken, Last: last}
}

// InterfaceTypeExtension adds directives or fields to a previously declared interface type.
type InterfaceTypeExtension struct {
	TypeExtensionBase
	Fields     []*FieldDefinition
	RightBrace *token.Token
}

var _ TypeExtension = (*InterfaceTypeExtension)(nil)

// TokenRange implements Node.
func (ext *InterfaceTypeExtension) TokenRange() token.Range {
	last := ext.Name.Token
	switch {
	case ext.RightBrace != nil:
		last = ext.RightBrace
	case len(ext.Directives) > 0:
		last = ext.Directives.LastToken()
	}
	return token.Range{First: ext.ExtendToken, Last: last}
}

// UnionTypeExtension adds member types or directives to a previously declared union type.
type UnionTypeExtension struct {
	TypeExtensionBase
	Types []NamedType
}

var _ TypeExtension = (*UnionTypeExtension)(nil)

// TokenRange implements Node.
func (ext *UnionTypeExtension) TokenRange() token.Range {
	last := ext.Name.Token
	switch {
	case len(ext.Types) > 0:
		last = ext.Types[len(ext.Types)-1].TokenRange().Last
	case len(ext.Directives) > 0:
		last = ext.Directives.LastToken()
	}
	return token.Range{First: ext.ExtendToken, Last: last}
}

// EnumTypeExtension adds values or directives to a previously declared enum type.
type EnumTypeExtension struct {
	TypeExtensionBase
	Values     []*EnumValueDefinition
	RightBrace *token.Token
}

var _ TypeExtension = (*EnumTypeExtension)(nil)

// TokenRange implements Node.
func (ext *EnumTypeExtension) TokenRange() token.Range {
	last := ext.Name.Token
	switch {
	case ext.RightBrace != nil:
		last = ext.RightBrace
	case len(ext.Directives) > 0:
		last = ext.Directives.LastToken()
	}
	return token.Range{First: ext.ExtendToken, Last: last}
}

// InputObjectTypeExtension adds fields or directives to a previously declared input object type.
type InputObjectTypeExtension struct {
	TypeExtensionBase
	Fields     []*InputValueDefinition
	RightBrace *token.Token
}

var _ TypeExtension = (*InputObjectTypeExtension)(nil)

// TokenRange implements Node.
func (ext *InputObjectTypeExtension) TokenRange() token.Range {
	last := ext.Name.Token
	switch {
	case ext.RightBrace != nil:
		last = ext.RightBrace
	case len(ext.Directives) > 0:
		last = ext.Directives.LastToken()
	}
	return token.Range{First: ext.ExtendToken, Last: last}
}
