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

package parser

import (
	"github.com/nimbusgraph/gql/graphql/ast"
	"github.com/nimbusgraph/gql/graphql/token"
)

// This file implements the SDL (type-system) grammar: schema/scalar/type/interface/union/enum/input
// definitions, directive definitions, and their "extend" forms. Parsing any of this requires
// ParseOptions.AllowTypeSystemDefinitions; see parseDefinition in parser.go for the entry point.

//	Description ::
//		StringValue
func (p *parser) parseDescription() (ast.Description, error) {
	tok := p.peek()
	if tok.Kind != token.KindString && tok.Kind != token.KindBlockString {
		return ast.Description{}, nil
	}
	if _, err := p.lexer.Advance(); err != nil {
		return ast.Description{}, err
	}
	value := ast.StringValue{Token: tok}
	return ast.Description{StringValue: &value}, nil
}

// parseTypeSystemDefinitionWithDescription parses a TypeSystemDefinition, consuming its optional
// leading description string first.
func (p *parser) parseTypeSystemDefinitionWithDescription() (ast.Definition, error) {
	description, err := p.parseDescription()
	if err != nil {
		return nil, err
	}

	tok := p.peek()
	if tok.Kind != token.KindName {
		return nil, p.unexpected()
	}

	switch tok.Value {
	case "schema":
		if description.HasDescription() {
			return nil, p.unexpected()
		}
		return p.parseSchemaDefinition()
	case "scalar":
		return p.parseScalarTypeDefinition(description)
	case "type":
		return p.parseObjectTypeDefinition(description)
	case "interface":
		return p.parseInterfaceTypeDefinition(description)
	case "union":
		return p.parseUnionTypeDefinition(description)
	case "enum":
		return p.parseEnumTypeDefinition(description)
	case "input":
		return p.parseInputObjectTypeDefinition(description)
	case "directive":
		return p.parseDirectiveDefinition(description)
	}

	return nil, p.unexpected()
}

//	SchemaDefinition ::
//		schema Directives[Const]? { OperationTypeDefinition+ }
func (p *parser) parseSchemaDefinition() (*ast.SchemaDefinition, error) {
	schemaToken := p.peek()
	if _, err := p.lexer.Advance(); err != nil {
		return nil, err
	}

	var (
		directives ast.Directives
		err        error
	)
	if p.peek().Kind == token.KindAt {
		if directives, err = p.parseDirectives(true); err != nil {
			return nil, err
		}
	}

	operationTypes, rightBrace, err := p.parseOperationTypeDefinitions()
	if err != nil {
		return nil, err
	}

	return &ast.SchemaDefinition{
		TypeSystemDefinitionBase: ast.TypeSystemDefinitionBase{
			DefinitionBase: ast.DefinitionBase{Directives: directives},
		},
		SchemaToken:    schemaToken,
		OperationTypes: operationTypes,
		RightBrace:     rightBrace,
	}, nil
}

//	OperationTypesDefinition ::
//		{ OperationTypeDefinition+ }
func (p *parser) parseOperationTypeDefinitions() ([]*ast.OperationTypeDefinition, *token.Token, error) {
	if _, err := p.expect(token.KindLeftBrace); err != nil {
		return nil, nil, err
	}

	var operationTypes []*ast.OperationTypeDefinition
	for {
		operationType, err := p.parseOperationTypeDefinition()
		if err != nil {
			return nil, nil, err
		}
		operationTypes = append(operationTypes, operationType)

		if p.peek().Kind == token.KindRightBrace {
			break
		}
	}

	rightBrace, err := p.expect(token.KindRightBrace)
	if err != nil {
		return nil, nil, err
	}
	return operationTypes, rightBrace, nil
}

//	OperationTypeDefinition ::
//		OperationType : NamedType
func (p *parser) parseOperationTypeDefinition() (*ast.OperationTypeDefinition, error) {
	tok := p.peek()
	if tok.Kind != token.KindName {
		return nil, p.unexpected()
	}
	switch tok.Value {
	case "query", "mutation", "subscription":
	default:
		return nil, p.unexpected()
	}
	if _, err := p.lexer.Advance(); err != nil {
		return nil, err
	}

	if _, err := p.expect(token.KindColon); err != nil {
		return nil, err
	}

	namedType, err := p.parseNamedType()
	if err != nil {
		return nil, err
	}

	return &ast.OperationTypeDefinition{
		OperationToken: tok,
		Type:           namedType,
	}, nil
}

//	ScalarTypeDefinition ::
//		Description? scalar Name Directives[Const]?
func (p *parser) parseScalarTypeDefinition(description ast.Description) (*ast.ScalarTypeDefinition, error) {
	keyword := p.peek()
	if _, err := p.lexer.Advance(); err != nil {
		return nil, err
	}

	name, err := p.parseName()
	if err != nil {
		return nil, err
	}

	var directives ast.Directives
	if p.peek().Kind == token.KindAt {
		if directives, err = p.parseDirectives(true); err != nil {
			return nil, err
		}
	}

	return &ast.ScalarTypeDefinition{
		TypeDefinitionBase: ast.TypeDefinitionBase{
			TypeSystemDefinitionBase: ast.TypeSystemDefinitionBase{
				DefinitionBase: ast.DefinitionBase{Directives: directives},
			},
			Description: description,
			Name:        name,
		},
		KeywordToken: keyword,
	}, nil
}

//	ObjectTypeDefinition ::
//		Description? type Name ImplementsInterfaces? Directives[Const]? FieldsDefinition?
func (p *parser) parseObjectTypeDefinition(description ast.Description) (*ast.ObjectTypeDefinition, error) {
	keyword := p.peek()
	if _, err := p.lexer.Advance(); err != nil {
		return nil, err
	}

	name, err := p.parseName()
	if err != nil {
		return nil, err
	}

	interfaces, err := p.parseImplementsInterfaces()
	if err != nil {
		return nil, err
	}

	var directives ast.Directives
	if p.peek().Kind == token.KindAt {
		if directives, err = p.parseDirectives(true); err != nil {
			return nil, err
		}
	}

	fields, rightBrace, err := p.parseFieldsDefinition()
	if err != nil {
		return nil, err
	}

	return &ast.ObjectTypeDefinition{
		TypeDefinitionBase: ast.TypeDefinitionBase{
			TypeSystemDefinitionBase: ast.TypeSystemDefinitionBase{
				DefinitionBase: ast.DefinitionBase{Directives: directives},
			},
			Description: description,
			Name:        name,
		},
		KeywordToken: keyword,
		Interfaces:   interfaces,
		Fields:       fields,
		RightBrace:   rightBrace,
	}, nil
}

//	ImplementsInterfaces ::
//		implements &? NamedType
//		ImplementsInterfaces & NamedType
func (p *parser) parseImplementsInterfaces() ([]ast.NamedType, error) {
	hasImplements, err := p.skipKeyword("implements")
	if err != nil {
		return nil, err
	}
	if !hasImplements {
		return nil, nil
	}

	// Tolerate a leading "&" before the first interface.
	if _, err := p.skip(token.KindAmp); err != nil {
		return nil, err
	}

	var interfaces []ast.NamedType
	for {
		named, err := p.parseNamedType()
		if err != nil {
			return nil, err
		}
		interfaces = append(interfaces, named)

		hasAmp, err := p.skip(token.KindAmp)
		if err != nil {
			return nil, err
		}
		if !hasAmp {
			break
		}
	}
	return interfaces, nil
}

//	FieldsDefinition ::
//		{ FieldDefinition+ }
func (p *parser) parseFieldsDefinition() ([]*ast.FieldDefinition, *token.Token, error) {
	if p.peek().Kind != token.KindLeftBrace {
		return nil, nil, nil
	}
	if _, err := p.lexer.Advance(); err != nil {
		return nil, nil, err
	}

	var fields []*ast.FieldDefinition
	for {
		field, err := p.parseFieldDefinition()
		if err != nil {
			return nil, nil, err
		}
		fields = append(fields, field)

		if p.peek().Kind == token.KindRightBrace {
			break
		}
	}

	rightBrace, err := p.expect(token.KindRightBrace)
	if err != nil {
		return nil, nil, err
	}
	return fields, rightBrace, nil
}

//	FieldDefinition ::
//		Description? Name ArgumentsDefinition? : Type Directives[Const]?
func (p *parser) parseFieldDefinition() (*ast.FieldDefinition, error) {
	description, err := p.parseDescription()
	if err != nil {
		return nil, err
	}

	name, err := p.parseName()
	if err != nil {
		return nil, err
	}

	arguments, err := p.parseArgumentsDefinition()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(token.KindColon); err != nil {
		return nil, err
	}

	fieldType, err := p.parseType()
	if err != nil {
		return nil, err
	}

	var directives ast.Directives
	if p.peek().Kind == token.KindAt {
		if directives, err = p.parseDirectives(true); err != nil {
			return nil, err
		}
	}

	return &ast.FieldDefinition{
		Description: description,
		Name:        name,
		Arguments:   arguments,
		Type:        fieldType,
		Directives:  directives,
	}, nil
}

//	ArgumentsDefinition ::
//		( InputValueDefinition+ )
func (p *parser) parseArgumentsDefinition() ([]*ast.InputValueDefinition, error) {
	if p.peek().Kind != token.KindLeftParen {
		return nil, nil
	}
	if _, err := p.lexer.Advance(); err != nil {
		return nil, err
	}

	var values []*ast.InputValueDefinition
	for {
		value, err := p.parseInputValueDefinition()
		if err != nil {
			return nil, err
		}
		values = append(values, value)

		if p.peek().Kind == token.KindRightParen {
			break
		}
	}

	if _, err := p.expect(token.KindRightParen); err != nil {
		return nil, err
	}
	return values, nil
}

//	InputValueDefinition ::
//		Description? Name : Type DefaultValue? Directives[Const]?
func (p *parser) parseInputValueDefinition() (*ast.InputValueDefinition, error) {
	description, err := p.parseDescription()
	if err != nil {
		return nil, err
	}

	name, err := p.parseName()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(token.KindColon); err != nil {
		return nil, err
	}

	valueType, err := p.parseType()
	if err != nil {
		return nil, err
	}

	var defaultValue ast.Value
	if p.peek().Kind == token.KindEquals {
		if defaultValue, err = p.parseDefaultValue(); err != nil {
			return nil, err
		}
	}

	var directives ast.Directives
	if p.peek().Kind == token.KindAt {
		if directives, err = p.parseDirectives(true); err != nil {
			return nil, err
		}
	}

	return &ast.InputValueDefinition{
		Description:  description,
		Name:         name,
		Type:         valueType,
		DefaultValue: defaultValue,
		Directives:   directives,
	}, nil
}

//	InterfaceTypeDefinition ::
//		Description? interface Name Directives[Const]? FieldsDefinition?
func (p *parser) parseInterfaceTypeDefinition(description ast.Description) (*ast.InterfaceTypeDefinition, error) {
	keyword := p.peek()
	if _, err := p.lexer.Advance(); err != nil {
		return nil, err
	}

	name, err := p.parseName()
	if err != nil {
		return nil, err
	}

	var directives ast.Directives
	if p.peek().Kind == token.KindAt {
		if directives, err = p.parseDirectives(true); err != nil {
			return nil, err
		}
	}

	fields, rightBrace, err := p.parseFieldsDefinition()
	if err != nil {
		return nil, err
	}

	return &ast.InterfaceTypeDefinition{
		TypeDefinitionBase: ast.TypeDefinitionBase{
			TypeSystemDefinitionBase: ast.TypeSystemDefinitionBase{
				DefinitionBase: ast.DefinitionBase{Directives: directives},
			},
			Description: description,
			Name:        name,
		},
		KeywordToken: keyword,
		Fields:       fields,
		RightBrace:   rightBrace,
	}, nil
}

//	UnionTypeDefinition ::
//		Description? union Name Directives[Const]? UnionMemberTypes?
func (p *parser) parseUnionTypeDefinition(description ast.Description) (*ast.UnionTypeDefinition, error) {
	keyword := p.peek()
	if _, err := p.lexer.Advance(); err != nil {
		return nil, err
	}

	name, err := p.parseName()
	if err != nil {
		return nil, err
	}

	var directives ast.Directives
	if p.peek().Kind == token.KindAt {
		if directives, err = p.parseDirectives(true); err != nil {
			return nil, err
		}
	}

	types, err := p.parseUnionMemberTypes()
	if err != nil {
		return nil, err
	}

	return &ast.UnionTypeDefinition{
		TypeDefinitionBase: ast.TypeDefinitionBase{
			TypeSystemDefinitionBase: ast.TypeSystemDefinitionBase{
				DefinitionBase: ast.DefinitionBase{Directives: directives},
			},
			Description: description,
			Name:        name,
		},
		KeywordToken: keyword,
		Types:        types,
	}, nil
}

//	UnionMemberTypes ::
//		= |? NamedType
//		UnionMemberTypes | NamedType
func (p *parser) parseUnionMemberTypes() ([]ast.NamedType, error) {
	hasEquals, err := p.skip(token.KindEquals)
	if err != nil {
		return nil, err
	}
	if !hasEquals {
		return nil, nil
	}

	if _, err := p.skip(token.KindPipe); err != nil {
		return nil, err
	}

	var types []ast.NamedType
	for {
		named, err := p.parseNamedType()
		if err != nil {
			return nil, err
		}
		types = append(types, named)

		hasPipe, err := p.skip(token.KindPipe)
		if err != nil {
			return nil, err
		}
		if !hasPipe {
			break
		}
	}
	return types, nil
}

//	EnumTypeDefinition ::
//		Description? enum Name Directives[Const]? EnumValuesDefinition?
func (p *parser) parseEnumTypeDefinition(description ast.Description) (*ast.EnumTypeDefinition, error) {
	keyword := p.peek()
	if _, err := p.lexer.Advance(); err != nil {
		return nil, err
	}

	name, err := p.parseName()
	if err != nil {
		return nil, err
	}

	var directives ast.Directives
	if p.peek().Kind == token.KindAt {
		if directives, err = p.parseDirectives(true); err != nil {
			return nil, err
		}
	}

	values, rightBrace, err := p.parseEnumValuesDefinition()
	if err != nil {
		return nil, err
	}

	return &ast.EnumTypeDefinition{
		TypeDefinitionBase: ast.TypeDefinitionBase{
			TypeSystemDefinitionBase: ast.TypeSystemDefinitionBase{
				DefinitionBase: ast.DefinitionBase{Directives: directives},
			},
			Description: description,
			Name:        name,
		},
		KeywordToken: keyword,
		Values:       values,
		RightBrace:   rightBrace,
	}, nil
}

//	EnumValuesDefinition ::
//		{ EnumValueDefinition+ }
func (p *parser) parseEnumValuesDefinition() ([]*ast.EnumValueDefinition, *token.Token, error) {
	if p.peek().Kind != token.KindLeftBrace {
		return nil, nil, nil
	}
	if _, err := p.lexer.Advance(); err != nil {
		return nil, nil, err
	}

	var values []*ast.EnumValueDefinition
	for {
		value, err := p.parseEnumValueDefinition()
		if err != nil {
			return nil, nil, err
		}
		values = append(values, value)

		if p.peek().Kind == token.KindRightBrace {
			break
		}
	}

	rightBrace, err := p.expect(token.KindRightBrace)
	if err != nil {
		return nil, nil, err
	}
	return values, rightBrace, nil
}

//	EnumValueDefinition ::
//		Description? EnumValue Directives[Const]?
//
//	EnumValue ::
//		Name but not true, false, or null
func (p *parser) parseEnumValueDefinition() (*ast.EnumValueDefinition, error) {
	description, err := p.parseDescription()
	if err != nil {
		return nil, err
	}

	if tok := p.peek(); tok.Kind == token.KindName {
		switch tok.Value {
		case "true", "false", "null":
			return nil, p.unexpected()
		}
	}

	name, err := p.parseName()
	if err != nil {
		return nil, err
	}

	var directives ast.Directives
	if p.peek().Kind == token.KindAt {
		if directives, err = p.parseDirectives(true); err != nil {
			return nil, err
		}
	}

	return &ast.EnumValueDefinition{
		Description: description,
		Name:        name,
		Directives:  directives,
	}, nil
}

//	InputObjectTypeDefinition ::
//		Description? input Name Directives[Const]? InputFieldsDefinition?
func (p *parser) parseInputObjectTypeDefinition(description ast.Description) (*ast.InputObjectTypeDefinition, error) {
	keyword := p.peek()
	if _, err := p.lexer.Advance(); err != nil {
		return nil, err
	}

	name, err := p.parseName()
	if err != nil {
		return nil, err
	}

	var directives ast.Directives
	if p.peek().Kind == token.KindAt {
		if directives, err = p.parseDirectives(true); err != nil {
			return nil, err
		}
	}

	fields, rightBrace, err := p.parseInputFieldsDefinition()
	if err != nil {
		return nil, err
	}

	return &ast.InputObjectTypeDefinition{
		TypeDefinitionBase: ast.TypeDefinitionBase{
			TypeSystemDefinitionBase: ast.TypeSystemDefinitionBase{
				DefinitionBase: ast.DefinitionBase{Directives: directives},
			},
			Description: description,
			Name:        name,
		},
		KeywordToken: keyword,
		Fields:       fields,
		RightBrace:   rightBrace,
	}, nil
}

//	InputFieldsDefinition ::
//		{ InputValueDefinition+ }
func (p *parser) parseInputFieldsDefinition() ([]*ast.InputValueDefinition, *token.Token, error) {
	if p.peek().Kind != token.KindLeftBrace {
		return nil, nil, nil
	}
	if _, err := p.lexer.Advance(); err != nil {
		return nil, nil, err
	}

	var fields []*ast.InputValueDefinition
	for {
		field, err := p.parseInputValueDefinition()
		if err != nil {
			return nil, nil, err
		}
		fields = append(fields, field)

		if p.peek().Kind == token.KindRightBrace {
			break
		}
	}

	rightBrace, err := p.expect(token.KindRightBrace)
	if err != nil {
		return nil, nil, err
	}
	return fields, rightBrace, nil
}

//	DirectiveDefinition ::
//		Description? directive @ Name ArgumentsDefinition? repeatable? on DirectiveLocations
//
// "repeatable" is not part of the June 2018 grammar; it was added by a later edition of the spec
// to let a directive be applied more than once per location. Accepted here unconditionally.
func (p *parser) parseDirectiveDefinition(description ast.Description) (*ast.DirectiveDefinition, error) {
	keyword := p.peek()
	if _, err := p.lexer.Advance(); err != nil {
		return nil, err
	}

	if _, err := p.expect(token.KindAt); err != nil {
		return nil, err
	}

	name, err := p.parseName()
	if err != nil {
		return nil, err
	}

	arguments, err := p.parseArgumentsDefinition()
	if err != nil {
		return nil, err
	}

	repeatable, err := p.skipKeyword("repeatable")
	if err != nil {
		return nil, err
	}

	if err := p.expectKeyword("on"); err != nil {
		return nil, err
	}

	locations, err := p.parseDirectiveLocations()
	if err != nil {
		return nil, err
	}

	return &ast.DirectiveDefinition{
		Description:  description,
		KeywordToken: keyword,
		Name:         name,
		Arguments:    arguments,
		Repeatable:   repeatable,
		Locations:    locations,
	}, nil
}

//	DirectiveLocations ::
//		|? DirectiveLocation
//		DirectiveLocations | DirectiveLocation
func (p *parser) parseDirectiveLocations() ([]ast.Name, error) {
	if _, err := p.skip(token.KindPipe); err != nil {
		return nil, err
	}

	var locations []ast.Name
	for {
		name, err := p.parseDirectiveLocation()
		if err != nil {
			return nil, err
		}
		locations = append(locations, name)

		hasPipe, err := p.skip(token.KindPipe)
		if err != nil {
			return nil, err
		}
		if !hasPipe {
			break
		}
	}
	return locations, nil
}

// directiveLocations enumerates the legal DirectiveLocation names, executable and type-system.
//
// Reference: https://facebook.github.io/graphql/June2018/#DirectiveLocation
var directiveLocations = map[string]bool{
	"QUERY":                  true,
	"MUTATION":               true,
	"SUBSCRIPTION":           true,
	"FIELD":                  true,
	"FRAGMENT_DEFINITION":    true,
	"FRAGMENT_SPREAD":        true,
	"INLINE_FRAGMENT":        true,
	"VARIABLE_DEFINITION":    true,
	"SCHEMA":                 true,
	"SCALAR":                 true,
	"OBJECT":                 true,
	"FIELD_DEFINITION":       true,
	"ARGUMENT_DEFINITION":    true,
	"INTERFACE":              true,
	"UNION":                  true,
	"ENUM":                   true,
	"ENUM_VALUE":             true,
	"INPUT_OBJECT":           true,
	"INPUT_FIELD_DEFINITION": true,
}

func (p *parser) parseDirectiveLocation() (ast.Name, error) {
	tok := p.peek()
	if tok.Kind != token.KindName || !directiveLocations[tok.Value] {
		return ast.Name{}, p.unexpected()
	}
	return p.parseName()
}

//===----------------------------------------------------------------------------------------====//
// Type System Extensions
//===----------------------------------------------------------------------------------------====//

//	TypeSystemExtension ::
//		SchemaExtension
//		TypeExtension
//
// Note: "extend" has not yet been consumed when this is called.
func (p *parser) parseTypeSystemExtension() (ast.Definition, error) {
	extendToken := p.peek()
	if _, err := p.lexer.Advance(); err != nil {
		return nil, err
	}

	tok := p.peek()
	if tok.Kind != token.KindName {
		return nil, p.unexpected()
	}

	switch tok.Value {
	case "schema":
		return p.parseSchemaExtension(extendToken)
	case "scalar":
		return p.parseScalarTypeExtension(extendToken)
	case "type":
		return p.parseObjectTypeExtension(extendToken)
	case "interface":
		return p.parseInterfaceTypeExtension(extendToken)
	case "union":
		return p.parseUnionTypeExtension(extendToken)
	case "enum":
		return p.parseEnumTypeExtension(extendToken)
	case "input":
		return p.parseInputObjectTypeExtension(extendToken)
	}

	return nil, p.unexpected()
}

//	SchemaExtension ::
//		extend schema Directives[Const]? { OperationTypeDefinition+ }
//		extend schema Directives[Const]
func (p *parser) parseSchemaExtension(extendToken *token.Token) (*ast.SchemaExtension, error) {
	if _, err := p.lexer.Advance(); err != nil { // consume "schema"
		return nil, err
	}

	var (
		directives ast.Directives
		err        error
	)
	if p.peek().Kind == token.KindAt {
		if directives, err = p.parseDirectives(true); err != nil {
			return nil, err
		}
	}

	var (
		operationTypes []*ast.OperationTypeDefinition
		rightBrace     *token.Token
	)
	if p.peek().Kind == token.KindLeftBrace {
		if operationTypes, rightBrace, err = p.parseOperationTypeDefinitions(); err != nil {
			return nil, err
		}
	}

	if len(directives) == 0 && len(operationTypes) == 0 {
		return nil, p.unexpected()
	}

	return &ast.SchemaExtension{
		TypeSystemExtensionBase: ast.TypeSystemExtensionBase{
			TypeSystemDefinitionBase: ast.TypeSystemDefinitionBase{
				DefinitionBase: ast.DefinitionBase{Directives: directives},
			},
		},
		ExtendToken:    extendToken,
		OperationTypes: operationTypes,
		RightBrace:     rightBrace,
	}, nil
}

//	ScalarTypeExtension ::
//		extend scalar Name Directives[Const]
func (p *parser) parseScalarTypeExtension(extendToken *token.Token) (*ast.ScalarTypeExtension, error) {
	if _, err := p.lexer.Advance(); err != nil { // consume "scalar"
		return nil, err
	}

	name, err := p.parseName()
	if err != nil {
		return nil, err
	}

	if p.peek().Kind != token.KindAt {
		return nil, p.unexpected()
	}
	directives, err := p.parseDirectives(true)
	if err != nil {
		return nil, err
	}

	return &ast.ScalarTypeExtension{
		TypeExtensionBase: ast.TypeExtensionBase{
			TypeSystemExtensionBase: ast.TypeSystemExtensionBase{
				TypeSystemDefinitionBase: ast.TypeSystemDefinitionBase{
					DefinitionBase: ast.DefinitionBase{Directives: directives},
				},
			},
			ExtendToken: extendToken,
			Name:        name,
		},
	}, nil
}

//	ObjectTypeExtension ::
//		extend type Name ImplementsInterfaces? Directives[Const]? FieldsDefinition
//		extend type Name ImplementsInterfaces? Directives[Const]
//		extend type Name ImplementsInterfaces
func (p *parser) parseObjectTypeExtension(extendToken *token.Token) (*ast.ObjectTypeExtension, error) {
	if _, err := p.lexer.Advance(); err != nil { // consume "type"
		return nil, err
	}

	name, err := p.parseName()
	if err != nil {
		return nil, err
	}

	interfaces, err := p.parseImplementsInterfaces()
	if err != nil {
		return nil, err
	}

	var directives ast.Directives
	if p.peek().Kind == token.KindAt {
		if directives, err = p.parseDirectives(true); err != nil {
			return nil, err
		}
	}

	fields, rightBrace, err := p.parseFieldsDefinition()
	if err != nil {
		return nil, err
	}

	if len(interfaces) == 0 && len(directives) == 0 && len(fields) == 0 {
		return nil, p.unexpected()
	}

	return &ast.ObjectTypeExtension{
		TypeExtensionBase: ast.TypeExtensionBase{
			TypeSystemExtensionBase: ast.TypeSystemExtensionBase{
				TypeSystemDefinitionBase: ast.TypeSystemDefinitionBase{
					DefinitionBase: ast.DefinitionBase{Directives: directives},
				},
			},
			ExtendToken: extendToken,
			Name:        name,
		},
		Interfaces: interfaces,
		Fields:     fields,
		RightBrace: rightBrace,
	}, nil
}

//	InterfaceTypeExtension ::
//		extend interface Name Directives[Const]? FieldsDefinition
//		extend interface Name Directives[Const]
func (p *parser) parseInterfaceTypeExtension(extendToken *token.Token) (*ast.InterfaceTypeExtension, error) {
	if _, err := p.lexer.Advance(); err != nil { // consume "interface"
		return nil, err
	}

	name, err := p.parseName()
	if err != nil {
		return nil, err
	}

	var directives ast.Directives
	if p.peek().Kind == token.KindAt {
		if directives, err = p.parseDirectives(true); err != nil {
			return nil, err
		}
	}

	fields, rightBrace, err := p.parseFieldsDefinition()
	if err != nil {
		return nil, err
	}

	if len(directives) == 0 && len(fields) == 0 {
		return nil, p.unexpected()
	}

	return &ast.InterfaceTypeExtension{
		TypeExtensionBase: ast.TypeExtensionBase{
			TypeSystemExtensionBase: ast.TypeSystemExtensionBase{
				TypeSystemDefinitionBase: ast.TypeSystemDefinitionBase{
					DefinitionBase: ast.DefinitionBase{Directives: directives},
				},
			},
			ExtendToken: extendToken,
			Name:        name,
		},
		Fields:     fields,
		RightBrace: rightBrace,
	}, nil
}

//	UnionTypeExtension ::
//		extend union Name Directives[Const]? UnionMemberTypes
//		extend union Name Directives[Const]
func (p *parser) parseUnionTypeExtension(extendToken *token.Token) (*ast.UnionTypeExtension, error) {
	if _, err := p.lexer.Advance(); err != nil { // consume "union"
		return nil, err
	}

	name, err := p.parseName()
	if err != nil {
		return nil, err
	}

	var directives ast.Directives
	if p.peek().Kind == token.KindAt {
		if directives, err = p.parseDirectives(true); err != nil {
			return nil, err
		}
	}

	types, err := p.parseUnionMemberTypes()
	if err != nil {
		return nil, err
	}

	if len(directives) == 0 && len(types) == 0 {
		return nil, p.unexpected()
	}

	return &ast.UnionTypeExtension{
		TypeExtensionBase: ast.TypeExtensionBase{
			TypeSystemExtensionBase: ast.TypeSystemExtensionBase{
				TypeSystemDefinitionBase: ast.TypeSystemDefinitionBase{
					DefinitionBase: ast.DefinitionBase{Directives: directives},
				},
			},
			ExtendToken: extendToken,
			Name:        name,
		},
		Types: types,
	}, nil
}

//	EnumTypeExtension ::
//		extend enum Name Directives[Const]? EnumValuesDefinition
//		extend enum Name Directives[Const]
func (p *parser) parseEnumTypeExtension(extendToken *token.Token) (*ast.EnumTypeExtension, error) {
	if _, err := p.lexer.Advance(); err != nil { // consume "enum"
		return nil, err
	}

	name, err := p.parseName()
	if err != nil {
		return nil, err
	}

	var directives ast.Directives
	if p.peek().Kind == token.KindAt {
		if directives, err = p.parseDirectives(true); err != nil {
			return nil, err
		}
	}

	values, rightBrace, err := p.parseEnumValuesDefinition()
	if err != nil {
		return nil, err
	}

	if len(directives) == 0 && len(values) == 0 {
		return nil, p.unexpected()
	}

	return &ast.EnumTypeExtension{
		TypeExtensionBase: ast.TypeExtensionBase{
			TypeSystemExtensionBase: ast.TypeSystemExtensionBase{
				TypeSystemDefinitionBase: ast.TypeSystemDefinitionBase{
					DefinitionBase: ast.DefinitionBase{Directives: directives},
				},
			},
			ExtendToken: extendToken,
			Name:        name,
		},
		Values:     values,
		RightBrace: rightBrace,
	}, nil
}

//	InputObjectTypeExtension ::
//		extend input Name Directives[Const]? InputFieldsDefinition
//		extend input Name Directives[Const]
func (p *parser) parseInputObjectTypeExtension(extendToken *token.Token) (*ast.InputObjectTypeExtension, error) {
	if _, err := p.lexer.Advance(); err != nil { // consume "input"
		return nil, err
	}

	name, err := p.parseName()
	if err != nil {
		return nil, err
	}

	var directives ast.Directives
	if p.peek().Kind == token.KindAt {
		if directives, err = p.parseDirectives(true); err != nil {
			return nil, err
		}
	}

	fields, rightBrace, err := p.parseInputFieldsDefinition()
	if err != nil {
		return nil, err
	}

	if len(directives) == 0 && len(fields) == 0 {
		return nil, p.unexpected()
	}

	return &ast.InputObjectTypeExtension{
		TypeExtensionBase: ast.TypeExtensionBase{
			TypeSystemExtensionBase: ast.TypeSystemExtensionBase{
				TypeSystemDefinitionBase: ast.TypeSystemDefinitionBase{
					DefinitionBase: ast.DefinitionBase{Directives: directives},
				},
			},
			ExtendToken: extendToken,
			Name:        name,
		},
		Fields:     fields,
		RightBrace: rightBrace,
	}, nil
}
