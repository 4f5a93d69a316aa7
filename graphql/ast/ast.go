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

// Package ast defines the closed set of node types produced by the lexer and parser: both the
// executable grammar (operations, fragments, selections, values) and the SDL grammar (type system
// definitions and extensions). Every node exposes TokenRange so callers can recover its position in
// source for error reporting without threading locations through separately.
package ast

import (
	"math"
	"strconv"

	"github.com/nimbusgraph/gql/graphql/token"
)

// Node represents a node in an AST tree from parsing GraphQL language.
type Node interface {
	// TokenRange indicates the region of the Node in the source.
	TokenRange() token.Range
}

// Name represents a name.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Names
type Name struct {
	// Token is the lexical token that contains the name (usually scanned by lexer) and also
	// indicates the location in the source; its kind must be a token.KindName.
	Token *token.Token
}

var _ Node = Name{}

// Value returns the name in string.
func (node Name) Value() string {
	return node.Token.Value
}

// IsNil reports whether this Name is the zero value, i.e. absent (e.g. a Field with no alias).
func (node Name) IsNil() bool {
	return node.Token == nil
}

// TokenRange implements Node.
func (node Name) TokenRange() token.Range {
	return token.Range{
		First: node.Token,
		Last:  node.Token,
	}
}

//===----------------------------------------------------------------------------------------====//
// Document
//===----------------------------------------------------------------------------------------====//
// A GraphQL Document describes a complete file or request string operated on by a GraphQL service
// or client. A document contains multiple definitions, either executable or representative of a
// GraphQL type system.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Language.Document

// Document represents a GraphQL Document.
//
// Reference: https://facebook.github.io/graphql/June2018/#Document
type Document struct {
	// Definitions defined in the document.
	Definitions Definitions
}

var _ Node = Document{}

// TokenRange implements Node.
func (node Document) TokenRange() token.Range {
	if len(node.Definitions) == 0 {
		return token.Range{
			First: nil,
			Last:  nil,
		}
	}
	// Note that the first token of a valid Document is always SOF and the last token is EOF.
	return token.Range{
		First: node.Definitions[0].TokenRange().First.Prev,
		Last:  node.Definitions[len(node.Definitions)-1].TokenRange().Last.Next,
	}
}

// Definitions is a sequence of Definition nodes.
type Definitions []Definition

// Definition represents a GraphQL Definition: either an ExecutableDefinition (operation or
// fragment) or a TypeSystemDefinition/TypeSystemExtension (SDL).
//
// Reference: https://facebook.github.io/graphql/June2018/#Definition
type Definition interface {
	Node

	// GetDirectives reports the directives applied to the definition.
	GetDirectives() Directives

	// definitionNode is a special mark to indicate a Definition node. It makes sure that only
	// definition node can be assigned to Definition.
	definitionNode()
}

// DefinitionBase is a common base that is embedded in Definition implementations.
type DefinitionBase struct {
	// Directives that are applied to the definition
	Directives Directives
}

// GetDirectives implements Definition.
func (base DefinitionBase) GetDirectives() Directives {
	return base.Directives
}

// definitionNode marks the embedding node as a Definition.
func (DefinitionBase) definitionNode() {}

// ExecutableDefinition represents an executable definition: an operation or a fragment.
//
// Reference: https://facebook.github.io/graphql/June2018/#ExecutableDefinition
type ExecutableDefinition interface {
	Definition

	// GetSelectionSet specifies the sets of fields to fetch.
	GetSelectionSet() SelectionSet
}

var (
	_ ExecutableDefinition = (*OperationDefinition)(nil)
	_ ExecutableDefinition = (*FragmentDefinition)(nil)
)

//===----------------------------------------------------------------------------------------====//
// Operations
//===----------------------------------------------------------------------------------------====//

// OperationType specifies the type of operation model.
//
// Reference: https://facebook.github.io/graphql/June2018/#OperationType
type OperationType string

// Enumeration of OperationType.
const (
	OperationTypeQuery        OperationType = "query"
	OperationTypeMutation     OperationType = "mutation"
	OperationTypeSubscription OperationType = "subscription"
)

// OperationDefinition represents a GraphQL operation.
//
// Reference: https://facebook.github.io/graphql/June2018/#OperationDefinition
type OperationDefinition struct {
	DefinitionBase

	// Type is a Name token that contains the operation type. Nil for query shorthand.
	Type *token.Token

	// Name of the operation, if given.
	Name Name

	// VariableDefinitions contains variables given to the operation.
	VariableDefinitions VariableDefinitions

	// SelectionSet specifies the sets of fields to fetch.
	SelectionSet SelectionSet
}

var _ Node = (*OperationDefinition)(nil)

// TokenRange implements Node.
func (definition *OperationDefinition) TokenRange() token.Range {
	if definition.IsQueryShorthand() {
		return definition.SelectionSet.TokenRange()
	}
	return token.Range{
		First: definition.Type,
		Last:  definition.SelectionSet.LastToken(),
	}
}

// GetSelectionSet implements ExecutableDefinition.
func (definition *OperationDefinition) GetSelectionSet() SelectionSet {
	return definition.SelectionSet
}

// IsQueryShorthand returns true if this is a short form of query operation such as "{ field }".
// Query shorthand doesn't specify operation type or name; it is implicitly a query.
func (definition *OperationDefinition) IsQueryShorthand() bool {
	return definition.Type == nil
}

// OperationType returns the type of operation.
func (definition *OperationDefinition) OperationType() OperationType {
	if definition.IsQueryShorthand() {
		return OperationTypeQuery
	}
	return OperationType(definition.Type.Value)
}

//===----------------------------------------------------------------------------------------====//
// Selection Sets
//===----------------------------------------------------------------------------------------====//

// SelectionSet specifies the information to be fetched.
//
// Reference: https://facebook.github.io/graphql/June2018/#SelectionSet
type SelectionSet []Selection

var _ Node = SelectionSet{}

// FirstToken returns the first token in the sequence of the selection set.
func (set SelectionSet) FirstToken() *token.Token {
	if len(set) == 0 {
		return nil
	}
	// Find the left brace "{" token in prior to the first Selection.
	return set[0].TokenRange().First.Prev
}

// LastToken returns the last token in the sequence of the selection set.
func (set SelectionSet) LastToken() *token.Token {
	if len(set) == 0 {
		return nil
	}
	// Find the right brace "}" token after the last Selection.
	return set[len(set)-1].TokenRange().Last.Next
}

// TokenRange implements Node.
func (set SelectionSet) TokenRange() token.Range {
	return token.Range{
		First: set.FirstToken(),
		Last:  set.LastToken(),
	}
}

// Selection represents a field or a set of fields.
//
//	Selection ::
//		Field
//		FragmentSpread
//		InlineFragment
//
// Reference: https://facebook.github.io/graphql/June2018/#Selection
type Selection interface {
	Node

	// selectionNode is a special mark to indicate a Selection node. It makes sure that only a
	// selection node can be assigned to Selection.
	selectionNode()
}

var (
	_ Selection = (*Field)(nil)
	_ Selection = (*FragmentSpread)(nil)
	_ Selection = (*InlineFragment)(nil)
)

//===----------------------------------------------------------------------------------------====//
// Field
//===----------------------------------------------------------------------------------------====//

// Field describes a field selection.
//
// Reference: https://facebook.github.io/graphql/June2018/#Field
type Field struct {
	// Alias specifies a different name of the key to be used in the response object.
	Alias Name

	// Name of the field.
	Name Name

	// Arguments taken by the field.
	Arguments Arguments

	// Directives applied to the field.
	Directives Directives

	// SelectionSet of information to be fetched that is nested in the field.
	SelectionSet SelectionSet
}

// TokenRange implements Node.
func (node *Field) TokenRange() token.Range {
	var r token.Range

	if !node.Alias.IsNil() {
		r.First = node.Alias.Token
	} else {
		r.First = node.Name.Token
	}

	if len(node.SelectionSet) > 0 {
		r.Last = node.SelectionSet.LastToken()
	} else if len(node.Directives) > 0 {
		r.Last = node.Directives.LastToken()
	} else if len(node.Arguments) > 0 {
		r.Last = node.Arguments.LastToken()
	} else {
		r.Last = node.Name.Token
	}

	return r
}

// ResponseName is the key under which this field's value appears in the response: the alias if
// given, otherwise the field name.
func (node *Field) ResponseName() string {
	if !node.Alias.IsNil() {
		return node.Alias.Value()
	}
	return node.Name.Value()
}

// selectionNode implements Selection.
func (*Field) selectionNode() {}

//===----------------------------------------------------------------------------------------====//
// Argument
//===----------------------------------------------------------------------------------------====//

// Arguments specifies a list of Argument.
type Arguments []*Argument

// FirstToken returns the first token in the sequence of arguments.
func (nodes Arguments) FirstToken() *token.Token {
	if len(nodes) == 0 {
		return nil
	}
	// Find the left paren "(" token.
	return nodes[0].Name.Token.Prev
}

// LastToken returns the last token in the sequence of arguments.
func (nodes Arguments) LastToken() *token.Token {
	if len(nodes) == 0 {
		return nil
	}
	// Find the right paren ")" token which follows the last value.
	return nodes[len(nodes)-1].Value.TokenRange().Last.Next
}

// Argument is an argument taken by a field or directive.
//
// Reference: https://facebook.github.io/graphql/June2018/#Argument
type Argument struct {
	// Name of the argument.
	Name Name

	// Value given to the argument.
	Value Value
}

var _ Node = (*Argument)(nil)

// TokenRange implements Node.
func (node *Argument) TokenRange() token.Range {
	return token.Range{
		First: node.Name.Token,
		Last:  node.Value.TokenRange().Last,
	}
}

//===----------------------------------------------------------------------------------------====//
// Fragments
//===----------------------------------------------------------------------------------------====//

// FragmentDefinition represents a reusable selection of fields.
//
// Reference: https://facebook.github.io/graphql/June2018/#FragmentDefinition
type FragmentDefinition struct {
	DefinitionBase

	// Name of the fragment.
	Name Name

	// VariableDefinitions contains variables given to the fragment. Experimental; see
	// https://github.com/facebook/graphql/issues/204.
	VariableDefinitions VariableDefinitions

	// TypeCondition specifies the type this fragment applies to.
	TypeCondition NamedType

	// SelectionSet describes the set of fields requested by the fragment.
	SelectionSet SelectionSet
}

// TokenRange implements Node.
func (definition *FragmentDefinition) TokenRange() token.Range {
	return token.Range{
		First: definition.Name.Token.Prev, // "fragment" keyword
		Last:  definition.SelectionSet.LastToken(),
	}
}

// GetSelectionSet implements ExecutableDefinition.
func (definition *FragmentDefinition) GetSelectionSet() SelectionSet {
	return definition.SelectionSet
}

// FragmentSpread uses the spread operator (...) to add the fields defined by a fragment to a
// selection set.
//
// Reference: https://facebook.github.io/graphql/June2018/#FragmentSpread
type FragmentSpread struct {
	// Name of the fragment to be consumed by the selection set.
	Name Name

	// Directives applied to the fragment spread.
	Directives Directives
}

// TokenRange implements Node.
func (node *FragmentSpread) TokenRange() token.Range {
	var lastToken *token.Token
	if len(node.Directives) > 0 {
		lastToken = node.Directives.LastToken()
	} else {
		lastToken = node.Name.Token
	}

	return token.Range{
		First: node.Name.Token.Prev, // "..." token
		Last:  lastToken,
	}
}

// selectionNode implements Selection.
func (*FragmentSpread) selectionNode() {}

// InlineFragment defines a fragment inline within a selection set.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Inline-Fragments
type InlineFragment struct {
	// TypeCondition specifies the type this inline fragment applies to.
	TypeCondition NamedType

	// Directives applied to the inline fragment.
	Directives Directives

	// SelectionSet describes the set of fields to be merged into the enclosing selection set.
	SelectionSet SelectionSet
}

// TokenRange implements Node.
func (node *InlineFragment) TokenRange() token.Range {
	var firstToken *token.Token
	if node.HasTypeCondition() {
		firstToken = node.TypeCondition.Name.Token.Prev // "..." token
	} else if len(node.Directives) > 0 {
		firstToken = node.Directives.FirstToken()
	} else {
		firstToken = node.SelectionSet.FirstToken()
	}
	return token.Range{
		First: firstToken,
		Last:  node.SelectionSet.LastToken(),
	}
}

// HasTypeCondition returns true if the inline fragment specifies a type condition.
func (node *InlineFragment) HasTypeCondition() bool {
	return !node.TypeCondition.Name.IsNil()
}

// selectionNode implements Selection.
func (*InlineFragment) selectionNode() {}

//===----------------------------------------------------------------------------------------====//
// Input Values
//===----------------------------------------------------------------------------------------====//

// Value represents a node containing an input value.
//
// Reference: https://facebook.github.io/graphql/June2018/#Value
type Value interface {
	Node

	// Interface returns the value as an interface{}.
	Interface() interface{}

	// valueNode is a special mark to indicate a Value node.
	valueNode()
}

var (
	_ Value = Variable{}
	_ Value = IntValue{}
	_ Value = FloatValue{}
	_ Value = StringValue{}
	_ Value = BooleanValue{}
	_ Value = NullValue{}
	_ Value = EnumValue{}
	_ Value = ListValue{}
	_ Value = ObjectValue{}
)

// IntValue represents a value node containing an integer literal.
type IntValue struct {
	// Token is the lexical token that contains the value; its kind must be token.KindInt.
	Token *token.Token
}

// TokenRange implements Node.
func (value IntValue) TokenRange() token.Range {
	return token.Range{First: value.Token, Last: value.Token}
}

// Interface implements Value.
func (value IntValue) Interface() interface{} {
	v, err := value.Int32Value()
	if err == nil {
		return v
	}
	return int32(0)
}

func (IntValue) valueNode() {}

// String returns the literal string specifying the integer value.
func (value IntValue) String() string {
	return value.Token.Value
}

// Int32Value parses the literal into an int32.
func (value IntValue) Int32Value() (int32, error) {
	v, err := strconv.ParseInt(value.String(), 10, 32)
	return int32(v), err
}

// Int64Value parses the literal into an int64.
func (value IntValue) Int64Value() (int64, error) {
	return strconv.ParseInt(value.String(), 10, 64)
}

// FloatValue represents a value node containing a float literal.
type FloatValue struct {
	Token *token.Token
}

// TokenRange implements Node.
func (value FloatValue) TokenRange() token.Range {
	return token.Range{First: value.Token, Last: value.Token}
}

// Interface implements Value.
func (value FloatValue) Interface() interface{} {
	v, err := value.FloatValue()
	if err != nil {
		return math.NaN()
	}
	return v
}

func (FloatValue) valueNode() {}

// String returns the literal string specifying the float value.
func (value FloatValue) String() string {
	return value.Token.Value
}

// FloatValue parses the literal into a float64.
func (value FloatValue) FloatValue() (float64, error) {
	return strconv.ParseFloat(value.String(), 64)
}

// StringValue represents a value node containing a string, either quoted or block-quoted.
type StringValue struct {
	// Token is the lexical token that contains the value; its kind is token.KindString or
	// token.KindBlockString.
	Token *token.Token
}

// TokenRange implements Node.
func (value StringValue) TokenRange() token.Range {
	return token.Range{First: value.Token, Last: value.Token}
}

// Interface implements Value.
func (value StringValue) Interface() interface{} {
	return value.Value()
}

func (StringValue) valueNode() {}

// Value returns the interpreted string value.
func (value StringValue) Value() string {
	return value.Token.Value
}

// IsBlockString reports whether the string was written with the """ block form.
func (value StringValue) IsBlockString() bool {
	return value.Token.Kind == token.KindBlockString
}

// BooleanValue represents a value node containing a boolean literal.
type BooleanValue struct {
	// Token is a token.KindName token containing either "true" or "false".
	Token *token.Token
}

// TokenRange implements Node.
func (value BooleanValue) TokenRange() token.Range {
	return token.Range{First: value.Token, Last: value.Token}
}

// Interface implements Value.
func (value BooleanValue) Interface() interface{} {
	return value.Value()
}

// Value returns true if the token contains "true".
func (value BooleanValue) Value() bool {
	return value.Token.Value[0] == 't'
}

func (BooleanValue) valueNode() {}

// NullValue represents the keyword "null".
type NullValue struct {
	Token *token.Token
}

// TokenRange implements Node.
func (value NullValue) TokenRange() token.Range {
	return token.Range{First: value.Token, Last: value.Token}
}

// Interface implements Value.
func (value NullValue) Interface() interface{} {
	return nil
}

func (NullValue) valueNode() {}

// EnumValue represents a value node containing an enum member name.
type EnumValue struct {
	// Token is a token.KindName token.
	Token *token.Token
}

// TokenRange implements Node.
func (value EnumValue) TokenRange() token.Range {
	return token.Range{First: value.Token, Last: value.Token}
}

// Interface implements Value.
func (value EnumValue) Interface() interface{} {
	return value.Value()
}

func (EnumValue) valueNode() {}

// Value returns the enum member name.
func (value EnumValue) Value() string {
	return value.Token.Value
}

// ListValue represents a value node containing a list of values.
type ListValue struct {
	// ValuesOrStartToken holds either []Value, or, for an empty list, the *token.Token of the
	// opening bracket (kept so an empty list still has a source location).
	ValuesOrStartToken interface{}
}

// FirstToken returns the first token (the opening bracket) of the ListValue.
func (value ListValue) FirstToken() *token.Token {
	if value.IsEmpty() {
		return value.ValuesOrStartToken.(*token.Token)
	}
	return value.Values()[0].TokenRange().First.Prev
}

// LastToken returns the last token (the closing bracket) of the ListValue.
func (value ListValue) LastToken() *token.Token {
	if value.IsEmpty() {
		return value.ValuesOrStartToken.(*token.Token).Next
	}
	values := value.Values()
	return values[len(values)-1].TokenRange().Last.Next
}

// TokenRange implements Node.
func (value ListValue) TokenRange() token.Range {
	return token.Range{First: value.FirstToken(), Last: value.LastToken()}
}

// Interface implements Value.
func (value ListValue) Interface() interface{} {
	values := value.Values()
	result := make([]interface{}, len(values))
	for i := range values {
		result[i] = values[i].Interface()
	}
	return result
}

// IsEmpty returns true if the list contains no values.
func (value ListValue) IsEmpty() bool {
	_, ok := value.ValuesOrStartToken.([]Value)
	return !ok
}

// Values returns the values in the list, or nil for an empty list.
func (value ListValue) Values() []Value {
	if values, ok := value.ValuesOrStartToken.([]Value); ok {
		return values
	}
	return nil
}

func (ListValue) valueNode() {}

// ObjectValue represents a value node containing a set of named fields.
type ObjectValue struct {
	// FieldsOrStartToken holds either []*ObjectField, or, for an empty object, the *token.Token of
	// the opening brace.
	FieldsOrStartToken interface{}
}

// FirstToken returns the first token (the opening brace) of the ObjectValue.
func (value ObjectValue) FirstToken() *token.Token {
	if value.HasFields() {
		return value.Fields()[0].Name.Token.Prev
	}
	return value.FieldsOrStartToken.(*token.Token)
}

// LastToken returns the last token (the closing brace) of the ObjectValue.
func (value ObjectValue) LastToken() *token.Token {
	if value.HasFields() {
		fields := value.Fields()
		return fields[len(fields)-1].Value.TokenRange().Last.Next
	}
	return value.FieldsOrStartToken.(*token.Token).Next
}

// TokenRange implements Node.
func (value ObjectValue) TokenRange() token.Range {
	return token.Range{First: value.FirstToken(), Last: value.LastToken()}
}

// Interface implements Value.
func (value ObjectValue) Interface() interface{} {
	fields := value.Fields()
	values := make(map[string]interface{}, len(fields))
	for i := range fields {
		field := fields[i]
		values[field.Name.Value()] = field.Value.Interface()
	}
	return values
}

// HasFields returns true if the object contains any fields.
func (value ObjectValue) HasFields() bool {
	_, ok := value.FieldsOrStartToken.([]*ObjectField)
	return ok
}

// Fields returns the object's fields, or nil for an empty object.
func (value ObjectValue) Fields() []*ObjectField {
	if fields, ok := value.FieldsOrStartToken.([]*ObjectField); ok {
		return fields
	}
	return nil
}

func (ObjectValue) valueNode() {}

// ObjectField assigns a value to a field of an ObjectValue.
//
// Reference: https://facebook.github.io/graphql/June2018/#ObjectField
type ObjectField struct {
	Name  Name
	Value Value
}

//===----------------------------------------------------------------------------------------====//
// Variables
//===----------------------------------------------------------------------------------------====//

// Variable refers to a variable by name.
//
// Reference: https://facebook.github.io/graphql/June2018/#Variable
type Variable struct {
	Name Name
}

// FirstToken returns the first token ("$") at which the variable reference starts.
func (value Variable) FirstToken() *token.Token {
	return value.Name.Token.Prev
}

// TokenRange implements Node.
func (value Variable) TokenRange() token.Range {
	return token.Range{First: value.FirstToken(), Last: value.Name.Token}
}

// Interface implements Value; returns the variable's name.
func (value Variable) Interface() interface{} {
	return value.Name.Value()
}

func (Variable) valueNode() {}

// VariableDefinitions is a sequence of VariableDefinition nodes.
type VariableDefinitions []*VariableDefinition

// VariableDefinition defines a variable accepted by an operation or (experimentally) a fragment.
//
// Reference: https://facebook.github.io/graphql/June2018/#VariableDefinition
type VariableDefinition struct {
	// Variable being defined.
	Variable Variable

	// Type of the variable's value.
	Type Type

	// DefaultValue used when no input value is supplied for the variable.
	DefaultValue Value

	// Directives applied to the variable definition.
	Directives Directives
}

// TokenRange implements Node.
func (value *VariableDefinition) TokenRange() token.Range {
	var lastToken *token.Token
	if len(value.Directives) > 0 {
		lastToken = value.Directives.LastToken()
	} else if value.DefaultValue != nil {
		lastToken = value.DefaultValue.TokenRange().Last
	} else {
		lastToken = value.Type.TokenRange().Last
	}

	return token.Range{
		First: value.Variable.FirstToken(),
		Last:  lastToken,
	}
}

//===----------------------------------------------------------------------------------------====//
// Type References
//===----------------------------------------------------------------------------------------====//

// Type describes a reference to a type of data.
//
//	Type
//		NamedType
//		ListType
//		NonNullType
//
// Reference: https://facebook.github.io/graphql/June2018/#Type
type Type interface {
	Node

	// typeNode is a special mark to indicate a Type node.
	typeNode()
}

var (
	_ Type = NamedType{}
	_ Type = ListType{}
	_ Type = NonNullType{}
)

// NullableType is a Type that may be wrapped in a NonNullType: NamedType or ListType.
type NullableType interface {
	Type
	nullableTypeNode()
}

var (
	_ NullableType = NamedType{}
	_ NullableType = ListType{}
)

// NamedType refers to a named type.
type NamedType struct {
	Name Name
}

// TokenRange implements Node.
func (t NamedType) TokenRange() token.Range {
	return t.Name.TokenRange()
}

func (NamedType) typeNode()         {}
func (NamedType) nullableTypeNode() {}

// ListType refers to a list of an item type.
type ListType struct {
	ItemType Type
}

// TokenRange implements Node.
func (t ListType) TokenRange() token.Range {
	var r token.Range

	// Find the innermost NamedType, pushing intermediate wrapper types onto a stack.
	stack := []Type{t}
	ttype := t.ItemType
	for r.First == nil {
		switch x := ttype.(type) {
		case NamedType:
			r.First = x.Name.Token
			r.Last = x.Name.Token
		case ListType:
			stack = append(stack, ttype)
			ttype = x.ItemType
		case NonNullType:
			stack = append(stack, ttype)
			ttype = x.Type
		}
	}

	// Unwind the stack to derive the first/last token of the ListType.
	for len(stack) > 0 {
		ttype, stack = stack[len(stack)-1], stack[:len(stack)-1]
		switch ttype.(type) {
		case ListType:
			r.First = r.First.Prev // left bracket
			r.Last = r.Last.Next   // right bracket
		case NonNullType:
			r.Last = r.Last.Next // bang
		}
	}

	return r
}

func (ListType) typeNode()         {}
func (ListType) nullableTypeNode() {}

// NonNullType refers to a type that doesn't accept a null value.
type NonNullType struct {
	// Type wrapped; may only be a NamedType or a ListType.
	Type NullableType
}

// TokenRange implements Node.
func (t NonNullType) TokenRange() token.Range {
	r := t.Type.TokenRange()
	r.Last = r.Last.Next // "!" token
	return r
}

func (NonNullType) typeNode() {}

//===----------------------------------------------------------------------------------------====//
// Directives
//===----------------------------------------------------------------------------------------====//

// Directives specifies a list of Directive.
type Directives []*Directive

// FirstToken returns the first token in the sequence of directives.
func (nodes Directives) FirstToken() *token.Token {
	if len(nodes) == 0 {
		return nil
	}
	return nodes[0].FirstToken()
}

// LastToken returns the last token in the sequence of directives.
func (nodes Directives) LastToken() *token.Token {
	if len(nodes) == 0 {
		return nil
	}
	return nodes[len(nodes)-1].LastToken()
}

// Directive applies a GraphQL directive.
type Directive struct {
	Name      Name
	Arguments Arguments
}

var _ Node = (*Directive)(nil)

// FirstToken returns the first token ("@") where the Directive begins.
func (node *Directive) FirstToken() *token.Token {
	return node.Name.Token.Prev
}

// LastToken returns the last token where the Directive ends.
func (node *Directive) LastToken() *token.Token {
	if len(node.Arguments) == 0 {
		return node.Name.Token
	}
	return node.Arguments.LastToken()
}

// TokenRange implements Node.
func (node *Directive) TokenRange() token.Range {
	return token.Range{First: node.FirstToken(), Last: node.LastToken()}
}
