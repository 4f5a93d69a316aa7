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
	"fmt"
	"strconv"
	"strings"

	"github.com/nimbusgraph/gql/graphql/ast"
	"github.com/nimbusgraph/gql/graphql/token"
	"github.com/nimbusgraph/gql/resultwriter"
)

// ErrKind classifies an Error by the stage of the pipeline that raised it. The taxonomy is closed
// and stable: callers may switch on it to decide whether an error is fatal to the whole request
// (Syntax/SDL/Schema/Runtime) or collected alongside a partial result (Validation/Coercion/Resolver).
type ErrKind uint8

// Enumeration of ErrKind.
const (
	ErrKindOther      ErrKind = iota // Unclassified.
	ErrKindSyntax                    // Lexer/parser failure. Fatal.
	ErrKindSDL                       // SDL schema-build failure. Fatal.
	ErrKindSchema                    // Schema-validation failure. Fatal.
	ErrKindValidation                // Query-validation failure. Collected; query does not execute.
	ErrKindCoercion                  // Variable/argument coercion failure. Executor returns early.
	ErrKindResolver                  // Error raised inside a resolver. Null-propagated, collected.
	ErrKindRuntime                   // Structural engine failure (e.g. a middleware contract violation).
)

func (k ErrKind) String() string {
	switch k {
	case ErrKindSyntax:
		return "syntax error"
	case ErrKindSDL:
		return "SDL error"
	case ErrKindSchema:
		return "schema error"
	case ErrKindValidation:
		return "validation error"
	case ErrKindCoercion:
		return "coercion error"
	case ErrKindResolver:
		return "resolver error"
	case ErrKindRuntime:
		return "runtime error"
	}
	return "error"
}

// ErrorExtensions carries vendor-specific data under the response's "extensions" entry.
//
// Reference: https://github.com/facebook/graphql/pull/407
type ErrorExtensions map[string]interface{}

// ErrorLocation is a (line, column) pair pointing at the source element an error concerns. Both
// fields are 1-indexed.
type ErrorLocation struct {
	Line   uint
	Column uint
}

// ResponsePath identifies a location within a GraphQL response: a sequence of field names and list
// indices, e.g. ["posts", 2, "title"].
type ResponsePath struct {
	keys []interface{}
}

// Empty reports whether the path has no components.
func (path ResponsePath) Empty() bool {
	return len(path.keys) == 0
}

// WithFieldName returns a copy of path with name appended.
func (path ResponsePath) WithFieldName(name string) ResponsePath {
	keys := make([]interface{}, len(path.keys)+1)
	copy(keys, path.keys)
	keys[len(path.keys)] = name
	return ResponsePath{keys}
}

// WithIndex returns a copy of path with index appended.
func (path ResponsePath) WithIndex(index int) ResponsePath {
	keys := make([]interface{}, len(path.keys)+1)
	copy(keys, path.keys)
	keys[len(path.keys)] = index
	return ResponsePath{keys}
}

// Keys returns the path components in order; each is either a string or an int.
func (path ResponsePath) Keys() []interface{} {
	return path.keys
}

var _ resultwriter.ValueMarshaler = (*ResponsePath)(nil)

// MarshalJSONTo implements resultwriter.ValueMarshaler, encoding the path as a JSON array of its
// string/int keys.
func (path *ResponsePath) MarshalJSONTo(stream *resultwriter.Stream) error {
	stream.WriteArrayStart()
	for i, key := range path.keys {
		if i > 0 {
			stream.WriteMore()
		}
		switch key := key.(type) {
		case string:
			stream.WriteString(key)
		case int:
			stream.WriteInt(key)
		}
	}
	stream.WriteArrayEnd()
	return nil
}

// String renders the path in "field.field[idx].field" form for debugging.
func (path ResponsePath) String() string {
	var b strings.Builder
	for _, key := range path.keys {
		switch key := key.(type) {
		case string:
			if b.Len() > 0 {
				b.WriteRune('.')
			}
			b.WriteString(key)
		case int:
			b.WriteRune('[')
			b.WriteString(strconv.Itoa(key))
			b.WriteRune(']')
		}
	}
	return b.String()
}

// Error is the common shape of every error this module raises. It mirrors the GraphQL response
// error object: a message, the source locations it concerns, the response path (for execution
// errors), and an optional extensions bag.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Errors
type Error struct {
	Kind       ErrKind
	Message    string
	Locations  []ErrorLocation
	Path       ResponsePath
	Extensions ErrorExtensions
	Err        error
}

var _ error = (*Error)(nil)

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Kind == ErrKindOther || e.Kind == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap exposes the wrapped error, if any, to errors.Is/errors.As.
func (e *Error) Unwrap() error {
	return e.Err
}

// ErrorLocationOfASTNode formats the location of an AST node's first token into an ErrorLocation.
func ErrorLocationOfASTNode(node ast.Node) ErrorLocation {
	info := node.TokenRange().First.LocationInfo()
	return ErrorLocation{Line: info.Line, Column: info.Column}
}

func locationsOfNodes(nodes []ast.Node) []ErrorLocation {
	if len(nodes) == 0 {
		return nil
	}
	locations := make([]ErrorLocation, len(nodes))
	for i, node := range nodes {
		locations[i] = ErrorLocationOfASTNode(node)
	}
	return locations
}

// NewSyntaxError builds a fatal ErrKindSyntax error carrying the offending token's location.
func NewSyntaxError(source *token.Source, location token.SourceLocation, description string) *Error {
	info := source.LocationInfoOf(location)
	return &Error{
		Kind:      ErrKindSyntax,
		Message:   description,
		Locations: []ErrorLocation{{Line: info.Line, Column: info.Column}},
	}
}

// NewSDLError builds a fatal ErrKindSDL error pointing at the given AST nodes.
func NewSDLError(message string, nodes ...ast.Node) *Error {
	return &Error{
		Kind:      ErrKindSDL,
		Message:   message,
		Locations: locationsOfNodes(nodes),
	}
}

// NewSchemaError builds a fatal ErrKindSchema error pointing at the given AST nodes.
func NewSchemaError(message string, nodes ...ast.Node) *Error {
	return &Error{
		Kind:      ErrKindSchema,
		Message:   message,
		Locations: locationsOfNodes(nodes),
	}
}

// NewValidationError builds an ErrKindValidation error. Query validation collects these rather
// than stopping at the first one.
func NewValidationError(message string, nodes ...ast.Node) *Error {
	return &Error{
		Kind:      ErrKindValidation,
		Message:   message,
		Locations: locationsOfNodes(nodes),
	}
}

// NewCoercionError builds an ErrKindCoercion error. The executor returns early with this in the
// response's errors list and omits "data" entirely.
func NewCoercionError(message string, nodes ...ast.Node) *Error {
	return &Error{
		Kind:      ErrKindCoercion,
		Message:   message,
		Locations: locationsOfNodes(nodes),
	}
}

// NewResolverError wraps an error raised inside a resolver, attaching the response path and the
// location of the field that produced it.
func NewResolverError(err error, path ResponsePath, node ast.Node) *Error {
	e := &Error{
		Kind: ErrKindResolver,
		Path: path,
		Err:  err,
	}
	if err != nil {
		e.Message = err.Error()
	}
	if node != nil {
		e.Locations = []ErrorLocation{ErrorLocationOfASTNode(node)}
	}
	if inner, ok := err.(*Error); ok {
		if e.Extensions == nil {
			e.Extensions = inner.Extensions
		}
	}
	return e
}

// NewRuntimeError builds a fatal ErrKindRuntime error for engine-internal contract violations
// (e.g. a "defer" middleware that never yields).
func NewRuntimeError(message string) *Error {
	return &Error{Kind: ErrKindRuntime, Message: message}
}

// NewError builds an *Error (returned as error) from a message and a variadic list of arguments
// that refine it. Each argument is matched by type:
//
//   - ErrorLocation or []ErrorLocation sets Locations.
//   - ResponsePath sets Path.
//   - ErrorExtensions sets Extensions.
//   - ErrKind sets Kind.
//   - error sets Err; if it is itself an *Error and Locations/Path/Extensions were not otherwise
//     given, they are propagated from it.
//
// Passing an argument of any other type is a programming error and panics.
func NewError(message string, args ...interface{}) error {
	e := &Error{
		Message: message,
	}

	for _, arg := range args {
		switch arg := arg.(type) {
		case ErrorLocation:
			e.Locations = []ErrorLocation{arg}
		case []ErrorLocation:
			e.Locations = arg

		case ResponsePath:
			e.Path = arg

		case ErrorExtensions:
			e.Extensions = arg

		case ErrKind:
			e.Kind = arg

		case error:
			e.Err = arg

		default:
			panic(fmt.Sprintf("graphql.NewError: unsupported argument type %T", arg))
		}
	}

	if prev, ok := e.Err.(*Error); ok {
		if len(e.Locations) == 0 && len(prev.Locations) > 0 {
			e.Locations = prev.Locations
		}
		if e.Path.Empty() && !prev.Path.Empty() {
			e.Path = prev.Path
		}
		if e.Extensions == nil {
			e.Extensions = prev.Extensions
		}
		if e.Kind == ErrKindOther {
			e.Kind = prev.Kind
		}
	}

	return e
}

// NewDefaultResultCoercionError builds an ErrKindCoercion error reporting that value could not be
// coerced to the named scalar or enum type's result representation.
func NewDefaultResultCoercionError(typeName string, value interface{}, err error) error {
	return NewError(
		fmt.Sprintf("Expected a value of type %q but received: %v", typeName, value),
		ErrKindCoercion,
		err)
}

// Errors wraps a list of *Error. It is a struct rather than a plain slice so that a nil-valued
// Errors (the zero value) is unambiguous: callers must use HaveOccurred rather than comparing
// against nil, since a slice that has been appended to and then emptied is still "occurred" under
// a naive nil check.
type Errors struct {
	Errors []*Error
}

// NoErrors constructs an empty Errors.
func NoErrors() Errors {
	return Errors{}
}

// ErrorsOf builds an Errors value from its arguments. args is either:
//
//  1. A list of error values (each must be an *Error); or
//  2. A message string followed by the arguments NewError accepts, describing a single error.
//
// This is convenient for "construct and return" call sites:
//
//	func mayFail() (Value, Errors) {
//		...
//		return Value{}, ErrorsOf("something went wrong", node)
//	}
func ErrorsOf(args ...interface{}) Errors {
	var errs Errors
	for i, arg := range args {
		switch arg := arg.(type) {
		case error:
			errs.Append(arg)
		case string:
			errs.Emplace(arg, args[i+1:]...)
			return errs
		default:
			panic(fmt.Sprintf("graphql.ErrorsOf: unsupported argument type %T", arg))
		}
	}
	return errs
}

// Emplace constructs an Error from message and args (as accepted by NewError) and appends it to
// errs in place.
func (errs *Errors) Emplace(message string, args ...interface{}) {
	errs.Append(NewError(message, args...))
}

// Append appends each of e to errs in place. Every value in e must be an *Error.
func (errs *Errors) Append(e ...error) {
	for _, err := range e {
		errs.Errors = append(errs.Errors, err.(*Error))
	}
}

// AppendErrors merges the Errors in e into errs in place.
func (errs *Errors) AppendErrors(e ...Errors) {
	for _, other := range e {
		errs.Errors = append(errs.Errors, other.Errors...)
	}
}

// HaveOccurred reports whether errs carries at least one Error. Use this instead of comparing
// errs to a zero value.
func (errs Errors) HaveOccurred() bool {
	return len(errs.Errors) > 0
}

// errorMarshaler implements resultwriter.ValueMarshaler to encode a single *Error as a GraphQL
// response error object.
type errorMarshaler struct {
	err *Error
}

var _ resultwriter.ValueMarshaler = errorMarshaler{}

// MarshalJSONTo implements resultwriter.ValueMarshaler.
func (m errorMarshaler) MarshalJSONTo(stream *resultwriter.Stream) error {
	e := m.err

	stream.WriteObjectStart()

	stream.WriteObjectField("message")
	stream.WriteString(e.Message)

	if len(e.Locations) > 0 {
		stream.WriteMore()
		stream.WriteObjectField("locations")
		stream.WriteArrayStart()
		for i, loc := range e.Locations {
			if i > 0 {
				stream.WriteMore()
			}
			stream.WriteObjectStart()
			stream.WriteObjectField("line")
			stream.WriteUint(loc.Line)
			stream.WriteMore()
			stream.WriteObjectField("column")
			stream.WriteUint(loc.Column)
			stream.WriteObjectEnd()
		}
		stream.WriteArrayEnd()
	}

	if !e.Path.Empty() {
		stream.WriteMore()
		stream.WriteObjectField("path")
		stream.WriteValue(&e.Path)
	}

	if len(e.Extensions) > 0 {
		stream.WriteMore()
		stream.WriteObjectField("extensions")
		stream.WriteInterface(map[string]interface{}(e.Extensions))
	}

	stream.WriteObjectEnd()

	return nil
}

// errorsMarshaler implements resultwriter.ValueMarshaler to encode Errors as a JSON array of
// response error objects.
type errorsMarshaler struct {
	errs Errors
}

var _ resultwriter.ValueMarshaler = errorsMarshaler{}

// MarshalJSONTo implements resultwriter.ValueMarshaler.
func (m errorsMarshaler) MarshalJSONTo(stream *resultwriter.Stream) error {
	stream.WriteArrayStart()
	for i, e := range m.errs.Errors {
		if i > 0 {
			stream.WriteMore()
		}
		stream.WriteValue(errorMarshaler{e})
	}
	stream.WriteArrayEnd()
	return nil
}

// NewErrorsMarshaler returns a resultwriter.ValueMarshaler that encodes errs per the GraphQL
// response format's "errors" entry.
func NewErrorsMarshaler(errs Errors) resultwriter.ValueMarshaler {
	return errorsMarshaler{errs}
}
