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

// Package schemavalidator enforces the type-system invariants a graphql.Schema must satisfy.
// Validate runs once, after a Schema has been built (whether programmatically or from SDL via
// sdlbuilder), and reports the first violation found as a *graphql.Error of ErrKindSchema.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Type-System
package schemavalidator

import (
	"fmt"
	"regexp"

	"github.com/nimbusgraph/gql/graphql"
)

// nameRe is the spec-conformant name grammar shared by every named type, field, argument, enum
// value and directive.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Names
var nameRe = regexp.MustCompile(`^[_A-Za-z][_A-Za-z0-9]*$`)

// Validate checks every type-system invariant against schema and returns the first violation
// found as a *graphql.Error, or nil if the schema is valid.
func Validate(schema graphql.Schema) error {
	v := &validator{schema: schema}
	return v.run()
}

type validator struct {
	schema graphql.Schema
}

// run walks the schema once, stopping and returning as soon as a rule fails.
func (v *validator) run() error {
	if err := v.checkRootTypes(); err != nil {
		return err
	}

	names := v.schema.TypeMap().KeyIterator()
	for {
		name, iterErr := names.Next()
		if iterErr != nil {
			break
		}

		t := v.schema.TypeMap().Lookup(name.(string))
		if err := v.checkName(t.(graphql.TypeWithName).Name(), "type"); err != nil {
			return err
		}
		if err := v.checkType(t); err != nil {
			return err
		}
	}

	for _, directive := range v.schema.Directives() {
		if err := v.checkDirective(directive); err != nil {
			return err
		}
	}

	return nil
}

// checkRootTypes verifies the presence of the query root type. Go's static typing already
// guarantees Query/Mutation/Subscription are graphql.Object when set, so only presence needs
// checking here.
func (v *validator) checkRootTypes() error {
	if v.schema.Query() == nil {
		return graphql.NewSchemaError("Schema must define a query root type.")
	}
	return nil
}

func (v *validator) checkName(name string, what string) error {
	if !nameRe.MatchString(name) {
		return graphql.NewSchemaError(fmt.Sprintf("%s name %q is not a valid GraphQL name.", what, name))
	}
	return nil
}

func (v *validator) checkType(t graphql.Type) error {
	switch t := t.(type) {
	case graphql.Object:
		return v.checkFieldsOwner(t.Name(), t.Fields(), t.Interfaces())

	case graphql.Interface:
		return v.checkFieldsOwner(t.Name(), t.Fields(), nil)

	case graphql.InputObject:
		return v.checkInputObject(t)

	case graphql.Union:
		return v.checkUnion(t)

	case graphql.Enum:
		return v.checkEnum(t)

	case graphql.Scalar:
		// A Scalar has no further structure to validate.
		return nil
	}
	return nil
}

// checkFieldsOwner validates the fields of an Object or Interface type (every Object/Interface
// must declare at least one field) and, for an Object, that it correctly implements every
// interface it claims to.
func (v *validator) checkFieldsOwner(typeName string, fields graphql.FieldMap, interfaces []graphql.Interface) error {
	if len(fields) == 0 {
		return graphql.NewSchemaError(fmt.Sprintf("Type %q must define one or more fields.", typeName))
	}

	for fieldName, field := range fields {
		if err := v.checkName(fieldName, "field"); err != nil {
			return err
		}
		if !graphql.IsOutputType(field.Type()) {
			return graphql.NewSchemaError(fmt.Sprintf(
				"Field %s.%s must return an output type but returns %s.", typeName, fieldName, field.Type()))
		}
		for _, arg := range field.Args() {
			if err := v.checkName(arg.Name(), "argument"); err != nil {
				return err
			}
			if !graphql.IsInputType(arg.Type()) {
				return graphql.NewSchemaError(fmt.Sprintf(
					"Argument %s.%s(%s:) must accept an input type but accepts %s.",
					typeName, fieldName, arg.Name(), arg.Type()))
			}
		}
	}

	seenInterfaces := map[string]bool{}
	for _, iface := range interfaces {
		if seenInterfaces[iface.Name()] {
			return graphql.NewSchemaError(fmt.Sprintf(
				"Type %q can only implement interface %q once.", typeName, iface.Name()))
		}
		seenInterfaces[iface.Name()] = true

		if err := v.checkInterfaceImplementation(typeName, fields, iface); err != nil {
			return err
		}
	}

	return nil
}

// checkInterfaceImplementation enforces that typeName's fields satisfy everything iface
// declares.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Objects-Type-Validation
func (v *validator) checkInterfaceImplementation(typeName string, fields graphql.FieldMap, iface graphql.Interface) error {
	for fieldName, ifaceField := range iface.Fields() {
		objField, ok := fields[fieldName]
		if !ok {
			return graphql.NewSchemaError(fmt.Sprintf(
				"Interface field %s.%s expected but %s does not provide it.", iface.Name(), fieldName, typeName))
		}

		if !graphql.IsTypeSubTypeOf(v.schema, objField.Type(), ifaceField.Type()) {
			return graphql.NewSchemaError(fmt.Sprintf(
				"Interface field %s.%s expects type %s but %s.%s is type %s.",
				iface.Name(), fieldName, ifaceField.Type(), typeName, fieldName, objField.Type()))
		}

		objArgsByName := map[string]*graphql.Argument{}
		objArgs := objField.Args()
		for i := range objArgs {
			objArgsByName[objArgs[i].Name()] = &objArgs[i]
		}

		for _, ifaceArg := range ifaceField.Args() {
			objArg, ok := objArgsByName[ifaceArg.Name()]
			if !ok {
				return graphql.NewSchemaError(fmt.Sprintf(
					"Interface field argument %s.%s(%s:) expected but %s.%s does not provide it.",
					iface.Name(), fieldName, ifaceArg.Name(), typeName, fieldName))
			}
			if objArg.Type() != ifaceArg.Type() {
				return graphql.NewSchemaError(fmt.Sprintf(
					"Interface field argument %s.%s(%s:) expects type %s but %s.%s(%s:) is type %s.",
					iface.Name(), fieldName, ifaceArg.Name(), ifaceArg.Type(),
					typeName, fieldName, ifaceArg.Name(), objArg.Type()))
			}
			delete(objArgsByName, ifaceArg.Name())
		}

		// Any argument objField declares beyond what iface requires must be nullable, so that a
		// caller satisfying iface's contract can omit it.
		for extraName, extraArg := range objArgsByName {
			if graphql.IsNonNullType(extraArg.Type()) {
				return graphql.NewSchemaError(fmt.Sprintf(
					"Object field argument %s.%s(%s:) is not on interface %s.%s and must be nullable, but is type %s.",
					typeName, fieldName, extraName, iface.Name(), fieldName, extraArg.Type()))
			}
		}
	}

	return nil
}

func (v *validator) checkInputObject(t graphql.InputObject) error {
	fields := t.Fields()
	if len(fields) == 0 {
		return graphql.NewSchemaError(fmt.Sprintf("Input object %q must define one or more fields.", t.Name()))
	}
	for fieldName, field := range fields {
		if err := v.checkName(fieldName, "input field"); err != nil {
			return err
		}
		if !graphql.IsInputType(field.Type()) {
			return graphql.NewSchemaError(fmt.Sprintf(
				"Input field %s.%s must be an input type but is %s.", t.Name(), fieldName, field.Type()))
		}
	}
	return nil
}

func (v *validator) checkUnion(t graphql.Union) error {
	if t.PossibleTypes().Size() == 0 {
		return graphql.NewSchemaError(fmt.Sprintf("Union %q must define one or more member types.", t.Name()))
	}
	return nil
}

func (v *validator) checkEnum(t graphql.Enum) error {
	values := t.Values()
	if len(values) == 0 {
		return graphql.NewSchemaError(fmt.Sprintf("Enum %q must define one or more values.", t.Name()))
	}
	for valueName := range values {
		if err := v.checkName(valueName, "enum value"); err != nil {
			return err
		}
	}
	return nil
}

func (v *validator) checkDirective(directive graphql.Directive) error {
	if err := v.checkName(directive.Name(), "directive"); err != nil {
		return err
	}
	for _, arg := range directive.Args() {
		if err := v.checkName(arg.Name(), "argument"); err != nil {
			return err
		}
		if !graphql.IsInputType(arg.Type()) {
			return graphql.NewSchemaError(fmt.Sprintf(
				"Argument @%s(%s:) must accept an input type but accepts %s.",
				directive.Name(), arg.Name(), arg.Type()))
		}
	}
	return nil
}
