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
	"context"
	"fmt"

	"github.com/nimbusgraph/gql/graphql"
	"github.com/nimbusgraph/gql/graphql/ast"
	"github.com/nimbusgraph/gql/graphql/internal/value"
)

// createStub creates the (as yet unpopulated) TypeDefinition standing in for name and records it
// in b.stubs, keyed by pointer identity so that later references to name (including from name's
// own fields, interfaces or possible types) share the exact same TypeDefinition value.
func (b *builder) createStub(name string) error {
	if _, isBuiltin := b.stubs[name]; isBuiltin {
		return graphql.NewSDLError(fmt.Sprintf("Type %q is a built-in scalar and cannot be redefined.", name), b.typeDefs[name])
	}

	switch b.typeDefs[name].(type) {
	case *ast.ScalarTypeDefinition:
		b.stubs[name] = &graphql.ScalarConfig{Name: name}
	case *ast.ObjectTypeDefinition:
		b.stubs[name] = &graphql.ObjectConfig{Name: name}
	case *ast.InterfaceTypeDefinition:
		b.stubs[name] = &graphql.InterfaceConfig{Name: name}
	case *ast.UnionTypeDefinition:
		b.stubs[name] = &graphql.UnionConfig{Name: name}
	case *ast.EnumTypeDefinition:
		b.stubs[name] = &graphql.EnumConfig{Name: name}
	case *ast.InputObjectTypeDefinition:
		b.stubs[name] = &graphql.InputObjectConfig{Name: name}
	default:
		return graphql.NewSDLError(fmt.Sprintf("%T is not a type definition this builder understands.", b.typeDefs[name]), b.typeDefs[name])
	}
	return nil
}

// populateStub fills in the stub created for name with its fields, arguments, interfaces,
// possible types or enum values, merging in whatever name's extensions add.
func (b *builder) populateStub(name string) error {
	switch def := b.typeDefs[name].(type) {
	case *ast.ObjectTypeDefinition:
		return b.populateObject(name, def)
	case *ast.InterfaceTypeDefinition:
		return b.populateInterface(name, def)
	case *ast.UnionTypeDefinition:
		return b.populateUnion(name, def)
	case *ast.EnumTypeDefinition:
		return b.populateEnum(name, def)
	case *ast.ScalarTypeDefinition:
		return b.populateScalar(name, def)
	case *ast.InputObjectTypeDefinition:
		return b.populateInputObject(name, def)
	}
	return nil
}

func (b *builder) populateObject(name string, def *ast.ObjectTypeDefinition) error {
	stub := b.stubs[name].(*graphql.ObjectConfig)
	stub.Description = descriptionOf(def.Description)

	interfaceNames := namedTypeNames(def.Interfaces)
	fieldDefs := append([]*ast.FieldDefinition{}, def.Fields...)
	for _, ext := range b.typeExts[name] {
		oext, ok := ext.(*ast.ObjectTypeExtension)
		if !ok {
			return graphql.NewSDLError(fmt.Sprintf("Cannot apply a %T to object type %q.", ext, name), ext)
		}
		interfaceNames = append(interfaceNames, namedTypeNames(oext.Interfaces)...)
		fieldDefs = append(fieldDefs, oext.Fields...)
	}

	interfaces, err := b.resolveInterfaces(interfaceNames)
	if err != nil {
		return err
	}
	stub.Interfaces = interfaces

	fields, err := b.buildFields(fieldDefs)
	if err != nil {
		return err
	}
	stub.Fields = fields

	return nil
}

func (b *builder) populateInterface(name string, def *ast.InterfaceTypeDefinition) error {
	stub := b.stubs[name].(*graphql.InterfaceConfig)
	stub.Description = descriptionOf(def.Description)

	fieldDefs := append([]*ast.FieldDefinition{}, def.Fields...)
	for _, ext := range b.typeExts[name] {
		iext, ok := ext.(*ast.InterfaceTypeExtension)
		if !ok {
			return graphql.NewSDLError(fmt.Sprintf("Cannot apply a %T to interface type %q.", ext, name), ext)
		}
		fieldDefs = append(fieldDefs, iext.Fields...)
	}

	fields, err := b.buildFields(fieldDefs)
	if err != nil {
		return err
	}
	stub.Fields = fields
	stub.TypeResolver = b.abstractTypeResolver(name, b.interfaceImplementorNames(name))

	return nil
}

func (b *builder) populateUnion(name string, def *ast.UnionTypeDefinition) error {
	stub := b.stubs[name].(*graphql.UnionConfig)
	stub.Description = descriptionOf(def.Description)

	memberNames := namedTypeNames(def.Types)
	for _, ext := range b.typeExts[name] {
		uext, ok := ext.(*ast.UnionTypeExtension)
		if !ok {
			return graphql.NewSDLError(fmt.Sprintf("Cannot apply a %T to union type %q.", ext, name), ext)
		}
		memberNames = append(memberNames, namedTypeNames(uext.Types)...)
	}

	possibleTypes := make([]graphql.ObjectTypeDefinition, len(memberNames))
	for i, memberName := range memberNames {
		memberStub, ok := b.stubs[memberName]
		if !ok {
			return graphql.NewSDLError(fmt.Sprintf("Unknown type %q.", memberName), def)
		}
		obj, ok := memberStub.(graphql.ObjectTypeDefinition)
		if !ok {
			return graphql.NewSDLError(fmt.Sprintf("Union member %q must be an object type.", memberName), def)
		}
		possibleTypes[i] = obj
	}
	stub.PossibleTypes = possibleTypes
	stub.TypeResolver = b.abstractTypeResolver(name, memberNames)

	return nil
}

func (b *builder) populateEnum(name string, def *ast.EnumTypeDefinition) error {
	stub := b.stubs[name].(*graphql.EnumConfig)
	stub.Description = descriptionOf(def.Description)

	valueDefs := append([]*ast.EnumValueDefinition{}, def.Values...)
	for _, ext := range b.typeExts[name] {
		eext, ok := ext.(*ast.EnumTypeExtension)
		if !ok {
			return graphql.NewSDLError(fmt.Sprintf("Cannot apply a %T to enum type %q.", ext, name), ext)
		}
		valueDefs = append(valueDefs, eext.Values...)
	}

	values := make(graphql.EnumValueDefinitionMap, len(valueDefs))
	for _, v := range valueDefs {
		// Value is left unset: it defaults to the member's own name, which is the only sensible
		// internal representation SDL text alone can express.
		values[v.Name.Value()] = graphql.EnumValueDefinition{
			Description: descriptionOf(v.Description),
			Deprecation: deprecationOf(v.Directives),
		}
	}
	stub.Values = values

	return nil
}

// populateScalar equips a custom scalar declared in SDL with pass-through coercers: SDL alone
// carries no host-language coercion logic, so the only generic behavior available is to accept
// values (and their AST literal form, via ast.Value.Interface) unchanged.
func (b *builder) populateScalar(name string, def *ast.ScalarTypeDefinition) error {
	stub := b.stubs[name].(*graphql.ScalarConfig)
	stub.Description = descriptionOf(def.Description)
	stub.ResultCoercer = graphql.CoerceScalarResultFunc(func(v interface{}) (interface{}, error) {
		return v, nil
	})
	stub.InputCoercer = graphql.ScalarInputCoercerFuncs{
		CoerceVariableValueFunc: func(v interface{}) (interface{}, error) {
			return v, nil
		},
		CoerceArgumentValueFunc: func(v ast.Value) (interface{}, error) {
			return v.Interface(), nil
		},
	}

	return nil
}

func (b *builder) populateInputObject(name string, def *ast.InputObjectTypeDefinition) error {
	stub := b.stubs[name].(*graphql.InputObjectConfig)
	stub.Description = descriptionOf(def.Description)

	fieldDefs := append([]*ast.InputValueDefinition{}, def.Fields...)
	for _, ext := range b.typeExts[name] {
		ioext, ok := ext.(*ast.InputObjectTypeExtension)
		if !ok {
			return graphql.NewSDLError(fmt.Sprintf("Cannot apply a %T to input object type %q.", ext, name), ext)
		}
		fieldDefs = append(fieldDefs, ioext.Fields...)
	}

	fields := make(graphql.InputFields, len(fieldDefs))
	for _, fdef := range fieldDefs {
		typeDef, err := b.resolveType(fdef.Type)
		if err != nil {
			return err
		}
		defaultValue, err := b.inputFieldDefaultValue(fdef.DefaultValue, typeDef)
		if err != nil {
			return err
		}
		fields[fdef.Name.Value()] = graphql.InputFieldDefinition{
			Description:  descriptionOf(fdef.Description),
			Type:         typeDef,
			DefaultValue: defaultValue,
		}
	}
	stub.Fields = fields

	return nil
}

// buildFields resolves a set of field definitions (already merged with any extensions) into a
// graphql.Fields ready to assign to an object or interface stub. Resolver is deliberately left
// unset: the executor falls back to its own DefaultFieldResolver for fields with none, which is
// the only sensible behavior for fields whose resolution logic SDL text cannot express.
func (b *builder) buildFields(defs []*ast.FieldDefinition) (graphql.Fields, error) {
	if len(defs) == 0 {
		return nil, nil
	}

	fields := make(graphql.Fields, len(defs))
	for _, def := range defs {
		typeDef, err := b.resolveType(def.Type)
		if err != nil {
			return nil, err
		}
		args, err := b.buildArgumentConfigMap(def.Arguments)
		if err != nil {
			return nil, err
		}
		fields[def.Name.Value()] = graphql.FieldConfig{
			Description: descriptionOf(def.Description),
			Type:        typeDef,
			Args:        args,
			Deprecation: deprecationOf(def.Directives),
		}
	}
	return fields, nil
}

// buildArgumentConfigMap resolves a set of input value definitions into a graphql.ArgumentConfigMap.
// It is shared by field arguments and directive arguments: SDL gives both the same grammar.
func (b *builder) buildArgumentConfigMap(defs []*ast.InputValueDefinition) (graphql.ArgumentConfigMap, error) {
	if len(defs) == 0 {
		return nil, nil
	}

	args := make(graphql.ArgumentConfigMap, len(defs))
	for _, def := range defs {
		typeDef, err := b.resolveType(def.Type)
		if err != nil {
			return nil, err
		}
		defaultValue, err := b.argDefaultValue(def.DefaultValue, typeDef)
		if err != nil {
			return nil, err
		}
		args[def.Name.Value()] = graphql.ArgumentConfig{
			Description:  descriptionOf(def.Description),
			Type:         typeDef,
			DefaultValue: defaultValue,
		}
	}
	return args, nil
}

// resolveInterfaces looks up each interface name against the stub map, rejecting references to
// unknown or non-interface types.
func (b *builder) resolveInterfaces(names []string) ([]graphql.InterfaceTypeDefinition, error) {
	if len(names) == 0 {
		return nil, nil
	}

	ifaces := make([]graphql.InterfaceTypeDefinition, len(names))
	for i, name := range names {
		stub, ok := b.stubs[name]
		if !ok {
			return nil, graphql.NewSDLError(fmt.Sprintf("Unknown interface %q.", name))
		}
		iface, ok := stub.(graphql.InterfaceTypeDefinition)
		if !ok {
			return nil, graphql.NewSDLError(fmt.Sprintf("Type %q is not an interface and cannot be implemented.", name))
		}
		ifaces[i] = iface
	}
	return ifaces, nil
}

// resolveType resolves an ast.Type reference (possibly wrapped in List/NonNull) against the
// stub map built in pass 2, recursively wrapping the result the same way the reference is
// wrapped.
func (b *builder) resolveType(t ast.Type) (graphql.TypeDefinition, error) {
	switch t := t.(type) {
	case ast.NamedType:
		name := t.Name.Value()
		typeDef, ok := b.stubs[name]
		if !ok {
			return nil, graphql.NewSDLError(fmt.Sprintf("Unknown type %q.", name), t)
		}
		return typeDef, nil

	case ast.ListType:
		elementTypeDef, err := b.resolveType(t.ItemType)
		if err != nil {
			return nil, err
		}
		return graphql.ListOf(elementTypeDef), nil

	case ast.NonNullType:
		elementTypeDef, err := b.resolveType(t.Type)
		if err != nil {
			return nil, err
		}
		return graphql.NonNullOf(elementTypeDef), nil
	}
	return nil, graphql.NewSDLError(fmt.Sprintf("%T is not a supported type reference.", t), t)
}

// argDefaultValue coerces an argument's default value literal, if any, into the representation
// ArgumentConfig.DefaultValue expects.
func (b *builder) argDefaultValue(raw ast.Value, typeDef graphql.TypeDefinition) (interface{}, error) {
	if raw == nil {
		return nil, nil
	}
	if _, isNull := raw.(ast.NullValue); isNull {
		return graphql.NilArgumentDefaultValue, nil
	}
	t, err := graphql.NewType(typeDef)
	if err != nil {
		return nil, err
	}
	return value.CoerceFromAST(raw, t, graphql.NoVariableValues())
}

// inputFieldDefaultValue is argDefaultValue's counterpart for InputFieldDefinition.DefaultValue.
func (b *builder) inputFieldDefaultValue(raw ast.Value, typeDef graphql.TypeDefinition) (interface{}, error) {
	if raw == nil {
		return nil, nil
	}
	if _, isNull := raw.(ast.NullValue); isNull {
		return graphql.NilInputFieldDefaultValue, nil
	}
	t, err := graphql.NewType(typeDef)
	if err != nil {
		return nil, err
	}
	return value.CoerceFromAST(raw, t, graphql.NoVariableValues())
}

// interfaceImplementorNames scans every object type definition (including those reached only
// through an extension) for one that declares it implements the named interface.
func (b *builder) interfaceImplementorNames(name string) []string {
	var names []string
	for objName, def := range b.typeDefs {
		objDef, ok := def.(*ast.ObjectTypeDefinition)
		if !ok {
			continue
		}

		implements := namedTypeNamesContain(objDef.Interfaces, name)
		if !implements {
			for _, ext := range b.typeExts[objName] {
				if oext, ok := ext.(*ast.ObjectTypeExtension); ok && namedTypeNamesContain(oext.Interfaces, name) {
					implements = true
					break
				}
			}
		}
		if implements {
			names = append(names, objName)
		}
	}
	return names
}

// typenameOf extracts a type-name discriminator from a resolved value, either a "__typename"
// entry on a map-shaped value or a Typename() method, so that SDL-only interfaces and unions
// (which carry no Go resolveType logic of their own) can still pick a concrete Object type at
// execution time.
func typenameOf(v interface{}) (string, error) {
	switch v := v.(type) {
	case map[string]interface{}:
		if name, ok := v["__typename"].(string); ok && name != "" {
			return name, nil
		}
	case interface{ Typename() string }:
		return v.Typename(), nil
	}
	return "", fmt.Errorf("value of type %T carries no __typename", v)
}

// abstractTypeResolver builds the TypeResolver an SDL-declared interface or union is finalized
// with. memberNames is the set of object type names known (at SDL-build time) to be acceptable
// concrete types; the resolver matches it against the runtime value's __typename.
func (b *builder) abstractTypeResolver(typeName string, memberNames []string) graphql.TypeResolver {
	return graphql.TypeResolverFunc(func(ctx context.Context, v interface{}, info graphql.ResolveInfo) (graphql.Object, error) {
		name, err := typenameOf(v)
		if err != nil {
			return nil, fmt.Errorf("cannot resolve abstract type %s: %v", typeName, err)
		}
		for _, memberName := range memberNames {
			if memberName != name {
				continue
			}
			t, err := graphql.NewType(b.stubs[memberName])
			if err != nil {
				return nil, err
			}
			obj, ok := t.(graphql.Object)
			if !ok {
				return nil, fmt.Errorf("cannot resolve abstract type %s: %q is not an object type", typeName, memberName)
			}
			return obj, nil
		}
		return nil, fmt.Errorf("cannot resolve abstract type %s: %q is not one of its members", typeName, name)
	})
}

func namedTypeNames(types []ast.NamedType) []string {
	if len(types) == 0 {
		return nil
	}
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = t.Name.Value()
	}
	return names
}

func namedTypeNamesContain(types []ast.NamedType, name string) bool {
	for _, t := range types {
		if t.Name.Value() == name {
			return true
		}
	}
	return false
}

func descriptionOf(d ast.Description) string {
	if !d.HasDescription() {
		return ""
	}
	return d.Value()
}

// deprecationOf looks for a "@deprecated" directive among directives and, if found, returns the
// Deprecation it describes, falling back to graphql.DefaultDeprecationReason when no "reason"
// argument was given.
func deprecationOf(directives ast.Directives) *graphql.Deprecation {
	for _, d := range directives {
		if d.Name.Value() != "deprecated" {
			continue
		}
		reason := graphql.DefaultDeprecationReason
		for _, arg := range d.Arguments {
			if arg.Name.Value() != "reason" {
				continue
			}
			if s, ok := arg.Value.(ast.StringValue); ok {
				reason = s.Value()
			}
		}
		return &graphql.Deprecation{Reason: reason}
	}
	return nil
}
