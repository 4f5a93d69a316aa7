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

// Package visitor implements AST traversal.
//
// A Visitor is invoked with Enter before a node's children are walked and Leave after. Enter's
// Result controls the traversal: Continue descends into the node's children as usual, SkipSubTree
// skips them (Leave is still invoked for the node itself), and Break halts the whole walk
// immediately.
//
// Rule-style consumers rarely implement Visitor directly; NodeVisitor lets a caller supply only the
// Enter/Leave funcs it cares about, defaulting every other node kind to Continue/no-op.
//
// Many validation rules need to run over a document in a single pass. Parallel composes any number
// of Visitors so each behaves as though it alone were walking the tree: one visitor returning
// SkipSubTree or Break never affects its siblings. Chain instead composes visitors that must run in
// a fixed order against shared state (the type-info visitor updating its stacks before a rule reads
// them, for instance); every visitor in a Chain always runs, and the most restrictive Result wins.
package visitor

import "github.com/nimbusgraph/gql/graphql/ast"

// Result controls how Walk proceeds after a node's Enter callback returns.
type Result int

// Enumeration of Result.
const (
	// Continue the traversal as normal.
	Continue Result = iota

	// SkipSubTree skips over the children of the node just entered. Leave still runs for it.
	SkipSubTree

	// Break stops the traversal immediately. No further Enter/Leave calls are made.
	Break
)

// Visitor receives Enter/Leave callbacks for every node Walk visits.
type Visitor interface {
	Enter(node ast.Node) Result
	Leave(node ast.Node)
}

// NodeVisitor adapts plain functions into a Visitor. Either field may be left nil.
type NodeVisitor struct {
	EnterFunc func(node ast.Node) Result
	LeaveFunc func(node ast.Node)
}

// Enter implements Visitor.
func (v *NodeVisitor) Enter(node ast.Node) Result {
	if v.EnterFunc == nil {
		return Continue
	}
	return v.EnterFunc(node)
}

// Leave implements Visitor.
func (v *NodeVisitor) Leave(node ast.Node) {
	if v.LeaveFunc != nil {
		v.LeaveFunc(node)
	}
}

// Walk performs a preorder depth-first traversal of node, invoking v's Enter before descending into
// children and Leave after. It returns Break if the traversal was halted early, Continue otherwise.
func Walk(node ast.Node, v Visitor) Result {
	if node == nil {
		return Continue
	}

	result := v.Enter(node)
	switch result {
	case Break:
		return Break
	case SkipSubTree:
		v.Leave(node)
		return Continue
	}

	if walkChildren(node, v) == Break {
		return Break
	}

	v.Leave(node)
	return Continue
}

func walkChildren(node ast.Node, v Visitor) Result {
	switch node := node.(type) {
	case ast.Document:
		for _, def := range node.Definitions {
			if Walk(def, v) == Break {
				return Break
			}
		}

	case *ast.OperationDefinition:
		for _, varDef := range node.VariableDefinitions {
			if Walk(varDef, v) == Break {
				return Break
			}
		}
		if walkDirectives(node.Directives, v) == Break {
			return Break
		}
		if Walk(node.SelectionSet, v) == Break {
			return Break
		}

	case *ast.FragmentDefinition:
		if walkDirectives(node.Directives, v) == Break {
			return Break
		}
		if Walk(node.SelectionSet, v) == Break {
			return Break
		}

	case ast.SelectionSet:
		for _, sel := range node {
			if Walk(sel, v) == Break {
				return Break
			}
		}

	case *ast.Field:
		for _, arg := range node.Arguments {
			if Walk(arg, v) == Break {
				return Break
			}
		}
		if walkDirectives(node.Directives, v) == Break {
			return Break
		}
		if Walk(node.SelectionSet, v) == Break {
			return Break
		}

	case *ast.FragmentSpread:
		if walkDirectives(node.Directives, v) == Break {
			return Break
		}

	case *ast.InlineFragment:
		if walkDirectives(node.Directives, v) == Break {
			return Break
		}
		if Walk(node.SelectionSet, v) == Break {
			return Break
		}

	case *ast.Argument:
		if Walk(node.Value, v) == Break {
			return Break
		}

	case *ast.VariableDefinition:
		if node.DefaultValue != nil {
			if Walk(node.DefaultValue, v) == Break {
				return Break
			}
		}
		if walkDirectives(node.Directives, v) == Break {
			return Break
		}

	case ast.ListValue:
		for _, item := range node.Values() {
			if Walk(item, v) == Break {
				return Break
			}
		}

	case ast.ObjectValue:
		for _, field := range node.Fields() {
			if Walk(field.Value, v) == Break {
				return Break
			}
		}

	case *ast.Directive:
		for _, arg := range node.Arguments {
			if Walk(arg, v) == Break {
				return Break
			}
		}
	}

	return Continue
}

func walkDirectives(directives ast.Directives, v Visitor) Result {
	for _, d := range directives {
		if Walk(d, v) == Break {
			return Break
		}
	}
	return Continue
}

//===----------------------------------------------------------------------------------------====//
// Composition
//===----------------------------------------------------------------------------------------====//

// Chain composes visitors that run in the given order against every node, each always receiving
// Enter/Leave regardless of what the others returned. The Result returned by Enter is the most
// restrictive of the individual results (Break beats SkipSubTree beats Continue): a composed rule
// that wants to keep descending even though, say, a type-info visitor ahead of it reports
// SkipSubTree for unrelated reasons should be composed with Parallel instead.
func Chain(visitors ...Visitor) Visitor {
	return &chainVisitor{visitors: visitors}
}

type chainVisitor struct {
	visitors []Visitor
}

func (c *chainVisitor) Enter(node ast.Node) Result {
	result := Continue
	for _, v := range c.visitors {
		if r := v.Enter(node); r > result {
			result = r
		}
	}
	return result
}

func (c *chainVisitor) Leave(node ast.Node) {
	for _, v := range c.visitors {
		v.Leave(node)
	}
}

// Parallel composes independent visitors into one so a single Walk drives all of them together
// in one traversal. Each visitor behaves as though it alone were walking the tree: a visitor returning
// SkipSubTree only skips its own view of the subtree, and one returning Break is simply excluded
// from the rest of the traversal rather than stopping its siblings.
func Parallel(visitors ...Visitor) Visitor {
	return &parallelVisitor{
		visitors:  visitors,
		skipUntil: make([]ast.Node, len(visitors)),
		done:      make([]bool, len(visitors)),
	}
}

type parallelVisitor struct {
	visitors  []Visitor
	skipUntil []ast.Node // non-nil: this visitor is skipping until this node is left
	done      []bool     // true: this visitor returned Break and takes no further part
}

func (p *parallelVisitor) Enter(node ast.Node) Result {
	for i, v := range p.visitors {
		if p.done[i] || p.skipUntil[i] != nil {
			continue
		}
		switch v.Enter(node) {
		case SkipSubTree:
			p.skipUntil[i] = node
		case Break:
			p.done[i] = true
		}
	}
	return Continue
}

func (p *parallelVisitor) Leave(node ast.Node) {
	for i, v := range p.visitors {
		if p.done[i] {
			continue
		}
		if p.skipUntil[i] != nil {
			if p.skipUntil[i] != node {
				continue
			}
			p.skipUntil[i] = nil
		}
		v.Leave(node)
	}
}
