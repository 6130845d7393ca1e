/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package resolver provides token reference resolution.
package resolver

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"bennypowers.dev/tokenbuild/token"
)

var (
	// ErrCircularReference is returned when references form a cycle.
	ErrCircularReference = errors.New("circular reference")

	// ErrUnresolvedReference is returned when a reference names no token.
	ErrUnresolvedReference = errors.New("unresolved reference")
)

// ReferencePattern matches curly brace references like {color.base.primary}
// or {color.base.primary.value}.
var ReferencePattern = regexp.MustCompile(`\{([^{}]+)\}`)

// References returns the dot paths referenced by value, with any trailing
// ".value" removed. Non-string values have no references.
func References(value any) []string {
	s, ok := value.(string)
	if !ok || !strings.Contains(s, "{") {
		return nil
	}
	var refs []string
	for _, match := range ReferencePattern.FindAllStringSubmatch(s, -1) {
		refs = append(refs, refPath(match[1]))
	}
	return refs
}

// HasReferences reports whether value contains at least one reference.
func HasReferences(value any) bool {
	return len(References(value)) > 0
}

func refPath(ref string) string {
	return strings.TrimSuffix(strings.TrimSpace(ref), ".value")
}

// DependencyGraph represents a directed graph of token dependencies, keyed
// by dot path.
type DependencyGraph struct {
	dependencies map[string][]string
	dependents   map[string][]string
	nodes        map[string]bool
	order        []string
}

// BuildDependencyGraph builds a dependency graph from a list of tokens.
func BuildDependencyGraph(tokens []*token.Token) *DependencyGraph {
	graph := &DependencyGraph{
		dependencies: make(map[string][]string),
		dependents:   make(map[string][]string),
		nodes:        make(map[string]bool),
	}

	for _, tok := range tokens {
		key := tok.DotPath()
		if !graph.nodes[key] {
			graph.order = append(graph.order, key)
		}
		graph.nodes[key] = true
	}

	for _, tok := range tokens {
		deps := References(tok.Value)
		if len(deps) > 0 {
			key := tok.DotPath()
			graph.dependencies[key] = deps
			for _, dep := range deps {
				graph.dependents[dep] = append(graph.dependents[dep], key)
			}
		}
	}

	return graph
}

// Dependencies returns the paths that the given token depends on.
func (g *DependencyGraph) Dependencies(path string) []string {
	if deps, ok := g.dependencies[path]; ok {
		return deps
	}
	return []string{}
}

// Dependents returns the paths of tokens that depend on the given token.
func (g *DependencyGraph) Dependents(path string) []string {
	if deps, ok := g.dependents[path]; ok {
		return deps
	}
	return []string{}
}

// Missing returns every (token, reference) pair whose reference names no
// token, in token order.
func (g *DependencyGraph) Missing() [][2]string {
	var missing [][2]string
	for _, node := range g.order {
		for _, dep := range g.dependencies[node] {
			if !g.nodes[dep] {
				missing = append(missing, [2]string{node, dep})
			}
		}
	}
	return missing
}

// HasCycle returns true if the graph contains a circular dependency.
func (g *DependencyGraph) HasCycle() bool {
	return g.FindCycle() != nil
}

// FindCycle returns the cycle path if one exists, or nil if no cycle.
func (g *DependencyGraph) FindCycle() []string {
	visited := make(map[string]bool)
	recStack := make(map[string]bool)
	path := []string{}

	for _, node := range g.order {
		if cycle := g.findCycleDFS(node, visited, recStack, path); cycle != nil {
			return cycle
		}
	}
	return nil
}

func (g *DependencyGraph) findCycleDFS(node string, visited, recStack map[string]bool, path []string) []string {
	if recStack[node] {
		cycleStart := -1
		for i, n := range path {
			if n == node {
				cycleStart = i
				break
			}
		}
		if cycleStart == -1 {
			panic(fmt.Sprintf("cycle detection invariant violated: node %q in recStack but not in path %v", node, path))
		}
		return append(path[cycleStart:], node)
	}
	if visited[node] {
		return nil
	}

	visited[node] = true
	recStack[node] = true
	path = append(path, node)

	for _, dep := range g.dependencies[node] {
		if cycle := g.findCycleDFS(dep, visited, recStack, path); cycle != nil {
			return cycle
		}
	}

	recStack[node] = false
	return nil
}

// TopologicalSort returns token paths in dependency order (dependencies
// first), otherwise keeping token order. Returns error if graph contains a
// cycle.
func (g *DependencyGraph) TopologicalSort() ([]string, error) {
	if cycle := g.FindCycle(); cycle != nil {
		return nil, fmt.Errorf("%w: %s", ErrCircularReference, strings.Join(cycle, " -> "))
	}

	visited := make(map[string]bool)
	result := []string{}

	for _, node := range g.order {
		if !visited[node] {
			g.topologicalSortDFS(node, visited, &result)
		}
	}

	return result, nil
}

func (g *DependencyGraph) topologicalSortDFS(node string, visited map[string]bool, stack *[]string) {
	visited[node] = true

	for _, dep := range g.dependencies[node] {
		if !visited[dep] && g.nodes[dep] {
			g.topologicalSortDFS(dep, visited, stack)
		}
	}

	*stack = append(*stack, node)
}
