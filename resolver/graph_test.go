/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package resolver_test

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"bennypowers.dev/tokenbuild/resolver"
	"bennypowers.dev/tokenbuild/token"
)

func tok(path, value string) *token.Token {
	return &token.Token{Path: strings.Split(path, "."), Value: value, RawValue: value}
}

func TestReferences(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  []string
	}{
		{"whole", "{color.base.primary}", []string{"color.base.primary"}},
		{"value suffix", "{color.base.primary.value}", []string{"color.base.primary"}},
		{"embedded", "0 0 0 1px {color.ring}", []string{"color.ring"}},
		{"several", "{a.b} {c.d.value}", []string{"a.b", "c.d"}},
		{"none", "#FFFFFF", nil},
		{"non-string", 4.0, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resolver.References(tt.value)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("References(%v) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestDependencyGraph_NoCycle(t *testing.T) {
	tokens := []*token.Token{
		tok("a", "1"),
		tok("b", "{a}"),
		tok("c", "{b.value}"),
	}

	graph := resolver.BuildDependencyGraph(tokens)

	if graph.HasCycle() {
		t.Error("expected no cycle")
	}
	if got := graph.Dependents("a"); !reflect.DeepEqual(got, []string{"b"}) {
		t.Errorf("Dependents(a) = %v", got)
	}
	if got := graph.Dependencies("c"); !reflect.DeepEqual(got, []string{"b"}) {
		t.Errorf("Dependencies(c) = %v", got)
	}
}

func TestDependencyGraph_Cycle(t *testing.T) {
	tokens := []*token.Token{
		tok("a", "{c}"),
		tok("b", "{a}"),
		tok("c", "{b}"),
	}

	graph := resolver.BuildDependencyGraph(tokens)

	if !graph.HasCycle() {
		t.Error("expected cycle")
	}

	cycle := graph.FindCycle()
	if len(cycle) != 4 || cycle[0] != cycle[len(cycle)-1] {
		t.Errorf("expected closed cycle path, got %v", cycle)
	}

	if _, err := graph.TopologicalSort(); !errors.Is(err, resolver.ErrCircularReference) {
		t.Errorf("expected ErrCircularReference, got %v", err)
	}
}

func TestDependencyGraph_TopologicalSort(t *testing.T) {
	tokens := []*token.Token{
		tok("alias", "{base}"),
		tok("other", "x"),
		tok("base", "y"),
	}

	got, err := resolver.BuildDependencyGraph(tokens).TopologicalSort()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"base", "alias", "other"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TopologicalSort() = %v, want %v", got, want)
	}
}
