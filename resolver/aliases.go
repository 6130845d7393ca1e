/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package resolver

import (
	"fmt"
	"strings"

	"bennypowers.dev/tokenbuild/token"
)

// ResolveAliases substitutes every reference in the token list.
// A value that is exactly one reference takes the referenced token's value
// unchanged; references embedded in a longer string are interpolated as
// text. Updates Value and IsResolved on each token.
func ResolveAliases(tokens []*token.Token) error {
	graph := BuildDependencyGraph(tokens)

	if missing := graph.Missing(); len(missing) > 0 {
		return fmt.Errorf("%w: %s references {%s}", ErrUnresolvedReference, missing[0][0], missing[0][1])
	}

	sortedPaths, err := graph.TopologicalSort()
	if err != nil {
		return err
	}

	tokenByPath := make(map[string]*token.Token)
	for _, tok := range tokens {
		tokenByPath[tok.DotPath()] = tok
	}

	for _, path := range sortedPaths {
		tok := tokenByPath[path]
		if tok == nil {
			continue
		}
		resolveToken(tok, tokenByPath)
	}

	return nil
}

func resolveToken(tok *token.Token, tokenByPath map[string]*token.Token) {
	if tok.IsResolved {
		return
	}
	if s, ok := tok.Value.(string); ok && strings.Contains(s, "{") {
		tok.Value = resolveString(s, tokenByPath)
	}
	tok.IsResolved = true
}

func resolveString(value string, tokenByPath map[string]*token.Token) any {
	matches := ReferencePattern.FindAllStringSubmatchIndex(value, -1)
	if len(matches) == 0 {
		return value
	}

	// whole-value reference keeps the referenced value's type
	if len(matches) == 1 && matches[0][0] == 0 && matches[0][1] == len(value) {
		if ref := tokenByPath[refPath(value[matches[0][2]:matches[0][3]])]; ref != nil {
			return ref.Value
		}
		return value
	}

	return ReferencePattern.ReplaceAllStringFunc(value, func(match string) string {
		ref := tokenByPath[refPath(match[1:len(match)-1])]
		if ref == nil {
			return match
		}
		return token.FormatValue(ref.Value)
	})
}

// Chain returns the reference chain starting at tok: the dot path of each
// token reached by following whole-value references in RawValue.
func Chain(tok *token.Token, tokens []*token.Token) []string {
	tokenByPath := make(map[string]*token.Token)
	for _, t := range tokens {
		tokenByPath[t.DotPath()] = t
	}

	var chain []string
	seen := map[string]bool{tok.DotPath(): true}
	current := tok
	for {
		refs := References(current.RawValue)
		if len(refs) != 1 || seen[refs[0]] {
			return chain
		}
		chain = append(chain, refs[0])
		seen[refs[0]] = true
		next := tokenByPath[refs[0]]
		if next == nil {
			return chain
		}
		current = next
	}
}
