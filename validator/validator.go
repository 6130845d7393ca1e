/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package validator checks token source trees for problems the build
// pipelines would otherwise pass through silently.
package validator

import (
	"fmt"
	"regexp"
	"strings"

	"bennypowers.dev/tokenbuild/resolver"
	"bennypowers.dev/tokenbuild/token"
)

// Severity ranks a ValidationError.
type Severity int

const (
	// SeverityWarning marks input the pipelines accept but probably mishandle.
	SeverityWarning Severity = iota
	// SeverityError marks input that breaks a build or corrupts its output.
	SeverityError
)

// String returns the severity's name.
func (s Severity) String() string {
	if s == SeverityError {
		return "error"
	}
	return "warning"
}

// ValidationError represents a problem in a token file.
type ValidationError struct {
	// Severity defaults to SeverityWarning.
	Severity Severity
	// FilePath is the path to the file containing the error.
	FilePath string
	// Path is the dot path to the problematic element.
	Path string
	// Message describes what's wrong.
	Message string
	// Suggestion provides an actionable fix.
	Suggestion string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var sb strings.Builder
	if e.FilePath != "" {
		sb.WriteString(e.FilePath)
		sb.WriteString(": ")
	}
	if e.Path != "" {
		sb.WriteString(e.Path)
		sb.WriteString(": ")
	}
	sb.WriteString(e.Message)
	if e.Suggestion != "" {
		sb.WriteString(" (")
		sb.WriteString(e.Suggestion)
		sb.WriteString(")")
	}
	return sb.String()
}

var unitless = regexp.MustCompile(`^\s*[+-]?(\d+\.?\d*|\.\d+)\s*$`)

// ValidateTree checks a parsed tree. Returns errors for:
// - entries that are neither tokens nor groups
// - tokens without a type, or with a type outside token.KnownTypes
// - distinct paths that flatten to the same dash-joined name (an error)
// - unitless dimensions, which the Figma export scales as rem
//
// Everything except flattened name collisions is a warning.
func ValidateTree(tree *token.Tree, filePath string) []ValidationError {
	var errors []ValidationError

	for _, path := range tree.Skipped {
		errors = append(errors, ValidationError{
			FilePath:   filePath,
			Path:       strings.Join(path, "."),
			Message:    "entry is neither a token nor a group and is ignored",
			Suggestion: `wrap it as { "value": ... }`,
		})
	}

	seen := make(map[string]string)
	tree.Walk(func(path []string, n *token.Node) {
		dotPath := strings.Join(path, ".")

		switch {
		case n.Type == "":
			errors = append(errors, ValidationError{
				FilePath:   filePath,
				Path:       dotPath,
				Message:    "token has no type",
				Suggestion: "add a type; the Figma export omits untyped tokens' type",
			})
		case !token.IsKnownType(n.Type):
			errors = append(errors, ValidationError{
				FilePath:   filePath,
				Path:       dotPath,
				Message:    fmt.Sprintf("unknown type %q", n.Type),
				Suggestion: "use one of " + strings.Join(token.KnownTypes, ", "),
			})
		}

		if n.Type == token.TypeDimension {
			if s, ok := n.Value.(string); ok && unitless.MatchString(s) && strings.TrimSpace(s) != "0" {
				errors = append(errors, ValidationError{
					FilePath:   filePath,
					Path:       dotPath,
					Message:    fmt.Sprintf("dimension %q has no unit", s),
					Suggestion: "the Figma export multiplies unitless spacing and radius values by 16; add rem or px",
				})
			}
		}

		name := strings.Join(path, "-")
		if other, ok := seen[name]; ok {
			errors = append(errors, ValidationError{
				Severity:   SeverityError,
				FilePath:   filePath,
				Path:       dotPath,
				Message:    fmt.Sprintf("flattens to %q, already used by %s", name, other),
				Suggestion: "rename one of the tokens",
			})
			return
		}
		seen[name] = dotPath
	})

	return errors
}

// ValidateReferences checks that every reference names a token and that
// references do not form a cycle. Both are errors.
func ValidateReferences(tokens []*token.Token) []ValidationError {
	var errors []ValidationError

	files := make(map[string]string)
	for _, tok := range tokens {
		files[tok.DotPath()] = tok.FilePath
	}

	graph := resolver.BuildDependencyGraph(tokens)
	for _, m := range graph.Missing() {
		errors = append(errors, ValidationError{
			Severity:   SeverityError,
			FilePath:   files[m[0]],
			Path:       m[0],
			Message:    fmt.Sprintf("reference {%s} does not name a token", m[1]),
			Suggestion: "check the path, or add the token to a source file",
		})
	}

	if cycle := graph.FindCycle(); cycle != nil {
		errors = append(errors, ValidationError{
			Severity: SeverityError,
			FilePath: files[cycle[0]],
			Path:     cycle[0],
			Message:  "circular reference: " + strings.Join(cycle, " -> "),
		})
	}

	return errors
}

// HasErrors reports whether any entry has SeverityError.
func HasErrors(errs []ValidationError) bool {
	for _, e := range errs {
		if e.Severity == SeverityError {
			return true
		}
	}
	return false
}
