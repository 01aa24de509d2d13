// Package filter compiles expr expressions into predicates over catalog
// films. It powers the CLI's client-side filtering, e.g.
//
//	cinema list --filter 'Rating > 8 and contains(Title, "матрица")'
package filter

import (
	"fmt"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/leniks/cinema2/catalog"
)

// Filter is a compiled filter expression.
type Filter struct {
	program *vm.Program
	expr    string
}

// Compile compiles a filter expression.
func Compile(expression string) (*Filter, error) {
	if strings.TrimSpace(expression) == "" {
		return nil, fmt.Errorf("empty filter expression")
	}

	program, err := expr.Compile(expression,
		expr.Env(buildEnv(catalog.Film{})),
		expr.AllowUndefinedVariables(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to compile filter expression: %w", err)
	}

	return &Filter{
		program: program,
		expr:    expression,
	}, nil
}

// Evaluate evaluates the filter against a film. A failed evaluation or a
// non-boolean result excludes the film rather than erroring.
func (f *Filter) Evaluate(film catalog.Film) bool {
	result, err := expr.Run(f.program, buildEnv(film))
	if err != nil {
		return false
	}

	if boolResult, ok := result.(bool); ok {
		return boolResult
	}
	return false
}

// String returns the original expression.
func (f *Filter) String() string {
	return f.expr
}

// CreateFilter compiles an expression into a plain predicate function.
func CreateFilter(expression string) (func(catalog.Film) bool, error) {
	f, err := Compile(expression)
	if err != nil {
		return nil, err
	}

	return func(film catalog.Film) bool {
		return f.Evaluate(film)
	}, nil
}

// buildEnv constructs the expression environment for a film: its fields
// bound directly plus string helpers.
func buildEnv(film catalog.Film) map[string]interface{} {
	return map[string]interface{}{
		"Film": film,

		// Direct film properties for convenience
		"MovieID":     film.MovieID,
		"Title":       film.Title,
		"Description": film.Description,
		"ReleaseDate": film.ReleaseDate,
		"Rating":      film.Rating,
		"Duration":    film.Duration,
		"VideoURL":    film.VideoURL,

		// String helpers
		"contains": func(str, substr string) bool {
			return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
		},
		"startsWith": func(str, prefix string) bool {
			return strings.HasPrefix(strings.ToLower(str), strings.ToLower(prefix))
		},
		"endsWith": func(str, suffix string) bool {
			return strings.HasSuffix(strings.ToLower(str), strings.ToLower(suffix))
		},
		"lower": strings.ToLower,
		"upper": strings.ToUpper,

		// Domain helpers
		"hasVideo": func() bool {
			return film.VideoURL != ""
		},
		"released": func(yearPrefix string) bool {
			return strings.HasPrefix(film.ReleaseDate, yearPrefix)
		},
	}
}
