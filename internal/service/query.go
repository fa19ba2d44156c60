package service

import (
	"encoding/json"
	"fmt"
	"strings"

	jmespath "github.com/jmespath-community/go-jmespath"
)

// ExprEvaluator validates and evaluates filter expressions against
// arbitrary JSON-shaped data. The admin contents screen exposes an
// expression box that runs through this.
type ExprEvaluator interface {
	Validate(expr string) error
	Evaluate(expr string, data any) (any, error)
}

// jmespathEvaluator implements ExprEvaluator using go-jmespath.
type jmespathEvaluator struct{}

// NewExprEvaluator returns the default JMESPath-backed evaluator.
func NewExprEvaluator() ExprEvaluator { return jmespathEvaluator{} }

func (jmespathEvaluator) Validate(expr string) error {
	if strings.TrimSpace(expr) == "" {
		return nil
	}
	_, err := jmespath.Compile(expr)
	return err
}

func (jmespathEvaluator) Evaluate(expr string, data any) (any, error) {
	return jmespath.Search(expr, data)
}

// filterByExpr keeps the items for which the expression evaluates truthy.
// Items are round-tripped through JSON so expressions see the same field
// names the API exposes. An empty expression keeps everything.
func filterByExpr[T any](eval ExprEvaluator, expr string, items []T) ([]T, error) {
	if strings.TrimSpace(expr) == "" {
		return items, nil
	}
	if err := eval.Validate(expr); err != nil {
		return nil, fmt.Errorf("invalid expression: %w", err)
	}

	out := make([]T, 0, len(items))
	for _, item := range items {
		raw, err := json.Marshal(item)
		if err != nil {
			return nil, fmt.Errorf("marshal item: %w", err)
		}
		var data any
		if err := json.Unmarshal(raw, &data); err != nil {
			return nil, fmt.Errorf("unmarshal item: %w", err)
		}

		result, err := eval.Evaluate(expr, data)
		if err != nil {
			return nil, fmt.Errorf("evaluate expression: %w", err)
		}
		if truthy(result) {
			out = append(out, item)
		}
	}
	return out, nil
}

// truthy follows JMESPath semantics: false, null, empty strings and empty
// collections are false, everything else is true.
func truthy(v any) bool {
	switch val := v.(type) {
	case nil:
		return false
	case bool:
		return val
	case string:
		return val != ""
	case []any:
		return len(val) > 0
	case map[string]any:
		return len(val) > 0
	default:
		return true
	}
}
