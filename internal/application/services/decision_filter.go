package services

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// DecisionEnv defines the variables available during filter expression
// evaluation.
type DecisionEnv struct {
	Application string   `expr:"application"`
	Resource    string   `expr:"resource"`
	Granted     bool     `expr:"granted"`
	Actions     []string `expr:"actions"`
}

// CompileDecisionFilter compiles a filter expression against DecisionEnv.
// Compile once, run against many decisions.
func CompileDecisionFilter(expression string) (*vm.Program, error) {
	program, err := expr.Compile(expression,
		expr.Env(DecisionEnv{}),
		expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("invalid filter expression: %w\nExample: !granted && application == 'myapp'", err)
	}
	return program, nil
}

// FilterDecisions returns the decisions matching the compiled expression.
func FilterDecisions(decisions []Decision, program *vm.Program) ([]Decision, error) {
	if program == nil {
		return decisions, nil
	}

	var out []Decision
	for _, d := range decisions {
		env := DecisionEnv{
			Application: d.Application,
			Resource:    d.Resource,
			Granted:     d.Granted,
			Actions:     d.Actions,
		}
		matched, err := expr.Run(program, env)
		if err != nil {
			return nil, fmt.Errorf("filter evaluation failed: %w", err)
		}
		if matched.(bool) {
			out = append(out, d)
		}
	}
	return out, nil
}
