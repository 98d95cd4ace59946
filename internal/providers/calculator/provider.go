package calculator

import (
	"context"
	"math"
	"strconv"
	"strings"
	"sync"

	"github.com/dop251/goja"

	"github.com/GriffinCanCode/lumen/internal/providers"
	"github.com/GriffinCanCode/lumen/internal/shared/types"
)

// Provider evaluates launcher queries as arithmetic expressions. A
// parseable expression yields exactly one candidate with a maximal
// relevance hint; expressions that are valid so far but incomplete
// (trailing operator, unbalanced parens) yield an incomplete
// candidate whose execution asks for more input.
type Provider struct {
	mu sync.Mutex
	vm *goja.Runtime
}

// NewProvider creates a calculator provider with a sandboxed
// expression runtime.
func NewProvider() *Provider {
	return &Provider{vm: newRuntime()}
}

// newRuntime builds a goja VM stripped to expression evaluation.
// Input is pre-validated to digits, operators and a whitelist of
// function names, so nothing else is reachable.
func newRuntime() *goja.Runtime {
	vm := goja.New()
	vm.Set("sqrt", math.Sqrt)
	vm.Set("abs", math.Abs)
	vm.Set("floor", math.Floor)
	vm.Set("ceil", math.Ceil)
	vm.Set("round", math.Round)
	vm.Set("log", math.Log10)
	vm.Set("ln", math.Log)
	vm.Set("sin", math.Sin)
	vm.Set("cos", math.Cos)
	vm.Set("tan", math.Tan)
	vm.Set("pi", math.Pi)
	vm.Set("e", math.E)
	return vm
}

func (p *Provider) ID() string       { return "calculator" }
func (p *Provider) Kind() types.Kind { return types.KindCalculation }
func (p *Provider) Priority() int    { return providers.PriorityCalculator }

// Match evaluates the query if it looks like arithmetic. Non-math
// queries produce no candidates.
func (p *Provider) Match(ctx context.Context, query string) []providers.Match {
	expr := strings.TrimSpace(query)
	if !looksLikeMath(expr) {
		return nil
	}

	if incomplete(expr) {
		return []providers.Match{{
			Candidate: types.Candidate{
				Kind:        types.KindCalculation,
				Calculation: &types.Calculation{Expression: expr, Incomplete: true},
			},
			Hint: providers.HintCalculation,
		}}
	}

	result, ok := p.evaluate(expr)
	if !ok {
		return nil
	}

	return []providers.Match{{
		Candidate: types.Candidate{
			Kind:        types.KindCalculation,
			Calculation: &types.Calculation{Expression: expr, Result: result},
		},
		Hint: providers.HintCalculation,
	}}
}

// Execute completes a calculation. Copy-to-clipboard semantics are
// delegated to the caller, so a complete result is simply Success;
// incomplete expressions ask for more input.
func (p *Provider) Execute(ctx context.Context, cand types.Candidate) types.Outcome {
	if cand.Calculation == nil {
		return types.Errorf("calculation candidate missing payload")
	}
	if cand.Calculation.Incomplete {
		return types.NeedsInput()
	}
	return types.Success()
}

// evaluate runs the expression through the VM and formats the result.
func (p *Provider) evaluate(expr string) (string, bool) {
	// The VM rejects '^' as power; translate it first.
	jsExpr := strings.ReplaceAll(expr, "^", "**")

	p.mu.Lock()
	value, err := p.vm.RunString(jsExpr)
	p.mu.Unlock()
	if err != nil {
		return "", false
	}

	num := value.ToFloat()
	if math.IsNaN(num) || math.IsInf(num, 0) {
		return "", false
	}
	return formatNumber(num), true
}

// looksLikeMath filters queries before they reach the VM: at least
// one digit, and only expression characters or whitelisted function
// names.
func looksLikeMath(expr string) bool {
	if expr == "" || !strings.ContainsAny(expr, "0123456789") {
		return false
	}

	rest := strings.ToLower(expr)
	for _, fn := range knownFunctions {
		rest = strings.ReplaceAll(rest, fn, "")
	}
	for _, r := range rest {
		switch {
		case r >= '0' && r <= '9':
		case strings.ContainsRune("+-*/%^(). ,", r):
		default:
			return false
		}
	}

	// A bare number is not worth surfacing as a calculation.
	trimmed := strings.TrimSpace(expr)
	if _, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return false
	}
	return true
}

// knownFunctions are the only identifiers allowed in expressions,
// longest first so prefixes strip cleanly.
var knownFunctions = []string{
	"floor", "round", "sqrt", "ceil", "abs", "log", "ln",
	"sin", "cos", "tan", "pi", "e",
}

// incomplete reports whether the expression is a valid start that
// needs more input: a trailing operator or unclosed parenthesis.
func incomplete(expr string) bool {
	trimmed := strings.TrimRight(expr, " ")
	if trimmed == "" {
		return false
	}

	if strings.ContainsRune("+-*/%^(", rune(trimmed[len(trimmed)-1])) {
		return true
	}
	return strings.Count(trimmed, "(") > strings.Count(trimmed, ")")
}

// formatNumber drops insignificant trailing decimals (4.0 renders as
// "4") and rounds away float noise.
func formatNumber(v float64) string {
	rounded := math.Round(v*1e10) / 1e10
	return strconv.FormatFloat(rounded, 'f', -1, 64)
}
