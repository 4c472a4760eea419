package rules

import (
	"cmp"
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Env is the variable set visible to filter expressions, for example
//
//	lift > 1.2 && confidence >= 0.8
//	"beer" in antecedent || consequence == "beer"
//	size == 2 and leverage > 0
type Env struct {
	Confidence  float64  `expr:"confidence"`
	Support     float64  `expr:"support"`
	Lift        float64  `expr:"lift"`
	Leverage    float64  `expr:"leverage"`
	Conviction  float64  `expr:"conviction"`
	Antecedent  []string `expr:"antecedent"`
	Consequence string   `expr:"consequence"`
	Size        int      `expr:"size"` // items in antecedent ∪ consequence
}

// Predicate is a compiled rule filter.
type Predicate struct {
	source  string
	program *vm.Program
}

// String returns the expression the predicate was compiled from.
func (p *Predicate) String() string { return p.source }

// Compile compiles a boolean filter expression against Env.
func Compile(expression string) (*Predicate, error) {
	program, err := expr.Compile(expression, expr.Env(Env{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("rules: compile filter %q: %w", expression, err)
	}
	return &Predicate{source: expression, program: program}, nil
}

// Match evaluates the predicate for r. Evaluation errors count as no match.
func Match[T cmp.Ordered](p *Predicate, r Rule[T]) bool {
	out, err := expr.Run(p.program, envOf(r))
	if err != nil {
		return false
	}
	b, ok := out.(bool)
	return ok && b
}

// Filter returns the rules matching p, in their original order. A nil predicate keeps all.
func Filter[T cmp.Ordered](rs []Rule[T], p *Predicate) []Rule[T] {
	if p == nil {
		return rs
	}
	out := make([]Rule[T], 0, len(rs))
	for _, r := range rs {
		if Match(p, r) {
			out = append(out, r)
		}
	}
	return out
}

func envOf[T cmp.Ordered](r Rule[T]) Env {
	ante := make([]string, len(r.Antecedent))
	for i, it := range r.Antecedent {
		ante[i] = fmt.Sprint(it)
	}
	var cons string
	if len(r.Consequence) > 0 {
		cons = fmt.Sprint(r.Consequence[0])
	}
	return Env{
		Confidence:  r.Confidence,
		Support:     r.Support,
		Lift:        r.Lift,
		Leverage:    r.Leverage(),
		Conviction:  r.Conviction(),
		Antecedent:  ante,
		Consequence: cons,
		Size:        len(r.Antecedent) + len(r.Consequence),
	}
}
