package termr

import (
	"errors"
	"math/big"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/gtfo/ast"
	"github.com/npillmayer/gtfo/ast/fp"
	"github.com/npillmayer/gtfo/render"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// foldConstants replaces n + m by its sum for integer literals n and m.
var foldConstants = RewriteRule{
	Name:  "fold-constants",
	Kinds: []ast.Kind{ast.InfixExpressionKind},
	Pattern: func(n ast.Node) bool {
		infix := n.(*ast.InfixExpression)
		op, ok := infix.Oper.(*ast.Operator)
		return ok && op.Label == "+" &&
			infix.LExpr.Kind() == ast.IntegerKind && infix.RExpr.Kind() == ast.IntegerKind
	},
	Rewrite: func(n ast.Node) ast.Node {
		infix := n.(*ast.InfixExpression)
		sum := new(big.Int).Add(infix.LExpr.(*ast.Integer).Value, infix.RExpr.(*ast.Integer).Value)
		return ast.NewBigInteger(sum)
	},
}

func plus(l, r ast.Node) ast.Node {
	return ast.NewInfixExpression(ast.NewOperator("+"), l, r)
}

func integer(i int64) ast.Node { return ast.NewInteger(i) }

func TestPatterns(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gtfo.termr")
	defer teardown()
	//
	id := ast.NewIdentifier("tmpVar")
	list := ast.NewList([]ast.Node{id})
	if !Anything()(list) || !AnyAtom()(id) || AnyAtom()(list) {
		t.Errorf("Anything/AnyAtom broken")
	}
	if !OfKind(ast.TextKind, ast.ListKind)(list) || OfKind(ast.TextKind)(list) {
		t.Errorf("OfKind broken")
	}
	if !And(AnyAtom(), OfKind(ast.IdentifierKind))(id) || And(AnyAtom(), Not(Anything()))(id) {
		t.Errorf("And/Not broken")
	}
	if !Or(OfKind(ast.TextKind), AnyAtom())(id) || Or()(id) {
		t.Errorf("Or broken")
	}
}

func TestWhen(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gtfo.termr")
	defer teardown()
	//
	tests := []struct {
		expression string
		node       ast.Node
		expected   bool
	}{
		{`kind == "Identifier" && label startsWith "tmp"`, ast.NewIdentifier("tmpVar"), true},
		{`kind == "Identifier" && label startsWith "tmp"`, ast.NewIdentifier("x"), false},
		{`atom`, ast.NewSymbol("s"), true},
		{`arity == 3`, plus(integer(1), integer(2)), true},
		{`text == "1 + 2"`, plus(integer(1), integer(2)), true},
		{`opts.sourceBase == 16`, ast.NewInteger(255, ast.SourceBase(16)), true},
		{`opts.source == "module"`, ast.NewBlock(nil), false},
	}
	for _, tt := range tests {
		p, err := When(tt.expression)
		if err != nil {
			t.Fatalf("cannot compile %q: %v", tt.expression, err)
		}
		if p(tt.node) != tt.expected {
			t.Errorf("pattern %q on %s: expected %v", tt.expression, render.Render(tt.node), tt.expected)
		}
	}
	if _, err := When(`kind +`); !errors.Is(err, ErrBadPattern) {
		t.Errorf("expected ErrBadPattern for syntax error, have %v", err)
	}
	if _, err := When(`arity + 1`); !errors.Is(err, ErrBadPattern) {
		t.Errorf("expected ErrBadPattern for non-boolean expression, have %v", err)
	}
}

func TestFind(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gtfo.termr")
	defer teardown()
	//
	tree := ast.NewBlock([]ast.Node{
		ast.NewAssign(ast.NewIdentifier("a"), plus(integer(1), ast.NewIdentifier("b"))),
	})
	found := Find(tree, MustWhen(`kind == "Identifier"`))
	var labels []string
	for _, n := range found {
		labels = append(labels, n.(*ast.Identifier).Label)
	}
	if diff := cmp.Diff([]string{"a", "b"}, labels); diff != "" {
		t.Errorf("unexpected matches (-want +got):\n%s", diff)
	}
	if len(Find(tree, OfKind(ast.TextKind))) != 0 || Find(nil, Anything()) != nil {
		t.Errorf("expected no matches")
	}
}

func TestBottomUp(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gtfo.termr")
	defer teardown()
	//
	rs, err := NewRuleSet(foldConstants)
	if err != nil {
		t.Fatal(err)
	}
	tree := ast.NewAssign(ast.NewIdentifier("x"), plus(plus(integer(1), integer(2)), integer(3)))
	if r := render.Render(rs.BottomUp(tree)); r != "x = 6" {
		t.Errorf("expected x = 6, have %s", r)
	}
	// top-down sees (1 + 2) + 3 before its left operand is folded
	if r := render.Render(rs.TopDown(tree)); r != "x = 3 + 3" {
		t.Errorf("expected x = 3 + 3, have %s", r)
	}
	viaHandlers := ast.FoldUp(tree, ast.Dispatch(rs.Handlers()))
	if !ast.Equal(viaHandlers, rs.BottomUp(tree)) {
		t.Errorf("dispatch table differs from rule set")
	}
	if missing := rs.Handlers().Missing(ast.InfixExpressionKind); len(missing) != 0 {
		t.Errorf("expected a handler for InfixExpression")
	}
	if len(rs.Handlers()) != 1 {
		t.Errorf("expected handler for InfixExpression only, have %d", len(rs.Handlers()))
	}
}

func TestFirstMatchingRuleWins(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gtfo.termr")
	defer teardown()
	//
	rename := func(label string) Rewriter {
		return func(ast.Node) ast.Node { return ast.NewIdentifier(label) }
	}
	rs, _ := NewRuleSet(
		RewriteRule{Name: "tmp", Pattern: MustWhen(`label startsWith "tmp"`), Rewrite: rename("t")},
		RewriteRule{Name: "ident", Kinds: []ast.Kind{ast.IdentifierKind}, Rewrite: rename("i")},
	)
	if rs.Len() != 2 {
		t.Fatalf("expected 2 rules")
	}
	result := rs.Apply(ast.NewIdentifier("tmp1")).(*ast.Identifier)
	if result.Label != "t" {
		t.Errorf("expected first rule to win, have %s", result.Label)
	}
	result = rs.Apply(ast.NewIdentifier("x")).(*ast.Identifier)
	if result.Label != "i" {
		t.Errorf("expected second rule to apply, have %s", result.Label)
	}
	sym := ast.NewSymbol("s")
	if rs.Apply(sym) != ast.Node(sym) {
		t.Errorf("expected unmatched node to be returned unchanged")
	}
	if err := rs.Add(RewriteRule{Name: "broken"}); !errors.Is(err, ErrBadPattern) {
		t.Errorf("expected rule without rewriter to be rejected, have %v", err)
	}
}

func TestFixpoint(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gtfo.termr")
	defer teardown()
	//
	tracing.Select("gtfo.termr").SetTraceLevel(tracing.LevelDebug)
	rs, _ := NewRuleSet(foldConstants)
	tree := plus(plus(integer(1), integer(2)), plus(integer(3), integer(4)))
	result, err := rs.Fixpoint(tree, fp.TopDownDir, 5)
	if err != nil {
		t.Fatalf("expected fixpoint, have %v", err)
	}
	if r := render.Render(result); r != "10" {
		t.Errorf("expected 10, have %s", r)
	}
	result, err = rs.Fixpoint(tree, fp.DepthFirstDir, 2)
	if err != nil || render.Render(result) != "10" {
		t.Errorf("expected bottom-up fixpoint 10, have %s, %v", render.Render(result), err)
	}
}

func TestFixpointGivesUp(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gtfo.termr")
	defer teardown()
	//
	increment, _ := NewRuleSet(RewriteRule{
		Name:  "increment",
		Kinds: []ast.Kind{ast.IntegerKind},
		Rewrite: func(n ast.Node) ast.Node {
			return ast.NewBigInteger(new(big.Int).Add(n.(*ast.Integer).Value, big.NewInt(1)))
		},
	})
	result, err := increment.Fixpoint(ast.NewList([]ast.Node{integer(0)}), fp.DepthFirstDir, 3)
	if !errors.Is(err, ErrNoFixpoint) {
		t.Errorf("expected ErrNoFixpoint, have %v", err)
	}
	if r := render.Render(result); r != "[3]" {
		t.Errorf("expected last tree [3], have %s", r)
	}
}
