package termr

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"
	"fmt"

	"github.com/npillmayer/gtfo/ast"
	"github.com/npillmayer/gtfo/ast/fp"
	"github.com/npillmayer/gtfo/render"
	"github.com/npillmayer/schuko/tracing"
)

// ErrNoFixpoint is returned by Fixpoint if rewriting did not settle.
var ErrNoFixpoint = errors.New("rewriting did not reach a fixpoint")

// Rewriter is a function
//
//     node ↦ node
//
// i.e., a term rewriting function. It must not return nil.
type Rewriter func(ast.Node) ast.Node

// RewriteRule is a type representing a rule for term rewriting.
// It contains a pattern and a rewriting function. The pattern will be applied
// to nodes in an AST, and if it matches the rewriter will be called on the redex.
//
// Kinds optionally restricts the rule to nodes of certain kinds; an empty
// list means any kind.
type RewriteRule struct {
	Name    string
	Kinds   []ast.Kind
	Pattern Pattern
	Rewrite Rewriter
}

func (r RewriteRule) appliesTo(k ast.Kind) bool {
	if len(r.Kinds) == 0 {
		return true
	}
	for _, kind := range r.Kinds {
		if kind == k {
			return true
		}
	}
	return false
}

func (r RewriteRule) matches(n ast.Node) bool {
	return r.appliesTo(n.Kind()) && (r.Pattern == nil || r.Pattern(n))
}

// RuleSet is an ordered set of rewrite rules. For each node, the first
// matching rule is applied.
type RuleSet struct {
	rules []RewriteRule
}

// NewRuleSet creates a rule set.
func NewRuleSet(rules ...RewriteRule) (*RuleSet, error) {
	rs := &RuleSet{}
	for _, r := range rules {
		if err := rs.Add(r); err != nil {
			return nil, err
		}
	}
	return rs, nil
}

// Add appends a rule to the rule set. A rule must have a rewriter.
func (rs *RuleSet) Add(rule RewriteRule) error {
	if rule.Rewrite == nil {
		return fmt.Errorf("%w: rule %q has no rewriter", ErrBadPattern, rule.Name)
	}
	rs.rules = append(rs.rules, rule)
	return nil
}

// Len returns the number of rules.
func (rs *RuleSet) Len() int {
	return len(rs.rules)
}

// Apply rewrites a single node with the first matching rule. If no rule
// matches, n is returned unchanged.
func (rs *RuleSet) Apply(n ast.Node) ast.Node {
	if n == nil {
		panic("nil node as rewrite input")
	}
	for _, r := range rs.rules {
		if r.matches(n) {
			tracer().Debugf("rule %q matches %s node", r.Name, n.Kind())
			return r.Rewrite(n)
		}
	}
	return n
}

// TopDown rewrites a tree top-down (see ast.RewriteDown).
func (rs *RuleSet) TopDown(n ast.Node) ast.Node {
	return ast.RewriteDown(n, rs.Apply)
}

// BottomUp rewrites a tree bottom-up (see ast.FoldUp).
func (rs *RuleSet) BottomUp(n ast.Node) ast.Node {
	return ast.FoldUp(n, rs.Apply)
}

// Handlers exports the rule set as a dispatch table. Every kind some rule
// applies to gets a handler which tries the rules for this kind in order.
func (rs *RuleSet) Handlers() ast.Handlers {
	h := make(ast.Handlers)
	for _, k := range ast.Kinds() {
		var rules []RewriteRule
		for _, r := range rs.rules {
			if r.appliesTo(k) {
				rules = append(rules, r)
			}
		}
		if len(rules) == 0 {
			continue
		}
		h[k] = func(n ast.Node) ast.Node {
			for _, r := range rules {
				if r.Pattern == nil || r.Pattern(n) {
					return r.Rewrite(n)
				}
			}
			return n
		}
	}
	return h
}

// Fixpoint rewrites a tree repeatedly, either top-down (dir = fp.TopDownDir)
// or bottom-up (dir = fp.DepthFirstDir), until a pass does not change the
// tree's structure any more. If this does not happen within maxPasses passes,
// the last tree is returned together with an error wrapping ErrNoFixpoint.
func (rs *RuleSet) Fixpoint(n ast.Node, dir int, maxPasses int) (ast.Node, error) {
	if n == nil {
		return nil, nil
	}
	pass := rs.BottomUp
	if dir == fp.TopDownDir {
		pass = rs.TopDown
	}
	fingerprint := ast.Fingerprint(n)
	for i := 1; i <= maxPasses; i++ {
		next := pass(n)
		nextprint := ast.Fingerprint(next)
		if tracer().GetTraceLevel() == tracing.LevelDebug {
			tracer().Debugf("pass %d: %s", i, render.Diff(n, next))
		}
		if nextprint == fingerprint {
			tracer().Infof("rewriting settled after %d passes", i)
			return next, nil
		}
		n, fingerprint = next, nextprint
	}
	return n, fmt.Errorf("%w: gave up after %d passes", ErrNoFixpoint, maxPasses)
}
