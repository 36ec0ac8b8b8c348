package render

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"strings"

	"github.com/npillmayer/gtfo/ast"
)

// Option configures rendering.
type Option func(*renderer)

// WithColors sets a table for syntax highlighting. WithColors(nil) switches
// highlighting off explicitly.
func WithColors(c *Colors) Option {
	return func(r *renderer) {
		r.colors = c
		r.colorsSet = true
	}
}

type renderer struct {
	colors    *Colors
	colorsSet bool
}

func newRenderer(opts []Option) *renderer {
	r := &renderer{}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// plainKey is set on highlighted fragments and holds the uncolored text.
const plainKey = "render.plain"

// Render returns the canonical source text of a tree. It is a bottom-up fold
// in which every node is replaced by an ast.Fragment holding its text.
func Render(n ast.Node, opts ...Option) string {
	if n == nil {
		return ""
	}
	return newRenderer(opts).render(n)
}

// Handlers returns the handler table Render folds with. It covers every
// node kind; each handler expects its children to be fragments already.
func Handlers(opts ...Option) ast.Handlers {
	return newRenderer(opts).handlers()
}

func (r *renderer) render(n ast.Node) string {
	folded := ast.FoldUp(n, ast.Dispatch(r.handlers()))
	return r.text(folded)
}

// text extracts the rendered text of a folded child.
func (r *renderer) text(n ast.Node) string {
	if n == nil {
		return ""
	}
	if f, ok := n.(*ast.Fragment); ok {
		return f.Text
	}
	tracer().Errorf("expected rendered fragment, have %s node", n.Kind())
	return r.render(n)
}

// plain is the uncolored text of a folded child.
func (r *renderer) plain(n ast.Node) string {
	if n == nil {
		return ""
	}
	if v, ok := n.Options().Get(plainKey); ok {
		s, _ := v.(string)
		return s
	}
	return r.text(n)
}

func (r *renderer) texts(nodes []ast.Node) []string {
	t := make([]string, len(nodes))
	for i, n := range nodes {
		t[i] = r.text(n)
	}
	return t
}

func (r *renderer) join(nodes []ast.Node, sep string) string {
	return strings.Join(r.texts(nodes), sep)
}

func fragment(s string) ast.Node {
	return ast.NewFragment(s)
}

// atom creates the fragment of a leaf, highlighted if colors are set.
func (r *renderer) atom(k ast.Kind, s string) ast.Node {
	if r.colors == nil {
		return ast.NewFragment(s)
	}
	return ast.NewFragment(r.colors.Color(k, s), ast.Opt(plainKey, s))
}

// --- Handlers --------------------------------------------------------------

func (r *renderer) handlers() ast.Handlers {
	return ast.Handlers{
		ast.IdentifierKind: func(n ast.Node) ast.Node {
			id := n.(*ast.Identifier)
			return r.atom(ast.IdentifierKind, id.Label+id.Modifier)
		},
		ast.SymbolKind: func(n ast.Node) ast.Node {
			return r.atom(ast.SymbolKind, "."+n.(*ast.Symbol).Label)
		},
		ast.OperatorKind: func(n ast.Node) ast.Node {
			return r.atom(ast.OperatorKind, n.(*ast.Operator).Label)
		},
		ast.TextKind: func(n ast.Node) ast.Node {
			return r.atom(ast.TextKind, quote(n.(*ast.Text).Value))
		},
		ast.IntegerKind: func(n ast.Node) ast.Node {
			base, ok := n.Options().GetInt(ast.SourceBaseKey)
			if !ok {
				base = 10
			}
			return r.atom(ast.IntegerKind, formatInteger(n.(*ast.Integer).Value, base))
		},
		ast.DecimalKind: func(n ast.Node) ast.Node {
			d := n.(*ast.Decimal)
			if d.Options().GetString(ast.AsKey) == ast.Scientific {
				return r.atom(ast.DecimalKind, formatScientific(d.Value))
			}
			return r.atom(ast.DecimalKind, formatDecimal(d.Value))
		},
		ast.CommentKind: func(n ast.Node) ast.Node {
			c := n.(*ast.Comment)
			if c.Options().GetString(ast.SourceKey) == ast.InlineSource {
				return r.atom(ast.CommentKind, "#-"+c.Text+"-#")
			}
			return r.atom(ast.CommentKind, "#"+c.Text)
		},
		ast.FragmentKind: ast.Identity,
		ast.BracesKind: func(n ast.Node) ast.Node {
			return r.body(n, n.(*ast.Braces).Exprs)
		},
		ast.BlockKind: func(n ast.Node) ast.Node {
			return r.body(n, n.(*ast.Block).Exprs)
		},
		ast.AngleBarsKind: func(n ast.Node) ast.Node {
			return fragment("<| " + r.join(n.(*ast.AngleBars).Exprs, ", ") + " |>")
		},
		ast.AngleBracketsKind: func(n ast.Node) ast.Node {
			return fragment("<[ " + r.join(n.(*ast.AngleBrackets).Exprs, ", ") + " ]>")
		},
		ast.BracketsKind: func(n ast.Node) ast.Node {
			return fragment("[" + r.join(n.(*ast.Brackets).Exprs, ", ") + "]")
		},
		ast.ListKind: func(n ast.Node) ast.Node {
			return fragment("[" + r.join(n.(*ast.List).Items, ", ") + "]")
		},
		ast.ParensKind: func(n ast.Node) ast.Node {
			return fragment("(" + r.join(n.(*ast.Parens).Exprs, ", ") + ")")
		},
		ast.ExpressionKind: func(n ast.Node) ast.Node {
			return fragment(r.join(n.(*ast.Expression).Terms, " "))
		},
		ast.ComplexKind: func(n ast.Node) ast.Node {
			c := n.(*ast.Complex)
			var s string
			if c.Real != nil && r.plain(c.Real) != "" {
				s = r.text(c.Real) + " + "
			}
			return fragment(s + r.text(c.Imaginary) + "j")
		},
		ast.AssignKind: func(n ast.Node) ast.Node {
			a := n.(*ast.Assign)
			return fragment(r.text(a.Ident) + " = " + r.text(a.Value))
		},
		ast.MessageSendKind: func(n ast.Node) ast.Node {
			m := n.(*ast.MessageSend)
			return fragment(r.text(m.Receiver) + "(" + r.keywordArgs(m.Selector, m.Args) + ")")
		},
		ast.SymbolLookupKind: func(n ast.Node) ast.Node {
			l := n.(*ast.SymbolLookup)
			return fragment(r.text(l.Receiver) + r.text(l.Symbol))
		},
		ast.SubscriptKind: func(n ast.Node) ast.Node {
			s := n.(*ast.Subscript)
			return fragment(r.text(s.Receiver) + "[" + r.text(s.Subscript) + "]")
		},
		ast.PrefixExpressionKind: func(n ast.Node) ast.Node {
			p := n.(*ast.PrefixExpression)
			return fragment(r.text(p.Oper) + r.text(p.Expr))
		},
		ast.InfixExpressionKind: func(n ast.Node) ast.Node {
			i := n.(*ast.InfixExpression)
			return fragment(r.text(i.LExpr) + " " + r.text(i.Oper) + " " + r.text(i.RExpr))
		},
		ast.MethodKind: func(n ast.Node) ast.Node {
			m := n.(*ast.Method)
			return fragment("(" + r.keywordArgs(m.Selector, m.Args) + ") => " + r.text(m.Block))
		},
		ast.DictionaryKind: func(n ast.Node) ast.Node {
			d := n.(*ast.Dictionary)
			if len(d.Items) == 0 {
				return fragment("[:]")
			}
			return fragment("[" + r.join(d.Items, ", ") + "]")
		},
		ast.PairKind: func(n ast.Node) ast.Node {
			p := n.(*ast.Pair)
			return fragment(r.text(p.Key) + ": " + r.text(p.Value))
		},
		ast.BottomKind: func(n ast.Node) ast.Node {
			return r.atom(ast.BottomKind, "_")
		},
		ast.ErrorKind: func(n ast.Node) ast.Node {
			e := n.(*ast.Error)
			return r.atom(ast.ErrorKind, "#- ERROR: "+e.Message+". `"+r.plain(e.Encountered)+"` -#")
		},
	}
}

// body renders Braces and Block. A module body has no braces.
func (r *renderer) body(n ast.Node, exprs []ast.Node) ast.Node {
	if n.Options().GetString(ast.SourceKey) == ast.ModuleSource {
		return fragment(r.join(exprs, "\n"))
	}
	return fragment("{\n" + r.join(exprs, "\n") + "\n}")
}

// keywordArgs pairs the keywords of a selector with arguments, as in
// "frobWith: bar, using: baz". Keywords without an argument pair with "_";
// surplus arguments are not rendered.
func (r *renderer) keywordArgs(selector ast.Node, args []ast.Node) string {
	kws := keywords(r.plain(selector))
	if len(args) > len(kws) {
		tracer().Debugf("selector %q takes %d arguments, have %d", r.plain(selector), len(kws), len(args))
	}
	pairs := make([]string, len(kws))
	for i, kw := range kws {
		arg := r.colors.Color(ast.BottomKind, "_")
		if i < len(args) {
			arg = r.text(args[i])
		}
		pairs[i] = r.colors.Color(ast.IdentifierKind, kw) + ": " + arg
	}
	return strings.Join(pairs, ", ")
}
