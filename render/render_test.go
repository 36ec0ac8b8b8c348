package render

import (
	"bytes"
	"math"
	"math/big"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/npillmayer/gtfo/ast"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func id(label string) ast.Node { return ast.NewIdentifier(label) }

func TestRender(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gtfo.render")
	defer teardown()

	fortyTwo := func() []ast.Node { return []ast.Node{ast.NewInteger(42)} }
	tests := []struct {
		name     string
		node     ast.Node
		expected string
	}{
		{"empty block", ast.NewBlock(nil), "{\n\n}"},
		{"block", ast.NewBlock([]ast.Node{ast.NewSymbol("a")}), "{\n.a\n}"},
		{"module block", ast.NewBlock([]ast.Node{id("a"), id("b")}, ast.Source(ast.ModuleSource)), "a\nb"},
		{"module braces", ast.NewBraces([]ast.Node{id("a"), id("b")}, ast.Source(ast.ModuleSource)), "a\nb"},
		{"assign", ast.NewAssign(id("a"), ast.NewInteger(42)), "a = 42"},
		{"message send", ast.NewMessageSend(id("foo"), id("frobWith:using:"), []ast.Node{id("bar"), id("baz")}),
			"foo(frobWith: bar, using: baz)"},
		{"one keyword", ast.NewMessageSend(id("foo"), id("aaa:"), []ast.Node{id("bbb")}), "foo(aaa: bbb)"},
		{"missing argument", ast.NewMessageSend(id("foo"), id("a:b:"), []ast.Node{id("x")}), "foo(a: x, b: _)"},
		{"surplus argument", ast.NewMessageSend(id("foo"), id("a:"), []ast.Node{id("x"), id("y")}), "foo(a: x)"},
		{"unary selector", ast.NewMessageSend(id("foo"), id("bar"), nil), "foo()"},
		{"dictionary empty", ast.NewDictionary(nil), "[:]"},
		{"dictionary", ast.NewDictionary([]ast.Node{
			ast.NewPair(ast.NewSymbol("k"), ast.NewInteger(1)),
			ast.NewPair(ast.NewText("v"), id("x")),
		}), "[.k: 1, 'v': x]"},
		{"angle bars", ast.NewAngleBars(fortyTwo()), "<| 42 |>"},
		{"angle brackets", ast.NewAngleBrackets(fortyTwo()), "<[ 42 ]>"},
		{"parens", ast.NewParens(fortyTwo()), "(42)"},
		{"braces", ast.NewBraces(fortyTwo()), "{\n42\n}"},
		{"brackets", ast.NewBrackets(fortyTwo()), "[42]"},
		{"parens list", ast.NewParens([]ast.Node{id("a"), id("b")}), "(a, b)"},
		{"list", ast.NewList([]ast.Node{ast.NewInteger(1), ast.NewInteger(2)}), "[1, 2]"},
		{"empty list", ast.NewList(nil), "[]"},
		{"expression", ast.NewExpression([]ast.Node{id("a"), ast.NewOperator("+"), id("b")}), "a + b"},
		{"identifier", id("aaa"), "aaa"},
		{"modified identifier", ast.NewModifiedIdentifier("aaa", "?"), "aaa?"},
		{"symbol", ast.NewSymbol("aaa"), ".aaa"},
		{"operator", ast.NewOperator("++"), "++"},
		{"integer", ast.NewInteger(42), "42"},
		{"hex integer", ast.NewInteger(255, ast.SourceBase(16)), "ff"},
		{"binary integer", ast.NewInteger(5, ast.SourceBase(2)), "101"},
		{"negative integer", ast.NewInteger(-42), "-42"},
		{"big integer", ast.NewBigInteger(new(big.Int).Exp(big.NewInt(10), big.NewInt(30), nil)),
			"1000000000000000000000000000000"},
		{"decimal", ast.NewDecimal(0.123), "0.123"},
		{"decimal integral", ast.NewDecimal(100), "100"},
		{"scientific", ast.NewDecimal(1e5, ast.As(ast.Scientific)), "1e+5"},
		{"scientific fraction", ast.NewDecimal(0.0054321, ast.As(ast.Scientific)), "5.4321e-3"},
		{"complex", ast.NewComplex(ast.NewInteger(4), ast.NewInteger(3)), "4 + 3j"},
		{"complex decimal", ast.NewComplex(ast.NewDecimal(1.2), ast.NewDecimal(3.4)), "1.2 + 3.4j"},
		{"imaginary", ast.NewComplex(nil, ast.NewInteger(3)), "3j"},
		{"complex zero real", ast.NewComplex(ast.NewInteger(0), ast.NewInteger(3)), "0 + 3j"},
		{"inline comment", ast.NewComment("ignore", ast.Source(ast.InlineSource)), "#-ignore-#"},
		{"comment", ast.NewComment("ignore"), "#ignore"},
		{"symbol lookup", ast.NewSymbolLookup(id("obj"), ast.NewSymbol("field")), "obj.field"},
		{"subscript", ast.NewSubscript(id("arr"), ast.NewInteger(0)), "arr[0]"},
		{"prefix", ast.NewPrefixExpression(ast.NewOperator("-"), id("y")), "-y"},
		{"infix", ast.NewInfixExpression(ast.NewOperator("+"), id("y"), ast.NewInteger(1)), "y + 1"},
		{"method", ast.NewMethod(id("with:"), []ast.Node{id("z")}, ast.NewBlock([]ast.Node{id("z")})),
			"(with: z) => {\nz\n}"},
		{"bottom", ast.NewBottom(), "_"},
		{"fragment", ast.NewFragment("raw text"), "raw text"},
		{"error", ast.NewError(nil, "Unexpected token", ast.NewBottom(), ast.NewOperator(")")),
			"#- ERROR: Unexpected token. `)` -#"},
		{"nested", ast.NewBlock([]ast.Node{
			ast.NewAssign(id("x"), ast.NewList([]ast.Node{ast.NewText("it's"), ast.NewBottom()})),
			ast.NewExpression([]ast.Node{id("x"), ast.NewComment(" done", ast.Source(ast.InlineSource))}),
		}, ast.Source(ast.ModuleSource)), "x = [\"it's\", _]\nx #- done-#"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Render(tt.node))
		})
	}
}

func TestRenderText(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gtfo.render")
	defer teardown()

	tests := []struct {
		text     string
		expected string
	}{
		{`hello, "world"`, `'hello, "world"'`},
		{`"A pinch of notoriety will do." -QC`, `'"A pinch of notoriety will do." -QC'`},
		{`'All art is immoral.' -OW`, `"'All art is immoral.' -OW"`},
		{`plain`, `'plain'`},
		{``, `''`},
		{`it's "quoted"`, `'it\'s "quoted"'`},
		{"line\nbreak\ttab", `'line\nbreak\ttab'`},
		{`back\slash`, `'back\\slash'`},
		{`héllo ☃`, `'héllo ☃'`},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, Render(ast.NewText(tt.text)), "rendering %q", tt.text)
	}
}

func TestFormatNumbers(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gtfo.render")
	defer teardown()

	plain := map[float64]string{
		0:           "0",
		123.45:      "123.45",
		-2.5:        "-2.5",
		1e20:        "100000000000000000000",
		1e21:        "1e+21",
		1.5e300:     "1.5e+300",
		0.000001:    "0.000001",
		1e-7:        "1e-7",
		math.Inf(1): "Infinity",
	}
	for f, expected := range plain {
		assert.Equal(t, expected, formatDecimal(f), "plain %v", f)
	}
	assert.Equal(t, "-Infinity", formatDecimal(math.Inf(-1)))
	assert.Equal(t, "NaN", formatDecimal(math.NaN()))

	scientific := map[float64]string{
		0:       "0e+0",
		1:       "1e+0",
		1e5:     "1e+5",
		123.45:  "1.2345e+2",
		-0.0025: "-2.5e-3",
	}
	for f, expected := range scientific {
		assert.Equal(t, expected, formatScientific(f), "scientific %v", f)
	}
	assert.Equal(t, "0", formatInteger(nil, 10))
	assert.Equal(t, "z", formatInteger(big.NewInt(35), 36))
	assert.Equal(t, "35", formatInteger(big.NewInt(35), 99))
}

func TestRenderCoversAllKinds(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gtfo.render")
	defer teardown()

	assert.Empty(t, Handlers().Missing())
	_, err := ast.DispatchStrict(Handlers())
	assert.NoError(t, err)
}

func TestRenderIsDeterministic(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gtfo.render")
	defer teardown()

	tree := ast.NewMessageSend(id("foo"), id("a:b:"),
		[]ast.Node{ast.NewDecimal(0.5), ast.NewDictionary(nil)})
	first := Render(tree)
	for i := 0; i < 5; i++ {
		require.Equal(t, first, Render(tree))
	}
	assert.Equal(t, "", Render(nil))
}

func TestRenderWithColors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gtfo.render")
	defer teardown()

	saved := color.NoColor
	color.NoColor = false
	defer func() { color.NoColor = saved }()

	tree := ast.NewMessageSend(id("foo"), id("frobWith:using:"),
		[]ast.Node{ast.NewText("100%"), ast.NewComplex(ast.NewInteger(1), ast.NewInteger(2))})
	plain := Render(tree)
	colored := Render(tree, WithColors(NewColors()))
	assert.NotEqual(t, plain, colored)
	assert.Contains(t, colored, "\x1b[")
	assert.Contains(t, colored, "frobWith")
	assert.Contains(t, colored, "using")
	assert.Contains(t, colored, "'100%'")
	assert.NotContains(t, colored, "%!")
	assert.Equal(t, plain, Render(tree, WithColors(nil)))
}

func TestFprint(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gtfo.render")
	defer teardown()

	var buf bytes.Buffer
	require.NoError(t, Fprint(&buf, ast.NewAssign(id("a"), ast.NewInteger(42))))
	assert.Equal(t, "a = 42\n", buf.String())
}

func TestTreeView(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gtfo.render")
	defer teardown()

	tree := ast.NewAssign(id("a"), ast.NewInteger(42, ast.SourceBase(16)))
	var buf bytes.Buffer
	require.NoError(t, WriteTree(&buf, tree))
	expected := strings.Join([]string{
		"Assign",
		"  Identifier a",
		"  Integer 2a {sourceBase=16}",
		"",
	}, "\n")
	assert.Equal(t, expected, buf.String())

	ll := LeveledList(tree)
	require.Len(t, ll, 3)
	assert.Equal(t, 0, ll[0].Level)
	assert.Equal(t, 1, ll[2].Level)
}

func TestDumpYAML(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gtfo.render")
	defer teardown()

	tree := ast.NewBlock([]ast.Node{
		ast.NewAssign(id("a"), ast.NewInteger(42)),
		ast.NewComment("note", ast.Source(ast.InlineSource)),
	})
	out, err := DumpYAML(tree)
	require.NoError(t, err)
	assert.Contains(t, string(out), "kind: Block")
	assert.Contains(t, string(out), "kind: Assign")

	outline, err := LoadOutline(out)
	require.NoError(t, err)
	assert.Equal(t, "Block", outline.Kind)
	require.Len(t, outline.Children, 2)
	assert.Equal(t, "Assign", outline.Children[0].Kind)
	assert.Equal(t, "Comment", outline.Children[1].Kind)
	assert.Equal(t, "inline", outline.Children[1].Options["source"])
	for _, ch := range outline.Children[0].Children {
		assert.NotEqual(t, ast.NoKind, ast.KindFromString(ch.Kind))
	}
}

func TestDiff(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gtfo.render")
	defer teardown()

	a := ast.NewAssign(id("a"), ast.NewInteger(42))
	b := ast.NewAssign(id("a"), ast.NewInteger(43))
	assert.Equal(t, "", Diff(a, a))
	d := Diff(a, b)
	assert.True(t, strings.HasPrefix(d, "a = 4"), d)
	assert.Contains(t, d, "[-2-]")
	assert.Contains(t, d, "{+3+}")
}
