package ast

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mdwerror "github.com/msto63/wlang/pkg/core/error"
)

func id(s string) *Identifier     { return &Identifier{Text: s} }
func num(s string) *NumberLiteral { return &NumberLiteral{Text: s} }

func stmts(items ...Statement) *Statements { return &Statements{Items: items} }

// x:=1; while x<10 do x:=x+1 end; write x
func loopProgram() *Program {
	return &Program{Body: stmts(
		&Assign{Target: id("x"), Value: num("1")},
		&While{
			Condition: &Comparison{Left: id("x"), Op: Less, Right: num("10")},
			Body: stmts(&Assign{
				Target: id("x"),
				Value:  &BinaryExpr{Left: id("x"), Op: Add, Right: num("1")},
			}),
		},
		&Write{Value: id("x")},
	)}
}

func TestIndented(t *testing.T) {
	want := strings.Join([]string{
		"Statements",
		"    Assign",
		"        x",
		"        1",
		"    While",
		"        <",
		"            x",
		"            10",
		"        Statements",
		"            Assign",
		"                x",
		"                +",
		"                    x",
		"                    1",
		"    Write",
		"        x",
	}, "\n") + "\n"

	assert.Equal(t, want, Indented(loopProgram()))
}

func TestIndentedIfForms(t *testing.T) {
	cond := &Comparison{Left: id("a"), Op: NotEqual, Right: id("b")}

	ifThen := &Program{Body: stmts(&IfThen{Condition: cond, Then: stmts(&Read{Target: id("a")})})}
	assert.Equal(t, "Statements\n    If\n        !=\n            a\n            b\n        Statements\n            Read\n                a\n",
		Indented(ifThen))

	ifElse := &Program{Body: stmts(&IfThenElse{
		Condition: cond,
		Then:      stmts(&Read{Target: id("a")}),
		Else:      stmts(&Write{Value: num("0")}),
	})}
	out := Indented(ifElse)
	assert.True(t, strings.HasPrefix(out, "Statements\n    If-Else\n"))
	assert.Contains(t, out, "        Statements\n            Write\n                0\n")
}

func TestIndentedStyled(t *testing.T) {
	prog := &Program{Body: stmts(&Write{Value: &BinaryExpr{Left: num("1"), Op: Mul, Right: id("y")}})}

	style := func(role Role, text string) string {
		switch role {
		case RoleConstruct:
			return "C(" + text + ")"
		case RoleOperator:
			return "O(" + text + ")"
		default:
			return "L(" + text + ")"
		}
	}

	want := "C(Statements)\n    C(Write)\n        O(*)\n            L(1)\n            L(y)\n"
	assert.Equal(t, want, IndentedStyled(prog, style))
}

func TestRenderingIsRepeatable(t *testing.T) {
	prog := loopProgram()
	prog.Body.Items = append(prog.Body.Items, &IfThenElse{
		Condition: &Comparison{Left: id("x"), Op: GreaterEq, Right: num("2")},
		Then:      stmts(&Read{Target: id("y")}),
		Else: stmts(&Write{Value: &BinaryExpr{
			Left:  &BinaryExpr{Left: num("8"), Op: Div, Right: num("4")},
			Op:    Sub,
			Right: id("y"),
		}}),
	})
	bracket := func(_ Role, text string) string { return "[" + text + "]" }

	first, second := Indented(prog), Indented(prog)
	assert.Equal(t, first, second)
	assert.Equal(t, IndentedStyled(prog, bracket), IndentedStyled(prog, bracket))
	assert.Equal(t, Canonical(prog), Canonical(prog))

	firstJSON, err := json.Marshal(Export(prog))
	require.NoError(t, err)
	secondJSON, err := json.Marshal(Export(prog))
	require.NoError(t, err)
	assert.Equal(t, string(firstJSON), string(secondJSON))

	// rendering never mutates the tree
	assert.Equal(t, first, Indented(prog))
	assert.NoError(t, Validate(prog))
}

func TestCanonical(t *testing.T) {
	assert.Equal(t, "x:=1; while x<10 do x:=(x+1) end; write x", Canonical(loopProgram()))

	nested := &Program{Body: stmts(&Write{Value: &BinaryExpr{
		Left:  &BinaryExpr{Left: num("1"), Op: Sub, Right: num("2")},
		Op:    Sub,
		Right: num("3"),
	}})}
	assert.Equal(t, "write ((1-2)-3)", Canonical(nested))

	ifElse := &Program{Body: stmts(&IfThenElse{
		Condition: &Comparison{Left: id("a"), Op: GreaterEq, Right: num("2")},
		Then:      stmts(&Read{Target: id("a")}),
		Else:      stmts(&Write{Value: id("a")}, &Write{Value: id("b")}),
	})}
	assert.Equal(t, "if a>=2 then read a else write a; write b end", Canonical(ifElse))
}

func TestInspectOrder(t *testing.T) {
	var kinds []string
	Inspect(loopProgram(), func(n Node) bool {
		kinds = append(kinds, KindName(n))
		return true
	})

	require.NotEmpty(t, kinds)
	assert.Equal(t, []string{"Program", "Statements", "Assign", "Identifier", "NumberLiteral", "While"}, kinds[:6])
	assert.Equal(t, 17, Count(loopProgram()))
}

func TestInspectSkipsChildren(t *testing.T) {
	var visited int
	Inspect(loopProgram(), func(n Node) bool {
		visited++
		_, isWhile := n.(*While)
		return !isWhile
	})
	// the While node is visited, its nine descendants are not
	assert.Equal(t, 8, visited)
}

func TestValidate(t *testing.T) {
	require.NoError(t, Validate(loopProgram()))

	tests := []struct {
		name string
		tree Node
		path string
	}{
		{"empty sequence", &Program{Body: &Statements{}}, "program.body"},
		{"missing body", &Program{}, "program.body"},
		{"missing value", &Program{Body: stmts(&Assign{Target: id("x")})}, "program.body[0].value"},
		{"bad number", &Program{Body: stmts(&Write{Value: num("1a")})}, "program.body[0].value"},
		{"bad identifier", &Program{Body: stmts(&Read{Target: id("X")})}, "program.body[0].target"},
		{"bad operator", &Program{Body: stmts(&Write{Value: &BinaryExpr{Left: num("1"), Op: "%", Right: num("2")}})}, "program.body[0].value"},
		{"typed nil", &Program{Body: stmts(&Read{Target: (*Identifier)(nil)})}, "program.body[0].target"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.tree)
			require.Error(t, err)
			assert.True(t, mdwerror.HasCode(err, mdwerror.CodeInvalidTree))
			assert.Contains(t, err.Error(), tt.path)
		})
	}
}

func TestPrintersTolerateNil(t *testing.T) {
	assert.Equal(t, "", Indented(nil))
	assert.Equal(t, "", Canonical(nil))
	assert.Equal(t, "Statements\n    Read\n", Indented(&Program{Body: stmts(&Read{})}))
}

func TestExport(t *testing.T) {
	tree := Export(&Program{Body: stmts(&Assign{
		Target: id("x"),
		Value:  &BinaryExpr{Left: num("2"), Op: Div, Right: id("y")},
	})})

	data, err := json.Marshal(tree)
	require.NoError(t, err)

	want := `{"kind":"Program","children":[{"kind":"Statements","children":[{"kind":"Assign","children":[` +
		`{"kind":"Identifier","text":"x"},{"kind":"BinaryExpr","text":"/","children":[` +
		`{"kind":"NumberLiteral","text":"2"},{"kind":"Identifier","text":"y"}]}]}]}]}`
	assert.JSONEq(t, want, string(data))
	assert.Nil(t, Export(nil))
}

func TestOperatorValidity(t *testing.T) {
	for _, op := range []RelOp{Less, Equal, Greater, LessEq, NotEqual, GreaterEq} {
		assert.True(t, op.Valid(), op)
	}
	assert.False(t, RelOp("==").Valid())

	for _, op := range []ArithOp{Add, Sub, Mul, Div} {
		assert.True(t, op.Valid(), op)
	}
	assert.False(t, ArithOp("%").Valid())
}
