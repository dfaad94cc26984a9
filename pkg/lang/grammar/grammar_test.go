package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mdwerror "github.com/msto63/wlang/pkg/core/error"
	mdwlog "github.com/msto63/wlang/pkg/core/log"
	"github.com/msto63/wlang/pkg/lang/ast"
	"github.com/msto63/wlang/pkg/lang/parser"
)

func newTestParser(t *testing.T) *Parser {
	t.Helper()
	p, err := New(Options{Logger: mdwlog.Discard()})
	require.NoError(t, err)
	return p
}

func TestParseMatchesDescent(t *testing.T) {
	inputs := []string{
		"x := 1",
		"write 1-2-3",
		"write 1+2*3",
		"write (1+2)*3",
		"write 8/4/2",
		"read x; write x",
		"if a<b then x:=1 end",
		"if a<=b then x:=1 else x:=2; y:=3 end",
		"while i != 0 do i := i - 1 end",
		"whilex := ifx + endy",
		"if a>b then if a=c then write a end end",
		"read n; f:=1; while n>0 do f:=f*n; n:=n-1 end; write f",
		"x\n:=\n\t1 ;write\nx",
		"x\x1c:=\x1f1;\x1ewrite\u2028x\u00a0",
	}

	p := newTestParser(t)
	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			want, err := parser.Parse(input)
			require.NoError(t, err)

			got, err := p.Parse(input)
			require.NoError(t, err)

			assert.Equal(t, ast.Canonical(want), ast.Canonical(got))
			assert.Equal(t, ast.Indented(want), ast.Indented(got))
			assert.Equal(t, want, got)
		})
	}
}

func TestParseRejects(t *testing.T) {
	inputs := []string{
		"",
		"x:=1;",
		"x := ",
		"write )",
		"if a<b then x:=1 x",
		"while x<1 do x:=1",
		"if a then x:=1 end",
		"read 5",
		"x:=1 y:=2",
		"write 1 < 2",
	}

	p := newTestParser(t)
	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			prog, err := p.Parse(input)
			require.Error(t, err)
			assert.Nil(t, prog)
			assert.Equal(t, mdwerror.CodeSyntax, mdwerror.GetCode(err))

			_, descentErr := parser.Parse(input)
			assert.Error(t, descentErr)
		})
	}
}

func TestReservedWordAsIdentifier(t *testing.T) {
	p := newTestParser(t)

	for _, input := range []string{"while := 1", "read do", "write end + 1"} {
		_, err := p.Parse(input)
		require.Error(t, err, input)

		var gerr *Error
		require.ErrorAs(t, err, &gerr, input)
		assert.Contains(t, gerr.Message, "reserved word")
	}
}

func TestLexicalErrorMatchesDescent(t *testing.T) {
	p := newTestParser(t)

	for _, input := range []string{"x := Y", ":", "x:=1 @ rest"} {
		_, err := p.Parse(input)
		require.Error(t, err)

		_, want := parser.Parse(input)
		require.Error(t, want)
		assert.Equal(t, want.Error(), err.Error())
		assert.Equal(t, mdwerror.CodeLexical, mdwerror.GetCode(err))
	}
}

func TestSyntaxErrorPosition(t *testing.T) {
	_, err := Parse("x:=1;\n  y:=)")
	require.Error(t, err)

	var gerr *Error
	require.ErrorAs(t, err, &gerr)
	assert.Positive(t, gerr.Line)
	assert.Positive(t, gerr.Column)
	assert.Contains(t, err.Error(), "syntax error: ")
}

func TestMaxInputLength(t *testing.T) {
	p, err := New(Options{Logger: mdwlog.Discard(), MaxInputLength: 3})
	require.NoError(t, err)

	_, err = p.Parse("x:=1")
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeInputTooLarge))

	_, err = New(Options{MaxInputLength: -5})
	assert.Error(t, err)
}

func TestEBNF(t *testing.T) {
	ebnf := newTestParser(t).EBNF()
	assert.Contains(t, ebnf, "\"while\"")
	assert.Contains(t, ebnf, "\":=\"")
}
