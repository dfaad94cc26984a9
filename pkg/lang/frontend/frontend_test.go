package frontend

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/wlang/pkg/core/error"
	mdwlog "github.com/msto63/wlang/pkg/core/log"
	"github.com/msto63/wlang/pkg/lang/ast"
)

func newTestEngine(t *testing.T, opts ...Options) *Engine {
	t.Helper()
	o := Options{Logger: mdwlog.Discard()}
	if len(opts) > 0 {
		o = opts[0]
	}
	e, err := NewEngine(o)
	require.NoError(t, err)
	return e
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestGoldenFiles(t *testing.T) {
	sources, err := filepath.Glob(filepath.Join("testdata", "*.while"))
	require.NoError(t, err)
	require.NotEmpty(t, sources)

	e := newTestEngine(t)
	ctx := context.Background()

	for _, src := range sources {
		base := strings.TrimSuffix(src, ".while")
		input := readFile(t, src)
		wantIndented := readFile(t, base+".indented")
		wantCanonical := readFile(t, base+".canonical")

		for _, backend := range Backends {
			t.Run(filepath.Base(base)+"/"+string(backend), func(t *testing.T) {
				res, err := e.ParseWith(ctx, backend, input)
				require.NoError(t, err)
				assert.Equal(t, backend, res.Backend)
				assert.NotEmpty(t, res.ID)

				indented, err := Render(res.Program, FormatIndented, nil)
				require.NoError(t, err)
				assert.Equal(t, wantIndented, indented)

				canonical, err := Render(res.Program, FormatCanonical, nil)
				require.NoError(t, err)
				assert.Equal(t, wantCanonical, canonical)
			})
		}
	}
}

func TestParseUsesConfiguredBackend(t *testing.T) {
	e := newTestEngine(t, Options{Logger: mdwlog.Discard(), Backend: BackendParticiple})
	assert.Equal(t, BackendParticiple, e.Backend())

	res, err := e.Parse(context.Background(), "write 1")
	require.NoError(t, err)
	assert.Equal(t, BackendParticiple, res.Backend)

	assert.Equal(t, BackendDescent, newTestEngine(t).Backend())
}

func TestNewEngineRejectsUnknownBackend(t *testing.T) {
	_, err := NewEngine(Options{Backend: "yacc"})
	require.Error(t, err)
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeInvalidInput))
}

func TestParseReturnsDiagnosticUnchanged(t *testing.T) {
	e := newTestEngine(t)

	_, err := e.Parse(context.Background(), "x := ")
	require.Error(t, err)
	assert.Equal(t, "syntax error: token in [ID, LPAR, NUM] expected but EOF found", err.Error())
}

func TestParseLogsFailureWithCorrelationID(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := mdwlog.NewWithConfig(mdwlog.Config{Level: mdwlog.LevelInfo, Format: mdwlog.FormatJSON, Output: buf})
	e := newTestEngine(t, Options{Logger: logger})

	_, err := e.Parse(context.Background(), "write")
	require.Error(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "SYNTAX", entry["error_code"])
	assert.Equal(t, "descent", entry["error_backend"])
	assert.NotEmpty(t, entry["correlation_id"])
}

func TestParseTimerRecordsRejection(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := mdwlog.NewWithConfig(mdwlog.Config{Level: mdwlog.LevelDebug, Format: mdwlog.FormatJSON, Output: buf})
	e := newTestEngine(t, Options{Logger: logger})

	_, err := e.Parse(context.Background(), "write")
	require.Error(t, err)

	var timed []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		if entry["message"] == "parse failed" {
			timed = append(timed, entry)
		}
	}
	require.Len(t, timed, 1)
	assert.Equal(t, "debug", timed[0]["level"])
	assert.Equal(t, "rejected", timed[0]["outcome"])
	assert.Equal(t, err.Error(), timed[0]["error"])
}

func TestParseHonorsContext(t *testing.T) {
	e := newTestEngine(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := e.Parse(ctx, "x:=1")
	assert.ErrorIs(t, err, context.Canceled)

	_, err = e.Tokenize(ctx, "x:=1")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestTokenize(t *testing.T) {
	e := newTestEngine(t)

	tokens, err := e.Tokenize(context.Background(), "if x<=10 then")
	require.NoError(t, err)

	var got []string
	for _, tok := range tokens {
		got = append(got, tok.String())
	}
	assert.Equal(t, []string{"IF", "ID x", "LEQ", "NUM 10", "THEN"}, got)

	_, err = e.Tokenize(context.Background(), "x & y")
	assert.EqualError(t, err, "lexical error: no token found at the start of & y")
}

func TestMaxInputLength(t *testing.T) {
	e := newTestEngine(t, Options{Logger: mdwlog.Discard(), MaxInputLength: 8})

	for _, backend := range Backends {
		_, err := e.ParseWith(context.Background(), backend, "x := 1000000")
		require.Error(t, err)
		assert.True(t, mdwerror.HasCode(err, mdwerror.CodeInputTooLarge), backend)
	}
}

func TestRenderStructuredFormats(t *testing.T) {
	e := newTestEngine(t)
	res, err := e.Parse(context.Background(), "x := y + 1")
	require.NoError(t, err)
	want := ast.Export(res.Program)

	out, err := Render(res.Program, FormatJSON, nil)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(out, "\n"))
	var fromJSON ast.Tree
	require.NoError(t, json.Unmarshal([]byte(out), &fromJSON))
	assert.Equal(t, want, &fromJSON)

	out, err = Render(res.Program, FormatYAML, nil)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "kind: Program\n"))
	var fromYAML ast.Tree
	require.NoError(t, yaml.Unmarshal([]byte(out), &fromYAML))
	assert.Equal(t, want, &fromYAML)

	_, err = Render(res.Program, Format("xml"), nil)
	assert.Error(t, err)
}

func TestRenderStyled(t *testing.T) {
	prog, err := newTestEngine(t).Parse(context.Background(), "read x")
	require.NoError(t, err)

	upper := func(_ ast.Role, text string) string { return strings.ToUpper(text) }
	out, err := Render(prog.Program, FormatIndented, upper)
	require.NoError(t, err)
	assert.Equal(t, "STATEMENTS\n    READ\n        X\n", out)

	// styling never reaches the canonical form
	out, err = Render(prog.Program, FormatCanonical, upper)
	require.NoError(t, err)
	assert.Equal(t, "read x\n", out)
}

func TestParseFormatAndBackend(t *testing.T) {
	f, err := ParseFormat("yaml")
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, f)
	_, err = ParseFormat("toml")
	assert.Error(t, err)

	b, err := ParseBackend("participle")
	require.NoError(t, err)
	assert.Equal(t, BackendParticiple, b)
	_, err = ParseBackend("")
	assert.Error(t, err)
}

func TestCrossCheck(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()

	inputs := []string{
		"x:=1; while x<10 do x:=x+1 end; write x",
		"if a=b then read a else write (a-b)*2/c end",
		"whilex := 1",
		"x := ",
		"x:=1;",
		"x:=1 y:=2",
		"x := Y",
		"",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			res, err := e.CrossCheck(ctx, input)
			require.NoError(t, err)
			assert.True(t, res.Agree())
			assert.Equal(t, res.Descent.OK(), res.Participle.OK())
		})
	}
}

func TestCheckResultDisagreement(t *testing.T) {
	res := &CheckResult{
		Descent:    &Outcome{Backend: BackendDescent, Canonical: "write 1"},
		Participle: &Outcome{Backend: BackendParticiple, Canonical: "write 2"},
	}
	assert.False(t, res.Agree())

	res.Participle = &Outcome{Backend: BackendParticiple, Err: assert.AnError}
	assert.False(t, res.Agree())

	res.Descent = &Outcome{Backend: BackendDescent, Err: assert.AnError}
	assert.True(t, res.Agree())
}

func TestGrammar(t *testing.T) {
	assert.Contains(t, newTestEngine(t).Grammar(), "\"do\"")
}

func TestParseCache(t *testing.T) {
	e := newTestEngine(t, Options{Logger: mdwlog.Discard(), CacheSize: 4})
	ctx := context.Background()

	first, err := e.Parse(ctx, "x := 1")
	require.NoError(t, err)
	assert.False(t, first.Cached)

	second, err := e.Parse(ctx, "x := 1")
	require.NoError(t, err)
	assert.True(t, second.Cached)
	assert.Same(t, first.Program, second.Program)
	assert.NotEqual(t, first.ID, second.ID)

	// back ends are cached separately
	other, err := e.ParseWith(ctx, BackendParticiple, "x := 1")
	require.NoError(t, err)
	assert.False(t, other.Cached)

	// rejected input is never cached
	_, err = e.Parse(ctx, "x :=")
	require.Error(t, err)
	_, err = e.Parse(ctx, "x :=")
	require.Error(t, err)

	hits, misses := e.CacheStats()
	assert.Equal(t, int64(1), hits)
	assert.Equal(t, int64(4), misses)

	hits, misses = newTestEngine(t).CacheStats()
	assert.Zero(t, hits)
	assert.Zero(t, misses)
}

func TestRenderingIsRepeatable(t *testing.T) {
	input := readFile(t, filepath.Join("testdata", "gcd.while"))
	ctx := context.Background()
	e := newTestEngine(t, Options{Logger: mdwlog.Discard(), CacheSize: 2})

	first, err := e.Parse(ctx, input)
	require.NoError(t, err)
	bracket := func(_ ast.Role, text string) string { return "[" + text + "]" }

	want := make(map[Format]string)
	for _, format := range Formats {
		once, err := Render(first.Program, format, bracket)
		require.NoError(t, err)
		twice, err := Render(first.Program, format, bracket)
		require.NoError(t, err)
		assert.Equal(t, once, twice, format)
		want[format] = once
	}

	// a cache hit hands out the same tree; rendering it again is unchanged
	cached, err := e.Parse(ctx, input)
	require.NoError(t, err)
	require.True(t, cached.Cached)
	require.Same(t, first.Program, cached.Program)

	fresh, err := newTestEngine(t).Parse(ctx, input)
	require.NoError(t, err)
	for _, format := range Formats {
		again, err := Render(cached.Program, format, bracket)
		require.NoError(t, err)
		assert.Equal(t, want[format], again, format)

		uncached, err := Render(fresh.Program, format, bracket)
		require.NoError(t, err)
		assert.Equal(t, want[format], uncached, format)
	}
}
