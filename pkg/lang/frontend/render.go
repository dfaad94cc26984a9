// File: render.go
// Title: Tree Rendering
// Description: Renders parsed programs in the supported output formats.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial renderers

package frontend

import (
	"bytes"
	"encoding/json"

	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/wlang/pkg/core/error"
	"github.com/msto63/wlang/pkg/lang/ast"
)

// Format names an output format
type Format string

const (
	FormatIndented  Format = "indented"
	FormatCanonical Format = "canonical"
	FormatJSON      Format = "json"
	FormatYAML      Format = "yaml"
)

// Formats lists the supported output formats
var Formats = []Format{FormatIndented, FormatCanonical, FormatJSON, FormatYAML}

// ParseFormat converts a configuration value into a Format
func ParseFormat(name string) (Format, error) {
	for _, f := range Formats {
		if string(f) == name {
			return f, nil
		}
	}
	return "", mdwerror.Newf("unknown output format %q", name).
		WithCode(mdwerror.CodeInvalidInput).
		WithOperation("frontend.ParseFormat")
}

// Render renders prog in the given format. Every format ends with a
// newline. style only affects the indented format and may be nil.
func Render(prog *ast.Program, format Format, style ast.Styler) (string, error) {
	switch format {
	case FormatIndented:
		return ast.IndentedStyled(prog, style), nil
	case FormatCanonical:
		return ast.Canonical(prog) + "\n", nil
	case FormatJSON:
		data, err := json.MarshalIndent(ast.Export(prog), "", "  ")
		if err != nil {
			return "", mdwerror.Wrap(err, "failed to encode JSON").
				WithCode(mdwerror.CodeInternal).
				WithOperation("frontend.Render")
		}
		return string(data) + "\n", nil
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(ast.Export(prog)); err != nil {
			return "", mdwerror.Wrap(err, "failed to encode YAML").
				WithCode(mdwerror.CodeInternal).
				WithOperation("frontend.Render")
		}
		if err := enc.Close(); err != nil {
			return "", mdwerror.Wrap(err, "failed to encode YAML").
				WithCode(mdwerror.CodeInternal).
				WithOperation("frontend.Render")
		}
		return buf.String(), nil
	default:
		_, err := ParseFormat(string(format))
		return "", err
	}
}
