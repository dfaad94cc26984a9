// File: error_test.go
// Title: Error Module Tests
// Description: Tests for error creation, wrapping, codes, severity and
//              JSON rendering.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial test suite

package error

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"
)

type codedError struct{ code Code }

func (c codedError) Error() string { return "coded" }
func (c codedError) Code() Code    { return c.code }

func TestNew(t *testing.T) {
	err := New("test error message")

	if err.Error() != "test error message" {
		t.Errorf("Error() = %q, want %q", err.Error(), "test error message")
	}
	if err.Code() != CodeUnknown {
		t.Errorf("Code() = %v, want %v", err.Code(), CodeUnknown)
	}
	if err.Severity() != SeverityMedium {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityMedium)
	}
	if err.Timestamp().IsZero() {
		t.Error("Timestamp() should not be zero")
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantNil  bool
		wantMsg  string
		wantCode Code
	}{
		{name: "nil error", err: nil, wantNil: true},
		{name: "standard error", err: errors.New("boom"), wantMsg: "parse: boom", wantCode: CodeUnknown},
		{name: "structured error", err: New("bad config").WithCode(CodeInvalidConfig), wantMsg: "parse: bad config", wantCode: CodeInvalidConfig},
		{name: "coded error", err: codedError{code: CodeSyntax}, wantMsg: "parse: coded", wantCode: CodeSyntax},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := Wrap(tt.err, "parse")
			if tt.wantNil {
				if wrapped != nil {
					t.Fatalf("Wrap(nil) = %v, want nil", wrapped)
				}
				return
			}
			if wrapped.Error() != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", wrapped.Error(), tt.wantMsg)
			}
			if wrapped.Code() != tt.wantCode {
				t.Errorf("Code() = %v, want %v", wrapped.Code(), tt.wantCode)
			}
			if !errors.Is(wrapped, tt.err) {
				t.Error("wrapped error should match its cause with errors.Is")
			}
		})
	}
}

func TestWrapKeepsDetails(t *testing.T) {
	inner := New("inner").WithCode(CodeLexical).WithDetail("offset", 3)
	outer := Wrap(inner, "outer")

	if got := outer.Details()["offset"]; got != 3 {
		t.Errorf("Details()[offset] = %v, want 3", got)
	}
	if outer.Severity() != SeverityMedium {
		t.Errorf("Severity() = %v, want %v", outer.Severity(), SeverityMedium)
	}
}

func TestWithCodeSetsSeverity(t *testing.T) {
	tests := []struct {
		code Code
		want Severity
	}{
		{CodeSyntax, SeverityLow},
		{CodeInputTooLarge, SeverityMedium},
		{CodeInvalidConfig, SeverityHigh},
		{CodeBackendMismatch, SeverityCritical},
	}
	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			if got := New("x").WithCode(tt.code).Severity(); got != tt.want {
				t.Errorf("Severity() = %v, want %v", got, tt.want)
			}
		})
	}

	explicit := New("x").WithSeverity(SeverityLow).WithCode(CodeInternal)
	if explicit.Severity() != SeverityLow {
		t.Errorf("explicit severity overwritten: %v", explicit.Severity())
	}
}

func TestGetCode(t *testing.T) {
	err := fmt.Errorf("context: %w", New("x").WithCode(CodeTrailingInput))
	if !HasCode(err, CodeTrailingInput) {
		t.Errorf("HasCode() = false, want true for %v", err)
	}
	if GetCode(errors.New("plain")) != CodeUnknown {
		t.Error("plain errors should report CodeUnknown")
	}
}

func TestCodeCategory(t *testing.T) {
	if CodeSyntax.Category() != "frontend" {
		t.Errorf("Category() = %q, want frontend", CodeSyntax.Category())
	}
	if CodeMissingConfig.Category() != "configuration" {
		t.Errorf("Category() = %q, want configuration", CodeMissingConfig.Category())
	}
	if Code("NOPE").IsValid() {
		t.Error("unknown code reported as valid")
	}
}

func TestMarshalJSON(t *testing.T) {
	err := New("bad token").WithCode(CodeSyntax).WithOperation("parse").WithDetail("found", "END")

	data, marshalErr := json.Marshal(err)
	if marshalErr != nil {
		t.Fatalf("MarshalJSON() error = %v", marshalErr)
	}

	var decoded map[string]interface{}
	if jsonErr := json.Unmarshal(data, &decoded); jsonErr != nil {
		t.Fatalf("invalid JSON: %v", jsonErr)
	}
	if decoded["code"] != "SYNTAX" {
		t.Errorf("code = %v, want SYNTAX", decoded["code"])
	}
	if decoded["operation"] != "parse" {
		t.Errorf("operation = %v, want parse", decoded["operation"])
	}
	details, ok := decoded["details"].(map[string]interface{})
	if !ok || details["found"] != "END" {
		t.Errorf("details = %v, want found=END", decoded["details"])
	}
}

func TestNewfAndDetails(t *testing.T) {
	err := Newf("input exceeds maximum length: %d > %d", 9, 4).
		WithDetails(map[string]interface{}{"length": 9, "max_length": 4}).
		WithContext("stdin")

	if err.Error() != "input exceeds maximum length: 9 > 4" {
		t.Errorf("Error() = %q", err.Error())
	}
	details := err.Details()
	if details["length"] != 9 || details["max_length"] != 4 {
		t.Errorf("Details() = %v", details)
	}
	if err.Context() != "stdin" {
		t.Errorf("Context() = %q, want stdin", err.Context())
	}
}

func TestShouldAlert(t *testing.T) {
	tests := []struct {
		code Code
		want bool
	}{
		{CodeSyntax, false},
		{CodeLexical, false},
		{CodeInputTooLarge, false},
		{CodeIO, true},
		{CodeInvalidTree, true},
		{CodeBackendMismatch, true},
	}

	for _, tt := range tests {
		if got := GetSeverityFromCode(tt.code).ShouldAlert(); got != tt.want {
			t.Errorf("ShouldAlert(%v) = %v, want %v", tt.code, got, tt.want)
		}
	}
}
