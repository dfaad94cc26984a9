// File: doc.go
// Title: Grammar Based Front End Package Documentation
// Description: Alternate while language front end generated from a
//              participle grammar.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial participle front end

/*
Package grammar parses while language programs with a participle grammar and
converts the result into the same ast.Program the descent parser builds.

Lexical errors are reported as *parser.Error with the shared wording; syntax
errors are *Error values carrying participle's message and position.
*/
package grammar
