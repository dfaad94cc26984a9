// Package cmd implements the cobra commands of the wlang tool.
package cmd
