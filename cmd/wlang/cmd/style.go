package cmd

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/msto63/wlang/pkg/lang/ast"
)

// Colors
var (
	colorConstruct = lipgloss.Color("#7C3AED")
	colorOperator  = lipgloss.Color("#F59E0B")
	colorLeaf      = lipgloss.Color("#10B981")
)

// Styles
var (
	constructStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorConstruct)

	operatorStyle = lipgloss.NewStyle().
			Foreground(colorOperator)

	leafStyle = lipgloss.NewStyle().
			Foreground(colorLeaf)
)

// treeStyler colours one line of the indented tree by its role
func treeStyler(role ast.Role, text string) string {
	switch role {
	case ast.RoleConstruct:
		return constructStyle.Render(text)
	case ast.RoleOperator:
		return operatorStyle.Render(text)
	default:
		return leafStyle.Render(text)
	}
}
