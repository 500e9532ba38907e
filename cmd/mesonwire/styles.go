// SPDX-License-Identifier: MPL-2.0

package cmd

import "github.com/charmbracelet/lipgloss"

// Shared lipgloss styles for CLI output, tuned for dark terminals.
var (
	// TitleStyle marks section headers and the product name.
	TitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#A78BFA"))

	// SubtitleStyle de-emphasizes secondary lines and absence markers.
	SubtitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#9CA3AF"))

	// SuccessStyle marks confirmations and presence markers.
	SuccessStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#34D399"))

	// WarningStyle marks degraded-but-continuing conditions.
	WarningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FBBF24"))

	// ErrorStyle marks failures.
	ErrorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F87171"))

	// CmdStyle marks command names, interface keys, and paths.
	CmdStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#60A5FA"))
)
