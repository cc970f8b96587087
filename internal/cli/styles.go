// Package cli provides styled terminal output using lipgloss.
package cli

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	// PrimaryColor is the main theme color.
	PrimaryColor = lipgloss.Color("#38BDF8")
	// SuccessColor indicates successful operations and income figures.
	SuccessColor = lipgloss.Color("#4ADE80")
	// WarningColor indicates warnings or near-budget categories.
	WarningColor = lipgloss.Color("#FACC15")
	// ErrorColor indicates errors, overspend, and expense figures.
	ErrorColor = lipgloss.Color("#F87171")
	// SavingsColor indicates savings figures.
	SavingsColor = lipgloss.Color("#C084FC")
	// SubtleColor indicates less prominent UI elements.
	SubtleColor = lipgloss.Color("#666666")

	// TitleStyle is used for section titles.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor).
			MarginBottom(1)

	// SuccessStyle formats success messages and income amounts.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor)

	// WarningStyle formats warning messages.
	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor)

	// ErrorStyle formats error messages and expense amounts.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor)

	// SavingsStyle formats savings amounts.
	SavingsStyle = lipgloss.NewStyle().
			Foreground(SavingsColor)

	// SubtleStyle formats less prominent text.
	SubtleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	// BoldStyle makes text bold.
	BoldStyle = lipgloss.NewStyle().Bold(true)
)

// Icons.
const (
	SuccessIcon = "✓"
	ErrorIcon   = "✗"
	WarningIcon = "⚠️"
	WalletIcon  = "👛"
	ChartIcon   = "📊"
	BankIcon    = "🏦"
	SparkIcon   = "✨"
)

// FormatSuccess formats a success message with icon.
func FormatSuccess(message string) string {
	return SuccessStyle.Render(SuccessIcon + " " + message)
}

// FormatError formats an error message with icon.
func FormatError(message string) string {
	return ErrorStyle.Render(ErrorIcon + " " + message)
}

// FormatWarning formats a warning message with icon.
func FormatWarning(message string) string {
	return WarningStyle.Render(WarningIcon + " " + message)
}

// FormatTitle formats a title with the wallet icon.
func FormatTitle(title string) string {
	return TitleStyle.Render(WalletIcon + " " + title)
}
