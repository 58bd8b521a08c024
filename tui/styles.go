package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Simple palette inspired by standard terminal dark themes
var (
	ColorPrimary = lipgloss.Color("255") // White
	ColorAccent  = lipgloss.Color("39")  // Blue / Cyan
	ColorSuccess = lipgloss.Color("42")  // Green
	ColorError   = lipgloss.Color("196") // Red
	ColorWarning = lipgloss.Color("214") // Orange
	ColorDim     = lipgloss.Color("240") // Dimmed text
)

// Shared styles - minimal and clean
var (
	StyleNormal  = lipgloss.NewStyle().Foreground(ColorPrimary)
	StyleDimmed  = lipgloss.NewStyle().Foreground(ColorDim)
	StyleSuccess = lipgloss.NewStyle().Foreground(ColorSuccess)
	StyleError   = lipgloss.NewStyle().Foreground(ColorError).Bold(true)
	StyleWarning = lipgloss.NewStyle().Foreground(ColorWarning)
	StyleTitle   = lipgloss.NewStyle().Bold(true).Foreground(ColorAccent)
	StylePrompt  = lipgloss.NewStyle().Bold(true).Foreground(ColorAccent)
	StyleSQL     = lipgloss.NewStyle().Foreground(ColorWarning)
)
