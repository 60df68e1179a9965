package tui

import "github.com/charmbracelet/lipgloss"

var (
	canvasStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#FFC107"))
	statsStyle  = lipgloss.NewStyle().Padding(0, 2).Width(48)
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD700")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	burstStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF8F00")).Bold(true)
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFA500")).Padding(1, 0)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)
