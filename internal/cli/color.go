package cli

import "github.com/charmbracelet/lipgloss"

var (
	primaryStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF8C00"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF0000"))
	infoStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#00CFCF"))
	silentStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#808080"))
	holidayStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#E0245E")).Bold(true)
	saturdayStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#1D9BF0"))
)

// Primary renders success text such as the verify "ok".
func Primary(text string) string { return primaryStyle.Render(text) }

// Error renders failures and mismatches.
func Error(text string) string { return errorStyle.Render(text) }

// Info renders status notes written to stderr.
func Info(text string) string { return infoStyle.Render(text) }

// Silent renders secondary text such as weekdays and "business day".
func Silent(text string) string { return silentStyle.Render(text) }

// Holiday renders holiday names and Sunday or holiday cells.
func Holiday(text string) string { return holidayStyle.Render(text) }

// Saturday renders Saturday cells of the month grid.
func Saturday(text string) string { return saturdayStyle.Render(text) }
