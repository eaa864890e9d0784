package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/sphere-sync/models"
)

var (
	appStyle    = lipgloss.NewStyle().Padding(0, 1)
	titleStyle  = lipgloss.NewStyle().Bold(true)
	helpStyle   = lipgloss.NewStyle().Faint(true)
	errorStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	boxStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	statusStyle = map[models.ItemStatus]lipgloss.Style{
		models.StatusInSync:           lipgloss.NewStyle().Faint(true),
		models.StatusView:             lipgloss.NewStyle().Faint(true),
		models.StatusRequestData:      lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		models.StatusNewDataAvailable: lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		models.StatusCreatedInCloud:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		models.StatusUpdatedInCloud:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		models.StatusAlreadyInCloud:   lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
		models.StatusNotAvailable:     lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		models.StatusAccessDenied:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		models.StatusError:            lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
	}
)

func styleStatus(s models.ItemStatus) string {
	style, ok := statusStyle[s]
	if !ok {
		return string(s)
	}
	return style.Render(string(s))
}
