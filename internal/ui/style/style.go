// Package style provides the brand colours and icons shared by all terminal output.
package style

import (
	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/assetimport/internal/core/domain"
)

// Brand Colors.
var (
	Iris   = lipgloss.Color("#8B5CF6")
	Slate  = lipgloss.Color("#667085")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Dot     = "●"
	Circle  = "○"
)

// StatusIcon returns the icon and colour used to show a file status.
func StatusIcon(s domain.FileStatus) (string, lipgloss.Color) {
	switch s {
	case domain.StatusReady:
		return Check, Green
	case domain.StatusPending:
		return Circle, Yellow
	default:
		return Cross, Red
	}
}
