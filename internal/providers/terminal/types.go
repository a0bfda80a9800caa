package terminal

import (
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/GriffinCanCode/AlteronOS/internal/shared/id"
)

// Session is the state of one shell session
type Session struct {
	ID        id.SessionID
	Cwd       string
	StartedAt time.Time
	Commands  int
}

// SessionInfo is the public representation of a session
type SessionInfo struct {
	ID        string    `json:"id"`
	Cwd       string    `json:"cwd"`
	StartedAt time.Time `json:"started_at"`
	Commands  int       `json:"commands"`
}

// Info returns the public view of the session
func (s *Session) Info() SessionInfo {
	return SessionInfo{
		ID:        s.ID.String(),
		Cwd:       s.Cwd,
		StartedAt: s.StartedAt,
		Commands:  s.Commands,
	}
}

// Styles holds the shell's output styles
type Styles struct {
	Prompt  lipgloss.Style
	Error   lipgloss.Style
	Success lipgloss.Style
	Dir     lipgloss.Style
	Heading lipgloss.Style
}

// DefaultStyles returns the colored styles used on terminals
func DefaultStyles() Styles {
	return Styles{
		Prompt:  lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		Dir:     lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		Heading: lipgloss.NewStyle().Bold(true).Underline(true),
	}
}

// PlainStyles returns styles that render text unchanged
func PlainStyles() Styles {
	plain := lipgloss.NewStyle()
	return Styles{Prompt: plain, Error: plain, Success: plain, Dir: plain, Heading: plain}
}
