package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/GriffinCanCode/AlteronOS/internal/domain/sniffer"
	"github.com/GriffinCanCode/AlteronOS/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/AlteronOS/internal/shared/types"
)

var (
	headingStyle  = lipgloss.NewStyle().Bold(true)
	successStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	platformStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// systemReport is the encoded form of info
type systemReport struct {
	types.SystemInfo
	Metrics monitoring.Snapshot `json:"metrics"`
}

func printSnapshot(w io.Writer, snap monitoring.Snapshot) {
	fmt.Fprintln(w, headingStyle.Render("Runtime"))
	fmt.Fprintf(w, "Classifications:   %d\n", snap.Classifications)
	fmt.Fprintf(w, "Dispatches:        %d\n", snap.Dispatches)
	fmt.Fprintf(w, "Dispatch failures: %d\n", snap.DispatchFailures)
	fmt.Fprintf(w, "Mutations:         %d\n", snap.Mutations)
	fmt.Fprintf(w, "Protected denials: %d\n", snap.ProtectedDenials)
}

// report prints a dispatch outcome; failures become the command error
func report(w io.Writer, out *types.Outcome) error {
	if body := strings.TrimRight(out.Output, "\n"); body != "" {
		fmt.Fprintln(w, body)
	}
	if !out.Success {
		return out.Err()
	}
	fmt.Fprintln(w, successStyle.Render(fmt.Sprintf("%s %s completed via %s", out.Platform, out.Op, out.Handler)))
	return nil
}

func describe(d sniffer.Details) string {
	line := fmt.Sprintf("%s: %s (by %s)", d.Path, platformStyle.Render(d.Platform.String()), d.Method)
	if d.Format != "" {
		line += ", format " + d.Format
	}
	if d.MIME != "" {
		line += ", " + d.MIME
	}
	return line
}

func yesNo(ok bool) string {
	if ok {
		return successStyle.Render("available")
	}
	return mutedStyle.Render("not installed")
}

func listOrNone(items []string) string {
	if len(items) == 0 {
		return "none"
	}
	return strings.Join(items, ", ")
}
