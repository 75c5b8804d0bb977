// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/project-estimator/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 8
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintConfigSummary outputs a human-readable summary of a loaded config.
func (p *Printer) PrintConfigSummary(cfg *types.Config) {
	if cfg == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Countries:    %d\n", len(cfg.Countries)))
	sb.WriteString(fmt.Sprintf("Levers:       %d\n", len(cfg.Levers)))
	sb.WriteString(fmt.Sprintf("Dependencies: %d\n", len(cfg.Dependencies)))
	sb.WriteString(fmt.Sprintf("Presets:      %d\n", len(cfg.Presets)))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("PM overhead:  %.0f%% of build\n", cfg.GlobalOverheads.PMPercentOfBuild*100))
	sb.WriteString(fmt.Sprintf("QA overhead:  %.0f%% of build\n", cfg.GlobalOverheads.QAPercentOfBuild*100))

	p.printBox("⚙ Configuration", strings.TrimRight(sb.String(), "\n"))
}

// PrintEstimate outputs a human-readable summary of a computed estimate.
func (p *Printer) PrintEstimate(result *types.EstimateResult) {
	if result == nil {
		return
	}

	var sb strings.Builder

	shown := 0
	for _, role := range types.Roles {
		hours := result.Hours[role]
		cost := result.Cost[role]
		if hours == 0 && cost == 0 {
			continue
		}
		if shown >= maxItemsToShow {
			break
		}
		sb.WriteString(fmt.Sprintf("%-9s %8.1fh  %s%.0f\n", role, hours, result.Symbol, cost))
		shown++
	}
	if shown == 0 {
		sb.WriteString("(no hours accumulated)\n")
	}
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Build:    %8.1fh  %s%.0f\n", result.Subtotal.Hours, result.Symbol, result.Subtotal.Cost))
	sb.WriteString(fmt.Sprintf("P50:      %8.1fh  %s%.0f\n", result.P50.Hours, result.Symbol, result.P50.Cost))
	sb.WriteString(fmt.Sprintf("P80:      %8.1fh  %s%.0f\n", result.P80.Hours, result.Symbol, result.P80.Cost))

	p.printBox(fmt.Sprintf("📊 Estimate (%s)", result.Currency), strings.TrimRight(sb.String(), "\n"))
}

// PrintTrace outputs the debug trace of a computed estimate: hidden levers,
// applied multipliers, and any anomalies gathered during computation.
func (p *Printer) PrintTrace(trace *types.DebugTrace) {
	if trace == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Estimate ID: %s\n", trace.EstimateID))
	sb.WriteString(fmt.Sprintf("Risk:        %s (%.0f%%)\n", trace.RiskLevel, trace.RiskPercent*100))
	sb.WriteString(fmt.Sprintf("Converged:   %v\n", trace.Converged))

	if len(trace.HiddenLeverIDs) > 0 {
		sb.WriteString("\nHidden levers:\n")
		count := min(len(trace.HiddenLeverIDs), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", trace.HiddenLeverIDs[i]))
		}
		if len(trace.HiddenLeverIDs) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(trace.HiddenLeverIDs)-maxItemsToShow))
		}
	}

	if len(trace.Anomalies) > 0 {
		sb.WriteString("\nAnomalies:\n")
		count := min(len(trace.Anomalies), maxItemsToShow)
		for i := 0; i < count; i++ {
			a := trace.Anomalies[i]
			sb.WriteString(fmt.Sprintf("  • [%s] %s: %s\n", a.Code, a.Subject, a.Message))
		}
		if len(trace.Anomalies) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(trace.Anomalies)-maxItemsToShow))
		}
	}

	p.printBox("🔍 Trace", strings.TrimRight(sb.String(), "\n"))
}
