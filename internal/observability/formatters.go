// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/newsguard/internal/rules"
	"github.com/jonathan/newsguard/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
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

// PrintAssessment outputs a human-readable summary of a completed assessment:
// headline risk, per-rule verdicts, corroboration, and style findings.
func (p *Printer) PrintAssessment(assessment *types.FinalAssessment, ruleSet []rules.Rule) {
	if assessment == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Title:      %s\n", assessment.Title))
	sb.WriteString(fmt.Sprintf("Domain:     %s\n", assessment.Domain))
	sb.WriteString(fmt.Sprintf("Risk:       %d%% (%s)\n", assessment.RiskPercentage, assessment.RiskLevel))
	sb.WriteString(fmt.Sprintf("Confidence: %s\n", assessment.Confidence))

	if assessment.Parsed != nil && assessment.Parsed.Explanation != "" {
		explanation := assessment.Parsed.Explanation
		if len(explanation) > 50 {
			explanation = explanation[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("Summary:    %s\n", explanation))
	}

	p.printBox("ASSESSMENT", strings.TrimSuffix(sb.String(), "\n"))

	p.printVerdicts(assessment.Parsed, ruleSet)
	p.PrintCorroboration(assessment.Corroboration)
	p.PrintStyleSignals(assessment.StyleSignals)
}

// printVerdicts outputs one line per rule verdict in rule definition order.
func (p *Printer) printVerdicts(parsed *types.ParsedAssessment, ruleSet []rules.Rule) {
	if parsed == nil || len(parsed.Verdicts) == 0 {
		return
	}

	var sb strings.Builder
	shown := 0
	for _, rule := range ruleSet {
		verdict, ok := parsed.Verdicts[rule.ID]
		if !ok {
			continue
		}
		marker := verdictMarker(verdict.Verdict)
		sb.WriteString(fmt.Sprintf("%s %s: %s\n", marker, rule.Name, verdict.Verdict))
		reason := verdict.Reason
		if len(reason) > 50 {
			reason = reason[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("  %s\n", reason))
		shown++
	}
	if shown == 0 {
		return
	}

	p.printBox("RULE VERDICTS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintCorroboration outputs the web-verification summary.
func (p *Printer) PrintCorroboration(report *types.CorroborationReport) {
	if report == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Trusted sources: %d\n", report.TrustedSourceCount))
	sb.WriteString(fmt.Sprintf("Consistency:     %d\n", report.ConsistencyScore))
	sb.WriteString(fmt.Sprintf("Adjustment:      %+d\n", report.RiskAdjustment))
	sb.WriteString(fmt.Sprintf("Note: %s\n", report.Explanation))

	if len(report.Sources) > 0 {
		sb.WriteString("\nSources:\n")
		count := min(len(report.Sources), maxItemsToShow)
		for i := 0; i < count; i++ {
			source := report.Sources[i]
			marker := " "
			if source.Trusted {
				marker = "✓"
			}
			title := source.Title
			if len(title) > 40 {
				title = title[:37] + "..."
			}
			sb.WriteString(fmt.Sprintf("  %s %s — %s\n", marker, source.Domain, title))
		}
	}

	p.printBox("WEB CORROBORATION", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintStyleSignals outputs advisory style findings, when any exist.
func (p *Printer) PrintStyleSignals(signals *types.StyleSignals) {
	if signals == nil {
		return
	}
	if signals.EmotionalWordCount == 0 && len(signals.PunctuationIssues) == 0 {
		return
	}

	var sb strings.Builder
	if signals.EmotionalWordCount > 0 {
		sb.WriteString(fmt.Sprintf("Emotional wording: %d occurrences\n", signals.EmotionalWordCount))
	}
	for _, issue := range signals.PunctuationIssues {
		sb.WriteString(fmt.Sprintf("⚠ %s\n", issue))
	}

	p.printBox("STYLE SIGNALS (advisory)", strings.TrimSuffix(sb.String(), "\n"))
}

func verdictMarker(verdict types.Verdict) string {
	switch verdict {
	case types.VerdictMatches:
		return "⚠"
	case types.VerdictNoMatch:
		return "✓"
	default:
		return "?"
	}
}
