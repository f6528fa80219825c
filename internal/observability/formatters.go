// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-match/internal/types"
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

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintScoreBreakdown outputs a human-readable summary of the score breakdown.
func (p *Printer) PrintScoreBreakdown(breakdown types.ScoreBreakdown) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Overall:     %6.2f  (%s)\n", breakdown.OverallScore, breakdown.LetterGrade))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Skills:      %6.2f\n", breakdown.SkillMatchScore))
	sb.WriteString(fmt.Sprintf("Experience:  %6.2f\n", breakdown.ExperienceAlignmentScore))
	sb.WriteString(fmt.Sprintf("Semantic:    %6.2f\n", breakdown.SemanticMatchScore))
	sb.WriteString(fmt.Sprintf("Soft skills: %6.2f", breakdown.SoftSkillsScore))

	p.printBox("Score Breakdown", sb.String())
}

// PrintSkillMatches outputs the per-skill match table.
func (p *Printer) PrintSkillMatches(matches []types.SkillMatch) {
	var sb strings.Builder

	for i, match := range matches {
		if i >= maxItemsToShow*2 {
			sb.WriteString(fmt.Sprintf("... and %d more", len(matches)-i))
			break
		}
		marker := "✗"
		if match.CandidateHas {
			marker = "✓"
		}
		kind := "preferred"
		if match.Required {
			kind = "required"
		}
		sb.WriteString(fmt.Sprintf("%s %-24s (%s)\n", marker, match.SkillName, kind))
	}

	p.printBox("Skill Matches", strings.TrimRight(sb.String(), "\n"))
}

// PrintAnalysisResult outputs the full report: scores, matches, strengths,
// gaps and recommendations.
func (p *Printer) PrintAnalysisResult(result *types.AnalysisResult) {
	if result == nil {
		return
	}

	p.PrintScoreBreakdown(result.ScoreBreakdown)
	p.PrintSkillMatches(result.SkillMatches)

	p.printBox("Summary", wrapText(result.Summary, boxWidth-4))
	p.printBox("Strengths", joinItems(result.Strengths))
	p.printBox("Gaps", joinItems(result.Gaps))

	var sb strings.Builder
	for i, rec := range result.Recommendations {
		if i >= maxItemsToShow {
			sb.WriteString(fmt.Sprintf("... and %d more", len(result.Recommendations)-i))
			break
		}
		sb.WriteString(fmt.Sprintf("[%s/%s] %s\n", rec.Priority, rec.Category, rec.Title))
	}
	p.printBox("Recommendations", strings.TrimRight(sb.String(), "\n"))
}

// joinItems renders a list as bullet lines, truncated to maxItemsToShow.
func joinItems(items []string) string {
	var sb strings.Builder
	for i, item := range items {
		if i >= maxItemsToShow {
			sb.WriteString(fmt.Sprintf("... and %d more", len(items)-i))
			break
		}
		sb.WriteString(fmt.Sprintf("- %s\n", item))
	}
	return strings.TrimRight(sb.String(), "\n")
}

// wrapText wraps text at the given width on word boundaries.
func wrapText(text string, width int) string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return ""
	}

	var sb strings.Builder
	lineLen := 0
	for i, word := range words {
		if lineLen > 0 && lineLen+1+len(word) > width {
			sb.WriteString("\n")
			lineLen = 0
		} else if i > 0 {
			sb.WriteString(" ")
			lineLen++
		}
		sb.WriteString(word)
		lineLen += len(word)
	}
	return sb.String()
}
