package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/newsguard/internal/rules"
	"github.com/jonathan/newsguard/internal/types"
)

func TestPrintAssessment(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	ruleSet := rules.Default()
	assessment := &types.FinalAssessment{
		Title:          "Mayor resigns after audit",
		Domain:         "example.com",
		RiskPercentage: 60,
		RiskLevel:      types.RiskMedium,
		Confidence:     types.ConfidenceMedium,
		Parsed: &types.ParsedAssessment{
			Explanation: "several strong signals",
			Verdicts: map[string]types.RuleVerdict{
				"rule1": {RuleID: "rule1", Verdict: types.VerdictMatches, Reason: "low credibility"},
				"rule2": {RuleID: "rule2", Verdict: types.VerdictNoMatch, Reason: "measured title"},
			},
		},
	}

	p.PrintAssessment(assessment, ruleSet)
	output := buf.String()

	assert.Contains(t, output, "ASSESSMENT")
	assert.Contains(t, output, "Mayor resigns after audit")
	assert.Contains(t, output, "60% (medium)")
	assert.Contains(t, output, "RULE VERDICTS")
	assert.Contains(t, output, "matches")
	assert.Contains(t, output, "several strong signals")
}

func TestPrintAssessment_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintAssessment(nil, rules.Default())

	assert.Empty(t, buf.String())
}

func TestPrintCorroboration(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	report := &types.CorroborationReport{
		TrustedSourceCount: 2,
		ConsistencyScore:   75,
		RiskAdjustment:     -10,
		Explanation:        "at least one trusted source partially corroborates the story",
		Sources: []types.SourceSummary{
			{Domain: "reuters.com", Title: "Mayor steps down", Trusted: true},
			{Domain: "example.com", Title: "Local reaction", Trusted: false},
		},
	}

	p.PrintCorroboration(report)
	output := buf.String()

	assert.Contains(t, output, "WEB CORROBORATION")
	assert.Contains(t, output, "Trusted sources: 2")
	assert.Contains(t, output, "-10")
	assert.Contains(t, output, "reuters.com")
}

func TestPrintCorroboration_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintCorroboration(nil)

	assert.Empty(t, buf.String())
}

func TestPrintStyleSignals(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintStyleSignals(&types.StyleSignals{
		EmotionalWordCount: 3,
		PunctuationIssues:  []string{"excessive exclamation marks"},
	})
	output := buf.String()

	assert.Contains(t, output, "STYLE SIGNALS")
	assert.Contains(t, output, "3 occurrences")
	assert.Contains(t, output, "excessive exclamation marks")
}

func TestPrintStyleSignals_CleanTextIsSilent(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintStyleSignals(&types.StyleSignals{})

	assert.Empty(t, buf.String())
}
