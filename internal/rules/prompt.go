package rules

import (
	"strconv"
	"strings"

	"github.com/jonathan/newsguard/internal/prompts"
	"github.com/jonathan/newsguard/internal/types"
)

// BuildPrompt assembles the combined evaluation prompt: a fact-checking
// preamble with the news item, one analysis block per rule, and a strict
// output-format footer the response parser depends on.
func BuildPrompt(ruleSet []Rule, item *types.NewsItem) string {
	domain := item.SourceDomain()

	var sb strings.Builder
	sb.WriteString(prompts.Format(prompts.MustGet("detection.json", "preamble"), map[string]string{
		"Title":   item.Title,
		"Domain":  domain,
		"Content": item.Content,
	}))

	header := prompts.MustGet("detection.json", "rule-header")
	for i, rule := range ruleSet {
		fragment := prompts.Format(rule.PromptTemplate, map[string]string{
			"Title":   item.Title,
			"Domain":  domain,
			"Content": item.Content,
		})
		sb.WriteString(prompts.Format(header, map[string]string{
			"Index":  strconv.Itoa(i + 1),
			"Name":   rule.Name,
			"Prompt": fragment,
		}))
	}

	placeholder := prompts.MustGet("detection.json", "rule-line-placeholder")
	lines := make([]string, len(ruleSet))
	for i := range ruleSet {
		lines[i] = prompts.Format(placeholder, map[string]string{"Index": strconv.Itoa(i + 1)})
	}

	sb.WriteString(prompts.Format(prompts.MustGet("detection.json", "format-footer"), map[string]string{
		"RuleLines": strings.Join(lines, "\n"),
	}))

	return sb.String()
}
