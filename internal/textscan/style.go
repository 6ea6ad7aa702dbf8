package textscan

import (
	"regexp"
	"strings"

	"github.com/jonathan/newsguard/internal/types"
)

// emotionalWords is a fixed lexicon of sensational wording in both scripts.
// Advisory only: the counts never feed the risk percentage.
var emotionalWords = []string{
	"震惊", "惊爆", "惊人", "惨烈", "恐怖", "吓人", "吓死", "骇人",
	"不可思议", "犹如噩梦", "不敢相信", "超乎想象", "天价", "绝对",
	"万万没想到", "奇迹", "史上最", "前所未有", "突破天际", "难以置信",
	"疯狂", "崩溃", "狂喜", "不堪入目", "极限", "大批", "全部", "所有",
	"一夜暴富", "爆红", "引爆", "再也无法", "不看后悔", "看完跪了",
	"瞬间", "突然", "秒杀", "独家", "永远", "最终", "必须", "一定",
	"shocking", "unbelievable", "miracle", "insane", "mind-blowing",
	"you won't believe", "never before seen", "exclusive",
}

var repeatedPunctRe = regexp.MustCompile(`[,.!?;:]{2,}|[，。！？；：]{2,}`)

// CountEmotionalWords counts occurrences of lexicon words in the text.
func CountEmotionalWords(text string) int {
	lower := strings.ToLower(text)
	count := 0
	for _, word := range emotionalWords {
		count += strings.Count(lower, word)
	}
	return count
}

// CheckPunctuation runs cheap punctuation checks and returns human-readable
// findings: unbalanced quotes, excessive exclamation or question marks, and
// repeated punctuation.
func CheckPunctuation(text string) []string {
	var issues []string

	if strings.Count(text, `"`)%2 != 0 {
		issues = append(issues, "unbalanced quotation marks")
	}
	if strings.Count(text, "!")+strings.Count(text, "！") > 2 {
		issues = append(issues, "excessive exclamation marks")
	}
	if strings.Count(text, "?")+strings.Count(text, "？") > 2 {
		issues = append(issues, "excessive question marks")
	}
	if repeatedPunctRe.MatchString(text) {
		issues = append(issues, "repeated punctuation")
	}

	return issues
}

// ScanStyle runs all advisory style heuristics over the text.
func ScanStyle(text string) *types.StyleSignals {
	return &types.StyleSignals{
		EmotionalWordCount: CountEmotionalWords(text),
		PunctuationIssues:  CheckPunctuation(text),
	}
}
