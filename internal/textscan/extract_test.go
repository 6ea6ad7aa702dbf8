package textscan

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractEntities_LatinPersons(t *testing.T) {
	entities := ExtractEntities("Officials said John Smith met Maria Garcia Lopez yesterday.")
	assert.Contains(t, entities, "John Smith")
	assert.Contains(t, entities, "Maria Garcia Lopez")
}

func TestExtractEntities_OrgSuffixes(t *testing.T) {
	entities := ExtractEntities("The Acme Trading Company denied the report. 华为公司 also commented.")
	assert.Contains(t, entities, "Acme Trading Company")
	assert.Contains(t, entities, "华为公司")
}

func TestExtractEntities_HonorificAndPlace(t *testing.T) {
	entities := ExtractEntities("张伟教授表示，北京市将加强监管。")
	assert.Contains(t, entities, "张伟教授")
	assert.Contains(t, entities, "北京市")
}

func TestExtractEntities_Deduplicated(t *testing.T) {
	entities := ExtractEntities("John Smith and John Smith spoke.")
	count := 0
	for _, e := range entities {
		if e == "John Smith" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestExtractDataPoints_NumbersAndUnits(t *testing.T) {
	dataPoints := ExtractDataPoints("Losses reached 3.5 billion, about 12% of revenue, or 200亿元.")
	assert.Contains(t, dataPoints, "3.5 billion")
	assert.Contains(t, dataPoints, "12%")
}

func TestExtractDataPoints_Dates(t *testing.T) {
	dataPoints := ExtractDataPoints("The filing on 2024年3月5日 followed the June 12, 2024 hearing.")
	assert.Contains(t, dataPoints, "2024年3月5日")
	assert.Contains(t, dataPoints, "June 12, 2024")
}

func TestExtractDataPoints_Durations(t *testing.T) {
	dataPoints := ExtractDataPoints("The outage lasted 3 hours; 残骸两天后被发现。")
	assert.Contains(t, dataPoints, "3 hours")
}

func TestStripEntitySuffix(t *testing.T) {
	assert.Equal(t, "张伟", StripEntitySuffix("张伟教授"))
	assert.Equal(t, "北京", StripEntitySuffix("北京市"))
	assert.Equal(t, "John Smith", StripEntitySuffix("John Smith"))
}

func TestKeywords_FiltersSingleRunes(t *testing.T) {
	keywords := Keywords("NASA 宣布 了 新的 登月 计划")
	assert.Contains(t, keywords, "NASA")
	assert.NotContains(t, keywords, "了")
}

func TestHanKeywords_OnlyHanTokens(t *testing.T) {
	keywords := HanKeywords("NASA 登月 mission 计划")
	assert.NotContains(t, keywords, "NASA")
	assert.NotContains(t, keywords, "mission")
	for _, kw := range keywords {
		assert.True(t, containsHan(kw), "keyword %q", kw)
	}
}

func TestFoldASCII(t *testing.T) {
	assert.Equal(t, "Francois Hollande", FoldASCII("François Hollande"))
	assert.Equal(t, "unchanged text", FoldASCII("unchanged text"))
	// Han runes have no ASCII decomposition and are dropped.
	assert.Equal(t, "G7", FoldASCII("G7 峰会"))
}

func TestCountEmotionalWords(t *testing.T) {
	assert.Equal(t, 0, CountEmotionalWords("A quiet municipal budget meeting."))
	assert.GreaterOrEqual(t, CountEmotionalWords("震惊！Shocking miracle, unbelievable!"), 3)
}

func TestCheckPunctuation(t *testing.T) {
	assert.Empty(t, CheckPunctuation("A calm, factual sentence."))

	issues := CheckPunctuation(`He said "quote!!! Really??? What..`)
	assert.Contains(t, issues, "unbalanced quotation marks")
	assert.Contains(t, issues, "excessive exclamation marks")
	assert.Contains(t, issues, "excessive question marks")
	assert.Contains(t, issues, "repeated punctuation")
}
