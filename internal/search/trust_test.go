package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApexDomain(t *testing.T) {
	cases := []struct {
		link string
		want string
	}{
		{"https://www.reuters.com/world/article", "reuters.com"},
		{"https://example.com/a", "example.com"},
		{"http://www.blog.fakenews.net/post", "fakenews.net"},
		{"reuters.com/markets", "reuters.com"},
		// Deeper hosts collapse to the last two labels.
		{"https://news.sina.com.cn/c/2024.shtml", "com.cn"},
		{"", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ApexDomain(tc.link), "link %q", tc.link)
	}
}

func TestTrusted(t *testing.T) {
	assert.True(t, Trusted("reuters.com"))
	assert.True(t, Trusted("thepaper.cn"))
	assert.True(t, Trusted("bloomberg.com"))
	assert.False(t, Trusted("fakenews-daily.example"))
	assert.False(t, Trusted(""))
}
