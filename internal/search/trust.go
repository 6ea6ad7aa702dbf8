package search

import (
	"net/url"
	"strings"
)

// trustedDomains is the fixed allow-list of recognized reputable outlets,
// keyed by apex domain. Read-only and safely shared across requests.
var trustedDomains = map[string]bool{
	// International mainstream media
	"bbc.com": true, "bbc.co.uk": true, "cnn.com": true, "reuters.com": true,
	"apnews.com": true, "nytimes.com": true, "washingtonpost.com": true,
	"wsj.com": true, "nbcnews.com": true, "abcnews.go.com": true,
	"foxnews.com": true, "theguardian.com": true, "aljazeera.com": true,
	"france24.com": true, "dw.com": true, "euronews.com": true,

	// Chinese mainstream media
	"xinhuanet.com": true, "chinadaily.com.cn": true, "people.com.cn": true,
	"thepaper.cn": true, "sina.com.cn": true, "sohu.com": true, "163.com": true,
	"qq.com": true, "ifeng.com": true, "caixin.com": true, "cctv.com": true,
	"china.com.cn": true, "gmw.cn": true, "huanqiu.com": true,

	// Tech media
	"techcrunch.com": true, "wired.com": true, "theverge.com": true,
	"engadget.com": true, "mashable.com": true, "cnet.com": true,
	"zdnet.com": true, "arstechnica.com": true, "36kr.com": true,
	"geekpark.net": true, "cnbeta.com": true, "leiphone.com": true,

	// Finance media
	"ft.com": true, "bloomberg.com": true, "economist.com": true,
	"forbes.com": true, "cnbc.com": true, "businessinsider.com": true,
	"marketwatch.com": true, "yicai.com": true, "jiemian.com": true,
	"nbd.com.cn": true, "cls.cn": true,
}

// ApexDomain reduces a URL's host to its apex form: the leading www label is
// stripped and anything deeper than two labels collapses to the last two.
func ApexDomain(link string) string {
	raw := link
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	parsed, err := url.Parse(raw)
	if err != nil || parsed.Hostname() == "" {
		return ""
	}

	parts := strings.Split(parsed.Hostname(), ".")
	if len(parts) > 2 {
		if parts[0] == "www" {
			parts = parts[1:]
		}
		if len(parts) > 2 {
			parts = parts[len(parts)-2:]
		}
	}
	return strings.Join(parts, ".")
}

// Trusted reports whether an apex domain is on the allow-list.
func Trusted(domain string) bool {
	return trustedDomains[domain]
}
