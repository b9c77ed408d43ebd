package util

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// FlattenHTML turns an HTML fragment (Stack Exchange bodies, HN story text)
// into plain text. On parse failure the input passes through unchanged; the
// normalizer still strips tag-like leftovers downstream.
func FlattenHTML(s string) string {
	if !strings.Contains(s, "<") {
		return s
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return s
	}
	return strings.TrimSpace(doc.Text())
}
