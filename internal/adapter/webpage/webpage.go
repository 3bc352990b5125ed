// Package webpage unwraps NWS text products published as HTML pages, where
// the bulletin sits in a <pre> block.
package webpage

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ErrNoBulletin is returned when the page has no non-empty <pre> block.
var ErrNoBulletin = errors.New("no bulletin text found in page")

// productSelectors are tried in order; the product viewer marks its block
// with a class, archived pages use a bare <pre>.
var productSelectors = []string{
	"pre.glossaryProduct",
	"div#localcontent pre",
	"pre",
}

// ExtractBulletinText returns the text of the first non-empty product block.
func ExtractBulletinText(r io.Reader) (string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return "", fmt.Errorf("parse page: %w", err)
	}

	for _, sel := range productSelectors {
		var text string
		doc.Find(sel).EachWithBreak(func(_ int, s *goquery.Selection) bool {
			text = normalize(s.Text())
			return text == ""
		})
		if text != "" {
			return text, nil
		}
	}
	return "", ErrNoBulletin
}

// normalize converts line endings and drops leading and trailing blank lines
// while keeping the column layout of the product.
func normalize(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	lines := strings.Split(s, "\n")
	start, end := 0, len(lines)
	for start < end && strings.TrimSpace(lines[start]) == "" {
		start++
	}
	for end > start && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}
	for i := start; i < end; i++ {
		lines[i] = strings.TrimRight(lines[i], " \t")
	}
	return strings.Join(lines[start:end], "\n")
}

// IsHTML reports whether body looks like an HTML document rather than a raw
// text product.
func IsHTML(body []byte) bool {
	head := strings.ToLower(strings.TrimSpace(string(body[:min(len(body), 512)])))
	return strings.HasPrefix(head, "<!doctype html") || strings.HasPrefix(head, "<html") || strings.Contains(head, "<pre")
}
