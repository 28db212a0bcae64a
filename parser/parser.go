// Package parser turns fetched HTML into readable plain text.
package parser

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/advancedlogic/GoOse/pkg/goose"
	"github.com/go-shiori/go-readability"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// MinTextLength is the shortest extraction accepted as article text.
const MinTextLength = 100

// noiseSelector lists elements that never carry article text.
const noiseSelector = "script, style, nav, header, footer, aside, form, iframe, noscript"

// containerSelectors are tried in order; the first one with text wins.
var containerSelectors = []string{
	"article",
	"[role='main']",
	"main",
	".post-content, .article-body, .content, .entry-content",
	"body",
}

var whitespace = regexp.MustCompile(`\s+`)

// Collapse squeezes every whitespace run into one space.
func Collapse(s string) string {
	return strings.TrimSpace(whitespace.ReplaceAllString(s, " "))
}

// ExtractMainText removes boilerplate elements and returns the collapsed text
// of the first element matched by the earliest selector that yields text.
func ExtractMainText(htmlStr string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlStr))
	if err != nil {
		return "", err
	}
	doc.Find(noiseSelector).Remove()

	for _, sel := range containerSelectors {
		if t := Collapse(doc.Find(sel).First().Text()); t != "" {
			return t, nil
		}
	}
	return "", nil
}

// Title returns the document title, or "".
func Title(htmlStr string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlStr))
	if err != nil {
		return ""
	}
	if og, ok := doc.Find("meta[property='og:title']").Attr("content"); ok && strings.TrimSpace(og) != "" {
		return strings.TrimSpace(og)
	}
	return Collapse(doc.Find("title").First().Text())
}

func ParseHtmlWithReadability(htmlStr string) (string, error) {
	doc, err := html.Parse(strings.NewReader(htmlStr))
	if err != nil {
		return "", err
	}

	article, err := readability.FromDocument(doc, nil)
	if err != nil {
		return "", err
	}
	return Collapse(article.TextContent), nil
}

func ParseHtmlWithTrafilatura(htmlStr string) (string, error) {
	article, err := trafilatura.Extract(strings.NewReader(htmlStr), trafilatura.Options{})
	if err != nil {
		return "", err
	}
	return Collapse(article.ContentText), nil
}

func ParseHtmlWithGoose(htmlStr string) (string, error) {
	g := goose.New()
	article, err := g.ExtractFromRawHTML(htmlStr, "")
	if err != nil {
		return "", err
	}
	return Collapse(article.CleanedText), nil
}

// Strategy names one extraction pass, for logging.
type Strategy struct {
	Name  string
	Parse func(string) (string, error)
}

// Strategies are tried in order by ExtractBest.
var Strategies = []Strategy{
	{Name: "container", Parse: ExtractMainText},
	{Name: "readability", Parse: ParseHtmlWithReadability},
	{Name: "trafilatura", Parse: ParseHtmlWithTrafilatura},
	{Name: "goose", Parse: ParseHtmlWithGoose},
}

// ExtractBest runs Strategies in order and returns the first text of at least
// MinTextLength characters with the name of the strategy that produced it.
// When none qualifies the longest text seen is returned with an empty name.
func ExtractBest(htmlStr string) (string, string) {
	var longest string
	for _, s := range Strategies {
		text, err := s.Parse(htmlStr)
		if err != nil {
			continue
		}
		if len([]rune(text)) >= MinTextLength {
			return text, s.Name
		}
		if len(text) > len(longest) {
			longest = text
		}
	}
	return longest, ""
}
