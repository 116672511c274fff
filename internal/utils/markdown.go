package utils

import (
	"bytes"
	"html/template"
	"regexp"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// Reporters write in a plain textarea, so single newlines are kept as line
// breaks and bare URLs become links.
var md = goldmark.New(
	goldmark.WithExtensions(extension.Table, extension.Strikethrough, extension.Linkify),
	goldmark.WithRendererOptions(
		html.WithHardWraps(),
		html.WithXHTML(),
	),
)

var (
	descriptionPolicy = reportPolicy(true)
	notePolicy        = reportPolicy(false)
)

var cellAlign = regexp.MustCompile(`^(left|right|center)$`)

// reportPolicy allows body text, lists, quotes, code and tables. Headings
// are not allowed: their text is kept, so a "# Lampu mati" line cannot
// outshout the report title. Images are only allowed in descriptions.
func reportPolicy(images bool) *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements("p", "br", "hr", "strong", "em", "del", "blockquote", "pre", "code")
	p.AllowLists()
	p.AllowTables()
	p.AllowAttrs("align").Matching(cellAlign).OnElements("th", "td")

	p.AllowAttrs("href").OnElements("a")
	p.AllowURLSchemes("http", "https", "mailto")
	p.RequireParseableURLs(true)
	p.AddTargetBlankToFullyQualifiedLinks(true)
	p.RequireNoReferrerOnLinks(true)

	if images {
		p.AllowAttrs("src", "alt").OnElements("img")
	}
	return p
}

func renderWith(source string, policy *bluemonday.Policy) template.HTML {
	if source == "" {
		return ""
	}
	var buf bytes.Buffer
	if err := md.Convert([]byte(source), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(source))
	}
	return EnhanceHTMLContent(policy.Sanitize(buf.String()))
}

// RenderMarkdown renders a report description. Photos linked in the text are
// shown inline.
func RenderMarkdown(source string) template.HTML {
	return renderWith(source, descriptionPolicy)
}

// RenderNote renders an admin note. Notes carry no images.
func RenderNote(source string) template.HTML {
	return renderWith(source, notePolicy)
}
