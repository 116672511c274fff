package utils

import (
	"html/template"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// EnhanceHTMLContent adds lazy loading and a broken-image fallback to every
// <img>, and wraps images in a link to the full-size file.
func EnhanceHTMLContent(htmlStr string) template.HTML {
	if htmlStr == "" {
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlStr))
	if err != nil {
		return template.HTML(htmlStr)
	}

	doc.Find("img").Each(func(i int, s *goquery.Selection) {
		s.SetAttr("referrerpolicy", "no-referrer")
		s.SetAttr("loading", "lazy")
		s.SetAttr("class", "img-fluid rounded border")
		s.SetAttr("onerror", "this.onerror=null; this.src='/static/img/imgerr.svg'")

		if src, ok := s.Attr("src"); ok && s.ParentFiltered("a").Length() == 0 {
			s.WrapHtml(`<a href="` + template.HTMLEscapeString(src) + `" target="_blank" rel="noopener noreferrer"></a>`)
		}
	})

	// goquery renders full document tags if missing, we just want the body content
	html, _ := doc.Find("body").Html()
	if html == "" {
		html, _ = doc.Html()
	}

	return template.HTML(html)
}

// StripHTML removes tags, for card previews that must stay on two lines.
func StripHTML(s string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return s
	}
	return strings.TrimSpace(doc.Text())
}
