package markdown

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/russross/blackfriday/v2"
)

// allowedTags is the fixed sanitization allow-list. Anything the Markdown
// renderer emits outside this set is stripped from the stored HTML.
var allowedTags = []string{
	"a", "abbr", "acronym", "b", "blockquote", "code", "em", "i",
	"li", "ol", "pre", "strong", "ul", "h1", "h2", "h3", "p",
}

var policy = buildPolicy()

func buildPolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements(allowedTags...)
	p.AllowAttrs("href").OnElements("a")
	p.AllowAttrs("title").OnElements("a", "abbr", "acronym")
	p.AllowStandardURLs()
	return p
}

// Render converts raw Markdown into sanitized HTML. The result depends only
// on the input, so stored renderings can be regenerated at any time.
func Render(body string) string {
	unsafe := blackfriday.Run([]byte(body))
	return strings.TrimSpace(policy.Sanitize(string(unsafe)))
}
