// Package sanitize reduces backend HTML payloads to plain text so that
// long-form fields stay compact in tool results. Two variants exist: Text
// runs the full pipeline including image and script stripping, LightText
// only strips markup and entities. The variants are deliberately separate;
// operations whose content never embeds media use the lighter one.
package sanitize

import (
	"regexp"
	"strings"
)

var (
	dataURIRe    = regexp.MustCompile(`data:image/[^;]+;base64,[A-Za-z0-9+/=]+`)
	imgTagRe     = regexp.MustCompile(`(?i)<img[^>]+src="([^"]+)"[^>]*>`)
	fileInfoRe   = regexp.MustCompile(`fileInfo=[A-Za-z0-9+/%=]+`)
	scriptRe     = regexp.MustCompile(`(?is)<script[^>]*>.*?</script>`)
	styleRe      = regexp.MustCompile(`(?is)<style[^>]*>.*?</style>`)
	tagRe        = regexp.MustCompile(`<[^>]+>`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

var entityReplacer = strings.NewReplacer(
	"&nbsp;", " ",
	"&lt;", "<",
	"&gt;", ">",
	"&amp;", "&",
	"&quot;", `"`,
	"&#39;", "'",
	"&apos;", "'",
)

// Text runs the full sanitization pipeline. The transform order is part of
// the contract and must not change: base64 data URIs go first (the largest
// payloads), image tags collapse to a filename placeholder before generic
// tag stripping would destroy their src, fileInfo fragments and
// script/style blocks are dropped, then remaining markup, entities and
// whitespace are normalized.
func Text(contents string) string {
	if contents == "" {
		return ""
	}

	s := dataURIRe.ReplaceAllString(contents, "")

	s = imgTagRe.ReplaceAllStringFunc(s, func(tag string) string {
		m := imgTagRe.FindStringSubmatch(tag)
		return "[IMAGE: " + imageFilename(m[1]) + "] "
	})

	s = fileInfoRe.ReplaceAllString(s, "")
	s = scriptRe.ReplaceAllString(s, "")
	s = styleRe.ReplaceAllString(s, "")

	return stripMarkup(s)
}

// LightText strips markup, decodes entities and collapses whitespace
// without touching embedded images or script blocks.
func LightText(contents string) string {
	if contents == "" {
		return ""
	}
	return stripMarkup(contents)
}

func stripMarkup(s string) string {
	s = tagRe.ReplaceAllString(s, " ")
	s = entityReplacer.Replace(s)
	s = whitespaceRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// imageFilename extracts the trailing path segment of an image URL with any
// query string removed. Unparsable URLs degrade to "image".
func imageFilename(src string) string {
	name := src
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.Index(name, "?"); i >= 0 {
		name = name[:i]
	}
	if name == "" {
		return "image"
	}
	return name
}
