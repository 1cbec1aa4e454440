package markdown

import (
	"bytes"
	"html"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/issuedigest/pkg/domain/interfaces"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	htmlrenderer "github.com/yuin/goldmark/renderer/html"
)

type renderer struct {
	md goldmark.Markdown
}

// NewRenderer returns a Renderer producing a standalone HTML page. Raw HTML in
// the markdown is passed through; digest headers use it for coloring.
func NewRenderer() interfaces.Renderer {
	return &renderer{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithRendererOptions(htmlrenderer.WithUnsafe()),
		),
	}
}

const (
	pageHead = "<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n" +
		"<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">\n<title>"
	pageBody = "</title>\n</head>\n<body>\n"
	pageTail = "</body>\n</html>\n"
)

// Render converts markdown into a complete HTML document
func (r *renderer) Render(title, markdown string) ([]byte, error) {
	var body bytes.Buffer
	if err := r.md.Convert([]byte(markdown), &body); err != nil {
		return nil, goerr.Wrap(err, "failed to convert markdown")
	}

	var page bytes.Buffer
	page.Grow(len(pageHead) + len(title) + len(pageBody) + body.Len() + len(pageTail))
	page.WriteString(pageHead)
	page.WriteString(html.EscapeString(title))
	page.WriteString(pageBody)
	page.Write(body.Bytes())
	page.WriteString(pageTail)

	return page.Bytes(), nil
}
