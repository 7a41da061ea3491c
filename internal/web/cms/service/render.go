package service

import (
	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"

	"github.com/Piyush-Singh-Chauhan/zuinder-api/internal/web/cms/model"
)

// ParseMarkdown2HTML renders markdown content to HTML.
func ParseMarkdown2HTML(md []byte) string {
	htmlFlags := html.CommonFlags | html.HrefTargetBlank
	opts := html.RendererOptions{Flags: htmlFlags}
	renderer := html.NewRenderer(opts)

	return string(markdown.ToHTML(md, nil, renderer))
}

// RenderBlogHTML replaces the blog's markdown content with rendered
// HTML in both languages. The stored document keeps the markdown; the
// rendered copy only exists in the response.
func RenderBlogHTML(blog *model.Blog) *model.Blog {
	rendered := *blog
	rendered.Content = model.Bilingual{
		En: ParseMarkdown2HTML([]byte(blog.Content.En)),
		Pt: ParseMarkdown2HTML([]byte(blog.Content.Pt)),
	}

	return &rendered
}
