package convert

import (
	"fmt"
	"io"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// newPreviewEngine keeps raw HTML so the generated <a name> anchors survive
// rendering.
func newPreviewEngine() goldmark.Markdown {
	return goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithRendererOptions(html.WithUnsafe()),
	)
}

// RenderHTML renders the Markdown source as an HTML fragment.
func RenderHTML(w io.Writer, source []byte) error {
	if err := newPreviewEngine().Convert(source, w); err != nil {
		return fmt.Errorf("render html: %w", err)
	}
	return nil
}
