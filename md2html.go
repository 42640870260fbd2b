package md2site

import (
	"bytes"
	"context"
	"fmt"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	emoji "github.com/yuin/goldmark-emoji"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"
)

// htmlConverter abstracts Markdown to HTML conversion.
type htmlConverter interface {
	ToHTML(ctx context.Context, content string) (string, error)
}

// goldmarkConverter converts Markdown to an HTML fragment using goldmark.
type goldmarkConverter struct {
	md goldmark.Markdown
}

// newGoldmarkConverter creates a goldmarkConverter with the GitHub-flavored
// extension set: tables, footnotes, strikethrough, task lists, smart
// punctuation, :emoji: shortcodes, and chroma-based syntax highlighting.
//
// WithUnsafe enables raw inline HTML passthrough. The fragment is therefore
// untrusted; callers must run it through Sanitize before embedding.
func newGoldmarkConverter() *goldmarkConverter {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.Table,
			extension.Footnote,
			extension.Strikethrough,
			extension.TaskList,
			extension.Typographer, // smart punctuation
			emoji.Emoji,
			highlighting.NewHighlighting(
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(true), // stylesheet is emitted by the assembler
				),
			),
		),
		goldmark.WithRendererOptions(
			html.WithUnsafe(), // raw HTML passthrough; Sanitize is the defense
			renderer.WithNodeRenderers(
				util.Prioritized(&taskCheckBoxRenderer{}, 200),
			),
		),
	)
	return &goldmarkConverter{md: md}
}

// ToHTML converts Markdown content to an HTML fragment. Supports context
// cancellation via goroutine + select pattern since Goldmark doesn't
// natively support context.
func (c *goldmarkConverter) ToHTML(ctx context.Context, content string) (string, error) {
	// Fast path: check context before starting
	if err := ctx.Err(); err != nil {
		return "", err
	}

	type result struct {
		html string
		err  error
	}

	done := make(chan result, 1)

	go func() {
		var buf bytes.Buffer
		if err := c.md.Convert([]byte(content), &buf); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrHTMLConversion, err)}
			return
		}
		done <- result{html: buf.String()}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-done:
		return r.html, r.err
	}
}

// taskCheckBoxRenderer overrides the default task-list checkbox output so
// the disabled attribute comes directly after the tag name, for checked and
// unchecked items alike. Sanitize re-admits exactly the prefixes
// `<input disabled` and `<input type="checkbox" disabled` after blocking
// input elements; the default attribute order (checked first) would leave
// completed task items escaped.
type taskCheckBoxRenderer struct{}

func (r *taskCheckBoxRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(east.KindTaskCheckBox, r.renderTaskCheckBox)
}

func (r *taskCheckBoxRenderer) renderTaskCheckBox(w util.BufWriter, _ []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	n := node.(*east.TaskCheckBox)
	if n.IsChecked {
		_, _ = w.WriteString(`<input type="checkbox" disabled="" checked=""> `)
	} else {
		_, _ = w.WriteString(`<input type="checkbox" disabled=""> `)
	}
	return ast.WalkContinue, nil
}
