package md2site

import (
	"fmt"
	"strings"
	"text/template"
)

// documentData carries the assembled parts of a page.
//
// Title is inserted verbatim, not HTML-escaped: it comes from the same
// markdown whose rendered HTML is sanitized downstream, and escaping it
// would change observable output for titles containing markup characters.
type documentData struct {
	Title        string
	FaviconLink  string
	CSSVariables string
	FontFamily   string
	FontSize     string
	HighlightCSS string
	ThemeScript  string
	Body         string
}

// documentTemplate is the fixed page layout: responsive, left-aligned
// content, every color routed through the CSS custom properties so the
// auto-theme script can swap palettes without touching the stylesheet.
const documentTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Title}}</title>
    {{.FaviconLink}}
    <style>
        :root {
            {{.CSSVariables}}
            --shadow: 0 2px 8px rgba(0, 0, 0, 0.1);
        }

        * {
            box-sizing: border-box;
            margin: 0;
            padding: 0;
        }

        body {
            font-family: {{.FontFamily}};
            font-size: {{.FontSize}};
            line-height: 1.6;
            color: var(--text-color);
            background-color: var(--bg-color);
            transition: background-color 0.3s ease, color 0.3s ease;
            -webkit-font-smoothing: antialiased;
            -moz-osx-font-smoothing: grayscale;
            text-rendering: optimizeLegibility;
            height: 100%;
        }

        .container {
            width: 100%;
            padding: 3rem 2rem;
            display: flex;
            justify-content: flex-start;
        }

        .content {
            text-align: left;
            width: 100%;
        }

        h1, h2, h3, h4, h5, h6 {
            color: var(--header-color);
            font-weight: 600;
            line-height: 1.3;
            margin-top: 3rem;
            margin-bottom: 1.5rem;
        }

        h1 {
            font-size: 2.8rem;
            font-weight: 700;
            text-align: center;
            margin-bottom: 4rem;
            padding-bottom: 1.5rem;
            border-bottom: 2px solid var(--link-color);
        }

        h2 {
            font-size: 1.8rem;
            margin-top: 3rem;
            padding-bottom: 0.5rem;
            border-bottom: 1px solid var(--border-color);
        }

        h3 {
            font-size: 1.5rem;
            color: var(--link-color);
        }

        h4 {
            font-size: 1.25rem;
        }

        h5 {
            font-size: 1.1rem;
        }

        h6 {
            font-size: 1rem;
            color: var(--code-color);
        }

        p {
            margin-bottom: 2rem;
            text-align: left;
            line-height: 1.7;
        }

        ul, ol {
            margin-bottom: 2rem;
            padding-left: 2rem;
        }

        li {
            margin-bottom: 0.75rem;
            line-height: 1.6;
        }

        blockquote {
            border-left: 4px solid var(--link-color);
            padding: 1.5rem 2rem;
            margin: 3rem 0;
            background-color: var(--blockquote-bg);
            font-style: italic;
            border-radius: 0 8px 8px 0;
        }

        code {
            background-color: var(--code-bg);
            color: var(--code-color);
            padding: 0.2rem 0.4rem;
            border-radius: 3px;
            font-family: 'SF Mono', Monaco, 'Cascadia Code', 'Roboto Mono', Consolas, 'Courier New', monospace;
            font-size: 0.9em;
        }

        pre {
            background-color: var(--code-bg);
            padding: 2rem;
            border-radius: 8px;
            overflow-x: auto;
            margin: 3rem 0;
            border: 1px solid var(--border-color);
            box-shadow: 0 2px 8px rgba(0, 0, 0, 0.1);
        }

        pre code {
            background-color: transparent;
            padding: 0;
        }

        table {
            width: 100%;
            border-collapse: collapse;
            margin: 3rem 0;
            background-color: var(--blockquote-bg);
            border-radius: 8px;
            overflow: hidden;
            box-shadow: 0 2px 8px rgba(0, 0, 0, 0.1);
        }

        th, td {
            padding: 1rem 1.25rem;
            text-align: left;
            border-bottom: 1px solid var(--border-color);
        }

        th {
            background-color: var(--code-bg);
            color: var(--header-color);
            font-weight: 600;
            text-transform: uppercase;
            font-size: 0.8rem;
            letter-spacing: 0.05em;
        }

        tr:nth-child(even) {
            background-color: var(--bg-color);
        }

        a {
            color: var(--link-color);
            text-decoration: none;
            transition: color 0.2s ease;
            will-change: color;
        }

        a:hover {
            color: var(--text-color);
            text-decoration: underline;
        }

        hr {
            border: none;
            height: 2px;
            background: linear-gradient(90deg, transparent, var(--border-color), transparent);
            margin: 3rem 0;
        }

        img {
            max-width: 100%;
            height: auto;
            border-radius: 8px;
            margin: 3rem 0;
            box-shadow: 0 2px 12px rgba(0, 0, 0, 0.15);
        }

        .footnote {
            font-size: 0.85rem;
            color: var(--code-color);
        }

        /* Responsive design */
        @media (max-width: 768px) {
            .container {
                padding: 1.5rem 1rem;
            }

            h1 {
                font-size: 2.2rem;
                margin-bottom: 2.5rem;
            }

            h2 {
                font-size: 1.6rem;
            }

            p {
                margin-bottom: 1.5rem;
                line-height: 1.6;
            }

            pre {
                padding: 1.25rem;
                margin: 2rem 0;
            }

            blockquote {
                padding: 1rem 1.25rem;
                margin: 2rem 0;
            }
        }

        /* Code block highlighting */
{{.HighlightCSS}}
    </style>
    {{.ThemeScript}}
</head>
<body>
    <div class="container">
        <div class="content">
            {{.Body}}
        </div>
    </div>
</body>
</html>`

// docTmpl is text/template on purpose: the body is already-sanitized HTML
// and the title is intentionally inserted verbatim.
var docTmpl = template.Must(template.New("document").Parse(documentTemplate))

// buildDocument renders the final standalone HTML document.
func buildDocument(d documentData) (string, error) {
	var buf strings.Builder
	if err := docTmpl.Execute(&buf, d); err != nil {
		return "", fmt.Errorf("%w: %v", ErrDocumentRender, err)
	}
	return buf.String(), nil
}
