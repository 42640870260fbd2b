package md2site_test

import (
	"context"
	"fmt"
	"strings"

	md2site "github.com/alnah/go-md2site"
)

func ExampleSanitize() {
	html := `<p>safe</p><script>alert(1)</script><a href="javascript:alert(1)">x</a>`
	fmt.Println(md2site.Sanitize(html))
	// Output: <p>safe</p>&lt;script>alert(1)&lt;/script><a href="javascript&colon;alert(1)">x</a>
}

func ExampleExtractTitle() {
	title, ok := md2site.ExtractTitle("Intro paragraph.\n\n# My Page\n\nBody.")
	fmt.Println(title, ok)
	// Output: My Page true
}

func ExampleGenerate() {
	page, err := md2site.Generate(context.Background(), md2site.Input{
		Markdown: "# Hello\n\nSome **bold** text.",
		Theme:    md2site.ThemeDark,
		Accent:   "teal",
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(strings.Contains(page, "<title>Hello</title>"))
	fmt.Println(strings.Contains(page, "<strong>bold</strong>"))
	// Output:
	// true
	// true
}
