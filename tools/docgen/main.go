package main

import (
	"bytes"
	"flag"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
)

// page is one Markdown document of the docs directory.
type page struct {
	Title  string
	Source string // file name relative to the docs dir, e.g. "cli.md"
}

// pageData is the template data for rendering a docs page.
type pageData struct {
	Title   string
	Nav     []navLink
	Content template.HTML
}

type navLink struct {
	Title  string
	Href   string
	Active bool
}

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}} · mealweek</title>
<style>
body { font-family: sans-serif; display: flex; margin: 0; color: #222; }
nav { min-width: 12rem; padding: 1.5rem; background: #f6f6f6; }
nav a { display: block; margin-bottom: 0.5rem; color: #444; text-decoration: none; }
nav a.active { font-weight: bold; color: #ff8c00; }
main { max-width: 48rem; padding: 1.5rem 2rem; }
table { border-collapse: collapse; }
th, td { border: 1px solid #ccc; padding: 0.25rem 0.75rem; text-align: left; }
pre { padding: 0.75rem; overflow-x: auto; }
</style>
</head>
<body>
<nav>
{{- range .Nav}}
<a href="{{.Href}}"{{if .Active}} class="active"{{end}}>{{.Title}}</a>
{{- end}}
</nav>
<main>
{{.Content}}
</main>
</body>
</html>
`))

var markdown = goldmark.New(
	goldmark.WithExtensions(
		extension.Table,
		extension.Linkify,
		highlighting.NewHighlighting(
			highlighting.WithStyle("monokai"),
		),
	),
	goldmark.WithParserOptions(
		parser.WithAutoHeadingID(),
	),
)

func main() {
	docsDir := flag.String("docs", "docs", "path to docs directory")
	outDir := flag.String("out", "docs/site", "output directory")
	flag.Parse()

	n, err := build(*docsDir, *outDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "docgen: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("  %d pages generated in %s\n", n, *outDir)
}

// build renders every Markdown file of docsDir into outDir and returns the
// number of pages written.
func build(docsDir, outDir string) (int, error) {
	pages, err := collectPages(docsDir)
	if err != nil {
		return 0, err
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return 0, err
	}

	for _, p := range pages {
		src, err := os.ReadFile(filepath.Join(docsDir, p.Source))
		if err != nil {
			return 0, err
		}

		var content bytes.Buffer
		if err := markdown.Convert(src, &content); err != nil {
			return 0, fmt.Errorf("converting %s: %w", p.Source, err)
		}

		var out bytes.Buffer
		err = pageTemplate.Execute(&out, pageData{
			Title:   p.Title,
			Nav:     navLinks(pages, p.Source),
			Content: template.HTML(rewriteLinks(content.String())),
		})
		if err != nil {
			return 0, fmt.Errorf("rendering %s: %w", p.Source, err)
		}

		if err := os.WriteFile(filepath.Join(outDir, htmlName(p.Source)), out.Bytes(), 0o644); err != nil {
			return 0, err
		}
	}
	return len(pages), nil
}

// collectPages lists the Markdown files of dir, README first, the rest by name.
func collectPages(dir string) ([]page, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*.md"))
	if err != nil {
		return nil, err
	}

	pages := make([]page, 0, len(matches))
	for _, path := range matches {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		name := filepath.Base(path)
		title := extractTitle(string(data))
		if title == "" {
			title = strings.TrimSuffix(name, ".md")
		}
		pages = append(pages, page{Title: title, Source: name})
	}

	sort.SliceStable(pages, func(i, j int) bool {
		ri, rj := isReadme(pages[i].Source), isReadme(pages[j].Source)
		if ri != rj {
			return ri
		}
		return pages[i].Source < pages[j].Source
	})
	return pages, nil
}

func navLinks(pages []page, current string) []navLink {
	links := make([]navLink, len(pages))
	for i, p := range pages {
		links[i] = navLink{Title: p.Title, Href: htmlName(p.Source), Active: p.Source == current}
	}
	return links
}

func isReadme(name string) bool { return strings.EqualFold(name, "README.md") }

// extractTitle returns the text of the first # heading.
func extractTitle(content string) string {
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "# ") {
			return strings.TrimPrefix(trimmed, "# ")
		}
	}
	return ""
}

// htmlName maps a Markdown file name to its page; README.md becomes index.html.
func htmlName(mdName string) string {
	if isReadme(mdName) {
		return "index.html"
	}
	return strings.TrimSuffix(mdName, ".md") + ".html"
}

var linkHrefRe = regexp.MustCompile(`href="([^":/]+\.md)(#[^"]*)?"`)

// rewriteLinks points relative .md links at the generated pages.
func rewriteLinks(html string) string {
	return linkHrefRe.ReplaceAllStringFunc(html, func(match string) string {
		m := linkHrefRe.FindStringSubmatch(match)
		return `href="` + htmlName(m[1]) + m[2] + `"`
	})
}
