package report

import (
	"fmt"
	"strings"

	wkhtmltopdf "github.com/SebastiaanKlippert/go-wkhtmltopdf"
	"github.com/gomarkdown/markdown"
	mdhtml "github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"github.com/avelis/revu/internal/review"
)

// HTMLRenderer converts the text report (as light markdown) to styled HTML
// and renders it with wkhtmltopdf. It fails fast when the wkhtmltopdf
// binary is not installed, letting the chain fall back.
type HTMLRenderer struct{}

func (r *HTMLRenderer) Name() string { return "wkhtmltopdf" }

func (r *HTMLRenderer) Render(_ []review.Review, textReport string, meta Meta, outPath string) error {
	pdfg, err := wkhtmltopdf.NewPDFGenerator()
	if err != nil {
		return fmt.Errorf("wkhtmltopdf unavailable: %w", err)
	}

	page := wkhtmltopdf.NewPageReader(strings.NewReader(renderHTML(textReport, meta.Username)))
	page.DisableExternalLinks.Set(true)
	pdfg.AddPage(page)
	pdfg.PageSize.Set(wkhtmltopdf.PageSizeA4)
	pdfg.MarginTop.Set(20)
	pdfg.MarginBottom.Set(20)

	if err := pdfg.Create(); err != nil {
		return fmt.Errorf("rendering PDF: %w", err)
	}
	if err := pdfg.WriteFile(outPath); err != nil {
		return fmt.Errorf("writing PDF: %w", err)
	}
	return nil
}

// renderHTML converts the markdown-flavored report into a full HTML
// document with the report stylesheet.
func renderHTML(textReport, username string) string {
	p := parser.NewWithExtensions(parser.CommonExtensions | parser.Tables | parser.FencedCode)
	renderer := mdhtml.NewRenderer(mdhtml.RendererOptions{Flags: mdhtml.CommonFlags})
	body := markdown.ToHTML([]byte(textReport), p, renderer)

	return fmt.Sprintf(htmlShell, username, reportCSS, body)
}

const htmlShell = `<!DOCTYPE html>
<html>
<head>
<meta charset="UTF-8">
<title>Git Commit Review Report - %s</title>
<style>%s</style>
</head>
<body>
%s
</body>
</html>
`

const reportCSS = `
body {
    font-family: -apple-system, BlinkMacSystemFont, sans-serif;
    line-height: 1.6;
    color: #1e293b;
    font-size: 11pt;
    margin: 0;
}
h1 {
    font-size: 24pt;
    font-weight: 700;
    color: #2563eb;
    text-align: center;
    border-bottom: 3px solid #2563eb;
    padding-bottom: 0.3cm;
}
h2 {
    font-size: 18pt;
    font-weight: 600;
    margin-top: 1cm;
    border-left: 4px solid #2563eb;
    padding-left: 0.3cm;
}
h3 {
    font-size: 14pt;
    font-weight: 600;
    color: #2563eb;
    margin-top: 0.8cm;
}
p { margin-bottom: 0.4cm; text-align: justify; }
strong { font-weight: 600; color: #1e293b; }
code {
    font-family: Monaco, Consolas, monospace;
    font-size: 9pt;
    background-color: #f1f5f9;
    padding: 0.1cm 0.2cm;
    color: #2563eb;
}
pre {
    background-color: #f8fafc;
    border: 1px solid #e2e8f0;
    padding: 0.5cm;
    font-size: 9pt;
    overflow-wrap: break-word;
}
ul, ol { margin: 0.3cm 0; padding-left: 0.8cm; }
li { margin-bottom: 0.2cm; }
hr {
    border: none;
    height: 1px;
    background: #2563eb;
    margin: 0.8cm 0;
}
`
