package output

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/rpgo/investment-calculator/internal/domain"
)

// HTMLFormatter produces a standalone HTML page from the markdown report.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Parse(htmlTemplateSource))

var markdownToHTML = goldmark.New(goldmark.WithExtensions(extension.GFM))

func (h HTMLFormatter) Format(report *domain.Report) ([]byte, error) {
	md, err := MarkdownFormatter{}.Format(report)
	if err != nil {
		return nil, err
	}
	var body bytes.Buffer
	if err := markdownToHTML.Convert(md, &body); err != nil {
		return nil, fmt.Errorf("convert markdown: %w", err)
	}
	data := struct {
		Title     string
		Currency  string
		Generated string
		Body      template.HTML
	}{
		Title:     "Investment Projection Report",
		Currency:  report.Currency,
		Generated: nowFunc().Format("2006-01-02 15:04"),
		Body:      template.HTML(body.String()),
	}
	var buf bytes.Buffer
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
