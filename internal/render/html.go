package render

import (
	"fmt"
	"html/template"
	"strings"
)

// pageTemplate realizes a presentation tree as a printable HTML page. Nodes
// become class-tagged divs; all styling hangs off the node kind and class so
// the three variants share one realization.
const pageTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { margin: 0; background: #fff; color: #1e293b; }
.document { max-width: 850px; margin: 0 auto; padding: 48px; line-height: 1.5; }
.document.modern { display: flex; padding: 0; font-family: Helvetica, Arial, sans-serif; }
.document.modern .column.sidebar { width: 32%; background: #0f172a; color: #fff; padding: 40px 28px; }
.document.modern .column.main { flex: 1; padding: 48px; }
.document.classic { font-family: Georgia, "Times New Roman", serif; }
.document.classic .header.identity { text-align: center; border-bottom: 4px solid #0f172a; padding-bottom: 16px; }
.document.minimalist { font-family: Helvetica, Arial, sans-serif; text-align: center; letter-spacing: 0.08em; }
.document.minimalist .section.experience, .document.minimalist .column { text-align: left; }
.heading.name, .heading.first-name, .heading.last-name { font-size: 28px; font-weight: 800; text-transform: uppercase; }
.heading.section-title, .heading.sidebar-title, .heading.main-title { font-size: 11px; font-weight: 800; text-transform: uppercase; letter-spacing: 0.2em; border-bottom: 1px solid #cbd5e1; margin: 18px 0 10px; padding-bottom: 4px; }
.badge { display: inline-block; font-size: 10px; font-weight: 700; text-transform: uppercase; margin: 2px 6px 2px 0; }
.badge.skill { border: 1px solid #cbd5e1; border-radius: 2px; padding: 2px 8px; }
.item { margin-bottom: 12px; }
.text.description, .text.content { white-space: pre-wrap; font-size: 13px; color: #475569; }
.text.summary { font-size: 13px; font-style: italic; }
@media print { body { -webkit-print-color-adjust: exact; } }
</style>
</head>
<body>
{{template "node" .Tree}}
</body>
</html>
{{define "node"}}<div class="{{.Kind}}{{with .Class}} {{.}}{{end}}">{{with .Text}}{{.}}{{end}}{{range .Children}}{{template "node" .}}{{end}}</div>
{{end}}`

var page = template.Must(template.New("page").Parse(pageTemplate))

// HTML realizes the tree as a self-contained printable page. The result is
// what the export boundary hands to the host print pipeline.
func HTML(tree *Node, title string) (string, error) {
	if title == "" {
		title = "Resume"
	}
	var sb strings.Builder
	err := page.Execute(&sb, struct {
		Title string
		Tree  *Node
	}{Title: title, Tree: tree})
	if err != nil {
		return "", fmt.Errorf("failed to execute page template: %w", err)
	}
	return sb.String(), nil
}
