// Package render provides the Template Renderer: a pure function mapping the
// full document plus a selected template identifier to a presentational
// tree. Three variants (modern, classic, minimalist) share the same read
// contract over the document; their differences are layout only.
//
// Shared contract: an absent full name renders a placeholder label; an empty
// list renders as an omitted section (no empty headers) except Experience
// and Education, which always render their header; experiences with
// Current=true always display "Present" regardless of the stored end date;
// list order is the document's own order, never resorted.
package render

import (
	"strings"

	"github.com/careerpal/careerpal/internal/types"
)

// NodeKind classifies a node in the presentation tree.
type NodeKind string

// Node kinds understood by the HTML realization.
const (
	KindDocument NodeKind = "document" // root; Class is the template id
	KindHeader   NodeKind = "header"   // page header block
	KindColumn   NodeKind = "column"   // layout column
	KindSection  NodeKind = "section"  // titled content block
	KindHeading  NodeKind = "heading"  // section or entry title
	KindText     NodeKind = "text"     // text line or paragraph
	KindList     NodeKind = "list"     // container for items
	KindItem     NodeKind = "item"     // one list entry
	KindBadge    NodeKind = "badge"    // short inline label (skill, date tag)
)

// Node is one element of the presentation tree.
type Node struct {
	Kind     NodeKind `json:"kind"`
	Class    string   `json:"class,omitempty"`
	Text     string   `json:"text,omitempty"`
	Children []*Node  `json:"children,omitempty"`
}

func (n *Node) add(children ...*Node) *Node {
	n.Children = append(n.Children, children...)
	return n
}

func node(kind NodeKind, class, text string) *Node {
	return &Node{Kind: kind, Class: class, Text: text}
}

// Render maps the document and template id to a presentation tree. It is
// pure: the input document is cloned before any reading, the output depends
// only on the inputs, and repeated calls yield structurally identical trees.
// An unknown template id falls back to the modern variant.
func Render(doc *types.ResumeDocument, templateID types.TemplateID) *Node {
	d := doc.Clone()
	switch templateID {
	case types.TemplateClassic:
		return buildClassic(d)
	case types.TemplateMinimalist:
		return buildMinimalist(d)
	default:
		return buildModern(d)
	}
}

// endDate returns the displayed end of an experience's date range.
func endDate(exp types.Experience) string {
	if exp.Current {
		return "Present"
	}
	return exp.EndDate
}

// dateRange formats an experience date range for display.
func dateRange(exp types.Experience) string {
	return exp.StartDate + " – " + endDate(exp)
}

// contactLine joins the non-empty parts with a separator.
func contactLine(sep string, parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}

// customSections appends one section per custom section, in display order.
func customSections(parent *Node, sections []types.CustomSection, headingClass string) {
	for _, cs := range sections {
		sec := node(KindSection, "custom", "")
		sec.add(node(KindHeading, headingClass, cs.Title))
		sec.add(node(KindText, "content", cs.Content))
		parent.add(sec)
	}
}
