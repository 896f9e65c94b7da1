// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package markup converts Granola's HTML panel content into markdown text.
//
// The conversion is intentionally small: Granola summaries only use a
// handful of structural elements (h3, li, p, a), and anything else is
// flattened to its text content.
package markup

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

// node is an owned copy of the parsed HTML tree. Rule passes rewrite
// elements in the copy; the tree html.Parse produced is never mutated.
type node struct {
	isText   bool
	text     string // text node content
	tag      string // element node tag name
	href     string // anchor target, kept for the link rule
	children []*node
}

// rules run in a fixed order. Each pass rewrites every matching element
// still present in the tree before the next pass runs, so replacements
// made by one rule cannot interfere with matches of a later rule. An
// element nested inside an already-rewritten one no longer exists and is
// flattened into the outer element's text.
var rules = []struct {
	tag     string
	rewrite func(text, href string) string
}{
	{"h3", func(text, _ string) string { return "### " + text + "\n" }},
	{"li", func(text, _ string) string { return "- " + text + "\n" }},
	{"p", func(text, _ string) string { return text + "\n\n" }},
	{"a", func(text, href string) string { return "[" + text + "](" + href + ")" }},
}

var newlineRuns = regexp.MustCompile(`\n{3,}`)

// Convert turns an HTML fragment into markdown text. Empty input converts
// to the empty string. The result contains no raw tag markers and no run
// of three or more newlines, which also makes Convert idempotent on its
// own output.
func Convert(fragment string) string {
	if fragment == "" {
		return ""
	}

	doc, err := html.Parse(strings.NewReader(fragment))
	if err != nil {
		return ""
	}

	root := copyTree(doc)
	for _, r := range rules {
		applyRule(root, r.tag, r.rewrite)
	}

	text := newlineRuns.ReplaceAllString(flatten(root), "\n\n")
	return strings.TrimSpace(text)
}

// copyTree builds an owned node tree from the parsed document, keeping
// only element and text nodes. Comments and doctypes carry no text and
// are dropped.
func copyTree(n *html.Node) *node {
	out := &node{}
	switch n.Type {
	case html.TextNode:
		out.isText = true
		out.text = n.Data
		return out
	case html.ElementNode:
		out.tag = n.Data
		if n.Data == "a" {
			out.href = attr(n, "href")
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.CommentNode || c.Type == html.DoctypeNode {
			continue
		}
		out.children = append(out.children, copyTree(c))
	}
	return out
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// applyRule replaces every element named tag with a text node holding the
// rewritten form of its flattened content. Replaced subtrees are not
// descended into; they no longer contain elements.
func applyRule(n *node, tag string, rewrite func(text, href string) string) {
	for i, c := range n.children {
		if !c.isText && c.tag == tag {
			n.children[i] = &node{isText: true, text: rewrite(flatten(c), c.href)}
			continue
		}
		applyRule(c, tag, rewrite)
	}
}

// flatten concatenates the text content of the subtree in document order.
func flatten(n *node) string {
	if n.isText {
		return n.text
	}
	var b strings.Builder
	for _, c := range n.children {
		b.WriteString(flatten(c))
	}
	return b.String()
}
