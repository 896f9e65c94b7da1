// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Block is one structured markdown unit understood by the Craft.do blocks
// API. A "page" block nests child blocks and acts as a sub-document. Blocks
// are immutable once built.
type Block struct {
	// Type is "text" or "page".
	Type string `json:"type" yaml:"type"`

	// TextStyle is an optional style hint such as "h1", "h2" or "card".
	TextStyle string `json:"textStyle,omitempty" yaml:"text_style,omitempty"`

	// Markdown is the block body; for "page" blocks it is the page title.
	Markdown string `json:"markdown" yaml:"markdown"`

	// Content holds nested child blocks, in order.
	Content []Block `json:"content,omitempty" yaml:"content,omitempty"`
}
