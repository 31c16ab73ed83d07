// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package page

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// HTMLDocument is a [Document] backed by a parsed HTML tree.
type HTMLDocument struct {
	root *html.Node
}

// ParseDocument parses r as an HTML page.
func ParseDocument(r io.Reader) (*HTMLDocument, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParsingDocument, err)
	}

	return &HTMLDocument{root: root}, nil
}

// ParseDocumentBytes is [ParseDocument] for an in-memory page.
func ParseDocumentBytes(b []byte) (*HTMLDocument, error) {
	return ParseDocument(bytes.NewReader(b))
}

// ElementByID walks the tree depth-first and returns the first element with
// a matching id attribute.
func (d *HTMLDocument) ElementByID(id string) (Element, bool) {
	if d == nil || d.root == nil {
		return nil, false
	}

	node := findByID(d.root, id)
	if node == nil {
		return nil, false
	}

	return &htmlElement{node: node}, true
}

// Render writes the document, including every attribute change, to w.
func (d *HTMLDocument) Render(w io.Writer) error {
	if err := html.Render(w, d.root); err != nil {
		return fmt.Errorf("%w: %w", ErrRenderingDocument, err)
	}
	return nil
}

// Bytes renders the document into memory.
func (d *HTMLDocument) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := d.Render(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func findByID(n *html.Node, id string) *html.Node {
	if n.Type == html.ElementNode {
		if v, ok := attr(n, "id"); ok && v == id {
			return n
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findByID(c, id); found != nil {
			return found
		}
	}

	return nil
}

// attr looks up a non-namespaced attribute. The parser lower-cases keys.
func attr(n *html.Node, name string) (string, bool) {
	name = strings.ToLower(name)
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}

type htmlElement struct {
	node *html.Node
}

func (e *htmlElement) Attribute(name string) (string, bool) {
	return attr(e.node, name)
}

func (e *htmlElement) SetAttribute(name, value string) {
	name = strings.ToLower(name)
	for i, a := range e.node.Attr {
		if a.Namespace == "" && a.Key == name {
			e.node.Attr[i].Val = value
			return
		}
	}
	e.node.Attr = append(e.node.Attr, html.Attribute{Key: name, Val: value})
}
