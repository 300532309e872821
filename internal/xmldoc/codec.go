package xmldoc

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
)

var ErrEmptyDocument = errors.New("xmldoc: document has no elements")

// Marshal renders the document in wire form: XML declaration, optional
// DOCTYPE, then the elements with children in construction order.
// Attributes are written sorted by name so output is deterministic.
func (d *Document) Marshal() ([]byte, error) {
	if d == nil || len(d.Nodes) == 0 {
		return nil, ErrEmptyDocument
	}
	var buf bytes.Buffer
	buf.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	if d.DocType != "" {
		buf.WriteString("<!DOCTYPE " + d.DocType + ">\n")
	}
	enc := xml.NewEncoder(&buf)
	for _, n := range d.Nodes {
		if err := encodeNode(enc, n); err != nil {
			return nil, fmt.Errorf("xmldoc: encode %s: %w", n.Name, err)
		}
	}
	if err := enc.Flush(); err != nil {
		return nil, fmt.Errorf("xmldoc: flush: %w", err)
	}
	return buf.Bytes(), nil
}

func encodeNode(enc *xml.Encoder, n *Node) error {
	start := xml.StartElement{Name: xml.Name{Local: n.Name}}
	keys := make([]string, 0, len(n.Attrs))
	for k := range n.Attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		start.Attr = append(start.Attr, xml.Attr{Name: xml.Name{Local: k}, Value: n.Attrs[k]})
	}
	if err := enc.EncodeToken(start); err != nil {
		return err
	}
	if len(n.Children) > 0 {
		for _, c := range n.Children {
			if err := encodeNode(enc, c); err != nil {
				return err
			}
		}
	} else if n.Text != "" {
		if err := enc.EncodeToken(xml.CharData(n.Text)); err != nil {
			return err
		}
	}
	return enc.EncodeToken(start.End())
}

// Parse reads a wire document. Directives, comments and processing
// instructions are dropped; text is trimmed and kept only on leaf elements.
func Parse(r io.Reader) (*Document, error) {
	dec := xml.NewDecoder(r)
	doc := &Document{}
	var stack []*Node
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("xmldoc: parse: %w", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			n := &Node{Name: t.Name.Local}
			if len(t.Attr) > 0 {
				n.Attrs = make(Attrs, len(t.Attr))
				for _, a := range t.Attr {
					n.Attrs[a.Name.Local] = a.Value
				}
			}
			if len(stack) == 0 {
				doc.Nodes = append(doc.Nodes, n)
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, n)
			}
			stack = append(stack, n)
		case xml.CharData:
			if len(stack) > 0 {
				stack[len(stack)-1].Text += string(t)
			}
		case xml.EndElement:
			n := stack[len(stack)-1]
			if len(n.Children) > 0 {
				n.Text = ""
			} else {
				n.Text = strings.TrimSpace(n.Text)
			}
			stack = stack[:len(stack)-1]
		}
	}
	if len(stack) > 0 {
		return nil, fmt.Errorf("xmldoc: parse: unclosed element %q", stack[len(stack)-1].Name)
	}
	if len(doc.Nodes) == 0 {
		return nil, ErrEmptyDocument
	}
	return doc, nil
}

// ParseBytes is Parse over an in-memory body.
func ParseBytes(b []byte) (*Document, error) {
	return Parse(bytes.NewReader(b))
}
