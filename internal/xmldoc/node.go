// Package xmldoc is a small hierarchical document model for the gateway's
// positional XML schema. Child order is preserved exactly as built; attribute
// order carries no meaning.
package xmldoc

// Attrs holds element attributes.
type Attrs map[string]string

// Node is one element. An element carries either text or children, never both.
type Node struct {
	Name     string
	Attrs    Attrs
	Text     string
	Children []*Node
}

// Element builds a node whose content is the given children, in order.
// Nil children are skipped so optional parts can be passed inline.
func Element(name string, attrs Attrs, children ...*Node) *Node {
	n := &Node{Name: name, Attrs: attrs}
	n.Append(children...)
	return n
}

// Text builds a leaf node carrying literal text content.
func Text(name, text string, attrs Attrs) *Node {
	return &Node{Name: name, Attrs: attrs, Text: text}
}

// Append adds children after the existing ones and returns n.
func (n *Node) Append(children ...*Node) *Node {
	for _, c := range children {
		if c == nil {
			continue
		}
		n.Children = append(n.Children, c)
	}
	return n
}

// Attr returns the attribute value, or "" when unset.
func (n *Node) Attr(key string) string {
	if n == nil || n.Attrs == nil {
		return ""
	}
	return n.Attrs[key]
}

// Child returns the first direct child with the given tag.
func (n *Node) Child(name string) *Node {
	if n == nil {
		return nil
	}
	for _, c := range n.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// ChildrenNamed returns every direct child with the given tag.
func (n *Node) ChildrenNamed(name string) []*Node {
	if n == nil {
		return nil
	}
	var out []*Node
	for _, c := range n.Children {
		if c.Name == name {
			out = append(out, c)
		}
	}
	return out
}

// Document is a parsed or constructed XML document.
type Document struct {
	// DocType, when set, is emitted as <!DOCTYPE ...> after the XML declaration.
	DocType string
	// Nodes are the top-level elements. Built documents have exactly one.
	Nodes []*Node

	attrs map[string]string
}

// NewDocument wraps a root element.
func NewDocument(root *Node) *Document {
	return &Document{Nodes: []*Node{root}}
}

// Element returns the first top-level element with the given tag.
func (d *Document) Element(name string) *Node {
	if d == nil {
		return nil
	}
	for _, n := range d.Nodes {
		if n.Name == name {
			return n
		}
	}
	return nil
}

// SetAttr records document-level metadata that is not part of the XML tree,
// such as values lifted from the transport response.
func (d *Document) SetAttr(key, value string) {
	if d.attrs == nil {
		d.attrs = make(map[string]string)
	}
	d.attrs[key] = value
}

// Attr returns document-level metadata, or "" when unset.
func (d *Document) Attr(key string) string {
	if d == nil || d.attrs == nil {
		return ""
	}
	return d.attrs[key]
}
