package xmldoc

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound matches every *NotFoundError via errors.Is.
var ErrNotFound = errors.New("xmldoc: node not found")

// NotFoundError reports where a dot path stopped resolving. Path is the prefix
// that did resolve ("" when the root itself is missing) and Segment is the tag
// that could not be found beneath it.
type NotFoundError struct {
	Path    string
	Segment string
}

func (e *NotFoundError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("xmldoc: root element %q not found", e.Segment)
	}
	return fmt.Sprintf("xmldoc: %q not found under %q", e.Segment, e.Path)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// Find resolves a dot path such as "paymentService.reply.error". The first
// segment selects a top-level element by tag; each following segment selects
// the first direct child with that tag.
func Find(doc *Document, path string) (*Node, error) {
	segments := strings.Split(path, ".")
	root := doc.Element(segments[0])
	if root == nil {
		return nil, &NotFoundError{Segment: segments[0]}
	}
	return walk(root, segments)
}

// TryFind is Find for optional probes: a missing node is reported as false.
func TryFind(doc *Document, path string) (*Node, bool) {
	n, err := Find(doc, path)
	if err != nil {
		return nil, false
	}
	return n, true
}

// FindIn resolves a dot path relative to n, whose tag must be the first segment.
func FindIn(n *Node, path string) (*Node, error) {
	segments := strings.Split(path, ".")
	if n == nil || n.Name != segments[0] {
		return nil, &NotFoundError{Segment: segments[0]}
	}
	return walk(n, segments)
}

func walk(n *Node, segments []string) (*Node, error) {
	for i, seg := range segments[1:] {
		next := n.Child(seg)
		if next == nil {
			return nil, &NotFoundError{Path: strings.Join(segments[:i+1], "."), Segment: seg}
		}
		n = next
	}
	return n, nil
}
