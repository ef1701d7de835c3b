package match

import (
	"fmt"
	"strings"
)

// Schema is a tree over directory segments; each node may pin the artifact
// kinds permitted beneath it. Deeper nodes refine their ancestors: the
// deepest node reached during a walk that defines kinds governs.
//
// Schema строится один раз из конфигурации и после этого не меняется.
type Schema struct {
	roots map[string]*schemaNode
}

type schemaNode struct {
	kinds    KindSet // zero = inherit from ancestor
	children map[string]*schemaNode
	wildcard *schemaNode // child matching any single segment ("*")
}

// NewSchema returns an empty schema; populate it with Allow.
func NewSchema() *Schema {
	return &Schema{roots: make(map[string]*schemaNode)}
}

// Allow registers a prefix like "entities/*" or "menus/ui/theme_default/assets"
// and the kinds permitted in that subtree. A "*" segment matches any single
// directory name.
func (s *Schema) Allow(prefix string, kinds KindSet) error {
	segs := strings.Split(strings.Trim(prefix, "/"), "/")
	if len(segs) == 0 || segs[0] == "" {
		return fmt.Errorf("schema prefix %q: empty", prefix)
	}
	if segs[0] == "*" {
		return fmt.Errorf("schema prefix %q: top-level segment must be literal", prefix)
	}
	node := s.roots[segs[0]]
	if node == nil {
		node = &schemaNode{}
		s.roots[segs[0]] = node
	}
	for _, seg := range segs[1:] {
		switch seg {
		case "":
			return fmt.Errorf("schema prefix %q: empty segment", prefix)
		case "*":
			if node.wildcard == nil {
				node.wildcard = &schemaNode{}
			}
			node = node.wildcard
		default:
			if node.children == nil {
				node.children = make(map[string]*schemaNode)
			}
			child := node.children[seg]
			if child == nil {
				child = &schemaNode{}
				node.children[seg] = child
			}
			node = child
		}
	}
	node.kinds |= kinds
	return nil
}

// HasRoot reports whether a top-level segment is known to the schema.
func (s *Schema) HasRoot(root string) bool {
	_, ok := s.roots[root]
	return ok
}

// Allowed walks dir segments greedily from the root and returns the governing
// kind set. ok is false when the top-level segment is unknown.
func (s *Schema) Allowed(segments []string) (KindSet, bool) {
	if len(segments) == 0 {
		return 0, false
	}
	node := s.roots[segments[0]]
	if node == nil {
		return 0, false
	}
	effective := node.kinds
	for _, seg := range segments[1:] {
		var next *schemaNode
		if node.children != nil {
			next = node.children[seg]
		}
		if next == nil {
			next = node.wildcard
		}
		if next == nil {
			break
		}
		node = next
		if !node.kinds.Empty() {
			effective = node.kinds
		}
	}
	return effective, true
}
