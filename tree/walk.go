package tree

import "strings"

// WalkNext returns the node after n in document order, limited to
// the subtree rooted at top: n's first child if it has one,
// otherwise the next sibling of n or of the nearest ancestor below
// top. nil is returned after the last node of the subtree, or for a
// nil n.
func WalkNext(n, top *Node) *Node {
	if n == nil {
		return nil
	}
	if c := n.FirstChild(); c != nil {
		return c
	}
	for n != nil && n != top {
		if s := n.NextSibling(); s != nil {
			return s
		}
		n = n.Parent()
	}
	return nil
}

// WalkPrev returns the node before n in document order, limited to
// the subtree rooted at top: the deepest last descendant of n's
// previous sibling if it has one, otherwise n's parent. nil is
// returned for top itself, or for a nil n.
func WalkPrev(n, top *Node) *Node {
	if n == nil || n == top {
		return nil
	}
	p := n.PrevSibling()
	if p == nil {
		return n.Parent()
	}
	for {
		c := p.LastChild()
		if c == nil {
			return p
		}
		p = c
	}
}

// FindElement returns the first element node named name strictly
// after n in document order within the subtree rooted at top, or nil
// if there is none. A name of "*" matches any element. top itself is
// never returned; pass n == top to search the whole subtree.
func FindElement(n, top *Node, name string) *Node {
	if n == nil || top == nil || name == "" {
		return nil
	}
	for n = WalkNext(n, top); n != nil; n = WalkNext(n, top) {
		if n.Type() == TypeElement && (name == "*" || n.Element() == name) {
			return n
		}
	}
	return nil
}

// FindPath returns the node matching the slash-separated element
// name path below top. Each path segment names a direct child of the
// previously matched element; a "*" segment allows the following
// segment to match at any depth instead. When the matched element's
// first child is a value (non-element) node, that child is returned
// rather than the element, so FindPath on <a><b>42</b></a> with path
// "b" yields the integer node directly.
//
// nil is returned for a nil top, an empty path, or a path that
// matches no element.
func FindPath(top *Node, path string) *Node {
	if top == nil || path == "" {
		return nil
	}
	n, anyDepth := top, false
	for _, name := range strings.Split(path, "/") {
		switch name {
		case "":
			continue
		case "*":
			anyDepth = true
		default:
			if anyDepth {
				n = findDescendant(n, name)
			} else {
				n = findChild(n, name)
			}
			if n == nil {
				return nil
			}
			anyDepth = false
		}
	}
	if n == top {
		return nil
	}
	if c := n.FirstChild(); c != nil && c.Type() != TypeElement {
		return c
	}
	return n
}

// findChild returns the first direct child element of n named name.
func findChild(n *Node, name string) *Node {
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if c.Type() == TypeElement && c.Element() == name {
			return c
		}
	}
	return nil
}

// findDescendant returns the first element named name at any depth
// below n, in document order.
func findDescendant(n *Node, name string) *Node {
	return FindElement(n, n, name)
}
