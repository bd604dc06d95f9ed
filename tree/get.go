package tree

import "strings"

// payload returns n's V payload. When n is an element whose own
// payload is not a V but whose first child's is, the first child's
// payload is returned instead. The delegation is a single hop: the
// first child's own children are never consulted. A nil n, or a node
// (and first child) of any other kind, reports ok false and the zero
// V.
//
// All delegating typed getters are defined in terms of this one
// function so their behavior cannot drift apart.
func payload[V value](n *Node) (v V, ok bool) {
	if n == nil {
		return v, false
	}
	if v, ok = n.value.(V); ok {
		return v, true
	}
	if _, elem := n.value.(elementValue); elem && n.firstChild != nil {
		v, ok = n.firstChild.value.(V)
	}
	return v, ok
}

// Type returns the node's payload kind.
//
// TypeIgnore is returned for a nil node.
func (n *Node) Type() Type {
	if n == nil || n.value == nil {
		return TypeIgnore
	}
	return n.value.kind()
}

// Element returns the name of an element node.
//
// "" is returned if the node is not an element node. Element never
// delegates to a child node.
func (n *Node) Element() string {
	if n == nil {
		return ""
	}
	if v, ok := n.value.(elementValue); ok {
		return v.name
	}
	return ""
}

// CDATA returns the character data of a CDATA node.
//
// "" is returned if the node is not an element whose name begins
// with the "![CDATA[" marker. The returned string is the element
// name with the marker stripped, including any trailing "]]".
func (n *Node) CDATA() string {
	name := n.Element()
	if !strings.HasPrefix(name, cdataPrefix) {
		return ""
	}
	return name[len(cdataPrefix):]
}

// Comment returns the text of a comment node, or "" for any other
// node.
func (n *Node) Comment() string {
	if n == nil {
		return ""
	}
	if v, ok := n.value.(commentValue); ok {
		return v.text
	}
	return ""
}

// Integer returns the integer value of the node or its first child.
//
// 0 is returned if neither the node nor its first child is an
// integer value node; a stored 0 is indistinguishable from that
// default without checking Type.
func (n *Node) Integer() int64 {
	v, _ := payload[integerValue](n)
	return v.integer
}

// Real returns the real value of the node or its first child.
//
// 0.0 is returned if neither the node nor its first child is a real
// value node.
func (n *Node) Real() float64 {
	v, _ := payload[realValue](n)
	return v.real
}

// Opaque returns the opaque string value of the node or its first
// child, or "" if neither is an opaque value node.
func (n *Node) Opaque() string {
	v, _ := payload[opaqueValue](n)
	return v.opaque
}

// Text returns the text word of the node or its first child, along
// with the word's preceded-by-whitespace flag.
//
// Text nodes hold single whitespace-delimited words. To retrieve the
// entire string between elements, the tree must be built with opaque
// nodes and read with Opaque instead.
//
// ("", false) is returned if neither the node nor its first child is
// a text node; the flag is always a defined value.
func (n *Node) Text() (string, bool) {
	v, _ := payload[textValue](n)
	return v.text, v.whitespace
}

// Custom returns the custom value of the node or its first child.
//
// The value is opaque to this package; its meaning belongs to the
// builder that stored it. nil is returned if neither the node nor
// its first child is a custom value node.
func (n *Node) Custom() any {
	v, _ := payload[customValue](n)
	return v.data
}

// Parent returns the node's parent, or nil for a root node.
func (n *Node) Parent() *Node {
	if n == nil {
		return nil
	}
	return n.parent
}

// NextSibling returns the following node under the same parent, or
// nil if this is the parent's last child.
func (n *Node) NextSibling() *Node {
	if n == nil {
		return nil
	}
	return n.next
}

// PrevSibling returns the preceding node under the same parent, or
// nil if this is the parent's first child.
func (n *Node) PrevSibling() *Node {
	if n == nil {
		return nil
	}
	return n.prev
}

// FirstChild returns the first child of an element node.
//
// nil is returned if the node is not an element node or has no
// children.
func (n *Node) FirstChild() *Node {
	if n == nil || n.Type() != TypeElement {
		return nil
	}
	return n.firstChild
}

// LastChild returns the last child of an element node.
//
// nil is returned if the node is not an element node or has no
// children.
func (n *Node) LastChild() *Node {
	if n == nil || n.Type() != TypeElement {
		return nil
	}
	return n.lastChild
}

// UserData returns the auxiliary user data value attached to the
// node, independent of its kind, or nil.
func (n *Node) UserData() any {
	if n == nil {
		return nil
	}
	return n.userData
}
