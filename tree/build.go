package tree

// NewElement returns a new element node with the given name.
func NewElement(name string) *Node { return &Node{value: elementValue{name: name}} }

// NewCDATA returns a new CDATA node holding data: an element node
// whose name is the "![CDATA[" marker followed by data.
func NewCDATA(data string) *Node { return NewElement(cdataPrefix + data) }

// NewComment returns a new comment node.
func NewComment(text string) *Node { return &Node{value: commentValue{text: text}} }

// NewInteger returns a new integer value node.
func NewInteger(integer int64) *Node { return &Node{value: integerValue{integer: integer}} }

// NewOpaque returns a new opaque string value node.
func NewOpaque(opaque string) *Node { return &Node{value: opaqueValue{opaque: opaque}} }

// NewReal returns a new real value node.
func NewReal(real float64) *Node { return &Node{value: realValue{real: real}} }

// NewText returns a new text word node. whitespace records whether
// the word was preceded by whitespace in its source.
func NewText(text string, whitespace bool) *Node {
	return &Node{value: textValue{text: text, whitespace: whitespace}}
}

// NewCustom returns a new custom value node holding data. The value
// is opaque to this package.
func NewCustom(data any) *Node { return &Node{value: customValue{data: data}} }

// Append adds child as the last child of element node n and returns
// child. child must not already be linked into a tree. Append is a
// no-op unless n is an element node and child is non-nil.
func (n *Node) Append(child *Node) *Node {
	if n == nil || child == nil || n.Type() != TypeElement {
		return child
	}
	child.parent = n
	child.prev = n.lastChild
	child.next = nil
	if n.lastChild != nil {
		n.lastChild.next = child
	} else {
		n.firstChild = child
	}
	n.lastChild = child
	return child
}

// SetUserData attaches an auxiliary user data value to the node,
// independent of its payload kind. It is a no-op on a nil node.
func (n *Node) SetUserData(data any) {
	if n == nil {
		return
	}
	n.userData = data
}
