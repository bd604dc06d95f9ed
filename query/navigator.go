package query

import (
	"strconv"
	"strings"

	"github.com/antchfx/xpath"

	"github.com/andaru/xmltree/tree"
)

// NodeNavigator implements xpath.NodeNavigator over a tree document.
//
// The navigator adds a virtual document root above the top element,
// so an absolute path like /a matches a top element named a. Use
// NewNavigator to create one positioned at the document root.
type NodeNavigator struct {
	root *tree.Node
	// cur is the node under the cursor; nil means the virtual
	// document root
	cur *tree.Node
}

// NewNavigator returns a NodeNavigator over the subtree rooted at
// root, positioned at the virtual document root.
func NewNavigator(root *tree.Node) *NodeNavigator {
	return &NodeNavigator{root: root}
}

// Current returns the tree node under the cursor. At the virtual
// document root it returns the top element, the closest tree
// equivalent of the document.
func (nav *NodeNavigator) Current() *tree.Node {
	if nav.cur == nil {
		return nav.root
	}
	return nav.cur
}

// NodeType implements xpath.NodeNavigator.
func (nav *NodeNavigator) NodeType() xpath.NodeType {
	switch {
	case nav.cur == nil:
		return xpath.RootNode
	case nav.cur.Type() == tree.TypeElement:
		// CDATA pseudo-elements present as text to XPath
		if isCDATA(nav.cur) {
			return xpath.TextNode
		}
		return xpath.ElementNode
	case nav.cur.Type() == tree.TypeComment:
		return xpath.CommentNode
	default:
		return xpath.TextNode
	}
}

// LocalName implements xpath.NodeNavigator.
func (nav *NodeNavigator) LocalName() string {
	if nav.cur == nil || isCDATA(nav.cur) {
		return ""
	}
	return nav.cur.Element()
}

// Prefix implements xpath.NodeNavigator. The tree model carries no
// namespaces.
func (nav *NodeNavigator) Prefix() string { return "" }

// Value implements xpath.NodeNavigator, returning the XPath string
// value of the node under the cursor.
func (nav *NodeNavigator) Value() string {
	n := nav.cur
	if n == nil {
		n = nav.root
	}
	switch n.Type() {
	case tree.TypeElement:
		if isCDATA(n) {
			return n.CDATA()
		}
		var sb strings.Builder
		innerText(&sb, n)
		return sb.String()
	case tree.TypeComment:
		return n.Comment()
	default:
		return valueText(n)
	}
}

// Copy implements xpath.NodeNavigator.
func (nav *NodeNavigator) Copy() xpath.NodeNavigator {
	clone := *nav
	return &clone
}

// MoveToRoot implements xpath.NodeNavigator.
func (nav *NodeNavigator) MoveToRoot() { nav.cur = nil }

// MoveToParent implements xpath.NodeNavigator.
func (nav *NodeNavigator) MoveToParent() bool {
	switch {
	case nav.cur == nil:
		return false
	case nav.cur == nav.root:
		nav.cur = nil
		return true
	case nav.cur.Parent() != nil:
		nav.cur = nav.cur.Parent()
		return true
	}
	return false
}

// MoveToNextAttribute implements xpath.NodeNavigator. The tree model
// carries no attributes.
func (nav *NodeNavigator) MoveToNextAttribute() bool { return false }

// MoveToChild implements xpath.NodeNavigator.
func (nav *NodeNavigator) MoveToChild() bool {
	if nav.cur == nil {
		if nav.root == nil {
			return false
		}
		nav.cur = nav.root
		return true
	}
	if c := nav.cur.FirstChild(); c != nil {
		nav.cur = c
		return true
	}
	return false
}

// MoveToFirst implements xpath.NodeNavigator, moving the cursor to
// the first sibling of the current node. It returns false when the
// cursor is already on a first sibling.
func (nav *NodeNavigator) MoveToFirst() bool {
	if nav.cur == nil || nav.cur == nav.root || nav.cur.PrevSibling() == nil {
		return false
	}
	for p := nav.cur.PrevSibling(); p != nil; p = nav.cur.PrevSibling() {
		nav.cur = p
	}
	return true
}

// MoveToNext implements xpath.NodeNavigator. The top element never
// moves to its siblings; traversal stays within the subtree the
// navigator was created over.
func (nav *NodeNavigator) MoveToNext() bool {
	if nav.cur == nil || nav.cur == nav.root {
		return false
	}
	if s := nav.cur.NextSibling(); s != nil {
		nav.cur = s
		return true
	}
	return false
}

// MoveToPrevious implements xpath.NodeNavigator.
func (nav *NodeNavigator) MoveToPrevious() bool {
	if nav.cur == nil || nav.cur == nav.root {
		return false
	}
	if s := nav.cur.PrevSibling(); s != nil {
		nav.cur = s
		return true
	}
	return false
}

// MoveTo implements xpath.NodeNavigator.
func (nav *NodeNavigator) MoveTo(other xpath.NodeNavigator) bool {
	o, ok := other.(*NodeNavigator)
	if !ok || o.root != nav.root {
		return false
	}
	nav.cur = o.cur
	return true
}

// isCDATA reports whether n is a CDATA pseudo-element, including
// one with an empty payload.
func isCDATA(n *tree.Node) bool {
	return n.Type() == tree.TypeElement && strings.HasPrefix(n.Element(), "![CDATA[")
}

// valueText renders the string value of a non-element, non-comment
// node.
func valueText(n *tree.Node) string {
	switch n.Type() {
	case tree.TypeInteger:
		return strconv.FormatInt(n.Integer(), 10)
	case tree.TypeReal:
		return strconv.FormatFloat(n.Real(), 'g', -1, 64)
	case tree.TypeOpaque:
		return n.Opaque()
	case tree.TypeText:
		word, _ := n.Text()
		return word
	}
	// custom values have no text representation
	return ""
}

// innerText appends the concatenated descendant text of element n:
// text words with their preceding whitespace restored, opaque and
// CDATA runs verbatim, numeric values formatted. Comments and custom
// values contribute nothing.
func innerText(sb *strings.Builder, n *tree.Node) {
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch {
		case isCDATA(c):
			sb.WriteString(c.CDATA())
		case c.Type() == tree.TypeElement:
			innerText(sb, c)
		case c.Type() == tree.TypeText:
			word, ws := c.Text()
			if ws {
				sb.WriteString(" ")
			}
			sb.WriteString(word)
		case c.Type() == tree.TypeComment, c.Type() == tree.TypeCustom:
		default:
			sb.WriteString(valueText(c))
		}
	}
}
