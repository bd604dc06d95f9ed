package tree

import "fmt"

// Type represents the Node payload kind enumerate
type Type int

const (
	// TypeIgnore is the "no node" sentinel, returned by Type for an
	// absent (nil) node. No real node carries this kind.
	TypeIgnore Type = iota - 1
	// TypeComment is a comment node
	TypeComment
	// TypeElement is a named element node, the only kind that may
	// own children
	TypeElement
	// TypeInteger is a signed integer value node
	TypeInteger
	// TypeOpaque is an opaque (unsplit) string value node
	TypeOpaque
	// TypeReal is a floating point value node
	TypeReal
	// TypeText is a whitespace-delimited text word node
	TypeText
	// TypeCustom is an externally-typed custom value node
	TypeCustom
)

func (t Type) String() string {
	switch t {
	case TypeIgnore:
		return "ignore"
	case TypeComment:
		return "comment"
	case TypeElement:
		return "element"
	case TypeInteger:
		return "integer"
	case TypeOpaque:
		return "opaque"
	case TypeReal:
		return "real"
	case TypeText:
		return "text"
	case TypeCustom:
		return "custom"
	default:
		return fmt.Sprintf("Type(%d)", int(t))
	}
}

// cdataPrefix is the exact element name prefix marking a CDATA
// pseudo-element. It must match what the tree builder produces,
// byte for byte.
const cdataPrefix = "![CDATA["

// Node is one entity in the document tree.
//
// A Node's payload is exactly one of the value variants below,
// selected by its Type. Structural links form a doubly-linked
// sibling list under each parent. The zero Node has kind TypeIgnore
// and no links; useful nodes are created via the New* constructors.
type Node struct {
	value value

	parent     *Node
	firstChild *Node
	lastChild  *Node
	next       *Node
	prev       *Node

	userData any
}

// value is a Node payload. Exactly one variant is active per node,
// and each variant carries only the fields of its kind.
type value interface {
	kind() Type
}

type elementValue struct{ name string }

type commentValue struct{ text string }

type integerValue struct{ integer int64 }

type opaqueValue struct{ opaque string }

type realValue struct{ real float64 }

type textValue struct {
	text       string
	whitespace bool
}

type customValue struct{ data any }

func (elementValue) kind() Type { return TypeElement }
func (commentValue) kind() Type { return TypeComment }
func (integerValue) kind() Type { return TypeInteger }
func (opaqueValue) kind() Type  { return TypeOpaque }
func (realValue) kind() Type    { return TypeReal }
func (textValue) kind() Type    { return TypeText }
func (customValue) kind() Type  { return TypeCustom }
