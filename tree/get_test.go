package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypeGetter(t *testing.T) {
	for _, tc := range []struct {
		name string
		node *Node
		want Type
	}{
		{name: "ignore/ok:nil node", node: nil, want: TypeIgnore},
		{name: "ignore/ok:zero node", node: &Node{}, want: TypeIgnore},
		{name: "element/ok", node: NewElement("foo"), want: TypeElement},
		{name: "comment/ok", node: NewComment("c"), want: TypeComment},
		{name: "integer/ok", node: NewInteger(1), want: TypeInteger},
		{name: "opaque/ok", node: NewOpaque("o"), want: TypeOpaque},
		{name: "real/ok", node: NewReal(1.5), want: TypeReal},
		{name: "text/ok", node: NewText("w", false), want: TypeText},
		{name: "custom/ok", node: NewCustom(struct{}{}), want: TypeCustom},
	} {
		t.Run(tc.name, func(t *testing.T) { assert.Equal(t, tc.want, tc.node.Type()) })
	}
}

func TestTypeString(t *testing.T) {
	a := assert.New(t)
	a.Equal("ignore", TypeIgnore.String())
	a.Equal("element", TypeElement.String())
	a.Equal("text", TypeText.String())
	a.Equal("Type(42)", Type(42).String())
}

// TestValueGetters checks the uniform getter rule on direct nodes,
// on nil and on kind mismatches.
func TestValueGetters(t *testing.T) {
	a := assert.New(t)

	a.Equal(int64(42), NewInteger(42).Integer())
	a.Equal(2.5, NewReal(2.5).Real())
	a.Equal("raw string", NewOpaque("raw string").Opaque())
	a.Equal("foo", NewElement("foo").Element())
	a.Equal("a comment", NewComment("a comment").Comment())

	word, ws := NewText("word", true).Text()
	a.Equal("word", word)
	a.True(ws)

	custom := &struct{ x int }{x: 1}
	a.Same(custom, NewCustom(custom).Custom())

	// nil node: every getter returns its default
	var nn *Node
	a.Zero(nn.Integer())
	a.Zero(nn.Real())
	a.Empty(nn.Opaque())
	a.Empty(nn.Element())
	a.Empty(nn.CDATA())
	a.Empty(nn.Comment())
	a.Nil(nn.Custom())
	a.Nil(nn.UserData())
	word, ws = nn.Text()
	a.Empty(word)
	a.False(ws)

	// kind mismatch without a delegating child
	a.Zero(NewOpaque("5").Integer())
	a.Zero(NewInteger(5).Real())
	a.Empty(NewInteger(5).Opaque())
	a.Empty(NewInteger(5).Element())
	word, ws = NewInteger(5).Text()
	a.Empty(word)
	a.False(ws)
}

// TestDelegation checks the value-or-first-child-value rule for each
// delegating kind: the getter called on the wrapping element equals
// the getter called on the child, the other getters stay at their
// defaults, and the delegation never descends a second level.
func TestDelegation(t *testing.T) {
	custom := &struct{ x int }{x: 7}
	for _, tc := range []struct {
		name  string
		child *Node
		check func(a *assert.Assertions, elem, child *Node)
	}{
		{
			name:  "integer/ok:value or first child value",
			child: NewInteger(42),
			check: func(a *assert.Assertions, elem, child *Node) {
				a.Equal(int64(42), elem.Integer())
				a.Equal(elem.Integer(), child.Integer())
			},
		},
		{
			name:  "real/ok:value or first child value",
			child: NewReal(1.25),
			check: func(a *assert.Assertions, elem, child *Node) {
				a.Equal(1.25, elem.Real())
				a.Equal(elem.Real(), child.Real())
			},
		},
		{
			name:  "opaque/ok:value or first child value",
			child: NewOpaque("opaque value"),
			check: func(a *assert.Assertions, elem, child *Node) {
				a.Equal("opaque value", elem.Opaque())
				a.Equal(elem.Opaque(), child.Opaque())
			},
		},
		{
			name:  "text/ok:value and whitespace flag delegate together",
			child: NewText("word", true),
			check: func(a *assert.Assertions, elem, child *Node) {
				word, ws := elem.Text()
				a.Equal("word", word)
				a.True(ws)
				cword, cws := child.Text()
				a.Equal(word, cword)
				a.Equal(ws, cws)
			},
		},
		{
			name:  "custom/ok:value or first child value",
			child: NewCustom(custom),
			check: func(a *assert.Assertions, elem, child *Node) {
				a.Same(custom, elem.Custom())
				a.Equal(elem.Custom(), child.Custom())
			},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			a := assert.New(t)
			elem := NewElement("wrap")
			elem.Append(tc.child)
			tc.check(a, elem, tc.child)

			// mismatched getters on the wrapping element stay at
			// their defaults
			if tc.child.Type() != TypeInteger {
				a.Zero(elem.Integer())
			}
			if tc.child.Type() != TypeReal {
				a.Zero(elem.Real())
			}
			if tc.child.Type() != TypeOpaque {
				a.Empty(elem.Opaque())
			}
			if tc.child.Type() != TypeText {
				word, ws := elem.Text()
				a.Empty(word)
				a.False(ws)
			}
			if tc.child.Type() != TypeCustom {
				a.Nil(elem.Custom())
			}

			// the element's own name is unaffected by delegation
			a.Equal("wrap", elem.Element())
			// the child is not an element
			a.Empty(tc.child.Element())
		})
	}
}

// TestDelegationSingleHop builds <outer><inner>42</inner></outer>
// and checks that the integer two levels down is not visible from
// the outer element.
func TestDelegationSingleHop(t *testing.T) {
	a := assert.New(t)
	outer := NewElement("outer")
	inner := outer.Append(NewElement("inner"))
	inner.Append(NewInteger(42))

	a.Zero(outer.Integer())
	a.Equal(int64(42), inner.Integer())
}

// TestDelegationFirstChildOnly checks that only the first child is
// consulted, even when a later sibling carries the requested kind.
func TestDelegationFirstChildOnly(t *testing.T) {
	a := assert.New(t)
	elem := NewElement("e")
	elem.Append(NewComment("leading comment"))
	elem.Append(NewInteger(42))

	a.Zero(elem.Integer())
	// Comment is a direct getter; it never delegates to a child
	a.Empty(elem.Comment())
	a.Equal("leading comment", elem.FirstChild().Comment())
}

// TestElementWithIntegerChild is the canonical <n>42</n> shape.
func TestElementWithIntegerChild(t *testing.T) {
	a := assert.New(t)
	n1 := NewElement("foo")
	n2 := n1.Append(NewInteger(42))

	a.Equal(int64(42), n1.Integer())
	a.Equal(int64(42), n2.Integer())
	a.Zero(n1.Real())
	a.Equal("foo", n1.Element())
	a.Empty(n2.Element())
}

func TestCDATA(t *testing.T) {
	for _, tc := range []struct {
		name string
		node *Node
		want string
	}{
		{name: "ok:constructed", node: NewCDATA("hello"), want: "hello"},
		{name: "ok:literal name with trailing brackets", node: NewElement("![CDATA[hello]]"), want: "hello]]"},
		{name: "ok:empty payload", node: NewCDATA(""), want: ""},
		{name: "absent:plain element", node: NewElement("foo"), want: ""},
		{name: "absent:prefix must be exact", node: NewElement("![cdata[hello"), want: ""},
		{name: "absent:opaque node", node: NewOpaque("![CDATA[hello"), want: ""},
		{name: "absent:nil node", node: nil, want: ""},
	} {
		t.Run(tc.name, func(t *testing.T) { assert.Equal(t, tc.want, tc.node.CDATA()) })
	}
}

// CDATA is carried in the element name, so it never delegates to a
// child the way the value kinds do.
func TestCDATANoDelegation(t *testing.T) {
	a := assert.New(t)
	elem := NewElement("wrap")
	elem.Append(NewCDATA("inner"))
	a.Empty(elem.CDATA())
	a.Equal("inner", elem.FirstChild().CDATA())
}

func TestStructuralGetters(t *testing.T) {
	a := assert.New(t)

	root := NewElement("root")
	first := root.Append(NewElement("first"))
	mid := root.Append(NewInteger(1))
	last := root.Append(NewElement("last"))

	a.Nil(root.Parent())
	a.Same(root, first.Parent())
	a.Same(root, mid.Parent())

	a.Same(first, root.FirstChild())
	a.Same(last, root.LastChild())
	a.Same(mid, first.NextSibling())
	a.Same(mid, last.PrevSibling())
	a.Nil(first.PrevSibling())
	a.Nil(last.NextSibling())

	// childless element
	a.Nil(first.FirstChild())
	a.Nil(first.LastChild())

	// non-element nodes report no children even though they carry
	// the link fields
	a.Nil(mid.FirstChild())
	a.Nil(mid.LastChild())

	// nil node
	var nn *Node
	a.Nil(nn.Parent())
	a.Nil(nn.FirstChild())
	a.Nil(nn.LastChild())
	a.Nil(nn.NextSibling())
	a.Nil(nn.PrevSibling())
}

func TestUserData(t *testing.T) {
	a := assert.New(t)

	n := NewInteger(42)
	a.Nil(n.UserData())
	n.SetUserData("aux")
	a.Equal("aux", n.UserData())
	a.Equal(int64(42), n.Integer())

	// attachable to any kind, independent of payload
	e := NewElement("foo")
	e.SetUserData(7)
	a.Equal(7, e.UserData())
	a.Equal("foo", e.Element())

	var nn *Node
	nn.SetUserData("dropped")
	a.Nil(nn.UserData())
}

// Getters are pure reads: repeated calls on an unmutated node return
// identical results.
func TestGetterIdempotence(t *testing.T) {
	a := assert.New(t)
	elem := NewElement("foo")
	elem.Append(NewText("word", true))

	for i := 0; i < 3; i++ {
		word, ws := elem.Text()
		a.Equal("word", word)
		a.True(ws)
		a.Equal("foo", elem.Element())
		a.Equal(TypeElement, elem.Type())
	}
}
