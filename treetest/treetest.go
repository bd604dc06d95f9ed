// Package treetest builds tree fixtures from XML source text for use
// in tests.
//
// Character data handling is selected by a Mode, mirroring the
// loading modes of the tree builder: one opaque node per text run,
// whitespace-split text word nodes, or numeric value nodes. CDATA
// sections become CDATA pseudo-elements and comments become comment
// nodes in every mode.
package treetest

import (
	"strconv"
	"strings"
	"testing"
	"unicode"

	"github.com/antchfx/xmlquery"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/andaru/xmltree/tree"
)

// Mode selects how element character data is represented in the
// built tree.
type Mode int

const (
	// Opaque stores each text run as a single opaque string node,
	// trimmed of surrounding whitespace.
	Opaque Mode = iota
	// Words splits each text run into whitespace-delimited text word
	// nodes carrying their preceded-by-whitespace flags.
	Words
	// Integers parses each whitespace-delimited token as a signed
	// integer value node.
	Integers
	// Reals parses each whitespace-delimited token as a real value
	// node.
	Reals
)

// Parse builds a tree from the XML document in src, returning its
// top element. Character data is converted per mode.
func Parse(src string, mode Mode) (*tree.Node, error) {
	doc, err := xmlquery.Parse(strings.NewReader(src))
	if err != nil {
		return nil, errors.Wrap(err, "parsing fixture XML")
	}
	for c := doc.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == xmlquery.ElementNode {
			return convertElement(c, mode)
		}
	}
	return nil, errors.New("fixture XML has no top element")
}

// MustParse is Parse for tests, failing t on error.
func MustParse(t *testing.T, src string, mode Mode) *tree.Node {
	t.Helper()
	root, err := Parse(src, mode)
	require.NoError(t, err)
	return root
}

func convertElement(xn *xmlquery.Node, mode Mode) (*tree.Node, error) {
	el := tree.NewElement(xn.Data)
	for c := xn.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case xmlquery.ElementNode:
			child, err := convertElement(c, mode)
			if err != nil {
				return nil, err
			}
			el.Append(child)
		case xmlquery.TextNode:
			if err := appendCharData(el, c.Data, mode); err != nil {
				return nil, err
			}
		case xmlquery.CharDataNode:
			el.Append(tree.NewCDATA(c.Data))
		case xmlquery.CommentNode:
			el.Append(tree.NewComment(c.Data))
		}
	}
	return el, nil
}

func appendCharData(el *tree.Node, data string, mode Mode) error {
	switch mode {
	case Words:
		// the first word is preceded by whitespace when the run
		// opens with any
		ws := strings.TrimLeftFunc(data, unicode.IsSpace) != data
		for i, word := range strings.Fields(data) {
			el.Append(tree.NewText(word, ws || i > 0))
		}
	case Integers:
		for _, token := range strings.Fields(data) {
			v, err := strconv.ParseInt(token, 10, 64)
			if err != nil {
				return errors.Wrapf(err, "integer fixture token %q in <%s>", token, el.Element())
			}
			el.Append(tree.NewInteger(v))
		}
	case Reals:
		for _, token := range strings.Fields(data) {
			v, err := strconv.ParseFloat(token, 64)
			if err != nil {
				return errors.Wrapf(err, "real fixture token %q in <%s>", token, el.Element())
			}
			el.Append(tree.NewReal(v))
		}
	default:
		if s := strings.TrimSpace(data); s != "" {
			el.Append(tree.NewOpaque(s))
		}
	}
	return nil
}
