package query

import (
	"github.com/antchfx/xpath"
	"github.com/pkg/errors"

	"github.com/andaru/xmltree/tree"
)

// QuerySelector returns the first tree node selected by the
// precompiled expression expr in the subtree rooted at root, or nil
// if the expression selects nothing.
func QuerySelector(root *tree.Node, expr *xpath.Expr) *tree.Node {
	it := expr.Select(NewNavigator(root))
	if !it.MoveNext() {
		return nil
	}
	return current(it)
}

// QuerySelectorAll returns all tree nodes selected by the
// precompiled expression expr in the subtree rooted at root, in
// document order.
func QuerySelectorAll(root *tree.Node, expr *xpath.Expr) (nodes []*tree.Node) {
	for it := expr.Select(NewNavigator(root)); it.MoveNext(); {
		nodes = append(nodes, current(it))
	}
	return nodes
}

// Find compiles expr and returns all selected tree nodes in the
// subtree rooted at root. The error is non-nil only when the
// expression does not compile.
func Find(root *tree.Node, expr string) ([]*tree.Node, error) {
	xp, err := xpath.Compile(expr)
	if err != nil {
		return nil, errors.Wrapf(err, "compiling XPath expression %q", expr)
	}
	return QuerySelectorAll(root, xp), nil
}

// FindOne compiles expr and returns the first selected tree node in
// the subtree rooted at root, nil if the expression selects nothing.
// The error is non-nil only when the expression does not compile.
func FindOne(root *tree.Node, expr string) (*tree.Node, error) {
	xp, err := xpath.Compile(expr)
	if err != nil {
		return nil, errors.Wrapf(err, "compiling XPath expression %q", expr)
	}
	return QuerySelector(root, xp), nil
}

// current extracts the tree node under the iterator's cursor. The
// iterator mutates its navigator in place, so the node must be taken
// before the next MoveNext call.
func current(it *xpath.NodeIterator) *tree.Node {
	nav, ok := it.Current().(*NodeNavigator)
	if !ok {
		return nil
	}
	return nav.Current()
}
