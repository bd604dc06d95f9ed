/*
Package xmltree is a set of small in-memory XML document tree libraries.

The tree sub-package offers the document model itself: a Node entity
tagged by kind (element, integer, real, opaque string, text word,
custom and comment nodes), its typed value accessors and its
structural accessors, along with document-order traversal and
element search helpers. Every accessor is total: absent nodes and
kind mismatches resolve to a documented default value, never to a
panic or an error.

The query sub-package evaluates XPath expressions against a tree by
adapting Node to the github.com/antchfx/xpath node navigator
interface, offering selector functions over precompiled expressions.

The treetest sub-package builds tree fixtures from XML source text
for use in tests.

See the tree sub-directory for more information about the Node value
model and its accessor contract.
*/
package xmltree
