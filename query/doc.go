/*
Package query evaluates XPath expressions against a tree document.

A NodeNavigator adapts *tree.Node to the github.com/antchfx/xpath
engine's navigator interface, presenting the tree the way XPath
expects it: a virtual document root above the top element, value
nodes as text nodes, CDATA pseudo-elements as text nodes carrying
their character data, and comment nodes as comment nodes. The tree
has no attributes or namespaces, so attribute and prefix axes are
empty.

Selector functions mirror the usual XPath engine call shapes:
QuerySelector and QuerySelectorAll evaluate a precompiled
*xpath.Expr, while Find and FindOne compile their expression on each
call and report compilation failures.
*/
package query
