/*
Package tree offers an in-memory XML document tree model and its
read-side accessors.

Each Node carries exactly one payload variant, selected by its Type:
an element name, a signed integer, a real number, an opaque string,
a single whitespace-delimited text word with its preceding-whitespace
flag, an externally-typed custom value, or a comment. CDATA sections
are not a distinct kind; they are elements whose name carries the
literal "![CDATA[" prefix followed by the character data, matching
the convention used by the tree builder.

Accessor contract

Every accessor accepts a nil receiver and returns a default value for
it: nil for node references, the zero value for payloads, and
TypeIgnore from Type. The typed value getters Integer, Real, Opaque,
Text and Custom share one further rule: called on an element whose
first child holds a value of the requested kind, they return the
first child's value. This serves the common shape <n>42</n>, where a
caller holding the element wants its scalar content without walking
to the child. The delegation is a single hop; it never continues to
the first child's own children. Element and CDATA do not delegate.

A zero result is indistinguishable from an absent value through the
value getters alone; callers that care check Type first.

Nodes are created and linked by a builder (see NewElement, Append and
friends) and only read by the accessors, which never allocate or
mutate. Reading a tree from multiple goroutines is safe provided no
goroutine mutates its structure during the reads; this package
performs no locking of its own.
*/
package tree
