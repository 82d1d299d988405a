package signalscope

import "strings"

// Connection is one (signal, receiver, handler) triple declared on an emitter.
// Receiver is deliberately untyped: hosts may connect signals to bare
// callables that own no tree position. The scanner skips (and counts) any
// receiver that does not implement TreeObject.
type Connection struct {
	Signal   string
	Receiver any
	Handler  string
}

// TreeObject is the capability interface the scanner requires from a host
// scene graph. Any concrete node type can participate by exposing a stable
// path, display attributes, its children, and its declared connections.
// The scanner never mutates the tree.
type TreeObject interface {
	// Path returns the object's stable, unique identifier within the tree,
	// e.g. "/root/ui/start_button". Card ordering sorts on this.
	Path() string
	// Name returns the short display name.
	Name() string
	// TypeName returns the object's type label.
	TypeName() string
	// Children returns the object's direct children.
	Children() []TreeObject
	// Connections returns the outgoing connections declared on this object.
	Connections() []Connection
}

// FindPath resolves path to a node in the tree rooted at root, matching on
// TreeObject.Path. Returns nil when no node matches. Each path is visited at
// most once, so malformed host trees with aliased or cyclic children cannot
// hang the search.
func FindPath(root TreeObject, path string) TreeObject {
	if root == nil {
		return nil
	}
	path = strings.TrimRight(path, "/")
	if path == "" {
		return nil
	}
	return findPath(root, path, make(map[string]bool))
}

func findPath(obj TreeObject, path string, seen map[string]bool) TreeObject {
	p := obj.Path()
	if seen[p] {
		return nil
	}
	seen[p] = true
	if p == path {
		return obj
	}
	for _, child := range obj.Children() {
		if found := findPath(child, path, seen); found != nil {
			return found
		}
	}
	return nil
}

// countNodes returns the number of objects reachable from root, including
// root itself, visiting each path once. Used for scan summaries.
func countNodes(root TreeObject) int {
	if root == nil {
		return 0
	}
	return countFrom(root, make(map[string]bool))
}

func countFrom(obj TreeObject, seen map[string]bool) int {
	path := obj.Path()
	if seen[path] {
		return 0
	}
	seen[path] = true
	n := 1
	for _, child := range obj.Children() {
		n += countFrom(child, seen)
	}
	return n
}

// BasicNode is a minimal in-memory TreeObject, used by tree fixtures, the
// examples, and tests. Hosts with their own scene graph implement TreeObject
// directly instead.
type BasicNode struct {
	name     string
	typeName string
	parent   *BasicNode
	children []*BasicNode
	conns    []Connection
}

// NewBasicNode creates a detached node with the given name and type label.
func NewBasicNode(name, typeName string) *BasicNode {
	return &BasicNode{name: name, typeName: typeName}
}

// Path returns the slash-joined chain of names from the root, e.g. "/root/ui".
func (n *BasicNode) Path() string {
	if n.parent == nil {
		return "/" + n.name
	}
	return n.parent.Path() + "/" + n.name
}

// Name returns the node's short name.
func (n *BasicNode) Name() string { return n.name }

// TypeName returns the node's type label.
func (n *BasicNode) TypeName() string { return n.typeName }

// Children returns the node's direct children as TreeObjects.
func (n *BasicNode) Children() []TreeObject {
	out := make([]TreeObject, len(n.children))
	for i, c := range n.children {
		out[i] = c
	}
	return out
}

// Connections returns the connections declared on this node.
func (n *BasicNode) Connections() []Connection {
	return n.conns
}

// AddChild attaches child to n and returns child for chaining.
func (n *BasicNode) AddChild(child *BasicNode) *BasicNode {
	child.parent = n
	n.children = append(n.children, child)
	return child
}

// Connect declares that n emits signal to receiver's handler. Receiver may
// be any value; non-TreeObject receivers are counted as omitted during scans.
func (n *BasicNode) Connect(signal string, receiver any, handler string) {
	n.conns = append(n.conns, Connection{Signal: signal, Receiver: receiver, Handler: handler})
}
