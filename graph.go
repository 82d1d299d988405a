package signalscope

import (
	"reflect"
	"sort"
)

// Card is the visual representation of one tree object that participates in
// at least one connection, as emitter or receiver. Objects with no
// connections never become cards.
type Card struct {
	// Path is the object's stable identifier; cards sort on it.
	Path string
	// Name and Type are display attributes copied from the tree object.
	Name string
	Type string
	// Emitted holds the distinct signal names this object dispatches, in
	// first-seen order. Received is the same for handled signals.
	Emitted  []string
	Received []string
	// Rect is the card's canvas-space geometry, assigned by the layout pass
	// and recomputed on every scan.
	Rect Rect
}

// RowCount returns the number of signal rows the card displays.
func (c *Card) RowCount() int {
	return len(c.Emitted) + len(c.Received)
}

// Edge is one resolved connection between two cards. From and To index into
// the owning Graph's Cards slice and are only valid for that graph; a rescan
// replaces the graph and invalidates them.
type Edge struct {
	From, To int
	Signal   string
	Handler  string
	// FromPort and ToPort are canvas-space anchor points derived from the two
	// cards' rects: right-center of the emitter, left-center of the receiver.
	FromPort, ToPort Vec2
}

// Touches reports whether the edge has the given card at either end.
func (e *Edge) Touches(card int) bool {
	return e.From == card || e.To == card
}

// Graph is the scan result: cards in lexicographic path order and the edges
// between them. It is rebuilt wholesale on every scan; nothing updates a
// graph in place.
type Graph struct {
	Cards []Card
	Edges []Edge
	// Omitted counts connections whose receiver was not a tree object and
	// therefore could not be placed on the graph.
	Omitted int
}

// cardIndex returns the index of the card with the given path, or -1.
func (g *Graph) cardIndex(path string) int {
	for i := range g.Cards {
		if g.Cards[i].Path == path {
			return i
		}
	}
	return -1
}

// rawEdge records a discovered connection by path, before card indices exist.
type rawEdge struct {
	fromPath, toPath string
	signal, handler  string
}

// graphBuilder accumulates scan results keyed by object path.
type graphBuilder struct {
	cards map[string]*Card
	// edges groups discovered connections by emitter path, preserving the
	// emitter's declaration order. Grouping here is what makes the final edge
	// list independent of traversal order.
	edges   map[string][]rawEdge
	omitted int
}

func newGraphBuilder() *graphBuilder {
	return &graphBuilder{
		cards: make(map[string]*Card),
		edges: make(map[string][]rawEdge),
	}
}

// card returns the existing card for obj or materializes a new one.
func (b *graphBuilder) card(obj TreeObject) *Card {
	path := obj.Path()
	if c, ok := b.cards[path]; ok {
		return c
	}
	c := &Card{Path: path, Name: obj.Name(), Type: obj.TypeName()}
	b.cards[path] = c
	return c
}

// appendUnique appends name to names unless already present.
func appendUnique(names []string, name string) []string {
	for _, n := range names {
		if n == name {
			return names
		}
	}
	return append(names, name)
}

// isNilReceiver reports whether a receiver satisfies TreeObject in name only.
// A typed nil pointer passes the type assertion with a non-nil interface but
// would crash on the first method call, so it is treated as absent.
func isNilReceiver(obj TreeObject) bool {
	if obj == nil {
		return true
	}
	rv := reflect.ValueOf(obj)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

// visit records every positionable connection declared on obj.
func (b *graphBuilder) visit(obj TreeObject) {
	for _, conn := range obj.Connections() {
		receiver, ok := conn.Receiver.(TreeObject)
		if !ok || isNilReceiver(receiver) {
			// Bare callable or foreign receiver: it has no position on the
			// graph, so the connection is dropped and counted.
			b.omitted++
			continue
		}
		emitter := b.card(obj)
		target := b.card(receiver)
		emitter.Emitted = appendUnique(emitter.Emitted, conn.Signal)
		target.Received = appendUnique(target.Received, conn.Signal)
		b.edges[emitter.Path] = append(b.edges[emitter.Path], rawEdge{
			fromPath: emitter.Path,
			toPath:   target.Path,
			signal:   conn.Signal,
			handler:  conn.Handler,
		})
	}
}

// build sorts cards by path, assigns indices, and re-emits edges grouped by
// emitter card in sorted order. Two scans of an unchanged tree therefore
// produce identical card and edge sequences regardless of traversal order.
func (b *graphBuilder) build() *Graph {
	paths := make([]string, 0, len(b.cards))
	for path := range b.cards {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	g := &Graph{
		Cards:   make([]Card, len(paths)),
		Omitted: b.omitted,
	}
	index := make(map[string]int, len(paths))
	for i, path := range paths {
		g.Cards[i] = *b.cards[path]
		index[path] = i
	}
	for _, path := range paths {
		for _, raw := range b.edges[path] {
			g.Edges = append(g.Edges, Edge{
				From:    index[raw.fromPath],
				To:      index[raw.toPath],
				Signal:  raw.signal,
				Handler: raw.handler,
			})
		}
	}
	return g
}

// Scan traverses the tree under root and materializes the connection graph.
// Every reachable object is visited exactly once; connections to receivers
// outside the tree-object world are skipped and counted in Graph.Omitted.
// A nil root yields an empty graph.
func Scan(root TreeObject) *Graph {
	b := newGraphBuilder()
	if root != nil {
		scanFrom(root, b, make(map[string]bool))
	}
	return b.build()
}

// scanFrom walks depth-first, guarding against revisits by path so malformed
// trees with aliased children cannot double-count connections.
func scanFrom(obj TreeObject, b *graphBuilder, seen map[string]bool) {
	path := obj.Path()
	if seen[path] {
		return
	}
	seen[path] = true
	b.visit(obj)
	for _, child := range obj.Children() {
		scanFrom(child, b, seen)
	}
}

// ScanPath scans the subtree at rootPath below treeRoot. When rootPath is
// empty or resolves to nothing, the whole tree is scanned instead: a merely
// misconfigured path must never produce an empty viewer.
func ScanPath(treeRoot TreeObject, rootPath string) *Graph {
	start := treeRoot
	if rootPath != "" {
		if found := FindPath(treeRoot, rootPath); found != nil {
			start = found
		}
	}
	return Scan(start)
}
