// Package signalscope is a runtime introspection tool for hierarchical
// scene-graph applications, built on [Ebitengine].
//
// It scans a tree of live objects, discovers signal connections between them
// (an emitter dispatching a named event to a receiver's handler), and renders
// the result as an interactive node-link diagram in a floating window: pan
// with the configured mouse button, zoom with the scroll wheel anchored at
// the cursor, hover cards and connection curves, and click a card to
// highlight everything wired to it.
//
// # Quick start
//
// Implement [TreeObject] for your scene graph (or use [BasicNode] /
// [LoadTreeFile] for fixtures), then:
//
//	ins, err := signalscope.New(root, signalscope.DefaultConfig())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := ins.Run(); err != nil {
//	    log.Fatal(err)
//	}
//
// For headless use, [Scan] builds the connection graph without a window:
//
//	g := signalscope.Scan(root)
//	fmt.Println(len(g.Cards), len(g.Edges))
//
// # Model
//
// A scan produces a [Graph]: one [Card] per object participating in at least
// one connection, sorted by tree path so rescans of an unchanged tree are
// byte-identical, and one [Edge] per connection. Layout places cards into
// fixed-capacity columns in a single deterministic pass. Scans are
// snapshot-based and synchronous; the graph is swapped atomically and all
// hover/selection indices are invalidated with it.
//
// Everything tunable (window, scan root, card geometry, colors, fonts, edge
// curvature and hit-testing, zoom bounds, dim opacity, toolbar) lives in one
// immutable [Config], loadable from TOML via [LoadConfig].
//
// [Ebitengine]: https://ebitengine.org
package signalscope
