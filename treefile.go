package signalscope

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// Tree fixtures describe an object tree and its connections in TOML, so the
// CLI and tests can exercise scans without a live host application:
//
//	[[node]]
//	path = "/game/ui/start_button"
//	type = "Button"
//
//	[[connection]]
//	from = "/game/ui/start_button"
//	signal = "pressed"
//	to = "/game"
//	handler = "on_start_pressed"
//
// Intermediate nodes are created implicitly with type "Node". A connection
// whose "to" path matches no node keeps a non-tree receiver, which the scan
// skips and counts, the same way live hosts expose connections to bare
// callables.

type nodeDecl struct {
	Path string `toml:"path"`
	Type string `toml:"type"`
}

type connDecl struct {
	From    string `toml:"from"`
	Signal  string `toml:"signal"`
	To      string `toml:"to"`
	Handler string `toml:"handler"`
}

type treeFile struct {
	Nodes       []nodeDecl `toml:"node"`
	Connections []connDecl `toml:"connection"`
}

// LoadTreeFile parses a TOML tree fixture and builds the described tree.
func LoadTreeFile(path string) (*BasicNode, error) {
	var tf treeFile
	if _, err := toml.DecodeFile(path, &tf); err != nil {
		return nil, fmt.Errorf("load tree %s: %w", path, err)
	}
	root, err := buildTree(tf)
	if err != nil {
		return nil, fmt.Errorf("load tree %s: %w", path, err)
	}
	return root, nil
}

// ParseTree builds a tree from TOML fixture bytes. LoadTreeFile for files.
func ParseTree(data []byte) (*BasicNode, error) {
	var tf treeFile
	if err := toml.Unmarshal(data, &tf); err != nil {
		return nil, fmt.Errorf("parse tree: %w", err)
	}
	return buildTree(tf)
}

func buildTree(tf treeFile) (*BasicNode, error) {
	if len(tf.Nodes) == 0 {
		return nil, fmt.Errorf("no nodes declared")
	}

	var root *BasicNode
	ensure := func(path string) (*BasicNode, error) {
		segments, err := splitPath(path)
		if err != nil {
			return nil, err
		}
		if root == nil {
			root = NewBasicNode(segments[0], "Node")
		} else if root.Name() != segments[0] {
			return nil, fmt.Errorf("path %s: root %q conflicts with %q", path, segments[0], root.Name())
		}
		cur := root
		for _, seg := range segments[1:] {
			var next *BasicNode
			for _, child := range cur.children {
				if child.Name() == seg {
					next = child
					break
				}
			}
			if next == nil {
				next = cur.AddChild(NewBasicNode(seg, "Node"))
			}
			cur = next
		}
		return cur, nil
	}

	for _, decl := range tf.Nodes {
		node, err := ensure(decl.Path)
		if err != nil {
			return nil, err
		}
		if decl.Type != "" {
			node.typeName = decl.Type
		}
	}

	// Materialize every emitter before resolving any receiver, so a "to"
	// that names a node introduced by a later connection's "from" still
	// resolves regardless of declaration order.
	emitters := make([]*BasicNode, len(tf.Connections))
	for i, decl := range tf.Connections {
		if decl.Signal == "" {
			return nil, fmt.Errorf("connection from %s: missing signal", decl.From)
		}
		emitter, err := ensure(decl.From)
		if err != nil {
			return nil, err
		}
		emitters[i] = emitter
	}
	for i, decl := range tf.Connections {
		// Unresolvable receivers stay in the connection as opaque values so
		// the scan's omitted counting sees them.
		var receiver any = decl.To
		if target := FindPath(root, decl.To); target != nil {
			receiver = target
		}
		emitters[i].Connect(decl.Signal, receiver, decl.Handler)
	}

	return root, nil
}

// splitPath validates and splits "/a/b/c" into its segments.
func splitPath(path string) ([]string, error) {
	if !strings.HasPrefix(path, "/") {
		return nil, fmt.Errorf("path %q: must be absolute", path)
	}
	segments := strings.Split(strings.TrimRight(path[1:], "/"), "/")
	for _, seg := range segments {
		if seg == "" {
			return nil, fmt.Errorf("path %q: empty segment", path)
		}
	}
	return segments, nil
}
