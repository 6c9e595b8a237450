package scene

// Scene owns the node tree and hands out handles to attached nodes.
// It is not safe for concurrent use; all access happens on the UI thread.
type Scene struct {
	root  *Node
	next  Handle
	nodes map[Handle]*Node
}

// New returns an empty scene.
func New() *Scene {
	return &Scene{
		root:  NewGroup("root"),
		nodes: make(map[Handle]*Node),
	}
}

// Root returns the scene root. It has no handle.
func (s *Scene) Root() *Node { return s.root }

// Add attaches n and its subtree under the root and registers every node.
func (s *Scene) Add(n *Node) {
	s.root.Add(n)
	n.Walk(func(c *Node) {
		if c.handle != 0 {
			return
		}
		s.next++
		c.handle = s.next
		c.disposed = false
		s.nodes[c.handle] = c
	})
}

// Remove detaches n and releases its whole subtree. Released nodes lose their handles.
func (s *Scene) Remove(n *Node) {
	if n.parent != nil {
		n.parent.remove(n)
	}
	n.Walk(func(c *Node) {
		if c.handle != 0 {
			delete(s.nodes, c.handle)
		}
		c.handle = 0
		c.disposed = true
	})
}

// Lookup returns the attached node with handle h.
func (s *Scene) Lookup(h Handle) (*Node, bool) {
	n, ok := s.nodes[h]
	return n, ok
}

// Len returns the number of attached nodes, root excluded.
func (s *Scene) Len() int { return len(s.nodes) }
