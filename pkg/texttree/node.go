package texttree

// Node is one element of a generic tree.
type Node struct {
	Name     string  `json:"name" msgpack:"name"`
	Value    string  `json:"value,omitempty" msgpack:"value,omitempty"`
	Children []*Node `json:"children,omitempty" msgpack:"children,omitempty"`
}

// NewNode returns an empty node named name.
func NewNode(name string) *Node {
	return &Node{Name: name}
}

// Add appends an empty child named name and returns it.
func (n *Node) Add(name string) *Node {
	c := NewNode(name)
	n.Children = append(n.Children, c)
	return c
}

// AddValue appends a leaf child and returns it.
func (n *Node) AddValue(name, value string) *Node {
	c := &Node{Name: name, Value: value}
	n.Children = append(n.Children, c)
	return c
}

// Child returns the first child named name, or nil.
func (n *Node) Child(name string) *Node {
	for _, c := range n.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// Leaf reports whether n has no children.
func (n *Node) Leaf() bool { return len(n.Children) == 0 }

// uniqueNames reports whether no two children share a name.
func (n *Node) uniqueNames() bool {
	seen := make(map[string]bool, len(n.Children))
	for _, c := range n.Children {
		if seen[c.Name] {
			return false
		}
		seen[c.Name] = true
	}
	return true
}

// groups returns children grouped by name, in first-seen name order.
func (n *Node) groups() (names []string, byName map[string][]*Node) {
	byName = make(map[string][]*Node)
	for _, c := range n.Children {
		if _, ok := byName[c.Name]; !ok {
			names = append(names, c.Name)
		}
		byName[c.Name] = append(byName[c.Name], c)
	}
	return names, byName
}
