// Package dom is a minimal in-process element tree: nodes with classes,
// styles and data attributes, parent/child links, and event listeners that
// bubble up to a document-level target.
package dom

import "slices"

// Node is one element of a Document.
type Node struct {
	ID      string
	Tag     string
	Text    string
	Value   string
	Checked bool

	doc       *Document
	parent    *Node
	children  []*Node
	classes   []string
	style     map[string]string
	data      map[string]string
	listeners map[string][]listener
}

// Document returns the document the node belongs to.
func (n *Node) Document() *Document { return n.doc }

// Parent returns the parent node, or nil for detached nodes and the body.
func (n *Node) Parent() *Node { return n.parent }

// Children returns a copy of the child list.
func (n *Node) Children() []*Node { return slices.Clone(n.children) }

// AppendChild moves child to the end of n's children.
func (n *Node) AppendChild(child *Node) {
	child.Remove()
	child.parent = n
	n.children = append(n.children, child)
}

// InsertBefore moves child in front of ref. A nil ref or a ref that is not
// a child of n appends.
func (n *Node) InsertBefore(child, ref *Node) {
	child.Remove()
	i := slices.Index(n.children, ref)
	if ref == nil || i < 0 {
		n.AppendChild(child)
		return
	}
	child.parent = n
	n.children = slices.Insert(n.children, i, child)
}

// Remove detaches n from its parent.
func (n *Node) Remove() {
	p := n.parent
	if p == nil {
		return
	}
	if i := slices.Index(p.children, n); i >= 0 {
		p.children = slices.Delete(p.children, i, i+1)
	}
	n.parent = nil
}

// Contains reports whether other is n or one of its descendants.
func (n *Node) Contains(other *Node) bool {
	for c := other; c != nil; c = c.parent {
		if c == n {
			return true
		}
	}
	return false
}

// ClosestAncestorWithClass walks up from n's parent and returns the first
// ancestor carrying class, or nil.
func (n *Node) ClosestAncestorWithClass(class string) *Node {
	for c := n.parent; c != nil; c = c.parent {
		if c.HasClass(class) {
			return c
		}
	}
	return nil
}

// FindByID returns the first node in n's subtree (n included) with the id.
func (n *Node) FindByID(id string) *Node {
	return n.find(func(c *Node) bool { return c.ID == id })
}

// FindByClass returns the first node in n's subtree (n included) carrying class.
func (n *Node) FindByClass(class string) *Node {
	return n.find(func(c *Node) bool { return c.HasClass(class) })
}

// FindAllByClass returns every node in n's subtree carrying class, in document order.
func (n *Node) FindAllByClass(class string) []*Node {
	var out []*Node
	n.walk(func(c *Node) bool {
		if c.HasClass(class) {
			out = append(out, c)
		}
		return true
	})
	return out
}

func (n *Node) find(match func(*Node) bool) *Node {
	var found *Node
	n.walk(func(c *Node) bool {
		if match(c) {
			found = c
			return false
		}
		return true
	})
	return found
}

// walk visits n's subtree depth-first in document order until fn returns false.
func (n *Node) walk(fn func(*Node) bool) bool {
	if !fn(n) {
		return false
	}
	for _, c := range n.children {
		if !c.walk(fn) {
			return false
		}
	}
	return true
}

// Classes returns a copy of the class list.
func (n *Node) Classes() []string { return slices.Clone(n.classes) }

func (n *Node) HasClass(class string) bool { return slices.Contains(n.classes, class) }

func (n *Node) AddClass(classes ...string) {
	for _, c := range classes {
		if c != "" && !n.HasClass(c) {
			n.classes = append(n.classes, c)
		}
	}
}

func (n *Node) RemoveClass(class string) {
	n.classes = slices.DeleteFunc(n.classes, func(c string) bool { return c == class })
}

// SetClass adds class when on is true and removes it otherwise.
func (n *Node) SetClass(class string, on bool) {
	if on {
		n.AddClass(class)
	} else {
		n.RemoveClass(class)
	}
}

// Style returns an inline style property, or "".
func (n *Node) Style(prop string) string { return n.style[prop] }

func (n *Node) SetStyle(prop, value string) {
	if n.style == nil {
		n.style = make(map[string]string)
	}
	n.style[prop] = value
}

func (n *Node) RemoveStyle(prop string) { delete(n.style, prop) }

// Data returns a data attribute and whether it is set.
func (n *Node) Data(key string) (string, bool) {
	v, ok := n.data[key]
	return v, ok
}

func (n *Node) SetData(key, value string) {
	if n.data == nil {
		n.data = make(map[string]string)
	}
	n.data[key] = value
}

// Clone deep-copies n's subtree. Listeners are not copied and the clone is
// detached.
func (n *Node) Clone() *Node {
	c := &Node{
		ID:      n.ID,
		Tag:     n.Tag,
		Text:    n.Text,
		Value:   n.Value,
		Checked: n.Checked,
		doc:     n.doc,
		classes: slices.Clone(n.classes),
	}
	if n.style != nil {
		c.style = make(map[string]string, len(n.style))
		for k, v := range n.style {
			c.style[k] = v
		}
	}
	if n.data != nil {
		c.data = make(map[string]string, len(n.data))
		for k, v := range n.data {
			c.data[k] = v
		}
	}
	for _, child := range n.children {
		cc := child.Clone()
		cc.parent = c
		c.children = append(c.children, cc)
	}
	return c
}
