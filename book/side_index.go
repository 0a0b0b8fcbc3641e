package book

// color is a red-black tree node color.
type color uint8

const (
	red   color = 0
	black color = 1
)

// rbNode is one key (price) in a SideIndex's tree.
type rbNode struct {
	key    int64
	level  *PriceLevelQueue
	color  color
	left   *rbNode
	right  *rbNode
	parent *rbNode
}

// SideIndex is the ordered price → PriceLevelQueue map for one side
// of the book: a red-black tree keyed by price, with best-first
// traversal in either direction. Insertion, lookup, and erase are
// O(log P) in the number of distinct price levels; IterateBestFirst
// is O(K + log P) for the first K levels in either direction, which is
// what makes snapshotting cheap.
//
// descending controls which direction "best" is: bids want the
// highest price first (descending=true), asks want the lowest price
// first (descending=false). The tree itself is always keyed in plain
// ascending numeric order; only traversal direction differs.
type SideIndex struct {
	root       *rbNode
	nilNode    *rbNode
	size       int
	descending bool
}

// NewSideIndex constructs an empty side index. descending=true yields
// bid semantics (best = highest price); descending=false yields ask
// semantics (best = lowest price).
func NewSideIndex(descending bool) *SideIndex {
	sentinel := &rbNode{color: black}
	return &SideIndex{root: sentinel, nilNode: sentinel, descending: descending}
}

// Len returns the number of distinct price levels currently present.
func (t *SideIndex) Len() int { return t.size }

// Find returns the queue at price, or (nil, false) if no order rests
// at that price on this side.
func (t *SideIndex) Find(price int64) (*PriceLevelQueue, bool) {
	n := t.search(price)
	if n == t.nilNode {
		return nil, false
	}
	return n.level, true
}

// GetOrCreate returns the queue at price, creating an empty one and
// inserting it into the tree if none exists yet.
func (t *SideIndex) GetOrCreate(price int64) *PriceLevelQueue {
	y := t.nilNode
	x := t.root
	for x != t.nilNode {
		y = x
		switch {
		case price < x.key:
			x = x.left
		case price > x.key:
			x = x.right
		default:
			return x.level
		}
	}

	level := &PriceLevelQueue{Price: price}
	z := &rbNode{key: price, level: level, color: red, left: t.nilNode, right: t.nilNode, parent: y}
	if y == t.nilNode {
		t.root = z
	} else if z.key < y.key {
		y.left = z
	} else {
		y.right = z
	}
	t.insertFixup(z)
	t.size++
	return level
}

// Erase removes the price level at price. The caller must only call
// this when the level's queue is already empty — Erase does not
// check.
func (t *SideIndex) Erase(price int64) bool {
	z := t.search(price)
	if z == t.nilNode {
		return false
	}
	t.deleteNode(z)
	t.size--
	return true
}

// IterateBestFirst visits every price level from best to worst,
// stopping early if fn returns false.
func (t *SideIndex) IterateBestFirst(fn func(*PriceLevelQueue) bool) {
	if t.descending {
		for n := t.maxNode(t.root); n != t.nilNode; n = t.predecessor(n) {
			if !fn(n.level) {
				return
			}
		}
		return
	}
	for n := t.minNode(t.root); n != t.nilNode; n = t.successor(n) {
		if !fn(n.level) {
			return
		}
	}
}

/* ---- internal red-black tree mechanics: keys are int64 prices,
   values are *PriceLevelQueue. ---- */

func (t *SideIndex) search(price int64) *rbNode {
	n := t.root
	for n != t.nilNode {
		switch {
		case price < n.key:
			n = n.left
		case price > n.key:
			n = n.right
		default:
			return n
		}
	}
	return t.nilNode
}

func (t *SideIndex) minNode(n *rbNode) *rbNode {
	if n == t.nilNode {
		return t.nilNode
	}
	for n.left != t.nilNode {
		n = n.left
	}
	return n
}

func (t *SideIndex) maxNode(n *rbNode) *rbNode {
	if n == t.nilNode {
		return t.nilNode
	}
	for n.right != t.nilNode {
		n = n.right
	}
	return n
}

func (t *SideIndex) successor(n *rbNode) *rbNode {
	if n.right != t.nilNode {
		return t.minNode(n.right)
	}
	p := n.parent
	for p != t.nilNode && n == p.right {
		n = p
		p = p.parent
	}
	return p
}

func (t *SideIndex) predecessor(n *rbNode) *rbNode {
	if n.left != t.nilNode {
		return t.maxNode(n.left)
	}
	p := n.parent
	for p != t.nilNode && n == p.left {
		n = p
		p = p.parent
	}
	return p
}

func (t *SideIndex) leftRotate(x *rbNode) {
	y := x.right
	x.right = y.left
	if y.left != t.nilNode {
		y.left.parent = x
	}
	y.parent = x.parent
	if x.parent == t.nilNode {
		t.root = y
	} else if x == x.parent.left {
		x.parent.left = y
	} else {
		x.parent.right = y
	}
	y.left = x
	x.parent = y
}

func (t *SideIndex) rightRotate(y *rbNode) {
	x := y.left
	y.left = x.right
	if x.right != t.nilNode {
		x.right.parent = y
	}
	x.parent = y.parent
	if y.parent == t.nilNode {
		t.root = x
	} else if y == y.parent.right {
		y.parent.right = x
	} else {
		y.parent.left = x
	}
	x.right = y
	y.parent = x
}

func (t *SideIndex) insertFixup(z *rbNode) {
	for z.parent.color == red {
		if z.parent == z.parent.parent.left {
			y := z.parent.parent.right
			if y.color == red {
				z.parent.color = black
				y.color = black
				z.parent.parent.color = red
				z = z.parent.parent
			} else {
				if z == z.parent.right {
					z = z.parent
					t.leftRotate(z)
				}
				z.parent.color = black
				z.parent.parent.color = red
				t.rightRotate(z.parent.parent)
			}
		} else {
			y := z.parent.parent.left
			if y.color == red {
				z.parent.color = black
				y.color = black
				z.parent.parent.color = red
				z = z.parent.parent
			} else {
				if z == z.parent.left {
					z = z.parent
					t.rightRotate(z)
				}
				z.parent.color = black
				z.parent.parent.color = red
				t.leftRotate(z.parent.parent)
			}
		}
	}
	t.root.color = black
}

func (t *SideIndex) transplant(u, v *rbNode) {
	if u.parent == t.nilNode {
		t.root = v
	} else if u == u.parent.left {
		u.parent.left = v
	} else {
		u.parent.right = v
	}
	v.parent = u.parent
}

func (t *SideIndex) deleteNode(z *rbNode) {
	y := z
	yOrigColor := y.color
	var x *rbNode

	if z.left == t.nilNode {
		x = z.right
		t.transplant(z, z.right)
	} else if z.right == t.nilNode {
		x = z.left
		t.transplant(z, z.left)
	} else {
		y = t.minNode(z.right)
		yOrigColor = y.color
		x = y.right
		if y.parent == z {
			x.parent = y
		} else {
			t.transplant(y, y.right)
			y.right = z.right
			y.right.parent = y
		}
		t.transplant(z, y)
		y.left = z.left
		y.left.parent = y
		y.color = z.color
	}

	if yOrigColor == black {
		t.deleteFixup(x)
	}
}

func (t *SideIndex) deleteFixup(x *rbNode) {
	for x != t.root && x.color == black {
		if x == x.parent.left {
			w := x.parent.right
			if w.color == red {
				w.color = black
				x.parent.color = red
				t.leftRotate(x.parent)
				w = x.parent.right
			}
			if w.left.color == black && w.right.color == black {
				w.color = red
				x = x.parent
			} else {
				if w.right.color == black {
					w.left.color = black
					w.color = red
					t.rightRotate(w)
					w = x.parent.right
				}
				w.color = x.parent.color
				x.parent.color = black
				w.right.color = black
				t.leftRotate(x.parent)
				x = t.root
			}
		} else {
			w := x.parent.left
			if w.color == red {
				w.color = black
				x.parent.color = red
				t.rightRotate(x.parent)
				w = x.parent.left
			}
			if w.right.color == black && w.left.color == black {
				w.color = red
				x = x.parent
			} else {
				if w.left.color == black {
					w.right.color = black
					w.color = red
					t.leftRotate(w)
					w = x.parent.left
				}
				w.color = x.parent.color
				x.parent.color = black
				w.left.color = black
				t.rightRotate(x.parent)
				x = t.root
			}
		}
	}
	x.color = black
}
