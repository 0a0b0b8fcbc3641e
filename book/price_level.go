package book

// PriceLevelQueue is the FIFO of resting orders at one price on one
// side. Nodes are linked in arrival order, oldest at head; total
// quantity is a running sum kept in lockstep with the queue so
// snapshot reads never have to walk the list.
type PriceLevelQueue struct {
	Price int64

	head, tail *OrderNode
	totalQty   uint64
	count      int
}

// Add appends node at the tail and folds its quantity into the
// running total. node's position becomes the last at this price —
// new time priority.
func (q *PriceLevelQueue) Add(node *OrderNode) {
	node.level = q
	if q.tail == nil {
		q.head = node
		q.tail = node
	} else {
		q.tail.next = node
		node.prev = q.tail
		q.tail = node
	}
	q.totalQty += node.order.Quantity
	q.count++
}

// Remove unlinks node from the queue in O(1) using its own prev/next
// pointers, and subtracts its quantity from the running total.
func (q *PriceLevelQueue) Remove(node *OrderNode) {
	if node.prev != nil {
		node.prev.next = node.next
	} else {
		q.head = node.next
	}
	if node.next != nil {
		node.next.prev = node.prev
	} else {
		q.tail = node.prev
	}
	node.next, node.prev, node.level = nil, nil, nil

	if node.order.Quantity > q.totalQty {
		panic(errInvariantViolation("price level total quantity underflow"))
	}
	q.totalQty -= node.order.Quantity
	q.count--
}

// UpdateQuantity rewrites node's quantity in place without touching
// its position in the FIFO — the caller (AmendOrder) uses this for
// quantity-only amends, which preserve time priority by definition.
func (q *PriceLevelQueue) UpdateQuantity(node *OrderNode, newQuantity uint64) {
	old := node.order.Quantity
	if old > q.totalQty {
		panic(errInvariantViolation("price level total quantity underflow"))
	}
	q.totalQty = q.totalQty - old + newQuantity
	node.order.Quantity = newQuantity
}

func (q *PriceLevelQueue) IsEmpty() bool         { return q.count == 0 }
func (q *PriceLevelQueue) TotalQuantity() uint64 { return q.totalQty }
func (q *PriceLevelQueue) OrderCount() int       { return q.count }

// Head returns the oldest resting node at this level, or nil if the
// level is empty. Following each node's next link from Head walks the
// level in FIFO order.
func (q *PriceLevelQueue) Head() *OrderNode { return q.head }
