package book

// OrderBook is the single-writer, synchronous limit order book for
// one instrument. It composes a node pool, two SideIndex trees (bids
// descending, asks ascending), and an order-id index, and keeps all
// three consistent across every mutation.
type OrderBook struct {
	pool *nodePool

	bids *SideIndex
	asks *SideIndex

	orders map[uint64]*OrderNode
}

// NewOrderBook constructs an empty book.
func NewOrderBook(opts ...Option) *OrderBook {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	orders := make(map[uint64]*OrderNode, cfg.orderIndexCapacity)
	return &OrderBook{
		pool:   newNodePool(cfg.nodeBlockSize),
		bids:   NewSideIndex(true),
		asks:   NewSideIndex(false),
		orders: orders,
	}
}

func (b *OrderBook) sideIndex(s Side) *SideIndex {
	if s == Buy {
		return b.bids
	}
	return b.asks
}

// AddOrder inserts order into the book. A duplicate order id is a
// silent no-op rather than an error, so retransmits of the same order
// never corrupt book state.
func (b *OrderBook) AddOrder(order Order) {
	if _, exists := b.orders[order.ID]; exists {
		return
	}

	node := b.pool.acquire(order)
	level := b.sideIndex(order.Side).GetOrCreate(order.Price)
	level.Add(node)
	b.orders[order.ID] = node
}

// CancelOrder removes the resting order with the given id, returning
// true if it existed. If removing the order empties its price level,
// the level is erased from the side index before the order id is
// erased from the order index and the node is released to the pool —
// that ordering keeps no external observer ever seeing a dangling
// handle.
func (b *OrderBook) CancelOrder(orderID uint64) bool {
	node, ok := b.orders[orderID]
	if !ok {
		return false
	}

	b.removeFromLevel(node)

	delete(b.orders, orderID)
	b.pool.release(node)
	return true
}

// removeFromLevel unlinks node from its current price level and
// erases the level from its side index if that empties it.
func (b *OrderBook) removeFromLevel(node *OrderNode) {
	order := node.order
	level, ok := b.sideIndex(order.Side).Find(order.Price)
	if !ok || level != node.level {
		panic(errInvariantViolation("node's price level is not indexed on its own side"))
	}

	level.Remove(node)
	if level.IsEmpty() {
		b.sideIndex(order.Side).Erase(order.Price)
	}
}

// AmendOrder changes an existing order's price and/or quantity.
//
//   - Price unchanged, quantity unchanged: no-op, returns true.
//   - Price unchanged, quantity changed: updated in place at the
//     node's current FIFO position — time priority preserved.
//   - Price changed: the node is unlinked from its current level
//     (erasing the level if that empties it), its price/quantity are
//     overwritten, and it is appended at the tail of the new price's
//     level — time priority forfeited.
//
// newQuantity == 0 is rejected (returns false, no change made);
// amending to zero quantity is not treated as an implicit cancel.
func (b *OrderBook) AmendOrder(orderID uint64, newPrice int64, newQuantity uint64) bool {
	node, ok := b.orders[orderID]
	if !ok {
		return false
	}
	if newQuantity == 0 {
		return false
	}

	current := node.order
	if current.Price == newPrice {
		if current.Quantity == newQuantity {
			return true
		}
		node.level.UpdateQuantity(node, newQuantity)
		return true
	}

	b.removeFromLevel(node)

	node.order.Price = newPrice
	node.order.Quantity = newQuantity

	newLevel := b.sideIndex(current.Side).GetOrCreate(newPrice)
	newLevel.Add(node)
	return true
}

// Level is one entry of a Snapshot: the aggregate resting quantity at
// one price.
type Level struct {
	Price         int64
	TotalQuantity uint64
}

// Snapshot returns up to depth price levels per side, best first:
// bids highest-price-first, asks lowest-price-first. Each slice has
// min(depth, number of live levels on that side) entries.
func (b *OrderBook) Snapshot(depth int) (bids, asks []Level) {
	bids = collectLevels(b.bids, depth)
	asks = collectLevels(b.asks, depth)
	return bids, asks
}

func collectLevels(idx *SideIndex, depth int) []Level {
	if depth <= 0 {
		return nil
	}
	out := make([]Level, 0, depth)
	idx.IterateBestFirst(func(q *PriceLevelQueue) bool {
		out = append(out, Level{Price: q.Price, TotalQuantity: q.TotalQuantity()})
		return len(out) < depth
	})
	return out
}

// OrderCount returns the number of live resting orders. O(1).
func (b *OrderBook) OrderCount() int { return len(b.orders) }
