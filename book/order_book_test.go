package book

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregationAcrossFIFO(t *testing.T) {
	b := NewOrderBook()
	b.AddOrder(Order{ID: 1, Side: Buy, Price: 100, Quantity: 10})
	b.AddOrder(Order{ID: 2, Side: Buy, Price: 100, Quantity: 20})
	b.AddOrder(Order{ID: 3, Side: Buy, Price: 100, Quantity: 30})

	bids, asks := b.Snapshot(1)
	assert.Equal(t, []Level{{Price: 100, TotalQuantity: 60}}, bids)
	assert.Empty(t, asks)
}

func TestCancelMiddleOfFIFO(t *testing.T) {
	b := NewOrderBook()
	b.AddOrder(Order{ID: 1, Side: Buy, Price: 100, Quantity: 10})
	b.AddOrder(Order{ID: 2, Side: Buy, Price: 100, Quantity: 20})
	b.AddOrder(Order{ID: 3, Side: Buy, Price: 100, Quantity: 30})

	require.True(t, b.CancelOrder(2))
	bids, _ := b.Snapshot(1)
	assert.Equal(t, []Level{{Price: 100, TotalQuantity: 40}}, bids)

	assert.False(t, b.CancelOrder(2))
}

func setupMultiLevelBook() *OrderBook {
	b := NewOrderBook()
	b.AddOrder(Order{ID: 1, Side: Buy, Price: 100, Quantity: 10})
	b.AddOrder(Order{ID: 2, Side: Buy, Price: 100, Quantity: 20})
	b.AddOrder(Order{ID: 3, Side: Buy, Price: 99, Quantity: 15})
	b.AddOrder(Order{ID: 4, Side: Sell, Price: 101, Quantity: 25})
	b.AddOrder(Order{ID: 5, Side: Sell, Price: 102, Quantity: 30})
	return b
}

func TestMultiLevelBidAsk(t *testing.T) {
	b := setupMultiLevelBook()

	bids, asks := b.Snapshot(2)
	assert.Equal(t, []Level{{Price: 100, TotalQuantity: 30}, {Price: 99, TotalQuantity: 15}}, bids)
	assert.Equal(t, []Level{{Price: 101, TotalQuantity: 25}, {Price: 102, TotalQuantity: 30}}, asks)
	assert.Equal(t, 5, b.OrderCount())
}

func TestQuantityOnlyAmendPreservesPriority(t *testing.T) {
	b := setupMultiLevelBook()

	require.True(t, b.AmendOrder(1, 100, 50))
	bids, _ := b.Snapshot(1)
	assert.Equal(t, []Level{{Price: 100, TotalQuantity: 70}}, bids)

	require.True(t, b.CancelOrder(1))
	require.True(t, b.CancelOrder(2))
	bids, _ = b.Snapshot(5)
	assert.Equal(t, []Level{{Price: 99, TotalQuantity: 15}}, bids)
}

func TestPriceAmendMovesLevelAndForfeitsPriority(t *testing.T) {
	b := setupMultiLevelBook()

	require.True(t, b.AmendOrder(1, 99, 50))

	bids, _ := b.Snapshot(3)
	assert.Equal(t, []Level{
		{Price: 100, TotalQuantity: 20},
		{Price: 99, TotalQuantity: 15 + 50},
	}, bids)
}

func TestAmendOfMissingID(t *testing.T) {
	b := NewOrderBook()
	assert.False(t, b.AmendOrder(42, 100, 1))
	assert.False(t, b.CancelOrder(42))
}

func TestAddOrderDuplicateIsSilentNoOp(t *testing.T) {
	b := NewOrderBook()
	b.AddOrder(Order{ID: 1, Side: Buy, Price: 100, Quantity: 10})
	b.AddOrder(Order{ID: 1, Side: Sell, Price: 999, Quantity: 999})

	require.Equal(t, 1, b.OrderCount())
	bids, asks := b.Snapshot(10)
	assert.Equal(t, []Level{{Price: 100, TotalQuantity: 10}}, bids)
	assert.Empty(t, asks)
}

func TestAmendQuantityOnlyNoOpWhenUnchanged(t *testing.T) {
	b := NewOrderBook()
	b.AddOrder(Order{ID: 1, Side: Buy, Price: 100, Quantity: 10})
	assert.True(t, b.AmendOrder(1, 100, 10))
	bids, _ := b.Snapshot(1)
	assert.Equal(t, []Level{{Price: 100, TotalQuantity: 10}}, bids)
}

func TestAmendToZeroQuantityIsRejected(t *testing.T) {
	b := NewOrderBook()
	b.AddOrder(Order{ID: 1, Side: Buy, Price: 100, Quantity: 10})
	assert.False(t, b.AmendOrder(1, 100, 0))

	bids, _ := b.Snapshot(1)
	assert.Equal(t, []Level{{Price: 100, TotalQuantity: 10}}, bids, "rejected amend must not mutate the order")
}

func TestPriceAmendErasesEmptiedLevel(t *testing.T) {
	b := NewOrderBook()
	b.AddOrder(Order{ID: 1, Side: Buy, Price: 100, Quantity: 10})
	require.True(t, b.AmendOrder(1, 200, 10))

	bids, _ := b.Snapshot(10)
	assert.Equal(t, []Level{{Price: 200, TotalQuantity: 10}}, bids)
}

func TestSnapshotDepthCapsEachSideIndependently(t *testing.T) {
	b := setupMultiLevelBook()
	bids, asks := b.Snapshot(1)
	assert.Len(t, bids, 1)
	assert.Len(t, asks, 1)
	assert.Equal(t, int64(100), bids[0].Price)
	assert.Equal(t, int64(101), asks[0].Price)
}

func TestCancelEmptiesPriceLevelFromSideIndex(t *testing.T) {
	b := NewOrderBook()
	b.AddOrder(Order{ID: 1, Side: Buy, Price: 100, Quantity: 10})
	require.True(t, b.CancelOrder(1))

	_, found := b.bids.Find(100)
	assert.False(t, found, "an emptied price level must be erased from the side index")
}

func TestRoundTripAddThenCancelRestoresOrderCount(t *testing.T) {
	b := NewOrderBook()
	before := b.OrderCount()
	b.AddOrder(Order{ID: 7, Side: Sell, Price: 50, Quantity: 3})
	require.True(t, b.CancelOrder(7))
	assert.Equal(t, before, b.OrderCount())
}
