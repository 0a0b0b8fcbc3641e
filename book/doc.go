// Package book implements an in-memory limit order book for a single
// instrument: price-priority, time-priority FIFO matching substrate
// in which add, cancel and amend each cost an O(log P) price-level
// lookup plus O(1) amortized node and FIFO work, where P is the number
// of distinct resting price levels.
//
// The book is single-writer. Every exported method must be called
// from one goroutine at a time; there is no internal locking, because
// a lock on this hot path would erase the performance the design is
// for. Concurrent readers are not supported — publish a Snapshot
// instead.
//
// This package does not match orders against each other, persist
// state, or speak to the network. It is the resting-order substrate
// a matching engine, WAL, or market-data publisher would sit on top
// of.
package book
