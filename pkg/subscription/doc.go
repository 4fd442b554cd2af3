// Package subscription implements the fan-out primitive behind the reader
// event stream.
//
// A Hub has a single logical writer (the SDK delegate) and any number of
// subscribers. Every subscriber gets its own view of the stream:
//
//   - Events are delivered in publish order, identically for all subscribers.
//   - Each subscriber has an unbounded FIFO, so a slow consumer never blocks
//     the writer or other consumers.
//   - Cancelling one subscription removes only that subscription. Its
//     undelivered values are dropped and its channel is closed.
//   - Late subscribers only see values published after Subscribe returns.
//     Nothing is replayed.
//
// # Lifecycle
//
// Closing the hub stops publication. Each open subscription drains what is
// already queued and then closes its channel, so a range loop over C()
// terminates cleanly. Draining needs a reader; a consumer that abandons the
// channel must call Cancel, which drops the rest and closes C().
package subscription
