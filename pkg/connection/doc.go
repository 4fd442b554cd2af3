// Package connection keeps reader communication sessions alive.
//
// A Keeper owns the session of one reader. Connect establishes it; when the
// event stream reports SessionTerminated the owner calls NotifySessionLost
// and, with auto reconnect enabled, the Keeper re-establishes the session in
// the background:
//
//  1. Initial delay: 500 milliseconds
//  2. Exponential increase: 1s, 2s, 4s, 8s, 16s
//  3. Maximum delay: 30 seconds
//  4. Continue at 30s until successful or closed
//  5. Reset to 500ms after a successful attempt
//
// Each delay gets up to 25% random jitter so several handhelds dropping out
// of range together do not retry in lockstep.
//
// The SDK's own automatic session re-establishment may restore the session
// first. NotifySessionEstablished moves the Keeper back to CONNECTED and ends
// any retry in progress.
package connection
