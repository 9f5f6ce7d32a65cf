// Package host defines the contract between the device firmware and an
// application: lifecycle events, loop control codes, the per-frame update
// callback and the API table handed to the event handler.
//
// The firmware invokes callbacks strictly sequentially on a single thread.
// Nothing in this package is safe for concurrent use and nothing needs to be.
package host
