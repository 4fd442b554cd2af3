// Package sdk describes the surface of the Zebra handheld RFID SDK as a Go
// interface.
//
// The vendor library is closed source and ships only as a native framework,
// so this package models its calling convention rather than wrapping it:
//
//   - API mirrors the srfidISdkApi object, one method per vendor call.
//     Out-parameters are passed by pointer. Calls that report a descriptive
//     failure string take a trailing status *string.
//   - Delegate mirrors the srfidISdkApiDelegate callback protocol.
//   - Record types (ReaderInfo, TagData, ...) mirror the vendor's mutable
//     objects, with enumerations carried as raw integers.
//
// A real binding (cgo, or an RPC shim to a host that links the framework)
// implements API. The pkg/sim package provides a simulated implementation.
// Callers should not use this package directly; pkg/rfid wraps it with typed
// values and error handling.
package sdk
