// Package sim provides a simulated Zebra handheld RFID SDK.
//
// SDK implements sdk.API against an in-memory model: a set of readers with
// per-reader configuration, a population of Gen2 tags with EPC, TID, user and
// reserved memory, and a battery. Inventory and rapid read run on a ticker
// and deliver ReadNotify callbacks until stopped, honouring the subscribed
// event mask, the start and stop triggers and batch mode.
//
// Failures mirror what a real reader reports: unknown readers and missing
// sessions fail with ResultReaderNotAvailable, a wrong access password fails
// with ResultResponseError and a description, and writes to locked memory
// succeed at the transport level with an unsuccessful tag operation.
//
// Tests drive external stimuli through the Simulate* methods and inject
// arbitrary failures with FailNext.
package sim
