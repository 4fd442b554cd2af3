// Package persistence journals tag reads and access results to SQLite.
//
// The bridge daemon records every TagRead event and every access operation
// it performs. TagSummaries aggregates the journal per EPC for reporting.
package persistence
