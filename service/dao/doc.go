// Package dao defines the storage contract for allocation runs.  The only
// implementation, store.MemoryStore, keeps runs for the lifetime of the
// process.
package dao
