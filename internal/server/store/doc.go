// Package store keeps the records of the development record-keeping service
// in memory. Ids are assigned here and never reused within a process.
package store
