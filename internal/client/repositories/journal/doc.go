// Package journal stores the client's mutation journal: an append-only log of
// every confirmed change applied to an entity cache.
//
// Rows are kept per kind in arrival order (seq). A load resets the rows of its
// kind, so the journal of a kind always starts with the last full collection
// fetched from the service followed by the creates, updates and deletes
// confirmed since.
//
// The journal is written for inspection and replay. Views are never served
// from it.
//
// Typical Usage
//
//	repo := journal.NewSQLiteRepository(db)
//	_ = repo.Append(ctx, &journal.Entry{Kind: "artists", Op: "create", EntityID: 7, Payload: b})
//	rows, _ := repo.Entries(ctx, "artists")
package journal
