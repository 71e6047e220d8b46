// Package catalog keeps the client's view of each entity collection
// consistent with the remote record-keeping service.
//
// One generic Controller per entity kind, parameterized by a Schema, owns:
//
//   - a Cache, mutated only with entities the service has confirmed;
//   - a Session, the edit state machine (Viewing | Editing{ID, Draft});
//   - a create form Draft and pending delete confirmations;
//   - a single user-visible message slot (Message).
//
// A Resolver is a read-only copy of another kind's collection used to offer
// choices for foreign-key fields. It is loaded when a view becomes active and
// is not kept consistent with that kind's own controller.
//
// Gateway calls are never made while the controller lock is held, so one
// goroutine waiting on the service does not block the others. Confirmed
// results are applied in the order they arrive.
package catalog
