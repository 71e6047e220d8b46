// Package models defines the catalogue entities exchanged with the remote
// record-keeping service, the request payloads sent to it, and the local
// validation applied to those payloads before any call is made.
package models

// Entity is implemented by every catalogue record kept in a client cache.
type Entity interface {
	// EntityID returns the server-assigned identifier.
	EntityID() int64

	// Label is the short human-readable name used in selection lists.
	Label() string
}

// Kind names of the remote collections.
const (
	KindArtists     = "artists"
	KindArtworks    = "artworks"
	KindExhibitions = "exhibitions"
)
