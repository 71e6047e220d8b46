// Package cli provides the interactive ArtLog command-line client.
//
// It wires configuration, the HTTP gateway, the optional local journal and one
// catalog controller per entity kind behind a line-oriented REPL. Typical
// flow: log in, pick a collection with "use", then list, add, edit and delete
// records.
//
// Each collection is a view. Entering a view refreshes its records and loads
// the reference lists its forms need (artists for artworks, artworks for
// exhibitions). Those lists are not refreshed by edits made in other views.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
