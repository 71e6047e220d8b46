package models

import "fmt"

// Artwork is a catalogued work. ArtistID references Artist.ID; the reference
// is not kept consistent when the artist is later removed.
type Artwork struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	ArtistID    int64   `json:"artist_id"`
	Year        int     `json:"year"`
	ImageURL    *string `json:"image_url"`
	Description *string `json:"description"`
}

func (a Artwork) EntityID() int64 { return a.ID }

func (a Artwork) Label() string {
	return fmt.Sprintf("%s (ID: %d)", a.Title, a.ID)
}

// ArtworkRequest is the body of artwork create and update calls.
// Optional fields have no omitempty: nil is sent as an explicit null. Year
// has no tag because 0 is a valid year; its presence is checked on the draft.
type ArtworkRequest struct {
	Title       string  `json:"title" validate:"required"`
	ArtistID    int64   `json:"artist_id" validate:"required,gt=0"`
	Year        int     `json:"year"`
	ImageURL    *string `json:"image_url"`
	Description *string `json:"description"`
}
