package store

import (
	"strings"

	"github.com/dmitrijs2005/artlog/internal/client/models"
)

// Store is the whole catalogue. References are checked when a record is
// written; deleting a referenced record leaves its dependants alone.
type Store struct {
	Artists     *Collection[models.Artist, models.ArtistRequest]
	Artworks    *Collection[models.Artwork, models.ArtworkRequest]
	Exhibitions *Collection[models.Exhibition, models.ExhibitionRequest]
}

func New() *Store {
	s := &Store{}

	s.Artists = newCollection("artist",
		func(id int64, r models.ArtistRequest) models.Artist {
			return models.Artist{ID: id, Name: r.Name, Country: r.Country, ArtStyle: r.ArtStyle}
		},
		s.checkArtist)

	s.Artworks = newCollection("artwork",
		func(id int64, r models.ArtworkRequest) models.Artwork {
			return models.Artwork{ID: id, Title: r.Title, ArtistID: r.ArtistID, Year: r.Year,
				ImageURL: r.ImageURL, Description: r.Description}
		},
		s.checkArtwork)

	s.Exhibitions = newCollection("exhibition",
		func(id int64, r models.ExhibitionRequest) models.Exhibition {
			return models.Exhibition{ID: id, Theme: r.Theme, Location: r.Location, Date: r.Date, ArtworkID: r.ArtworkID}
		},
		s.checkExhibition)

	return s
}

// checkArtist runs with Artists locked, so it reads items directly.
func (s *Store) checkArtist(id int64, r models.ArtistRequest) error {
	for _, a := range s.Artists.items {
		if a.ID != id && strings.EqualFold(a.Name, r.Name) {
			return &ConflictError{Detail: "name already exists"}
		}
	}
	return nil
}

// Lock order is artworks before artists, exhibitions before artworks.
func (s *Store) checkArtwork(_ int64, r models.ArtworkRequest) error {
	if !s.Artists.Exists(r.ArtistID) {
		return &models.ValidationError{Field: "artist_id", Reason: "refers to an unknown artist"}
	}
	return nil
}

func (s *Store) checkExhibition(_ int64, r models.ExhibitionRequest) error {
	if r.Date.IsZero() {
		return models.Required("date")
	}
	if r.ArtworkID != nil && !s.Artworks.Exists(*r.ArtworkID) {
		return &models.ValidationError{Field: "artwork_id", Reason: "refers to an unknown artwork"}
	}
	return nil
}
