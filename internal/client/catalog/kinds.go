package catalog

import (
	"strconv"

	"github.com/dmitrijs2005/artlog/internal/client/models"
)

// Artists describes the artist collection.
var Artists = Schema[models.Artist, models.ArtistRequest]{
	Kind: models.KindArtists,
	Noun: "artist",
	Fields: []Field{
		{Name: "name"},
		{Name: "country"},
		{Name: "art_style"},
	},
	Seed: func(a models.Artist) Draft {
		return Draft{"name": a.Name, "country": a.Country, "art_style": a.ArtStyle}
	},
	Build: func(d Draft) (models.ArtistRequest, error) {
		return models.ArtistRequest{
			Name:     d.Text("name"),
			Country:  d.Text("country"),
			ArtStyle: d.Text("art_style"),
		}, nil
	},
}

// Artworks describes the artwork collection. artist_id is mandatory.
var Artworks = Schema[models.Artwork, models.ArtworkRequest]{
	Kind: models.KindArtworks,
	Noun: "artwork",
	Fields: []Field{
		{Name: "title"},
		{Name: "artist_id", Type: IntegerField, Ref: models.KindArtists},
		{Name: "year", Type: IntegerField},
		{Name: "image_url", Optional: true},
		{Name: "description", Optional: true},
	},
	Seed: func(a models.Artwork) Draft {
		return Draft{
			"title":       a.Title,
			"artist_id":   strconv.FormatInt(a.ArtistID, 10),
			"year":        strconv.Itoa(a.Year),
			"image_url":   deref(a.ImageURL),
			"description": deref(a.Description),
		}
	},
	Build: func(d Draft) (models.ArtworkRequest, error) {
		artistID, errArtist := d.Int("artist_id")
		year, errYear := d.Int("year")
		if err := firstError(errArtist, errYear); err != nil {
			return models.ArtworkRequest{}, err
		}
		return models.ArtworkRequest{
			Title:       d.Text("title"),
			ArtistID:    artistID,
			Year:        int(year),
			ImageURL:    d.OptionalText("image_url"),
			Description: d.OptionalText("description"),
		}, nil
	},
}

// Exhibitions describes the exhibition collection. artwork_id is optional.
var Exhibitions = Schema[models.Exhibition, models.ExhibitionRequest]{
	Kind: models.KindExhibitions,
	Noun: "exhibition",
	Fields: []Field{
		{Name: "theme"},
		{Name: "location"},
		{Name: "date", Type: DateField},
		{Name: "artwork_id", Type: IntegerField, Optional: true, Ref: models.KindArtworks},
	},
	Seed: func(e models.Exhibition) Draft {
		d := Draft{
			"theme":      e.Theme,
			"location":   e.Location,
			"date":       e.Date.String(),
			"artwork_id": "",
		}
		if e.ArtworkID != nil {
			d["artwork_id"] = strconv.FormatInt(*e.ArtworkID, 10)
		}
		return d
	},
	Build: func(d Draft) (models.ExhibitionRequest, error) {
		date, errDate := d.Date("date")
		artworkID, errArtwork := d.OptionalInt("artwork_id")
		if err := firstError(errDate, errArtwork); err != nil {
			return models.ExhibitionRequest{}, err
		}
		return models.ExhibitionRequest{
			Theme:     d.Text("theme"),
			Location:  d.Text("location"),
			Date:      date,
			ArtworkID: artworkID,
		}, nil
	},
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
