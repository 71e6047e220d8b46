package models

// Artist is a catalogued artist. All fields are required.
type Artist struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Country  string `json:"country"`
	ArtStyle string `json:"art_style"`
}

func (a Artist) EntityID() int64 { return a.ID }
func (a Artist) Label() string   { return a.Name }

// ArtistRequest is the body of artist create and update calls.
type ArtistRequest struct {
	Name     string `json:"name" validate:"required"`
	Country  string `json:"country" validate:"required"`
	ArtStyle string `json:"art_style" validate:"required"`
}
