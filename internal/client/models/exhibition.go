package models

// Exhibition is a catalogued exhibition, optionally featuring one artwork.
type Exhibition struct {
	ID        int64  `json:"id"`
	Theme     string `json:"theme"`
	Location  string `json:"location"`
	Date      Date   `json:"date"`
	ArtworkID *int64 `json:"artwork_id"`
}

func (e Exhibition) EntityID() int64 { return e.ID }
func (e Exhibition) Label() string   { return e.Theme }

// ExhibitionRequest is the body of exhibition create and update calls.
type ExhibitionRequest struct {
	Theme     string `json:"theme" validate:"required"`
	Location  string `json:"location" validate:"required"`
	Date      Date   `json:"date"`
	ArtworkID *int64 `json:"artwork_id" validate:"omitempty,gt=0"`
}
