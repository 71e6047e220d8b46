package models

// Identity is the display identity returned by the login boundary.
type Identity struct {
	Username       string `json:"username"`
	ProfilePicture string `json:"profile_picture"`
}

// LoginRequest is the body of POST /login.
type LoginRequest struct {
	Username       string `json:"username" validate:"required"`
	ProfilePicture string `json:"profile_picture" validate:"required"`
}
