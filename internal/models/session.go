package models

// Session is the singleton signed-in identity, persisted separately from the
// user collection so it survives restarts.
type Session struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}
