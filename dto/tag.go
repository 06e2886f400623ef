package dto

// TagRequest is the body for tag create and update.
type TagRequest struct {
	Name string `json:"name"`
}
