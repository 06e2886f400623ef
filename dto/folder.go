package dto

// FolderRequest is the body for folder create and update.
type FolderRequest struct {
	Name string `json:"name"`
}
