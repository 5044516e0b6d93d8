package model

// Item is one record from the remote list.
// Kept minimal on purpose; it’s easy to evolve.
type Item struct {
	ID    int    `json:"id,omitempty"`
	Title string `json:"title"`
	Body  string `json:"body,omitempty"`
}
