package entities

// Document is one named knowledge-base text blob.
type Document struct {
	Name    string `json:"name"`
	Content string `json:"content"`
}
