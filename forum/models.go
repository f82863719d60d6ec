// Package forum, as part of the community forum module.
// This file, `models.go`, defines the entities for posts and their nested
// replies, plus the input shape for creating a reply.
package forum

// Post is one forum thread: an asset request or discussion starter.
type Post struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	UserID      string `json:"userId"`
	// UserName is denormalized for display; optional.
	UserName string `json:"userName,omitempty"`
	// CreationDate is an ISO-8601 timestamp string.
	CreationDate string `json:"creationDate"`
	// Replies nest under the post; a reply never exists independently of
	// the post it belongs to.
	Replies []Reply `json:"replies,omitempty"`
}

// Reply is one response nested under exactly one post. The store
// synthesizes id, back-reference and timestamp at creation.
type Reply struct {
	ID     string `json:"id"`
	PostID string `json:"postId"`
	UserID string `json:"userId"`
	// UserName is denormalized for display; optional.
	UserName     string `json:"userName,omitempty"`
	Content      string `json:"content"`
	CreationDate string `json:"creationDate"`
}

// ReplyInput is what a caller supplies when replying; everything else on
// the Reply is filled in by the store.
type ReplyInput struct {
	UserID   string `json:"userId"`
	UserName string `json:"userName,omitempty"`
	Content  string `json:"content"`
}
