package posts

// Post represents a single entry in the post collection
// IDs are assigned by the store and are never reused
type Post struct {
	ID      int    `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// CreatePostRequest represents input for creating a new post
// Pointer fields distinguish absent fields from empty strings so that
// validation can report every missing field in a single error
type CreatePostRequest struct {
	Title   *string `json:"title,omitempty"`
	Content *string `json:"content,omitempty"`
}

// UpdatePostRequest represents a partial update of an existing post
// Absent fields are left unchanged; unrecognized fields in the request
// body are dropped by JSON decoding and silently ignored
type UpdatePostRequest struct {
	Title   *string `json:"title,omitempty"`
	Content *string `json:"content,omitempty"`
	ID      int     `json:"-"` // Taken from the URL path, never from the body
}

// ListPostsRequest carries the optional sort parameters for listing posts
type ListPostsRequest struct {
	Sort      string
	Direction string
}

// SearchPostsRequest carries the optional substring filters for search.
// A nil filter is absent and contributes no match; an empty non-nil
// filter matches every post (the empty string is a substring of anything).
type SearchPostsRequest struct {
	Title   *string
	Content *string
}
