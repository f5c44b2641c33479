package posts

import "context"

// Service defines the business logic interface for posts
// Validates requests and coordinates with the Repository
type Service interface {
	// ListPosts returns all posts, optionally sorted by title or content.
	// Invalid sort/direction values fail validation before the store is touched.
	ListPosts(ctx context.Context, req ListPostsRequest) ([]*Post, error)

	// CreatePost validates required fields and appends a new post
	CreatePost(ctx context.Context, req CreatePostRequest) (*Post, error)

	// UpdatePost applies the provided fields to an existing post and
	// returns its full updated state
	UpdatePost(ctx context.Context, req UpdatePostRequest) (*Post, error)

	// DeletePost removes the post with the given id
	DeletePost(ctx context.Context, id int) error

	// SearchPosts returns posts whose title or content contains the
	// corresponding filter, case-insensitively
	SearchPosts(ctx context.Context, req SearchPostsRequest) ([]*Post, error)
}

// Repository defines the data access interface for posts
// Implementations must be safe for concurrent use and must never
// return aliases of their internal storage
type Repository interface {
	// List returns a snapshot of all posts in insertion order
	List(ctx context.Context) ([]*Post, error)

	// Create appends a new post with a freshly assigned id
	Create(ctx context.Context, title, content string) (*Post, error)

	// Update applies non-nil fields to the post with the given id
	Update(ctx context.Context, id int, title, content *string) (*Post, error)

	// Delete removes the post with the given id
	Delete(ctx context.Context, id int) error
}
