package memory

import (
	"context"
	"sync"

	"Postboard/internal/core/posts"
)

// PostRepository is an insertion-ordered in-memory post store.
// A single mutex guards the slice and the id counter; ids come from a
// monotonic counter so they are never reused after a deletion.
type PostRepository struct {
	mu     sync.Mutex
	posts  []*posts.Post
	nextID int
}

// NewPostRepository creates a store seeded with the given posts.
// The id counter starts one past the highest seeded id, or at 0 when
// the seed is empty, so the first post of an empty store gets id 0.
func NewPostRepository(seed []*posts.Post) *PostRepository {
	r := &PostRepository{}
	for _, p := range seed {
		cp := *p
		r.posts = append(r.posts, &cp)
		if cp.ID >= r.nextID {
			r.nextID = cp.ID + 1
		}
	}
	return r
}

// List returns a snapshot of all posts in insertion order.
// The returned posts are copies; callers never alias the guarded storage.
func (r *PostRepository) List(ctx context.Context) ([]*posts.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*posts.Post, 0, len(r.posts))
	for _, p := range r.posts {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

// Create appends a new post with the next id and returns a copy of it
func (r *PostRepository) Create(ctx context.Context, title, content string) (*posts.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	post := &posts.Post{
		ID:      r.nextID,
		Title:   title,
		Content: content,
	}
	r.nextID++
	r.posts = append(r.posts, post)

	cp := *post
	return &cp, nil
}

// Update applies non-nil fields to the post with the given id and
// returns a copy of its full updated state
func (r *PostRepository) Update(ctx context.Context, id int, title, content *string) (*posts.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range r.posts {
		if p.ID != id {
			continue
		}
		if title != nil {
			p.Title = *title
		}
		if content != nil {
			p.Content = *content
		}
		cp := *p
		return &cp, nil
	}

	return nil, posts.NewNotFoundError(id)
}

// Delete removes the post with the given id, preserving the order of
// the remaining posts
func (r *PostRepository) Delete(ctx context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, p := range r.posts {
		if p.ID == id {
			r.posts = append(r.posts[:i], r.posts[i+1:]...)
			return nil
		}
	}

	return posts.NewNotFoundError(id)
}
