package posts

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/samber/lo"
)

type postService struct {
	repo Repository
}

// NewPostService creates a new post service
func NewPostService(repo Repository) Service {
	return &postService{
		repo: repo,
	}
}

// ListPosts returns all posts, sorted when a sort field is requested
func (s *postService) ListPosts(ctx context.Context, req ListPostsRequest) ([]*Post, error) {
	// 1. Validate sort parameters before touching the store
	if err := s.validateListRequest(req); err != nil {
		return nil, err
	}

	// 2. Fetch a snapshot of the collection
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	// 3. Sorting is a derived ordering on the snapshot only; direction
	// without sort has no effect
	if req.Sort == "" {
		return items, nil
	}

	desc := req.Direction == "desc"
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i].Title, items[j].Title
		if req.Sort == "content" {
			a, b = items[i].Content, items[j].Content
		}
		if desc {
			return a > b
		}
		return a < b
	})

	return items, nil
}

// validateListRequest validates the optional sort parameters
func (s *postService) validateListRequest(req ListPostsRequest) error {
	validSorts := map[string]bool{"title": true, "content": true}
	if req.Sort != "" && !validSorts[req.Sort] {
		return NewValidationError("sort", "Invalid sort field. Must be 'title' or 'content'.")
	}

	validDirections := map[string]bool{"asc": true, "desc": true}
	if req.Direction != "" && !validDirections[req.Direction] {
		return NewValidationError("direction", "Invalid sort direction. Must be 'asc' or 'desc'.")
	}

	return nil
}

// CreatePost validates required fields and appends the new post
func (s *postService) CreatePost(ctx context.Context, req CreatePostRequest) (*Post, error) {
	// Missing fields are collected and reported together, not one at a time
	var missing []string
	if req.Title == nil {
		missing = append(missing, "title")
	}
	if req.Content == nil {
		missing = append(missing, "content")
	}

	switch len(missing) {
	case 0:
	case 1:
		return nil, NewValidationError(missing[0],
			fmt.Sprintf("%s is required!", missing[0]))
	default:
		joined := strings.Join(missing, ", ")
		return nil, NewValidationError(joined,
			fmt.Sprintf("%s fields are required!", joined))
	}

	post, err := s.repo.Create(ctx, *req.Title, *req.Content)
	if err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	return post, nil
}

// UpdatePost applies the provided fields to the targeted post
func (s *postService) UpdatePost(ctx context.Context, req UpdatePostRequest) (*Post, error) {
	post, err := s.repo.Update(ctx, req.ID, req.Title, req.Content)
	if err != nil {
		return nil, err
	}
	return post, nil
}

// DeletePost removes the targeted post
func (s *postService) DeletePost(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

// SearchPosts filters posts by case-insensitive substring match.
// A post matches when any provided filter matches its field; with no
// filters provided nothing matches.
func (s *postService) SearchPosts(ctx context.Context, req SearchPostsRequest) ([]*Post, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to search posts: %w", err)
	}

	matched := lo.Filter(items, func(p *Post, _ int) bool {
		if req.Title != nil && strings.Contains(strings.ToLower(p.Title), strings.ToLower(*req.Title)) {
			return true
		}
		if req.Content != nil && strings.Contains(strings.ToLower(p.Content), strings.ToLower(*req.Content)) {
			return true
		}
		return false
	})

	return matched, nil
}
